// Package cmd defines the command-line interface for nutriplan.
package cmd

import (
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the profile subcommands to the parent profile command
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileWeighCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Profile store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")

	// Biometric flags are shared by the calculators and onboarding
	rootCmd.PersistentFlags().String("name", "", "Display name of the person onboarding")
	rootCmd.PersistentFlags().String("dob", "", "Date of birth as YYYY-MM-DD (takes precedence over --age)")
	rootCmd.PersistentFlags().Int("age", 0, "Age in years")
	rootCmd.PersistentFlags().String("sex", "", "Sex: male or female or other")
	rootCmd.PersistentFlags().String("activity", "", "Activity level: sedentary or light or moderate or active or very_active")
	rootCmd.PersistentFlags().String("goal", "", "Goal: lose_weight or maintain or gain_muscle")
	rootCmd.PersistentFlags().Float64("weight", 0, "Current weight in kg")
	rootCmd.PersistentFlags().Float64("height", 0, "Height in cm")
	rootCmd.PersistentFlags().Float64("target", 0, "Target weight in kg")
	rootCmd.PersistentFlags().String("diet-type", "", "Diet type, e.g. vegetarian (none skips preferences)")
	rootCmd.PersistentFlags().String("allergies", "", "Comma-separated list of allergies")
	rootCmd.PersistentFlags().String("dislikes", "", "Comma-separated list of disliked foods")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of sweepCmd to Viper
	sweepCmd.Flags().Float64("step", contract.DefaultStep, "Distance in kg between two sweep targets")
	if err := viper.BindPFlags(sweepCmd.Flags()); err != nil {
		contract.LogFatal("Error binding sweep flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("max-tier", string(contract.DefaultMaxTier), "Highest safety tier that still passes: safe or moderate or risky or dangerous")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListenAddr, "Address the HTTP API listens on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of profileWeighCmd to Viper
	profileWeighCmd.Flags().String("notes", "", "Optional notes stored with the weigh-in")
	if err := viper.BindPFlags(profileWeighCmd.Flags()); err != nil {
		contract.LogFatal("Error binding profile weigh flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
