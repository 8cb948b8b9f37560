package contract

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/nutriplan/schema"
)

// Default values for configuration.
const (
	DefaultPrecision  = 1
	DefaultStep       = 0.5
	DefaultMaxTier    = schema.ModerateTier
	DefaultListenAddr = ":8080"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration of a command.
// This struct remains the "final, validated" config.
type Config struct {
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// Biometric inputs. Zero values mean "not provided"; the typed
	// accessors below decide which ones a command requires.
	Name          string
	DateOfBirth   time.Time
	Age           int
	Sex           schema.Sex
	ActivityLevel schema.ActivityLevel
	Goal          schema.Goal
	Weight        float64
	Height        float64
	TargetWeight  float64
	Preferences   schema.Preferences

	MaxTier    schema.SafetyTier
	Step       float64
	ListenAddr string

	ProfileID string
	Notes     string

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ProfileID string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	// --- Biometric fields from rootCmd.PersistentFlags() ---
	Name      string  `mapstructure:"name"`
	DOB       string  `mapstructure:"dob"`
	Age       int     `mapstructure:"age"`
	Sex       string  `mapstructure:"sex"`
	Activity  string  `mapstructure:"activity"`
	Goal      string  `mapstructure:"goal"`
	Weight    float64 `mapstructure:"weight"`
	Height    float64 `mapstructure:"height"`
	Target    float64 `mapstructure:"target"`
	DietType  string  `mapstructure:"diet-type"`
	Allergies string  `mapstructure:"allergies"`
	Dislikes  string  `mapstructure:"dislikes"`

	// --- Fields from checkCmd.Flags() ---
	MaxTier string `mapstructure:"max-tier"`

	// --- Fields from sweepCmd.Flags() ---
	Step float64 `mapstructure:"step"`

	// --- Fields from serveCmd.Flags() ---
	Listen string `mapstructure:"listen"`

	// --- Fields from profileWeighCmd.Flags() ---
	Notes string `mapstructure:"notes"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Preferences.Allergies = slices.Clone(c.Preferences.Allergies)
	clone.Preferences.Dislikes = slices.Clone(c.Preferences.Dislikes)
	return &clone
}

// ProcessAndValidate validates the raw input and populates cfg from it.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := processBiometrics(cfg, input); err != nil {
		return err
	}
	if err := processGoalOptions(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseDatabaseBackend parses a backend name, treating an empty name as none.
func ParseDatabaseBackend(s string) (schema.DatabaseBackend, error) {
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if backend == "" {
		return schema.NoneBackend, nil
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateBackendConfig validates the profile store configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseDatabaseBackend(input.StoreBackend)
	if err != nil {
		return err
	}
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// validateSimpleInputs processes and validates the output settings.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ProfileID = strings.TrimSpace(input.ProfileID)
	cfg.Notes = input.Notes

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	return nil
}

// processBiometrics parses the biometric inputs that were provided. Range
// checks are left to the accessors since each command needs different fields.
func processBiometrics(cfg *Config, input *ConfigRawInput) error {
	cfg.Name = strings.TrimSpace(input.Name)
	cfg.Age = input.Age
	cfg.Weight = input.Weight
	cfg.Height = input.Height
	cfg.TargetWeight = input.Target

	if input.DOB != "" {
		dob, err := ParseDateOfBirth(input.DOB)
		if err != nil {
			return err
		}
		cfg.DateOfBirth = dob
	}
	if input.Sex != "" {
		sex, err := ParseSex(input.Sex)
		if err != nil {
			return err
		}
		cfg.Sex = sex
	}
	if input.Activity != "" {
		level, err := ParseActivityLevel(input.Activity)
		if err != nil {
			return err
		}
		cfg.ActivityLevel = level
	}
	if input.Goal != "" {
		goal, err := ParseGoal(input.Goal)
		if err != nil {
			return err
		}
		cfg.Goal = goal
	}

	cfg.Preferences = schema.Preferences{
		DietType:  strings.TrimSpace(input.DietType),
		Allergies: ParseList(input.Allergies),
		Dislikes:  ParseList(input.Dislikes),
	}
	return nil
}

// processGoalOptions handles the sweep, check and serve options.
func processGoalOptions(cfg *Config, input *ConfigRawInput) error {
	cfg.MaxTier = DefaultMaxTier
	if input.MaxTier != "" {
		tier, err := ParseSafetyTier(input.MaxTier)
		if err != nil {
			return err
		}
		cfg.MaxTier = tier
	}

	cfg.Step = DefaultStep
	if input.Step != 0 {
		if err := ValidateStep(input.Step); err != nil {
			return err
		}
		cfg.Step = input.Step
	}

	cfg.ListenAddr = DefaultListenAddr
	if input.Listen != "" {
		cfg.ListenAddr = input.Listen
	}
	return nil
}

// ProcessProfilingConfig processes the profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// BiometricProfile returns the validated profile of a metrics calculation.
func (c *Config) BiometricProfile(age int) (schema.BiometricProfile, error) {
	p := schema.BiometricProfile{
		Weight:        c.Weight,
		Height:        c.Height,
		Age:           age,
		Sex:           c.Sex,
		ActivityLevel: c.ActivityLevel,
		Goal:          c.Goal,
	}
	if err := ValidateBiometricProfile(p); err != nil {
		return schema.BiometricProfile{}, err
	}
	return p, nil
}

// GoalRequest returns the validated inputs of a weight goal analysis.
func (c *Config) GoalRequest() (schema.GoalRequest, error) {
	r := schema.GoalRequest{
		CurrentWeight: c.Weight,
		TargetWeight:  c.TargetWeight,
		Height:        c.Height,
		Sex:           c.Sex,
	}
	if err := ValidateGoalRequest(r); err != nil {
		return schema.GoalRequest{}, err
	}
	return r, nil
}

// OnboardingInput returns the validated onboarding submission.
func (c *Config) OnboardingInput(now time.Time) (schema.OnboardingInput, error) {
	in := schema.OnboardingInput{
		Name:          c.Name,
		DateOfBirth:   c.DateOfBirth,
		Sex:           c.Sex,
		Weight:        c.Weight,
		Height:        c.Height,
		ActivityLevel: c.ActivityLevel,
		Goal:          c.Goal,
		TargetWeight:  c.TargetWeight,
		Preferences:   c.Preferences,
	}
	if err := ValidateOnboardingInput(in, now); err != nil {
		return schema.OnboardingInput{}, err
	}
	return in, nil
}
