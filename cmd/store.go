package cmd

import (
	"fmt"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/persist"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeConfig resolves the backend settings without the full shared setup.
func storeConfig() error {
	setConfigSource()
	if err := readConfigFile(); err != nil {
		return err
	}

	backend, err := contract.ParseDatabaseBackend(viper.GetString("store-backend"))
	if err != nil {
		return err
	}
	connStr := viper.GetString("store-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// storeSetup loads minimal configuration and opens the profile store.
func storeSetup() error {
	if err := storeConfig(); err != nil {
		return err
	}
	if err := persist.InitStores(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize profile store: %w", err)
	}
	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetupWrapper resolves the backend without opening the store,
// so migrations can run against a fresh database.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeConfig()
}

// storeCmd focused on profile store management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup, since they read no biometric input.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the profile store",
	Long: `Manage the database that holds onboarded profiles and their weight history.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored profiles
  export  - Export profiles and weigh-ins to Parquet
  migrate - Run database schema migrations

Examples:
  # Check store status
  nutriplan store status

  # Use PostgreSQL through the environment
  NUTRIPLAN_STORE_BACKEND=postgresql \
  NUTRIPLAN_STORE_DB_CONNECT="host=localhost user=nutriplan password=secret dbname=nutriplan" \
  nutriplan store status`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show the backend, connection health, profile and weigh-in counts,
the newest and oldest profiles, and the row count of every table.

Examples:
  nutriplan store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := persist.Manager.GetProfileStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		persist.PrintStoreStatus(status)
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored profiles, preferences and weigh-ins",
	Long: `Delete every stored profile from the configured backend.

For SQLite the database file is removed. For MySQL and PostgreSQL the
tables are dropped; run 'nutriplan store migrate' or any command that
opens the store to recreate them.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  nutriplan store export --output-file backup
  nutriplan store clear`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// For SQLite the connection string is the database file path
		if err := persist.ClearStore(cfg.StoreBackend, cfg.StoreDBConnect, cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear profile store", err)
		}
		fmt.Println("Profile store cleared successfully.")
	},
}

// storeExportCmd exports the store to Parquet files.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profiles and weigh-ins to Parquet for analytics",
	Long: `Export the store to two Parquet files:
- <output-file>.profiles.parquet - one row per profile with metrics and preferences
- <output-file>.weight_history.parquet - one row per weigh-in

Requires: --output-file parameter

Examples:
  nutriplan store export --output-file nutriplan
  duckdb -c "SELECT name, bmi, safety FROM read_parquet('nutriplan.profiles.parquet')"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := persist.ExecuteStoreExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export profile store", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the profile store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the profile store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  nutriplan store migrate

  # Rollback everything
  nutriplan store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := persist.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
