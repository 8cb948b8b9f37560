package persist

import (
	"errors"
	"fmt"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/parquet"
	"github.com/huangsam/nutriplan/schema"
)

// ExecuteStoreExport performs the actual export of profile data to Parquet files.
func ExecuteStoreExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	store := Manager.GetProfileStore()
	if store == nil {
		return contract.ErrStoreDisabled
	}
	return ExportStore(store, outputFile)
}

// ExportStore writes every profile and weigh-in of a store to
// outputFile.profiles.parquet and outputFile.weight_history.parquet.
func ExportStore(store contract.ProfileStore, outputFile string) error {
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if !status.Connected {
		return contract.ErrStoreDisabled
	}
	if status.TotalProfiles == 0 {
		return errors.New("no profile data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total profiles: %d\n", status.TotalProfiles)
	fmt.Printf("Total weigh-ins: %d\n", status.TotalWeighIns)

	profiles, err := store.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to retrieve profiles: %w", err)
	}

	var history []schema.WeightEntry
	for _, p := range profiles {
		entries, err := store.GetWeightHistory(p.ProfileID)
		if err != nil {
			return fmt.Errorf("failed to retrieve weight history of %s: %w", p.ProfileID, err)
		}
		history = append(history, entries...)
	}

	parquetProfiles := parquet.ConvertProfileRecords(profiles)
	parquetHistory := parquet.ConvertWeightEntries(history)

	profilesFile := outputFile + ".profiles.parquet"
	if err := parquet.WriteProfilesParquet(parquetProfiles, profilesFile); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	fmt.Printf("Exported %d profiles to: %s\n", len(parquetProfiles), profilesFile)

	historyFile := outputFile + ".weight_history.parquet"
	if err := parquet.WriteWeightHistoryParquet(parquetHistory, historyFile); err != nil {
		return fmt.Errorf("failed to write weight history: %w", err)
	}
	fmt.Printf("Exported %d weigh-ins to: %s\n", len(parquetHistory), historyFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
