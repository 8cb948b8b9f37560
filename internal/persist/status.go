package persist

import (
	"fmt"
	"maps"
	"slices"

	"github.com/huangsam/nutriplan/schema"
)

// PrintStoreStatus prints profile store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Profiles: %d\n", status.TotalProfiles)
	if status.TotalProfiles > 0 {
		fmt.Printf("Last Profile ID: %s\n", status.LastProfileID)
		fmt.Printf("Last Profile: %s\n", status.LastProfileTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Profile: %s\n", status.OldestProfileTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Total Weigh-ins: %d\n", status.TotalWeighIns)
	fmt.Println("Table Sizes:")
	for _, table := range slices.Sorted(maps.Keys(status.TableSizes)) {
		fmt.Printf("  %s: %d rows\n", table, status.TableSizes[table])
	}
}
