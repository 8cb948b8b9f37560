// Package persist stores onboarded profiles and their weight history.
package persist

import (
	"sync"

	"github.com/huangsam/nutriplan/internal/contract"
)

// ProfileStoreManager manages the ProfileStore instance.
type ProfileStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	profiles     contract.ProfileStore
}

var _ contract.StoreManager = &ProfileStoreManager{} // Compile-time check

// GetProfileStore returns the ProfileStore, or nil before InitStores.
func (mgr *ProfileStoreManager) GetProfileStore() contract.ProfileStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.profiles
}
