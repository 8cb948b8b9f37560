// Package contract provides interfaces and shared utilities for nutriplan's internal architecture.
package contract

import (
	"errors"
	"time"

	"github.com/huangsam/nutriplan/schema"
)

// ErrProfileNotFound is returned by a ProfileStore when no profile has the requested ID.
var ErrProfileNotFound = errors.New("profile not found")

// ErrStoreDisabled is returned by a ProfileStore backed by the none backend.
var ErrStoreDisabled = errors.New("profile store is disabled (store-backend is none)")

// StoreManager defines the interface for managing profile stores.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetProfileStore() ProfileStore
}

// ProfileStore defines the interface for persisting onboarded profiles and
// their weight history.
type ProfileStore interface {
	// SaveOnboarding stores the profile, its preferences and the initial
	// weight entry of a plan, returning the new profile ID.
	SaveOnboarding(plan schema.OnboardingPlan) (string, error)

	// GetProfile returns a stored profile with its preferences.
	GetProfile(profileID string) (schema.ProfileRecord, error)

	// ListProfiles returns every stored profile, newest first.
	ListProfiles() ([]schema.ProfileRecord, error)

	// RecordWeight appends a weigh-in to the history of a profile.
	RecordWeight(profileID string, weight float64, notes string, at time.Time) (schema.WeightEntry, error)

	// GetWeightHistory returns the weigh-ins of a profile, oldest first.
	GetWeightHistory(profileID string) ([]schema.WeightEntry, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
