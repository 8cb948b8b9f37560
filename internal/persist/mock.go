package persist

import (
	"time"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetProfileStore implements the StoreManager interface.
func (m *MockStoreManager) GetProfileStore() contract.ProfileStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ProfileStore)
	return store
}

// MockProfileStore is a mock implementation of ProfileStore for testing.
type MockProfileStore struct {
	mock.Mock
}

var _ contract.ProfileStore = &MockProfileStore{} // Compile-time check

// SaveOnboarding implements the ProfileStore interface.
func (m *MockProfileStore) SaveOnboarding(plan schema.OnboardingPlan) (string, error) {
	args := m.Called(plan)
	return args.String(0), args.Error(1)
}

// GetProfile implements the ProfileStore interface.
func (m *MockProfileStore) GetProfile(profileID string) (schema.ProfileRecord, error) {
	args := m.Called(profileID)
	return args.Get(0).(schema.ProfileRecord), args.Error(1)
}

// ListProfiles implements the ProfileStore interface.
func (m *MockProfileStore) ListProfiles() ([]schema.ProfileRecord, error) {
	args := m.Called()
	profiles, _ := args.Get(0).([]schema.ProfileRecord)
	return profiles, args.Error(1)
}

// RecordWeight implements the ProfileStore interface.
func (m *MockProfileStore) RecordWeight(profileID string, weight float64, notes string, at time.Time) (schema.WeightEntry, error) {
	args := m.Called(profileID, weight, notes, at)
	return args.Get(0).(schema.WeightEntry), args.Error(1)
}

// GetWeightHistory implements the ProfileStore interface.
func (m *MockProfileStore) GetWeightHistory(profileID string) ([]schema.WeightEntry, error) {
	args := m.Called(profileID)
	history, _ := args.Get(0).([]schema.WeightEntry)
	return history, args.Error(1)
}

// GetStatus implements the ProfileStore interface.
func (m *MockProfileStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the ProfileStore interface.
func (m *MockProfileStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
