package schema

import "time"

// ProfileRecord represents a row from the nutriplan_profiles table.
type ProfileRecord struct {
	ProfileID              string         `json:"profile_id"`
	Name                   string         `json:"name"`
	DateOfBirth            time.Time      `json:"date_of_birth"`
	Sex                    Sex            `json:"sex"`
	Weight                 float64        `json:"weight"`
	Height                 float64        `json:"height"`
	ActivityLevel          ActivityLevel  `json:"activity_level"`
	Goal                   Goal           `json:"goal"`
	TargetWeight           float64        `json:"target_weight"`
	WeeklyWeightChangeGoal float64        `json:"weekly_weight_change_goal"`
	EstimatedTargetDate    time.Time      `json:"estimated_target_date"`
	Metrics                DerivedMetrics `json:"metrics"`
	Safety                 SafetyTier     `json:"safety"`
	OnboardingCompleted    bool           `json:"onboarding_completed"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	Preferences            *Preferences   `json:"preferences,omitempty"`
}

// WeightEntry represents a row from the nutriplan_weight_history table.
type WeightEntry struct {
	EntryID    string    `json:"entry_id"`
	ProfileID  string    `json:"profile_id"`
	Weight     float64   `json:"weight"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ProfileDetails bundles a stored profile with its weight history.
type ProfileDetails struct {
	Profile ProfileRecord `json:"profile"`
	History []WeightEntry `json:"history"`
}

// StoreStatus represents the status of the profile store.
type StoreStatus struct {
	Backend           string           `json:"backend"`
	Connected         bool             `json:"connected"`
	TotalProfiles     int              `json:"total_profiles"`
	LastProfileID     string           `json:"last_profile_id"`
	LastProfileTime   time.Time        `json:"last_profile_time"`
	OldestProfileTime time.Time        `json:"oldest_profile_time"`
	TotalWeighIns     int              `json:"total_weigh_ins"`
	TableSizes        map[string]int64 `json:"table_sizes"`
}
