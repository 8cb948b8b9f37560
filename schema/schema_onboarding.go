package schema

import "time"

// NoDietType is the diet type value that means "no preference recorded".
const NoDietType = "none"

// InitialWeightNote annotates the weight history row written at onboarding.
const InitialWeightNote = "Initial weight recorded at onboarding"

// Preferences holds the optional dietary preferences captured at onboarding.
type Preferences struct {
	DietType  string   `json:"diet_type,omitempty"`
	Allergies []string `json:"allergies,omitempty"`
	Dislikes  []string `json:"dislikes,omitempty"`
}

// HasDietType reports whether a diet type other than "none" was given.
func (p Preferences) HasDietType() bool {
	return p.DietType != "" && p.DietType != NoDietType
}

// OnboardingInput is the validated onboarding submission.
type OnboardingInput struct {
	Name          string        `json:"name"`
	DateOfBirth   time.Time     `json:"date_of_birth"`
	Sex           Sex           `json:"sex"`
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
	TargetWeight  float64       `json:"target_weight"`
	Preferences   Preferences   `json:"preferences"`
}

// OnboardingPlan is everything derived from an onboarding submission
// that the profile store persists.
type OnboardingPlan struct {
	Input                  OnboardingInput    `json:"input"`
	Age                    int                `json:"age"`
	Metrics                DerivedMetrics     `json:"metrics"`
	Analysis               WeightGoalAnalysis `json:"analysis"`
	WeeklyWeightChangeGoal float64            `json:"weekly_weight_change_goal"`
	EstimatedTargetDate    time.Time          `json:"estimated_target_date"`
	OnboardingCompleted    bool               `json:"onboarding_completed"`
	CreatedAt              time.Time          `json:"created_at"`
}

// Profile returns the biometric profile the plan was computed from.
func (p OnboardingPlan) Profile() BiometricProfile {
	return BiometricProfile{
		Weight:        p.Input.Weight,
		Height:        p.Input.Height,
		Age:           p.Age,
		Sex:           p.Input.Sex,
		ActivityLevel: p.Input.ActivityLevel,
		Goal:          p.Input.Goal,
	}
}

// OnboardingResponse is the summary returned to clients after onboarding.
type OnboardingResponse struct {
	Success bool              `json:"success"`
	User    OnboardingSummary `json:"user"`
}

// OnboardingSummary identifies the stored profile and its metrics.
type OnboardingSummary struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	OnboardingCompleted bool           `json:"onboarding_completed"`
	Metrics             DerivedMetrics `json:"metrics"`
}
