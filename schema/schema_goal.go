package schema

// MaxRecommendedChange is the largest change in kg advised without medical validation.
const MaxRecommendedChange = 20.0

// WeightGoalAnalysis is the feasibility report for a target weight.
type WeightGoalAnalysis struct {
	Safety      SafetyTier `json:"safety"`
	IsRealistic bool       `json:"is_realistic"`
	Direction   Direction  `json:"direction"`

	WeightChange          float64 `json:"weight_change"` // target minus current, kg
	TargetBMI             float64 `json:"target_bmi"`
	CurrentBMI            float64 `json:"current_bmi"`
	RecommendedWeeklyRate float64 `json:"recommended_weekly_rate"` // kg per week
	EstimatedWeeks        int     `json:"estimated_weeks"`
	EstimatedMonths       float64 `json:"estimated_months"`

	MainMessage      string   `json:"main_message"`
	DetailedMessages []string `json:"detailed_messages"`
	Warnings         []string `json:"warnings"`
	Recommendations  []string `json:"recommendations"`

	IdealWeight          float64 `json:"ideal_weight"`
	MinSafeWeight        float64 `json:"min_safe_weight"` // BMI 18.5
	MaxSafeWeight        float64 `json:"max_safe_weight"` // BMI 30
	MaxRecommendedChange float64 `json:"max_recommended_change"`
}

// GoalRequest carries the inputs of a weight goal analysis.
type GoalRequest struct {
	CurrentWeight float64 `json:"current_weight"`
	TargetWeight  float64 `json:"target_weight"`
	Height        float64 `json:"height"`
	Sex           Sex     `json:"sex"`
}

// SweepPoint is the analysis of one candidate target weight.
type SweepPoint struct {
	TargetWeight float64    `json:"target_weight"`
	Safety       SafetyTier `json:"safety"`
	WeightChange float64    `json:"weight_change"`
	TargetBMI    float64    `json:"target_bmi"`
	WeeklyRate   float64    `json:"weekly_rate"`
	Weeks        int        `json:"weeks"`
	Months       float64    `json:"months"`
	MainMessage  string     `json:"main_message"`
}

// SweepResult holds the analyses of every target in a slider range.
type SweepResult struct {
	CurrentWeight float64      `json:"current_weight"`
	Height        float64      `json:"height"`
	Sex           Sex          `json:"sex"`
	Min           float64      `json:"min"`
	Max           float64      `json:"max"`
	Step          float64      `json:"step"`
	Points        []SweepPoint `json:"points"`
}

// GoalCheckResult holds the outcome of gating a goal against a maximum tier.
type GoalCheckResult struct {
	Passed   bool               `json:"passed"`
	MaxTier  SafetyTier         `json:"max_tier"`
	Analysis WeightGoalAnalysis `json:"analysis"`
}
