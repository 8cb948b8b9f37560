package schema

// FormulaEntry documents one formula of the engine.
type FormulaEntry struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Formula string `json:"formula"`
	Unit    string `json:"unit"`
}

// ActivityEntry documents one activity multiplier.
type ActivityEntry struct {
	Level       ActivityLevel `json:"level"`
	Multiplier  float64       `json:"multiplier"`
	Description string        `json:"description"`
}

// GoalEntry documents the calorie adjustment and macro split of a goal.
type GoalEntry struct {
	Goal          Goal        `json:"goal"`
	CalorieFactor float64     `json:"calorie_factor"`
	Ratios        MacroRatios `json:"ratios"`
}

// BandEntry documents one magnitude band of the safety analyzer.
type BandEntry struct {
	Direction  Direction  `json:"direction"`
	UpTo       float64    `json:"up_to"` // inclusive upper bound in kg; 0 means unbounded
	WeeklyRate float64    `json:"weekly_rate"`
	Tier       SafetyTier `json:"tier"`
}

// FormulaRenderModel is the complete reference shown by the formulas command.
type FormulaRenderModel struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Formulas    []FormulaEntry    `json:"formulas"`
	Activities  []ActivityEntry   `json:"activities"`
	Goals       []GoalEntry       `json:"goals"`
	Bands       []BandEntry       `json:"bands"`
	Thresholds  map[string]string `json:"thresholds"`
}
