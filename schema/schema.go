// Package schema has the models and enumerations shared by all parts of nutriplan.
package schema

// BiometricProfile is the immutable input of a metrics calculation.
type BiometricProfile struct {
	Weight        float64       `json:"weight"` // kg
	Height        float64       `json:"height"` // cm
	Age           int           `json:"age"`    // years
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// MacroRatios holds the calorie share of each macronutrient. The shares sum to 1.
type MacroRatios struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacroSplit holds daily macronutrient targets in grams.
type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Energy returns the kcal supplied by the split (4 kcal/g protein and carbs, 9 kcal/g fat).
func (m MacroSplit) Energy() int {
	return m.Protein*4 + m.Carbs*4 + m.Fat*9
}

// DerivedMetrics is recomputed from a BiometricProfile on every change.
type DerivedMetrics struct {
	BMI            float64 `json:"bmi"`
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
	IdealWeight    float64 `json:"ideal_weight"`
	BodyFatPercent float64 `json:"body_fat_percent"`
	DailyCalories  int     `json:"daily_calories"`
	DailyProtein   int     `json:"daily_protein"`
	DailyCarbs     int     `json:"daily_carbs"`
	DailyFat       int     `json:"daily_fat"`
}

// Macros returns the macronutrient part of the metrics.
func (d DerivedMetrics) Macros() MacroSplit {
	return MacroSplit{Protein: d.DailyProtein, Carbs: d.DailyCarbs, Fat: d.DailyFat}
}

// MetricsResult pairs a profile with the metrics derived from it.
type MetricsResult struct {
	Profile     BiometricProfile `json:"profile"`
	Metrics     DerivedMetrics   `json:"metrics"`
	BMICategory string           `json:"bmi_category"`
}
