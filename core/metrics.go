package core

import (
	"time"

	"github.com/huangsam/nutriplan/core/algo"
	"github.com/huangsam/nutriplan/schema"
)

// Body fat estimates are clamped to this realistic range.
const (
	minBodyFatPercent = 3.0
	maxBodyFatPercent = 50.0
)

// BMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day.
// Any sex other than MALE uses the female constant.
func BMR(weight, height float64, age int, sex schema.Sex) float64 {
	offset := -161.0
	if sex.UsesMaleFormula() {
		offset = 5
	}
	return algo.RoundHalfUp(10*weight + 6.25*height - 5*float64(age) + offset)
}

// TDEE returns the total daily energy expenditure for a BMR and activity level.
func TDEE(bmr float64, level schema.ActivityLevel) float64 {
	return algo.RoundHalfUp(bmr * schema.Multiplier(level))
}

// BodyFatPercent estimates body fat from BMI and age.
func BodyFatPercent(bmi float64, age int, sex schema.Sex) float64 {
	offset := -5.4
	if sex.UsesMaleFormula() {
		offset = -16.2
	}
	estimate := algo.Round1(1.2*bmi + 0.23*float64(age) + offset)
	return algo.Clamp(estimate, minBodyFatPercent, maxBodyFatPercent)
}

// DailyCalories returns the calorie target for a goal: a 20% deficit to lose
// weight, a 10% surplus to gain muscle, the TDEE itself to maintain.
func DailyCalories(tdee float64, goal schema.Goal) int {
	switch goal {
	case schema.LoseWeightGoal, schema.GainMuscleGoal:
		return algo.RoundInt(tdee * schema.CalorieFactor(goal))
	default:
		return int(tdee)
	}
}

// Macros splits a calorie target into grams of protein, carbs and fat.
// Each gram count is rounded on its own, so the split's energy can drift a
// few kcal from the target.
func Macros(calories int, goal schema.Goal) schema.MacroSplit {
	ratios := schema.MacroRatiosFor(goal)
	kcal := float64(calories)
	return schema.MacroSplit{
		Protein: algo.RoundInt(kcal * ratios.Protein / 4),
		Carbs:   algo.RoundInt(kcal * ratios.Carbs / 4),
		Fat:     algo.RoundInt(kcal * ratios.Fat / 9),
	}
}

// Age returns the number of whole years between dob and now, counting a
// birthday as reached on its calendar day.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// AgeToday is Age evaluated at the current local time.
func AgeToday(dob time.Time) int {
	return Age(dob, time.Now())
}

// ComputeMetrics derives every metric of a profile. Later metrics build on
// earlier ones: TDEE on BMR, body fat on BMI, macros on daily calories.
func ComputeMetrics(profile schema.BiometricProfile) schema.DerivedMetrics {
	bmi := algo.BMI(profile.Weight, profile.Height)
	bmr := BMR(profile.Weight, profile.Height, profile.Age, profile.Sex)
	tdee := TDEE(bmr, profile.ActivityLevel)
	ideal := algo.IdealWeight(profile.Height, profile.Sex)
	bodyFat := BodyFatPercent(bmi, profile.Age, profile.Sex)
	calories := DailyCalories(tdee, profile.Goal)
	macros := Macros(calories, profile.Goal)

	return schema.DerivedMetrics{
		BMI:            bmi,
		BMR:            bmr,
		TDEE:           tdee,
		IdealWeight:    ideal,
		BodyFatPercent: bodyFat,
		DailyCalories:  calories,
		DailyProtein:   macros.Protein,
		DailyCarbs:     macros.Carbs,
		DailyFat:       macros.Fat,
	}
}

// BuildMetricsResult computes metrics and labels the resulting BMI.
func BuildMetricsResult(profile schema.BiometricProfile) schema.MetricsResult {
	metrics := ComputeMetrics(profile)
	return schema.MetricsResult{
		Profile:     profile,
		Metrics:     metrics,
		BMICategory: algo.BMICategory(metrics.BMI),
	}
}
