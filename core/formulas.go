package core

import (
	"strconv"

	"github.com/huangsam/nutriplan/core/algo"
	"github.com/huangsam/nutriplan/schema"
)

var activityDescriptions = map[schema.ActivityLevel]string{
	schema.SedentaryLevel:  "Little or no exercise, desk job",
	schema.LightLevel:      "Light exercise 1-3 days a week",
	schema.ModerateLevel:   "Moderate exercise 3-5 days a week",
	schema.ActiveLevel:     "Hard exercise 6-7 days a week",
	schema.VeryActiveLevel: "Very hard exercise or a physical job",
}

// BuildFormulaReference lists every formula, table and threshold the
// calculators use, in the order a reader would apply them.
func BuildFormulaReference() schema.FormulaRenderModel {
	formulas := []schema.FormulaEntry{
		{
			Name:    "BMI",
			Purpose: "Body mass index",
			Formula: "weight / (height/100)^2, rounded to 0.1",
			Unit:    "kg/m2",
		},
		{
			Name:    "BMR",
			Purpose: "Mifflin-St Jeor basal metabolic rate",
			Formula: "10*weight + 6.25*height - 5*age + 5 (male) or - 161 (female, other), rounded",
			Unit:    "kcal/day",
		},
		{
			Name:    "TDEE",
			Purpose: "Total daily energy expenditure",
			Formula: "BMR * activity multiplier, rounded",
			Unit:    "kcal/day",
		},
		{
			Name:    "Ideal weight",
			Purpose: "Lorentz ideal weight",
			Formula: "height - 100 - (height-150)/4 (male) or /2.5 (female, other), rounded to 0.1",
			Unit:    "kg",
		},
		{
			Name:    "Body fat",
			Purpose: "Deurenberg body fat estimate",
			Formula: "1.2*BMI + 0.23*age - 16.2 (male) or - 5.4 (female, other), clamped to 3..50",
			Unit:    "%",
		},
		{
			Name:    "Daily calories",
			Purpose: "Energy target for the goal",
			Formula: "TDEE * calorie factor, rounded",
			Unit:    "kcal/day",
		},
		{
			Name:    "Macros",
			Purpose: "Daily protein, carbs and fat",
			Formula: "calories*ratio/4 (protein, carbs) and calories*ratio/9 (fat), rounded",
			Unit:    "g/day",
		},
		{
			Name:    "Duration",
			Purpose: "Time to reach the target weight",
			Formula: "ceil(|target - current| / weekly rate) weeks, weeks/4.33 months",
			Unit:    "weeks",
		},
	}

	activities := make([]schema.ActivityEntry, 0, len(schema.AllActivityLevels))
	for _, level := range schema.AllActivityLevels {
		activities = append(activities, schema.ActivityEntry{
			Level:       level,
			Multiplier:  schema.Multiplier(level),
			Description: activityDescriptions[level],
		})
	}

	goals := make([]schema.GoalEntry, 0, len(schema.AllGoals))
	for _, goal := range schema.AllGoals {
		goals = append(goals, schema.GoalEntry{
			Goal:          goal,
			CalorieFactor: schema.CalorieFactor(goal),
			Ratios:        schema.MacroRatiosFor(goal),
		})
	}

	return schema.FormulaRenderModel{
		Title:       "🧮 Nutrition Formulas",
		Description: "Formulas, tables and thresholds behind every metric and goal analysis.",
		Formulas:    formulas,
		Activities:  activities,
		Goals:       goals,
		Bands:       append(LossBands(), GainBands()...),
		Thresholds: map[string]string{
			"min_safe_bmi":           strconv.FormatFloat(algo.UnderweightBMI, 'f', -1, 64),
			"max_safe_bmi":           strconv.FormatFloat(algo.ObeseBMI, 'f', -1, 64),
			"ideal_weight_margin":    kg(idealWeightMargin) + " kg",
			"max_recommended_change": kg(schema.MaxRecommendedChange) + " kg",
			"weeks_per_month":        strconv.FormatFloat(weeksPerMonth, 'f', -1, 64),
		},
	}
}
