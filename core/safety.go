package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/huangsam/nutriplan/core/algo"
	"github.com/huangsam/nutriplan/schema"
)

// weeksPerMonth converts estimated weeks into months.
const weeksPerMonth = 4.33

// Targets further than this below the ideal weight draw a warning.
const idealWeightMargin = 10.0

// rateBand maps a maximum absolute change (kg) to a weekly rate and tier.
type rateBand struct {
	upTo float64
	rate float64
	tier schema.SafetyTier
}

// A change larger than the last finite upTo falls into the final band.
var (
	lossBands = []rateBand{
		{upTo: 5, rate: 0.5, tier: schema.SafeTier},
		{upTo: 10, rate: 0.5, tier: schema.SafeTier},
		{upTo: 20, rate: 0.6, tier: schema.ModerateTier},
		{upTo: math.Inf(1), rate: 0.5, tier: schema.RiskyTier},
	}
	gainBands = []rateBand{
		{upTo: 5, rate: 0.35, tier: schema.SafeTier},
		{upTo: 10, rate: 0.35, tier: schema.SafeTier},
		{upTo: 15, rate: 0.4, tier: schema.ModerateTier},
		{upTo: math.Inf(1), rate: 0.35, tier: schema.RiskyTier},
	}
)

// LossBands returns the weight loss rate bands, smallest change first.
func LossBands() []schema.BandEntry { return bandEntries(schema.LossDirection, lossBands) }

// GainBands returns the weight gain rate bands, smallest change first.
func GainBands() []schema.BandEntry { return bandEntries(schema.GainDirection, gainBands) }

func bandEntries(direction schema.Direction, bands []rateBand) []schema.BandEntry {
	entries := make([]schema.BandEntry, 0, len(bands))
	for _, b := range bands {
		upTo := b.upTo
		if math.IsInf(upTo, 1) {
			upTo = 0
		}
		entries = append(entries, schema.BandEntry{
			Direction:  direction,
			UpTo:       upTo,
			WeeklyRate: b.rate,
			Tier:       b.tier,
		})
	}
	return entries
}

func selectBand(bands []rateBand, absChange float64) rateBand {
	for _, b := range bands {
		if absChange <= b.upTo {
			return b
		}
	}
	return bands[len(bands)-1]
}

// kg formats a weight the way it was entered: 55 stays "55", 52.2 stays "52.2".
func kg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// goalAnalyzer accumulates the analysis of a single weight goal.
type goalAnalyzer struct {
	target            float64
	change, absChange float64
	ideal             float64
	minSafe, maxSafe  float64

	rate            float64
	tier            schema.SafetyTier
	detailed        []string
	warnings        []string
	recommendations []string
}

func (a *goalAnalyzer) warn(msg string)      { a.warnings = append(a.warnings, msg) }
func (a *goalAnalyzer) recommend(msg string) { a.recommendations = append(a.recommendations, msg) }
func (a *goalAnalyzer) detail(msg string)    { a.detailed = append(a.detailed, msg) }

func (a *goalAnalyzer) analyzeLoss() {
	band := selectBand(lossBands, a.absChange)
	a.rate, a.tier = band.rate, band.tier

	switch {
	case a.absChange <= 10:
	case a.absChange <= 20:
		a.warn("Ambitious goal that requires several months of commitment")
		a.recommend("Consult a nutritionist for personalised follow-up")
	default:
		a.warn("Very ambitious goal that requires medical supervision")
		a.recommend("Consider intermediate targets (in steps of 10 kg)")
		a.recommend("Consult a doctor before starting")
	}

	if a.target < a.minSafe {
		a.tier = schema.DangerousTier
		a.warn(fmt.Sprintf("⚠️ The target weight (%skg) is below the safety threshold (BMI < 18.5)", kg(a.target)))
		a.warn("Risks: malnutrition, chronic fatigue, hormonal disorders")
		a.recommend(fmt.Sprintf("Minimum recommended weight: %skg (BMI 18.5)", kg(a.minSafe)))
	}

	if a.target < a.ideal-idealWeightMargin {
		if a.tier == schema.SafeTier {
			a.tier = schema.ModerateTier
		}
		a.warn("The target weight is well below your ideal weight")
	}

	switch {
	case a.absChange <= 10 && a.target >= a.minSafe:
		a.detail("✅ Realistic and healthy goal")
		a.detail(fmt.Sprintf("Loss: %skg", kg(a.absChange)))
		a.detail(fmt.Sprintf("Recommended pace: %skg/week", kg(a.rate)))
		a.detail("💡 This pace preserves muscle mass and helps build lasting habits")
	case a.target >= a.minSafe:
		a.detail("⚠️ Ambitious goal")
		a.detail(fmt.Sprintf("Total loss: %skg", kg(a.absChange)))
		a.detail("A large change takes time and perseverance")
	}
}

func (a *goalAnalyzer) analyzeGain() {
	band := selectBand(gainBands, a.absChange)
	a.rate, a.tier = band.rate, band.tier

	switch {
	case a.absChange <= 5:
	case a.absChange <= 10:
		a.recommend("Combine with a strength training programme to maximise muscle gain")
	case a.absChange <= 15:
		a.warn("Large gain: risk of fat gain without accompanying training")
		a.recommend("A structured strength training programme is strongly recommended")
	default:
		a.warn("Very large gain: high risk of excessive fat gain")
		a.recommend("Consider staged targets with regular reassessment")
		a.recommend("Follow-up with a sports coach and nutritionist recommended")
	}

	if a.target > a.maxSafe {
		a.tier = schema.DangerousTier
		a.warn(fmt.Sprintf("⚠️ The target weight (%skg) exceeds the safety threshold (BMI > 30)", kg(a.target)))
		a.warn("Risks: cardiovascular problems, diabetes, hypertension")
		a.recommend(fmt.Sprintf("Maximum recommended weight: %skg (BMI 30)", kg(a.maxSafe)))
	}

	if a.absChange <= 10 && a.target <= a.maxSafe {
		a.detail("✅ Realistic muscle gain goal")
		a.detail(fmt.Sprintf("Gain: %skg", kg(a.absChange)))
		a.detail(fmt.Sprintf("Optimal pace: %skg/week", kg(a.rate)))
		a.detail("💡 This pace minimises fat gain and supports muscle building")
	}
}

func (a *goalAnalyzer) analyzeMaintain() {
	a.rate, a.tier = 0, schema.SafeTier
	a.detail("✅ Maintaining current weight")
	a.detail("Focus on nutritional balance and body composition")
}

func (a *goalAnalyzer) mainMessage(direction schema.Direction) string {
	switch a.tier {
	case schema.SafeTier:
		switch direction {
		case schema.LossDirection:
			return "Realistic and healthy weight loss goal"
		case schema.GainDirection:
			return "Realistic muscle gain goal"
		default:
			return "Weight maintenance goal"
		}
	case schema.ModerateTier:
		return "Ambitious but achievable goal with commitment"
	case schema.RiskyTier:
		return "Very ambitious goal requiring professional follow-up"
	default: // DangerousTier
		return "Goal carrying health risks"
	}
}

// generalAdvice adds the baseline recommendations of a safe goal.
func (a *goalAnalyzer) generalAdvice(direction schema.Direction) {
	if a.tier != schema.SafeTier {
		return
	}
	switch direction {
	case schema.LossDirection:
		a.recommend("Keep protein intake sufficient (1.6-2g/kg)")
		a.recommend("Exercise regularly to preserve muscle mass")
	case schema.GainDirection:
		a.recommend("Favour nutritious, calorie-dense foods (nuts, avocados, whole grains)")
		a.recommend("Resistance training 3-4 times a week")
	}
}

// AnalyzeWeightGoal classifies how safe it is to go from the current weight
// to the target weight and estimates the duration at the recommended rate.
func AnalyzeWeightGoal(currentWeight, targetWeight, height float64, sex schema.Sex) schema.WeightGoalAnalysis {
	a := &goalAnalyzer{
		target:          targetWeight,
		change:          targetWeight - currentWeight,
		ideal:           algo.IdealWeight(height, sex),
		minSafe:         algo.WeightAtBMI(algo.UnderweightBMI, height),
		maxSafe:         algo.WeightAtBMI(algo.ObeseBMI, height),
		detailed:        []string{},
		warnings:        []string{},
		recommendations: []string{},
	}
	a.absChange = math.Abs(a.change)

	direction := schema.DirectionOf(a.change)
	switch direction {
	case schema.LossDirection:
		a.analyzeLoss()
	case schema.GainDirection:
		a.analyzeGain()
	default:
		a.analyzeMaintain()
	}

	weeks := 0
	if a.rate > 0 {
		weeks = int(math.Ceil(a.absChange / a.rate))
	}

	main := a.mainMessage(direction)
	a.generalAdvice(direction)

	return schema.WeightGoalAnalysis{
		Safety:                a.tier,
		IsRealistic:           a.tier.IsRealistic(),
		Direction:             direction,
		WeightChange:          a.change,
		TargetBMI:             algo.BMI(targetWeight, height),
		CurrentBMI:            algo.BMI(currentWeight, height),
		RecommendedWeeklyRate: a.rate,
		EstimatedWeeks:        weeks,
		EstimatedMonths:       algo.Round1(float64(weeks) / weeksPerMonth),
		MainMessage:           main,
		DetailedMessages:      a.detailed,
		Warnings:              a.warnings,
		Recommendations:       a.recommendations,
		IdealWeight:           a.ideal,
		MinSafeWeight:         a.minSafe,
		MaxSafeWeight:         a.maxSafe,
		MaxRecommendedChange:  schema.MaxRecommendedChange,
	}
}

// ComputeWeightGoalAnalysis is AnalyzeWeightGoal under the name used by API callers.
func ComputeWeightGoalAnalysis(currentWeight, targetWeight, height float64, sex schema.Sex) schema.WeightGoalAnalysis {
	return AnalyzeWeightGoal(currentWeight, targetWeight, height, sex)
}

// AnalyzeGoalRequest runs AnalyzeWeightGoal on a request body.
func AnalyzeGoalRequest(req schema.GoalRequest) schema.WeightGoalAnalysis {
	return AnalyzeWeightGoal(req.CurrentWeight, req.TargetWeight, req.Height, req.Sex)
}
