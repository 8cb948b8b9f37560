package core

import (
	"math"

	"github.com/huangsam/nutriplan/core/algo"
	"github.com/huangsam/nutriplan/schema"
)

// Bounds of the target weight slider.
const (
	sweepSpan      = 30.0  // kg on each side of the current weight
	sweepFloor     = 40.0  // lowest target offered
	sweepCeiling   = 200.0 // highest target offered
	sweepTolerance = 1e-9
)

// SweepRange returns the slider bounds around a current weight.
func SweepRange(currentWeight float64) (lo, hi float64) {
	lo = math.Max(sweepFloor, algo.RoundHalfUp(currentWeight-sweepSpan))
	hi = math.Min(sweepCeiling, algo.RoundHalfUp(currentWeight+sweepSpan))
	return lo, hi
}

// SweepTargets analyzes every target weight of the slider range, from the
// lowest to the highest, in increments of step kg. A non-positive step
// yields no points.
func SweepTargets(currentWeight, height float64, sex schema.Sex, step float64) schema.SweepResult {
	lo, hi := SweepRange(currentWeight)
	result := schema.SweepResult{
		CurrentWeight: currentWeight,
		Height:        height,
		Sex:           sex,
		Min:           lo,
		Max:           hi,
		Step:          step,
		Points:        []schema.SweepPoint{},
	}
	if step <= 0 || lo > hi {
		return result
	}

	// Targets are derived from the index so repeated additions do not drift.
	for i := 0; ; i++ {
		target := math.Round((lo+float64(i)*step)*100) / 100
		if target > hi+sweepTolerance {
			break
		}
		analysis := AnalyzeWeightGoal(currentWeight, target, height, sex)
		result.Points = append(result.Points, schema.SweepPoint{
			TargetWeight: target,
			Safety:       analysis.Safety,
			WeightChange: analysis.WeightChange,
			TargetBMI:    analysis.TargetBMI,
			WeeklyRate:   analysis.RecommendedWeeklyRate,
			Weeks:        analysis.EstimatedWeeks,
			Months:       analysis.EstimatedMonths,
			MainMessage:  analysis.MainMessage,
		})
	}
	return result
}
