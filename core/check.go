package core

import "github.com/huangsam/nutriplan/schema"

// CheckWeightGoal gates an analysis against the most severe tier allowed.
// With the default maximum of moderate, a goal passes exactly when it is realistic.
func CheckWeightGoal(analysis schema.WeightGoalAnalysis, maxTier schema.SafetyTier) schema.GoalCheckResult {
	return schema.GoalCheckResult{
		Passed:   analysis.Safety.Rank() <= maxTier.Rank(),
		MaxTier:  maxTier,
		Analysis: analysis,
	}
}
