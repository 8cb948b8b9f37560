package schema

import "strings"

// Multiplier returns the TDEE activity multiplier for a level.
// Unknown levels fall back to the sedentary multiplier.
func Multiplier(level ActivityLevel) float64 {
	switch level {
	case LightLevel:
		return 1.375
	case ModerateLevel:
		return 1.55
	case ActiveLevel:
		return 1.725
	case VeryActiveLevel:
		return 1.9
	default: // SedentaryLevel
		return 1.2
	}
}

// CalorieFactor returns the multiplier applied to TDEE to obtain the daily
// calorie target for a goal.
func CalorieFactor(goal Goal) float64 {
	switch goal {
	case LoseWeightGoal:
		return 0.8
	case GainMuscleGoal:
		return 1.1
	default: // MaintainGoal
		return 1.0
	}
}

// MacroRatiosFor returns the calorie share of each macronutrient for a goal.
func MacroRatiosFor(goal Goal) MacroRatios {
	switch goal {
	case LoseWeightGoal:
		return MacroRatios{Protein: 0.35, Carbs: 0.30, Fat: 0.35}
	case GainMuscleGoal:
		return MacroRatios{Protein: 0.30, Carbs: 0.45, Fat: 0.25}
	default: // MaintainGoal
		return MacroRatios{Protein: 0.30, Carbs: 0.40, Fat: 0.30}
	}
}

// UsesMaleFormula reports whether the male variant of a sex-dependent
// formula applies. OTHER intentionally shares the female variant.
func (s Sex) UsesMaleFormula() bool {
	return s == MaleSex
}

// Rank returns the severity of a tier, from 0 (safe) to 3 (dangerous).
// Unknown tiers rank as dangerous.
func (t SafetyTier) Rank() int {
	switch t {
	case SafeTier:
		return 0
	case ModerateTier:
		return 1
	case RiskyTier:
		return 2
	default: // DangerousTier
		return 3
	}
}

// IsRealistic reports whether a goal in this tier is considered achievable.
func (t SafetyTier) IsRealistic() bool {
	return t == SafeTier || t == ModerateTier
}

// Icon returns the status icon shown next to a tier.
func (t SafetyTier) Icon() string {
	switch t {
	case SafeTier:
		return "✅"
	case ModerateTier:
		return "⚠️"
	default: // RiskyTier, DangerousTier
		return "❌"
	}
}

// Badge returns the UI badge variant for a tier.
func (t SafetyTier) Badge() string {
	switch t {
	case SafeTier:
		return "default"
	case ModerateTier:
		return "secondary"
	default: // RiskyTier, DangerousTier
		return "destructive"
	}
}

// DirectionOf classifies a signed weight change.
func DirectionOf(weightChange float64) Direction {
	switch {
	case weightChange < 0:
		return LossDirection
	case weightChange > 0:
		return GainDirection
	default:
		return MaintainDirection
	}
}

// NormalizeEnum upper-cases an enum value and turns dashes and spaces into
// underscores so "very-active" and "Very Active" both read as VERY_ACTIVE.
func NormalizeEnum(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return strings.ToUpper(s)
}
