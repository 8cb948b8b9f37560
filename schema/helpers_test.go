package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{SedentaryLevel, 1.2},
		{LightLevel, 1.375},
		{ModerateLevel, 1.55},
		{ActiveLevel, 1.725},
		{VeryActiveLevel, 1.9},
		{ActivityLevel("UNKNOWN"), 1.2},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, Multiplier(tt.level))
		})
	}
}

func TestCalorieFactor(t *testing.T) {
	assert.Equal(t, 0.8, CalorieFactor(LoseWeightGoal))
	assert.Equal(t, 1.0, CalorieFactor(MaintainGoal))
	assert.Equal(t, 1.1, CalorieFactor(GainMuscleGoal))
}

func TestMacroRatiosForSumToOne(t *testing.T) {
	for _, goal := range AllGoals {
		r := MacroRatiosFor(goal)
		assert.InDelta(t, 1.0, r.Protein+r.Carbs+r.Fat, 1e-9, "goal %s", goal)
	}
	assert.Equal(t, MacroRatios{Protein: 0.35, Carbs: 0.30, Fat: 0.35}, MacroRatiosFor(LoseWeightGoal))
	assert.Equal(t, MacroRatios{Protein: 0.30, Carbs: 0.45, Fat: 0.25}, MacroRatiosFor(GainMuscleGoal))
	assert.Equal(t, MacroRatios{Protein: 0.30, Carbs: 0.40, Fat: 0.30}, MacroRatiosFor(MaintainGoal))
}

func TestUsesMaleFormula(t *testing.T) {
	assert.True(t, MaleSex.UsesMaleFormula())
	assert.False(t, FemaleSex.UsesMaleFormula())
	assert.False(t, OtherSex.UsesMaleFormula())
}

func TestSafetyTierOrdering(t *testing.T) {
	for i, tier := range AllSafetyTiers {
		assert.Equal(t, i, tier.Rank(), "tier %s", tier)
	}
	assert.Equal(t, 3, SafetyTier("bogus").Rank())
}

func TestSafetyTierPresentation(t *testing.T) {
	tests := []struct {
		tier      SafetyTier
		realistic bool
		icon      string
		badge     string
	}{
		{SafeTier, true, "✅", "default"},
		{ModerateTier, true, "⚠️", "secondary"},
		{RiskyTier, false, "❌", "destructive"},
		{DangerousTier, false, "❌", "destructive"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.realistic, tt.tier.IsRealistic())
			assert.Equal(t, tt.icon, tt.tier.Icon())
			assert.Equal(t, tt.badge, tt.tier.Badge())
		})
	}
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, LossDirection, DirectionOf(-0.5))
	assert.Equal(t, GainDirection, DirectionOf(0.5))
	assert.Equal(t, MaintainDirection, DirectionOf(0))
}

func TestNormalizeEnum(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"very-active", "VERY_ACTIVE"},
		{" Very Active ", "VERY_ACTIVE"},
		{"lose_weight", "LOSE_WEIGHT"},
		{"MALE", "MALE"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEnum(tt.in), "input %q", tt.in)
	}
}
