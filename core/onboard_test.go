package core

import (
	"testing"
	"time"

	"github.com/huangsam/nutriplan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var onboardingNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func camilleInput() schema.OnboardingInput {
	return schema.OnboardingInput{
		Name:          "Camille",
		DateOfBirth:   time.Date(1996, 5, 20, 0, 0, 0, 0, time.UTC),
		Sex:           schema.FemaleSex,
		Weight:        65,
		Height:        168,
		ActivityLevel: schema.LightLevel,
		Goal:          schema.LoseWeightGoal,
		TargetWeight:  55,
		Preferences:   schema.Preferences{DietType: "vegetarian"},
	}
}

func TestBuildOnboardingPlan(t *testing.T) {
	plan := BuildOnboardingPlan(camilleInput(), onboardingNow)

	assert.Equal(t, 29, plan.Age)
	assert.Equal(t, 23.0, plan.Metrics.BMI)
	assert.Equal(t, 1394.0, plan.Metrics.BMR)
	assert.Equal(t, 1917.0, plan.Metrics.TDEE)
	assert.Equal(t, 1534, plan.Metrics.DailyCalories)
	assert.Equal(t, schema.SafeTier, plan.Analysis.Safety)
	assert.Equal(t, 20, plan.Analysis.EstimatedWeeks)
	assert.Equal(t, -0.5, plan.WeeklyWeightChangeGoal)
	assert.Equal(t, time.Date(2025, 10, 19, 9, 30, 0, 0, time.UTC), plan.EstimatedTargetDate)
	assert.True(t, plan.OnboardingCompleted)
	assert.Equal(t, onboardingNow, plan.CreatedAt)
	assert.Equal(t, camilleInput(), plan.Input)
	assert.Equal(t, ComputeMetrics(plan.Profile()), plan.Metrics)
}

func TestBuildOnboardingPlanGain(t *testing.T) {
	input := camilleInput()
	input.Sex = schema.MaleSex
	input.Weight = 60
	input.Height = 170
	input.Goal = schema.GainMuscleGoal
	input.TargetWeight = 65

	plan := BuildOnboardingPlan(input, onboardingNow)
	assert.Equal(t, 0.35, plan.WeeklyWeightChangeGoal, "gains keep a positive weekly change")
	assert.Equal(t, onboardingNow.AddDate(0, 0, 15*7), plan.EstimatedTargetDate)
}

func TestBuildOnboardingPlanMaintain(t *testing.T) {
	input := camilleInput()
	input.TargetWeight = input.Weight
	input.Goal = schema.MaintainGoal

	plan := BuildOnboardingPlan(input, onboardingNow)
	assert.Equal(t, 0.0, plan.WeeklyWeightChangeGoal)
	assert.Equal(t, onboardingNow, plan.EstimatedTargetDate)
}

func TestOnboardingPlanBuilderSteps(t *testing.T) {
	b := NewOnboardingPlanBuilder(camilleInput(), onboardingNow)
	assert.Nil(t, b.GetResult(), "no plan before BuildPlan")

	plan := b.ComputeAge().ComputeMetrics().AnalyzeGoal().BuildPlan().GetResult()
	require.NotNil(t, plan)
	assert.Equal(t, 29, plan.Age)
}

func TestOnboardingResponseFor(t *testing.T) {
	plan := BuildOnboardingPlan(camilleInput(), onboardingNow)
	resp := OnboardingResponseFor("p-1", plan)

	assert.True(t, resp.Success)
	assert.Equal(t, "p-1", resp.User.ID)
	assert.Equal(t, "Camille", resp.User.Name)
	assert.True(t, resp.User.OnboardingCompleted)
	assert.Equal(t, plan.Metrics, resp.User.Metrics)
}
