package core

import (
	"time"

	"github.com/huangsam/nutriplan/schema"
)

// daysPerWeek converts estimated weeks into a calendar offset.
const daysPerWeek = 7

// OnboardingPlanBuilder builds an onboarding plan using a builder pattern.
type OnboardingPlanBuilder struct {
	input    schema.OnboardingInput
	now      time.Time
	age      int
	metrics  schema.DerivedMetrics
	analysis schema.WeightGoalAnalysis
	plan     *schema.OnboardingPlan
}

// NewOnboardingPlanBuilder creates a builder for a validated onboarding submission.
func NewOnboardingPlanBuilder(input schema.OnboardingInput, now time.Time) *OnboardingPlanBuilder {
	return &OnboardingPlanBuilder{input: input, now: now}
}

// ComputeAge derives the age from the date of birth.
func (b *OnboardingPlanBuilder) ComputeAge() *OnboardingPlanBuilder {
	b.age = Age(b.input.DateOfBirth, b.now)
	return b
}

// ComputeMetrics derives the nutrition metrics of the current profile.
func (b *OnboardingPlanBuilder) ComputeMetrics() *OnboardingPlanBuilder {
	b.metrics = ComputeMetrics(schema.BiometricProfile{
		Weight:        b.input.Weight,
		Height:        b.input.Height,
		Age:           b.age,
		Sex:           b.input.Sex,
		ActivityLevel: b.input.ActivityLevel,
		Goal:          b.input.Goal,
	})
	return b
}

// AnalyzeGoal grades the move from the current weight to the target weight.
func (b *OnboardingPlanBuilder) AnalyzeGoal() *OnboardingPlanBuilder {
	b.analysis = AnalyzeWeightGoal(b.input.Weight, b.input.TargetWeight, b.input.Height, b.input.Sex)
	return b
}

// BuildPlan schedules the goal and assembles the plan.
func (b *OnboardingPlanBuilder) BuildPlan() *OnboardingPlanBuilder {
	weekly := b.analysis.RecommendedWeeklyRate
	if b.analysis.WeightChange < 0 {
		weekly = -weekly
	}
	b.plan = &schema.OnboardingPlan{
		Input:                  b.input,
		Age:                    b.age,
		Metrics:                b.metrics,
		Analysis:               b.analysis,
		WeeklyWeightChangeGoal: weekly,
		EstimatedTargetDate:    b.now.AddDate(0, 0, b.analysis.EstimatedWeeks*daysPerWeek),
		OnboardingCompleted:    true,
		CreatedAt:              b.now,
	}
	return b
}

// GetResult returns the plan, or nil before BuildPlan.
func (b *OnboardingPlanBuilder) GetResult() *schema.OnboardingPlan {
	return b.plan
}

// BuildOnboardingPlan derives everything the profile store records for an
// onboarding submission. The input must already be validated.
func BuildOnboardingPlan(input schema.OnboardingInput, now time.Time) schema.OnboardingPlan {
	return *NewOnboardingPlanBuilder(input, now).
		ComputeAge().
		ComputeMetrics().
		AnalyzeGoal().
		BuildPlan().
		GetResult()
}

// OnboardingResponseFor summarizes a stored plan for API clients.
func OnboardingResponseFor(profileID string, plan schema.OnboardingPlan) schema.OnboardingResponse {
	return schema.OnboardingResponse{
		Success: true,
		User: schema.OnboardingSummary{
			ID:                  profileID,
			Name:                plan.Input.Name,
			OnboardingCompleted: plan.OnboardingCompleted,
			Metrics:             plan.Metrics,
		},
	}
}
