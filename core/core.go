// Package core has the nutrition calculators, the weight goal analyzer and
// the executors that drive them from a command configuration.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/outwriter"
	"github.com/huangsam/nutriplan/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ageFromConfig returns the age of a configuration. A date of birth takes
// precedence over an explicit age.
func ageFromConfig(cfg *contract.Config, now time.Time) (int, error) {
	if cfg.DateOfBirth.IsZero() {
		return cfg.Age, nil
	}
	if err := contract.ValidateDateOfBirth(cfg.DateOfBirth, now); err != nil {
		return 0, err
	}
	return Age(cfg.DateOfBirth, now), nil
}

// profileStore returns the store of a manager, treating a missing manager
// or store as the none backend.
func profileStore(mgr contract.StoreManager) (contract.ProfileStore, error) {
	if mgr == nil {
		return nil, contract.ErrStoreDisabled
	}
	store := mgr.GetProfileStore()
	if store == nil {
		return nil, contract.ErrStoreDisabled
	}
	return store, nil
}

// GetMetricsResult computes the nutrition metrics of the configured profile.
func GetMetricsResult(ctx context.Context, cfg *contract.Config) (schema.MetricsResult, error) {
	age, err := ageFromConfig(cfg, time.Now())
	if err != nil {
		return schema.MetricsResult{}, err
	}
	profile, err := cfg.BiometricProfile(age)
	if err != nil {
		return schema.MetricsResult{}, err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogMetricsHeader(cfg, profile)
	}
	return BuildMetricsResult(profile), nil
}

// GetGoalAnalysis analyzes the configured target weight.
func GetGoalAnalysis(ctx context.Context, cfg *contract.Config) (schema.WeightGoalAnalysis, error) {
	req, err := cfg.GoalRequest()
	if err != nil {
		return schema.WeightGoalAnalysis{}, err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogGoalHeader(cfg, req)
	}
	return AnalyzeGoalRequest(req), nil
}

// GetSweepResult analyzes every target of the slider range around the configured weight.
func GetSweepResult(ctx context.Context, cfg *contract.Config) (schema.SweepResult, error) {
	if err := contract.ValidateWeight(cfg.Weight); err != nil {
		return schema.SweepResult{}, err
	}
	if err := contract.ValidateHeight(cfg.Height); err != nil {
		return schema.SweepResult{}, err
	}
	if err := contract.ValidateSex(cfg.Sex); err != nil {
		return schema.SweepResult{}, err
	}
	step := cfg.Step
	if step == 0 {
		step = contract.DefaultStep
	}
	if err := contract.ValidateStep(step); err != nil {
		return schema.SweepResult{}, err
	}
	if !shouldSuppressHeader(ctx) {
		lo, hi := SweepRange(cfg.Weight)
		outwriter.LogSweepHeader(cfg, lo, hi, step)
	}
	return SweepTargets(cfg.Weight, cfg.Height, cfg.Sex, step), nil
}

// GetGoalCheckResult gates the configured target weight against the maximum tier allowed.
func GetGoalCheckResult(ctx context.Context, cfg *contract.Config) (schema.GoalCheckResult, error) {
	analysis, err := GetGoalAnalysis(ctx, cfg)
	if err != nil {
		return schema.GoalCheckResult{}, err
	}
	maxTier := cfg.MaxTier
	if maxTier == "" {
		maxTier = contract.DefaultMaxTier
	}
	return CheckWeightGoal(analysis, maxTier), nil
}

// PlanOnboarding validates the configured submission and builds its plan
// without storing anything.
func PlanOnboarding(ctx context.Context, cfg *contract.Config, now time.Time) (schema.OnboardingPlan, error) {
	input, err := cfg.OnboardingInput(now)
	if err != nil {
		return schema.OnboardingPlan{}, err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogOnboardHeader(cfg, input)
	}
	return BuildOnboardingPlan(input, now), nil
}

// OnboardProfile builds the plan of the configured submission and stores it.
// When the store is disabled the plan is still returned, along with
// contract.ErrStoreDisabled.
func OnboardProfile(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, now time.Time) (schema.OnboardingPlan, string, error) {
	plan, err := PlanOnboarding(ctx, cfg, now)
	if err != nil {
		return schema.OnboardingPlan{}, "", err
	}
	store, err := profileStore(mgr)
	if err != nil {
		return plan, "", err
	}
	profileID, err := store.SaveOnboarding(plan)
	if err != nil {
		return plan, "", fmt.Errorf("failed to save onboarding: %w", err)
	}
	return plan, profileID, nil
}

// GetProfileDetails returns the configured profile with its weight history.
func GetProfileDetails(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ProfileDetails, error) {
	if cfg.ProfileID == "" {
		return schema.ProfileDetails{}, errors.New("profile ID is required")
	}
	store, err := profileStore(mgr)
	if err != nil {
		return schema.ProfileDetails{}, err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogProfileHeader(cfg, cfg.ProfileID)
	}
	profile, err := store.GetProfile(cfg.ProfileID)
	if err != nil {
		return schema.ProfileDetails{}, err
	}
	history, err := store.GetWeightHistory(cfg.ProfileID)
	if err != nil {
		return schema.ProfileDetails{}, fmt.Errorf("failed to get weight history: %w", err)
	}
	return schema.ProfileDetails{Profile: profile, History: history}, nil
}

// ListProfiles returns every stored profile, newest first.
func ListProfiles(_ context.Context, _ *contract.Config, mgr contract.StoreManager) ([]schema.ProfileRecord, error) {
	store, err := profileStore(mgr)
	if err != nil {
		return nil, err
	}
	profiles, err := store.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// RecordWeighIn appends the configured weight to the history of the configured profile.
func RecordWeighIn(_ context.Context, cfg *contract.Config, mgr contract.StoreManager, now time.Time) (schema.WeightEntry, error) {
	if cfg.ProfileID == "" {
		return schema.WeightEntry{}, errors.New("profile ID is required")
	}
	if err := contract.ValidateWeight(cfg.Weight); err != nil {
		return schema.WeightEntry{}, err
	}
	store, err := profileStore(mgr)
	if err != nil {
		return schema.WeightEntry{}, err
	}
	return store.RecordWeight(cfg.ProfileID, cfg.Weight, cfg.Notes, now)
}

// ExecuteMetrics computes the metrics of a profile and prints them.
// It serves as the main entry point for the 'metrics' command.
func ExecuteMetrics(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	result, err := GetMetricsResult(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteMetrics(result, cfg, time.Since(start))
}

// ExecuteGoal analyzes a weight goal and prints the report.
func ExecuteGoal(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	analysis, err := GetGoalAnalysis(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteGoalAnalysis(analysis, cfg, time.Since(start))
}

// ExecuteSweep analyzes the slider range of a current weight and prints one row per target.
func ExecuteSweep(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	result, err := GetSweepResult(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteSweep(result, cfg, time.Since(start))
}

// ExecuteCheck gates a weight goal and exits with status 1 when it fails.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	result, err := GetGoalCheckResult(ctx, cfg)
	if err != nil {
		return err
	}
	if err := outwriter.WriteCheck(result, cfg, time.Since(start)); err != nil {
		return err
	}
	if !result.Passed {
		os.Exit(1)
	}
	return nil
}

// ExecuteOnboard builds an onboarding plan, stores it when a backend is
// configured, and prints it.
func ExecuteOnboard(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	plan, profileID, err := OnboardProfile(ctx, cfg, mgr, start)
	if errors.Is(err, contract.ErrStoreDisabled) {
		contract.LogWarn("Onboarding plan was not saved", err)
	} else if err != nil {
		return err
	}
	return outwriter.WriteOnboarding(plan, profileID, cfg, time.Since(start))
}

// ExecuteFormulas prints the formulas, tables and thresholds of the calculators.
func ExecuteFormulas(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return outwriter.WriteFormulas(BuildFormulaReference(), cfg)
}

// ExecuteProfileShow prints a stored profile with its weight history.
func ExecuteProfileShow(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	details, err := GetProfileDetails(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteProfile(details, cfg, time.Since(start))
}

// ExecuteProfileList prints every stored profile.
func ExecuteProfileList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	profiles, err := ListProfiles(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteProfiles(profiles, cfg, time.Since(start))
}

// ExecuteProfileWeigh records a weigh-in and prints the new entry.
func ExecuteProfileWeigh(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	entry, err := RecordWeighIn(ctx, cfg, mgr, start)
	if err != nil {
		return err
	}
	return outwriter.WriteWeightEntry(entry, cfg, time.Since(start))
}
