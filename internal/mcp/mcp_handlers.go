package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/nutriplan/core"
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// onboardingResult is the JSON result of the plan_onboarding tool.
type onboardingResult struct {
	ProfileID string                `json:"profile_id,omitempty"`
	Saved     bool                  `json:"saved"`
	Plan      schema.OnboardingPlan `json:"plan"`
}

// applyBiometrics overrides the base configuration with the biometric
// arguments of a tool call. Range checks happen in the core getters.
func applyBiometrics(cfg *contract.Config, request mcp.CallToolRequest) error {
	if w := request.GetFloat("weight", 0); w != 0 {
		cfg.Weight = w
	}
	if h := request.GetFloat("height", 0); h != 0 {
		cfg.Height = h
	}
	if t := request.GetFloat("target", 0); t != 0 {
		cfg.TargetWeight = t
	}
	if a := request.GetInt("age", 0); a != 0 {
		cfg.Age = a
	}
	if d := request.GetString("dob", ""); d != "" {
		dob, err := contract.ParseDateOfBirth(d)
		if err != nil {
			return err
		}
		cfg.DateOfBirth = dob
	}
	if s := request.GetString("sex", ""); s != "" {
		sex, err := contract.ParseSex(s)
		if err != nil {
			return err
		}
		cfg.Sex = sex
	}
	if a := request.GetString("activity", ""); a != "" {
		level, err := contract.ParseActivityLevel(a)
		if err != nil {
			return err
		}
		cfg.ActivityLevel = level
	}
	if g := request.GetString("goal", ""); g != "" {
		goal, err := contract.ParseGoal(g)
		if err != nil {
			return err
		}
		cfg.Goal = goal
	}
	return nil
}

func jsonResult(data any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleComputeMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyBiometrics(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, err := core.GetMetricsResult(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("metrics calculation failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleAnalyzeWeightGoal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyBiometrics(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	analysis, err := core.GetGoalAnalysis(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("goal analysis failed: %v", err)), nil
	}
	return jsonResult(analysis), nil
}

func (h *toolHandler) handleSweepWeightGoals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyBiometrics(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if s := request.GetFloat("step", 0); s != 0 {
		cfg.Step = s
	}

	result, err := core.GetSweepResult(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sweep failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleCheckWeightGoal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyBiometrics(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if m := request.GetString("max_tier", ""); m != "" {
		tier, err := contract.ParseSafetyTier(m)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
		}
		cfg.MaxTier = tier
	}

	result, err := core.GetGoalCheckResult(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("goal check failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handlePlanOnboarding(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyBiometrics(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if n := request.GetString("name", ""); n != "" {
		cfg.Name = n
	}
	cfg.Preferences = schema.Preferences{
		DietType:  request.GetString("diet_type", cfg.Preferences.DietType),
		Allergies: contract.ParseList(request.GetString("allergies", "")),
		Dislikes:  contract.ParseList(request.GetString("dislikes", "")),
	}

	plan, profileID, err := core.OnboardProfile(core.WithSuppressHeader(ctx), cfg, h.mgr, time.Now())
	if err != nil && !errors.Is(err, contract.ErrStoreDisabled) {
		return mcp.NewToolResultError(fmt.Sprintf("onboarding failed: %v", err)), nil
	}
	return jsonResult(onboardingResult{ProfileID: profileID, Saved: profileID != "", Plan: plan}), nil
}
