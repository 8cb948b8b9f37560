// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	sexValues      = []string{"MALE", "FEMALE", "OTHER"}
	activityValues = []string{"SEDENTARY", "LIGHT", "MODERATE", "ACTIVE", "VERY_ACTIVE"}
	goalValues     = []string{"LOSE_WEIGHT", "MAINTAIN", "GAIN_MUSCLE"}
	tierValues     = []string{"safe", "moderate", "risky", "dangerous"}
)

// goalOptions are the arguments shared by the weight goal tools.
func goalOptions(requireTarget bool) []mcp.ToolOption {
	target := []mcp.PropertyOption{mcp.Description("Target weight in kg (40-200).")}
	if requireTarget {
		target = append(target, mcp.Required())
	}
	return []mcp.ToolOption{
		mcp.WithNumber("weight", mcp.Description("Current weight in kg (30-300)."), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("Height in cm (120-250)."), mcp.Required()),
		mcp.WithString("sex", mcp.Description("Sex used by the formulas. OTHER uses the female formulas."), mcp.Required(), mcp.Enum(sexValues...)),
		mcp.WithNumber("target", target...),
	}
}

// NewMCPServer initializes and configures the nutriplan MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Nutriplan Nutrition Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: compute_metrics ---
	s.AddTool(mcp.NewTool("compute_metrics",
		mcp.WithDescription("Compute BMI, BMR, TDEE, ideal weight, body fat and daily calorie and macro targets."),
		mcp.WithNumber("weight", mcp.Description("Current weight in kg (30-300)."), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("Height in cm (120-250)."), mcp.Required()),
		mcp.WithNumber("age", mcp.Description("Age in years (13-120). Ignored when dob is given.")),
		mcp.WithString("dob", mcp.Description("Date of birth as YYYY-MM-DD.")),
		mcp.WithString("sex", mcp.Description("Sex used by the formulas."), mcp.Required(), mcp.Enum(sexValues...)),
		mcp.WithString("activity", mcp.Description("Weekly activity level."), mcp.Required(), mcp.Enum(activityValues...)),
		mcp.WithString("goal", mcp.Description("Dietary goal."), mcp.Required(), mcp.Enum(goalValues...)),
	), h.handleComputeMetrics)

	// --- 2. Tool: analyze_weight_goal ---
	s.AddTool(mcp.NewTool("analyze_weight_goal",
		append([]mcp.ToolOption{
			mcp.WithDescription("Grade the safety of a target weight and estimate how long it takes to reach it."),
		}, goalOptions(true)...)...,
	), h.handleAnalyzeWeightGoal)

	// --- 3. Tool: sweep_weight_goals ---
	s.AddTool(mcp.NewTool("sweep_weight_goals",
		append([]mcp.ToolOption{
			mcp.WithDescription("Analyze every target weight within 30 kg of the current weight."),
			mcp.WithNumber("step", mcp.Description("Increment between targets in kg. Defaults to 0.5.")),
		}, goalOptions(false)...)...,
	), h.handleSweepWeightGoals)

	// --- 4. Tool: check_weight_goal ---
	s.AddTool(mcp.NewTool("check_weight_goal",
		append([]mcp.ToolOption{
			mcp.WithDescription("Check whether a target weight stays within a maximum safety tier."),
			mcp.WithString("max_tier", mcp.Description("Most severe tier allowed. Defaults to 'moderate'."), mcp.Enum(tierValues...)),
		}, goalOptions(true)...)...,
	), h.handleCheckWeightGoal)

	// --- 5. Tool: plan_onboarding ---
	s.AddTool(mcp.NewTool("plan_onboarding",
		mcp.WithDescription("Build the onboarding plan of a new profile. The plan is stored when a store backend is configured."),
		mcp.WithString("name", mcp.Description("Display name (at least 2 characters)."), mcp.Required()),
		mcp.WithString("dob", mcp.Description("Date of birth as YYYY-MM-DD."), mcp.Required()),
		mcp.WithString("sex", mcp.Description("Sex used by the formulas."), mcp.Required(), mcp.Enum(sexValues...)),
		mcp.WithNumber("weight", mcp.Description("Current weight in kg (30-300)."), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("Height in cm (120-250)."), mcp.Required()),
		mcp.WithString("activity", mcp.Description("Weekly activity level."), mcp.Required(), mcp.Enum(activityValues...)),
		mcp.WithString("goal", mcp.Description("Dietary goal."), mcp.Required(), mcp.Enum(goalValues...)),
		mcp.WithNumber("target", mcp.Description("Target weight in kg (40-200)."), mcp.Required()),
		mcp.WithString("diet_type", mcp.Description("Diet type, e.g. 'vegetarian'. 'none' records no preference.")),
		mcp.WithString("allergies", mcp.Description("Comma separated allergies.")),
		mcp.WithString("dislikes", mcp.Description("Comma separated disliked foods.")),
	), h.handlePlanOnboarding)

	return s
}

// StartMCPServer starts the nutriplan MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
