package cmd

import (
	"github.com/huangsam/nutriplan/core"
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/persist"
	"github.com/spf13/cobra"
)

// goalCmd analyzes one weight goal.
var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Grade a target weight by safety and estimate the time to reach it",
	Long: `Analyze the change from the current weight to a target weight.

The report includes:
- Safety tier (safe, moderate, risky, dangerous) and whether the goal is realistic
- Current and target BMI with the healthy weight range for the height
- Recommended weekly rate and the estimated weeks and months
- Warnings, recommendations and detailed guidance

Examples:
  # Lose 10 kg at 168 cm
  nutriplan goal --weight 65 --target 55 --height 168 --sex female

  # Machine-readable report
  nutriplan goal --weight 60 --target 65 --height 170 --sex male --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGoal(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot analyze weight goal", err)
		}
	},
}

// sweepCmd analyzes every target of the slider range.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Grade every target weight within 30 kg of the current weight",
	Long: `Sweep the target weight across the whole slider range of the current weight.

Every target is analyzed the same way as 'nutriplan goal', which shows where
the goal crosses from safe to moderate, risky and dangerous.

The range is clamped to the accepted target weights (40 to 200 kg).

Examples:
  # Default 0.5 kg step
  nutriplan sweep --weight 65 --height 168 --sex female

  # Coarser steps, as CSV for plotting
  nutriplan sweep --weight 65 --height 168 --sex female --step 2 --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSweep(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot sweep weight goals", err)
		}
	},
}

// checkCmd gates a weight goal for scripting.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when a weight goal is graded above a maximum safety tier",
	Long: `Analyze a weight goal and exit with status 1 when its tier exceeds --max-tier.

Useful for:
- Validating goals before they are stored
- Scripting batch checks over many candidate targets

Examples:
  # Pass only safe or moderate goals (default)
  nutriplan check --weight 65 --target 55 --height 168 --sex female

  # Strict gate
  nutriplan check --weight 65 --target 50 --height 168 --sex female --max-tier safe`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot check weight goal", err)
		}
	},
}
