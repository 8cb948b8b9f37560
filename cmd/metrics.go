package cmd

import (
	"github.com/huangsam/nutriplan/core"
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/persist"
	"github.com/spf13/cobra"
)

// metricsCmd computes the nutrition metrics of a profile.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute BMI, BMR, TDEE, calorie and macro targets for a profile",
	Long: `Compute every derived nutrition metric for one biometric profile.

Reports:
- BMI and its category
- BMR (Mifflin-St Jeor) and TDEE for the activity level
- Ideal weight (Lorentz) and estimated body fat (Deurenberg)
- Daily calorie target adjusted for the goal
- Protein, carbohydrate and fat targets in grams

Either --dob or --age is required; a date of birth wins when both are set.

Examples:
  # Metrics for a lightly active woman who wants to lose weight
  nutriplan metrics --weight 65 --height 168 --age 29 --sex female --activity light --goal lose_weight

  # Same profile from a date of birth, as JSON
  nutriplan metrics --weight 65 --height 168 --dob 1996-05-20 --sex female --activity light --goal lose --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot compute metrics", err)
		}
	},
}

// formulasCmd displays the formal definitions behind every calculator.
var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Display the formulas, rate bands and thresholds used by the calculators",
	Long: `Show the formulas and lookup tables that every other command relies on.

Provides complete transparency into the calculations, including:
- BMI, BMR, TDEE, ideal weight and body fat formulas
- Activity multipliers and goal calorie adjustments
- Macro ratios per goal
- Weekly rate bands for loss and gain
- BMI and change thresholds used to grade safety

No profile is required - this is purely informational.

Examples:
  # Show the formula reference
  nutriplan formulas

  # Export it for documentation
  nutriplan formulas --output csv --output-file formulas.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFormulas(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot display formulas", err)
		}
	},
}
