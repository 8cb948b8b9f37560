package cmd

import (
	"github.com/huangsam/nutriplan/core"
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/persist"
	"github.com/spf13/cobra"
)

// onboardCmd builds and stores an onboarding plan.
var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Build a nutrition plan for a new profile and store it",
	Long: `Run the complete onboarding flow for one person.

Onboarding:
- Computes the age from the date of birth and every derived metric
- Analyzes the weight goal and picks the weekly weight change
- Estimates the date the target is reached
- Stores the profile, its preferences and the initial weigh-in

With --store-backend none the plan is still printed but nothing is saved.

Examples:
  # Onboard with the default SQLite store
  nutriplan onboard --name Camille --dob 1996-05-20 --sex female --weight 65 \
    --height 168 --activity light --goal lose_weight --target 55

  # Record dietary preferences too
  nutriplan onboard --name Camille --dob 1996-05-20 --sex female --weight 65 \
    --height 168 --activity light --goal lose --target 55 \
    --diet-type vegetarian --allergies peanuts,shellfish`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOnboard(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot complete onboarding", err)
		}
	},
}
