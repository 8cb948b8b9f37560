package cmd

import (
	"github.com/huangsam/nutriplan/core"
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/persist"
	"github.com/spf13/cobra"
)

// profileCmd groups the commands that read and update stored profiles.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect stored profiles and record weigh-ins",
	Long: `Work with the profiles saved by 'nutriplan onboard'.

Subcommands:
  show  - Print one profile with its weight history
  list  - Print every stored profile, newest first
  weigh - Append a weigh-in to a profile

Examples:
  nutriplan profile list
  nutriplan profile show 8f14e45f-ceea-4e7a-9c6b-2f1d1e0b9c01
  nutriplan profile weigh 8f14e45f-ceea-4e7a-9c6b-2f1d1e0b9c01 --weight 64.2`,
}

var profileShowCmd = &cobra.Command{
	Use:     "show <profile-id>",
	Short:   "Print a stored profile with its weight history",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfileShow(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot show profile", err)
		}
	},
}

var profileListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Print every stored profile, newest first",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfileList(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot list profiles", err)
		}
	},
}

var profileWeighCmd = &cobra.Command{
	Use:   "weigh <profile-id>",
	Short: "Append a weigh-in to the history of a profile",
	Long: `Record the current weight of a stored profile.

Examples:
  nutriplan profile weigh 8f14e45f-ceea-4e7a-9c6b-2f1d1e0b9c01 --weight 64.2
  nutriplan profile weigh 8f14e45f-ceea-4e7a-9c6b-2f1d1e0b9c01 --weight 63.9 --notes "after holidays"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfileWeigh(rootCtx, cfg, persist.Manager); err != nil {
			contract.LogFatal("Cannot record weigh-in", err)
		}
	},
}
