package cmd

import (
	"github.com/huangsam/nutriplan/internal/mcp"
	"github.com/huangsam/nutriplan/internal/persist"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the nutriplan MCP server",
	Long:  `Launch an MCP server on stdio that lets AI agents compute metrics, grade weight goals and onboard profiles via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Headers go to stderr, so stdout stays reserved for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, persist.Manager)
	},
}
