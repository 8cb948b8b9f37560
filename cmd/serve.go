package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/nutriplan/internal/api"
	"github.com/huangsam/nutriplan/internal/persist"
	"github.com/spf13/cobra"
)

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators and the profile store over HTTP",
	Long: `Start a JSON HTTP API for web clients.

Routes:
  POST /api/metrics             - derived metrics of a profile
  POST /api/weight-goal         - weight goal analysis
  POST /api/onboarding          - onboard and store a profile
  GET  /api/profile/:id         - stored profile with weight history
  POST /api/profile/:id/weight  - record a weigh-in
  GET  /healthz                 - liveness and store connection

The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  nutriplan serve
  nutriplan serve --listen 127.0.0.1:9090 --store-backend postgresql`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.StartServer(ctx, cfg, persist.Manager)
	},
}
