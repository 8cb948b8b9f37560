// Package api serves the calculators and the profile store over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/huangsam/nutriplan/internal/contract"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server context is cancelled.
const shutdownTimeout = 5 * time.Second

// handler holds common dependencies for HTTP handlers.
type handler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
	now     func() time.Time
}

// NewRouter builds the gin engine with every route registered.
// This is exposed for unit testing.
func NewRouter(baseCfg *contract.Config, mgr contract.StoreManager) *gin.Engine {
	h := &handler{baseCfg: baseCfg, mgr: mgr, now: time.Now}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors.Default())

	r.GET("/healthz", h.health)

	api := r.Group("/api")
	api.POST("/metrics", h.computeMetrics)
	api.POST("/weight-goal", h.analyzeWeightGoal)
	api.POST("/onboarding", h.onboard)
	api.GET("/profile/:id", h.getProfile)
	api.POST("/profile/:id/weight", h.recordWeight)

	return r
}

// StartServer serves the API on cfg.ListenAddr until ctx is cancelled.
func StartServer(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           NewRouter(cfg, mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve on %s: %w", cfg.ListenAddr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}

// statusFor maps an error to the HTTP status it is reported with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, contract.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, contract.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, contract.ErrStoreDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
