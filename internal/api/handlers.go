package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/nutriplan/core"
	"github.com/huangsam/nutriplan/internal/contract"
)

// bind decodes the JSON body of a request. Malformed bodies count as invalid input.
func bind(c *gin.Context, body any) error {
	if err := c.ShouldBindJSON(body); err != nil {
		return fmt.Errorf("%w: %v", contract.ErrInvalidInput, err)
	}
	return nil
}

func (h *handler) health(c *gin.Context) {
	status := gin.H{"status": "ok", "store": string(h.baseCfg.StoreBackend)}
	if store := h.store(); store != nil {
		if s, err := store.GetStatus(); err == nil {
			status["connected"] = s.Connected
		}
	}
	c.JSON(http.StatusOK, status)
}

func (h *handler) store() contract.ProfileStore {
	if h.mgr == nil {
		return nil
	}
	return h.mgr.GetProfileStore()
}

func (h *handler) computeMetrics(c *gin.Context) {
	var req metricsRequest
	cfg := h.baseCfg.Clone()
	if err := bind(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := req.apply(cfg); err != nil {
		respondError(c, err)
		return
	}

	result, err := core.GetMetricsResult(core.WithSuppressHeader(c.Request.Context()), cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.Metrics)
}

func (h *handler) analyzeWeightGoal(c *gin.Context) {
	var req weightGoalRequest
	cfg := h.baseCfg.Clone()
	if err := bind(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := req.apply(cfg); err != nil {
		respondError(c, err)
		return
	}

	analysis, err := core.GetGoalAnalysis(core.WithSuppressHeader(c.Request.Context()), cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *handler) onboard(c *gin.Context) {
	var req onboardingRequest
	cfg := h.baseCfg.Clone()
	if err := bind(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := req.apply(cfg); err != nil {
		respondError(c, err)
		return
	}

	plan, profileID, err := core.OnboardProfile(core.WithSuppressHeader(c.Request.Context()), cfg, h.mgr, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, core.OnboardingResponseFor(profileID, plan))
}

func (h *handler) getProfile(c *gin.Context) {
	cfg := h.baseCfg.Clone()
	cfg.ProfileID = c.Param("id")

	details, err := core.GetProfileDetails(core.WithSuppressHeader(c.Request.Context()), cfg, h.mgr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *handler) recordWeight(c *gin.Context) {
	var req weighInRequest
	if err := bind(c, &req); err != nil {
		respondError(c, err)
		return
	}
	cfg := h.baseCfg.Clone()
	cfg.ProfileID = c.Param("id")
	cfg.Weight = req.Weight
	cfg.Notes = req.Notes

	entry, err := core.RecordWeighIn(core.WithSuppressHeader(c.Request.Context()), cfg, h.mgr, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
