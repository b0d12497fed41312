package handler

import (
	"net/http"

	"github.com/osse101/GachaLab_Go/internal/gacha"
	"github.com/osse101/GachaLab_Go/internal/logger"
)

// SimulateRequest runs the draw sampler offline. Zero iterations means the default.
type SimulateRequest struct {
	GachaTypeID string `json:"gacha_type_id" validate:"required,max=64"`
	Iterations  int    `json:"iterations" validate:"gte=0"`
}

// HandleSimulate compares observed tier rates with the configured weights
// @Summary Simulate draws
// @Description Runs the production sampler without touching balances or history
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param request body SimulateRequest true "Simulation"
// @Success 200 {object} domain.GachaSimulation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/simulator [post]
func HandleSimulate(svc gacha.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SimulateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Simulate"); err != nil {
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSimulationStarted,
			"gacha_type_id", req.GachaTypeID, "iterations", req.Iterations)

		res, err := svc.Simulate(r.Context(), req.GachaTypeID, req.Iterations)
		if err != nil {
			respondServiceError(w, r, "Simulate", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleClearGachaCache drops every cached gacha type
// @Summary Clear gacha type cache
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache/clear [post]
func HandleClearGachaCache(svc gacha.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.InvalidateGachaType(r.Context(), "")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCacheCleared})
	}
}
