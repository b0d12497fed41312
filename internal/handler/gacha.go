package handler

import (
	"net/http"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/gacha"
	"github.com/osse101/GachaLab_Go/internal/logger"
)

// GachaTypesResponse lists gacha machines a player can use now
type GachaTypesResponse struct {
	GachaTypes []domain.GachaType `json:"gacha_types"`
}

// DrawRequest is one draw on one gacha machine
type DrawRequest struct {
	UserID      string `json:"user_id" validate:"required,max=64"`
	GachaTypeID string `json:"gacha_type_id" validate:"required,max=64"`
}

// HandleListGachaTypes lists active gacha types inside their time window
// @Summary List gacha types
// @Tags gacha
// @Produce json
// @Success 200 {object} GachaTypesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/gacha/types [get]
func HandleListGachaTypes(svc gacha.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.ListAvailable(r.Context())
		if err != nil {
			respondServiceError(w, r, "List gacha types", err)
			return
		}
		respondJSON(w, http.StatusOK, GachaTypesResponse{GachaTypes: types})
	}
}

// HandleDraw performs one draw and returns the prize with the dealt cards for poker gachas
// @Summary Draw
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body DrawRequest true "Draw"
// @Success 200 {object} domain.DrawResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/gacha/draw [post]
func HandleDraw(svc gacha.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DrawRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Draw"); err != nil {
			return
		}

		res, err := svc.Draw(r.Context(), req.UserID, req.GachaTypeID)
		if err != nil {
			respondServiceError(w, r, "Draw", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgDrawCompleted,
			"user_id", req.UserID, "gacha_type_id", req.GachaTypeID, "tier", res.Tier)
		respondJSON(w, http.StatusOK, res)
	}
}
