package handler

import (
	"net/http"

	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/points"
	"github.com/osse101/GachaLab_Go/internal/user"
)

// AdminUserHandler handles admin user operations
type AdminUserHandler struct {
	users  user.Service
	points points.Service
}

// NewAdminUserHandler creates a new admin user handler
func NewAdminUserHandler(users user.Service, pts points.Service) *AdminUserHandler {
	return &AdminUserHandler{users: users, points: pts}
}

// AdjustPointsRequest credits (positive) or debits (negative) a user's balance
type AdjustPointsRequest struct {
	Delta  int    `json:"delta" validate:"ne=0,gte=-1000000,lte=1000000"`
	Reason string `json:"reason" validate:"required,max=255"`
}

// HandleListUsers searches users by id or display name
// @Summary List users
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param search query string false "User id or display name fragment"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} domain.PagedResult[domain.UserSummary]
// @Router /api/v1/admin/users [get]
func (h *AdminUserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := h.users.List(r.Context(), r.URL.Query().Get("search"), parsePage(r))
	if err != nil {
		respondServiceError(w, r, "List users", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleGetUser returns the profile, stats and recent activity of a user
// @Summary Get user detail
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param userId path string true "LINE user ID"
// @Success 200 {object} domain.UserDetail
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/users/{userId} [get]
func (h *AdminUserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := getPathParam(r, w, "userId")
	if !ok {
		return
	}

	detail, err := h.users.Detail(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get user detail", err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// HandleAdjustPoints applies a manual balance correction
// @Summary Adjust points
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param userId path string true "LINE user ID"
// @Param request body AdjustPointsRequest true "Adjustment"
// @Success 200 {object} domain.PointHistory
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/users/{userId}/points [post]
func (h *AdminUserHandler) HandleAdjustPoints(w http.ResponseWriter, r *http.Request) {
	userID, ok := getPathParam(r, w, "userId")
	if !ok {
		return
	}

	var req AdjustPointsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adjust points"); err != nil {
		return
	}

	history, err := h.points.AdminAdjust(r.Context(), userID, req.Delta, req.Reason)
	if err != nil {
		respondServiceError(w, r, "Adjust points", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPointsAdjusted,
		"user_id", userID, "delta", req.Delta, "balance_after", history.BalanceAfter)
	respondJSON(w, http.StatusOK, history)
}
