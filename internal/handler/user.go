package handler

import (
	"net/http"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/user"
)

// HandleRegisterUser handles user registration from the LINE client
// @Summary Register user
// @Description Create the user on first login or refresh their LINE profile
// @Tags user
// @Accept json
// @Produce json
// @Param request body domain.UserProfile true "LINE profile"
// @Success 200 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/users/register [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UserProfile
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := svc.Register(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered", "user_id", u.UserID)
		respondJSON(w, http.StatusOK, u)
	}
}

// HandleGetUserStats returns the draw count and per-tier counts for a user
// @Summary Get user stats
// @Tags user
// @Produce json
// @Param userId path string true "LINE user ID"
// @Success 200 {object} domain.UserStats
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userId}/stats [get]
func HandleGetUserStats(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := getPathParam(r, w, "userId")
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get user stats", err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

// UserItemsResponse lists the prizes a user has won
type UserItemsResponse struct {
	Items []domain.GachaHistory `json:"items"`
}

// HandleGetUserItems returns every prize a user has won, newest first
// @Summary Get won items
// @Tags user
// @Produce json
// @Param userId path string true "LINE user ID"
// @Success 200 {object} UserItemsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userId}/items [get]
func HandleGetUserItems(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := getPathParam(r, w, "userId")
		if !ok {
			return
		}

		items, err := svc.ListItems(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get user items", err)
			return
		}
		respondJSON(w, http.StatusOK, UserItemsResponse{Items: items})
	}
}

// HandleGetGachaHistories returns a page of a user's draws
// @Summary Get draw history
// @Tags user
// @Produce json
// @Param userId path string true "LINE user ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Limit (default 20, max 100)"
// @Success 200 {object} domain.PagedResult[domain.GachaHistory]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userId}/gacha-histories [get]
func HandleGetGachaHistories(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := getPathParam(r, w, "userId")
		if !ok {
			return
		}

		res, err := svc.ListHistories(r.Context(), userID, parsePage(r))
		if err != nil {
			respondServiceError(w, r, "Get gacha histories", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
