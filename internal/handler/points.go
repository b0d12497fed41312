package handler

import (
	"io"
	"net/http"

	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/points"
)

// stripeSignatureHeader carries the webhook signature
const stripeSignatureHeader = "Stripe-Signature"

// BalanceResponse is the current point balance of a user
type BalanceResponse struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
}

// PurchaseRequest asks for a payment intent that will credit Points once paid
type PurchaseRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Amount int64  `json:"amount" validate:"gt=0"`
	Points int    `json:"points" validate:"gt=0"`
}

// ConfirmRequest credits a succeeded payment when the webhook has not arrived yet
type ConfirmRequest struct {
	UserID          string `json:"user_id" validate:"required,max=64"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required,max=255"`
}

// WebhookResponse acknowledges a processor notification
type WebhookResponse struct {
	Received bool `json:"received"`
}

// HandleGetBalance returns a user's point balance
// @Summary Get point balance
// @Tags points
// @Produce json
// @Param user_id query string true "LINE user ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/points/balance [get]
func HandleGetBalance(svc points.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		balance, err := svc.Balance(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get balance", err)
			return
		}
		respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Points: balance})
	}
}

// HandlePurchase creates a payment intent for a point purchase
// @Summary Start point purchase
// @Tags points
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase"
// @Success 200 {object} domain.PurchaseResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/points/purchase [post]
func HandlePurchase(svc points.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase points"); err != nil {
			return
		}

		res, err := svc.CreatePurchase(r.Context(), req.UserID, req.Amount, req.Points)
		if err != nil {
			respondServiceError(w, r, "Purchase points", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleConfirm credits a succeeded payment. Repeated calls return AlreadyGranted.
// @Summary Confirm point purchase
// @Tags points
// @Accept json
// @Produce json
// @Param request body ConfirmRequest true "Payment to confirm"
// @Success 200 {object} domain.CreditResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/points/confirm [post]
func HandleConfirm(svc points.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConfirmRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Confirm purchase"); err != nil {
			return
		}

		res, err := svc.Confirm(r.Context(), req.UserID, req.PaymentIntentID)
		if err != nil {
			respondServiceError(w, r, "Confirm purchase", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandlePaymentWebhook verifies and applies a payment processor event.
// The raw body is required for signature verification.
// @Summary Payment webhook
// @Tags points
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/points/webhook [post]
func HandlePaymentWebhook(svc points.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		signature := r.Header.Get(stripeSignatureHeader)
		if signature == "" {
			log.Warn(LogMsgWebhookRejected, "reason", "missing signature")
			respondError(w, http.StatusBadRequest, ErrMsgMissingSignature)
			return
		}

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
			return
		}

		if err := svc.HandleWebhook(r.Context(), payload, signature); err != nil {
			respondServiceError(w, r, "Payment webhook", err)
			return
		}
		respondJSON(w, http.StatusOK, WebhookResponse{Received: true})
	}
}
