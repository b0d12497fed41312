package handler

import (
	"net/http"
)

// LineWebhook processes a LINE webhook delivery and reports how many replies were sent
type LineWebhook interface {
	HandleWebhook(r *http.Request) (int, error)
}

// HandleLineWebhook receives LINE platform events
// @Summary LINE webhook
// @Tags line
// @Produce json
// @Param X-Line-Signature header string true "Channel signature"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/webhook/line [post]
func HandleLineWebhook(svc LineWebhook) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.HandleWebhook(r); err != nil {
			respondServiceError(w, r, "LINE webhook", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWebhookAccepted})
	}
}
