package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/line"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/payment"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse wraps a payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON encodes into a pooled buffer first so an encoding failure never
// leaves a half-written body behind a 2xx status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", op, "error", err, "status", status)
	}
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrGachaTypeNotFound):
		return http.StatusNotFound, ErrMsgGachaTypeNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrGachaTypeInactive):
		return http.StatusBadRequest, ErrMsgGachaTypeInactiveError
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusBadRequest, ErrMsgInsufficientPointsErr
	case errors.Is(err, domain.ErrZeroTotalWeight):
		return http.StatusBadRequest, ErrMsgZeroTotalWeightError
	case errors.Is(err, domain.ErrPaymentNotSucceeded):
		return http.StatusBadRequest, ErrMsgPaymentNotSucceededErr
	case errors.Is(err, domain.ErrPaymentUserMismatch):
		return http.StatusForbidden, ErrMsgPaymentMismatchError
	case errors.Is(err, domain.ErrInvalidPaymentPayload):
		return http.StatusBadRequest, ErrMsgInvalidPaymentError
	case errors.Is(err, payment.ErrInvalidSignature), errors.Is(err, line.ErrInvalidSignature):
		return http.StatusBadRequest, ErrMsgInvalidSignatureError
	case errors.Is(err, prize.ErrNoMatchingItem):
		return http.StatusInternalServerError, ErrMsgNoMatchingItemError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, invalidInputMessage(err)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// invalidInputMessage exposes the validation detail, which services write for users
func invalidInputMessage(err error) string {
	if msg := err.Error(); msg != "" && len(msg) < 200 {
		return msg
	}
	return ErrMsgInvalidRequestError
}
