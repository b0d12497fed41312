package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// dateLayout is the format of date query parameters
const dateLayout = "2006-01-02"

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the handler should return.
//
// Example usage:
//
//	var req DrawRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Draw"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter.
// If ok is false, the response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getPathParam retrieves a required chi URL parameter
func getPathParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, name))
		return "", false
	}
	return value, true
}

// getIDPathParam parses a positive integer chi URL parameter
func getIDPathParam(r *http.Request, w http.ResponseWriter, name string) (int64, bool) {
	raw, ok := getPathParam(r, w, name)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return id, true
}

// parsePage reads page and limit. Invalid values fall back to defaults.
func parsePage(r *http.Request) domain.Page {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return domain.Page{Page: page, Limit: limit}.Normalize()
}

// parseDateParam parses an optional YYYY-MM-DD query parameter in loc.
// If ok is false, the response has already been written.
func parseDateParam(r *http.Request, w http.ResponseWriter, name string, loc *time.Location) (*time.Time, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, true
	}
	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidDateParam, name))
		return nil, false
	}
	return &t, true
}
