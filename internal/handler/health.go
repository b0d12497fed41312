package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/osse101/GachaLab_Go/internal/database"
	"github.com/osse101/GachaLab_Go/internal/logger"
)

// readinessTimeout bounds each readiness probe
const readinessTimeout = 2 * time.Second

// Probe statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

var errNotConfigured = errors.New("not configured")

// HealthResponse is returned by /healthz and /readyz
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ReadinessCheck is one dependency probed by /readyz
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// PingCheck probes a database pool
func PingCheck(name string, pool database.Pool) ReadinessCheck {
	return ReadinessCheck{
		Name: name,
		Check: func(ctx context.Context) error {
			if pool == nil {
				return errNotConfigured
			}
			return pool.Ping(ctx)
		},
	}
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz runs every check and reports 503 if any of them fails
// @Summary Readiness check
// @Description Probes the database; 503 lists the failing dependency
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: StatusOK, Checks: make(map[string]string, len(checks))}
		code := http.StatusOK

		for _, c := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			err := c.Check(ctx)
			cancel()

			if err != nil {
				logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "check", c.Name, "error", err)
				resp.Checks[c.Name] = StatusUnavailable
				resp.Status = StatusUnavailable
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[c.Name] = StatusOK
		}

		respondJSON(w, code, resp)
	}
}
