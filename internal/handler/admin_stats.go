package handler

import (
	"net/http"
	"time"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/stats"
)

// HandleGetStatistics aggregates activity for a period
// @Summary Get statistics
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param period query string false "day, month (default) or custom"
// @Param start_date query string false "YYYY-MM-DD, custom only"
// @Param end_date query string false "YYYY-MM-DD, custom only"
// @Success 200 {object} domain.Statistics
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/statistics [get]
func HandleGetStatistics(svc stats.Service, loc *time.Location) http.HandlerFunc {
	if loc == nil {
		loc = time.Local
	}
	return func(w http.ResponseWriter, r *http.Request) {
		period := domain.StatsPeriod(GetOptionalQueryParam(r, "period", string(domain.PeriodMonth)))

		start, ok := parseDateParam(r, w, "start_date", loc)
		if !ok {
			return
		}
		end, ok := parseDateParam(r, w, "end_date", loc)
		if !ok {
			return
		}

		res, err := svc.GetStatistics(r.Context(), period, start, end)
		if err != nil {
			respondServiceError(w, r, "Get statistics", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
