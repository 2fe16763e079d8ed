package handler

import (
	"net/http"

	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// ChartData returns per-day diet, exercise and water series
// @Summary Dashboard chart data
// @Tags Dashboard
// @Security BearerAuth
// @Param days query int false "window length, default 7"
// @Router /dashboard/chart-data [get]
func (h *DashboardHandler) ChartData(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	chart, err := h.dashboardUsecase.ChartData(r.Context(), userID, queryInt(r, "days", 0))
	if err != nil {
		response.InternalServerError(w, "Failed to get chart data")
		return
	}
	response.Success(w, http.StatusOK, "Chart data retrieved successfully", chart)
}

// RecentRecords returns the newest health records with a one-line summary
// @Summary Recent records
// @Tags Dashboard
// @Security BearerAuth
// @Param limit query int false "default 5"
// @Router /recent-records [get]
func (h *DashboardHandler) RecentRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	records, err := h.dashboardUsecase.RecentRecords(r.Context(), userID, queryInt(r, "limit", 0))
	if err != nil {
		response.InternalServerError(w, "Failed to get recent records")
		return
	}
	response.Success(w, http.StatusOK, "Recent records retrieved successfully", records)
}
