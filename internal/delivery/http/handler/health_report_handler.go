package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
)

type HealthReportHandler struct {
	healthReportUsecase usecase.HealthReportUsecase
}

func NewHealthReportHandler(healthReportUsecase usecase.HealthReportUsecase) *HealthReportHandler {
	return &HealthReportHandler{
		healthReportUsecase: healthReportUsecase,
	}
}

// Generate builds and stores a report. The body is optional; unknown types
// and bad dates fall back to the weekly window.
// @Summary Generate health report
// @Tags Reports
// @Security BearerAuth
// @Param request body dto.GenerateReportRequest false "Report window"
// @Router /reports [post]
func (h *HealthReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	report, err := h.healthReportUsecase.Generate(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to generate health report")
		return
	}
	response.Success(w, http.StatusCreated, "Health report generated successfully", report)
}

func (h *HealthReportHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	reports, err := h.healthReportUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get health reports")
		return
	}
	response.Success(w, http.StatusOK, "Health reports retrieved successfully", reports)
}

func (h *HealthReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	report, err := h.healthReportUsecase.Get(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Health report not found")
		default:
			response.InternalServerError(w, "Failed to get health report")
		}
		return
	}
	response.Success(w, http.StatusOK, "Health report retrieved successfully", report)
}

func (h *HealthReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	if err := h.healthReportUsecase.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Health report not found")
		default:
			response.InternalServerError(w, "Failed to delete health report")
		}
		return
	}
	response.Success(w, http.StatusOK, "Health report deleted successfully", nil)
}
