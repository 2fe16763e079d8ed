package handler

import (
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

type WaterIntakeHandler struct {
	waterIntakeUsecase usecase.WaterIntakeUsecase
	validator          *validator.CustomValidator
}

func NewWaterIntakeHandler(waterIntakeUsecase usecase.WaterIntakeUsecase, validator *validator.CustomValidator) *WaterIntakeHandler {
	return &WaterIntakeHandler{
		waterIntakeUsecase: waterIntakeUsecase,
		validator:          validator,
	}
}

func writeWaterError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrWaterIntakeNotFound:
		response.NotFound(w, "Water intake not found")
	case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *WaterIntakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateWaterIntakeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	intake, err := h.waterIntakeUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		writeWaterError(w, err, "Failed to create water intake")
		return
	}
	response.Success(w, http.StatusCreated, "Water intake created successfully", intake)
}

func (h *WaterIntakeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	intakes, err := h.waterIntakeUsecase.List(r.Context(), userID, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeWaterError(w, err, "Failed to get water intakes")
		return
	}
	response.Success(w, http.StatusOK, "Water intakes retrieved successfully", intakes)
}

func (h *WaterIntakeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid water intake ID")
		return
	}

	intake, err := h.waterIntakeUsecase.Get(r.Context(), userID, id)
	if err != nil {
		writeWaterError(w, err, "Failed to get water intake")
		return
	}
	response.Success(w, http.StatusOK, "Water intake retrieved successfully", intake)
}

func (h *WaterIntakeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid water intake ID")
		return
	}

	if err := h.waterIntakeUsecase.Delete(r.Context(), userID, id); err != nil {
		writeWaterError(w, err, "Failed to delete water intake")
		return
	}
	response.Success(w, http.StatusOK, "Water intake deleted successfully", nil)
}

// DailySummary reports the day's total against the 2000 ml recommendation
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Router /water-intakes/summary/daily [get]
func (h *WaterIntakeHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.waterIntakeUsecase.DailySummary(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeWaterError(w, err, "Failed to get water summary")
		return
	}
	response.Success(w, http.StatusOK, "Water summary retrieved successfully", summary)
}

func (h *WaterIntakeHandler) RangeSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	summary, err := h.waterIntakeUsecase.RangeSummary(r.Context(), userID, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeWaterError(w, err, "Failed to get water summary")
		return
	}
	response.Success(w, http.StatusOK, "Water summary retrieved successfully", summary)
}
