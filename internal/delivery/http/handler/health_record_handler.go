package handler

import (
	"errors"
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

// HealthRecordHandler serves the generic record listing and the five
// variant endpoints (/health-metrics, /diet, /exercises, /water, /medications)
type HealthRecordHandler struct {
	healthRecordUsecase usecase.HealthRecordUsecase
	validator           *validator.CustomValidator
}

func NewHealthRecordHandler(healthRecordUsecase usecase.HealthRecordUsecase, validator *validator.CustomValidator) *HealthRecordHandler {
	return &HealthRecordHandler{
		healthRecordUsecase: healthRecordUsecase,
		validator:           validator,
	}
}

func writeRecordError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrHealthRecordNotFound):
		response.NotFound(w, "Health record not found")
	case errors.Is(err, usecase.ErrExerciseTypeNotFound):
		response.NotFound(w, "Exercise type not found")
	case errors.Is(err, usecase.ErrMedicationTypeNotFound):
		response.NotFound(w, "Medication type not found")
	case errors.Is(err, usecase.ErrInvalidRecord),
		errors.Is(err, usecase.ErrInvalidRecordType),
		errors.Is(err, usecase.ErrInvalidDateFormat),
		errors.Is(err, usecase.ErrInvalidDateRange):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

// List returns all records of the user, optionally narrowed by ?type=
// @Summary List health records
// @Tags HealthRecords
// @Security BearerAuth
// @Param type query string false "health|diet|exercise|water|medication"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Router /health-records [get]
func (h *HealthRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, r.URL.Query().Get("type"))
}

func (h *HealthRecordHandler) list(w http.ResponseWriter, r *http.Request, recordType string) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	records, err := h.healthRecordUsecase.List(r.Context(), userID, recordType, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeRecordError(w, err, "Failed to get health records")
		return
	}
	response.Success(w, http.StatusOK, "Health records retrieved successfully", records)
}

// ListOf binds the listing to one record variant
func (h *HealthRecordHandler) ListOf(recordType entity.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.list(w, r, string(recordType))
	}
}

// GetOf returns a handler for GET .../{id}; an empty type accepts any variant
func (h *HealthRecordHandler) GetOf(recordType entity.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, err := pathID(r, "id")
		if err != nil {
			response.BadRequest(w, "Invalid record ID")
			return
		}

		record, err := h.healthRecordUsecase.Get(r.Context(), userID, recordType, id)
		if err != nil {
			writeRecordError(w, err, "Failed to get health record")
			return
		}
		response.Success(w, http.StatusOK, "Health record retrieved successfully", record)
	}
}

func (h *HealthRecordHandler) DeleteOf(recordType entity.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, err := pathID(r, "id")
		if err != nil {
			response.BadRequest(w, "Invalid record ID")
			return
		}

		if err := h.healthRecordUsecase.Delete(r.Context(), userID, recordType, id); err != nil {
			writeRecordError(w, err, "Failed to delete health record")
			return
		}
		response.Success(w, http.StatusOK, "Health record deleted successfully", nil)
	}
}

// @Summary Create health metrics record
// @Tags HealthRecords
// @Security BearerAuth
// @Param request body dto.HealthMetricsRequest true "Metrics"
// @Router /health-metrics [post]
func (h *HealthRecordHandler) CreateHealthMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.HealthMetricsRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.CreateHealthMetrics(r.Context(), userID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to create health record")
		return
	}
	response.Success(w, http.StatusCreated, "Health record created successfully", record)
}

func (h *HealthRecordHandler) UpdateHealthMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}
	var req dto.HealthMetricsRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.UpdateHealthMetrics(r.Context(), userID, id, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to update health record")
		return
	}
	response.Success(w, http.StatusOK, "Health record updated successfully", record)
}

// @Summary Create diet record
// @Tags HealthRecords
// @Security BearerAuth
// @Param request body dto.DietRecordRequest true "Diet"
// @Router /diet [post]
func (h *HealthRecordHandler) CreateDiet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.DietRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.CreateDiet(r.Context(), userID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to create diet record")
		return
	}
	response.Success(w, http.StatusCreated, "Diet record created successfully", record)
}

func (h *HealthRecordHandler) UpdateDiet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}
	var req dto.DietRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.UpdateDiet(r.Context(), userID, id, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to update diet record")
		return
	}
	response.Success(w, http.StatusOK, "Diet record updated successfully", record)
}

// @Summary Create exercise record
// @Tags HealthRecords
// @Security BearerAuth
// @Param request body dto.ExerciseRecordRequest true "Exercise"
// @Router /exercises [post]
func (h *HealthRecordHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.ExerciseRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.CreateExercise(r.Context(), userID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to create exercise record")
		return
	}
	response.Success(w, http.StatusCreated, "Exercise record created successfully", record)
}

func (h *HealthRecordHandler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}
	var req dto.ExerciseRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.UpdateExercise(r.Context(), userID, id, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to update exercise record")
		return
	}
	response.Success(w, http.StatusOK, "Exercise record updated successfully", record)
}

// @Summary Create water record
// @Tags HealthRecords
// @Security BearerAuth
// @Param request body dto.WaterRecordRequest true "Water"
// @Router /water [post]
func (h *HealthRecordHandler) CreateWater(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.WaterRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.CreateWater(r.Context(), userID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to create water record")
		return
	}
	response.Success(w, http.StatusCreated, "Water record created successfully", record)
}

func (h *HealthRecordHandler) UpdateWater(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}
	var req dto.WaterRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.UpdateWater(r.Context(), userID, id, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to update water record")
		return
	}
	response.Success(w, http.StatusOK, "Water record updated successfully", record)
}

// @Summary Create medication record
// @Tags HealthRecords
// @Security BearerAuth
// @Param request body dto.MedicationRecordRequest true "Medication"
// @Router /medications [post]
func (h *HealthRecordHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.MedicationRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.CreateMedication(r.Context(), userID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to create medication record")
		return
	}
	response.Success(w, http.StatusCreated, "Medication record created successfully", record)
}

func (h *HealthRecordHandler) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}
	var req dto.MedicationRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.healthRecordUsecase.UpdateMedication(r.Context(), userID, id, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to update medication record")
		return
	}
	response.Success(w, http.StatusOK, "Medication record updated successfully", record)
}

// MedicationSchedule lists the latest dose of each medication
// @Summary Medication schedule
// @Tags HealthRecords
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, default today"
// @Router /medications/schedule [get]
func (h *HealthRecordHandler) MedicationSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	schedule, err := h.healthRecordUsecase.MedicationSchedule(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeRecordError(w, err, "Failed to get medication schedule")
		return
	}
	response.Success(w, http.StatusOK, "Medication schedule retrieved successfully", schedule)
}
