package handler

import (
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

type ExerciseHandler struct {
	exerciseUsecase usecase.ExerciseUsecase
	validator       *validator.CustomValidator
}

func NewExerciseHandler(exerciseUsecase usecase.ExerciseUsecase, validator *validator.CustomValidator) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseUsecase: exerciseUsecase,
		validator:       validator,
	}
}

func (h *ExerciseHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExerciseTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	exerciseType, err := h.exerciseUsecase.CreateType(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrExerciseTypeExists:
			response.Conflict(w, "Exercise type already exists")
		default:
			response.InternalServerError(w, "Failed to create exercise type")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Exercise type created successfully", exerciseType)
}

func (h *ExerciseHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	types, err := h.exerciseUsecase.ListTypes(r.Context(), q.Get("category"), q.Get("search"))
	if err != nil {
		response.InternalServerError(w, "Failed to get exercise types")
		return
	}
	response.Success(w, http.StatusOK, "Exercise types retrieved successfully", types)
}

func (h *ExerciseHandler) GetType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid exercise type ID")
		return
	}

	exerciseType, err := h.exerciseUsecase.GetType(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrExerciseTypeNotFound:
			response.NotFound(w, "Exercise type not found")
		default:
			response.InternalServerError(w, "Failed to get exercise type")
		}
		return
	}
	response.Success(w, http.StatusOK, "Exercise type retrieved successfully", exerciseType)
}

func (h *ExerciseHandler) SeedTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.exerciseUsecase.SeedTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to seed exercise types")
		return
	}
	response.Success(w, http.StatusOK, "Exercise types seeded successfully", result)
}

func (h *ExerciseHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateExerciseLogRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.exerciseUsecase.CreateRecord(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrExerciseTypeNotFound:
			response.NotFound(w, "Exercise type not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create exercise record")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Exercise record created successfully", record)
}

func (h *ExerciseHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	records, err := h.exerciseUsecase.ListRecords(r.Context(), userID, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get exercise records")
		}
		return
	}
	response.Success(w, http.StatusOK, "Exercise records retrieved successfully", records)
}

func (h *ExerciseHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid exercise record ID")
		return
	}

	if err := h.exerciseUsecase.DeleteRecord(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrExerciseRecordNotFound:
			response.NotFound(w, "Exercise record not found")
		default:
			response.InternalServerError(w, "Failed to delete exercise record")
		}
		return
	}
	response.Success(w, http.StatusOK, "Exercise record deleted successfully", nil)
}

// Summary totals the exercise log per day and per exercise type
// @Summary Exercise summary
// @Tags Exercise
// @Security BearerAuth
// @Param period query string false "day|week|month, default week"
// @Param date query string false "YYYY-MM-DD; the last 30 days when omitted"
// @Router /exercise-records/summary [get]
func (h *ExerciseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	period := q.Get("period")
	if period == "" {
		period = "week"
	}
	summary, err := h.exerciseUsecase.Summary(r.Context(), userID, period, q.Get("date"))
	if err != nil {
		response.InternalServerError(w, "Failed to get exercise summary")
		return
	}
	response.Success(w, http.StatusOK, "Exercise summary retrieved successfully", summary)
}
