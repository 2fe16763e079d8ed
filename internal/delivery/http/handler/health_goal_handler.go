package handler

import (
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

type HealthGoalHandler struct {
	healthGoalUsecase usecase.HealthGoalUsecase
	validator         *validator.CustomValidator
}

func NewHealthGoalHandler(healthGoalUsecase usecase.HealthGoalUsecase, validator *validator.CustomValidator) *HealthGoalHandler {
	return &HealthGoalHandler{
		healthGoalUsecase: healthGoalUsecase,
		validator:         validator,
	}
}

func writeGoalError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrGoalNotFound:
		response.NotFound(w, "Health goal not found")
	case usecase.ErrInvalidGoalDates, usecase.ErrInvalidDateFormat:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *HealthGoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateGoalRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	goal, err := h.healthGoalUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		writeGoalError(w, err, "Failed to create health goal")
		return
	}
	response.Success(w, http.StatusCreated, "Health goal created successfully", goal)
}

func (h *HealthGoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	goals, err := h.healthGoalUsecase.List(r.Context(), userID, q.Get("status"), q.Get("goal_type"))
	if err != nil {
		writeGoalError(w, err, "Failed to get health goals")
		return
	}
	response.Success(w, http.StatusOK, "Health goals retrieved successfully", goals)
}

func (h *HealthGoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid goal ID")
		return
	}

	goal, err := h.healthGoalUsecase.Get(r.Context(), userID, id)
	if err != nil {
		writeGoalError(w, err, "Failed to get health goal")
		return
	}
	response.Success(w, http.StatusOK, "Health goal retrieved successfully", goal)
}

func (h *HealthGoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid goal ID")
		return
	}
	var req dto.UpdateGoalRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	goal, err := h.healthGoalUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		writeGoalError(w, err, "Failed to update health goal")
		return
	}
	response.Success(w, http.StatusOK, "Health goal updated successfully", goal)
}

func (h *HealthGoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid goal ID")
		return
	}

	if err := h.healthGoalUsecase.Delete(r.Context(), userID, id); err != nil {
		writeGoalError(w, err, "Failed to delete health goal")
		return
	}
	response.Success(w, http.StatusOK, "Health goal deleted successfully", nil)
}

func (h *HealthGoalHandler) AddLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid goal ID")
		return
	}
	var req dto.CreateGoalLogRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.healthGoalUsecase.AddLog(r.Context(), userID, id, &req)
	if err != nil {
		writeGoalError(w, err, "Failed to add goal log")
		return
	}

	message := "Goal log added successfully"
	if result.GoalAchieved {
		message = "Goal log added, goal achieved"
	}
	response.Success(w, http.StatusCreated, message, result)
}

func (h *HealthGoalHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid goal ID")
		return
	}

	logs, err := h.healthGoalUsecase.ListLogs(r.Context(), userID, id)
	if err != nil {
		writeGoalError(w, err, "Failed to get goal logs")
		return
	}
	response.Success(w, http.StatusOK, "Goal logs retrieved successfully", logs)
}
