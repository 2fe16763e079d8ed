package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	validator       *validator.CustomValidator
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, validator *validator.CustomValidator) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

func writeReminderError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrReminderNotFound:
		response.NotFound(w, "Reminder not found")
	case usecase.ErrInvalidReminderDate:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *ReminderHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateMedicationReminderRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	reminder, err := h.reminderUsecase.CreateMedicationReminder(r.Context(), userID, &req)
	if err != nil {
		writeReminderError(w, err, "Failed to create reminder")
		return
	}
	response.Success(w, http.StatusCreated, "Reminder created successfully", reminder)
}

func (h *ReminderHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateAppointmentReminderRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	reminder, err := h.reminderUsecase.CreateAppointmentReminder(r.Context(), userID, &req)
	if err != nil {
		writeReminderError(w, err, "Failed to create reminder")
		return
	}
	response.Success(w, http.StatusCreated, "Reminder created successfully", reminder)
}

// List returns the reminders of one day, today by default
// @Param date query string false "YYYY-MM-DD"
// @Param type query string false "medication|appointment"
// @Router /reminders [get]
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	reminders, err := h.reminderUsecase.List(r.Context(), userID, q.Get("date"), q.Get("type"))
	if err != nil {
		writeReminderError(w, err, "Failed to get reminders")
		return
	}
	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *ReminderHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	reminders, err := h.reminderUsecase.ListPending(r.Context(), userID)
	if err != nil {
		writeReminderError(w, err, "Failed to get reminders")
		return
	}
	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid reminder ID")
		return
	}
	var req dto.UpdateReminderRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	reminder, err := h.reminderUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		writeReminderError(w, err, "Failed to update reminder")
		return
	}
	response.Success(w, http.StatusOK, "Reminder updated successfully", reminder)
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid reminder ID")
		return
	}

	if err := h.reminderUsecase.Delete(r.Context(), userID, id); err != nil {
		writeReminderError(w, err, "Failed to delete reminder")
		return
	}
	response.Success(w, http.StatusOK, "Reminder deleted successfully", nil)
}

func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid reminder ID")
		return
	}

	reminder, err := h.reminderUsecase.MarkCompleted(r.Context(), userID, id)
	if err != nil {
		writeReminderError(w, err, "Failed to complete reminder")
		return
	}
	response.Success(w, http.StatusOK, "Reminder completed", reminder)
}

// Generate derives reminders from the medication records of a day
// @Router /reminders/generate [post]
func (h *ReminderHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.GenerateRemindersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.reminderUsecase.GenerateFromMedications(r.Context(), userID, req.Date)
	if err != nil {
		writeReminderError(w, err, "Failed to generate reminders")
		return
	}
	response.Success(w, http.StatusOK, "Reminders generated successfully", result)
}
