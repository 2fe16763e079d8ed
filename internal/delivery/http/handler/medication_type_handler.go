package handler

import (
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

type MedicationTypeHandler struct {
	medicationTypeUsecase usecase.MedicationTypeUsecase
	validator             *validator.CustomValidator
}

func NewMedicationTypeHandler(medicationTypeUsecase usecase.MedicationTypeUsecase, validator *validator.CustomValidator) *MedicationTypeHandler {
	return &MedicationTypeHandler{
		medicationTypeUsecase: medicationTypeUsecase,
		validator:             validator,
	}
}

// Create answers 201 for a new entry and 200 when the name already existed
func (h *MedicationTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicationTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.medicationTypeUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medication type")
		return
	}
	if !result.Created {
		response.Success(w, http.StatusOK, "Medication type already exists", result)
		return
	}
	response.Success(w, http.StatusCreated, "Medication type created successfully", result)
}

func (h *MedicationTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	types, err := h.medicationTypeUsecase.List(r.Context(), q.Get("category"), q.Get("search"))
	if err != nil {
		response.InternalServerError(w, "Failed to get medication types")
		return
	}
	response.Success(w, http.StatusOK, "Medication types retrieved successfully", types)
}

func (h *MedicationTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid medication type ID")
		return
	}

	medicationType, err := h.medicationTypeUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMedicationTypeNotFound:
			response.NotFound(w, "Medication type not found")
		default:
			response.InternalServerError(w, "Failed to get medication type")
		}
		return
	}
	response.Success(w, http.StatusOK, "Medication type retrieved successfully", medicationType)
}
