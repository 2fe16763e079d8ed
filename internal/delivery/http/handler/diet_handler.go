package handler

import (
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

// DietHandler serves the food catalog and itemized meal records
type DietHandler struct {
	dietUsecase usecase.DietUsecase
	validator   *validator.CustomValidator
}

func NewDietHandler(dietUsecase usecase.DietUsecase, validator *validator.CustomValidator) *DietHandler {
	return &DietHandler{
		dietUsecase: dietUsecase,
		validator:   validator,
	}
}

func (h *DietHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFoodRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	food, err := h.dietUsecase.CreateFood(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create food")
		return
	}
	response.Success(w, http.StatusCreated, "Food created successfully", food)
}

func (h *DietHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	foods, err := h.dietUsecase.ListFoods(r.Context(), q.Get("category"), q.Get("search"))
	if err != nil {
		response.InternalServerError(w, "Failed to get foods")
		return
	}
	response.Success(w, http.StatusOK, "Foods retrieved successfully", foods)
}

func (h *DietHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid food ID")
		return
	}

	food, err := h.dietUsecase.GetFood(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrFoodNotFound:
			response.NotFound(w, "Food not found")
		default:
			response.InternalServerError(w, "Failed to get food")
		}
		return
	}
	response.Success(w, http.StatusOK, "Food retrieved successfully", food)
}

func (h *DietHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateDietMealRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	meal, err := h.dietUsecase.CreateMeal(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrFoodNotFound:
			response.NotFound(w, "Food not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create diet record")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Diet record created successfully", meal)
}

func (h *DietHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	meals, err := h.dietUsecase.ListMeals(r.Context(), userID, q.Get("start_date"), q.Get("end_date"), q.Get("meal_type"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get diet records")
		}
		return
	}
	response.Success(w, http.StatusOK, "Diet records retrieved successfully", meals)
}

func (h *DietHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid diet record ID")
		return
	}

	meal, err := h.dietUsecase.GetMeal(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrDietMealNotFound:
			response.NotFound(w, "Diet record not found")
		default:
			response.InternalServerError(w, "Failed to get diet record")
		}
		return
	}
	response.Success(w, http.StatusOK, "Diet record retrieved successfully", meal)
}

func (h *DietHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid diet record ID")
		return
	}

	if err := h.dietUsecase.DeleteMeal(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrDietMealNotFound:
			response.NotFound(w, "Diet record not found")
		default:
			response.InternalServerError(w, "Failed to delete diet record")
		}
		return
	}
	response.Success(w, http.StatusOK, "Diet record deleted successfully", nil)
}

// NutritionSummary totals the itemized meals of a day
// @Summary Nutrition summary
// @Tags Diet
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, all days when omitted"
// @Router /diet-records/nutrition-summary [get]
func (h *DietHandler) NutritionSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.dietUsecase.NutritionSummary(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get nutrition summary")
		}
		return
	}
	response.Success(w, http.StatusOK, "Nutrition summary retrieved successfully", summary)
}
