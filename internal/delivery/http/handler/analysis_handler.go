package handler

import (
	"net/http"

	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
)

// AnalysisHandler writes the analysis envelope as-is with status 200;
// a logical failure is reported inside the body
type AnalysisHandler struct {
	analysisUsecase usecase.AnalysisUsecase
}

func NewAnalysisHandler(analysisUsecase usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUsecase: analysisUsecase,
	}
}

// Nutrition analyses the diet of a date window
// @Summary Nutrition analysis
// @Tags Analysis
// @Security BearerAuth
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Router /analysis/nutrition [get]
func (h *AnalysisHandler) Nutrition(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	result := h.analysisUsecase.NutritionAnalysis(r.Context(), userID, q.Get("start_date"), q.Get("end_date"))
	response.JSON(w, http.StatusOK, result)
}

// Exercise recommends a weekly plan from recent activity
// @Summary Exercise recommendation
// @Tags Analysis
// @Security BearerAuth
// @Param days query int false "look-back window, default 7"
// @Param based_on_diet query bool false "compare intake with burned calories, default true"
// @Router /analysis/exercise [get]
func (h *AnalysisHandler) Exercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	result := h.analysisUsecase.ExerciseRecommendation(r.Context(), userID, queryInt(r, "days", 0), queryBool(r, "based_on_diet", true))
	response.JSON(w, http.StatusOK, result)
}
