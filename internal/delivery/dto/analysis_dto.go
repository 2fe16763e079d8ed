package dto

import "health-tracker/internal/domain/entity"

// Nutrition analysis

type NutritionAnalysisResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    *NutritionAnalysisData `json:"data"`
}

type NutritionAnalysisData struct {
	Period         AnalysisPeriod    `json:"period"`
	DailyNutrition []DailyNutrition  `json:"daily_nutrition"`
	Average        entity.Nutrients  `json:"average"`
	Recommended    entity.Nutrients  `json:"recommended"`
	Percentage     entity.Nutrients  `json:"percentage"`
	Analysis       []NutrientVerdict `json:"analysis"`
}

type AnalysisPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

type DailyNutrition struct {
	Date string `json:"date"`
	entity.Nutrients
	Meals map[string]*MealSummary `json:"meals"`
}

type MealSummary struct {
	Calories float64    `json:"calories"`
	Items    []MealItem `json:"items"`
}

type MealItem struct {
	FoodName string  `json:"food_name"`
	Amount   float64 `json:"amount"`
	Calories float64 `json:"calories"`
	Source   string  `json:"source"`
}

type NutrientVerdict struct {
	Nutrient string `json:"nutrient"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// EmptyNutritionAnalysis is the placeholder carried by failure envelopes
func EmptyNutritionAnalysis() *NutritionAnalysisData {
	return &NutritionAnalysisData{
		DailyNutrition: []DailyNutrition{},
		Analysis:       []NutrientVerdict{},
	}
}

// Exercise recommendation

type ExerciseRecommendationResponse struct {
	Success bool                        `json:"success"`
	Message string                      `json:"message,omitempty"`
	Data    *ExerciseRecommendationData `json:"data"`
}

type ExerciseRecommendationData struct {
	CurrentStatus          ExerciseStatus                 `json:"current_status"`
	Recommendations        []ExerciseAdvice               `json:"recommendations"`
	WeeklyPlan             []PlanDay                      `json:"weekly_plan"`
	AvailableExerciseTypes map[string][]ExerciseTypeBrief `json:"available_exercise_types"`
}

type ExerciseStatus struct {
	AverageDailyDuration float64                   `json:"average_daily_duration"`
	ExerciseTypesUsed    map[string]*ExerciseUsage `json:"exercise_types_used"`
	HasCardio            bool                      `json:"has_cardio"`
	HasStrength          bool                      `json:"has_strength"`
	HasFlexibility       bool                      `json:"has_flexibility"`
	CalorieSurplus       *float64                  `json:"calorie_surplus"`
}

type ExerciseUsage struct {
	Count    int     `json:"count"`
	Duration float64 `json:"duration"`
	Category string  `json:"category"`
}

type ExerciseAdvice struct {
	Type        string              `json:"type"`
	Category    string              `json:"category,omitempty"`
	Severity    string              `json:"severity"`
	Message     string              `json:"message"`
	Suggestions []ExerciseTypeBrief `json:"suggestions,omitempty"`
}

type PlanDay struct {
	Day        string         `json:"day"`
	Activities []PlanActivity `json:"activities"`
}

type PlanActivity struct {
	Category    string              `json:"category"`
	Duration    int                 `json:"duration"`
	Suggestions []ExerciseTypeBrief `json:"suggestions"`
}

type ExerciseTypeBrief struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	CaloriesPerHour float64 `json:"calories_per_hour"`
}

func EmptyExerciseRecommendation() *ExerciseRecommendationData {
	return &ExerciseRecommendationData{
		CurrentStatus:          ExerciseStatus{ExerciseTypesUsed: map[string]*ExerciseUsage{}},
		Recommendations:        []ExerciseAdvice{},
		WeeklyPlan:             []PlanDay{},
		AvailableExerciseTypes: map[string][]ExerciseTypeBrief{},
	}
}
