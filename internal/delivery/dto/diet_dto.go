package dto

import (
	"time"

	"health-tracker/internal/domain/entity"
)

// Request DTOs

// CreateFoodRequest takes nutrient values per 100g
type CreateFoodRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Category     string   `json:"category" validate:"omitempty,max=50"`
	Calories     *float64 `json:"calories" validate:"omitempty,gte=0"`
	Protein      *float64 `json:"protein" validate:"omitempty,gte=0"`
	Fat          *float64 `json:"fat" validate:"omitempty,gte=0"`
	Carbohydrate *float64 `json:"carbohydrate" validate:"omitempty,gte=0"`
	Fiber        *float64 `json:"fiber" validate:"omitempty,gte=0"`
	Sugar        *float64 `json:"sugar" validate:"omitempty,gte=0"`
	Sodium       *float64 `json:"sodium" validate:"omitempty,gte=0"`
	ServingSize  *float64 `json:"serving_size" validate:"omitempty,gt=0"`
}

type DietItemRequest struct {
	FoodID uint    `json:"food_id" validate:"required,gt=0"`
	Amount float64 `json:"amount" validate:"required,gt=0"` // grams
	// Calories defaults to the food's calories scaled to the amount
	Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
}

type CreateDietMealRequest struct {
	RecordDate string            `json:"record_date" validate:"omitempty,date"`
	MealType   string            `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	Notes      string            `json:"notes"`
	Items      []DietItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Response DTOs

type FoodResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	Calories     *float64  `json:"calories,omitempty"`
	Protein      *float64  `json:"protein,omitempty"`
	Fat          *float64  `json:"fat,omitempty"`
	Carbohydrate *float64  `json:"carbohydrate,omitempty"`
	Fiber        *float64  `json:"fiber,omitempty"`
	Sugar        *float64  `json:"sugar,omitempty"`
	Sodium       *float64  `json:"sodium,omitempty"`
	ServingSize  *float64  `json:"serving_size,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type DietItemResponse struct {
	ID       uint     `json:"id"`
	FoodID   uint     `json:"food_id"`
	FoodName string   `json:"food_name"`
	Amount   float64  `json:"amount"`
	Calories *float64 `json:"calories,omitempty"`
}

type DietMealResponse struct {
	ID            uint               `json:"id"`
	RecordDate    string             `json:"record_date"`
	MealType      string             `json:"meal_type"`
	TotalCalories *float64           `json:"total_calories,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	Items         []DietItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// NutritionSummaryResponse totals the itemized meals of one day, or of every
// day when Date is empty
type NutritionSummaryResponse struct {
	Date  string                  `json:"date,omitempty"`
	Total entity.Nutrients        `json:"total"`
	Meals map[string]*MealSummary `json:"meals"`
}
