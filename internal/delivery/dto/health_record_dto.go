package dto

import (
	"time"

	"health-tracker/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Request DTOs
//
// Update requests reuse the create shapes: an update replaces every field of
// the record's variant.

type HealthMetricsRequest struct {
	RecordDate             string   `json:"record_date" validate:"omitempty,date"` // Format: YYYY-MM-DD, defaults to today
	Weight                 *float64 `json:"weight" validate:"omitempty,gt=0,lte=500"`
	Height                 *float64 `json:"height" validate:"omitempty,gt=0,lte=300"`
	BMI                    *float64 `json:"bmi" validate:"omitempty,gt=0"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic" validate:"omitempty,gt=0,lte=300"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic" validate:"omitempty,gt=0,lte=200"`
	HeartRate              *int     `json:"heart_rate" validate:"omitempty,gt=0,lte=300"`
	BloodSugar             *float64 `json:"blood_sugar" validate:"omitempty,gt=0"`
	BodyFat                *float64 `json:"body_fat" validate:"omitempty,gte=0,lte=100"`
	SleepHours             *float64 `json:"sleep_hours" validate:"omitempty,gte=0,lte=24"`
	Steps                  *int     `json:"steps" validate:"omitempty,gte=0"`
	Notes                  string   `json:"notes"`
}

type DietRecordRequest struct {
	RecordDate string   `json:"record_date" validate:"omitempty,date"`
	FoodName   string   `json:"food_name" validate:"required,max=100"`
	MealType   string   `json:"meal_type" validate:"omitempty,max=20"`
	FoodAmount *float64 `json:"food_amount" validate:"omitempty,gte=0"`
	Calories   *float64 `json:"calories" validate:"omitempty,gte=0"`
	Sugar      *float64 `json:"sugar" validate:"omitempty,gte=0"`
	Notes      string   `json:"notes"`
}

// ExerciseRecordRequest: with exercise_type_id set the catalog name is used
// and missing calories are derived from the catalog rate
type ExerciseRecordRequest struct {
	RecordDate     string   `json:"record_date" validate:"omitempty,date"`
	ExerciseTypeID *uint    `json:"exercise_type_id" validate:"omitempty,gt=0"`
	ExerciseType   string   `json:"exercise_type" validate:"required_without=ExerciseTypeID,max=50"`
	Duration       *int     `json:"duration" validate:"omitempty,gte=0,lte=1440"`
	Intensity      string   `json:"intensity" validate:"omitempty,max=20"`
	CaloriesBurned *float64 `json:"calories_burned" validate:"omitempty,gte=0"`
	Distance       *float64 `json:"distance" validate:"omitempty,gte=0"`
	Notes          string   `json:"notes"`
}

type WaterRecordRequest struct {
	RecordDate string  `json:"record_date" validate:"omitempty,date"`
	Amount     float64 `json:"water_amount" validate:"required,gt=0,lte=10000"`
	WaterType  string  `json:"water_type" validate:"omitempty,max=20"`
	IntakeTime string  `json:"intake_time" validate:"omitempty,clock"`
	Notes      string  `json:"notes"`
}

// MedicationRecordRequest: medication_type_id resolves the name from the catalog
type MedicationRecordRequest struct {
	RecordDate       string           `json:"record_date" validate:"omitempty,date"`
	MedicationTypeID *uint            `json:"medication_type_id" validate:"omitempty,gt=0"`
	MedicationName   string           `json:"medication_name" validate:"required_without=MedicationTypeID,max=100"`
	Dosage           *decimal.Decimal `json:"dosage"`
	DosageUnit       string           `json:"dosage_unit" validate:"omitempty,max=20"`
	Frequency        string           `json:"frequency" validate:"omitempty,max=50"`
	TimeTaken        string           `json:"time_taken" validate:"omitempty,clock"`
	WithFood         *bool            `json:"with_food"`
	Effectiveness    *int             `json:"effectiveness" validate:"omitempty,min=1,max=5"`
	SideEffects      string           `json:"side_effects"`
	Notes            string           `json:"notes"`
}

// Response DTOs

// HealthRecordResponse flattens the active variant's fields next to the
// common ones; inactive variants are nil and drop out of the JSON.
type HealthRecordResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	RecordDate string    `json:"record_date"`
	RecordType string    `json:"record_type"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	*entity.HealthMetrics
	*entity.DietDetails
	*entity.ExerciseDetails
	*entity.WaterDetails
	*entity.MedicationDetails
}

type HealthRecordListResponse struct {
	Records []HealthRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}
