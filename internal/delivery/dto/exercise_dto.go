package dto

import "time"

// Request DTOs

type CreateExerciseTypeRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Category        string  `json:"category" validate:"omitempty,max=50"`
	CaloriesPerHour float64 `json:"calories_per_hour" validate:"gte=0"`
	Description     string  `json:"description"`
	Benefits        string  `json:"benefits"`
}

type CreateExerciseLogRequest struct {
	ExerciseTypeID uint   `json:"exercise_type_id" validate:"required,gt=0"`
	RecordDate     string `json:"record_date" validate:"omitempty,date"`
	Duration       int    `json:"duration" validate:"required,gt=0,lte=1440"` // minutes
	// CaloriesBurned defaults to the type's hourly rate scaled to the duration
	CaloriesBurned *float64 `json:"calories_burned" validate:"omitempty,gte=0"`
	Intensity      string   `json:"intensity" validate:"omitempty,max=20"`
	HeartRateAvg   *int     `json:"heart_rate_avg" validate:"omitempty,gt=0,lte=300"`
	HeartRateMax   *int     `json:"heart_rate_max" validate:"omitempty,gt=0,lte=300"`
	Distance       *float64 `json:"distance" validate:"omitempty,gte=0"`
	Steps          *int     `json:"steps" validate:"omitempty,gte=0"`
	Notes          string   `json:"notes"`
}

// Response DTOs

type ExerciseTypeResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	CaloriesPerHour float64 `json:"calories_per_hour"`
	Description     string  `json:"description,omitempty"`
	Benefits        string  `json:"benefits,omitempty"`
}

type ExerciseLogResponse struct {
	ID             uint      `json:"id"`
	ExerciseTypeID uint      `json:"exercise_type_id"`
	ExerciseName   string    `json:"exercise_name,omitempty"`
	Category       string    `json:"category,omitempty"`
	RecordDate     string    `json:"record_date"`
	Duration       int       `json:"duration"`
	CaloriesBurned *float64  `json:"calories_burned,omitempty"`
	Intensity      string    `json:"intensity,omitempty"`
	HeartRateAvg   *int      `json:"heart_rate_avg,omitempty"`
	HeartRateMax   *int      `json:"heart_rate_max,omitempty"`
	Distance       *float64  `json:"distance,omitempty"`
	Steps          *int      `json:"steps,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type SeedExerciseTypesResponse struct {
	Created int `json:"created"`
	Total   int `json:"total"`
}

type ExerciseSummaryResponse struct {
	StartDate           string             `json:"start_date"`
	EndDate             string             `json:"end_date"`
	TotalCaloriesBurned float64            `json:"total_calories_burned"`
	TotalDuration       int                `json:"total_duration"`
	TotalActivities     int                `json:"total_activities"`
	DailyStats          []ExerciseDayStat  `json:"daily_stats"`
	TypeStats           []ExerciseTypeStat `json:"type_stats"`
}

type ExerciseDayStat struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Duration int     `json:"duration"`
	Count    int     `json:"count"`
}

type ExerciseTypeStat struct {
	Type     string  `json:"type"`
	Calories float64 `json:"calories"`
	Duration int     `json:"duration"`
	Count    int     `json:"count"`
}
