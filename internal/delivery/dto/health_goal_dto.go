package dto

import "time"

// Request DTOs

type CreateGoalRequest struct {
	GoalType     string   `json:"goal_type" validate:"required,max=50"`
	TargetValue  float64  `json:"target_value" validate:"required"`
	CurrentValue *float64 `json:"current_value"`
	// InitialValue defaults to the current value
	InitialValue *float64 `json:"initial_value"`
	StartDate    string   `json:"start_date" validate:"omitempty,date"` // Format: YYYY-MM-DD, defaults to today
	EndDate      string   `json:"end_date" validate:"omitempty,date"`
	Notes        string   `json:"notes"`
}

type UpdateGoalRequest struct {
	GoalType     *string  `json:"goal_type" validate:"omitempty,min=1,max=50"`
	TargetValue  *float64 `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	InitialValue *float64 `json:"initial_value"`
	EndDate      *string  `json:"end_date" validate:"omitempty,date"`
	Status       *string  `json:"status" validate:"omitempty,oneof=active completed abandoned"`
	Notes        *string  `json:"notes"`
}

type CreateGoalLogRequest struct {
	Value   float64 `json:"value" validate:"required"`
	LogDate string  `json:"log_date" validate:"omitempty,date"`
	Notes   string  `json:"notes"`
}

// Response DTOs

type GoalLogResponse struct {
	ID        uint      `json:"id"`
	GoalID    uint      `json:"goal_id"`
	LogDate   string    `json:"log_date"`
	Value     float64   `json:"value"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type GoalResponse struct {
	ID           uint              `json:"id"`
	GoalType     string            `json:"goal_type"`
	TargetValue  float64           `json:"target_value"`
	CurrentValue *float64          `json:"current_value,omitempty"`
	InitialValue *float64          `json:"initial_value,omitempty"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date,omitempty"`
	Status       string            `json:"status"`
	Progress     float64           `json:"progress"`
	Notes        string            `json:"notes,omitempty"`
	Logs         []GoalLogResponse `json:"logs,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type GoalLogResultResponse struct {
	Log          GoalLogResponse `json:"log"`
	Goal         GoalResponse    `json:"goal"`
	GoalAchieved bool            `json:"goal_achieved"`
}
