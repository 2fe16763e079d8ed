package dto

import "time"

// Request DTOs

type CreateWaterIntakeRequest struct {
	Amount     float64 `json:"amount" validate:"required,gt=0,lte=10000"`
	RecordDate string  `json:"record_date" validate:"omitempty,date"`  // Format: YYYY-MM-DD, defaults to today
	IntakeTime string  `json:"intake_time" validate:"omitempty,clock"` // Format: HH:MM
	WaterType  string  `json:"water_type" validate:"omitempty,max=50"`
	Notes      string  `json:"notes"`
}

// Response DTOs

type WaterIntakeResponse struct {
	ID         uint      `json:"id"`
	Amount     float64   `json:"amount"`
	RecordDate string    `json:"record_date"`
	IntakeTime string    `json:"intake_time,omitempty"`
	WaterType  string    `json:"water_type,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type WaterDailySummaryResponse struct {
	Date              string                `json:"date"`
	TotalAmount       float64               `json:"total_amount"`
	RecordsCount      int                   `json:"records_count"`
	Records           []WaterIntakeResponse `json:"records"`
	RecommendedIntake float64               `json:"recommended_intake"`
	CompletionRate    float64               `json:"completion_rate"`
}

type WaterRangeSummaryResponse struct {
	StartDate             string                      `json:"start_date"`
	EndDate               string                      `json:"end_date"`
	DaysCount             int                         `json:"days_count"`
	TotalAmount           float64                     `json:"total_amount"`
	AverageDailyIntake    float64                     `json:"average_daily_intake"`
	AverageCompletionRate float64                     `json:"average_completion_rate"`
	DailySummaries        []WaterDailySummaryResponse `json:"daily_summaries"`
}
