package dto

import "time"

// Request DTOs

// GenerateReportRequest: an unknown report_type falls back to weekly and
// missing or malformed dates are derived from the type.
type GenerateReportRequest struct {
	ReportType string `json:"report_type"`
	StartDate  string `json:"start_date"` // Format: YYYY-MM-DD
	EndDate    string `json:"end_date"`   // Format: YYYY-MM-DD
}

// Response DTOs

type HealthReportResponse struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	ReportType        string    `json:"report_type"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	HealthSummary     string    `json:"health_summary"`
	DietSummary       string    `json:"diet_summary"`
	ExerciseSummary   string    `json:"exercise_summary"`
	MedicationSummary string    `json:"medication_summary"`
	Recommendations   string    `json:"recommendations"`
	CreatedAt         time.Time `json:"created_at"`
}

type HealthReportListResponse struct {
	Reports []HealthReportResponse `json:"reports"`
	Total   int                    `json:"total"`
}
