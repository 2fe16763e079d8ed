package entity

import "time"

// Report types
const (
	ReportWeekly  = "weekly"
	ReportMonthly = "monthly"
	ReportYearly  = "yearly"
	ReportCustom  = "custom"
)

// HealthReport is written once when generated and never edited afterwards
type HealthReport struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	Title             string    `gorm:"type:varchar(100);not null" json:"title"`
	ReportType        string    `gorm:"type:varchar(50);not null" json:"report_type"`
	StartDate         time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate           time.Time `gorm:"type:date;not null" json:"end_date"`
	HealthSummary     string    `gorm:"type:text" json:"health_summary"`
	DietSummary       string    `gorm:"type:text" json:"diet_summary"`
	ExerciseSummary   string    `gorm:"type:text" json:"exercise_summary"`
	MedicationSummary string    `gorm:"type:text" json:"medication_summary"`
	Recommendations   string    `gorm:"type:text" json:"recommendations"`
	CreatedAt         time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HealthReport) TableName() string {
	return "health_reports"
}
