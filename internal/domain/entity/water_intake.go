package entity

import "time"

// RecommendedDailyWater is the daily intake target in ml
const RecommendedDailyWater = 2000.0

// WaterIntake is the standalone water log, amount in ml
type WaterIntake struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Amount     float64   `gorm:"not null" json:"amount"`
	RecordDate time.Time `gorm:"type:date;not null;index" json:"record_date"`
	IntakeTime string    `gorm:"type:varchar(5)" json:"intake_time,omitempty"`
	WaterType  string    `gorm:"type:varchar(50)" json:"water_type,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WaterIntake) TableName() string {
	return "water_intakes"
}
