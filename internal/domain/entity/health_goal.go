package entity

import (
	"math"
	"time"
)

// GoalStatus represents the lifecycle of a health goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

// Goal types where progress means moving down towards the target
const (
	GoalTypeWeightLoss = "weight_loss"
	GoalTypeFatLoss    = "fat_loss"
)

type HealthGoal struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	GoalType     string     `gorm:"type:varchar(50);not null" json:"goal_type"`
	TargetValue  float64    `gorm:"not null" json:"target_value"`
	CurrentValue *float64   `json:"current_value,omitempty"`
	InitialValue *float64   `json:"initial_value,omitempty"`
	StartDate    time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Status       GoalStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Logs []HealthGoalLog `gorm:"foreignKey:GoalID" json:"logs,omitempty"`
}

func (HealthGoal) TableName() string {
	return "health_goals"
}

// IsDecreasing reports whether the goal is reached by going below the target
func (g *HealthGoal) IsDecreasing() bool {
	return g.GoalType == GoalTypeWeightLoss || g.GoalType == GoalTypeFatLoss
}

// Progress returns completion in percent, clamped to [0, 100]
func (g *HealthGoal) Progress() float64 {
	if g.CurrentValue == nil || g.TargetValue == 0 {
		return 0
	}
	current := *g.CurrentValue

	var progress float64
	if g.IsDecreasing() {
		var start float64
		if g.InitialValue != nil {
			start = *g.InitialValue
		}
		if start <= g.TargetValue {
			return 0
		}
		progress = (start - current) / (start - g.TargetValue) * 100
	} else {
		progress = current / g.TargetValue * 100
	}
	return math.Max(0, math.Min(Round(progress, 2), 100))
}

// ApplyValue records a new current value and completes the goal once the
// threshold is crossed. Returns true when the status changed to completed.
func (g *HealthGoal) ApplyValue(value float64, on time.Time) bool {
	g.CurrentValue = &value
	if g.Status == GoalStatusCompleted {
		return false
	}

	reached := value >= g.TargetValue
	if g.IsDecreasing() {
		reached = value <= g.TargetValue
	}
	if !reached {
		return false
	}

	g.Status = GoalStatusCompleted
	if g.EndDate == nil {
		end := DateOnly(on)
		g.EndDate = &end
	}
	return true
}

type HealthGoalLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GoalID    uint      `gorm:"not null;index" json:"goal_id"`
	LogDate   time.Time `gorm:"type:date;not null" json:"log_date"`
	Value     float64   `gorm:"not null" json:"value"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HealthGoalLog) TableName() string {
	return "health_goal_logs"
}
