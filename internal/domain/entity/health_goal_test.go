package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthGoalProgress(t *testing.T) {
	tests := []struct {
		name     string
		goal     HealthGoal
		expected float64
	}{
		{
			name:     "weight loss halfway",
			goal:     HealthGoal{GoalType: GoalTypeWeightLoss, TargetValue: 70, InitialValue: float64Ptr(80), CurrentValue: float64Ptr(75)},
			expected: 50,
		},
		{
			name:     "weight loss overshoot is clamped",
			goal:     HealthGoal{GoalType: GoalTypeWeightLoss, TargetValue: 70, InitialValue: float64Ptr(80), CurrentValue: float64Ptr(65)},
			expected: 100,
		},
		{
			name:     "weight loss gained weight is clamped",
			goal:     HealthGoal{GoalType: GoalTypeFatLoss, TargetValue: 20, InitialValue: float64Ptr(25), CurrentValue: float64Ptr(27)},
			expected: 0,
		},
		{
			name:     "decreasing goal with start below target",
			goal:     HealthGoal{GoalType: GoalTypeWeightLoss, TargetValue: 70, InitialValue: float64Ptr(65), CurrentValue: float64Ptr(66)},
			expected: 0,
		},
		{
			name:     "increasing goal",
			goal:     HealthGoal{GoalType: "steps", TargetValue: 10000, CurrentValue: float64Ptr(2500)},
			expected: 25,
		},
		{
			name:     "increasing goal rounds to two places",
			goal:     HealthGoal{GoalType: "water", TargetValue: 3, CurrentValue: float64Ptr(1)},
			expected: 33.33,
		},
		{
			name:     "no current value",
			goal:     HealthGoal{GoalType: "steps", TargetValue: 10000},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.goal.Progress())
		})
	}
}

func TestHealthGoalApplyValue(t *testing.T) {
	logDate := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)

	goal := HealthGoal{GoalType: GoalTypeWeightLoss, TargetValue: 70, InitialValue: float64Ptr(80), Status: GoalStatusActive}
	assert.False(t, goal.ApplyValue(72, logDate))
	assert.Equal(t, GoalStatusActive, goal.Status)

	assert.True(t, goal.ApplyValue(69.5, logDate))
	assert.Equal(t, GoalStatusCompleted, goal.Status)
	if assert.NotNil(t, goal.EndDate) {
		assert.Equal(t, DateOnly(logDate), *goal.EndDate)
	}

	// already completed goals only track the value
	assert.False(t, goal.ApplyValue(68, logDate))
	assert.Equal(t, 68.0, *goal.CurrentValue)
}

func TestHealthGoalApplyValueKeepsEndDate(t *testing.T) {
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := HealthGoal{GoalType: "steps", TargetValue: 10000, EndDate: &end, Status: GoalStatusActive}

	assert.True(t, goal.ApplyValue(10000, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, end, *goal.EndDate)
}
