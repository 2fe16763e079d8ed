package usecase

import (
	"testing"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationAdviceBands(t *testing.T) {
	tests := []struct {
		avg      float64
		severity string
	}{
		{0, "high"},
		{29.9, "high"},
		{30, "medium"},
		{59, "medium"},
		{60, "low"},
		{120, "low"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.severity, durationAdvice(tt.avg).Severity, "avg %.1f", tt.avg)
	}
}

func TestSummarizeSessionsAveragesOverWindow(t *testing.T) {
	snap := summarizeSessions([]exerciseSession{
		{Name: "跑步", Category: entity.CategoryCardio, Duration: 40},
		{Name: "跑步", Category: entity.CategoryCardio, Duration: 20},
		{Name: "俯卧撑", Category: entity.CategoryStrength, Duration: 10},
	}, 7)

	assert.InDelta(t, 10.0, snap.avgDuration, 1e-9)
	assert.True(t, snap.hasCardio)
	assert.True(t, snap.hasStrength)
	assert.False(t, snap.hasFlexibility)
	assert.Equal(t, 2, snap.used["跑步"].Count)
}

func TestVarietyAdviceForMissingCategories(t *testing.T) {
	available := groupExerciseTypes([]entity.ExerciseType{
		{ID: 1, Name: "瑜伽", Category: entity.CategoryFlexibility},
		{ID: 2, Name: "飞盘", Category: "team"},
	})
	assert.Len(t, available[entity.CategoryOther], 1)

	advice := varietyAdvice(assumedWalking(2), available)
	require.Len(t, advice, 2)
	assert.Equal(t, entity.CategoryStrength, advice[0].Category)
	assert.Equal(t, entity.CategoryFlexibility, advice[1].Category)
	assert.Equal(t, "瑜伽", advice[1].Suggestions[0].Name)
}

func TestCalorieAdviceThreshold(t *testing.T) {
	available := map[string][]dto.ExerciseTypeBrief{
		entity.CategoryCardio: {{Name: "跑步", CaloriesPerHour: 600}, {Name: "散步", CaloriesPerHour: 200}},
	}

	_, ok := calorieAdvice(300, available)
	assert.False(t, ok)

	a, ok := calorieAdvice(500, available)
	require.True(t, ok)
	assert.Equal(t, "high", a.Severity)
	require.Len(t, a.Suggestions, 1)
	assert.Equal(t, "跑步", a.Suggestions[0].Name)

	a, ok = calorieAdvice(-400, available)
	require.True(t, ok)
	assert.Equal(t, "medium", a.Severity)
}

func TestWeeklyPlanSplitsTarget(t *testing.T) {
	available := map[string][]dto.ExerciseTypeBrief{
		entity.CategoryCardio:      {{Name: "跑步"}},
		entity.CategoryStrength:    {{Name: "深蹲"}},
		entity.CategoryFlexibility: {{Name: "拉伸"}},
	}

	plan := weeklyPlan(10, available)
	require.Len(t, plan, 7)

	// 210 minutes: cardio 105/4, strength 63/3, flexibility 42/7
	monday := plan[0]
	require.Len(t, monday.Activities, 2)
	assert.Equal(t, 26, monday.Activities[0].Duration)
	assert.Equal(t, 6, monday.Activities[1].Duration)

	tuesday := plan[1]
	require.Len(t, tuesday.Activities, 2)
	assert.Equal(t, entity.CategoryStrength, tuesday.Activities[0].Category)
	assert.Equal(t, 21, tuesday.Activities[0].Duration)
}

func TestWeeklyTarget(t *testing.T) {
	assert.Equal(t, 210, weeklyTarget(0))
	assert.Equal(t, 300, weeklyTarget(45))
	assert.Equal(t, 420, weeklyTarget(90))
}
