package usecase

import (
	"context"
	"testing"
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestExerciseUsecase(db *gorm.DB, now time.Time) *exerciseUsecase {
	log := newTestLogger()
	u := NewExerciseUsecase(db, log,
		repository.NewExerciseTypeRepository(),
		repository.NewExerciseRecordRepository(),
		newTestAuditService(log),
	).(*exerciseUsecase)
	u.now = func() time.Time { return now }
	return u
}

func TestSummaryWindow(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) // a Thursday

	tests := []struct {
		name      string
		period    string
		date      string
		wantStart string
		wantEnd   string
	}{
		{"no date", "week", "", "2026-09-15", "2026-10-15"},
		{"day", "day", "2026-10-03", "2026-10-03", "2026-10-03"},
		{"week from thursday", "week", "2026-10-15", "2026-10-12", "2026-10-18"},
		{"week from sunday", "week", "2026-10-18", "2026-10-12", "2026-10-18"},
		{"week from monday", "week", "2026-10-12", "2026-10-12", "2026-10-18"},
		{"leap february", "month", "2028-02-10", "2028-02-01", "2028-02-29"},
		{"unparseable date is today", "day", "15/10/2026", "2026-10-15", "2026-10-15"},
		{"unknown period", "year", "2026-01-01", "2026-09-15", "2026-10-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := summaryWindow(tt.period, tt.date, now)
			assert.Equal(t, tt.wantStart, start.Format(entity.DateLayout))
			assert.Equal(t, tt.wantEnd, end.Format(entity.DateLayout))
		})
	}
}

func TestExerciseSummary(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	other := createTestUser(t, db, 2)
	u := newTestExerciseUsecase(db, time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	running, err := u.CreateType(ctx, &dto.CreateExerciseTypeRequest{Name: "跑步", Category: "有氧运动", CaloriesPerHour: 600})
	require.NoError(t, err)
	yoga, err := u.CreateType(ctx, &dto.CreateExerciseTypeRequest{Name: "瑜伽", Category: "柔韧性", CaloriesPerHour: 180})
	require.NoError(t, err)

	logs := []struct {
		userID   uint
		typeID   uint
		date     string
		duration int
		calories float64
	}{
		{user.ID, running.ID, "2026-10-12", 30, 300},
		{user.ID, running.ID, "2026-10-14", 20, 200},
		{user.ID, yoga.ID, "2026-10-14", 60, 180},
		{user.ID, running.ID, "2026-10-11", 10, 100},
		{user.ID, yoga.ID, "2026-10-01", 30, 90},
		{user.ID, running.ID, "2026-09-10", 45, 450},
		{other.ID, running.ID, "2026-10-13", 60, 600},
	}
	for _, l := range logs {
		_, err := u.CreateRecord(ctx, l.userID, &dto.CreateExerciseLogRequest{
			ExerciseTypeID: l.typeID,
			RecordDate:     l.date,
			Duration:       l.duration,
			CaloriesBurned: float64Ptr(l.calories),
		})
		require.NoError(t, err)
	}

	week, err := u.Summary(ctx, user.ID, "week", "2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", week.StartDate)
	assert.Equal(t, "2026-10-18", week.EndDate)
	assert.Equal(t, 680.0, week.TotalCaloriesBurned)
	assert.Equal(t, 110, week.TotalDuration)
	assert.Equal(t, 3, week.TotalActivities)
	assert.Equal(t, []dto.ExerciseDayStat{
		{Date: "2026-10-12", Calories: 300, Duration: 30, Count: 1},
		{Date: "2026-10-14", Calories: 380, Duration: 80, Count: 2},
	}, week.DailyStats)
	assert.Equal(t, []dto.ExerciseTypeStat{
		{Type: "跑步", Calories: 500, Duration: 50, Count: 2},
		{Type: "瑜伽", Calories: 180, Duration: 60, Count: 1},
	}, week.TypeStats)

	month, err := u.Summary(ctx, user.ID, "month", "2026-10-03")
	require.NoError(t, err)
	assert.Equal(t, 5, month.TotalActivities)
	assert.Equal(t, 870.0, month.TotalCaloriesBurned)

	recent, err := u.Summary(ctx, user.ID, "week", "")
	require.NoError(t, err)
	assert.Equal(t, 5, recent.TotalActivities)

	empty, err := u.Summary(ctx, user.ID, "day", "2026-10-13")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalActivities)
	assert.Empty(t, empty.DailyStats)
	assert.Empty(t, empty.TypeStats)
}
