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

func newTestGoalUsecase(db *gorm.DB, now time.Time) *healthGoalUsecase {
	log := newTestLogger()
	u := NewHealthGoalUsecase(db, log, repository.NewHealthGoalRepository(), newTestAuditService(log)).(*healthGoalUsecase)
	u.now = func() time.Time { return now }
	return u
}

func TestHealthGoalAddLogCompletesGoal(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestGoalUsecase(db, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	goal, err := u.Create(ctx, user.ID, &dto.CreateGoalRequest{
		GoalType:     entity.GoalTypeWeightLoss,
		TargetValue:  70,
		CurrentValue: float64Ptr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", goal.StartDate)
	require.NotNil(t, goal.InitialValue)
	assert.Equal(t, 80.0, *goal.InitialValue)

	result, err := u.AddLog(ctx, user.ID, goal.ID, &dto.CreateGoalLogRequest{Value: 75, LogDate: "2026-03-10"})
	require.NoError(t, err)
	assert.False(t, result.GoalAchieved)
	assert.Equal(t, 50.0, result.Goal.Progress)

	result, err = u.AddLog(ctx, user.ID, goal.ID, &dto.CreateGoalLogRequest{Value: 69.8, LogDate: "2026-03-20"})
	require.NoError(t, err)
	assert.True(t, result.GoalAchieved)
	assert.Equal(t, string(entity.GoalStatusCompleted), result.Goal.Status)
	assert.Equal(t, "2026-03-20", result.Goal.EndDate)
	assert.Equal(t, 100.0, result.Goal.Progress)

	logs, err := u.ListLogs(ctx, user.ID, goal.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestHealthGoalScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, 1)
	other := createTestUser(t, db, 2)
	u := newTestGoalUsecase(db, time.Now())
	ctx := context.Background()

	goal, err := u.Create(ctx, owner.ID, &dto.CreateGoalRequest{GoalType: "steps", TargetValue: 10000})
	require.NoError(t, err)

	_, err = u.Get(ctx, other.ID, goal.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = u.AddLog(ctx, other.ID, goal.ID, &dto.CreateGoalLogRequest{Value: 100})
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestHealthGoalRejectsEndBeforeStart(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestGoalUsecase(db, time.Now())

	_, err := u.Create(context.Background(), user.ID, &dto.CreateGoalRequest{
		GoalType:    "steps",
		TargetValue: 10000,
		StartDate:   "2026-05-10",
		EndDate:     "2026-05-01",
	})
	assert.ErrorIs(t, err, ErrInvalidGoalDates)
}
