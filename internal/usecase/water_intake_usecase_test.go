package usecase

import (
	"context"
	"testing"
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestWaterUsecase(db *gorm.DB, now time.Time) *waterIntakeUsecase {
	log := newTestLogger()
	u := NewWaterIntakeUsecase(db, log, repository.NewWaterIntakeRepository(), newTestAuditService(log)).(*waterIntakeUsecase)
	u.now = func() time.Time { return now }
	return u
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, completionRate(0))
	assert.Equal(t, 50.0, completionRate(1000))
	assert.Equal(t, 100.0, completionRate(2000))
	assert.Equal(t, 100.0, completionRate(3500))
}

func TestWaterDailySummary(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	other := createTestUser(t, db, 2)
	u := newTestWaterUsecase(db, time.Date(2026, 7, 4, 20, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, amount := range []float64{500, 750} {
		_, err := u.Create(ctx, user.ID, &dto.CreateWaterIntakeRequest{Amount: amount})
		require.NoError(t, err)
	}
	_, err := u.Create(ctx, user.ID, &dto.CreateWaterIntakeRequest{Amount: 300, RecordDate: "2026-07-03"})
	require.NoError(t, err)
	_, err = u.Create(ctx, other.ID, &dto.CreateWaterIntakeRequest{Amount: 900})
	require.NoError(t, err)

	summary, err := u.DailySummary(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-07-04", summary.Date)
	assert.Equal(t, 1250.0, summary.TotalAmount)
	assert.Equal(t, 2, summary.RecordsCount)
	assert.Equal(t, 62.5, summary.CompletionRate)
}

func TestWaterRangeSummary(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestWaterUsecase(db, time.Date(2026, 7, 4, 20, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := u.Create(ctx, user.ID, &dto.CreateWaterIntakeRequest{Amount: 3000, RecordDate: "2026-07-01"})
	require.NoError(t, err)
	_, err = u.Create(ctx, user.ID, &dto.CreateWaterIntakeRequest{Amount: 1000, RecordDate: "2026-07-02"})
	require.NoError(t, err)

	summary, err := u.RangeSummary(ctx, user.ID, "2026-07-01", "2026-07-04")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.DaysCount)
	require.Len(t, summary.DailySummaries, 4)
	assert.Equal(t, 4000.0, summary.TotalAmount)
	assert.Equal(t, 1000.0, summary.AverageDailyIntake)
	// 100 (capped) + 50 + 0 + 0
	assert.Equal(t, 37.5, summary.AverageCompletionRate)

	_, err = u.RangeSummary(ctx, user.ID, "2026-07-04", "2026-07-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = u.RangeSummary(ctx, user.ID, "2026-01-01", "2026-07-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = u.RangeSummary(ctx, user.ID, "july", "2026-07-01")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestWaterIntakeOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, 1)
	other := createTestUser(t, db, 2)
	u := newTestWaterUsecase(db, time.Now())
	ctx := context.Background()

	intake, err := u.Create(ctx, owner.ID, &dto.CreateWaterIntakeRequest{Amount: 250})
	require.NoError(t, err)

	_, err = u.Get(ctx, other.ID, intake.ID)
	assert.ErrorIs(t, err, ErrWaterIntakeNotFound)
	assert.ErrorIs(t, u.Delete(ctx, other.ID, intake.ID), ErrWaterIntakeNotFound)
	assert.NoError(t, u.Delete(ctx, owner.ID, intake.ID))
}
