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

func newTestReportUsecase(db *gorm.DB, sampleData bool, now time.Time) *healthReportUsecase {
	log := newTestLogger()
	u := NewHealthReportUsecase(db, log,
		repository.NewHealthReportRepository(),
		repository.NewHealthRecordRepository(),
		repository.NewDietRecordRepository(),
		newTestAuditService(log),
		sampleData,
	).(*healthReportUsecase)
	u.now = func() time.Time { return now }
	return u
}

func TestReportWindow(t *testing.T) {
	// a Thursday
	now := time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		reportType string
		start, end string
		wantType   string
		wantStart  string
		wantEnd    string
	}{
		{"weekly starts on monday", entity.ReportWeekly, "", "", entity.ReportWeekly, "2026-10-12", "2026-10-15"},
		{"monthly", entity.ReportMonthly, "", "", entity.ReportMonthly, "2026-10-01", "2026-10-15"},
		{"yearly", entity.ReportYearly, "", "", entity.ReportYearly, "2026-01-01", "2026-10-15"},
		{"custom without dates", entity.ReportCustom, "", "", entity.ReportCustom, "2026-10-09", "2026-10-15"},
		{"unknown type is weekly", "daily", "", "", entity.ReportWeekly, "2026-10-12", "2026-10-15"},
		{"explicit dates", entity.ReportCustom, "2026-09-01", "2026-09-30", entity.ReportCustom, "2026-09-01", "2026-09-30"},
		{"inverted dates are swapped", entity.ReportCustom, "2026-09-30", "2026-09-01", entity.ReportCustom, "2026-09-01", "2026-09-30"},
		{"malformed date falls back", entity.ReportMonthly, "2026/09/01", "2026-09-30", entity.ReportMonthly, "2026-10-01", "2026-10-15"},
		{"range is capped", entity.ReportCustom, "2020-01-01", "2026-01-01", entity.ReportCustom, "2025-01-01", "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportType, start, end := reportWindow(tt.reportType, tt.start, tt.end, now)
			assert.Equal(t, tt.wantType, reportType)
			assert.Equal(t, tt.wantStart, start.Format(entity.DateLayout))
			assert.Equal(t, tt.wantEnd, end.Format(entity.DateLayout))
		})
	}
}

func TestPickSourcePrefersWindow(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC)
	old := entity.HealthRecord{RecordDate: start.AddDate(0, -2, 0)}
	recent := entity.HealthRecord{RecordDate: start.AddDate(0, 0, 3)}

	source, rows := pickSource([]entity.HealthRecord{old, recent}, start, end, nil)
	assert.Equal(t, FactsInRange, source)
	assert.Len(t, rows, 1)

	source, rows = pickSource([]entity.HealthRecord{old}, start, end, nil)
	assert.Equal(t, FactsHistory, source)
	assert.Len(t, rows, 1)

	source, _ = pickSource(nil, start, end, nil)
	assert.Equal(t, FactsNone, source)

	source, rows = pickSource(nil, start, end, func() []entity.HealthRecord { return sampleExercises(end) })
	assert.Equal(t, FactsSample, source)
	assert.Len(t, rows, 3)
}

func TestGenerateReportWithSampleData(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestReportUsecase(db, true, time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	report, err := u.Generate(ctx, user.ID, &dto.GenerateReportRequest{ReportType: entity.ReportWeekly})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-12", report.StartDate)
	assert.Contains(t, report.ExerciseSummary, "示例数据")
	assert.Contains(t, report.ExerciseSummary, "游泳: 1 次")
	assert.Contains(t, report.MedicationSummary, "布洛芬: 服用 1 次")
	assert.NotEqual(t, noExerciseData, report.ExerciseSummary)

	list, err := u.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	var rows int64
	require.NoError(t, db.Model(&entity.HealthRecordRow{}).Count(&rows).Error)
	assert.Zero(t, rows, "example rows must not be persisted")
}

func TestGenerateReportWithoutSampleData(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestReportUsecase(db, false, time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC))

	report, err := u.Generate(context.Background(), user.ID, &dto.GenerateReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.ReportWeekly, report.ReportType)
	assert.Equal(t, noExerciseData, report.ExerciseSummary)
	assert.Equal(t, noMedicationData, report.MedicationSummary)
}

func TestGenerateReportUsesHistoryOutsideWindow(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)

	record, err := entity.NewExerciseRecord(user.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), entity.ExerciseDetails{
		ExerciseType: "跑步",
		Duration:     intPtr(45),
	})
	require.NoError(t, err)
	require.NoError(t, repository.NewHealthRecordRepository().Create(db, record))

	u := newTestReportUsecase(db, true, time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC))
	report, err := u.Generate(context.Background(), user.ID, &dto.GenerateReportRequest{ReportType: entity.ReportWeekly})
	require.NoError(t, err)

	assert.Contains(t, report.ExerciseSummary, "包含所有历史记录")
	assert.Contains(t, report.ExerciseSummary, "跑步: 1 次")
	assert.NotContains(t, report.ExerciseSummary, "示例数据")
}

func TestGenerateReportNilRequest(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestReportUsecase(db, false, time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC))

	var report *dto.HealthReportResponse
	var err error
	require.NotPanics(t, func() {
		report, err = u.Generate(context.Background(), user.ID, nil)
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportWeekly, report.ReportType)
	assert.Equal(t, "2026-10-12", report.StartDate)
	assert.Equal(t, "2026-10-15", report.EndDate)
}
