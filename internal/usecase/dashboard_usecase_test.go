package usecase

import (
	"context"
	"testing"
	"time"

	"health-tracker/internal/domain/entity"
	"health-tracker/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDashboardUsecase(db *gorm.DB, now time.Time, sampleData bool) *dashboardUsecase {
	u := NewDashboardUsecase(db, newTestLogger(), repository.NewHealthRecordRepository(), sampleData).(*dashboardUsecase)
	u.now = func() time.Time { return now }
	return u
}

func saveRecord(t *testing.T, db *gorm.DB, record *entity.HealthRecord, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NoError(t, repository.NewHealthRecordRepository().Create(db, record))
}

func mustDate(s string) time.Time {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestChartDataSumsPerDay(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	other := createTestUser(t, db, 2)
	u := newTestDashboardUsecase(db, time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), true)

	r, err := entity.NewDietRecord(user.ID, mustDate("2026-10-13"), entity.DietDetails{FoodName: "米饭", Calories: float64Ptr(600)})
	saveRecord(t, db, r, err)
	r, err = entity.NewDietRecord(user.ID, mustDate("2026-10-13"), entity.DietDetails{FoodName: "苹果", FoodAmount: float64Ptr(200)})
	saveRecord(t, db, r, err)
	r, err = entity.NewExerciseRecord(user.ID, mustDate("2026-10-14"), entity.ExerciseDetails{ExerciseType: "跑步", CaloriesBurned: float64Ptr(250.5)})
	saveRecord(t, db, r, err)
	r, err = entity.NewWaterRecord(user.ID, mustDate("2026-10-15"), entity.WaterDetails{Amount: 1250})
	saveRecord(t, db, r, err)
	r, err = entity.NewWaterRecord(user.ID, mustDate("2026-10-12"), entity.WaterDetails{Amount: 2000})
	saveRecord(t, db, r, err)
	r, err = entity.NewWaterRecord(other.ID, mustDate("2026-10-15"), entity.WaterDetails{Amount: 3000})
	saveRecord(t, db, r, err)

	chart, err := u.ChartData(context.Background(), user.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"10-13", "10-14", "10-15"}, chart.Labels)
	assert.Equal(t, []int{900, 0, 0}, chart.DietCalories)
	assert.Equal(t, []int{0, 251, 0}, chart.ExerciseCalories)
	assert.Equal(t, []int{0, 0, 13}, chart.WaterIntake)
	assert.False(t, chart.Sample)
}

func TestChartDataEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	chart, err := newTestDashboardUsecase(db, now, true).ChartData(context.Background(), user.ID, 0)
	require.NoError(t, err)
	require.Len(t, chart.Labels, 7)
	assert.Equal(t, "10-09", chart.Labels[0])
	assert.True(t, chart.Sample)
	assert.Equal(t, []int{1500, 1600, 1700, 1800, 1900, 1500, 1600}, chart.DietCalories)
	assert.Equal(t, []int{300, 350, 400, 450, 300, 350, 400}, chart.ExerciseCalories)
	assert.Equal(t, []int{20, 25, 30, 20, 25, 30, 20}, chart.WaterIntake)

	chart, err = newTestDashboardUsecase(db, now, false).ChartData(context.Background(), user.ID, 500)
	require.NoError(t, err)
	assert.Len(t, chart.Labels, maxChartDays)
	assert.False(t, chart.Sample)
	assert.Equal(t, make([]int, maxChartDays), chart.DietCalories)
}

func TestRecentRecords(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestDashboardUsecase(db, time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), false)
	ctx := context.Background()

	dosage := decimal.NewFromFloat(1.5)
	r, err := entity.NewHealthMetricsRecord(user.ID, mustDate("2026-10-10"), entity.HealthMetrics{Weight: float64Ptr(70.5), BloodPressureSystolic: intPtr(120)})
	saveRecord(t, db, r, err)
	r, err = entity.NewWaterRecord(user.ID, mustDate("2026-10-15"), entity.WaterDetails{Amount: 500})
	saveRecord(t, db, r, err)
	r, err = entity.NewMedicationRecord(user.ID, mustDate("2026-10-14"), entity.MedicationDetails{Name: "阿司匹林", Dosage: &dosage, DosageUnit: "片"})
	saveRecord(t, db, r, err)
	r, err = entity.NewDietRecord(user.ID, mustDate("2026-10-15"), entity.DietDetails{FoodName: "米饭", FoodAmount: float64Ptr(150)})
	saveRecord(t, db, r, err)
	r, err = entity.NewExerciseRecord(user.ID, mustDate("2026-10-12"), entity.ExerciseDetails{ExerciseType: "跑步", Duration: intPtr(30)})
	saveRecord(t, db, r, err)

	recent, err := u.RecentRecords(ctx, user.ID, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	assert.Equal(t, "diet", recent[0].Type)
	assert.Equal(t, "2026-10-15", recent[0].Date)
	assert.Equal(t, "饮食记录", recent[0].Title)
	assert.Equal(t, "食物: 米饭, 数量: 150g", recent[0].Summary)
	assert.Equal(t, "饮水记录", recent[1].Title)
	assert.Equal(t, "饮水量: 500毫升", recent[1].Summary)
	assert.Equal(t, "阿司匹林记录", recent[2].Title)
	assert.Equal(t, "药物: 阿司匹林, 剂量: 1.5片", recent[2].Summary)

	all, err := u.RecentRecords(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "跑步记录", all[3].Title)
	assert.Equal(t, "类型: 跑步, 时长: 30分钟", all[3].Summary)
	assert.Equal(t, "健康记录", all[4].Title)
	assert.Equal(t, "体重: 70.5kg, 血压: 120/- mmHg", all[4].Summary)

	none, err := u.RecentRecords(ctx, createTestUser(t, db, 2).ID, 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}
