package usecase

import (
	"context"
	"testing"
	"time"

	"health-tracker/internal/domain/entity"
	"health-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAnalysisUsecase(db *gorm.DB, now time.Time) *analysisUsecase {
	u := NewAnalysisUsecase(db, newTestLogger(),
		repository.NewUserRepository(),
		repository.NewHealthRecordRepository(),
		repository.NewDietRecordRepository(),
		repository.NewFoodRepository(),
		repository.NewExerciseRecordRepository(),
		repository.NewExerciseTypeRepository(),
	).(*analysisUsecase)
	u.now = func() time.Time { return now }
	return u
}

var analysisNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

// seedDietRecords logs 200g of apple (keyword estimate, 129.8 kcal) and a
// 700 kcal meal inside the default window
func seedDietRecords(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()
	r, err := entity.NewDietRecord(userID, mustDate("2026-10-12"), entity.DietDetails{FoodName: "苹果", FoodAmount: float64Ptr(200)})
	saveRecord(t, db, r, err)
	r, err = entity.NewDietRecord(userID, mustDate("2026-10-14"), entity.DietDetails{FoodName: "火锅", Calories: float64Ptr(700)})
	saveRecord(t, db, r, err)
}

func TestNutritionWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
	}{
		{"default", "", "", "2026-10-09", "2026-10-15"},
		{"unparseable start", "bogus", "", "2026-10-09", "2026-10-15"},
		{"unparseable end resets start too", "2026-10-01", "15.10.2026", "2026-10-09", "2026-10-15"},
		{"end only", "", "2026-10-10", "2026-10-04", "2026-10-10"},
		{"start only", "2026-10-01", "", "2026-10-01", "2026-10-15"},
		{"inverted range is swapped", "2026-10-16", "2026-10-10", "2026-10-10", "2026-10-16"},
		{"single day", "2026-10-03", "2026-10-03", "2026-10-03", "2026-10-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := nutritionWindow(tt.start, tt.end, analysisNow)
			assert.Equal(t, tt.wantStart, start.Format(entity.DateLayout))
			assert.Equal(t, tt.wantEnd, end.Format(entity.DateLayout))
		})
	}
}

func TestNutritionAnalysisWindowFallbacks(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	seedDietRecords(t, db, user.ID)
	u := newTestAnalysisUsecase(db, analysisNow)
	ctx := context.Background()

	resp := u.NutritionAnalysis(ctx, user.ID, "bogus", "")
	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, "2026-10-09", resp.Data.Period.StartDate)
	assert.Equal(t, "2026-10-15", resp.Data.Period.EndDate)
	assert.Equal(t, 7, resp.Data.Period.Days)
	assert.Len(t, resp.Data.DailyNutrition, 7)
	assert.Equal(t, 118.54, resp.Data.Average.Calories)

	resp = u.NutritionAnalysis(ctx, user.ID, "2026-10-16", "2026-10-10")
	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, "2026-10-10", resp.Data.Period.StartDate)
	assert.Equal(t, "2026-10-16", resp.Data.Period.EndDate)
	assert.Equal(t, 7, resp.Data.Period.Days)
	assert.Equal(t, 118.54, resp.Data.Average.Calories)

	missing := u.NutritionAnalysis(ctx, 999, "", "")
	assert.False(t, missing.Success)
	assert.Equal(t, "未找到用户信息", missing.Message)
	assert.NotNil(t, missing.Data)
}

func TestExerciseRecommendationWalkingFallback(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	seedDietRecords(t, db, user.ID)
	u := newTestAnalysisUsecase(db, analysisNow)
	ctx := context.Background()

	resp := u.ExerciseRecommendation(ctx, user.ID, -3, true)
	require.True(t, resp.Success, resp.Message)

	status := resp.Data.CurrentStatus
	assert.Equal(t, 30.0, status.AverageDailyDuration)
	require.Contains(t, status.ExerciseTypesUsed, "步行")
	assert.Equal(t, 2, status.ExerciseTypesUsed["步行"].Count)
	assert.True(t, status.HasCardio)
	assert.False(t, status.HasStrength)
	require.NotNil(t, status.CalorieSurplus)
	// 829.8 kcal over the coerced 7-day window against the 2000 kcal baseline
	assert.Equal(t, -1881.5, *status.CalorieSurplus)

	require.Len(t, resp.Data.Recommendations, 4)
	last := resp.Data.Recommendations[3]
	assert.Equal(t, "calorie_balance", last.Type)
	assert.Equal(t, "medium", last.Severity)
	assert.Len(t, resp.Data.WeeklyPlan, 7)

	withoutDiet := u.ExerciseRecommendation(ctx, user.ID, 0, false)
	require.True(t, withoutDiet.Success)
	assert.Nil(t, withoutDiet.Data.CurrentStatus.CalorieSurplus)
	assert.Len(t, withoutDiet.Data.Recommendations, 3)
}

func TestExerciseRecommendationNoActivity(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestAnalysisUsecase(db, analysisNow)

	resp := u.ExerciseRecommendation(context.Background(), user.ID, 7, false)
	require.True(t, resp.Success)
	assert.Zero(t, resp.Data.CurrentStatus.AverageDailyDuration)
	assert.Empty(t, resp.Data.CurrentStatus.ExerciseTypesUsed)
	assert.False(t, resp.Data.CurrentStatus.HasCardio)
	assert.Equal(t, "high", resp.Data.Recommendations[0].Severity)
}

func TestExerciseRecommendationCalorieSurplus(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestAnalysisUsecase(db, analysisNow)

	running := &entity.ExerciseType{Name: "跑步", Category: entity.CategoryCardio, CaloriesPerHour: 600}
	walking := &entity.ExerciseType{Name: "散步", Category: entity.CategoryCardio, CaloriesPerHour: 200}
	require.NoError(t, db.Create(running).Error)
	require.NoError(t, db.Create(walking).Error)
	require.NoError(t, db.Create(&entity.ExerciseRecord{
		UserID:         user.ID,
		ExerciseTypeID: running.ID,
		RecordDate:     mustDate("2026-10-15"),
		Duration:       45,
	}).Error)

	r, err := entity.NewDietRecord(user.ID, mustDate("2026-10-15"), entity.DietDetails{FoodName: "火锅", Calories: float64Ptr(2500)})
	saveRecord(t, db, r, err)
	// outside the one-day window
	r, err = entity.NewDietRecord(user.ID, mustDate("2026-10-14"), entity.DietDetails{FoodName: "火锅", Calories: float64Ptr(5000)})
	saveRecord(t, db, r, err)

	resp := u.ExerciseRecommendation(context.Background(), user.ID, 1, true)
	require.True(t, resp.Success, resp.Message)

	status := resp.Data.CurrentStatus
	assert.Equal(t, 45.0, status.AverageDailyDuration)
	assert.Contains(t, status.ExerciseTypesUsed, "跑步")
	assert.NotContains(t, status.ExerciseTypesUsed, "步行")
	require.NotNil(t, status.CalorieSurplus)
	assert.Equal(t, 500.0, *status.CalorieSurplus)

	require.Len(t, resp.Data.Recommendations, 4)
	last := resp.Data.Recommendations[3]
	assert.Equal(t, "calorie_balance", last.Type)
	assert.Equal(t, "high", last.Severity)
	require.Len(t, last.Suggestions, 1)
	assert.Equal(t, "跑步", last.Suggestions[0].Name)
}
