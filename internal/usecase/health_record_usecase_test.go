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

func newTestHealthRecordUsecase(db *gorm.DB, now time.Time) *healthRecordUsecase {
	log := newTestLogger()
	u := NewHealthRecordUsecase(db, log,
		repository.NewHealthRecordRepository(),
		repository.NewExerciseTypeRepository(),
		repository.NewMedicationTypeRepository(),
		newTestAuditService(log),
	).(*healthRecordUsecase)
	u.now = func() time.Time { return now }
	return u
}

func TestBMI(t *testing.T) {
	v := bmi(float64Ptr(80), float64Ptr(180))
	require.NotNil(t, v)
	assert.Equal(t, 24.7, *v)

	assert.Nil(t, bmi(nil, float64Ptr(180)))
	assert.Nil(t, bmi(float64Ptr(80), float64Ptr(0)))
}

func TestCaloriesForDuration(t *testing.T) {
	assert.Equal(t, 300.0, caloriesForDuration(600, 30))
	assert.Equal(t, 46.7, caloriesForDuration(280, 10))
}

func TestCreateHealthMetricsDerivesBMI(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestHealthRecordUsecase(db, time.Date(2026, 8, 8, 10, 0, 0, 0, time.UTC))

	record, err := u.CreateHealthMetrics(context.Background(), user.ID, &dto.HealthMetricsRequest{
		Weight: float64Ptr(80),
		Height: float64Ptr(180),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-08", record.RecordDate)
	assert.Equal(t, string(entity.RecordTypeHealth), record.RecordType)
	require.NotNil(t, record.HealthMetrics)
	assert.Equal(t, 24.7, *record.HealthMetrics.BMI)
	assert.Nil(t, record.WaterDetails)
}

func TestCreateExerciseFromCatalog(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	running := &entity.ExerciseType{Name: "跑步", Category: entity.CategoryCardio, CaloriesPerHour: 600}
	require.NoError(t, db.Create(running).Error)

	u := newTestHealthRecordUsecase(db, time.Now())
	ctx := context.Background()

	record, err := u.CreateExercise(ctx, user.ID, &dto.ExerciseRecordRequest{ExerciseTypeID: &running.ID, Duration: intPtr(45)})
	require.NoError(t, err)
	require.NotNil(t, record.ExerciseDetails)
	assert.Equal(t, "跑步", record.ExerciseDetails.ExerciseType)
	assert.Equal(t, 450.0, *record.ExerciseDetails.CaloriesBurned)

	missing := uint(404)
	_, err = u.CreateExercise(ctx, user.ID, &dto.ExerciseRecordRequest{ExerciseTypeID: &missing})
	assert.ErrorIs(t, err, ErrExerciseTypeNotFound)
}

func TestVariantRoutesDoNotCrossTypes(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestHealthRecordUsecase(db, time.Now())
	ctx := context.Background()

	water, err := u.CreateWater(ctx, user.ID, &dto.WaterRecordRequest{Amount: 400})
	require.NoError(t, err)

	_, err = u.Get(ctx, user.ID, entity.RecordTypeDiet, water.ID)
	assert.ErrorIs(t, err, ErrHealthRecordNotFound)

	_, err = u.UpdateDiet(ctx, user.ID, water.ID, &dto.DietRecordRequest{FoodName: "米饭"})
	assert.ErrorIs(t, err, ErrHealthRecordNotFound)

	got, err := u.Get(ctx, user.ID, "", water.ID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, got.WaterDetails.Amount)
}

func TestUpdateReplacesVariantAndKeepsDate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestHealthRecordUsecase(db, time.Now())
	ctx := context.Background()

	created, err := u.CreateDiet(ctx, user.ID, &dto.DietRecordRequest{
		RecordDate: "2026-06-01",
		FoodName:   "苹果",
		MealType:   "早餐",
		Calories:   float64Ptr(95),
	})
	require.NoError(t, err)

	updated, err := u.UpdateDiet(ctx, user.ID, created.ID, &dto.DietRecordRequest{FoodName: "香蕉"})
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", updated.RecordDate)

	got, err := u.Get(ctx, user.ID, entity.RecordTypeDiet, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "香蕉", got.DietDetails.FoodName)
	assert.Empty(t, got.DietDetails.MealType)
	assert.Nil(t, got.DietDetails.Calories)
}

func TestListRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	u := newTestHealthRecordUsecase(db, time.Now())

	_, err := u.List(context.Background(), 1, "sleep", "", "")
	assert.ErrorIs(t, err, ErrInvalidRecordType)
}

func TestMedicationScheduleKeepsLatestDosePerMedication(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestHealthRecordUsecase(db, time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	doses := []dto.MedicationRecordRequest{
		{RecordDate: "2026-10-10", MedicationName: "二甲双胍", DosageUnit: "片", TimeTaken: "20:00"},
		{RecordDate: "2026-10-14", MedicationName: "二甲双胍", DosageUnit: "片", TimeTaken: "07:30"},
		{RecordDate: "2026-10-12", MedicationName: "维生素D", DosageUnit: "粒"},
		{RecordDate: "2026-10-13", MedicationName: "阿司匹林", DosageUnit: "片", TimeTaken: "12:00"},
		{RecordDate: "2026-10-20", MedicationName: "头孢", DosageUnit: "粒", TimeTaken: "06:00"},
	}
	for i := range doses {
		_, err := u.CreateMedication(ctx, user.ID, &doses[i])
		require.NoError(t, err)
	}
	_, err := u.CreateWater(ctx, user.ID, &dto.WaterRecordRequest{Amount: 300})
	require.NoError(t, err)

	schedule, err := u.MedicationSchedule(ctx, user.ID, "")
	require.NoError(t, err)
	require.Len(t, schedule, 3)
	assert.Equal(t, "二甲双胍", schedule[0].MedicationDetails.Name)
	assert.Equal(t, "07:30", schedule[0].MedicationDetails.TimeTaken)
	assert.Equal(t, "2026-10-14", schedule[0].RecordDate)
	assert.Equal(t, "阿司匹林", schedule[1].MedicationDetails.Name)
	assert.Equal(t, "维生素D", schedule[2].MedicationDetails.Name)

	earlier, err := u.MedicationSchedule(ctx, user.ID, "2026-10-11")
	require.NoError(t, err)
	require.Len(t, earlier, 1)
	assert.Equal(t, "20:00", earlier[0].MedicationDetails.TimeTaken)

	none, err := u.MedicationSchedule(ctx, user.ID, "2026-01-01")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = u.MedicationSchedule(ctx, user.ID, "10/11/2026")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
