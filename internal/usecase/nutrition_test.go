package usecase

import (
	"testing"
	"time"

	"health-tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateByKeywordFruit(t *testing.T) {
	n, ok := estimateByKeyword("苹果", 200)
	require.True(t, ok)
	assert.InDelta(t, 20.0, n.Sugar, 1e-9)
	assert.InDelta(t, 4.0, n.Fiber, 1e-9)
	assert.InDelta(t, 30.0, n.Carbohydrate, 1e-9)
}

func TestEstimateByKeywordNoMatch(t *testing.T) {
	_, ok := estimateByKeyword("咖啡", 250)
	assert.False(t, ok)
}

func TestEstimateByCalories(t *testing.T) {
	n := estimateByCalories(400, 100)
	assert.InDelta(t, 20.0, n.Protein, 1e-9)
	assert.InDelta(t, 13.333, n.Fat, 1e-3)
	assert.InDelta(t, 50.0, n.Carbohydrate, 1e-9)
	assert.InDelta(t, 3.0, n.Fiber, 1e-9)
	assert.InDelta(t, 5.0, n.Sodium, 1e-9)
	assert.InDelta(t, 10.0, n.Sugar, 1e-9)
}

func TestDietEntryFromRecordPrefersStatedCalories(t *testing.T) {
	amount, calories := 200.0, 150.0
	record, err := entity.NewDietRecord(1, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), entity.DietDetails{
		FoodName:   "苹果",
		FoodAmount: &amount,
		Calories:   &calories,
	})
	require.NoError(t, err)

	noCatalog := func(string) (*entity.Food, error) { return nil, nil }
	entry, err := dietEntryFromRecord(record, noCatalog)
	require.NoError(t, err)

	assert.Equal(t, 150.0, entry.Nutrients.Calories)
	assert.InDelta(t, 20.0, entry.Nutrients.Sugar, 1e-9)
	assert.Equal(t, entity.DietSourceHealthRecord, entry.Source)
}

func TestDietEntryFromRecordUsesCatalog(t *testing.T) {
	amount := 50.0
	record, err := entity.NewDietRecord(1, time.Now(), entity.DietDetails{FoodName: "燕麦", FoodAmount: &amount})
	require.NoError(t, err)

	cal, protein := 380.0, 13.0
	catalog := func(string) (*entity.Food, error) {
		return &entity.Food{Name: "燕麦片", Calories: &cal, Protein: &protein}, nil
	}
	entry, err := dietEntryFromRecord(record, catalog)
	require.NoError(t, err)

	assert.InDelta(t, 190.0, entry.Nutrients.Calories, 1e-9)
	assert.InDelta(t, 6.5, entry.Nutrients.Protein, 1e-9)
}

func TestDailyNutritionFillsEveryDay(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	entries := []entity.DietEntry{
		{Date: start.AddDate(0, 0, 2), MealType: "午餐", FoodName: "米饭", Nutrients: entity.Nutrients{Calories: 400}},
		{Date: start.AddDate(0, 0, 2), FoodName: "苹果", Nutrients: entity.Nutrients{Calories: 300}},
		{Date: start.AddDate(0, 0, 30), FoodName: "outside", Nutrients: entity.Nutrients{Calories: 999}},
	}

	days, total := dailyNutrition(start, end, entries)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-05-01", days[0].Date)
	assert.Equal(t, "2026-05-07", days[6].Date)

	assert.Equal(t, 700.0, total.Calories)
	assert.Equal(t, 100.0, total.Calories/float64(len(days)))

	assert.Equal(t, 700.0, days[2].Nutrients.Calories)
	assert.Len(t, days[2].Meals, 2)
	assert.Contains(t, days[2].Meals, uncategorizedMeal)
	assert.Empty(t, days[0].Meals)
}

func TestRecommendedCaloriesFallbacks(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 2500.0, recommendedCalories(&entity.User{Gender: entity.GenderMale}, now))
	assert.Equal(t, 2000.0, recommendedCalories(&entity.User{Gender: entity.GenderFemale}, now))
	assert.Equal(t, 2200.0, recommendedCalories(&entity.User{}, now))
}

func TestNutrientBandStatus(t *testing.T) {
	calories := nutrientBands[0]
	assert.Equal(t, statusTooHigh, calories.status(111))
	assert.Equal(t, statusNormal, calories.status(110))
	assert.Equal(t, statusNormal, calories.status(90))
	assert.Equal(t, statusTooLow, calories.status(89.99))

	var sugar nutrientBand
	for _, b := range nutrientBands {
		if b.nutrient == "sugar" {
			sugar = b
		}
	}
	// no lower bound for sugar
	assert.Equal(t, statusFine, sugar.status(0))
	assert.Equal(t, statusExcess, sugar.status(121))
}

func TestNutrientVerdictsCoverEveryNutrient(t *testing.T) {
	verdicts := nutrientVerdicts(entity.Nutrients{Calories: 100, Protein: 100, Fat: 100, Carbohydrate: 100, Fiber: 100, Sugar: 100, Sodium: 100})
	require.Len(t, verdicts, len(nutrientBands))
	for _, v := range verdicts {
		assert.NotEmpty(t, v.Message, v.Nutrient)
	}
}
