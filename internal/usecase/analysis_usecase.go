package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/observability"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	analysisNutrition = "nutrition"
	analysisExercise  = "exercise"

	defaultAnalysisDays = 7
	// Daily calorie baseline when the user's TDEE cannot be computed
	defaultBurnBaseline = 2000.0
)

// AnalysisUsecase never returns an error: failures come back as an
// unsuccessful envelope with empty containers.
type AnalysisUsecase interface {
	NutritionAnalysis(ctx context.Context, userID uint, startDate, endDate string) *dto.NutritionAnalysisResponse
	ExerciseRecommendation(ctx context.Context, userID uint, days int, basedOnDiet bool) *dto.ExerciseRecommendationResponse
}

type analysisUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	healthRecordRepo   repository.HealthRecordRepository
	dietRecordRepo     repository.DietRecordRepository
	foodRepo           repository.FoodRepository
	exerciseRecordRepo repository.ExerciseRecordRepository
	exerciseTypeRepo   repository.ExerciseTypeRepository
	now                func() time.Time
}

func NewAnalysisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	healthRecordRepo repository.HealthRecordRepository,
	dietRecordRepo repository.DietRecordRepository,
	foodRepo repository.FoodRepository,
	exerciseRecordRepo repository.ExerciseRecordRepository,
	exerciseTypeRepo repository.ExerciseTypeRepository,
) AnalysisUsecase {
	return &analysisUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		healthRecordRepo:   healthRecordRepo,
		dietRecordRepo:     dietRecordRepo,
		foodRepo:           foodRepo,
		exerciseRecordRepo: exerciseRecordRepo,
		exerciseTypeRepo:   exerciseTypeRepo,
		now:                time.Now,
	}
}

func (u *analysisUsecase) NutritionAnalysis(ctx context.Context, userID uint, startDate, endDate string) (resp *dto.NutritionAnalysisResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = u.nutritionFailure(userID, fmt.Errorf("panic: %v", r))
		}
	}()

	data, err := u.nutritionAnalysis(ctx, userID, startDate, endDate)
	if err != nil {
		return u.nutritionFailure(userID, err)
	}
	observability.RecordAnalysis(analysisNutrition, true)
	return &dto.NutritionAnalysisResponse{Success: true, Data: data}
}

func (u *analysisUsecase) nutritionFailure(userID uint, err error) *dto.NutritionAnalysisResponse {
	observability.RecordAnalysis(analysisNutrition, false)
	if errors.Is(err, ErrUserNotFound) {
		return &dto.NutritionAnalysisResponse{Message: "未找到用户信息", Data: dto.EmptyNutritionAnalysis()}
	}
	u.log.WithFields(logrus.Fields{"user_id": userID, "operation": "nutrition_analysis"}).
		Errorf("Failed to analyze nutrition: %+v", err)
	return &dto.NutritionAnalysisResponse{
		Message: fmt.Sprintf("获取营养分析失败: %v", err),
		Data:    dto.EmptyNutritionAnalysis(),
	}
}

func (u *analysisUsecase) nutritionAnalysis(ctx context.Context, userID uint, startDate, endDate string) (*dto.NutritionAnalysisData, error) {
	db := u.db.WithContext(ctx)
	now := u.now()

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	start, end := nutritionWindow(startDate, endDate, now)

	entries, err := u.dietEntries(db, userID, start, end)
	if err != nil {
		return nil, err
	}

	daily, total := dailyNutrition(start, end, entries)
	days := len(daily)
	average := total.Scale(1 / float64(days)).Round(2)
	recommended := recommendedNutrients(recommendedCalories(user, now))
	percentage := percentOf(average, recommended)

	return &dto.NutritionAnalysisData{
		Period: dto.AnalysisPeriod{
			StartDate: start.Format(entity.DateLayout),
			EndDate:   end.Format(entity.DateLayout),
			Days:      days,
		},
		DailyNutrition: daily,
		Average:        average,
		Recommended:    recommended,
		Percentage:     percentage,
		Analysis:       nutrientVerdicts(percentage),
	}, nil
}

// nutritionWindow defaults to the seven days ending today; a missing start
// is six days before the end. Any unparseable bound resets the whole window
// to the default, and an inverted range is swapped.
func nutritionWindow(startDate, endDate string, now time.Time) (time.Time, time.Time) {
	today := entity.DateOnly(now)
	defaultStart := today.AddDate(0, 0, -(defaultAnalysisDays - 1))

	end := today
	if endDate != "" {
		parsed, err := entity.ParseDate(endDate)
		if err != nil {
			return defaultStart, today
		}
		end = parsed
	}
	start := end.AddDate(0, 0, -(defaultAnalysisDays - 1))
	if startDate != "" {
		parsed, err := entity.ParseDate(startDate)
		if err != nil {
			return defaultStart, today
		}
		start = parsed
	}
	if start.After(end) {
		start, end = end, start
	}
	return start, end
}

// dietEntries reads both diet models for the window and normalizes them
func (u *analysisUsecase) dietEntries(db *gorm.DB, userID uint, start, end time.Time) ([]entity.DietEntry, error) {
	records, err := u.healthRecordRepo.FindByUser(db, userID, entity.RecordFilter{
		Type:      entity.RecordTypeDiet,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	foods := make(map[string]*entity.Food)
	lookup := func(fragment string) (*entity.Food, error) {
		if food, ok := foods[fragment]; ok {
			return food, nil
		}
		food, err := u.foodRepo.FindFirstByNameLike(db, fragment)
		if err != nil {
			return nil, err
		}
		foods[fragment] = food
		return food, nil
	}

	var entries []entity.DietEntry
	for i := range records {
		entry, err := dietEntryFromRecord(&records[i], lookup)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	dietRecords, err := u.dietRecordRepo.FindByUser(db, userID, &start, &end, "")
	if err != nil {
		return nil, err
	}
	for i := range dietRecords {
		entries = append(entries, dietEntriesFromRecord(&dietRecords[i])...)
	}
	return entries, nil
}

func (u *analysisUsecase) ExerciseRecommendation(ctx context.Context, userID uint, days int, basedOnDiet bool) (resp *dto.ExerciseRecommendationResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = u.exerciseFailure(userID, fmt.Errorf("panic: %v", r))
		}
	}()

	data, err := u.exerciseRecommendation(ctx, userID, days, basedOnDiet)
	if err != nil {
		return u.exerciseFailure(userID, err)
	}
	observability.RecordAnalysis(analysisExercise, true)
	return &dto.ExerciseRecommendationResponse{Success: true, Data: data}
}

func (u *analysisUsecase) exerciseFailure(userID uint, err error) *dto.ExerciseRecommendationResponse {
	observability.RecordAnalysis(analysisExercise, false)
	if errors.Is(err, ErrUserNotFound) {
		return &dto.ExerciseRecommendationResponse{Message: "未找到用户信息", Data: dto.EmptyExerciseRecommendation()}
	}
	u.log.WithFields(logrus.Fields{"user_id": userID, "operation": "exercise_recommendation"}).
		Errorf("Failed to build exercise recommendation: %+v", err)
	return &dto.ExerciseRecommendationResponse{
		Message: fmt.Sprintf("获取运动建议失败: %v", err),
		Data:    dto.EmptyExerciseRecommendation(),
	}
}

func (u *analysisUsecase) exerciseRecommendation(ctx context.Context, userID uint, days int, basedOnDiet bool) (*dto.ExerciseRecommendationData, error) {
	db := u.db.WithContext(ctx)
	now := u.now()

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if days <= 0 {
		days = defaultAnalysisDays
	}
	end := entity.DateOnly(now)
	start := end.AddDate(0, 0, -(days - 1))

	catalog, err := u.exerciseTypeRepo.FindAll(db, "", "")
	if err != nil {
		return nil, err
	}
	available := groupExerciseTypes(catalog)

	sessions, err := u.exerciseSessions(db, userID, start, end, catalog)
	if err != nil {
		return nil, err
	}

	var snap exerciseSnapshot
	if len(sessions) > 0 {
		snap = summarizeSessions(sessions, days)
	} else {
		logged, err := u.healthRecordRepo.CountByUser(db, userID, entity.RecordFilter{StartDate: &start, EndDate: &end})
		if err != nil {
			return nil, err
		}
		if logged > 0 {
			snap = assumedWalking(int(logged))
		} else {
			snap = summarizeSessions(nil, days)
		}
	}

	var surplus *float64
	if basedOnDiet {
		s, err := u.calorieSurplus(db, user, start, end, days, now)
		if err != nil {
			return nil, err
		}
		surplus = &s
	}

	return &dto.ExerciseRecommendationData{
		CurrentStatus: dto.ExerciseStatus{
			AverageDailyDuration: entity.Round(snap.avgDuration, 1),
			ExerciseTypesUsed:    snap.used,
			HasCardio:            snap.hasCardio,
			HasStrength:          snap.hasStrength,
			HasFlexibility:       snap.hasFlexibility,
			CalorieSurplus:       surplus,
		},
		Recommendations:        exerciseAdvice(snap, surplus, available),
		WeeklyPlan:             weeklyPlan(snap.avgDuration, available),
		AvailableExerciseTypes: available,
	}, nil
}

// exerciseSessions merges normalized exercise records with exercise health
// records; the latter get their category from the catalog by name.
func (u *analysisUsecase) exerciseSessions(db *gorm.DB, userID uint, start, end time.Time, catalog []entity.ExerciseType) ([]exerciseSession, error) {
	records, err := u.exerciseRecordRepo.FindByUser(db, userID, start, end)
	if err != nil {
		return nil, err
	}
	sessions := make([]exerciseSession, 0, len(records))
	for _, r := range records {
		sessions = append(sessions, exerciseSession{
			Name:     r.ExerciseType.Name,
			Category: r.ExerciseType.Category,
			Duration: float64(r.Duration),
		})
	}

	rows, err := u.healthRecordRepo.FindByUser(db, userID, entity.RecordFilter{
		Type:      entity.RecordTypeExercise,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}
	categories := make(map[string]string, len(catalog))
	for _, t := range catalog {
		categories[t.Name] = t.Category
	}
	for _, r := range rows {
		s := exerciseSession{Name: r.Exercise.ExerciseType, Category: categories[r.Exercise.ExerciseType]}
		if r.Exercise.Duration != nil {
			s.Duration = float64(*r.Exercise.Duration)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// calorieSurplus is average daily intake over the window minus the user's
// TDEE, or minus a 2000 kcal baseline when the profile is incomplete.
func (u *analysisUsecase) calorieSurplus(db *gorm.DB, user *entity.User, start, end time.Time, days int, now time.Time) (float64, error) {
	entries, err := u.dietEntries(db, user.ID, start, end)
	if err != nil {
		return 0, err
	}
	var intake float64
	for _, e := range entries {
		intake += e.Nutrients.Calories
	}

	burn, ok := user.TDEE(now)
	if !ok {
		burn = defaultBurnBaseline
	}
	return entity.Round(intake/float64(days)-burn, 1), nil
}
