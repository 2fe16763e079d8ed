package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrExerciseTypeExists     = errors.New("exercise type already exists")
	ErrExerciseRecordNotFound = errors.New("exercise record not found")
)

// ExerciseUsecase manages the exercise catalog and the normalized exercise log
type ExerciseUsecase interface {
	CreateType(ctx context.Context, req *dto.CreateExerciseTypeRequest) (*dto.ExerciseTypeResponse, error)
	ListTypes(ctx context.Context, category, search string) ([]dto.ExerciseTypeResponse, error)
	GetType(ctx context.Context, id uint) (*dto.ExerciseTypeResponse, error)
	SeedTypes(ctx context.Context) (*dto.SeedExerciseTypesResponse, error)

	CreateRecord(ctx context.Context, userID uint, req *dto.CreateExerciseLogRequest) (*dto.ExerciseLogResponse, error)
	ListRecords(ctx context.Context, userID uint, startDate, endDate string) ([]dto.ExerciseLogResponse, error)
	DeleteRecord(ctx context.Context, userID, id uint) error
	Summary(ctx context.Context, userID uint, period, date string) (*dto.ExerciseSummaryResponse, error)
}

type exerciseUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	exerciseTypeRepo   repository.ExerciseTypeRepository
	exerciseRecordRepo repository.ExerciseRecordRepository
	auditService       service.AuditService
	now                func() time.Time
}

func NewExerciseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	exerciseTypeRepo repository.ExerciseTypeRepository,
	exerciseRecordRepo repository.ExerciseRecordRepository,
	auditService service.AuditService,
) ExerciseUsecase {
	return &exerciseUsecase{
		db:                 db,
		log:                log,
		exerciseTypeRepo:   exerciseTypeRepo,
		exerciseRecordRepo: exerciseRecordRepo,
		auditService:       auditService,
		now:                time.Now,
	}
}

func (u *exerciseUsecase) CreateType(ctx context.Context, req *dto.CreateExerciseTypeRequest) (*dto.ExerciseTypeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.exerciseTypeRepo.FindByName(tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to find exercise type: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrExerciseTypeExists
	}

	exerciseType := &entity.ExerciseType{
		Name:            req.Name,
		Category:        req.Category,
		CaloriesPerHour: req.CaloriesPerHour,
		Description:     req.Description,
		Benefits:        req.Benefits,
	}
	if err := u.exerciseTypeRepo.Create(tx, exerciseType); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrExerciseTypeExists
		}
		u.log.Warnf("Failed to create exercise type: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.ExerciseTypeToResponse(exerciseType), nil
}

func (u *exerciseUsecase) ListTypes(ctx context.Context, category, search string) ([]dto.ExerciseTypeResponse, error) {
	types, err := u.exerciseTypeRepo.FindAll(u.db.WithContext(ctx), category, search)
	if err != nil {
		u.log.Warnf("Failed to find exercise types: %+v", err)
		return nil, err
	}
	return converter.ExerciseTypesToResponses(types), nil
}

func (u *exerciseUsecase) GetType(ctx context.Context, id uint) (*dto.ExerciseTypeResponse, error) {
	exerciseType, err := u.exerciseTypeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find exercise type: %+v", err)
		return nil, err
	}
	if exerciseType == nil {
		return nil, ErrExerciseTypeNotFound
	}
	return converter.ExerciseTypeToResponse(exerciseType), nil
}

// SeedTypes installs the default catalog, skipping names that already exist
func (u *exerciseUsecase) SeedTypes(ctx context.Context) (*dto.SeedExerciseTypesResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	created := 0
	for _, def := range entity.DefaultExerciseTypes {
		existing, err := u.exerciseTypeRepo.FindByName(tx, def.Name)
		if err != nil {
			u.log.Warnf("Failed to find exercise type: %+v", err)
			return nil, err
		}
		if existing != nil {
			continue
		}

		exerciseType := def
		if err := u.exerciseTypeRepo.Create(tx, &exerciseType); err != nil {
			u.log.Warnf("Failed to create exercise type: %+v", err)
			return nil, err
		}
		created++
	}

	total, err := u.exerciseTypeRepo.Count(tx)
	if err != nil {
		u.log.Warnf("Failed to count exercise types: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Seeded %d exercise types (%d in catalog)", created, total)
	return &dto.SeedExerciseTypesResponse{Created: created, Total: int(total)}, nil
}

func (u *exerciseUsecase) CreateRecord(ctx context.Context, userID uint, req *dto.CreateExerciseLogRequest) (*dto.ExerciseLogResponse, error) {
	date, err := dateOrToday(req.RecordDate, u.now())
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exerciseType, err := u.exerciseTypeRepo.FindByID(tx, req.ExerciseTypeID)
	if err != nil {
		u.log.Warnf("Failed to find exercise type: %+v", err)
		return nil, err
	}
	if exerciseType == nil {
		return nil, ErrExerciseTypeNotFound
	}

	record := &entity.ExerciseRecord{
		UserID:         userID,
		ExerciseTypeID: exerciseType.ID,
		RecordDate:     date,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		Intensity:      req.Intensity,
		HeartRateAvg:   req.HeartRateAvg,
		HeartRateMax:   req.HeartRateMax,
		Distance:       req.Distance,
		Steps:          req.Steps,
		Notes:          req.Notes,
	}
	if record.CaloriesBurned == nil {
		calories := caloriesForDuration(exerciseType.CaloriesPerHour, req.Duration)
		record.CaloriesBurned = &calories
	}

	if err := u.exerciseRecordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create exercise record: %+v", err)
		return nil, err
	}
	record.ExerciseType = *exerciseType

	response := converter.ExerciseLogToResponse(record)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionRecordCreate, "exercise_record", record.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

// ListRecords defaults to the last 30 days when no range is given
func (u *exerciseUsecase) ListRecords(ctx context.Context, userID uint, startDate, endDate string) ([]dto.ExerciseLogResponse, error) {
	today := entity.DateOnly(u.now())
	start, end := today.AddDate(0, 0, -29), today

	from, to, err := optionalRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if to != nil {
		end = *to
		start = end.AddDate(0, 0, -29)
	}
	if from != nil {
		start = *from
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	records, err := u.exerciseRecordRepo.FindByUser(u.db.WithContext(ctx), userID, start, end)
	if err != nil {
		u.log.Warnf("Failed to find exercise records: %+v", err)
		return nil, err
	}
	return converter.ExerciseLogsToResponses(records), nil
}

func (u *exerciseUsecase) DeleteRecord(ctx context.Context, userID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.exerciseRecordRepo.FindByID(tx, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find exercise record: %+v", err)
		return err
	}
	if record == nil {
		return ErrExerciseRecordNotFound
	}

	if err := u.exerciseRecordRepo.Delete(tx, record); err != nil {
		u.log.Warnf("Failed to delete exercise record: %+v", err)
		return err
	}
	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionRecordDelete, "exercise_record", record.ID, converter.ExerciseLogToResponse(record)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// Summary totals the exercise log of a period around date
func (u *exerciseUsecase) Summary(ctx context.Context, userID uint, period, date string) (*dto.ExerciseSummaryResponse, error) {
	start, end := summaryWindow(period, date, u.now())

	records, err := u.exerciseRecordRepo.FindByUser(u.db.WithContext(ctx), userID, start, end)
	if err != nil {
		u.log.Warnf("Failed to find exercise records: %+v", err)
		return nil, err
	}

	summary := &dto.ExerciseSummaryResponse{
		StartDate:  start.Format(entity.DateLayout),
		EndDate:    end.Format(entity.DateLayout),
		DailyStats: []dto.ExerciseDayStat{},
		TypeStats:  []dto.ExerciseTypeStat{},
	}
	daily := make(map[string]*dto.ExerciseDayStat)
	byType := make(map[string]*dto.ExerciseTypeStat)
	for _, r := range records {
		var calories float64
		if r.CaloriesBurned != nil {
			calories = *r.CaloriesBurned
		}
		summary.TotalCaloriesBurned += calories
		summary.TotalDuration += r.Duration
		summary.TotalActivities++

		day := r.RecordDate.Format(entity.DateLayout)
		if daily[day] == nil {
			daily[day] = &dto.ExerciseDayStat{Date: day}
		}
		daily[day].Calories += calories
		daily[day].Duration += r.Duration
		daily[day].Count++

		name := r.ExerciseType.Name
		if byType[name] == nil {
			byType[name] = &dto.ExerciseTypeStat{Type: name}
		}
		byType[name].Calories += calories
		byType[name].Duration += r.Duration
		byType[name].Count++
	}

	summary.TotalCaloriesBurned = entity.Round(summary.TotalCaloriesBurned, 1)
	for _, stat := range daily {
		stat.Calories = entity.Round(stat.Calories, 1)
		summary.DailyStats = append(summary.DailyStats, *stat)
	}
	sort.Slice(summary.DailyStats, func(i, j int) bool {
		return summary.DailyStats[i].Date < summary.DailyStats[j].Date
	})
	for _, stat := range byType {
		stat.Calories = entity.Round(stat.Calories, 1)
		summary.TypeStats = append(summary.TypeStats, *stat)
	}
	sort.Slice(summary.TypeStats, func(i, j int) bool {
		a, b := summary.TypeStats[i], summary.TypeStats[j]
		if a.Calories != b.Calories {
			return a.Calories > b.Calories
		}
		return a.Type < b.Type
	})
	return summary, nil
}

// summaryWindow resolves day, week (Monday to Sunday) and month periods around
// date. An unparseable date means today; no date or an unknown period means
// the 30 days before today.
func summaryWindow(period, date string, now time.Time) (time.Time, time.Time) {
	today := entity.DateOnly(now)
	if date == "" {
		return today.AddDate(0, 0, -30), today
	}
	day, err := entity.ParseDate(date)
	if err != nil {
		day = today
	}

	switch period {
	case "day":
		return day, day
	case "week":
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6)
	case "month":
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	}
	return today.AddDate(0, 0, -30), today
}
