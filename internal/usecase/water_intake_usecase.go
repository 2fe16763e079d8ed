package usecase

import (
	"context"
	"errors"
	"math"
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
	ErrWaterIntakeNotFound = errors.New("water intake not found")
	ErrInvalidDateRange    = errors.New("invalid date range")
)

const maxSummaryDays = 92

type WaterIntakeUsecase interface {
	Create(ctx context.Context, userID uint, req *dto.CreateWaterIntakeRequest) (*dto.WaterIntakeResponse, error)
	List(ctx context.Context, userID uint, startDate, endDate string) ([]dto.WaterIntakeResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.WaterIntakeResponse, error)
	Delete(ctx context.Context, userID, id uint) error
	DailySummary(ctx context.Context, userID uint, date string) (*dto.WaterDailySummaryResponse, error)
	RangeSummary(ctx context.Context, userID uint, startDate, endDate string) (*dto.WaterRangeSummaryResponse, error)
}

type waterIntakeUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	waterRepo    repository.WaterIntakeRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewWaterIntakeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	waterRepo repository.WaterIntakeRepository,
	auditService service.AuditService,
) WaterIntakeUsecase {
	return &waterIntakeUsecase{
		db:           db,
		log:          log,
		waterRepo:    waterRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *waterIntakeUsecase) Create(ctx context.Context, userID uint, req *dto.CreateWaterIntakeRequest) (*dto.WaterIntakeResponse, error) {
	date, err := dateOrToday(req.RecordDate, u.now())
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	intake := &entity.WaterIntake{
		UserID:     userID,
		Amount:     req.Amount,
		RecordDate: date,
		IntakeTime: req.IntakeTime,
		WaterType:  req.WaterType,
		Notes:      req.Notes,
	}
	if err := u.waterRepo.Create(tx, intake); err != nil {
		u.log.Warnf("Failed to create water intake: %+v", err)
		return nil, err
	}

	response := converter.WaterIntakeToResponse(intake)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionRecordCreate, "water_intake", intake.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

func (u *waterIntakeUsecase) List(ctx context.Context, userID uint, startDate, endDate string) ([]dto.WaterIntakeResponse, error) {
	start, end, err := optionalRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	intakes, err := u.waterRepo.FindByUser(u.db.WithContext(ctx), userID, start, end)
	if err != nil {
		u.log.Warnf("Failed to find water intakes: %+v", err)
		return nil, err
	}
	return converter.WaterIntakesToResponses(intakes), nil
}

func (u *waterIntakeUsecase) Get(ctx context.Context, userID, id uint) (*dto.WaterIntakeResponse, error) {
	intake, err := u.waterRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find water intake: %+v", err)
		return nil, err
	}
	if intake == nil {
		return nil, ErrWaterIntakeNotFound
	}
	return converter.WaterIntakeToResponse(intake), nil
}

func (u *waterIntakeUsecase) Delete(ctx context.Context, userID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	intake, err := u.waterRepo.FindByID(tx, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find water intake: %+v", err)
		return err
	}
	if intake == nil {
		return ErrWaterIntakeNotFound
	}

	if err := u.waterRepo.Delete(tx, intake); err != nil {
		u.log.Warnf("Failed to delete water intake: %+v", err)
		return err
	}
	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionRecordDelete, "water_intake", intake.ID, converter.WaterIntakeToResponse(intake)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *waterIntakeUsecase) DailySummary(ctx context.Context, userID uint, date string) (*dto.WaterDailySummaryResponse, error) {
	day, err := dateOrToday(date, u.now())
	if err != nil {
		return nil, err
	}
	return u.daySummary(u.db.WithContext(ctx), userID, day)
}

func (u *waterIntakeUsecase) daySummary(db *gorm.DB, userID uint, day time.Time) (*dto.WaterDailySummaryResponse, error) {
	intakes, err := u.waterRepo.FindByUser(db, userID, &day, &day)
	if err != nil {
		u.log.Warnf("Failed to find water intakes: %+v", err)
		return nil, err
	}

	total, err := u.waterRepo.DailyTotal(db, userID, day)
	if err != nil {
		u.log.Warnf("Failed to sum water intake: %+v", err)
		return nil, err
	}

	return &dto.WaterDailySummaryResponse{
		Date:              day.Format(entity.DateLayout),
		TotalAmount:       total,
		RecordsCount:      len(intakes),
		Records:           converter.WaterIntakesToResponses(intakes),
		RecommendedIntake: entity.RecommendedDailyWater,
		CompletionRate:    completionRate(total),
	}, nil
}

// completionRate is the share of the recommended intake in percent, capped at 100
func completionRate(total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Min(entity.Round(total/entity.RecommendedDailyWater*100, 2), 100)
}

func (u *waterIntakeUsecase) RangeSummary(ctx context.Context, userID uint, startDate, endDate string) (*dto.WaterRangeSummaryResponse, error) {
	start, err := entity.ParseDate(startDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := entity.ParseDate(endDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	days := entity.DaysInclusive(start, end)
	if days < 1 || days > maxSummaryDays {
		return nil, ErrInvalidDateRange
	}

	db := u.db.WithContext(ctx)
	response := &dto.WaterRangeSummaryResponse{
		StartDate:      start.Format(entity.DateLayout),
		EndDate:        end.Format(entity.DateLayout),
		DaysCount:      days,
		DailySummaries: make([]dto.WaterDailySummaryResponse, 0, days),
	}

	var rateSum float64
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		summary, err := u.daySummary(db, userID, day)
		if err != nil {
			return nil, err
		}
		response.TotalAmount += summary.TotalAmount
		rateSum += summary.CompletionRate
		response.DailySummaries = append(response.DailySummaries, *summary)
	}

	response.AverageDailyIntake = entity.Round(response.TotalAmount/float64(days), 2)
	response.AverageCompletionRate = entity.Round(rateSum/float64(days), 2)
	return response, nil
}

// dateOrToday parses an optional YYYY-MM-DD value, empty meaning today
func dateOrToday(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return entity.DateOnly(now), nil
	}
	date, err := entity.ParseDate(value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return date, nil
}

// optionalRange parses open-ended date filters; empty values stay nil
func optionalRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startDate != "" {
		d, err := entity.ParseDate(startDate)
		if err != nil {
			return nil, nil, ErrInvalidDateFormat
		}
		start = &d
	}
	if endDate != "" {
		d, err := entity.ParseDate(endDate)
		if err != nil {
			return nil, nil, ErrInvalidDateFormat
		}
		end = &d
	}
	return start, end, nil
}
