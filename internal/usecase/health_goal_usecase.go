package usecase

import (
	"context"
	"errors"
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
	ErrGoalNotFound     = errors.New("health goal not found")
	ErrInvalidGoalDates = errors.New("goal end date is before its start date")
)

type HealthGoalUsecase interface {
	Create(ctx context.Context, userID uint, req *dto.CreateGoalRequest) (*dto.GoalResponse, error)
	List(ctx context.Context, userID uint, status, goalType string) ([]dto.GoalResponse, error)
	Get(ctx context.Context, userID, goalID uint) (*dto.GoalResponse, error)
	Update(ctx context.Context, userID, goalID uint, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error)
	Delete(ctx context.Context, userID, goalID uint) error
	AddLog(ctx context.Context, userID, goalID uint, req *dto.CreateGoalLogRequest) (*dto.GoalLogResultResponse, error)
	ListLogs(ctx context.Context, userID, goalID uint) ([]dto.GoalLogResponse, error)
}

type healthGoalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	goalRepo     repository.HealthGoalRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewHealthGoalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	goalRepo repository.HealthGoalRepository,
	auditService service.AuditService,
) HealthGoalUsecase {
	return &healthGoalUsecase{
		db:           db,
		log:          log,
		goalRepo:     goalRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *healthGoalUsecase) Create(ctx context.Context, userID uint, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	start, err := dateOrToday(req.StartDate, u.now())
	if err != nil {
		return nil, err
	}

	goal := &entity.HealthGoal{
		UserID:       userID,
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		InitialValue: req.InitialValue,
		StartDate:    start,
		Status:       entity.GoalStatusActive,
		Notes:        req.Notes,
	}
	if goal.InitialValue == nil && goal.CurrentValue != nil {
		initial := *goal.CurrentValue
		goal.InitialValue = &initial
	}
	if req.EndDate != "" {
		end, err := entity.ParseDate(req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		if end.Before(start) {
			return nil, ErrInvalidGoalDates
		}
		goal.EndDate = &end
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.goalRepo.Create(tx, goal); err != nil {
		u.log.Warnf("Failed to create health goal: %+v", err)
		return nil, err
	}

	response := converter.GoalToResponse(goal)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionGoalCreate, "health_goal", goal.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

func (u *healthGoalUsecase) List(ctx context.Context, userID uint, status, goalType string) ([]dto.GoalResponse, error) {
	goals, err := u.goalRepo.FindByUser(u.db.WithContext(ctx), userID, entity.GoalStatus(status), goalType)
	if err != nil {
		u.log.Warnf("Failed to find health goals: %+v", err)
		return nil, err
	}
	return converter.GoalsToResponses(goals), nil
}

// Get returns the goal with its logs, newest first
func (u *healthGoalUsecase) Get(ctx context.Context, userID, goalID uint) (*dto.GoalResponse, error) {
	db := u.db.WithContext(ctx)
	goal, err := u.findGoal(db, userID, goalID)
	if err != nil {
		return nil, err
	}

	logs, err := u.goalRepo.FindLogs(db, goal.ID)
	if err != nil {
		u.log.Warnf("Failed to find goal logs: %+v", err)
		return nil, err
	}
	goal.Logs = logs
	return converter.GoalToResponse(goal), nil
}

func (u *healthGoalUsecase) findGoal(db *gorm.DB, userID, goalID uint) (*entity.HealthGoal, error) {
	goal, err := u.goalRepo.FindByID(db, userID, goalID)
	if err != nil {
		u.log.Warnf("Failed to find health goal: %+v", err)
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}

func (u *healthGoalUsecase) Update(ctx context.Context, userID, goalID uint, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	goal, err := u.findGoal(tx, userID, goalID)
	if err != nil {
		return nil, err
	}
	old := converter.GoalToResponse(goal)
	today := entity.DateOnly(u.now())

	if req.GoalType != nil {
		goal.GoalType = *req.GoalType
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.InitialValue != nil {
		goal.InitialValue = req.InitialValue
	}
	if req.EndDate != nil {
		end, err := entity.ParseDate(*req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		if end.Before(goal.StartDate) {
			return nil, ErrInvalidGoalDates
		}
		goal.EndDate = &end
	}
	if req.CurrentValue != nil {
		goal.ApplyValue(*req.CurrentValue, today)
	}
	// an explicit status wins over the automatic transition
	if req.Status != nil {
		goal.Status = entity.GoalStatus(*req.Status)
		if goal.Status == entity.GoalStatusCompleted && goal.EndDate == nil {
			goal.EndDate = &today
		}
	}
	if req.Notes != nil {
		goal.Notes = *req.Notes
	}

	if err := u.goalRepo.Update(tx, goal); err != nil {
		u.log.Warnf("Failed to update health goal: %+v", err)
		return nil, err
	}

	updated := converter.GoalToResponse(goal)
	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionGoalUpdate, "health_goal", goal.ID, old, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes the goal together with its logs
func (u *healthGoalUsecase) Delete(ctx context.Context, userID, goalID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	goal, err := u.findGoal(tx, userID, goalID)
	if err != nil {
		return err
	}

	if err := u.goalRepo.DeleteLogs(tx, goal.ID); err != nil {
		u.log.Warnf("Failed to delete goal logs: %+v", err)
		return err
	}
	if err := u.goalRepo.Delete(tx, goal); err != nil {
		u.log.Warnf("Failed to delete health goal: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionGoalDelete, "health_goal", goal.ID, converter.GoalToResponse(goal)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// AddLog records a measurement, moves the goal's current value and completes
// the goal when the target is reached
func (u *healthGoalUsecase) AddLog(ctx context.Context, userID, goalID uint, req *dto.CreateGoalLogRequest) (*dto.GoalLogResultResponse, error) {
	logDate, err := dateOrToday(req.LogDate, u.now())
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	goal, err := u.findGoal(tx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goalLog := &entity.HealthGoalLog{
		GoalID:  goal.ID,
		LogDate: logDate,
		Value:   req.Value,
		Notes:   req.Notes,
	}
	if err := u.goalRepo.CreateLog(tx, goalLog); err != nil {
		u.log.Warnf("Failed to create goal log: %+v", err)
		return nil, err
	}

	achieved := goal.ApplyValue(req.Value, logDate)
	if err := u.goalRepo.Update(tx, goal); err != nil {
		u.log.Warnf("Failed to update health goal: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, tx, userID, entity.AuditActionGoalLog, entity.JSON{
		"entity":        "health_goal",
		"entity_id":     goal.ID,
		"value":         req.Value,
		"log_date":      logDate.Format(entity.DateLayout),
		"goal_achieved": achieved,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if achieved {
		u.log.WithFields(logrus.Fields{"user_id": userID, "goal_id": goal.ID}).Info("Health goal completed")
	}
	return &dto.GoalLogResultResponse{
		Log:          *converter.GoalLogToResponse(goalLog),
		Goal:         *converter.GoalToResponse(goal),
		GoalAchieved: achieved,
	}, nil
}

func (u *healthGoalUsecase) ListLogs(ctx context.Context, userID, goalID uint) ([]dto.GoalLogResponse, error) {
	db := u.db.WithContext(ctx)
	goal, err := u.findGoal(db, userID, goalID)
	if err != nil {
		return nil, err
	}

	logs, err := u.goalRepo.FindLogs(db, goal.ID)
	if err != nil {
		u.log.Warnf("Failed to find goal logs: %+v", err)
		return nil, err
	}
	return converter.GoalLogsToResponses(logs), nil
}
