package repository

import (
	"errors"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type healthGoalRepository struct{}

func NewHealthGoalRepository() domainRepo.HealthGoalRepository {
	return &healthGoalRepository{}
}

func (r *healthGoalRepository) Create(db *gorm.DB, goal *entity.HealthGoal) error {
	return db.Omit("Logs").Create(goal).Error
}

func (r *healthGoalRepository) Update(db *gorm.DB, goal *entity.HealthGoal) error {
	return db.Omit("Logs").Save(goal).Error
}

func (r *healthGoalRepository) Delete(db *gorm.DB, goal *entity.HealthGoal) error {
	return db.Delete(goal).Error
}

func (r *healthGoalRepository) FindByID(db *gorm.DB, userID, id uint) (*entity.HealthGoal, error) {
	var goal entity.HealthGoal
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *healthGoalRepository) FindByUser(db *gorm.DB, userID uint, status entity.GoalStatus, goalType string) ([]entity.HealthGoal, error) {
	query := db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if goalType != "" {
		query = query.Where("goal_type = ?", goalType)
	}

	var goals []entity.HealthGoal
	if err := query.Order("created_at DESC").Order("id DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *healthGoalRepository) CreateLog(db *gorm.DB, log *entity.HealthGoalLog) error {
	return db.Create(log).Error
}

func (r *healthGoalRepository) FindLogs(db *gorm.DB, goalID uint) ([]entity.HealthGoalLog, error) {
	var logs []entity.HealthGoalLog
	err := db.Where("goal_id = ?", goalID).
		Order("log_date DESC").Order("id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *healthGoalRepository) DeleteLogs(db *gorm.DB, goalID uint) error {
	return db.Where("goal_id = ?", goalID).Delete(&entity.HealthGoalLog{}).Error
}
