package repository

import (
	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthGoalRepository interface {
	Create(db *gorm.DB, goal *entity.HealthGoal) error
	Update(db *gorm.DB, goal *entity.HealthGoal) error
	Delete(db *gorm.DB, goal *entity.HealthGoal) error
	FindByID(db *gorm.DB, userID, id uint) (*entity.HealthGoal, error)
	FindByUser(db *gorm.DB, userID uint, status entity.GoalStatus, goalType string) ([]entity.HealthGoal, error)
	CreateLog(db *gorm.DB, log *entity.HealthGoalLog) error
	FindLogs(db *gorm.DB, goalID uint) ([]entity.HealthGoalLog, error)
	DeleteLogs(db *gorm.DB, goalID uint) error
}
