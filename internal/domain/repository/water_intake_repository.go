package repository

import (
	"time"

	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type WaterIntakeRepository interface {
	Create(db *gorm.DB, intake *entity.WaterIntake) error
	Delete(db *gorm.DB, intake *entity.WaterIntake) error
	FindByID(db *gorm.DB, userID, id uint) (*entity.WaterIntake, error)
	FindByUser(db *gorm.DB, userID uint, start, end *time.Time) ([]entity.WaterIntake, error)
	DailyTotal(db *gorm.DB, userID uint, date time.Time) (float64, error)
}
