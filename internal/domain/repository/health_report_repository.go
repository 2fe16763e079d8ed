package repository

import (
	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthReportRepository interface {
	Create(db *gorm.DB, report *entity.HealthReport) error
	Delete(db *gorm.DB, report *entity.HealthReport) error
	FindByID(db *gorm.DB, userID, id uint) (*entity.HealthReport, error)
	FindLatestByUser(db *gorm.DB, userID uint, limit int) ([]entity.HealthReport, error)
}
