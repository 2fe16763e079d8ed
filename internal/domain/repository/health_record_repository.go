package repository

import (
	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(db *gorm.DB, record *entity.HealthRecord) error
	Update(db *gorm.DB, record *entity.HealthRecord) error
	Delete(db *gorm.DB, record *entity.HealthRecord) error
	// FindByID returns the record only when it belongs to userID
	FindByID(db *gorm.DB, userID, id uint) (*entity.HealthRecord, error)
	FindByUser(db *gorm.DB, userID uint, filter entity.RecordFilter) ([]entity.HealthRecord, error)
	CountByUser(db *gorm.DB, userID uint, filter entity.RecordFilter) (int64, error)
	// FindRecent returns the newest records by record date, then creation time
	FindRecent(db *gorm.DB, userID uint, limit int) ([]entity.HealthRecord, error)
}
