package repository

import (
	"errors"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type healthReportRepository struct{}

func NewHealthReportRepository() domainRepo.HealthReportRepository {
	return &healthReportRepository{}
}

func (r *healthReportRepository) Create(db *gorm.DB, report *entity.HealthReport) error {
	return db.Create(report).Error
}

func (r *healthReportRepository) Delete(db *gorm.DB, report *entity.HealthReport) error {
	return db.Delete(report).Error
}

func (r *healthReportRepository) FindByID(db *gorm.DB, userID, id uint) (*entity.HealthReport, error) {
	var report entity.HealthReport
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *healthReportRepository) FindLatestByUser(db *gorm.DB, userID uint, limit int) ([]entity.HealthReport, error) {
	query := db.Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var reports []entity.HealthReport
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
