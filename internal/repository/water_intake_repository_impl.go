package repository

import (
	"errors"
	"time"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type waterIntakeRepository struct{}

func NewWaterIntakeRepository() domainRepo.WaterIntakeRepository {
	return &waterIntakeRepository{}
}

func (r *waterIntakeRepository) Create(db *gorm.DB, intake *entity.WaterIntake) error {
	return db.Create(intake).Error
}

func (r *waterIntakeRepository) Delete(db *gorm.DB, intake *entity.WaterIntake) error {
	return db.Delete(intake).Error
}

func (r *waterIntakeRepository) FindByID(db *gorm.DB, userID, id uint) (*entity.WaterIntake, error) {
	var intake entity.WaterIntake
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&intake).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &intake, nil
}

func (r *waterIntakeRepository) FindByUser(db *gorm.DB, userID uint, start, end *time.Time) ([]entity.WaterIntake, error) {
	query := db.Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("record_date >= ?", entity.DateOnly(*start))
	}
	if end != nil {
		query = query.Where("record_date <= ?", entity.DateOnly(*end))
	}

	var intakes []entity.WaterIntake
	if err := query.Order("record_date DESC").Order("intake_time DESC").Find(&intakes).Error; err != nil {
		return nil, err
	}
	return intakes, nil
}

func (r *waterIntakeRepository) DailyTotal(db *gorm.DB, userID uint, date time.Time) (float64, error) {
	var total float64
	err := db.Model(&entity.WaterIntake{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND record_date = ?", userID, entity.DateOnly(date)).
		Scan(&total).Error
	return total, err
}
