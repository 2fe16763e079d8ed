package repository

import (
	"errors"
	"time"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type exerciseTypeRepository struct{}

func NewExerciseTypeRepository() domainRepo.ExerciseTypeRepository {
	return &exerciseTypeRepository{}
}

func (r *exerciseTypeRepository) Create(db *gorm.DB, exerciseType *entity.ExerciseType) error {
	return db.Create(exerciseType).Error
}

func (r *exerciseTypeRepository) FindByID(db *gorm.DB, id uint) (*entity.ExerciseType, error) {
	var exerciseType entity.ExerciseType
	err := db.Where("id = ?", id).First(&exerciseType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exerciseType, nil
}

func (r *exerciseTypeRepository) FindByName(db *gorm.DB, name string) (*entity.ExerciseType, error) {
	var exerciseType entity.ExerciseType
	err := db.Where("name = ?", name).First(&exerciseType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exerciseType, nil
}

func (r *exerciseTypeRepository) FindAll(db *gorm.DB, category, search string) ([]entity.ExerciseType, error) {
	query := db.Model(&entity.ExerciseType{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var types []entity.ExerciseType
	if err := query.Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *exerciseTypeRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.ExerciseType{}).Count(&total).Error
	return total, err
}

type exerciseRecordRepository struct{}

func NewExerciseRecordRepository() domainRepo.ExerciseRecordRepository {
	return &exerciseRecordRepository{}
}

func (r *exerciseRecordRepository) Create(db *gorm.DB, record *entity.ExerciseRecord) error {
	return db.Omit("ExerciseType").Create(record).Error
}

func (r *exerciseRecordRepository) Delete(db *gorm.DB, record *entity.ExerciseRecord) error {
	return db.Delete(record).Error
}

func (r *exerciseRecordRepository) FindByID(db *gorm.DB, userID, id uint) (*entity.ExerciseRecord, error) {
	var record entity.ExerciseRecord
	err := db.Preload("ExerciseType").Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *exerciseRecordRepository) FindByUser(db *gorm.DB, userID uint, start, end time.Time) ([]entity.ExerciseRecord, error) {
	var records []entity.ExerciseRecord
	err := db.Preload("ExerciseType").
		Where("user_id = ? AND record_date >= ? AND record_date <= ?", userID, entity.DateOnly(start), entity.DateOnly(end)).
		Order("record_date DESC").Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
