package repository

import (
	"time"

	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type ExerciseTypeRepository interface {
	Create(db *gorm.DB, exerciseType *entity.ExerciseType) error
	FindByID(db *gorm.DB, id uint) (*entity.ExerciseType, error)
	FindByName(db *gorm.DB, name string) (*entity.ExerciseType, error)
	FindAll(db *gorm.DB, category, search string) ([]entity.ExerciseType, error)
	Count(db *gorm.DB) (int64, error)
}

type ExerciseRecordRepository interface {
	Create(db *gorm.DB, record *entity.ExerciseRecord) error
	Delete(db *gorm.DB, record *entity.ExerciseRecord) error
	FindByID(db *gorm.DB, userID, id uint) (*entity.ExerciseRecord, error)
	FindByUser(db *gorm.DB, userID uint, start, end time.Time) ([]entity.ExerciseRecord, error)
}
