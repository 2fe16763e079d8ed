package repository

import (
	"time"

	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(db *gorm.DB, food *entity.Food) error
	FindByID(db *gorm.DB, id uint) (*entity.Food, error)
	FindAll(db *gorm.DB, category, search string) ([]entity.Food, error)
	// FindFirstByNameLike returns the first food whose name contains fragment and has calories
	FindFirstByNameLike(db *gorm.DB, fragment string) (*entity.Food, error)
}

type DietRecordRepository interface {
	Create(db *gorm.DB, record *entity.DietRecord) error
	Delete(db *gorm.DB, record *entity.DietRecord) error
	FindByID(db *gorm.DB, userID, id uint) (*entity.DietRecord, error)
	FindByUser(db *gorm.DB, userID uint, start, end *time.Time, mealType string) ([]entity.DietRecord, error)
}
