package repository

import (
	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicationTypeRepository interface {
	Create(db *gorm.DB, medicationType *entity.MedicationType) error
	FindByID(db *gorm.DB, id uint) (*entity.MedicationType, error)
	FindByName(db *gorm.DB, name string) (*entity.MedicationType, error)
	FindAll(db *gorm.DB, category, search string) ([]entity.MedicationType, error)
}
