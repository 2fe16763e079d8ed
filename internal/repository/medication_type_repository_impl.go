package repository

import (
	"errors"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type medicationTypeRepository struct{}

func NewMedicationTypeRepository() domainRepo.MedicationTypeRepository {
	return &medicationTypeRepository{}
}

func (r *medicationTypeRepository) Create(db *gorm.DB, medicationType *entity.MedicationType) error {
	return db.Create(medicationType).Error
}

func (r *medicationTypeRepository) FindByID(db *gorm.DB, id uint) (*entity.MedicationType, error) {
	var medicationType entity.MedicationType
	err := db.Where("id = ?", id).First(&medicationType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicationType, nil
}

func (r *medicationTypeRepository) FindByName(db *gorm.DB, name string) (*entity.MedicationType, error) {
	var medicationType entity.MedicationType
	err := db.Where("name = ?", name).First(&medicationType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicationType, nil
}

func (r *medicationTypeRepository) FindAll(db *gorm.DB, category, search string) ([]entity.MedicationType, error) {
	query := db.Model(&entity.MedicationType{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var types []entity.MedicationType
	if err := query.Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
