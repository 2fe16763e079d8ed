package repository

import (
	"errors"
	"time"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type foodRepository struct{}

func NewFoodRepository() domainRepo.FoodRepository {
	return &foodRepository{}
}

func (r *foodRepository) Create(db *gorm.DB, food *entity.Food) error {
	return db.Create(food).Error
}

func (r *foodRepository) FindByID(db *gorm.DB, id uint) (*entity.Food, error) {
	var food entity.Food
	err := db.Where("id = ?", id).First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindAll(db *gorm.DB, category, search string) ([]entity.Food, error) {
	query := db.Model(&entity.Food{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var foods []entity.Food
	if err := query.Order("name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) FindFirstByNameLike(db *gorm.DB, fragment string) (*entity.Food, error) {
	var food entity.Food
	err := db.Where("name LIKE ? AND calories IS NOT NULL", "%"+fragment+"%").
		Order("id ASC").
		First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

type dietRecordRepository struct{}

func NewDietRecordRepository() domainRepo.DietRecordRepository {
	return &dietRecordRepository{}
}

// Create inserts the record together with its items
func (r *dietRecordRepository) Create(db *gorm.DB, record *entity.DietRecord) error {
	return db.Omit("Items.Food").Create(record).Error
}

func (r *dietRecordRepository) Delete(db *gorm.DB, record *entity.DietRecord) error {
	if err := db.Where("diet_record_id = ?", record.ID).Delete(&entity.DietRecordItem{}).Error; err != nil {
		return err
	}
	return db.Delete(record).Error
}

func (r *dietRecordRepository) FindByID(db *gorm.DB, userID, id uint) (*entity.DietRecord, error) {
	var record entity.DietRecord
	err := db.Preload("Items.Food").Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *dietRecordRepository) FindByUser(db *gorm.DB, userID uint, start, end *time.Time, mealType string) ([]entity.DietRecord, error) {
	query := db.Preload("Items.Food").Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("record_date >= ?", entity.DateOnly(*start))
	}
	if end != nil {
		query = query.Where("record_date <= ?", entity.DateOnly(*end))
	}
	if mealType != "" {
		query = query.Where("meal_type = ?", mealType)
	}

	var records []entity.DietRecord
	if err := query.Order("record_date DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
