package repository

import (
	"errors"
	"time"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) Create(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Create(reminder).Error
}

func (r *reminderRepository) Update(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Save(reminder).Error
}

func (r *reminderRepository) Delete(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Delete(reminder).Error
}

func (r *reminderRepository) FindByID(db *gorm.DB, userID, id uint) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) FindByUser(db *gorm.DB, userID uint, date *time.Time, reminderType string, pendingOnly bool) ([]entity.Reminder, error) {
	query := db.Where("user_id = ?", userID)
	if date != nil {
		query = query.Where("reminder_date = ?", entity.DateOnly(*date))
	}
	if reminderType != "" {
		query = query.Where("reminder_type = ?", reminderType)
	}
	if pendingOnly {
		query = query.Where("is_completed = ?", false)
	}

	var reminders []entity.Reminder
	err := query.Order("reminder_date ASC").Order("reminder_time ASC").Order("id ASC").Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) ExistsOnDate(db *gorm.DB, userID uint, date time.Time) (bool, error) {
	var total int64
	err := db.Model(&entity.Reminder{}).
		Where("user_id = ? AND reminder_date = ?", userID, entity.DateOnly(date)).
		Count(&total).Error
	return total > 0, err
}
