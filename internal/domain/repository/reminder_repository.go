package repository

import (
	"time"

	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(db *gorm.DB, reminder *entity.Reminder) error
	Update(db *gorm.DB, reminder *entity.Reminder) error
	Delete(db *gorm.DB, reminder *entity.Reminder) error
	FindByID(db *gorm.DB, userID, id uint) (*entity.Reminder, error)
	// FindByUser lists reminders ordered by time; nil date lists every day, empty type every type
	FindByUser(db *gorm.DB, userID uint, date *time.Time, reminderType string, pendingOnly bool) ([]entity.Reminder, error)
	ExistsOnDate(db *gorm.DB, userID uint, date time.Time) (bool, error)
}
