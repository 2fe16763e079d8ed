package repository

import (
	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	// Delete removes the user and every row the user owns
	Delete(db *gorm.DB, id uint) error
}
