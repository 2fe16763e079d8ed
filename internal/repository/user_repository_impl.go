package repository

import (
	"errors"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}

// Delete removes owned rows children first, so the result does not depend on
// the database enforcing ON DELETE CASCADE. Audit rows are kept.
func (r *userRepository) Delete(db *gorm.DB, id uint) error {
	shares := db.Model(&entity.Share{}).Select("id").Where("user_id = ?", id)
	comments := db.Model(&entity.Comment{}).Select("id").
		Where("user_id = ? OR share_id IN (?)", id, shares)
	goals := db.Model(&entity.HealthGoal{}).Select("id").Where("user_id = ?", id)
	dietRecords := db.Model(&entity.DietRecord{}).Select("id").Where("user_id = ?", id)

	steps := []struct {
		model interface{}
		query string
		args  []interface{}
	}{
		{&entity.Comment{}, "parent_id IN (?)", []interface{}{comments}},
		{&entity.Comment{}, "user_id = ? OR share_id IN (?)", []interface{}{id, shares}},
		{&entity.Like{}, "user_id = ? OR share_id IN (?)", []interface{}{id, shares}},
		{&entity.Share{}, "user_id = ?", []interface{}{id}},
		{&entity.HealthGoalLog{}, "goal_id IN (?)", []interface{}{goals}},
		{&entity.HealthGoal{}, "user_id = ?", []interface{}{id}},
		{&entity.DietRecordItem{}, "diet_record_id IN (?)", []interface{}{dietRecords}},
		{&entity.DietRecord{}, "user_id = ?", []interface{}{id}},
		{&entity.ExerciseRecord{}, "user_id = ?", []interface{}{id}},
		{&entity.WaterIntake{}, "user_id = ?", []interface{}{id}},
		{&entity.HealthReport{}, "user_id = ?", []interface{}{id}},
		{&entity.Reminder{}, "user_id = ?", []interface{}{id}},
		{&entity.HealthRecordRow{}, "user_id = ?", []interface{}{id}},
	}
	for _, step := range steps {
		if err := db.Where(step.query, step.args...).Delete(step.model).Error; err != nil {
			return err
		}
	}

	return db.Where("id = ?", id).Delete(&entity.User{}).Error
}
