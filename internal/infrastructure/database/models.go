package database

import (
	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order
func Models() []interface{} {
	return []interface{}{
		&entity.User{},
		&entity.HealthRecordRow{},
		&entity.Food{},
		&entity.DietRecord{},
		&entity.DietRecordItem{},
		&entity.ExerciseType{},
		&entity.ExerciseRecord{},
		&entity.MedicationType{},
		&entity.HealthGoal{},
		&entity.HealthGoalLog{},
		&entity.WaterIntake{},
		&entity.HealthReport{},
		&entity.Reminder{},
		&entity.Share{},
		&entity.Like{},
		&entity.Comment{},
		&entity.AuditLog{},
	}
}

// AutoMigrate builds the schema from the entity definitions. The SQL
// migrations remain the source of truth for postgres; this serves
// throwaway databases such as the sqlite ones used in tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
