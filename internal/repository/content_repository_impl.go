package repository

import (
	"fmt"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type contentLookup struct {
	table  string
	filter sq.Eq
}

// primary lookups go through the tables the share most likely points at,
// alternate ones through the normalized tables holding the same kind of data
var (
	primaryContentLookups = map[string]contentLookup{
		entity.ContentHealthRecord:     {table: "health_records", filter: sq.Eq{"record_type": string(entity.RecordTypeHealth)}},
		entity.ContentDietRecord:       {table: "health_records", filter: sq.Eq{"record_type": string(entity.RecordTypeDiet)}},
		entity.ContentExerciseRecord:   {table: "health_records", filter: sq.Eq{"record_type": string(entity.RecordTypeExercise)}},
		entity.ContentWaterIntake:      {table: "health_records", filter: sq.Eq{"record_type": string(entity.RecordTypeWater)}},
		entity.ContentMedicationRecord: {table: "health_records", filter: sq.Eq{"record_type": string(entity.RecordTypeMedication)}},
		entity.ContentHealthGoal:       {table: "health_goals"},
		entity.ContentHealthReport:     {table: "health_reports"},
	}
	alternateContentLookups = map[string]contentLookup{
		entity.ContentDietRecord:     {table: "diet_records"},
		entity.ContentExerciseRecord: {table: "exercise_records"},
		entity.ContentWaterIntake:    {table: "water_intakes"},
	}
)

type contentRepository struct{}

func NewContentRepository() domainRepo.ContentRepository {
	return &contentRepository{}
}

// Exists tries the primary table first, then the alternate one. Unknown kinds
// are reported as missing.
func (r *contentRepository) Exists(db *gorm.DB, ref entity.SoftRef) (bool, error) {
	if ref.IsZero() {
		return false, nil
	}
	for _, lookups := range []map[string]contentLookup{primaryContentLookups, alternateContentLookups} {
		lookup, ok := lookups[ref.Kind]
		if !ok {
			continue
		}
		found, err := r.exists(db, lookup, ref.ID)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

func (r *contentRepository) exists(db *gorm.DB, lookup contentLookup, id uint) (bool, error) {
	builder := sq.Select("1").From(lookup.table).Where(sq.Eq{"id": id}).Limit(1)
	if len(lookup.filter) > 0 {
		builder = builder.Where(lookup.filter)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("build content lookup for %s: %w", lookup.table, err)
	}

	var found int
	result := db.Raw(query, args...).Scan(&found)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
