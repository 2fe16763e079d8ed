package repository

import (
	"errors"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type healthRecordRepository struct{}

func NewHealthRecordRepository() domainRepo.HealthRecordRepository {
	return &healthRecordRepository{}
}

func (r *healthRecordRepository) Create(db *gorm.DB, record *entity.HealthRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	row := record.ToRow()
	if err := db.Create(row).Error; err != nil {
		return err
	}
	record.ID, record.CreatedAt, record.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt
	return nil
}

// Update rewrites every column so stale fields of another variant are cleared
func (r *healthRecordRepository) Update(db *gorm.DB, record *entity.HealthRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	row := record.ToRow()
	if err := db.Save(row).Error; err != nil {
		return err
	}
	record.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *healthRecordRepository) Delete(db *gorm.DB, record *entity.HealthRecord) error {
	return db.Where("id = ? AND user_id = ?", record.ID, record.UserID).Delete(&entity.HealthRecordRow{}).Error
}

func (r *healthRecordRepository) FindByID(db *gorm.DB, userID, id uint) (*entity.HealthRecord, error) {
	var row entity.HealthRecordRow
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.Record()
}

func (r *healthRecordRepository) FindByUser(db *gorm.DB, userID uint, filter entity.RecordFilter) ([]entity.HealthRecord, error) {
	var rows []entity.HealthRecordRow
	err := r.scope(db, userID, filter).
		Order("record_date DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func (r *healthRecordRepository) FindRecent(db *gorm.DB, userID uint, limit int) ([]entity.HealthRecord, error) {
	var rows []entity.HealthRecordRow
	err := db.Where("user_id = ?", userID).
		Order("record_date DESC").Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func toRecords(rows []entity.HealthRecordRow) ([]entity.HealthRecord, error) {
	records := make([]entity.HealthRecord, 0, len(rows))
	for i := range rows {
		record, err := rows[i].Record()
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

func (r *healthRecordRepository) CountByUser(db *gorm.DB, userID uint, filter entity.RecordFilter) (int64, error) {
	var total int64
	err := r.scope(db, userID, filter).Count(&total).Error
	return total, err
}

func (r *healthRecordRepository) scope(db *gorm.DB, userID uint, filter entity.RecordFilter) *gorm.DB {
	query := db.Model(&entity.HealthRecordRow{}).Where("user_id = ?", userID)
	if filter.Type != "" {
		query = query.Where("record_type = ?", string(filter.Type))
	}
	if filter.StartDate != nil {
		query = query.Where("record_date >= ?", entity.DateOnly(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("record_date <= ?", entity.DateOnly(*filter.EndDate))
	}
	return query
}
