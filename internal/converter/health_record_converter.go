package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

func HealthRecordToResponse(record *entity.HealthRecord) *dto.HealthRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.HealthRecordResponse{
		ID:                record.ID,
		UserID:            record.UserID,
		RecordDate:        record.RecordDate.Format(entity.DateLayout),
		RecordType:        string(record.Type),
		Notes:             record.Notes,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
		HealthMetrics:     record.Health,
		DietDetails:       record.Diet,
		ExerciseDetails:   record.Exercise,
		WaterDetails:      record.Water,
		MedicationDetails: record.Medication,
	}
}

func HealthRecordsToResponses(records []entity.HealthRecord) []dto.HealthRecordResponse {
	responses := make([]dto.HealthRecordResponse, len(records))
	for i := range records {
		responses[i] = *HealthRecordToResponse(&records[i])
	}
	return responses
}
