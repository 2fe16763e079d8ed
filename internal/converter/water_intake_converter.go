package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

func WaterIntakeToResponse(intake *entity.WaterIntake) *dto.WaterIntakeResponse {
	if intake == nil {
		return nil
	}

	return &dto.WaterIntakeResponse{
		ID:         intake.ID,
		Amount:     intake.Amount,
		RecordDate: intake.RecordDate.Format(entity.DateLayout),
		IntakeTime: intake.IntakeTime,
		WaterType:  intake.WaterType,
		Notes:      intake.Notes,
		CreatedAt:  intake.CreatedAt,
	}
}

func WaterIntakesToResponses(intakes []entity.WaterIntake) []dto.WaterIntakeResponse {
	responses := make([]dto.WaterIntakeResponse, len(intakes))
	for i := range intakes {
		responses[i] = *WaterIntakeToResponse(&intakes[i])
	}
	return responses
}
