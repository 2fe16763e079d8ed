package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

func HealthReportToResponse(report *entity.HealthReport) *dto.HealthReportResponse {
	if report == nil {
		return nil
	}

	return &dto.HealthReportResponse{
		ID:                report.ID,
		Title:             report.Title,
		ReportType:        report.ReportType,
		StartDate:         report.StartDate.Format(entity.DateLayout),
		EndDate:           report.EndDate.Format(entity.DateLayout),
		HealthSummary:     report.HealthSummary,
		DietSummary:       report.DietSummary,
		ExerciseSummary:   report.ExerciseSummary,
		MedicationSummary: report.MedicationSummary,
		Recommendations:   report.Recommendations,
		CreatedAt:         report.CreatedAt,
	}
}

func HealthReportsToResponses(reports []entity.HealthReport) []dto.HealthReportResponse {
	responses := make([]dto.HealthReportResponse, len(reports))
	for i := range reports {
		responses[i] = *HealthReportToResponse(&reports[i])
	}
	return responses
}
