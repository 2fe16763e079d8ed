package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

// ReminderToResponse converts a Reminder entity to ReminderResponse DTO,
// surfacing the medication link kept in its metadata
func ReminderToResponse(reminder *entity.Reminder) *dto.ReminderResponse {
	if reminder == nil {
		return nil
	}

	response := &dto.ReminderResponse{
		ID:           reminder.ID,
		ReminderType: reminder.ReminderType,
		Title:        reminder.Title,
		Description:  reminder.Description,
		ReminderDate: reminder.ReminderDate.Format(entity.DateLayout),
		ReminderTime: reminder.ReminderTime,
		Recurrence:   reminder.Recurrence,
		IsCompleted:  reminder.IsCompleted,
		Notes:        reminder.Notes,
		CreatedAt:    reminder.CreatedAt,
		UpdatedAt:    reminder.UpdatedAt,
	}

	if _, info, ok := reminder.MedicationRef(); ok {
		response.MedicationRecord = &dto.MedicationLinkResponse{
			ID:         info.ID,
			Name:       info.Name,
			Dosage:     info.Dosage,
			RecordDate: info.RecordDate,
		}
	}

	return response
}

func RemindersToResponses(reminders []entity.Reminder) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i := range reminders {
		responses[i] = *ReminderToResponse(&reminders[i])
	}
	return responses
}
