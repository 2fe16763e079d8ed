package dto

import "time"

// Request DTOs

// CreateMedicationReminderRequest: with medication_record_id set, missing
// fields are filled from the medication record.
type CreateMedicationReminderRequest struct {
	MedicationRecordID *uint  `json:"medication_record_id" validate:"omitempty,gt=0"`
	Title              string `json:"title" validate:"omitempty,max=100"`
	Description        string `json:"description"`
	ReminderDate       string `json:"reminder_date" validate:"omitempty,date"` // Format: YYYY-MM-DD
	ReminderTime       string `json:"reminder_time" validate:"omitempty,clock"` // Format: HH:MM
	Recurrence         string `json:"recurrence" validate:"omitempty,oneof=daily weekly monthly"`
}

type CreateAppointmentReminderRequest struct {
	Title        string `json:"title" validate:"required,max=100"`
	Description  string `json:"description"`
	ReminderDate string `json:"reminder_date" validate:"required,date"`
	ReminderTime string `json:"reminder_time" validate:"required,clock"`
	Recurrence   string `json:"recurrence" validate:"omitempty,oneof=daily weekly monthly"`
}

type UpdateReminderRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description"`
	ReminderDate *string `json:"reminder_date" validate:"omitempty,date"`
	ReminderTime *string `json:"reminder_time" validate:"omitempty,clock"`
	Recurrence   *string `json:"recurrence" validate:"omitempty,oneof=daily weekly monthly"`
	IsCompleted  *bool   `json:"is_completed"`
	Notes        *string `json:"notes"`
}

type GenerateRemindersRequest struct {
	Date string `json:"date" validate:"omitempty,date"`
}

// Response DTOs

type MedicationLinkResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Dosage     string `json:"dosage"`
	RecordDate string `json:"record_date,omitempty"`
}

type ReminderResponse struct {
	ID               uint                    `json:"id"`
	ReminderType     string                  `json:"reminder_type"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description,omitempty"`
	ReminderDate     string                  `json:"reminder_date"`
	ReminderTime     string                  `json:"reminder_time"`
	Recurrence       string                  `json:"recurrence,omitempty"`
	IsCompleted      bool                    `json:"is_completed"`
	Notes            string                  `json:"notes,omitempty"`
	MedicationRecord *MedicationLinkResponse `json:"medication_record,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Total     int                `json:"total"`
}

type GenerateRemindersResponse struct {
	Date    string `json:"date"`
	Created int    `json:"created"`
}
