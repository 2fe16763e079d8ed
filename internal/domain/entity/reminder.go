package entity

import (
	"time"
)

// Reminder types
const (
	ReminderMedication  = "medication"
	ReminderAppointment = "appointment"
)

// Recurrence values
const (
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

const medicationInfoKey = "medication_record_info"

type Reminder struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	ReminderType string    `gorm:"type:varchar(20);not null;index" json:"reminder_type"`
	Title        string    `gorm:"type:varchar(100);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	ReminderDate time.Time `gorm:"type:date;not null;index" json:"reminder_date"`
	ReminderTime string    `gorm:"type:varchar(5);not null" json:"reminder_time"`
	Recurrence   string    `gorm:"type:varchar(20)" json:"recurrence,omitempty"`
	IsCompleted  bool      `gorm:"not null;default:false" json:"is_completed"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	Metadata     JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// MedicationInfo is the snapshot of a medication record kept on a reminder
type MedicationInfo struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Dosage     string `json:"dosage"`
	RecordDate string `json:"record_date,omitempty"`
}

// AttachMedication stores a soft link to the medication record in the metadata
func (r *Reminder) AttachMedication(info MedicationInfo) {
	if r.Metadata == nil {
		r.Metadata = JSON{}
	}
	r.Metadata[medicationInfoKey] = map[string]interface{}{
		"id":          info.ID,
		"name":        info.Name,
		"dosage":      info.Dosage,
		"record_date": info.RecordDate,
	}
}

// MedicationRef returns the soft reference to the linked medication record, if any
func (r *Reminder) MedicationRef() (SoftRef, MedicationInfo, bool) {
	raw, ok := r.Metadata[medicationInfoKey].(map[string]interface{})
	if !ok {
		return SoftRef{}, MedicationInfo{}, false
	}

	var info MedicationInfo
	switch id := raw["id"].(type) {
	case float64:
		info.ID = uint(id)
	case uint:
		info.ID = id
	case int:
		info.ID = uint(id)
	}
	info.Name, _ = raw["name"].(string)
	info.Dosage, _ = raw["dosage"].(string)
	info.RecordDate, _ = raw["record_date"].(string)

	if info.ID == 0 {
		return SoftRef{}, info, false
	}
	return SoftRef{Kind: string(RecordTypeMedication), ID: info.ID}, info, true
}
