package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareVisibleTo(t *testing.T) {
	tests := []struct {
		visibility string
		viewer     uint
		expected   bool
	}{
		{VisibilityPublic, 2, true},
		{VisibilityFriends, 2, true},
		{VisibilityPrivate, 2, false},
		{VisibilityPrivate, 1, true},
	}

	for _, tt := range tests {
		share := &Share{UserID: 1, Visibility: tt.visibility}
		assert.Equal(t, tt.expected, share.VisibleTo(tt.viewer), "%s viewed by %d", tt.visibility, tt.viewer)
	}
}

func TestIsSharable(t *testing.T) {
	assert.True(t, IsSharable(ContentWaterIntake))
	assert.False(t, IsSharable("user"))
}

func TestReminderMedicationRef(t *testing.T) {
	reminder := &Reminder{Title: "服用布洛芬"}

	_, _, ok := reminder.MedicationRef()
	assert.False(t, ok)

	reminder.AttachMedication(MedicationInfo{ID: 42, Name: "布洛芬", Dosage: "1片", RecordDate: "2026-03-01"})

	ref, info, ok := reminder.MedicationRef()
	assert.True(t, ok)
	assert.Equal(t, SoftRef{Kind: string(RecordTypeMedication), ID: 42}, ref)
	assert.Equal(t, "1片", info.Dosage)
	assert.Equal(t, "medication#42", ref.String())
}

func TestReminderMedicationRefAfterJSONDecode(t *testing.T) {
	// jsonb columns decode numbers as float64
	reminder := &Reminder{Metadata: JSON{
		"medication_record_info": map[string]interface{}{"id": float64(7), "name": "维生素C"},
	}}

	ref, info, ok := reminder.MedicationRef()
	assert.True(t, ok)
	assert.Equal(t, uint(7), ref.ID)
	assert.Equal(t, "维生素C", info.Name)
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 10}, Page{}.Normalize())
	assert.Equal(t, Page{Page: 3, Limit: 100}, Page{Page: 3, Limit: 500}.Normalize())
	assert.Equal(t, 20, Page{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, Page{Page: -1, Limit: 10}.Offset())
}
