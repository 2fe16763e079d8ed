package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRecordRejectsInactiveVariantFields(t *testing.T) {
	record := &HealthRecord{
		Type:  RecordTypeWater,
		Water: &WaterDetails{Amount: 250},
		Diet:  &DietDetails{FoodName: "米饭"},
	}

	err := record.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVariantMismatch))
}

func TestHealthRecordRejectsUnknownType(t *testing.T) {
	err := (&HealthRecord{Type: "sleep"}).Validate()
	assert.True(t, errors.Is(err, ErrUnknownRecordType))
}

func TestHealthRecordVariantRequiredFields(t *testing.T) {
	date := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)

	_, err := NewDietRecord(1, date, DietDetails{})
	assert.Error(t, err)

	_, err = NewWaterRecord(1, date, WaterDetails{Amount: 0})
	assert.Error(t, err)

	bad := 6
	_, err = NewMedicationRecord(1, date, MedicationDetails{Name: "布洛芬", Effectiveness: &bad})
	assert.Error(t, err)

	record, err := NewWaterRecord(1, date, WaterDetails{Amount: 300})
	require.NoError(t, err)
	assert.Equal(t, DateOnly(date), record.RecordDate)
}

func TestHealthRecordRowRoundTripKeepsVariant(t *testing.T) {
	dosage := decimal.RequireFromString("0.5")
	record, err := NewMedicationRecord(7, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), MedicationDetails{
		Name:       "阿司匹林",
		Dosage:     &dosage,
		DosageUnit: "片",
	})
	require.NoError(t, err)

	back, err := record.ToRow().Record()
	require.NoError(t, err)
	assert.Equal(t, RecordTypeMedication, back.Type)
	assert.Nil(t, back.Diet)
	require.NotNil(t, back.Medication)
	assert.Equal(t, "0.5片", back.Medication.DosageText())
}
