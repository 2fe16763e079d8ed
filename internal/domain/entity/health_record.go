package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RecordType discriminates the active variant of a HealthRecord
type RecordType string

const (
	RecordTypeHealth     RecordType = "health"
	RecordTypeDiet       RecordType = "diet"
	RecordTypeExercise   RecordType = "exercise"
	RecordTypeWater      RecordType = "water"
	RecordTypeMedication RecordType = "medication"
)

// Valid reports whether t is one of the known record types
func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeHealth, RecordTypeDiet, RecordTypeExercise, RecordTypeWater, RecordTypeMedication:
		return true
	}
	return false
}

var (
	ErrUnknownRecordType = errors.New("unknown record type")
	ErrVariantMismatch   = errors.New("record fields do not match record type")
)

// HealthMetrics is the "health" variant
type HealthMetrics struct {
	Weight                 *float64 `json:"weight,omitempty"`
	Height                 *float64 `json:"height,omitempty"`
	BMI                    *float64 `json:"bmi,omitempty"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic,omitempty"`
	HeartRate              *int     `json:"heart_rate,omitempty"`
	BloodSugar             *float64 `json:"blood_sugar,omitempty"`
	BodyFat                *float64 `json:"body_fat,omitempty"`
	SleepHours             *float64 `json:"sleep_hours,omitempty"`
	Steps                  *int     `json:"steps,omitempty"`
}

// DietDetails is the "diet" variant. Calories is persisted in the calories_burned column.
type DietDetails struct {
	FoodName   string   `json:"food_name"`
	MealType   string   `json:"meal_type,omitempty"`
	FoodAmount *float64 `json:"food_amount,omitempty"`
	Calories   *float64 `json:"calories,omitempty"`
	Sugar      *float64 `json:"sugar,omitempty"`
}

// ExerciseDetails is the "exercise" variant
type ExerciseDetails struct {
	ExerciseType   string   `json:"exercise_type"`
	Duration       *int     `json:"duration,omitempty"`
	Intensity      string   `json:"intensity,omitempty"`
	CaloriesBurned *float64 `json:"calories_burned,omitempty"`
	Distance       *float64 `json:"distance,omitempty"`
}

// WaterDetails is the "water" variant, amount in ml
type WaterDetails struct {
	Amount     float64 `json:"water_amount"`
	WaterType  string  `json:"water_type,omitempty"`
	IntakeTime string  `json:"intake_time,omitempty"`
}

// MedicationDetails is the "medication" variant
type MedicationDetails struct {
	Name          string           `json:"medication_name"`
	Dosage        *decimal.Decimal `json:"dosage,omitempty"`
	DosageUnit    string           `json:"dosage_unit,omitempty"`
	Frequency     string           `json:"frequency,omitempty"`
	TimeTaken     string           `json:"time_taken,omitempty"`
	WithFood      *bool            `json:"with_food,omitempty"`
	Effectiveness *int             `json:"effectiveness,omitempty"`
	SideEffects   string           `json:"side_effects,omitempty"`
}

// DosageText renders dosage and unit the way reminders display them, e.g. "1.5片"
func (m *MedicationDetails) DosageText() string {
	if m.Dosage == nil {
		return m.DosageUnit
	}
	return m.Dosage.String() + m.DosageUnit
}

// HealthRecord is a tagged union: the common fields plus exactly one variant,
// the one selected by Type.
type HealthRecord struct {
	ID         uint
	UserID     uint
	RecordDate time.Time
	Type       RecordType
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Health     *HealthMetrics
	Diet       *DietDetails
	Exercise   *ExerciseDetails
	Water      *WaterDetails
	Medication *MedicationDetails
}

func NewHealthMetricsRecord(userID uint, date time.Time, m HealthMetrics) (*HealthRecord, error) {
	return newRecord(&HealthRecord{UserID: userID, RecordDate: DateOnly(date), Type: RecordTypeHealth, Health: &m})
}

func NewDietRecord(userID uint, date time.Time, d DietDetails) (*HealthRecord, error) {
	return newRecord(&HealthRecord{UserID: userID, RecordDate: DateOnly(date), Type: RecordTypeDiet, Diet: &d})
}

func NewExerciseRecord(userID uint, date time.Time, e ExerciseDetails) (*HealthRecord, error) {
	return newRecord(&HealthRecord{UserID: userID, RecordDate: DateOnly(date), Type: RecordTypeExercise, Exercise: &e})
}

func NewWaterRecord(userID uint, date time.Time, w WaterDetails) (*HealthRecord, error) {
	return newRecord(&HealthRecord{UserID: userID, RecordDate: DateOnly(date), Type: RecordTypeWater, Water: &w})
}

func NewMedicationRecord(userID uint, date time.Time, m MedicationDetails) (*HealthRecord, error) {
	return newRecord(&HealthRecord{UserID: userID, RecordDate: DateOnly(date), Type: RecordTypeMedication, Medication: &m})
}

func newRecord(r *HealthRecord) (*HealthRecord, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks that only the variant named by Type is populated and that
// the variant's own required fields are present.
func (r *HealthRecord) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRecordType, r.Type)
	}

	set := map[RecordType]bool{
		RecordTypeHealth:     r.Health != nil,
		RecordTypeDiet:       r.Diet != nil,
		RecordTypeExercise:   r.Exercise != nil,
		RecordTypeWater:      r.Water != nil,
		RecordTypeMedication: r.Medication != nil,
	}
	for t, present := range set {
		if present != (t == r.Type) {
			return fmt.Errorf("%w: type %s, %s variant present=%t", ErrVariantMismatch, r.Type, t, present)
		}
	}

	switch r.Type {
	case RecordTypeDiet:
		if r.Diet.FoodName == "" {
			return errors.New("diet record requires food_name")
		}
		if r.Diet.FoodAmount != nil && *r.Diet.FoodAmount < 0 {
			return errors.New("food_amount must not be negative")
		}
	case RecordTypeExercise:
		if r.Exercise.ExerciseType == "" {
			return errors.New("exercise record requires exercise_type")
		}
		if r.Exercise.Duration != nil && *r.Exercise.Duration < 0 {
			return errors.New("duration must not be negative")
		}
	case RecordTypeWater:
		if r.Water.Amount <= 0 {
			return errors.New("water record requires a positive amount")
		}
	case RecordTypeMedication:
		if r.Medication.Name == "" {
			return errors.New("medication record requires medication_name")
		}
		if e := r.Medication.Effectiveness; e != nil && (*e < 1 || *e > 5) {
			return errors.New("effectiveness must be between 1 and 5")
		}
	}
	return nil
}

// HealthRecordRow is the persisted wide-table shape of a HealthRecord.
// Only the columns of the active record_type are written.
type HealthRecordRow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	UserID     uint      `gorm:"not null;index"`
	RecordDate time.Time `gorm:"type:date;not null;index"`
	RecordType string    `gorm:"type:varchar(20);not null;index"`

	Weight                 *float64
	Height                 *float64
	BMI                    *float64 `gorm:"column:bmi"`
	BloodPressureSystolic  *int
	BloodPressureDiastolic *int
	HeartRate              *int
	BloodSugar             *float64
	BodyFat                *float64
	SleepHours             *float64
	Steps                  *int

	FoodName   *string `gorm:"type:varchar(100)"`
	MealType   *string `gorm:"type:varchar(20)"`
	FoodAmount *float64
	Sugar      *float64

	ExerciseType   *string `gorm:"type:varchar(50)"`
	Duration       *int
	Intensity      *string `gorm:"type:varchar(20)"`
	CaloriesBurned *float64
	Distance       *float64

	WaterAmount *float64
	WaterType   *string `gorm:"type:varchar(20)"`
	IntakeTime  *string `gorm:"type:varchar(5)"`

	MedicationName *string             `gorm:"type:varchar(100)"`
	Dosage         decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	DosageUnit     *string             `gorm:"type:varchar(20)"`
	Frequency      *string             `gorm:"type:varchar(50)"`
	TimeTaken      *string             `gorm:"type:varchar(5)"`
	WithFood       *bool
	Effectiveness  *int
	SideEffects    *string `gorm:"type:text"`

	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (HealthRecordRow) TableName() string {
	return "health_records"
}

// ToRow flattens the union into its persisted shape
func (r *HealthRecord) ToRow() *HealthRecordRow {
	row := &HealthRecordRow{
		ID:         r.ID,
		UserID:     r.UserID,
		RecordDate: DateOnly(r.RecordDate),
		RecordType: string(r.Type),
		Notes:      optString(r.Notes),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	switch r.Type {
	case RecordTypeHealth:
		h := r.Health
		row.Weight, row.Height, row.BMI = h.Weight, h.Height, h.BMI
		row.BloodPressureSystolic, row.BloodPressureDiastolic = h.BloodPressureSystolic, h.BloodPressureDiastolic
		row.HeartRate, row.BloodSugar, row.BodyFat = h.HeartRate, h.BloodSugar, h.BodyFat
		row.SleepHours, row.Steps = h.SleepHours, h.Steps
	case RecordTypeDiet:
		d := r.Diet
		row.FoodName, row.MealType = optString(d.FoodName), optString(d.MealType)
		row.FoodAmount, row.CaloriesBurned, row.Sugar = d.FoodAmount, d.Calories, d.Sugar
	case RecordTypeExercise:
		e := r.Exercise
		row.ExerciseType, row.Duration, row.Intensity = optString(e.ExerciseType), e.Duration, optString(e.Intensity)
		row.CaloriesBurned, row.Distance = e.CaloriesBurned, e.Distance
	case RecordTypeWater:
		w := r.Water
		amount := w.Amount
		row.WaterAmount, row.WaterType, row.IntakeTime = &amount, optString(w.WaterType), optString(w.IntakeTime)
	case RecordTypeMedication:
		m := r.Medication
		row.MedicationName, row.DosageUnit, row.Frequency = optString(m.Name), optString(m.DosageUnit), optString(m.Frequency)
		if m.Dosage != nil {
			row.Dosage = decimal.NullDecimal{Decimal: *m.Dosage, Valid: true}
		}
		row.TimeTaken, row.WithFood, row.Effectiveness = optString(m.TimeTaken), m.WithFood, m.Effectiveness
		row.SideEffects = optString(m.SideEffects)
	}
	return row
}

// Record rebuilds the union from a row, ignoring columns of inactive variants
func (row *HealthRecordRow) Record() (*HealthRecord, error) {
	r := &HealthRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		RecordDate: row.RecordDate,
		Type:       RecordType(row.RecordType),
		Notes:      deref(row.Notes),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	switch r.Type {
	case RecordTypeHealth:
		r.Health = &HealthMetrics{
			Weight:                 row.Weight,
			Height:                 row.Height,
			BMI:                    row.BMI,
			BloodPressureSystolic:  row.BloodPressureSystolic,
			BloodPressureDiastolic: row.BloodPressureDiastolic,
			HeartRate:              row.HeartRate,
			BloodSugar:             row.BloodSugar,
			BodyFat:                row.BodyFat,
			SleepHours:             row.SleepHours,
			Steps:                  row.Steps,
		}
	case RecordTypeDiet:
		r.Diet = &DietDetails{
			FoodName:   deref(row.FoodName),
			MealType:   deref(row.MealType),
			FoodAmount: row.FoodAmount,
			Calories:   row.CaloriesBurned,
			Sugar:      row.Sugar,
		}
	case RecordTypeExercise:
		r.Exercise = &ExerciseDetails{
			ExerciseType:   deref(row.ExerciseType),
			Duration:       row.Duration,
			Intensity:      deref(row.Intensity),
			CaloriesBurned: row.CaloriesBurned,
			Distance:       row.Distance,
		}
	case RecordTypeWater:
		var amount float64
		if row.WaterAmount != nil {
			amount = *row.WaterAmount
		}
		r.Water = &WaterDetails{Amount: amount, WaterType: deref(row.WaterType), IntakeTime: deref(row.IntakeTime)}
	case RecordTypeMedication:
		m := &MedicationDetails{
			Name:          deref(row.MedicationName),
			DosageUnit:    deref(row.DosageUnit),
			Frequency:     deref(row.Frequency),
			TimeTaken:     deref(row.TimeTaken),
			WithFood:      row.WithFood,
			Effectiveness: row.Effectiveness,
			SideEffects:   deref(row.SideEffects),
		}
		if row.Dosage.Valid {
			d := row.Dosage.Decimal
			m.Dosage = &d
		}
		r.Medication = m
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, row.RecordType)
	}
	return r, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
