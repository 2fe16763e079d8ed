package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHealthRecordNotFound   = errors.New("health record not found")
	ErrInvalidRecordType      = errors.New("invalid record type")
	ErrInvalidRecord          = errors.New("invalid health record")
	ErrExerciseTypeNotFound   = errors.New("exercise type not found")
	ErrMedicationTypeNotFound = errors.New("medication type not found")
)

// HealthRecordUsecase owns the health record table. Each variant has its own
// create and update; reads and deletes are shared and may be narrowed to one
// record type.
type HealthRecordUsecase interface {
	List(ctx context.Context, userID uint, recordType, startDate, endDate string) (*dto.HealthRecordListResponse, error)
	Get(ctx context.Context, userID uint, recordType entity.RecordType, id uint) (*dto.HealthRecordResponse, error)
	Delete(ctx context.Context, userID uint, recordType entity.RecordType, id uint) error

	CreateHealthMetrics(ctx context.Context, userID uint, req *dto.HealthMetricsRequest) (*dto.HealthRecordResponse, error)
	UpdateHealthMetrics(ctx context.Context, userID, id uint, req *dto.HealthMetricsRequest) (*dto.HealthRecordResponse, error)
	CreateDiet(ctx context.Context, userID uint, req *dto.DietRecordRequest) (*dto.HealthRecordResponse, error)
	UpdateDiet(ctx context.Context, userID, id uint, req *dto.DietRecordRequest) (*dto.HealthRecordResponse, error)
	CreateExercise(ctx context.Context, userID uint, req *dto.ExerciseRecordRequest) (*dto.HealthRecordResponse, error)
	UpdateExercise(ctx context.Context, userID, id uint, req *dto.ExerciseRecordRequest) (*dto.HealthRecordResponse, error)
	CreateWater(ctx context.Context, userID uint, req *dto.WaterRecordRequest) (*dto.HealthRecordResponse, error)
	UpdateWater(ctx context.Context, userID, id uint, req *dto.WaterRecordRequest) (*dto.HealthRecordResponse, error)
	CreateMedication(ctx context.Context, userID uint, req *dto.MedicationRecordRequest) (*dto.HealthRecordResponse, error)
	UpdateMedication(ctx context.Context, userID, id uint, req *dto.MedicationRecordRequest) (*dto.HealthRecordResponse, error)
	MedicationSchedule(ctx context.Context, userID uint, date string) ([]dto.HealthRecordResponse, error)
}

type healthRecordUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	healthRecordRepo   repository.HealthRecordRepository
	exerciseTypeRepo   repository.ExerciseTypeRepository
	medicationTypeRepo repository.MedicationTypeRepository
	auditService       service.AuditService
	now                func() time.Time
}

func NewHealthRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	healthRecordRepo repository.HealthRecordRepository,
	exerciseTypeRepo repository.ExerciseTypeRepository,
	medicationTypeRepo repository.MedicationTypeRepository,
	auditService service.AuditService,
) HealthRecordUsecase {
	return &healthRecordUsecase{
		db:                 db,
		log:                log,
		healthRecordRepo:   healthRecordRepo,
		exerciseTypeRepo:   exerciseTypeRepo,
		medicationTypeRepo: medicationTypeRepo,
		auditService:       auditService,
		now:                time.Now,
	}
}

// recordBuilder produces the new state of a record for the given day. It runs
// inside the write transaction so catalog lookups see the same snapshot.
type recordBuilder func(db *gorm.DB, userID uint, date time.Time) (*entity.HealthRecord, error)

func (u *healthRecordUsecase) List(ctx context.Context, userID uint, recordType, startDate, endDate string) (*dto.HealthRecordListResponse, error) {
	filter := entity.RecordFilter{Type: entity.RecordType(recordType)}
	if recordType != "" && !filter.Type.Valid() {
		return nil, ErrInvalidRecordType
	}

	start, end, err := optionalRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	filter.StartDate, filter.EndDate = start, end

	records, err := u.healthRecordRepo.FindByUser(u.db.WithContext(ctx), userID, filter)
	if err != nil {
		u.log.Warnf("Failed to find health records: %+v", err)
		return nil, err
	}

	responses := converter.HealthRecordsToResponses(records)
	return &dto.HealthRecordListResponse{Records: responses, Total: len(responses)}, nil
}

func (u *healthRecordUsecase) Get(ctx context.Context, userID uint, recordType entity.RecordType, id uint) (*dto.HealthRecordResponse, error) {
	record, err := u.findRecord(u.db.WithContext(ctx), userID, recordType, id)
	if err != nil {
		return nil, err
	}
	return converter.HealthRecordToResponse(record), nil
}

// findRecord treats a record of another type as missing
func (u *healthRecordUsecase) findRecord(db *gorm.DB, userID uint, recordType entity.RecordType, id uint) (*entity.HealthRecord, error) {
	record, err := u.healthRecordRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find health record: %+v", err)
		return nil, err
	}
	if record == nil || (recordType != "" && record.Type != recordType) {
		return nil, ErrHealthRecordNotFound
	}
	return record, nil
}

func (u *healthRecordUsecase) Delete(ctx context.Context, userID uint, recordType entity.RecordType, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.findRecord(tx, userID, recordType, id)
	if err != nil {
		return err
	}

	if err := u.healthRecordRepo.Delete(tx, record); err != nil {
		u.log.Warnf("Failed to delete health record: %+v", err)
		return err
	}
	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionRecordDelete, "health_record", record.ID, converter.HealthRecordToResponse(record)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *healthRecordUsecase) create(ctx context.Context, userID uint, recordDate string, build recordBuilder) (*dto.HealthRecordResponse, error) {
	date, err := dateOrToday(recordDate, u.now())
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := build(tx, userID, date)
	if err != nil {
		return nil, err
	}

	if err := u.healthRecordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create health record: %+v", err)
		return nil, err
	}

	response := converter.HealthRecordToResponse(record)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionRecordCreate, "health_record", record.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

// update replaces the variant of an existing record; an empty date keeps the old one
func (u *healthRecordUsecase) update(ctx context.Context, userID, id uint, recordType entity.RecordType, recordDate string, build recordBuilder) (*dto.HealthRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.findRecord(tx, userID, recordType, id)
	if err != nil {
		return nil, err
	}
	old := converter.HealthRecordToResponse(existing)

	date := existing.RecordDate
	if recordDate != "" {
		if date, err = entity.ParseDate(recordDate); err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	record, err := build(tx, userID, date)
	if err != nil {
		return nil, err
	}
	record.ID, record.CreatedAt = existing.ID, existing.CreatedAt

	if err := u.healthRecordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update health record: %+v", err)
		return nil, err
	}

	updated := converter.HealthRecordToResponse(record)
	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionRecordUpdate, "health_record", record.ID, old, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return updated, nil
}

func invalidRecord(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}

func (u *healthRecordUsecase) CreateHealthMetrics(ctx context.Context, userID uint, req *dto.HealthMetricsRequest) (*dto.HealthRecordResponse, error) {
	return u.create(ctx, userID, req.RecordDate, healthMetricsBuilder(req))
}

func (u *healthRecordUsecase) UpdateHealthMetrics(ctx context.Context, userID, id uint, req *dto.HealthMetricsRequest) (*dto.HealthRecordResponse, error) {
	return u.update(ctx, userID, id, entity.RecordTypeHealth, req.RecordDate, healthMetricsBuilder(req))
}

func healthMetricsBuilder(req *dto.HealthMetricsRequest) recordBuilder {
	return func(_ *gorm.DB, userID uint, date time.Time) (*entity.HealthRecord, error) {
		metrics := entity.HealthMetrics{
			Weight:                 req.Weight,
			Height:                 req.Height,
			BMI:                    req.BMI,
			BloodPressureSystolic:  req.BloodPressureSystolic,
			BloodPressureDiastolic: req.BloodPressureDiastolic,
			HeartRate:              req.HeartRate,
			BloodSugar:             req.BloodSugar,
			BodyFat:                req.BodyFat,
			SleepHours:             req.SleepHours,
			Steps:                  req.Steps,
		}
		if metrics.BMI == nil {
			metrics.BMI = bmi(req.Weight, req.Height)
		}

		record, err := entity.NewHealthMetricsRecord(userID, date, metrics)
		if err != nil {
			return nil, invalidRecord(err)
		}
		record.Notes = req.Notes
		return record, nil
	}
}

// bmi derives kg/m² from weight in kg and height in cm, nil when either is missing
func bmi(weight, height *float64) *float64 {
	if weight == nil || height == nil || *weight <= 0 || *height <= 0 {
		return nil
	}
	meters := *height / 100
	v := entity.Round(*weight/(meters*meters), 1)
	return &v
}

func (u *healthRecordUsecase) CreateDiet(ctx context.Context, userID uint, req *dto.DietRecordRequest) (*dto.HealthRecordResponse, error) {
	return u.create(ctx, userID, req.RecordDate, dietBuilder(req))
}

func (u *healthRecordUsecase) UpdateDiet(ctx context.Context, userID, id uint, req *dto.DietRecordRequest) (*dto.HealthRecordResponse, error) {
	return u.update(ctx, userID, id, entity.RecordTypeDiet, req.RecordDate, dietBuilder(req))
}

func dietBuilder(req *dto.DietRecordRequest) recordBuilder {
	return func(_ *gorm.DB, userID uint, date time.Time) (*entity.HealthRecord, error) {
		record, err := entity.NewDietRecord(userID, date, entity.DietDetails{
			FoodName:   req.FoodName,
			MealType:   req.MealType,
			FoodAmount: req.FoodAmount,
			Calories:   req.Calories,
			Sugar:      req.Sugar,
		})
		if err != nil {
			return nil, invalidRecord(err)
		}
		record.Notes = req.Notes
		return record, nil
	}
}

func (u *healthRecordUsecase) CreateExercise(ctx context.Context, userID uint, req *dto.ExerciseRecordRequest) (*dto.HealthRecordResponse, error) {
	return u.create(ctx, userID, req.RecordDate, u.exerciseBuilder(req))
}

func (u *healthRecordUsecase) UpdateExercise(ctx context.Context, userID, id uint, req *dto.ExerciseRecordRequest) (*dto.HealthRecordResponse, error) {
	return u.update(ctx, userID, id, entity.RecordTypeExercise, req.RecordDate, u.exerciseBuilder(req))
}

func (u *healthRecordUsecase) exerciseBuilder(req *dto.ExerciseRecordRequest) recordBuilder {
	return func(db *gorm.DB, userID uint, date time.Time) (*entity.HealthRecord, error) {
		details := entity.ExerciseDetails{
			ExerciseType:   req.ExerciseType,
			Duration:       req.Duration,
			Intensity:      req.Intensity,
			CaloriesBurned: req.CaloriesBurned,
			Distance:       req.Distance,
		}

		if req.ExerciseTypeID != nil {
			exerciseType, err := u.exerciseTypeRepo.FindByID(db, *req.ExerciseTypeID)
			if err != nil {
				u.log.Warnf("Failed to find exercise type: %+v", err)
				return nil, err
			}
			if exerciseType == nil {
				return nil, ErrExerciseTypeNotFound
			}
			details.ExerciseType = exerciseType.Name
			if details.CaloriesBurned == nil && details.Duration != nil {
				calories := caloriesForDuration(exerciseType.CaloriesPerHour, *details.Duration)
				details.CaloriesBurned = &calories
			}
		}

		record, err := entity.NewExerciseRecord(userID, date, details)
		if err != nil {
			return nil, invalidRecord(err)
		}
		record.Notes = req.Notes
		return record, nil
	}
}

// caloriesForDuration scales an hourly burn rate to minutes, one decimal
func caloriesForDuration(perHour float64, minutes int) float64 {
	return entity.Round(perHour*float64(minutes)/60, 1)
}

func (u *healthRecordUsecase) CreateWater(ctx context.Context, userID uint, req *dto.WaterRecordRequest) (*dto.HealthRecordResponse, error) {
	return u.create(ctx, userID, req.RecordDate, waterBuilder(req))
}

func (u *healthRecordUsecase) UpdateWater(ctx context.Context, userID, id uint, req *dto.WaterRecordRequest) (*dto.HealthRecordResponse, error) {
	return u.update(ctx, userID, id, entity.RecordTypeWater, req.RecordDate, waterBuilder(req))
}

func waterBuilder(req *dto.WaterRecordRequest) recordBuilder {
	return func(_ *gorm.DB, userID uint, date time.Time) (*entity.HealthRecord, error) {
		record, err := entity.NewWaterRecord(userID, date, entity.WaterDetails{
			Amount:     req.Amount,
			WaterType:  req.WaterType,
			IntakeTime: req.IntakeTime,
		})
		if err != nil {
			return nil, invalidRecord(err)
		}
		record.Notes = req.Notes
		return record, nil
	}
}

func (u *healthRecordUsecase) CreateMedication(ctx context.Context, userID uint, req *dto.MedicationRecordRequest) (*dto.HealthRecordResponse, error) {
	return u.create(ctx, userID, req.RecordDate, u.medicationBuilder(req))
}

func (u *healthRecordUsecase) UpdateMedication(ctx context.Context, userID, id uint, req *dto.MedicationRecordRequest) (*dto.HealthRecordResponse, error) {
	return u.update(ctx, userID, id, entity.RecordTypeMedication, req.RecordDate, u.medicationBuilder(req))
}

func (u *healthRecordUsecase) medicationBuilder(req *dto.MedicationRecordRequest) recordBuilder {
	return func(db *gorm.DB, userID uint, date time.Time) (*entity.HealthRecord, error) {
		details := entity.MedicationDetails{
			Name:          req.MedicationName,
			Dosage:        req.Dosage,
			DosageUnit:    req.DosageUnit,
			Frequency:     req.Frequency,
			TimeTaken:     req.TimeTaken,
			WithFood:      req.WithFood,
			Effectiveness: req.Effectiveness,
			SideEffects:   req.SideEffects,
		}
		if details.Dosage != nil && details.Dosage.IsNegative() {
			return nil, invalidRecord(errors.New("dosage must not be negative"))
		}

		if req.MedicationTypeID != nil {
			medicationType, err := u.medicationTypeRepo.FindByID(db, *req.MedicationTypeID)
			if err != nil {
				u.log.Warnf("Failed to find medication type: %+v", err)
				return nil, err
			}
			if medicationType == nil {
				return nil, ErrMedicationTypeNotFound
			}
			details.Name = medicationType.Name
		}

		record, err := entity.NewMedicationRecord(userID, date, details)
		if err != nil {
			return nil, invalidRecord(err)
		}
		record.Notes = req.Notes
		return record, nil
	}
}

// MedicationSchedule lists the latest record of each medication logged on or
// before date (default today), ordered by time taken. Records without a time
// come last.
func (u *healthRecordUsecase) MedicationSchedule(ctx context.Context, userID uint, date string) ([]dto.HealthRecordResponse, error) {
	day, err := dateOrToday(date, u.now())
	if err != nil {
		return nil, err
	}

	records, err := u.healthRecordRepo.FindByUser(u.db.WithContext(ctx), userID, entity.RecordFilter{
		Type:    entity.RecordTypeMedication,
		EndDate: &day,
	})
	if err != nil {
		u.log.Warnf("Failed to find medication records: %+v", err)
		return nil, err
	}

	seen := make(map[string]bool)
	var schedule []entity.HealthRecord
	for _, r := range records {
		if seen[r.Medication.Name] {
			continue
		}
		seen[r.Medication.Name] = true
		schedule = append(schedule, r)
	}
	sort.SliceStable(schedule, func(i, j int) bool {
		a, b := schedule[i].Medication, schedule[j].Medication
		if (a.TimeTaken == "") != (b.TimeTaken == "") {
			return b.TimeTaken == ""
		}
		if a.TimeTaken != b.TimeTaken {
			return a.TimeTaken < b.TimeTaken
		}
		return a.Name < b.Name
	})
	return converter.HealthRecordsToResponses(schedule), nil
}
