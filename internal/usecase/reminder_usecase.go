package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/observability"
	"health-tracker/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrInvalidReminderDate = errors.New("invalid reminder date format, use YYYY-MM-DD")
)

const medicationReminderTitle = "服药提醒"

type ReminderUsecase interface {
	CreateMedicationReminder(ctx context.Context, userID uint, req *dto.CreateMedicationReminderRequest) (*dto.ReminderResponse, error)
	CreateAppointmentReminder(ctx context.Context, userID uint, req *dto.CreateAppointmentReminderRequest) (*dto.ReminderResponse, error)
	List(ctx context.Context, userID uint, date, reminderType string) (*dto.ReminderListResponse, error)
	ListPending(ctx context.Context, userID uint) (*dto.ReminderListResponse, error)
	Update(ctx context.Context, userID, reminderID uint, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	Delete(ctx context.Context, userID, reminderID uint) error
	MarkCompleted(ctx context.Context, userID, reminderID uint) (*dto.ReminderResponse, error)
	GenerateFromMedications(ctx context.Context, userID uint, date string) (*dto.GenerateRemindersResponse, error)
}

type reminderUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	reminderRepo     repository.ReminderRepository
	healthRecordRepo repository.HealthRecordRepository
	auditService     service.AuditService
	now              func() time.Time
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reminderRepo repository.ReminderRepository,
	healthRecordRepo repository.HealthRecordRepository,
	auditService service.AuditService,
) ReminderUsecase {
	return &reminderUsecase{
		db:               db,
		log:              log,
		reminderRepo:     reminderRepo,
		healthRecordRepo: healthRecordRepo,
		auditService:     auditService,
		now:              time.Now,
	}
}

// CreateMedicationReminder links the reminder to a medication record when one
// is named and still exists. A dangling id is ignored, not an error.
func (u *reminderUsecase) CreateMedicationReminder(ctx context.Context, userID uint, req *dto.CreateMedicationReminderRequest) (*dto.ReminderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reminder := &entity.Reminder{
		UserID:       userID,
		ReminderType: entity.ReminderMedication,
		Title:        req.Title,
		Description:  req.Description,
		ReminderTime: req.ReminderTime,
		Recurrence:   req.Recurrence,
	}
	if req.ReminderDate != "" {
		date, err := entity.ParseDate(req.ReminderDate)
		if err != nil {
			return nil, ErrInvalidReminderDate
		}
		reminder.ReminderDate = date
	}

	if req.MedicationRecordID != nil {
		record, err := u.healthRecordRepo.FindByID(tx, userID, *req.MedicationRecordID)
		if err != nil {
			u.log.Warnf("Failed to find medication record: %+v", err)
			return nil, err
		}
		if record != nil && record.Type == entity.RecordTypeMedication {
			fillFromMedication(reminder, record)
		}
	}

	now := u.now()
	if reminder.Title == "" {
		reminder.Title = medicationReminderTitle
	}
	if reminder.ReminderDate.IsZero() {
		reminder.ReminderDate = entity.DateOnly(now)
	}
	if reminder.ReminderTime == "" {
		reminder.ReminderTime = now.Format(entity.ClockLayout)
	}

	if err := u.reminderRepo.Create(tx, reminder); err != nil {
		u.log.Warnf("Failed to create reminder: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionReminderCreate, "reminder", reminder.ID, converter.ReminderToResponse(reminder)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

// fillFromMedication completes the fields the caller left empty
func fillFromMedication(reminder *entity.Reminder, record *entity.HealthRecord) {
	m := record.Medication
	if reminder.ReminderDate.IsZero() {
		reminder.ReminderDate = entity.DateOnly(record.RecordDate)
	}
	if reminder.ReminderTime == "" {
		reminder.ReminderTime = m.TimeTaken
	}
	if reminder.Title == "" && m.Name != "" {
		reminder.Title = fmt.Sprintf("%s: %s", medicationReminderTitle, m.Name)
	}
	if reminder.Description == "" {
		var parts []string
		if m.Dosage != nil && m.DosageUnit != "" {
			parts = append(parts, "剂量: "+m.DosageText())
		}
		if m.WithFood != nil && *m.WithFood {
			parts = append(parts, "饭后服用")
		}
		reminder.Description = strings.Join(parts, ", ")
	}
	reminder.AttachMedication(medicationInfo(record))
}

func medicationInfo(record *entity.HealthRecord) entity.MedicationInfo {
	return entity.MedicationInfo{
		ID:         record.ID,
		Name:       record.Medication.Name,
		Dosage:     record.Medication.DosageText(),
		RecordDate: record.RecordDate.Format(entity.DateLayout),
	}
}

func (u *reminderUsecase) CreateAppointmentReminder(ctx context.Context, userID uint, req *dto.CreateAppointmentReminderRequest) (*dto.ReminderResponse, error) {
	date, err := entity.ParseDate(req.ReminderDate)
	if err != nil {
		return nil, ErrInvalidReminderDate
	}

	reminder := &entity.Reminder{
		UserID:       userID,
		ReminderType: entity.ReminderAppointment,
		Title:        req.Title,
		Description:  req.Description,
		ReminderDate: date,
		ReminderTime: req.ReminderTime,
		Recurrence:   req.Recurrence,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.reminderRepo.Create(tx, reminder); err != nil {
		u.log.Warnf("Failed to create reminder: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionReminderCreate, "reminder", reminder.ID, converter.ReminderToResponse(reminder)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

// List returns one day's reminders ordered by time, today when date is empty
func (u *reminderUsecase) List(ctx context.Context, userID uint, date, reminderType string) (*dto.ReminderListResponse, error) {
	day := entity.DateOnly(u.now())
	if date != "" {
		parsed, err := entity.ParseDate(date)
		if err != nil {
			return nil, ErrInvalidReminderDate
		}
		day = parsed
	}

	reminders, err := u.reminderRepo.FindByUser(u.db.WithContext(ctx), userID, &day, reminderType, false)
	if err != nil {
		u.log.Warnf("Failed to find reminders: %+v", err)
		return nil, err
	}

	responses := converter.RemindersToResponses(reminders)
	return &dto.ReminderListResponse{Reminders: responses, Total: len(responses)}, nil
}

func (u *reminderUsecase) ListPending(ctx context.Context, userID uint) (*dto.ReminderListResponse, error) {
	reminders, err := u.reminderRepo.FindByUser(u.db.WithContext(ctx), userID, nil, "", true)
	if err != nil {
		u.log.Warnf("Failed to find pending reminders: %+v", err)
		return nil, err
	}

	responses := converter.RemindersToResponses(reminders)
	return &dto.ReminderListResponse{Reminders: responses, Total: len(responses)}, nil
}

func (u *reminderUsecase) Update(ctx context.Context, userID, reminderID uint, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reminder, err := u.reminderRepo.FindByID(tx, userID, reminderID)
	if err != nil {
		u.log.Warnf("Failed to find reminder: %+v", err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}
	old := converter.ReminderToResponse(reminder)

	if req.Title != nil {
		reminder.Title = *req.Title
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.ReminderDate != nil {
		date, err := entity.ParseDate(*req.ReminderDate)
		if err != nil {
			return nil, ErrInvalidReminderDate
		}
		reminder.ReminderDate = date
	}
	if req.ReminderTime != nil {
		reminder.ReminderTime = *req.ReminderTime
	}
	if req.Recurrence != nil {
		reminder.Recurrence = *req.Recurrence
	}
	if req.IsCompleted != nil {
		reminder.IsCompleted = *req.IsCompleted
	}
	if req.Notes != nil {
		reminder.Notes = *req.Notes
	}

	if err := u.reminderRepo.Update(tx, reminder); err != nil {
		u.log.Warnf("Failed to update reminder: %+v", err)
		return nil, err
	}

	updated := converter.ReminderToResponse(reminder)
	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionReminderUpdate, "reminder", reminder.ID, old, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return updated, nil
}

func (u *reminderUsecase) MarkCompleted(ctx context.Context, userID, reminderID uint) (*dto.ReminderResponse, error) {
	completed := true
	return u.Update(ctx, userID, reminderID, &dto.UpdateReminderRequest{IsCompleted: &completed})
}

func (u *reminderUsecase) Delete(ctx context.Context, userID, reminderID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reminder, err := u.reminderRepo.FindByID(tx, userID, reminderID)
	if err != nil {
		u.log.Warnf("Failed to find reminder: %+v", err)
		return err
	}
	if reminder == nil {
		return ErrReminderNotFound
	}

	if err := u.reminderRepo.Delete(tx, reminder); err != nil {
		u.log.Warnf("Failed to delete reminder: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionReminderDelete, "reminder", reminder.ID, converter.ReminderToResponse(reminder)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// GenerateFromMedications derives reminders for date from the user's
// medication records. The existence check is per day, so at most one
// reminder is created per day no matter how many medications there are,
// and a second call for the same day creates nothing.
func (u *reminderUsecase) GenerateFromMedications(ctx context.Context, userID uint, date string) (*dto.GenerateRemindersResponse, error) {
	now := u.now()
	day := entity.DateOnly(now)
	if date != "" {
		parsed, err := entity.ParseDate(date)
		if err != nil {
			return nil, ErrInvalidReminderDate
		}
		day = parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	records, err := u.healthRecordRepo.FindByUser(tx, userID, entity.RecordFilter{Type: entity.RecordTypeMedication})
	if err != nil {
		u.log.Warnf("Failed to find medication records: %+v", err)
		return nil, err
	}

	created := 0
	for i := range records {
		exists, err := u.reminderRepo.ExistsOnDate(tx, userID, day)
		if err != nil {
			u.log.Warnf("Failed to check reminders on date: %+v", err)
			return nil, err
		}
		if exists {
			continue
		}

		reminder := derivedReminder(userID, day, &records[i], now)
		if err := u.reminderRepo.Create(tx, reminder); err != nil {
			u.log.Warnf("Failed to create reminder: %+v", err)
			return nil, err
		}
		created++
	}

	if created > 0 {
		if err := u.auditService.LogEvent(ctx, tx, userID, entity.AuditActionReminderGenerate, entity.JSON{
			"date":    day.Format(entity.DateLayout),
			"created": created,
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	observability.RecordRemindersCreated(created)
	return &dto.GenerateRemindersResponse{Date: day.Format(entity.DateLayout), Created: created}, nil
}

func derivedReminder(userID uint, day time.Time, record *entity.HealthRecord, now time.Time) *entity.Reminder {
	m := record.Medication

	title := medicationReminderTitle
	if m.Name != "" {
		title = fmt.Sprintf("%s: %s", medicationReminderTitle, m.Name)
	}

	var parts []string
	if m.Dosage != nil && m.DosageUnit != "" {
		parts = append(parts, fmt.Sprintf("剂量: %s %s", m.Dosage.String(), m.DosageUnit))
	}
	if m.WithFood != nil && *m.WithFood {
		parts = append(parts, "请饭后服用")
	}
	description := "按医嘱服用"
	if len(parts) > 0 {
		description = strings.Join(parts, "，")
	}

	reminderTime := m.TimeTaken
	if reminderTime == "" {
		reminderTime = now.Format(entity.ClockLayout)
	}

	reminder := &entity.Reminder{
		UserID:       userID,
		ReminderType: entity.ReminderMedication,
		Title:        title,
		Description:  description,
		ReminderDate: day,
		ReminderTime: reminderTime,
	}
	reminder.AttachMedication(medicationInfo(record))
	return reminder
}
