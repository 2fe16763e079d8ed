package usecase

import (
	"context"
	"errors"
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
	ErrReportNotFound         = errors.New("health report not found")
	ErrReportGenerationFailed = errors.New("failed to generate health report")
)

const (
	reportListLimit = 10
	maxReportDays   = 365
)

type HealthReportUsecase interface {
	Generate(ctx context.Context, userID uint, req *dto.GenerateReportRequest) (*dto.HealthReportResponse, error)
	List(ctx context.Context, userID uint) (*dto.HealthReportListResponse, error)
	Get(ctx context.Context, userID, reportID uint) (*dto.HealthReportResponse, error)
	Delete(ctx context.Context, userID, reportID uint) error
}

type healthReportUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	reportRepo       repository.HealthReportRepository
	healthRecordRepo repository.HealthRecordRepository
	dietRecordRepo   repository.DietRecordRepository
	auditService     service.AuditService
	sampleData       bool
	now              func() time.Time
}

// NewHealthReportUsecase builds the report generator. With sampleData set,
// users without any exercise or medication history get example rows in
// those summaries instead of the insufficient-data text.
func NewHealthReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.HealthReportRepository,
	healthRecordRepo repository.HealthRecordRepository,
	dietRecordRepo repository.DietRecordRepository,
	auditService service.AuditService,
	sampleData bool,
) HealthReportUsecase {
	return &healthReportUsecase{
		db:               db,
		log:              log,
		reportRepo:       reportRepo,
		healthRecordRepo: healthRecordRepo,
		dietRecordRepo:   dietRecordRepo,
		auditService:     auditService,
		sampleData:       sampleData,
		now:              time.Now,
	}
}

// Generate treats a nil request as the default weekly report
func (u *healthReportUsecase) Generate(ctx context.Context, userID uint, req *dto.GenerateReportRequest) (*dto.HealthReportResponse, error) {
	if req == nil {
		req = &dto.GenerateReportRequest{}
	}
	now := u.now()
	reportType, start, end := reportWindow(req.ReportType, req.StartDate, req.EndDate, now)

	facts, err := u.collectFacts(u.db.WithContext(ctx), userID, start, end, now)
	if err != nil {
		u.log.WithFields(logrus.Fields{"user_id": userID, "operation": "generate_report"}).
			Errorf("Failed to collect report data: %+v", err)
		return nil, ErrReportGenerationFailed
	}

	report := &entity.HealthReport{
		UserID:            userID,
		Title:             reportTitle(reportType, facts),
		ReportType:        reportType,
		StartDate:         start,
		EndDate:           end,
		HealthSummary:     renderHealthSummary(facts),
		DietSummary:       renderDietSummary(facts),
		ExerciseSummary:   renderExerciseSummary(facts),
		MedicationSummary: renderMedicationSummary(facts),
		Recommendations:   renderRecommendations(facts),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.reportRepo.Create(tx, report); err != nil {
		u.log.Warnf("Failed to create health report: %+v", err)
		return nil, ErrReportGenerationFailed
	}

	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionReportGenerate, "health_report", report.ID, map[string]interface{}{
		"report_type": report.ReportType,
		"start_date":  start.Format(entity.DateLayout),
		"end_date":    end.Format(entity.DateLayout),
	}); err != nil {
		return nil, ErrReportGenerationFailed
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrReportGenerationFailed
	}

	observability.RecordReportGenerated(reportType)
	return converter.HealthReportToResponse(report), nil
}

// reportWindow resolves the report type and date range. Unknown types become
// weekly; when either date is missing or malformed the range is derived from
// the type: week, month or year to date, or the last seven days for custom.
func reportWindow(reportType, startDate, endDate string, now time.Time) (string, time.Time, time.Time) {
	switch reportType {
	case entity.ReportWeekly, entity.ReportMonthly, entity.ReportYearly, entity.ReportCustom:
	default:
		reportType = entity.ReportWeekly
	}

	start, startErr := entity.ParseDate(startDate)
	end, endErr := entity.ParseDate(endDate)
	if startErr != nil || endErr != nil {
		today := entity.DateOnly(now)
		end = today
		switch reportType {
		case entity.ReportWeekly:
			// Go weeks start on Sunday; reports start on Monday
			sinceMonday := (int(today.Weekday()) + 6) % 7
			start = today.AddDate(0, 0, -sinceMonday)
		case entity.ReportMonthly:
			start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		case entity.ReportYearly:
			start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		default:
			start = today.AddDate(0, 0, -6)
		}
	}

	if start.After(end) {
		start, end = end, start
	}
	if end.Sub(start) > maxReportDays*24*time.Hour {
		start = end.AddDate(0, 0, -maxReportDays)
	}
	return reportType, start, end
}

func (u *healthReportUsecase) collectFacts(db *gorm.DB, userID uint, start, end, now time.Time) (ReportFacts, error) {
	facts := ReportFacts{Start: start, End: end}

	healthRows, err := u.healthRecordRepo.FindByUser(db, userID, entity.RecordFilter{
		Type:      entity.RecordTypeHealth,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return facts, err
	}
	facts.Health = healthFacts(chronological(healthRows))

	dietRecords, err := u.dietRecordRepo.FindByUser(db, userID, &start, &end, "")
	if err != nil {
		return facts, err
	}
	facts.Diet = dietFacts(dietRecords, entity.DaysInclusive(start, end))

	exerciseRows, err := u.healthRecordRepo.FindByUser(db, userID, entity.RecordFilter{Type: entity.RecordTypeExercise})
	if err != nil {
		return facts, err
	}
	facts.Exercise = exerciseFacts(chronological(exerciseRows), start, end, u.sampleRows(sampleExercises, now))

	medicationRows, err := u.healthRecordRepo.FindByUser(db, userID, entity.RecordFilter{Type: entity.RecordTypeMedication})
	if err != nil {
		return facts, err
	}
	facts.Medication = medicationFacts(chronological(medicationRows), start, end, u.sampleRows(sampleMedications, now))

	return facts, nil
}

func (u *healthReportUsecase) sampleRows(build func(time.Time) []entity.HealthRecord, now time.Time) func() []entity.HealthRecord {
	if !u.sampleData {
		return nil
	}
	return func() []entity.HealthRecord { return build(now) }
}

func (u *healthReportUsecase) List(ctx context.Context, userID uint) (*dto.HealthReportListResponse, error) {
	reports, err := u.reportRepo.FindLatestByUser(u.db.WithContext(ctx), userID, reportListLimit)
	if err != nil {
		u.log.Warnf("Failed to find health reports: %+v", err)
		return nil, err
	}

	responses := converter.HealthReportsToResponses(reports)
	return &dto.HealthReportListResponse{Reports: responses, Total: len(responses)}, nil
}

func (u *healthReportUsecase) Get(ctx context.Context, userID, reportID uint) (*dto.HealthReportResponse, error) {
	report, err := u.reportRepo.FindByID(u.db.WithContext(ctx), userID, reportID)
	if err != nil {
		u.log.Warnf("Failed to find health report: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return converter.HealthReportToResponse(report), nil
}

func (u *healthReportUsecase) Delete(ctx context.Context, userID, reportID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	report, err := u.reportRepo.FindByID(tx, userID, reportID)
	if err != nil {
		u.log.Warnf("Failed to find health report: %+v", err)
		return err
	}
	if report == nil {
		return ErrReportNotFound
	}

	if err := u.reportRepo.Delete(tx, report); err != nil {
		u.log.Warnf("Failed to delete health report: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionReportDelete, "health_report", report.ID, report.Title); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
