package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultChartDays = 7
	maxChartDays     = 90
	// kcal per gram assumed for diet records that state no calories
	dietKcalPerGram = 1.5

	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

// DashboardUsecase serves the read-only widgets of the landing page
type DashboardUsecase interface {
	ChartData(ctx context.Context, userID uint, days int) (*dto.ChartDataResponse, error)
	RecentRecords(ctx context.Context, userID uint, limit int) ([]dto.RecentRecordResponse, error)
}

type dashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	healthRecordRepo repository.HealthRecordRepository
	sampleData       bool
	now              func() time.Time
}

// NewDashboardUsecase builds the usecase. sampleData fills an all-empty chart
// with demo values.
func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	healthRecordRepo repository.HealthRecordRepository,
	sampleData bool,
) DashboardUsecase {
	return &dashboardUsecase{
		db:               db,
		log:              log,
		healthRecordRepo: healthRecordRepo,
		sampleData:       sampleData,
		now:              time.Now,
	}
}

// ChartData sums diet intake, exercise burn and water per day over the last
// days days, today included.
func (u *dashboardUsecase) ChartData(ctx context.Context, userID uint, days int) (*dto.ChartDataResponse, error) {
	if days <= 0 {
		days = defaultChartDays
	}
	if days > maxChartDays {
		days = maxChartDays
	}
	end := entity.DateOnly(u.now())
	start := end.AddDate(0, 0, -(days - 1))

	records, err := u.healthRecordRepo.FindByUser(u.db.WithContext(ctx), userID, entity.RecordFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		u.log.Warnf("Failed to find health records: %+v", err)
		return nil, err
	}

	diet := make([]float64, days)
	exercise := make([]float64, days)
	water := make([]float64, days)
	for _, r := range records {
		idx := entity.DaysInclusive(start, r.RecordDate) - 1
		if idx < 0 || idx >= days {
			continue
		}
		switch r.Type {
		case entity.RecordTypeDiet:
			diet[idx] += dietCalories(r.Diet)
		case entity.RecordTypeExercise:
			if r.Exercise.CaloriesBurned != nil {
				exercise[idx] += *r.Exercise.CaloriesBurned
			}
		case entity.RecordTypeWater:
			water[idx] += r.Water.Amount / 100
		}
	}

	chart := &dto.ChartDataResponse{
		Labels:           make([]string, days),
		DietCalories:     make([]int, days),
		ExerciseCalories: make([]int, days),
		WaterIntake:      make([]int, days),
	}
	empty := true
	for i := 0; i < days; i++ {
		chart.Labels[i] = start.AddDate(0, 0, i).Format("01-02")
		chart.DietCalories[i] = int(math.Round(diet[i]))
		chart.ExerciseCalories[i] = int(math.Round(exercise[i]))
		chart.WaterIntake[i] = int(math.Round(water[i]))
		if chart.DietCalories[i] != 0 || chart.ExerciseCalories[i] != 0 || chart.WaterIntake[i] != 0 {
			empty = false
		}
	}

	if empty && u.sampleData {
		for i := 0; i < days; i++ {
			chart.DietCalories[i] = 1500 + (i*100)%500
			chart.ExerciseCalories[i] = 300 + (i*50)%200
			chart.WaterIntake[i] = 20 + (i*5)%15
		}
		chart.Sample = true
	}
	return chart, nil
}

// dietCalories prefers the stated calories over the per-gram estimate
func dietCalories(d *entity.DietDetails) float64 {
	if d.Calories != nil {
		return *d.Calories
	}
	if d.FoodAmount != nil {
		return *d.FoodAmount * dietKcalPerGram
	}
	return 0
}

func (u *dashboardUsecase) RecentRecords(ctx context.Context, userID uint, limit int) ([]dto.RecentRecordResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	records, err := u.healthRecordRepo.FindRecent(u.db.WithContext(ctx), userID, limit)
	if err != nil {
		u.log.Warnf("Failed to find recent records: %+v", err)
		return nil, err
	}

	responses := make([]dto.RecentRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, recentRecord(&records[i]))
	}
	return responses, nil
}

func recentRecord(r *entity.HealthRecord) dto.RecentRecordResponse {
	resp := dto.RecentRecordResponse{
		ID:   r.ID,
		Type: string(r.Type),
		Date: r.RecordDate.Format(entity.DateLayout),
	}

	switch r.Type {
	case entity.RecordTypeHealth:
		m := r.Health
		resp.Title = "健康记录"
		resp.Summary = fmt.Sprintf("体重: %skg, 血压: %s/%s mmHg",
			floatOrDash(m.Weight), intOrDash(m.BloodPressureSystolic), intOrDash(m.BloodPressureDiastolic))
	case entity.RecordTypeDiet:
		d := r.Diet
		resp.Title = textOr(d.MealType, "饮食") + "记录"
		resp.Summary = fmt.Sprintf("食物: %s, 数量: %sg", textOr(d.FoodName, "-"), floatOrDash(d.FoodAmount))
	case entity.RecordTypeExercise:
		e := r.Exercise
		resp.Title = textOr(e.ExerciseType, "运动") + "记录"
		resp.Summary = fmt.Sprintf("类型: %s, 时长: %s分钟", textOr(e.ExerciseType, "-"), intOrDash(e.Duration))
	case entity.RecordTypeWater:
		resp.Title = "饮水记录"
		resp.Summary = fmt.Sprintf("饮水量: %s毫升", strconv.FormatFloat(r.Water.Amount, 'f', -1, 64))
	case entity.RecordTypeMedication:
		m := r.Medication
		dosage := "-"
		if m.Dosage != nil {
			dosage = m.Dosage.String()
		}
		resp.Title = textOr(m.Name, "服药") + "记录"
		resp.Summary = fmt.Sprintf("药物: %s, 剂量: %s%s", textOr(m.Name, "-"), dosage, m.DosageUnit)
	}
	return resp
}

func textOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func floatOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
