package usecase

import (
	"sort"
	"strings"
	"time"

	"health-tracker/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// FactSource says where the rows behind an exercise or medication summary came from
type FactSource string

const (
	FactsInRange FactSource = "in_range"
	FactsHistory FactSource = "history"
	FactsSample  FactSource = "sample"
	FactsNone    FactSource = "none"
)

// ReportFacts is everything a report says, computed once. The summaries and
// the recommendations block are both rendered from it.
type ReportFacts struct {
	Start      time.Time
	End        time.Time
	Health     HealthFacts
	Diet       DietFacts
	Exercise   ExerciseFacts
	Medication MedicationFacts
}

// HealthFacts averages ignore missing and zero readings
type HealthFacts struct {
	Records       int
	Weights       []float64 // chronological
	AvgWeight     float64
	AvgSystolic   float64
	AvgDiastolic  float64
	AvgHeartRate  float64
	AvgBloodSugar float64
	AvgSleep      float64
	AvgSteps      float64
}

type DietFacts struct {
	Records       int
	Days          int
	TotalCalories float64
	MealCounts    map[string]int
}

type NameCount struct {
	Name  string
	Count int
}

type ExerciseFacts struct {
	Source        FactSource
	TotalMinutes  int
	TotalCalories float64
	ActiveDays    int
	Types         []NameCount // most frequent first
}

func (f ExerciseFacts) HasData() bool {
	return f.Source != FactsNone
}

// AvgDailyMinutes averages over days with at least one session
func (f ExerciseFacts) AvgDailyMinutes() float64 {
	if f.ActiveDays == 0 {
		return 0
	}
	return float64(f.TotalMinutes) / float64(f.ActiveDays)
}

func (f ExerciseFacts) AvgDailyCalories() float64 {
	if f.ActiveDays == 0 {
		return 0
	}
	return f.TotalCalories / float64(f.ActiveDays)
}

type MedicationStat struct {
	Name  string
	Count int
	// AvgEffectiveness is zero when no dose was rated
	AvgEffectiveness float64
}

type MedicationFacts struct {
	Source      FactSource
	Medications []MedicationStat // most frequent first
}

func (f MedicationFacts) HasData() bool {
	return f.Source != FactsNone
}

func averageOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func appendPositive(values []float64, v *float64) []float64 {
	if v != nil && *v > 0 {
		return append(values, *v)
	}
	return values
}

func appendPositiveInt(values []float64, v *int) []float64 {
	if v != nil && *v > 0 {
		return append(values, float64(*v))
	}
	return values
}

// healthFacts expects records in chronological order
func healthFacts(records []entity.HealthRecord) HealthFacts {
	var systolic, diastolic, heartRate, bloodSugar, sleep, steps []float64
	f := HealthFacts{}
	for _, r := range records {
		if r.Type != entity.RecordTypeHealth {
			continue
		}
		f.Records++
		h := r.Health
		f.Weights = appendPositive(f.Weights, h.Weight)
		systolic = appendPositiveInt(systolic, h.BloodPressureSystolic)
		diastolic = appendPositiveInt(diastolic, h.BloodPressureDiastolic)
		heartRate = appendPositiveInt(heartRate, h.HeartRate)
		bloodSugar = appendPositive(bloodSugar, h.BloodSugar)
		sleep = appendPositive(sleep, h.SleepHours)
		steps = appendPositiveInt(steps, h.Steps)
	}
	f.AvgWeight = averageOf(f.Weights)
	f.AvgSystolic = averageOf(systolic)
	f.AvgDiastolic = averageOf(diastolic)
	f.AvgHeartRate = averageOf(heartRate)
	f.AvgBloodSugar = averageOf(bloodSugar)
	f.AvgSleep = averageOf(sleep)
	f.AvgSteps = averageOf(steps)
	return f
}

// dietFacts counts meals per type and sums the recorded meal totals over a window of days
func dietFacts(records []entity.DietRecord, days int) DietFacts {
	f := DietFacts{
		Records:    len(records),
		Days:       days,
		MealCounts: map[string]int{},
	}
	for _, r := range records {
		if r.TotalCalories != nil {
			f.TotalCalories += *r.TotalCalories
		}
		meal := strings.ToLower(r.MealType)
		switch meal {
		case entity.MealBreakfast, entity.MealLunch, entity.MealDinner, entity.MealSnack:
			f.MealCounts[meal]++
		}
	}
	return f
}

func inWindow(records []entity.HealthRecord, start, end time.Time) []entity.HealthRecord {
	var out []entity.HealthRecord
	for _, r := range records {
		d := entity.DateOnly(r.RecordDate)
		if !d.Before(start) && !d.After(end) {
			out = append(out, r)
		}
	}
	return out
}

// pickSource prefers in-window rows, then the whole history, then the
// example rows when allowed.
func pickSource(history []entity.HealthRecord, start, end time.Time, sample func() []entity.HealthRecord) (FactSource, []entity.HealthRecord) {
	if rows := inWindow(history, start, end); len(rows) > 0 {
		return FactsInRange, rows
	}
	if len(history) > 0 {
		return FactsHistory, history
	}
	if sample != nil {
		return FactsSample, sample()
	}
	return FactsNone, nil
}

// countNames keeps first-seen order among equal counts
func countNames(names []string) []NameCount {
	var out []NameCount
	index := map[string]int{}
	for _, n := range names {
		i, ok := index[n]
		if !ok {
			i = len(out)
			index[n] = i
			out = append(out, NameCount{Name: n})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	return out
}

// exerciseFacts summarizes exercise rows from history, which must be chronological.
// A nil sample func means example data is disabled.
func exerciseFacts(history []entity.HealthRecord, start, end time.Time, sample func() []entity.HealthRecord) ExerciseFacts {
	source, rows := pickSource(history, start, end, sample)
	f := ExerciseFacts{Source: source}

	days := map[string]struct{}{}
	var names []string
	for _, r := range rows {
		e := r.Exercise
		if e.Duration != nil {
			f.TotalMinutes += *e.Duration
		}
		if e.CaloriesBurned != nil {
			f.TotalCalories += *e.CaloriesBurned
		}
		name := e.ExerciseType
		if name == "" {
			name = "未知"
		}
		names = append(names, name)
		days[entity.DateOnly(r.RecordDate).Format(entity.DateLayout)] = struct{}{}
	}
	f.ActiveDays = len(days)
	f.Types = countNames(names)
	return f
}

func medicationFacts(history []entity.HealthRecord, start, end time.Time, sample func() []entity.HealthRecord) MedicationFacts {
	source, rows := pickSource(history, start, end, sample)
	f := MedicationFacts{Source: source}

	var names []string
	ratingSum := map[string]int{}
	ratingCount := map[string]int{}
	for _, r := range rows {
		m := r.Medication
		name := m.Name
		if name == "" {
			name = "未知药物"
		}
		names = append(names, name)
		if m.Effectiveness != nil && *m.Effectiveness > 0 {
			ratingSum[name] += *m.Effectiveness
			ratingCount[name]++
		}
	}
	for _, nc := range countNames(names) {
		stat := MedicationStat{Name: nc.Name, Count: nc.Count}
		if n := ratingCount[nc.Name]; n > 0 {
			stat.AvgEffectiveness = float64(ratingSum[nc.Name]) / float64(n)
		}
		f.Medications = append(f.Medications, stat)
	}
	return f
}

// sampleExercises are example rows shown when a user has never logged exercise.
// They are never persisted.
func sampleExercises(now time.Time) []entity.HealthRecord {
	today := entity.DateOnly(now)
	row := func(daysAgo int, name string, minutes int, calories float64, intensity string) entity.HealthRecord {
		return entity.HealthRecord{
			RecordDate: today.AddDate(0, 0, -daysAgo),
			Type:       entity.RecordTypeExercise,
			Exercise: &entity.ExerciseDetails{
				ExerciseType:   name,
				Duration:       &minutes,
				CaloriesBurned: &calories,
				Intensity:      intensity,
			},
		}
	}
	return []entity.HealthRecord{
		row(1, "力量训练", 120, 1330, "高"),
		row(3, "游泳", 160, 1300, "中"),
		row(5, "普拉提", 150, 400, "中"),
	}
}

func sampleMedications(now time.Time) []entity.HealthRecord {
	today := entity.DateOnly(now)
	row := func(daysAgo int, name, unit string, effectiveness int) entity.HealthRecord {
		dose := decimal.NewFromInt(1)
		return entity.HealthRecord{
			RecordDate: today.AddDate(0, 0, -daysAgo),
			Type:       entity.RecordTypeMedication,
			Medication: &entity.MedicationDetails{
				Name:          name,
				Dosage:        &dose,
				DosageUnit:    unit,
				Effectiveness: &effectiveness,
			},
		}
	}
	return []entity.HealthRecord{
		row(1, "复方感冒药", "片", 3),
		row(3, "维生素C", "粒", 4),
		row(5, "布洛芬", "片", 5),
	}
}

// chronological returns a copy of newest-first rows in ascending date order
func chronological(records []entity.HealthRecord) []entity.HealthRecord {
	out := make([]entity.HealthRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}
