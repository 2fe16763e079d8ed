package usecase

import (
	"fmt"
	"math"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

// Exercise categories shown in recommendations, in display order
var planCategories = []string{
	entity.CategoryCardio,
	entity.CategoryStrength,
	entity.CategoryFlexibility,
	entity.CategoryOther,
}

var weekdays = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// exerciseSession is one logged workout regardless of which table it came from
type exerciseSession struct {
	Name     string
	Category string
	Duration float64
}

// exerciseSnapshot is the current-status part of a recommendation
type exerciseSnapshot struct {
	avgDuration    float64
	used           map[string]*dto.ExerciseUsage
	hasCardio      bool
	hasStrength    bool
	hasFlexibility bool
}

// summarizeSessions averages duration over the whole window, not over active days
func summarizeSessions(sessions []exerciseSession, days int) exerciseSnapshot {
	snap := exerciseSnapshot{used: map[string]*dto.ExerciseUsage{}}
	var total float64
	for _, s := range sessions {
		total += s.Duration

		name := s.Name
		if name == "" {
			name = "未知运动"
		}
		category := s.Category
		if category == "" {
			category = entity.CategoryOther
		}
		usage, ok := snap.used[name]
		if !ok {
			usage = &dto.ExerciseUsage{Category: category}
			snap.used[name] = usage
		}
		usage.Count++
		usage.Duration += s.Duration

		switch category {
		case entity.CategoryCardio:
			snap.hasCardio = true
		case entity.CategoryStrength:
			snap.hasStrength = true
		case entity.CategoryFlexibility:
			snap.hasFlexibility = true
		}
	}
	if days > 0 {
		snap.avgDuration = total / float64(days)
	}
	return snap
}

// assumedWalking is the baseline used when a user logs health data but no
// exercise: 30 minutes of walking per record.
func assumedWalking(records int) exerciseSnapshot {
	return exerciseSnapshot{
		avgDuration: 30,
		hasCardio:   true,
		used: map[string]*dto.ExerciseUsage{
			"步行": {Count: records, Duration: float64(30 * records), Category: entity.CategoryCardio},
		},
	}
}

// groupExerciseTypes buckets the catalog into the plan categories; unknown
// categories land in 其他.
func groupExerciseTypes(types []entity.ExerciseType) map[string][]dto.ExerciseTypeBrief {
	grouped := make(map[string][]dto.ExerciseTypeBrief, len(planCategories))
	for _, c := range planCategories {
		grouped[c] = []dto.ExerciseTypeBrief{}
	}
	for _, t := range types {
		category := t.Category
		if _, ok := grouped[category]; !ok {
			category = entity.CategoryOther
		}
		grouped[category] = append(grouped[category], dto.ExerciseTypeBrief{
			ID:              t.ID,
			Name:            t.Name,
			CaloriesPerHour: t.CaloriesPerHour,
		})
	}
	return grouped
}

func firstN(types []dto.ExerciseTypeBrief, n int) []dto.ExerciseTypeBrief {
	if len(types) < n {
		n = len(types)
	}
	out := make([]dto.ExerciseTypeBrief, n)
	copy(out, types[:n])
	return out
}

func durationAdvice(avg float64) dto.ExerciseAdvice {
	switch {
	case avg < 30:
		return dto.ExerciseAdvice{
			Type:     "duration",
			Severity: "high",
			Message:  "您的每日平均运动时间不足30分钟，低于世界卫生组织推荐的每日至少30分钟中等强度活动。建议逐步增加运动时间，达到每天至少30-60分钟。",
		}
	case avg < 60:
		return dto.ExerciseAdvice{
			Type:     "duration",
			Severity: "medium",
			Message:  fmt.Sprintf("您的每日平均运动时间为%.0f分钟，已达到基本健康标准，但对于体重管理或提高健康水平，建议增加到每天60分钟。", avg),
		}
	default:
		return dto.ExerciseAdvice{
			Type:     "duration",
			Severity: "low",
			Message:  fmt.Sprintf("您的每日平均运动时间为%.0f分钟，达到了良好的活动水平，有助于维持健康和预防慢性疾病。", avg),
		}
	}
}

func varietyAdvice(snap exerciseSnapshot, available map[string][]dto.ExerciseTypeBrief) []dto.ExerciseAdvice {
	var advice []dto.ExerciseAdvice
	if !snap.hasCardio {
		advice = append(advice, dto.ExerciseAdvice{
			Type:        "variety",
			Category:    entity.CategoryCardio,
			Severity:    "high",
			Message:     "您的运动计划中缺少有氧运动，这类运动有助于提高心肺功能和燃烧卡路里。建议每周进行至少150分钟中等强度有氧运动。",
			Suggestions: firstN(available[entity.CategoryCardio], 3),
		})
	}
	if !snap.hasStrength {
		advice = append(advice, dto.ExerciseAdvice{
			Type:        "variety",
			Category:    entity.CategoryStrength,
			Severity:    "medium",
			Message:     "您的运动计划中缺少力量训练，这类运动有助于增强肌肉力量、提高代谢率和改善体态。建议每周进行2-3次力量训练。",
			Suggestions: firstN(available[entity.CategoryStrength], 3),
		})
	}
	if !snap.hasFlexibility {
		advice = append(advice, dto.ExerciseAdvice{
			Type:        "variety",
			Category:    entity.CategoryFlexibility,
			Severity:    "low",
			Message:     "您的运动计划中缺少柔韧性训练，这类运动有助于提高关节活动范围、预防伤害和减轻肌肉紧张。建议每周进行2-3次柔韧性训练，如瑜伽或拉伸。",
			Suggestions: firstN(available[entity.CategoryFlexibility], 3),
		})
	}
	return advice
}

// calorieAdvice reacts to a surplus or deficit beyond 300 kcal per day
func calorieAdvice(surplus float64, available map[string][]dto.ExerciseTypeBrief) (dto.ExerciseAdvice, bool) {
	switch {
	case surplus > 300:
		var intense []dto.ExerciseTypeBrief
		for _, t := range available[entity.CategoryCardio] {
			if t.CaloriesPerHour > 400 {
				intense = append(intense, t)
			}
		}
		return dto.ExerciseAdvice{
			Type:        "calorie_balance",
			Severity:    "high",
			Message:     fmt.Sprintf("您的每日平均卡路里摄入超出消耗约%.0f卡路里，可能导致体重增加。建议增加高强度有氧运动，如HIIT训练、跑步或游泳，帮助燃烧额外卡路里。", surplus),
			Suggestions: firstN(intense, 3),
		}, true
	case surplus < -300:
		return dto.ExerciseAdvice{
			Type:     "calorie_balance",
			Severity: "medium",
			Message:  fmt.Sprintf("您的每日平均卡路里摄入低于消耗约%.0f卡路里，可能导致能量不足。如果您的目标是减重，请确保赤字不要过大；如果不是，建议适当增加食物摄入，尤其是在运动前后。", math.Abs(surplus)),
		}, true
	}
	return dto.ExerciseAdvice{}, false
}

// weeklyTarget returns the recommended minutes per week for the current average
func weeklyTarget(avg float64) int {
	switch {
	case avg < 30:
		return 210
	case avg < 60:
		return 300
	default:
		return 420
	}
}

// weeklyPlan splits the weekly target 50/30/20 over cardio, strength and
// flexibility. Cardio runs on Mon/Wed/Fri/Sun, strength on Tue/Thu/Sat and
// flexibility every day; a category without catalog entries is left out.
func weeklyPlan(avg float64, available map[string][]dto.ExerciseTypeBrief) []dto.PlanDay {
	target := float64(weeklyTarget(avg))
	cardioDays := map[int]bool{0: true, 2: true, 4: true, 6: true}
	strengthDays := map[int]bool{1: true, 3: true, 5: true}

	cardioPerDay := int(target*0.5) / len(cardioDays)
	strengthPerDay := int(target*0.3) / len(strengthDays)
	flexibilityPerDay := int(target*0.2) / len(weekdays)

	plan := make([]dto.PlanDay, 0, len(weekdays))
	for i, day := range weekdays {
		dayPlan := dto.PlanDay{Day: day, Activities: []dto.PlanActivity{}}
		if cardioDays[i] && len(available[entity.CategoryCardio]) > 0 {
			dayPlan.Activities = append(dayPlan.Activities, dto.PlanActivity{
				Category:    entity.CategoryCardio,
				Duration:    cardioPerDay,
				Suggestions: firstN(available[entity.CategoryCardio], 2),
			})
		}
		if strengthDays[i] && len(available[entity.CategoryStrength]) > 0 {
			dayPlan.Activities = append(dayPlan.Activities, dto.PlanActivity{
				Category:    entity.CategoryStrength,
				Duration:    strengthPerDay,
				Suggestions: firstN(available[entity.CategoryStrength], 2),
			})
		}
		if len(available[entity.CategoryFlexibility]) > 0 {
			dayPlan.Activities = append(dayPlan.Activities, dto.PlanActivity{
				Category:    entity.CategoryFlexibility,
				Duration:    flexibilityPerDay,
				Suggestions: firstN(available[entity.CategoryFlexibility], 1),
			})
		}
		plan = append(plan, dayPlan)
	}
	return plan
}

// exerciseAdvice assembles duration, variety and, when surplus is set, calorie advice
func exerciseAdvice(snap exerciseSnapshot, surplus *float64, available map[string][]dto.ExerciseTypeBrief) []dto.ExerciseAdvice {
	advice := []dto.ExerciseAdvice{durationAdvice(snap.avgDuration)}
	advice = append(advice, varietyAdvice(snap, available)...)
	if surplus != nil {
		if a, ok := calorieAdvice(*surplus, available); ok {
			advice = append(advice, a)
		}
	}
	return advice
}
