package usecase

import (
	"fmt"
	"math"
	"strings"

	"health-tracker/internal/domain/entity"
)

const (
	noHealthData     = "在所选时间段内没有健康记录数据。"
	noDietData       = "在所选时间段内没有饮食记录数据。"
	noExerciseData   = "在所选时间段内没有运动记录数据。建议记录您的运动情况，以便跟踪健身进度。"
	noMedicationData = "在所选时间段内没有用药记录数据。如果您正在服用药物，建议记录用药情况以便追踪效果。"
)

var mealOrder = []string{entity.MealBreakfast, entity.MealLunch, entity.MealDinner, entity.MealSnack}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func reportTitle(reportType string, f ReportFacts) string {
	return fmt.Sprintf("%s 健康报告 (%s 至 %s)", capitalize(reportType),
		f.Start.Format(entity.DateLayout), f.End.Format(entity.DateLayout))
}

func renderHealthSummary(f ReportFacts) string {
	h := f.Health
	if h.Records == 0 {
		return noHealthData
	}

	var b strings.Builder
	fmt.Fprintf(&b, "健康记录数据摘要（%s 至 %s)：\n\n", f.Start.Format(entity.DateLayout), f.End.Format(entity.DateLayout))
	if h.AvgWeight > 0 {
		fmt.Fprintf(&b, "平均体重: %.1f kg\n", h.AvgWeight)
		if n := len(h.Weights); n > 1 {
			first, last := h.Weights[0], h.Weights[n-1]
			switch {
			case last > first:
				fmt.Fprintf(&b, "体重从 %.1f kg 上升到 %.1f kg\n", first, last)
			case last < first:
				fmt.Fprintf(&b, "体重从 %.1f kg 下降到 %.1f kg\n", first, last)
			}
		}
	}
	if h.AvgSystolic > 0 && h.AvgDiastolic > 0 {
		fmt.Fprintf(&b, "平均血压: %.0f/%.0f mmHg\n", h.AvgSystolic, h.AvgDiastolic)
	}
	if h.AvgHeartRate > 0 {
		fmt.Fprintf(&b, "平均心率: %.0f 次/分钟\n", h.AvgHeartRate)
	}
	if h.AvgBloodSugar > 0 {
		fmt.Fprintf(&b, "平均血糖: %.1f mmol/L\n", h.AvgBloodSugar)
	}
	if h.AvgSleep > 0 {
		fmt.Fprintf(&b, "平均睡眠时间: %.1f 小时/天\n", h.AvgSleep)
	}
	if h.AvgSteps > 0 {
		fmt.Fprintf(&b, "平均步数: %.0f 步/天\n", h.AvgSteps)
	}
	return b.String()
}

func renderDietSummary(f ReportFacts) string {
	d := f.Diet
	if d.Records == 0 {
		return noDietData
	}

	var b strings.Builder
	fmt.Fprintf(&b, "饮食记录数据摘要（%s 至 %s)：\n\n", f.Start.Format(entity.DateLayout), f.End.Format(entity.DateLayout))
	if d.Days > 0 && d.TotalCalories > 0 {
		fmt.Fprintf(&b, "平均每日摄入热量: %.0f 大卡\n", d.TotalCalories/float64(d.Days))
	}

	b.WriteString("\n餐次记录情况：\n")
	for _, meal := range mealOrder {
		count := d.MealCounts[meal]
		if count == 0 || d.Days == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: 记录了 %d 天 (%.0f%%)\n", capitalize(meal), count, float64(count)/float64(d.Days)*100)
	}

	b.WriteString("\n饮食建议:\n")
	b.WriteString("1. 保持均衡饮食，每天摄入适量的蛋白质、碳水化合物和健康脂肪\n")
	b.WriteString("2. 增加蔬菜和水果的摄入，确保足够的维生素和矿物质\n")
	b.WriteString("3. 控制盐分和糖分的摄入，避免过度加工的食品\n")
	b.WriteString("4. 保持规律的进餐时间，避免暴饮暴食和长时间不进食\n")
	return b.String()
}

// sourceHeader writes the title and, for substituted data, the notice explaining it
func sourceHeader(b *strings.Builder, f ReportFacts, source FactSource, label, sampleNotice string) {
	start, end := f.Start.Format(entity.DateLayout), f.End.Format(entity.DateLayout)
	switch source {
	case FactsInRange:
		fmt.Fprintf(b, "%s记录数据摘要（%s 至 %s）：\n\n", label, start, end)
	case FactsHistory:
		fmt.Fprintf(b, "%s记录数据摘要（包含所有历史记录）：\n\n", label)
		fmt.Fprintf(b, "注意: 在%s至%s期间没有找到%s记录，正在显示所有历史记录。\n\n", start, end, label)
	case FactsSample:
		fmt.Fprintf(b, "%s记录数据摘要（示例数据）：\n\n", label)
		b.WriteString(sampleNotice)
	}
}

func renderExerciseSummary(f ReportFacts) string {
	e := f.Exercise
	if !e.HasData() {
		return noExerciseData
	}

	var b strings.Builder
	sourceHeader(&b, f, e.Source, "运动", "注意: 未找到您的运动记录，以下为示例数据。建议在添加记录页面添加运动记录。\n\n")

	avg := e.AvgDailyMinutes()
	if e.ActiveDays > 0 {
		fmt.Fprintf(&b, "总运动时间: %d 分钟\n", e.TotalMinutes)
		fmt.Fprintf(&b, "平均每日运动时间: %.0f 分钟（实际运动天数: %d天）\n", avg, e.ActiveDays)
		fmt.Fprintf(&b, "总消耗热量: %.0f 大卡\n", e.TotalCalories)
		fmt.Fprintf(&b, "平均每日消耗热量: %.0f 大卡\n", e.AvgDailyCalories())
	}

	b.WriteString("\n运动类型统计：\n")
	for _, t := range e.Types {
		fmt.Fprintf(&b, "%s: %d 次\n", t.Name, t.Count)
	}

	b.WriteString("\n运动建议：\n")
	if avg < 30 {
		b.WriteString("- 您的运动时间较少，建议增加日常运动量，每天至少进行30分钟中等强度的有氧运动\n")
	} else {
		b.WriteString("- 您保持了良好的运动习惯，请继续保持！\n")
	}
	b.WriteString("- 尝试多样化您的运动类型，结合有氧运动、力量训练和灵活性训练\n")
	b.WriteString("- 记得运动前充分热身，运动后适当拉伸，避免运动损伤\n")
	return b.String()
}

func renderMedicationSummary(f ReportFacts) string {
	m := f.Medication
	if !m.HasData() {
		return noMedicationData
	}

	var b strings.Builder
	sourceHeader(&b, f, m.Source, "用药", "注意: 未找到您的用药记录，以下为示例数据。如果您正在服用药物，建议记录您的用药情况。\n\n")

	b.WriteString("服用药物统计：\n")
	for _, med := range m.Medications {
		fmt.Fprintf(&b, "%s: 服用 %d 次", med.Name, med.Count)
		if med.AvgEffectiveness > 0 {
			fmt.Fprintf(&b, ", 平均效果评分: %.1f/5", med.AvgEffectiveness)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n用药建议：\n")
	b.WriteString("- 请严格按照医生的处方用药，遵守剂量和服用时间\n")
	b.WriteString("- 保持定期复诊，及时调整用药方案\n")
	b.WriteString("- 如果出现不适或副作用，请立即咨询医生\n")
	b.WriteString("- 使用药物提醒功能，避免漏服或重复服药\n")
	return b.String()
}

// Exercise names that count towards each category in the recommendations block
var (
	cardioNames      = map[string]bool{"跑步": true, "慢跑": true, "快走": true, "游泳": true, "骑车": true, "有氧": true}
	strengthNames    = map[string]bool{"力量": true, "举重": true, "健身": true, "俯卧撑": true, "仰卧起坐": true}
	flexibilityNames = map[string]bool{"瑜伽": true, "拉伸": true, "舞蹈": true, "太极": true}
)

func anyNamed(types []NameCount, names map[string]bool) bool {
	for _, t := range types {
		if names[t.Name] {
			return true
		}
	}
	return false
}

func renderRecommendations(f ReportFacts) string {
	var b strings.Builder
	b.WriteString("健康改善建议：\n\n")
	b.WriteString("1. 饮食建议：保持均衡的饮食结构，每日摄入充足的蛋白质、水果和蔬菜。\n")

	e := f.Exercise
	if e.HasData() {
		// Judged on the whole minutes shown in the exercise summary
		if math.RoundToEven(e.AvgDailyMinutes()) < 30 {
			b.WriteString("2. 运动建议：您的运动时间较少，建议增加到每天至少30分钟中等强度的有氧运动。")
		} else {
			b.WriteString("2. 运动建议：您的运动时间达标，请继续保持良好习惯。")
		}
		if len(e.Types) <= 2 {
			b.WriteString(" 建议多样化您的运动类型，")
			var missing []string
			if !anyNamed(e.Types, cardioNames) {
				missing = append(missing, "有氧运动（如慢跑、快走或游泳）")
			}
			if !anyNamed(e.Types, strengthNames) {
				missing = append(missing, "力量训练（如哑铃、俯卧撑或仰卧起坐）")
			}
			if !anyNamed(e.Types, flexibilityNames) {
				missing = append(missing, "灵活性训练（如瑜伽或拉伸）")
			}
			if len(missing) > 0 {
				b.WriteString("增加" + strings.Join(missing, "、") + "。")
			}
		}
		b.WriteString("\n")
	} else {
		b.WriteString("2. 运动建议：每天至少进行30分钟中等强度的有氧运动，每周进行至少2次力量训练。\n")
	}

	b.WriteString("3. 睡眠建议：保持规律的作息，每晚保证7-8小时的充足睡眠。\n")

	m := f.Medication
	if m.HasData() && len(m.Medications) > 0 {
		names := make([]string, 0, len(m.Medications))
		for _, med := range m.Medications {
			names = append(names, med.Name)
		}
		shown := names
		if len(shown) > 3 {
			shown = shown[:3]
		}
		fmt.Fprintf(&b, "4. 用药提醒：您正在服用%d种药物，包括%s", len(names), strings.Join(shown, "、"))
		if len(names) > 3 {
			fmt.Fprintf(&b, "等%d种药物", len(names))
		}
		b.WriteString("。请严格按照医生的处方和时间服用，并定期复诊。")
		b.WriteString(" 建议使用药物提醒功能，避免漏服或重复服药。\n")
	} else {
		b.WriteString("4. 用药提醒：按时按量服用医生开具的药物，注意记录药物效果和副作用。\n")
	}

	if !e.HasData() || !m.HasData() {
		b.WriteString("\n数据完整性建议：\n")
		if !e.HasData() {
			b.WriteString("- 您的报告缺少运动数据。建议您在添加记录页面添加运动记录，以便系统提供更全面的健康评估和更精准的运动建议。\n")
		}
		if !m.HasData() {
			b.WriteString("- 您的报告缺少用药数据。如果您正在服用药物，建议您记录用药情况，以便系统更好地监控药物使用情况并提醒您按时服药。\n")
		}
	}
	return b.String()
}
