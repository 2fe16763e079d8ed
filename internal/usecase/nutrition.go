package usecase

import (
	"strings"
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

const uncategorizedMeal = "未分类"

// keywordRule estimates nutrients per gram of food whose name contains one of the keywords
type keywordRule struct {
	keywords []string
	perGram  entity.Nutrients
}

// Checked in order, first match wins
var keywordRules = []keywordRule{
	{ // eggs
		keywords: []string{"鸡蛋", "蛋"},
		perGram:  entity.Nutrients{Protein: 0.13, Fat: 0.10, Carbohydrate: 0.01, Fiber: 0.001, Sodium: 1.4, Sugar: 0.005},
	},
	{ // fruit
		keywords: []string{"果", "苹果", "香蕉", "橙子", "橘子", "梨"},
		perGram:  entity.Nutrients{Protein: 0.01, Fat: 0.001, Carbohydrate: 0.15, Fiber: 0.02, Sodium: 0.01, Sugar: 0.1},
	},
	{ // sweets
		keywords: []string{"糖", "巧克力", "蛋糕", "甜点", "冰淇淋", "饼干"},
		perGram:  entity.Nutrients{Protein: 0.05, Fat: 0.15, Carbohydrate: 0.60, Fiber: 0.01, Sodium: 0.2, Sugar: 0.35},
	},
	{ // meat and fish
		keywords: []string{"肉", "牛肉", "猪肉", "鸡肉", "鱼", "虾"},
		perGram:  entity.Nutrients{Protein: 0.22, Fat: 0.10, Sodium: 0.7},
	},
	{ // staples
		keywords: []string{"米饭", "面", "米", "饭", "馒头", "面包"},
		perGram:  entity.Nutrients{Protein: 0.07, Fat: 0.01, Carbohydrate: 0.28, Fiber: 0.01, Sodium: 0.02, Sugar: 0.01},
	},
	{ // vegetables
		keywords: []string{"菜", "青菜", "蔬菜", "西红柿", "番茄", "黄瓜"},
		perGram:  entity.Nutrients{Protein: 0.02, Carbohydrate: 0.05, Fiber: 0.03, Sodium: 0.1, Sugar: 0.02},
	},
}

// estimateByKeyword returns the nutrients of amount grams of a food guessed from its name
func estimateByKeyword(name string, amount float64) (entity.Nutrients, bool) {
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.perGram.Scale(amount), true
			}
		}
	}
	return entity.Nutrients{}, false
}

// estimateByCalories splits known energy 20/30/50 over protein, fat and carbohydrate
func estimateByCalories(calories, amount float64) entity.Nutrients {
	return entity.Nutrients{
		Protein:      calories * 0.2 / 4,
		Fat:          calories * 0.3 / 9,
		Carbohydrate: calories * 0.5 / 4,
		Fiber:        amount * 0.03,
		Sodium:       amount * 0.05,
		Sugar:        calories * 0.1 / 4,
	}
}

// foodLookup finds a catalog food whose name contains the given fragment, nil when none
type foodLookup func(fragment string) (*entity.Food, error)

// dietEntryFromRecord resolves the nutrients of a diet health record: catalog
// match first, then name keywords, then the stated calories. Stated calories
// win over derived ones; a missing figure is computed from the macros.
func dietEntryFromRecord(record *entity.HealthRecord, lookup foodLookup) (entity.DietEntry, error) {
	d := record.Diet
	entry := entity.DietEntry{
		Source:   entity.DietSourceHealthRecord,
		SourceID: record.ID,
		Date:     entity.DateOnly(record.RecordDate),
		MealType: d.MealType,
		FoodName: d.FoodName,
	}
	if d.FoodAmount != nil {
		entry.Amount = *d.FoodAmount
	}
	if entry.FoodName == "" {
		entry.FoodName = "未知食物"
	}

	var stated float64
	if d.Calories != nil {
		stated = *d.Calories
	}

	var n entity.Nutrients
	food, err := lookup(d.FoodName)
	if err != nil {
		return entry, err
	}
	if food != nil && food.Calories != nil && *food.Calories > 0 {
		n = food.NutrientsFor(entry.Amount)
	} else if guess, ok := estimateByKeyword(d.FoodName, entry.Amount); ok {
		n = guess
	} else if stated > 0 {
		n = estimateByCalories(stated, entry.Amount)
	}

	switch {
	case stated > 0:
		n.Calories = stated
	case n.Calories <= 0:
		n.Calories = n.MacroCalories()
	}
	entry.Nutrients = n
	return entry, nil
}

// dietEntriesFromRecord expands a normalized diet record into one entry per item.
// A record without items contributes its total calories only.
func dietEntriesFromRecord(record *entity.DietRecord) []entity.DietEntry {
	date := entity.DateOnly(record.RecordDate)
	if len(record.Items) == 0 {
		if record.TotalCalories == nil || *record.TotalCalories <= 0 {
			return nil
		}
		return []entity.DietEntry{{
			Source:    entity.DietSourceItem,
			SourceID:  record.ID,
			Date:      date,
			MealType:  record.MealType,
			FoodName:  "未知食物",
			Nutrients: entity.Nutrients{Calories: *record.TotalCalories},
		}}
	}

	entries := make([]entity.DietEntry, 0, len(record.Items))
	for _, item := range record.Items {
		n := item.Food.NutrientsFor(item.Amount)
		if item.Calories != nil {
			n.Calories = *item.Calories
		}
		name := item.Food.Name
		if name == "" {
			name = "未知食物"
		}
		entries = append(entries, entity.DietEntry{
			Source:    entity.DietSourceItem,
			SourceID:  item.ID,
			Date:      date,
			MealType:  record.MealType,
			FoodName:  name,
			Amount:    item.Amount,
			Nutrients: n,
		})
	}
	return entries
}

// dailyNutrition builds one aggregate per calendar day of [start, end], days
// without entries included, and returns the window totals.
func dailyNutrition(start, end time.Time, entries []entity.DietEntry) ([]dto.DailyNutrition, entity.Nutrients) {
	start, end = entity.DateOnly(start), entity.DateOnly(end)

	days := make([]dto.DailyNutrition, 0, entity.DaysInclusive(start, end))
	index := make(map[string]int)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(entity.DateLayout)
		index[key] = len(days)
		days = append(days, dto.DailyNutrition{Date: key, Meals: map[string]*dto.MealSummary{}})
	}

	var total entity.Nutrients
	for _, e := range entries {
		i, ok := index[e.Date.Format(entity.DateLayout)]
		if !ok {
			continue
		}
		day := &days[i]
		day.Nutrients.Add(e.Nutrients)
		total.Add(e.Nutrients)

		meal := e.MealType
		if meal == "" {
			meal = uncategorizedMeal
		}
		summary, ok := day.Meals[meal]
		if !ok {
			summary = &dto.MealSummary{Items: []dto.MealItem{}}
			day.Meals[meal] = summary
		}
		summary.Calories += e.Nutrients.Calories
		summary.Items = append(summary.Items, dto.MealItem{
			FoodName: e.FoodName,
			Amount:   e.Amount,
			Calories: entity.Round(e.Nutrients.Calories, 2),
			Source:   string(e.Source),
		})
	}

	for i := range days {
		days[i].Nutrients = days[i].Nutrients.Round(2)
		for _, meal := range days[i].Meals {
			meal.Calories = entity.Round(meal.Calories, 2)
		}
	}
	return days, total
}

// recommendedCalories prefers the user's TDEE, then a gender default, then 2200
func recommendedCalories(user *entity.User, now time.Time) float64 {
	if tdee, ok := user.TDEE(now); ok {
		return tdee
	}
	switch strings.ToLower(user.Gender) {
	case entity.GenderMale:
		return 2500
	case entity.GenderFemale:
		return 2000
	}
	return 2200
}

// recommendedNutrients splits the calorie baseline 15/30/55 over protein, fat
// and carbohydrate; fiber, sugar and sodium use flat daily targets.
func recommendedNutrients(calories float64) entity.Nutrients {
	return entity.Nutrients{
		Calories:     calories,
		Protein:      entity.Round(calories*0.15/4, 2),
		Fat:          entity.Round(calories*0.3/9, 2),
		Carbohydrate: entity.Round(calories*0.55/4, 2),
		Fiber:        25,
		Sugar:        25,
		Sodium:       2300,
	}
}

func percentOf(avg, rec entity.Nutrients) entity.Nutrients {
	pct := func(a, r float64) float64 {
		if r <= 0 {
			return 0
		}
		return entity.Round(a/r*100, 2)
	}
	return entity.Nutrients{
		Calories:     pct(avg.Calories, rec.Calories),
		Protein:      pct(avg.Protein, rec.Protein),
		Fat:          pct(avg.Fat, rec.Fat),
		Carbohydrate: pct(avg.Carbohydrate, rec.Carbohydrate),
		Fiber:        pct(avg.Fiber, rec.Fiber),
		Sugar:        pct(avg.Sugar, rec.Sugar),
		Sodium:       pct(avg.Sodium, rec.Sodium),
	}
}

// Verdict labels
const (
	statusTooHigh = "过高"
	statusTooLow  = "过低"
	statusNormal  = "正常"
	statusExcess  = "过多"
	statusLacking = "不足"
	statusFine    = "适量"
)

// nutrientBand maps a percentage of the recommended intake to a status.
// A zero bound disables that side.
type nutrientBand struct {
	nutrient string
	above    float64
	below    float64
	high     string
	low      string
	normal   string
	messages map[string]string
}

var nutrientBands = []nutrientBand{
	{
		nutrient: "calories", above: 110, below: 90,
		high: statusTooHigh, low: statusTooLow, normal: statusNormal,
		messages: map[string]string{
			statusTooHigh: "您的每日平均热量摄入超过推荐值的10%以上，可能导致体重增加。建议减少高热量食物的摄入，如甜点、油炸食品等。",
			statusTooLow:  "您的每日平均热量摄入低于推荐值的10%以上，可能导致营养不足。建议适当增加食物摄入量，确保均衡营养。",
			statusNormal:  "您的每日平均热量摄入在推荐范围内，保持得很好。",
		},
	},
	{
		nutrient: "protein", above: 150, below: 80,
		high: statusExcess, low: statusLacking, normal: statusFine,
		messages: map[string]string{
			statusLacking: "您的蛋白质摄入不足，蛋白质是维持肌肉健康的重要营养素。建议增加瘦肉、鱼、蛋、豆类等富含优质蛋白的食物。",
			statusExcess:  "您的蛋白质摄入较多，长期过量摄入蛋白质可能增加肾脏负担。建议适当减少，保持均衡。",
			statusFine:    "您的蛋白质摄入适量，有助于维持肌肉健康和代谢功能。",
		},
	},
	{
		nutrient: "fat", above: 120, below: 70,
		high: statusExcess, low: statusLacking, normal: statusFine,
		messages: map[string]string{
			statusExcess:  "您的脂肪摄入过多，可能增加心血管疾病风险。建议减少油炸食品、高脂肪肉类和全脂乳制品的摄入。",
			statusLacking: "您的脂肪摄入不足，适量的健康脂肪对吸收脂溶性维生素很重要。建议适当增加坚果、橄榄油、鱼类等健康脂肪来源。",
			statusFine:    "您的脂肪摄入适量，有助于维持激素平衡和细胞功能。",
		},
	},
	{
		nutrient: "carbohydrate", above: 120, below: 70,
		high: statusExcess, low: statusLacking, normal: statusFine,
		messages: map[string]string{
			statusExcess:  "您的碳水化合物摄入过多，可能导致血糖波动和体重增加。建议减少精制碳水的摄入，如白面包、蛋糕、糖果等。",
			statusLacking: "您的碳水化合物摄入不足，可能影响能量供应和大脑功能。建议适当增加全谷物、水果等优质碳水来源。",
			statusFine:    "您的碳水化合物摄入适量，为身体提供了充足的能量。",
		},
	},
	{
		nutrient: "fiber", below: 80,
		low: statusLacking, normal: statusFine,
		messages: map[string]string{
			statusLacking: "您的膳食纤维摄入不足，可能影响肠道健康。建议增加全谷物、蔬菜、水果和豆类的摄入。",
			statusFine:    "您的膳食纤维摄入适量，有助于维持肠道健康和控制血糖。",
		},
	},
	{
		nutrient: "sugar", above: 120,
		high: statusExcess, normal: statusFine,
		messages: map[string]string{
			statusExcess: "您的糖摄入过多，可能增加肥胖和糖尿病风险。建议减少甜饮料、甜点、糖果等添加糖的摄入。",
			statusFine:   "您的糖摄入在合理范围内，继续保持控制添加糖的摄入。",
		},
	},
	{
		nutrient: "sodium", above: 120,
		high: statusExcess, normal: statusFine,
		messages: map[string]string{
			statusExcess: "您的钠摄入过多，可能增加高血压风险。建议减少加工食品、咸味零食和过度调味的食物摄入。",
			statusFine:   "您的钠摄入在合理范围内，有助于维持正常的血压水平。",
		},
	},
}

func (b nutrientBand) status(pct float64) string {
	if b.high != "" && pct > b.above {
		return b.high
	}
	if b.low != "" && pct < b.below {
		return b.low
	}
	return b.normal
}

func nutrientPercent(n entity.Nutrients, nutrient string) float64 {
	switch nutrient {
	case "calories":
		return n.Calories
	case "protein":
		return n.Protein
	case "fat":
		return n.Fat
	case "carbohydrate":
		return n.Carbohydrate
	case "fiber":
		return n.Fiber
	case "sugar":
		return n.Sugar
	case "sodium":
		return n.Sodium
	}
	return 0
}

// nutrientVerdicts emits one verdict per nutrient, normal ones included
func nutrientVerdicts(pct entity.Nutrients) []dto.NutrientVerdict {
	verdicts := make([]dto.NutrientVerdict, 0, len(nutrientBands))
	for _, band := range nutrientBands {
		status := band.status(nutrientPercent(pct, band.nutrient))
		verdicts = append(verdicts, dto.NutrientVerdict{
			Nutrient: band.nutrient,
			Status:   status,
			Message:  band.messages[status],
		})
	}
	return verdicts
}
