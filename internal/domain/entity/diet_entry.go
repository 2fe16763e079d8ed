package entity

import "time"

// DietSource tags which diet model a DietEntry was read from
type DietSource string

const (
	DietSourceItem         DietSource = "diet_item"
	DietSourceHealthRecord DietSource = "health_record"
)

// Nutrients holds an amount of each tracked nutrient. Calories in kcal,
// sodium in mg, everything else in grams.
type Nutrients struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbohydrate float64 `json:"carbohydrate"`
	Fiber        float64 `json:"fiber"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
}

func (n *Nutrients) Add(o Nutrients) {
	n.Calories += o.Calories
	n.Protein += o.Protein
	n.Fat += o.Fat
	n.Carbohydrate += o.Carbohydrate
	n.Fiber += o.Fiber
	n.Sugar += o.Sugar
	n.Sodium += o.Sodium
}

// Scale multiplies every nutrient by f
func (n Nutrients) Scale(f float64) Nutrients {
	return Nutrients{
		Calories:     n.Calories * f,
		Protein:      n.Protein * f,
		Fat:          n.Fat * f,
		Carbohydrate: n.Carbohydrate * f,
		Fiber:        n.Fiber * f,
		Sugar:        n.Sugar * f,
		Sodium:       n.Sodium * f,
	}
}

func (n Nutrients) Round(places int) Nutrients {
	return Nutrients{
		Calories:     Round(n.Calories, places),
		Protein:      Round(n.Protein, places),
		Fat:          Round(n.Fat, places),
		Carbohydrate: Round(n.Carbohydrate, places),
		Fiber:        Round(n.Fiber, places),
		Sugar:        Round(n.Sugar, places),
		Sodium:       Round(n.Sodium, places),
	}
}

// MacroCalories derives energy from protein, fat and carbohydrate at 4/9/4 kcal per gram
func (n Nutrients) MacroCalories() float64 {
	return n.Protein*4 + n.Fat*9 + n.Carbohydrate*4
}

// NutrientsFor scales the per-100g catalog values to amount grams.
// Missing values count as zero.
func (f *Food) NutrientsFor(amount float64) Nutrients {
	per100 := Nutrients{
		Calories:     orZero(f.Calories),
		Protein:      orZero(f.Protein),
		Fat:          orZero(f.Fat),
		Carbohydrate: orZero(f.Carbohydrate),
		Fiber:        orZero(f.Fiber),
		Sugar:        orZero(f.Sugar),
		Sodium:       orZero(f.Sodium),
	}
	return per100.Scale(amount / 100)
}

// DietEntry is one eaten food, normalized from either diet model so both
// can be aggregated the same way.
type DietEntry struct {
	Source    DietSource
	SourceID  uint
	Date      time.Time
	MealType  string
	FoodName  string
	Amount    float64
	Nutrients Nutrients
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
