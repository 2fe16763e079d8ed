package entity

import "time"

// Food is a catalog entry with nutrient values per 100g
type Food struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Category     string    `gorm:"type:varchar(50)" json:"category,omitempty"`
	Calories     *float64  `json:"calories,omitempty"`
	Protein      *float64  `json:"protein,omitempty"`
	Fat          *float64  `json:"fat,omitempty"`
	Carbohydrate *float64  `json:"carbohydrate,omitempty"`
	Fiber        *float64  `json:"fiber,omitempty"`
	Sugar        *float64  `json:"sugar,omitempty"`
	Sodium       *float64  `json:"sodium,omitempty"`
	ServingSize  *float64  `json:"serving_size,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Food) TableName() string {
	return "foods"
}

// Meal types of the normalized diet model
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// DietRecord groups the food items eaten in one meal
type DietRecord struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	RecordDate    time.Time `gorm:"type:date;not null;index" json:"record_date"`
	MealType      string    `gorm:"type:varchar(20);not null" json:"meal_type"`
	TotalCalories *float64  `json:"total_calories,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Items []DietRecordItem `gorm:"foreignKey:DietRecordID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (DietRecord) TableName() string {
	return "diet_records"
}

// DietRecordItem is one food eaten, amount in grams
type DietRecordItem struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DietRecordID uint      `gorm:"not null;index" json:"diet_record_id"`
	FoodID       uint      `gorm:"not null;index" json:"food_id"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Calories     *float64  `json:"calories,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Food Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}

func (DietRecordItem) TableName() string {
	return "diet_record_items"
}
