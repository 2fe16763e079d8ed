package dto

// ChartDataResponse holds one value per day, oldest first. Water is in
// hundreds of ml.
type ChartDataResponse struct {
	Labels           []string `json:"labels"`
	DietCalories     []int    `json:"diet_calories"`
	ExerciseCalories []int    `json:"exercise_calories"`
	WaterIntake      []int    `json:"water_intake"`
	Sample           bool     `json:"sample"`
}

type RecentRecordResponse struct {
	ID      uint   `json:"id"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}
