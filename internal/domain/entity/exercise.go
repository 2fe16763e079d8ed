package entity

import "time"

// Exercise categories as stored in the catalog
const (
	CategoryCardio      = "有氧运动"
	CategoryStrength    = "力量训练"
	CategoryFlexibility = "柔韧性训练"
	CategoryOther       = "其他"
)

type ExerciseType struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Category        string    `gorm:"type:varchar(50)" json:"category,omitempty"`
	CaloriesPerHour float64   `json:"calories_per_hour"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	Benefits        string    `gorm:"type:text" json:"benefits,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ExerciseType) TableName() string {
	return "exercise_types"
}

// ExerciseRecord is the normalized exercise log, duration in minutes
type ExerciseRecord struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	ExerciseTypeID uint      `gorm:"not null;index" json:"exercise_type_id"`
	RecordDate     time.Time `gorm:"type:date;not null;index" json:"record_date"`
	Duration       int       `gorm:"not null" json:"duration"`
	CaloriesBurned *float64  `json:"calories_burned,omitempty"`
	Intensity      string    `gorm:"type:varchar(20)" json:"intensity,omitempty"`
	HeartRateAvg   *int      `json:"heart_rate_avg,omitempty"`
	HeartRateMax   *int      `json:"heart_rate_max,omitempty"`
	Distance       *float64  `json:"distance,omitempty"`
	Steps          *int      `json:"steps,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	ExerciseType ExerciseType `gorm:"foreignKey:ExerciseTypeID" json:"exercise_type,omitempty"`
}

func (ExerciseRecord) TableName() string {
	return "exercise_records"
}

// DefaultExerciseTypes is the catalog installed by the seed command
var DefaultExerciseTypes = []ExerciseType{
	{Name: "跑步", Category: CategoryCardio, CaloriesPerHour: 600, Description: "户外或跑步机上的跑步"},
	{Name: "散步", Category: CategoryCardio, CaloriesPerHour: 280, Description: "轻度到中度的步行"},
	{Name: "游泳", Category: CategoryCardio, CaloriesPerHour: 500, Description: "各种泳姿的游泳锻炼"},
	{Name: "骑自行车", Category: CategoryCardio, CaloriesPerHour: 450, Description: "户外或室内自行车锻炼"},
	{Name: "椭圆机", Category: CategoryCardio, CaloriesPerHour: 450, Description: "在椭圆机上的锻炼"},
	{Name: "跳绳", Category: CategoryCardio, CaloriesPerHour: 700, Description: "使用跳绳的高强度间歇训练"},
	{Name: "爬楼梯", Category: CategoryCardio, CaloriesPerHour: 500, Description: "上下楼梯的有氧锻炼"},
	{Name: "划船", Category: CategoryCardio, CaloriesPerHour: 600, Description: "使用划船机或户外划船"},
	{Name: "举重", Category: CategoryStrength, CaloriesPerHour: 350, Description: "使用自由重量进行力量训练"},
	{Name: "哑铃训练", Category: CategoryStrength, CaloriesPerHour: 330, Description: "使用哑铃的上下肢力量训练"},
	{Name: "俯卧撑", Category: CategoryStrength, CaloriesPerHour: 280, Description: "利用自身体重的胸部和手臂训练"},
	{Name: "引体向上", Category: CategoryStrength, CaloriesPerHour: 300, Description: "锻炼背部和手臂肌肉的训练"},
	{Name: "深蹲", Category: CategoryStrength, CaloriesPerHour: 350, Description: "锻炼腿部和臀部肌肉的训练"},
	{Name: "仰卧起坐", Category: CategoryStrength, CaloriesPerHour: 250, Description: "锻炼腹部肌肉的训练"},
	{Name: "健身器械", Category: CategoryStrength, CaloriesPerHour: 300, Description: "使用各种健身器械进行训练"},
	{Name: "瑜伽", Category: CategoryFlexibility, CaloriesPerHour: 250, Description: "结合呼吸和姿势的身心锻炼"},
	{Name: "普拉提", Category: CategoryFlexibility, CaloriesPerHour: 270, Description: "注重核心肌群的训练系统"},
	{Name: "拉伸", Category: CategoryFlexibility, CaloriesPerHour: 180, Description: "伸展肌肉和关节的训练"},
	{Name: "太极", Category: CategoryFlexibility, CaloriesPerHour: 220, Description: "传统中国的缓慢动作练习"},
	{Name: "篮球", Category: "球类运动", CaloriesPerHour: 550, Description: "场上五人制篮球比赛或训练"},
	{Name: "足球", Category: "球类运动", CaloriesPerHour: 600, Description: "场上足球比赛或训练"},
	{Name: "网球", Category: "球类运动", CaloriesPerHour: 450, Description: "网球比赛或训练"},
	{Name: "乒乓球", Category: "球类运动", CaloriesPerHour: 350, Description: "乒乓球比赛或训练"},
	{Name: "羽毛球", Category: "球类运动", CaloriesPerHour: 400, Description: "羽毛球比赛或训练"},
	{Name: "排球", Category: "球类运动", CaloriesPerHour: 450, Description: "排球比赛或训练"},
	{Name: "舞蹈", Category: CategoryOther, CaloriesPerHour: 400, Description: "各种风格的舞蹈活动"},
	{Name: "武术", Category: CategoryOther, CaloriesPerHour: 450, Description: "中国传统武术或其他武术形式"},
	{Name: "高强度间歇训练", Category: CategoryOther, CaloriesPerHour: 700, Description: "短时高强度与休息交替的训练"},
	{Name: "户外徒步", Category: CategoryOther, CaloriesPerHour: 400, Description: "户外徒步旅行或登山"},
}
