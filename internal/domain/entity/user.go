package entity

import (
	"math"
	"strings"
	"time"
)

// Gender values accepted on the user profile
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Activity levels used for the TDEE multiplier
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtraActive      = "extra_active"
)

var activityMultipliers = map[string]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtraActive:      1.9,
}

// User is the account plus the body profile the analysis engine reads
type User struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username      *string    `gorm:"type:varchar(80);uniqueIndex" json:"username,omitempty"`
	Email         string     `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Phone         *string    `gorm:"type:varchar(20);uniqueIndex" json:"phone,omitempty"`
	Password      string     `gorm:"type:text;not null" json:"-"`
	Height        *float64   `json:"height,omitempty"`
	Weight        *float64   `json:"weight,omitempty"`
	BirthDate     *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Gender        string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	ActivityLevel string     `gorm:"type:varchar(20)" json:"activity_level,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// AgeAt returns the age in whole years on the given day
func (u *User) AgeAt(now time.Time) (int, bool) {
	if u.BirthDate == nil {
		return 0, false
	}
	b := *u.BirthDate
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return age, true
}

// BMR computes the basal metabolic rate (kcal/day) from weight, height, age and gender
// using the Mifflin-St Jeor revision: 10w + 6.25h - 5a, +5 for men, -161 for women.
// The second return value is false when the profile is incomplete.
//
// The formula is sometimes labelled as the revised Harris-Benedict equation,
// but the published reference figures (e.g. 70kg, 175cm, 30y male: 1648.75)
// only match Mifflin-St Jeor, so that is what is computed here.
func (u *User) BMR(now time.Time) (float64, bool) {
	if u.Weight == nil || u.Height == nil || u.Gender == "" || *u.Weight == 0 || *u.Height == 0 {
		return 0, false
	}
	age, ok := u.AgeAt(now)
	if !ok {
		return 0, false
	}

	w, h, a := *u.Weight, *u.Height, float64(age)
	bmr := 10*w + 6.25*h - 5*a
	if strings.ToLower(u.Gender) == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return Round(bmr, 2), true
}

// TDEE scales the BMR by the activity multiplier, unknown levels count as sedentary
func (u *User) TDEE(now time.Time) (float64, bool) {
	bmr, ok := u.BMR(now)
	if !ok || bmr == 0 {
		return 0, false
	}
	multiplier, found := activityMultipliers[strings.ToLower(u.ActivityLevel)]
	if !found {
		multiplier = activityMultipliers[ActivitySedentary]
	}
	return Round(bmr*multiplier, 2), true
}

// Round rounds half away from zero to the given number of decimals
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
