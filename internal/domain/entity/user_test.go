package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func float64Ptr(v float64) *float64 { return &v }

func TestUserBMRAndTDEE(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	birth := time.Date(1996, 1, 15, 0, 0, 0, 0, time.UTC)

	user := &User{
		Weight:        float64Ptr(80),
		Height:        float64Ptr(180),
		BirthDate:     &birth,
		Gender:        GenderMale,
		ActivityLevel: ActivityModeratelyActive,
	}

	bmr, ok := user.BMR(now)
	assert.True(t, ok)
	assert.Equal(t, 1780.0, bmr)

	tdee, ok := user.TDEE(now)
	assert.True(t, ok)
	assert.InDelta(t, 2759.0, tdee, 0.01)
	assert.Equal(t, Round(bmr*1.55, 2), tdee)
}

func TestUserBMRIncompleteProfile(t *testing.T) {
	now := time.Now()

	_, ok := (&User{Weight: float64Ptr(70), Gender: GenderFemale}).BMR(now)
	assert.False(t, ok)

	_, ok = (&User{}).TDEE(now)
	assert.False(t, ok)
}

func TestUserTDEEUnknownActivityIsSedentary(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	birth := time.Date(1986, 6, 1, 0, 0, 0, 0, time.UTC)
	user := &User{Weight: float64Ptr(60), Height: float64Ptr(165), BirthDate: &birth, Gender: GenderFemale, ActivityLevel: "couch"}

	bmr, _ := user.BMR(now)
	tdee, ok := user.TDEE(now)
	assert.True(t, ok)
	assert.Equal(t, Round(bmr*1.2, 2), tdee)
}

func TestUserAgeAt(t *testing.T) {
	birth := time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)
	user := &User{BirthDate: &birth}

	age, ok := user.AgeAt(time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, 25, age)

	age, _ = user.AgeAt(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 26, age)
}

func TestUserBMRMatchesMifflinReferenceFigures(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	birth := time.Date(1996, 3, 1, 0, 0, 0, 0, time.UTC)

	male := &User{Weight: float64Ptr(70), Height: float64Ptr(175), BirthDate: &birth, Gender: GenderMale}
	bmr, ok := male.BMR(now)
	assert.True(t, ok)
	assert.Equal(t, 1648.75, bmr)

	female := &User{Weight: float64Ptr(60), Height: float64Ptr(165), BirthDate: &birth, Gender: GenderFemale}
	bmr, ok = female.BMR(now)
	assert.True(t, ok)
	assert.Equal(t, 1320.25, bmr)
}
