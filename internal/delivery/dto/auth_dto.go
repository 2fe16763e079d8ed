package dto

import "time"

// Request DTOs

type RegisterRequest struct {
	Email         string   `json:"email" validate:"required,email,max=120"`
	Password      string   `json:"password" validate:"required,min=6"`
	Username      *string  `json:"username" validate:"omitempty,min=2,max=80"`
	Phone         *string  `json:"phone" validate:"omitempty,min=6,max=20"`
	Height        *float64 `json:"height" validate:"omitempty,gt=0,lte=300"` // cm
	Weight        *float64 `json:"weight" validate:"omitempty,gt=0,lte=500"` // kg
	BirthDate     string   `json:"birth_date" validate:"omitempty,date"`    // Format: YYYY-MM-DD
	Gender        string   `json:"gender" validate:"omitempty,oneof=male female"`
	ActivityLevel string   `json:"activity_level" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active extra_active"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest changes only the fields that are present
type UpdateProfileRequest struct {
	Username      *string  `json:"username" validate:"omitempty,min=2,max=80"`
	Phone         *string  `json:"phone" validate:"omitempty,min=6,max=20"`
	Height        *float64 `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight        *float64 `json:"weight" validate:"omitempty,gt=0,lte=500"`
	BirthDate     *string  `json:"birth_date" validate:"omitempty,date"`
	Gender        *string  `json:"gender" validate:"omitempty,oneof=male female"`
	ActivityLevel *string  `json:"activity_level" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active extra_active"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Username      *string   `json:"username,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Height        *float64  `json:"height,omitempty"`
	Weight        *float64  `json:"weight,omitempty"`
	BirthDate     string    `json:"birth_date,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	ActivityLevel string    `json:"activity_level,omitempty"`
	BMR           *float64  `json:"bmr,omitempty"`
	TDEE          *float64  `json:"tdee,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
