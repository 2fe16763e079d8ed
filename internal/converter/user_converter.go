package converter

import (
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// BMR and TDEE are included when the profile is complete on the given day.
func UserToResponse(user *entity.User, now time.Time) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Username:      user.Username,
		Phone:         user.Phone,
		Height:        user.Height,
		Weight:        user.Weight,
		Gender:        user.Gender,
		ActivityLevel: user.ActivityLevel,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
	if user.BirthDate != nil {
		response.BirthDate = user.BirthDate.Format(entity.DateLayout)
	}
	if bmr, ok := user.BMR(now); ok {
		response.BMR = &bmr
	}
	if tdee, ok := user.TDEE(now); ok {
		response.TDEE = &tdee
	}

	return response
}
