package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

func FoodToResponse(food *entity.Food) *dto.FoodResponse {
	if food == nil {
		return nil
	}

	return &dto.FoodResponse{
		ID:           food.ID,
		Name:         food.Name,
		Category:     food.Category,
		Calories:     food.Calories,
		Protein:      food.Protein,
		Fat:          food.Fat,
		Carbohydrate: food.Carbohydrate,
		Fiber:        food.Fiber,
		Sugar:        food.Sugar,
		Sodium:       food.Sodium,
		ServingSize:  food.ServingSize,
		CreatedAt:    food.CreatedAt,
	}
}

func FoodsToResponses(foods []entity.Food) []dto.FoodResponse {
	responses := make([]dto.FoodResponse, len(foods))
	for i := range foods {
		responses[i] = *FoodToResponse(&foods[i])
	}
	return responses
}

// DietMealToResponse expects Items.Food to be loaded for the food names
func DietMealToResponse(record *entity.DietRecord) *dto.DietMealResponse {
	if record == nil {
		return nil
	}

	response := &dto.DietMealResponse{
		ID:            record.ID,
		RecordDate:    record.RecordDate.Format(entity.DateLayout),
		MealType:      record.MealType,
		TotalCalories: record.TotalCalories,
		Notes:         record.Notes,
		Items:         make([]dto.DietItemResponse, len(record.Items)),
		CreatedAt:     record.CreatedAt,
	}
	for i, item := range record.Items {
		response.Items[i] = dto.DietItemResponse{
			ID:       item.ID,
			FoodID:   item.FoodID,
			FoodName: item.Food.Name,
			Amount:   item.Amount,
			Calories: item.Calories,
		}
	}
	return response
}

func DietMealsToResponses(records []entity.DietRecord) []dto.DietMealResponse {
	responses := make([]dto.DietMealResponse, len(records))
	for i := range records {
		responses[i] = *DietMealToResponse(&records[i])
	}
	return responses
}

func ExerciseTypeToResponse(exerciseType *entity.ExerciseType) *dto.ExerciseTypeResponse {
	if exerciseType == nil {
		return nil
	}

	return &dto.ExerciseTypeResponse{
		ID:              exerciseType.ID,
		Name:            exerciseType.Name,
		Category:        exerciseType.Category,
		CaloriesPerHour: exerciseType.CaloriesPerHour,
		Description:     exerciseType.Description,
		Benefits:        exerciseType.Benefits,
	}
}

func ExerciseTypesToResponses(types []entity.ExerciseType) []dto.ExerciseTypeResponse {
	responses := make([]dto.ExerciseTypeResponse, len(types))
	for i := range types {
		responses[i] = *ExerciseTypeToResponse(&types[i])
	}
	return responses
}

func ExerciseLogToResponse(record *entity.ExerciseRecord) *dto.ExerciseLogResponse {
	if record == nil {
		return nil
	}

	return &dto.ExerciseLogResponse{
		ID:             record.ID,
		ExerciseTypeID: record.ExerciseTypeID,
		ExerciseName:   record.ExerciseType.Name,
		Category:       record.ExerciseType.Category,
		RecordDate:     record.RecordDate.Format(entity.DateLayout),
		Duration:       record.Duration,
		CaloriesBurned: record.CaloriesBurned,
		Intensity:      record.Intensity,
		HeartRateAvg:   record.HeartRateAvg,
		HeartRateMax:   record.HeartRateMax,
		Distance:       record.Distance,
		Steps:          record.Steps,
		Notes:          record.Notes,
		CreatedAt:      record.CreatedAt,
	}
}

func ExerciseLogsToResponses(records []entity.ExerciseRecord) []dto.ExerciseLogResponse {
	responses := make([]dto.ExerciseLogResponse, len(records))
	for i := range records {
		responses[i] = *ExerciseLogToResponse(&records[i])
	}
	return responses
}

func MedicationTypeToResponse(medicationType *entity.MedicationType) *dto.MedicationTypeResponse {
	if medicationType == nil {
		return nil
	}

	return &dto.MedicationTypeResponse{
		ID:           medicationType.ID,
		Name:         medicationType.Name,
		Category:     medicationType.Category,
		Description:  medicationType.Description,
		CommonDosage: medicationType.CommonDosage,
		SideEffects:  medicationType.SideEffects,
		Precautions:  medicationType.Precautions,
	}
}

func MedicationTypesToResponses(types []entity.MedicationType) []dto.MedicationTypeResponse {
	responses := make([]dto.MedicationTypeResponse, len(types))
	for i := range types {
		responses[i] = *MedicationTypeToResponse(&types[i])
	}
	return responses
}
