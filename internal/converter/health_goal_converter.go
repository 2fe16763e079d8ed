package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

// GoalToResponse includes the goal's logs when they are loaded
func GoalToResponse(goal *entity.HealthGoal) *dto.GoalResponse {
	if goal == nil {
		return nil
	}

	response := &dto.GoalResponse{
		ID:           goal.ID,
		GoalType:     goal.GoalType,
		TargetValue:  goal.TargetValue,
		CurrentValue: goal.CurrentValue,
		InitialValue: goal.InitialValue,
		StartDate:    goal.StartDate.Format(entity.DateLayout),
		Status:       string(goal.Status),
		Progress:     goal.Progress(),
		Notes:        goal.Notes,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
	if goal.EndDate != nil {
		response.EndDate = goal.EndDate.Format(entity.DateLayout)
	}
	if len(goal.Logs) > 0 {
		response.Logs = GoalLogsToResponses(goal.Logs)
	}
	return response
}

func GoalsToResponses(goals []entity.HealthGoal) []dto.GoalResponse {
	responses := make([]dto.GoalResponse, len(goals))
	for i := range goals {
		responses[i] = *GoalToResponse(&goals[i])
	}
	return responses
}

func GoalLogToResponse(log *entity.HealthGoalLog) *dto.GoalLogResponse {
	return &dto.GoalLogResponse{
		ID:        log.ID,
		GoalID:    log.GoalID,
		LogDate:   log.LogDate.Format(entity.DateLayout),
		Value:     log.Value,
		Notes:     log.Notes,
		CreatedAt: log.CreatedAt,
	}
}

func GoalLogsToResponses(logs []entity.HealthGoalLog) []dto.GoalLogResponse {
	responses := make([]dto.GoalLogResponse, len(logs))
	for i := range logs {
		responses[i] = *GoalLogToResponse(&logs[i])
	}
	return responses
}
