package validators

import (
	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateUpdateTaskStatusRequest(r *dto.UpdateTaskStatusRequest) (constants.TaskStatus, error) {
	status, err := constants.ParseTaskStatus(r.Status)
	if err != nil {
		return "", apperrors.ErrInvalidStatus
	}
	return status, nil
}
