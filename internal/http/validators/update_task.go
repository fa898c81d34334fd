package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if err := validateDescription(r.Description); err != nil {
		return err
	}
	return validateDueDate(r.DueDate)
}
