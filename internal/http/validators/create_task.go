package validators

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

const maxDescriptionLength = 50

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if err := validateDescription(r.Description); err != nil {
		return err
	}
	return validateDueDate(r.DueDate)
}

func validateDescription(description string) error {
	if description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description cannot be empty")
	}
	if len(description) > maxDescriptionLength {
		return echo.NewHTTPError(http.StatusBadRequest, "description cannot exceed 50 characters")
	}
	return nil
}

// validateDueDate accepts an absent due date; a present one must be today or
// in the future.
func validateDueDate(dueDate *time.Time) error {
	if dueDate == nil {
		return nil
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if dueDate.Before(today) {
		return echo.NewHTTPError(http.StatusBadRequest, "due date must be today or in the future")
	}
	return nil
}
