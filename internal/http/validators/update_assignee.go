package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

const maxUserIDLength = 20

func ValidateUpdateTaskAssigneeRequest(r *dto.UpdateTaskAssigneeRequest) error {
	if r.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id cannot be empty")
	}
	if len(r.UserID) > maxUserIDLength {
		return echo.NewHTTPError(http.StatusBadRequest, "user id cannot exceed 20 characters")
	}
	return nil
}
