package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	maxUsernameLength = 50
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if r.Username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	if len(r.Username) > maxUsernameLength {
		return echo.NewHTTPError(http.StatusBadRequest, "username cannot exceed 50 characters")
	}
	if len(r.Password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}
	if len(r.Password) > maxPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at most 72 characters")
	}
	return nil
}
