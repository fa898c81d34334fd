package validators

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestValidateCreateTaskRequest(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 0, 7)
	past := time.Now().UTC().AddDate(0, 0, -1)

	tests := []struct {
		name    string
		req     dto.CreateTaskRequest
		wantErr bool
	}{
		{"valid", dto.CreateTaskRequest{Description: "Write spec", DueDate: &future}, false},
		{"valid without due date", dto.CreateTaskRequest{Description: "Write spec"}, false},
		{"empty description", dto.CreateTaskRequest{Description: ""}, true},
		{"description too long", dto.CreateTaskRequest{Description: strings.Repeat("x", 51)}, true},
		{"description at limit", dto.CreateTaskRequest{Description: strings.Repeat("x", 50)}, false},
		{"due date in the past", dto.CreateTaskRequest{Description: "Late", DueDate: &past}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateTaskRequest(&tt.req)
			if tt.wantErr {
				assertBadRequest(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Description: ""})
	assertBadRequest(t, err)

	err = ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Description: "Fine"})
	assert.NoError(t, err)
}

func TestValidateUpdateTaskAssigneeRequest(t *testing.T) {
	err := ValidateUpdateTaskAssigneeRequest(&dto.UpdateTaskAssigneeRequest{UserID: ""})
	assertBadRequest(t, err)

	err = ValidateUpdateTaskAssigneeRequest(&dto.UpdateTaskAssigneeRequest{UserID: strings.Repeat("a", 21)})
	assertBadRequest(t, err)

	err = ValidateUpdateTaskAssigneeRequest(&dto.UpdateTaskAssigneeRequest{UserID: strings.Repeat("a", 20)})
	assert.NoError(t, err)
}

func TestValidateUpdateTaskStatusRequest(t *testing.T) {
	status, err := ValidateUpdateTaskStatusRequest(&dto.UpdateTaskStatusRequest{Status: "Done"})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDone, status)

	_, err = ValidateUpdateTaskStatusRequest(&dto.UpdateTaskStatusRequest{Status: "Cancelled"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestValidateRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RegisterRequest
		wantErr bool
	}{
		{"valid", dto.RegisterRequest{Username: "johnsmith", Password: "Password123!"}, false},
		{"missing username", dto.RegisterRequest{Password: "Password123!"}, true},
		{"short password", dto.RegisterRequest{Username: "johnsmith", Password: "short"}, true},
		{"password over bcrypt limit", dto.RegisterRequest{Username: "johnsmith", Password: strings.Repeat("x", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegisterRequest(&tt.req)
			if tt.wantErr {
				assertBadRequest(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
