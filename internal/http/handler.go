package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	actorID := middleware.ActorID(c)
	if err := h.taskService.CreateTask(c.Request().Context(), actorID, req.Description, req.DueDate); err != nil {
		return domainError(err)
	}

	return c.NoContent(http.StatusCreated)
}

func (h *Handler) GetTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTaskDetails(c.Request().Context(), middleware.ActorID(c), taskID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	actorID := middleware.ActorID(c)
	if err := h.taskService.UpdateTaskAttributes(c.Request().Context(), actorID, taskID, req.Description, req.DueDate); err != nil {
		return domainError(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *Handler) UpdateTaskAssignee(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskAssigneeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskAssigneeRequest(&req); err != nil {
		return err
	}

	actorID := middleware.ActorID(c)
	if err := h.taskService.UpdateTaskAssignee(c.Request().Context(), actorID, taskID, req.UserID); err != nil {
		return domainError(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	status, err := validators.ValidateUpdateTaskStatusRequest(&req)
	if err != nil {
		return domainError(err)
	}

	actorID := middleware.ActorID(c)
	if err := h.taskService.UpdateTaskStatus(c.Request().Context(), actorID, taskID, status); err != nil {
		return domainError(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	actorID := middleware.ActorID(c)
	if err := h.taskService.DeleteTask(c.Request().Context(), actorID, taskID); err != nil {
		return domainError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func taskIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}
	return uint(id), nil
}

// domainError maps expected business failures to their transport status and
// hides anything else behind a generic 500.
func domainError(err error) error {
	if apperrors.IsDomain(err) {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
