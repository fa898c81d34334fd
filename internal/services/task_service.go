package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// TaskService implements the task-tracking business rules. The acting user id
// is an explicit parameter on every operation; an empty id means an anonymous
// actor, which is a valid identity that matches unassigned tasks.
type TaskService struct {
	tasks *repository.TaskRepository
	users *repository.UserRepository
}

func NewTaskService(tasks *repository.TaskRepository, users *repository.UserRepository) *TaskService {
	return &TaskService{
		tasks: tasks,
		users: users,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, actorID string, description string, dueDate *time.Time) error {
	var ownerUserID *string
	if actorID != "" {
		ownerUserID = &actorID
	}

	_, err := s.tasks.Create(ctx, description, dueDate, ownerUserID)
	return err
}

func (s *TaskService) GetTaskDetails(ctx context.Context, actorID string, taskID uint) (*dto.TaskDetails, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(task, actorID); err != nil {
		return nil, err
	}

	details := projectTask(task)
	return &details, nil
}

func (s *TaskService) ListTasks(ctx context.Context, actorID string) ([]dto.TaskDetails, error) {
	tasks, err := s.tasks.ListByOwner(ctx, actorID)
	if err != nil {
		return nil, err
	}

	details := make([]dto.TaskDetails, 0, len(tasks))
	for i := range tasks {
		details = append(details, projectTask(&tasks[i]))
	}

	return details, nil
}

func (s *TaskService) UpdateTaskAttributes(ctx context.Context, actorID string, taskID uint, description string, dueDate *time.Time) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(task, actorID); err != nil {
		return err
	}

	return s.tasks.UpdateAttributes(ctx, taskID, description, dueDate)
}

// UpdateTaskAssignee repoints a task's owner. The new assignee's existence is
// checked before the caller's ownership; a caller who owns nothing still
// learns "user not found" first when both errors apply.
func (s *TaskService) UpdateTaskAssignee(ctx context.Context, actorID string, taskID uint, newOwnerUserID string) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}

	if _, err := s.users.FindByID(ctx, newOwnerUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.checkOwnership(task, actorID); err != nil {
		return err
	}

	return s.tasks.UpdateAssignee(ctx, taskID, newOwnerUserID)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, actorID string, taskID uint, newStatus constants.TaskStatus) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(task, actorID); err != nil {
		return err
	}

	if task.TaskStatus != nil && task.TaskStatus.Value == newStatus {
		return apperrors.ErrTaskAlreadyHasStatus
	}

	_, err = s.tasks.ChangeStatus(ctx, taskID, newStatus)
	return err
}

func (s *TaskService) DeleteTask(ctx context.Context, actorID string, taskID uint) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(task, actorID); err != nil {
		return err
	}

	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) findTask(ctx context.Context, taskID uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// checkOwnership compares the task owner with the acting user id. Both being
// absent counts as a match: an anonymous actor owns unassigned tasks.
func (s *TaskService) checkOwnership(task *model.Task, actorID string) error {
	if ownerID(task) != actorID {
		return apperrors.ErrNotTaskOwner
	}
	return nil
}

func ownerID(task *model.Task) string {
	if task.OwnerUserID == nil {
		return ""
	}
	return *task.OwnerUserID
}

func projectTask(task *model.Task) dto.TaskDetails {
	status := "N/A"
	if task.TaskStatus != nil {
		status = task.TaskStatus.Value.Label()
	}

	assignedTo := "None"
	if task.Owner != nil {
		assignedTo = task.Owner.Username
	}

	return dto.TaskDetails{
		ID:          task.ID,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      status,
		AssignedTo:  assignedTo,
	}
}
