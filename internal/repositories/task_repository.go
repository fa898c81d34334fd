package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a fresh ToDo status row and the task referencing it. Both
// writes run in one transaction so a crash cannot leave a status row behind
// without its task.
func (r *TaskRepository) Create(ctx context.Context, description string, dueDate *time.Time, ownerUserID *string) (*model.Task, error) {
	task := &model.Task{
		Description: description,
		DueDate:     dueDate,
		OwnerUserID: ownerUserID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		status := &model.TaskStatusRecord{Value: constants.StatusToDo}
		if err := tx.Create(status).Error; err != nil {
			return err
		}

		task.TaskStatusID = status.ID
		task.TaskStatus = status
		return tx.Create(task).Error
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("TaskStatus").
		Preload("Owner").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner returns tasks owned by the given user id. An empty id matches
// unassigned tasks only, never all tasks.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("TaskStatus").
		Preload("Owner")

	if ownerUserID == "" {
		query = query.Where("owner_user_id IS NULL")
	} else {
		query = query.Where("owner_user_id = ?", ownerUserID)
	}

	var tasks []model.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) UpdateAttributes(ctx context.Context, id uint, description string, dueDate *time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"description": description,
			"due_date":    dueDate,
		}).Error
}

func (r *TaskRepository) UpdateAssignee(ctx context.Context, id uint, ownerUserID string) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("owner_user_id", ownerUserID).Error
}

// ChangeStatus appends a new status row and repoints the task at it. The old
// row is left behind as history, by the same transaction rule as Create.
func (r *TaskRepository) ChangeStatus(ctx context.Context, id uint, value constants.TaskStatus) (*model.TaskStatusRecord, error) {
	status := &model.TaskStatusRecord{Value: value}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(status).Error; err != nil {
			return err
		}

		return tx.Model(&model.Task{}).
			Where("id = ?", id).
			Update("task_status_id", status.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// Delete removes the task row. Historical status rows are deliberately not
// cascaded; they are never looked up except through a live task.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}
