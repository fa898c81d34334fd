package dto

import "time"

type CreateTaskRequest struct {
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type UpdateTaskRequest struct {
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type UpdateTaskAssigneeRequest struct {
	UserID string `json:"user_id"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskDetails is the read-only projection returned by the detail and list
// endpoints. AssignedTo carries the owner's display name, or "None" when the
// task is unassigned.
type TaskDetails struct {
	ID          uint       `json:"id"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assigned_to"`
}
