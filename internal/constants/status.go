package constants

import "fmt"

// TaskStatus is the fixed enumeration of task states. Every status change
// appends a new status row; the values themselves never grow at runtime.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "ToDo"
	StatusInProgress TaskStatus = "InProgress"
	StatusInReview   TaskStatus = "InReview"
	StatusDone       TaskStatus = "Done"
	StatusPaused     TaskStatus = "Paused"
	StatusFailed     TaskStatus = "Failed"
)

var statusLabels = map[TaskStatus]string{
	StatusToDo:       "To Do",
	StatusInProgress: "In Progress",
	StatusInReview:   "In Review",
	StatusDone:       "Done",
	StatusPaused:     "Paused",
	StatusFailed:     "Failed",
}

// Label returns the human-readable form shown in task projections.
func (s TaskStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "N/A"
}

func (s TaskStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseTaskStatus converts client input into a TaskStatus.
func ParseTaskStatus(value string) (TaskStatus, error) {
	s := TaskStatus(value)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status value: %q", value)
	}
	return s, nil
}
