package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusLabels(t *testing.T) {
	labels := map[TaskStatus]string{
		StatusToDo:       "To Do",
		StatusInProgress: "In Progress",
		StatusInReview:   "In Review",
		StatusDone:       "Done",
		StatusPaused:     "Paused",
		StatusFailed:     "Failed",
	}

	for status, want := range labels {
		assert.Equal(t, want, status.Label())
	}

	assert.Equal(t, "N/A", TaskStatus("Bogus").Label())
}

func TestParseTaskStatus(t *testing.T) {
	status, err := ParseTaskStatus("InProgress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = ParseTaskStatus("inprogress")
	assert.Error(t, err)

	_, err = ParseTaskStatus("")
	assert.Error(t, err)
}
