package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "invalid status value, must be one of ToDo, InProgress, InReview, Done, Paused, Failed",
	StatusCode: http.StatusBadRequest,
}
