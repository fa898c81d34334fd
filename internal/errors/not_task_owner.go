package errors

import "net/http"

var ErrNotTaskOwner = &Exception{
	Message:    "user does not own this task",
	StatusCode: http.StatusForbidden,
}
