package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Message:    "assigned user not found",
	StatusCode: http.StatusNotFound,
}
