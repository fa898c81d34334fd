package errors

import "net/http"

var ErrTaskAlreadyHasStatus = &Exception{
	Message:    "task already has this status",
	StatusCode: http.StatusConflict,
}
