package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Message:    "invalid username or password",
	StatusCode: http.StatusUnauthorized,
}
