package errors

import (
	"errors"
	"net/http"
)

// Exception is an expected business-rule failure. Domain errors carry the
// transport status they map to so the boundary never needs a translation
// table; anything else is treated as a systemic fault.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode resolves the HTTP status for an error, falling back to 500 for
// non-domain failures.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsDomain reports whether err is one of the expected business-rule failures.
func IsDomain(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr)
}
