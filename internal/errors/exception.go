package errors

import (
	"errors"
	"net/http"
)

// Exception is an error with a fixed HTTP status. Services return these
// sentinels; handlers never pick status codes themselves.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsException reports whether err carries one of this package's
// sentinels, i.e. whether its message is safe to return to a caller.
func IsException(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr)
}
