package errors

import "net/http"

var ErrAuthenticationRequired = &Exception{
	Message:    "authentication required",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidToken = &Exception{
	Message:    "invalid authentication token",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidCredentials = &Exception{
	Message:    "invalid email or password",
	StatusCode: http.StatusBadRequest,
}

var ErrForbidden = &Exception{
	Message:    "forbidden",
	StatusCode: http.StatusForbidden,
}
