package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Message:    "user not found",
	StatusCode: http.StatusNotFound,
}

var ErrEmailInUse = &Exception{
	Message:    "email already in use",
	StatusCode: http.StatusConflict,
}

var ErrWrongCurrentPassword = &Exception{
	Message:    "current password is incorrect",
	StatusCode: http.StatusBadRequest,
}
