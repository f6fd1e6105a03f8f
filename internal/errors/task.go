package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrAssigneeNotFound = &Exception{
	Message:    "assigned user does not exist",
	StatusCode: http.StatusBadRequest,
}

var ErrNoFieldsToUpdate = &Exception{
	Message:    "no valid fields to update",
	StatusCode: http.StatusBadRequest,
}

// ErrTaskConflict is returned when a conditional write observes that the
// task changed under it. The caller should re-read and resubmit.
var ErrTaskConflict = &Exception{
	Message:    "task was modified concurrently",
	StatusCode: http.StatusConflict,
}
