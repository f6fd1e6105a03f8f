package errors

import "net/http"

var ErrBoardNotFound = &Exception{
	Message:    "kanban board not found",
	StatusCode: http.StatusNotFound,
}

var ErrBoardExists = &Exception{
	Message:    "a kanban board already exists for this project",
	StatusCode: http.StatusConflict,
}

var ErrColumnNotFound = &Exception{
	Message:    "kanban column not found",
	StatusCode: http.StatusNotFound,
}

var ErrCardNotFound = &Exception{
	Message:    "kanban card not found",
	StatusCode: http.StatusNotFound,
}
