package errors

import "net/http"

var ErrInvalidPriority = &Exception{
	Message:    "Priority must be one of low, medium or high",
	StatusCode: http.StatusBadRequest,
}
