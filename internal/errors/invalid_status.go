package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "Invalid appointment status",
	StatusCode: http.StatusBadRequest,
}
