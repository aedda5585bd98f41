package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "Email already registered",
	StatusCode: http.StatusBadRequest,
}
