package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Message:    "Invalid email or password",
	StatusCode: http.StatusUnauthorized,
}
