package errors

import "net/http"

var ErrAppointmentNotFound = &Exception{
	Message:    "Appointment not found",
	StatusCode: http.StatusNotFound,
}
