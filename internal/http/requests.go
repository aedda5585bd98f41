package http

import (
	"tasktracker.com/tasktracker/internal/services"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Category    string `json:"category"`
}

func (r CreateTaskRequest) toInput() services.CreateTaskInput {
	return services.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Category:    r.Category,
	}
}

// UpdateTaskRequest is a sparse patch; absent keys (and JSON null) stay
// nil and the stored field is preserved. Unknown keys are dropped by the
// decoder rather than rejected.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Category    *string `json:"category"`
}

func (r UpdateTaskRequest) toInput() services.UpdateTaskInput {
	return services.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Category:    r.Category,
	}
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAppointmentRequest struct {
	DoctorName string `json:"doctorName"`
	Department string `json:"department"`
	Date       string `json:"appointmentDate"`
	Time       string `json:"appointmentTime"`
	Symptoms   string `json:"symptoms"`
	Priority   string `json:"priority"`
	Notes      string `json:"notes"`
}

func (r CreateAppointmentRequest) toInput() services.CreateAppointmentInput {
	return services.CreateAppointmentInput{
		DoctorName: r.DoctorName,
		Department: r.Department,
		Date:       r.Date,
		Time:       r.Time,
		Symptoms:   r.Symptoms,
		Priority:   r.Priority,
		Notes:      r.Notes,
	}
}

type UpdateAppointmentRequest struct {
	DoctorName   *string `json:"doctorName"`
	Department   *string `json:"department"`
	Date         *string `json:"appointmentDate"`
	Time         *string `json:"appointmentTime"`
	Symptoms     *string `json:"symptoms"`
	Priority     *string `json:"priority"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
	Prescription *string `json:"prescription"`
}

func (r UpdateAppointmentRequest) toInput() services.UpdateAppointmentInput {
	return services.UpdateAppointmentInput{
		DoctorName:   r.DoctorName,
		Department:   r.Department,
		Date:         r.Date,
		Time:         r.Time,
		Symptoms:     r.Symptoms,
		Priority:     r.Priority,
		Status:       r.Status,
		Notes:        r.Notes,
		Prescription: r.Prescription,
	}
}
