package model

import (
	"time"
)

type AppointmentPriority string

const (
	AppointmentPriorityRoutine  AppointmentPriority = "routine"
	AppointmentPriorityModerate AppointmentPriority = "moderate"
	AppointmentPriorityUrgent   AppointmentPriority = "urgent"
)

func (p AppointmentPriority) IsValid() bool {
	switch p {
	case AppointmentPriorityRoutine, AppointmentPriorityModerate, AppointmentPriorityUrgent:
		return true
	default:
		return false
	}
}

type AppointmentStatus string

const (
	AppointmentScheduled   AppointmentStatus = "scheduled"
	AppointmentCompleted   AppointmentStatus = "completed"
	AppointmentCancelled   AppointmentStatus = "cancelled"
	AppointmentRescheduled AppointmentStatus = "rescheduled"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentRescheduled:
		return true
	default:
		return false
	}
}

// Appointment is always owned by the patient that created it; every query
// is scoped by PatientID. Deleting an appointment cancels it in place,
// unlike tasks which are hard-deleted.
type Appointment struct {
	ID           string              `gorm:"primaryKey;size:36" json:"id"`
	PatientID    string              `gorm:"not null;index" json:"patientId"`
	PatientName  string              `json:"patientName"`
	DoctorName   string              `gorm:"not null" json:"doctorName"`
	Department   string              `gorm:"not null" json:"department"`
	Date         time.Time           `gorm:"not null" json:"appointmentDate"`
	Time         string              `gorm:"not null" json:"appointmentTime"`
	Symptoms     string              `gorm:"not null" json:"symptoms"`
	Priority     AppointmentPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Status       AppointmentStatus   `gorm:"type:varchar(15);not null" json:"status"`
	Notes        string              `json:"notes"`
	Prescription string              `json:"prescription"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}
