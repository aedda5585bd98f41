package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "tasktracker.com/tasktracker/internal/errors"
	model "tasktracker.com/tasktracker/internal/models"
	repository "tasktracker.com/tasktracker/internal/repositories"
)

type CreateAppointmentInput struct {
	DoctorName string
	Department string
	Date       string
	Time       string
	Symptoms   string
	Priority   string
	Notes      string
}

type UpdateAppointmentInput struct {
	DoctorName   *string
	Department   *string
	Date         *string
	Time         *string
	Symptoms     *string
	Priority     *string
	Status       *string
	Notes        *string
	Prescription *string
}

type DashboardStats struct {
	TotalAppointments     int64 `json:"totalAppointments"`
	UpcomingAppointments  int64 `json:"upcomingAppointments"`
	CompletedAppointments int64 `json:"completedAppointments"`
}

type AppointmentService struct {
	repo  *repository.AppointmentRepository
	users *repository.UserRepository
	log   zerolog.Logger
	now   func() time.Time
}

func NewAppointmentService(repo *repository.AppointmentRepository, users *repository.UserRepository, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{
		repo:  repo,
		users: users,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *AppointmentService) Create(ctx context.Context, patientID string, in CreateAppointmentInput) (*model.Appointment, error) {
	date, err := parseDueDate(in.Date)
	if err != nil || date == nil {
		return nil, apperrors.ErrInvalidDueDate
	}

	priority := model.AppointmentPriorityRoutine
	if in.Priority != "" {
		priority = model.AppointmentPriority(in.Priority)
		if !priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
	}

	patientName := ""
	if user, err := s.users.FindByID(ctx, patientID); err == nil {
		patientName = user.FullName
	}

	now := s.now()
	apt := &model.Appointment{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		PatientName: patientName,
		DoctorName:  strings.TrimSpace(in.DoctorName),
		Department:  strings.TrimSpace(in.Department),
		Date:        *date,
		Time:        in.Time,
		Symptoms:    in.Symptoms,
		Priority:    priority,
		Status:      model.AppointmentScheduled,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, err
	}

	s.log.Debug().Str("id", apt.ID).Str("patient", patientID).Msg("appointment created")
	return apt, nil
}

func (s *AppointmentService) Get(ctx context.Context, id, patientID string) (*model.Appointment, error) {
	return s.repo.FindByID(ctx, id, patientID)
}

func (s *AppointmentService) List(ctx context.Context, patientID string) ([]model.Appointment, error) {
	apts, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if apts == nil {
		apts = []model.Appointment{}
	}
	return apts, nil
}

func (s *AppointmentService) Update(ctx context.Context, id, patientID string, in UpdateAppointmentInput) (*model.Appointment, error) {
	fields := map[string]interface{}{"updated_at": s.now()}

	if in.DoctorName != nil {
		fields["doctor_name"] = strings.TrimSpace(*in.DoctorName)
	}
	if in.Department != nil {
		fields["department"] = strings.TrimSpace(*in.Department)
	}
	if in.Date != nil {
		date, err := parseDueDate(*in.Date)
		if err != nil || date == nil {
			return nil, apperrors.ErrInvalidDueDate
		}
		fields["date"] = *date
	}
	if in.Time != nil {
		fields["time"] = *in.Time
	}
	if in.Symptoms != nil {
		fields["symptoms"] = *in.Symptoms
	}
	if in.Priority != nil {
		p := model.AppointmentPriority(*in.Priority)
		if !p.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
		fields["priority"] = p
	}
	if in.Status != nil {
		st := model.AppointmentStatus(*in.Status)
		if !st.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		fields["status"] = st
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if in.Prescription != nil {
		fields["prescription"] = *in.Prescription
	}

	return s.repo.Update(ctx, id, patientID, fields)
}

// Cancel flips the status in place; the record survives so the patient
// still sees the appointment in their history.
func (s *AppointmentService) Cancel(ctx context.Context, id, patientID string) (*model.Appointment, error) {
	fields := map[string]interface{}{
		"status":     model.AppointmentCancelled,
		"updated_at": s.now(),
	}
	return s.repo.Update(ctx, id, patientID, fields)
}

func (s *AppointmentService) DashboardStats(ctx context.Context, patientID string) (*DashboardStats, error) {
	total, err := s.repo.CountByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.repo.CountUpcoming(ctx, patientID, s.now())
	if err != nil {
		return nil, err
	}
	completed, err := s.repo.CountByStatus(ctx, patientID, model.AppointmentCompleted)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalAppointments:     total,
		UpcomingAppointments:  upcoming,
		CompletedAppointments: completed,
	}, nil
}
