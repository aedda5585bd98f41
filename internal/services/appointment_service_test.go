package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	apperrors "tasktracker.com/tasktracker/internal/errors"
	model "tasktracker.com/tasktracker/internal/models"
	repository "tasktracker.com/tasktracker/internal/repositories"
)

func newAppointmentService(t *testing.T) (*AppointmentService, *AuthService) {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	apts := repository.NewAppointmentRepository(db)
	return NewAppointmentService(apts, users, zerolog.Nop()), NewAuthService(users, testSecret)
}

func createAppointmentInput(date string) CreateAppointmentInput {
	return CreateAppointmentInput{
		DoctorName: "Dr. Lee",
		Department: "Cardiology",
		Date:       date,
		Time:       "10:30",
		Symptoms:   "Chest pain",
	}
}

func TestAppointmentService_CreateDefaults(t *testing.T) {
	svc, auth := newAppointmentService(t)
	ctx := context.Background()

	user, _, err := auth.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	apt, err := svc.Create(ctx, user.ID, createAppointmentInput("2026-06-01"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if apt.Status != model.AppointmentScheduled {
		t.Errorf("expected status scheduled, got %s", apt.Status)
	}
	if apt.Priority != model.AppointmentPriorityRoutine {
		t.Errorf("expected priority routine, got %s", apt.Priority)
	}
	if apt.PatientID != user.ID {
		t.Errorf("expected patientId %q, got %q", user.ID, apt.PatientID)
	}
	if apt.PatientName != "Jordan Smith" {
		t.Errorf("expected patient name filled from profile, got %q", apt.PatientName)
	}
}

func TestAppointmentService_ScopedToPatient(t *testing.T) {
	svc, auth := newAppointmentService(t)
	ctx := context.Background()

	owner, _, _ := auth.Register(ctx, registerInput())
	other, _, err := auth.Register(ctx, RegisterInput{
		FullName: "Sam Doe", Email: "sam@example.com", Password: "another password", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	apt, err := svc.Create(ctx, owner.ID, createAppointmentInput("2026-06-01"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Get(ctx, apt.ID, other.ID); !errors.Is(err, apperrors.ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound for foreign patient, got %v", err)
	}

	list, err := svc.List(ctx, other.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("foreign patient should see no appointments, got %d", len(list))
	}
}

func TestAppointmentService_CancelKeepsRecord(t *testing.T) {
	svc, auth := newAppointmentService(t)
	ctx := context.Background()

	user, _, _ := auth.Register(ctx, registerInput())
	apt, err := svc.Create(ctx, user.ID, createAppointmentInput("2026-06-01"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	cancelled, err := svc.Cancel(ctx, apt.ID, user.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != model.AppointmentCancelled {
		t.Errorf("expected status cancelled, got %s", cancelled.Status)
	}

	// the record is still there, unlike a task delete
	got, err := svc.Get(ctx, apt.ID, user.ID)
	if err != nil {
		t.Fatalf("get after cancel failed: %v", err)
	}
	if got.Status != model.AppointmentCancelled {
		t.Errorf("expected persisted cancelled status, got %s", got.Status)
	}
}

func TestAppointmentService_DashboardStats(t *testing.T) {
	svc, auth := newAppointmentService(t)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	user, _, _ := auth.Register(ctx, registerInput())

	past, err := svc.Create(ctx, user.ID, createAppointmentInput("2026-01-01"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, user.ID, createAppointmentInput("2026-06-01")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := string(model.AppointmentCompleted)
	if _, err := svc.Update(ctx, past.ID, user.ID, UpdateAppointmentInput{Status: &status}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stats, err := svc.DashboardStats(ctx, user.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalAppointments != 2 {
		t.Errorf("expected 2 total, got %d", stats.TotalAppointments)
	}
	if stats.UpcomingAppointments != 1 {
		t.Errorf("expected 1 upcoming, got %d", stats.UpcomingAppointments)
	}
	if stats.CompletedAppointments != 1 {
		t.Errorf("expected 1 completed, got %d", stats.CompletedAppointments)
	}
}
