package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "tasktracker.com/tasktracker/internal/models"
	repository "tasktracker.com/tasktracker/internal/repositories"
	"tasktracker.com/tasktracker/internal/services"
)

var testJWTSecret = []byte("test-secret")

func newTestServer(t *testing.T) *echo.Echo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Task{}, &model.User{}, &model.Appointment{}))
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	aptRepo := repository.NewAppointmentRepository(db)

	h := NewHandler(
		services.NewTaskService(taskRepo, nil, zerolog.Nop()),
		services.NewAuthService(userRepo, testJWTSecret),
		services.NewAppointmentService(aptRepo, userRepo, zerolog.Nop()),
	)

	e := echo.New()
	Register(e, h, 10000, testJWTSecret)
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestCreateTaskEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/tasks", `{"title":"Checkup","priority":"high","dueDate":"2020-01-01"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var task model.Task
	decode(t, rec, &task)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Checkup", task.Title)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, "General", task.Category)
	assert.False(t, task.Completed)
}

func TestCreateTaskMissingTitleLeavesStoreUnchanged(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/tasks", `{"description":"x"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Title is required", body["error"])

	rec = doJSON(e, http.MethodGet, "/api/tasks", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []model.Task
	decode(t, rec, &tasks)
	assert.Empty(t, tasks)
}

func TestGetTaskNotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/tasks/no-such-id", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Task not found", body["error"])
}

func TestUpdateTaskSparsePatch(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/tasks", `{"title":"Groceries","description":"Milk","category":"Errands"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Task
	decode(t, rec, &created)

	rec = doJSON(e, http.MethodPut, "/api/tasks/"+created.ID, `{"completed":true,"ignored":"field"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Task
	decode(t, rec, &updated)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Groceries", updated.Title)
	assert.Equal(t, "Milk", updated.Description)
	assert.Equal(t, "Errands", updated.Category)
}

func TestDeleteTaskEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/tasks", `{"title":"temp"}`, "")
	var created model.Task
	decode(t, rec, &created)

	rec = doJSON(e, http.MethodDelete, "/api/tasks/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Task deleted successfully", body["message"])

	rec = doJSON(e, http.MethodDelete, "/api/tasks/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsSummaryEndpoint(t *testing.T) {
	e := newTestServer(t)

	doJSON(e, http.MethodPost, "/api/tasks", `{"title":"a","priority":"high","dueDate":"2020-01-01"}`, "")
	doJSON(e, http.MethodPost, "/api/tasks", `{"title":"b","priority":"low"}`, "")

	rec := doJSON(e, http.MethodGet, "/api/tasks/stats/summary", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats model.TaskStats
	decode(t, rec, &stats)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, stats.Total, stats.Completed+stats.Pending)
	assert.Equal(t, int64(1), stats.Overdue)
	assert.Equal(t, int64(1), stats.Priority.High)
	assert.Equal(t, int64(1), stats.Priority.Low)
}

func TestAppointmentsRequireAuth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/appointments", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/appointments", "", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthAndAppointmentFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"fullName":"Jordan Smith","email":"jordan@example.com","password":"long enough pass","phone":"555-0100"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var auth struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	decode(t, rec, &auth)
	require.NotEmpty(t, auth.Token)
	assert.NotContains(t, rec.Body.String(), "long enough pass")

	rec = doJSON(e, http.MethodPost, "/api/appointments",
		`{"doctorName":"Dr. Lee","department":"Cardiology","appointmentDate":"2026-06-01","appointmentTime":"10:30","symptoms":"Chest pain"}`,
		auth.Token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var apt model.Appointment
	decode(t, rec, &apt)
	assert.Equal(t, auth.User.ID, apt.PatientID)
	assert.Equal(t, model.AppointmentScheduled, apt.Status)

	rec = doJSON(e, http.MethodDelete, "/api/appointments/"+apt.ID, "", auth.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/appointments/"+apt.ID, "", auth.Token)
	require.Equal(t, http.StatusOK, rec.Code, "cancelled appointment remains readable")
	decode(t, rec, &apt)
	assert.Equal(t, model.AppointmentCancelled, apt.Status)

	rec = doJSON(e, http.MethodGet, "/api/dashboard/stats", "", auth.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats services.DashboardStats
	decode(t, rec, &stats)
	assert.Equal(t, int64(1), stats.TotalAppointments)
	assert.Equal(t, int64(0), stats.UpcomingAppointments)
}

func TestLoginEndpoint(t *testing.T) {
	e := newTestServer(t)

	doJSON(e, http.MethodPost, "/api/auth/register",
		`{"fullName":"Jordan Smith","email":"jordan@example.com","password":"long enough pass"}`, "")

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"jordan@example.com","password":"long enough pass"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"jordan@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Invalid email or password", body["error"])
}
