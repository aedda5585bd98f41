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

// dueDateLayouts are the accepted wire formats for due dates. Bare dates
// are read as UTC midnight.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	Category    string
}

// UpdateTaskInput is a sparse patch: nil fields are absent and preserved.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     *string
	Category    *string
}

type TaskService struct {
	repo  *repository.TaskRepository
	cache *StatsCache
	log   zerolog.Logger
	now   func() time.Time
}

func NewTaskService(repo *repository.TaskRepository, cache *StatsCache, log zerolog.Logger) *TaskService {
	return &TaskService{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	priority := model.PriorityMedium
	if in.Priority != "" {
		priority = model.Priority(in.Priority)
		if !priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = model.DefaultCategory
	}

	dueDate, err := parseDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		Completed:   false,
		Priority:    priority,
		DueDate:     dueDate,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.log.Debug().Str("id", task.ID).Msg("task created")
	s.invalidateStats(ctx)
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Update applies a sparse patch: only fields present in the input are
// written, everything else is preserved. UpdatedAt always refreshes.
func (s *TaskService) Update(ctx context.Context, id string, in UpdateTaskInput) (*model.Task, error) {
	patch, err := s.buildPatch(in)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"updated_at": s.now()}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Completed != nil {
		fields["completed"] = *patch.Completed
	}
	if patch.Priority != nil {
		fields["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		fields["due_date"] = *patch.DueDate
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}

	task, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("id", id).Msg("task updated")
	s.invalidateStats(ctx)
	return task, nil
}

func (s *TaskService) buildPatch(in UpdateTaskInput) (model.TaskPatch, error) {
	var patch model.TaskPatch

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return patch, apperrors.ErrTitleRequired
		}
		patch.Title = &title
	}
	if in.Description != nil {
		patch.Description = in.Description
	}
	if in.Completed != nil {
		patch.Completed = in.Completed
	}
	if in.Priority != nil {
		p := model.Priority(*in.Priority)
		if !p.IsValid() {
			return patch, apperrors.ErrInvalidPriority
		}
		patch.Priority = &p
	}
	if in.DueDate != nil {
		due, err := parseDueDate(*in.DueDate)
		if err != nil {
			return patch, err
		}
		if due != nil {
			patch.DueDate = due
		}
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			category = model.DefaultCategory
		}
		patch.Category = &category
	}

	return patch, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Debug().Str("id", id).Msg("task deleted")
	s.invalidateStats(ctx)
	return nil
}

// Stats recomputes overdue against the current clock on every call;
// the cached copy only short-circuits within its TTL.
func (s *TaskService) Stats(ctx context.Context) (*model.TaskStats, error) {
	if stats, ok := s.cache.Get(ctx); ok {
		return stats, nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.repo.CountByCompleted(ctx, true)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountByCompleted(ctx, false)
	if err != nil {
		return nil, err
	}
	overdue, err := s.repo.CountOverdue(ctx, s.now())
	if err != nil {
		return nil, err
	}
	high, err := s.repo.CountByPriority(ctx, model.PriorityHigh)
	if err != nil {
		return nil, err
	}
	medium, err := s.repo.CountByPriority(ctx, model.PriorityMedium)
	if err != nil {
		return nil, err
	}
	low, err := s.repo.CountByPriority(ctx, model.PriorityLow)
	if err != nil {
		return nil, err
	}

	stats := &model.TaskStats{
		Total:     total,
		Completed: completed,
		Pending:   pending,
		Overdue:   overdue,
		Priority: model.PriorityBreakdown{
			High:   high,
			Medium: medium,
			Low:    low,
		},
	}

	s.cache.Set(ctx, stats)
	return stats, nil
}

func (s *TaskService) invalidateStats(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate stats cache")
	}
}

func parseDueDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, apperrors.ErrInvalidDueDate
}
