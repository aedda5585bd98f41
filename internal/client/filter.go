package client

import (
	"strings"
	"time"

	model "tasktracker.com/tasktracker/internal/models"
)

type StatusFilter string

const (
	FilterAll          StatusFilter = "all"
	FilterActive       StatusFilter = "active"
	FilterCompleted    StatusFilter = "completed"
	FilterHighPriority StatusFilter = "high-priority"
	FilterOverdue      StatusFilter = "overdue"
)

func (f StatusFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted, FilterHighPriority, FilterOverdue:
		return true
	default:
		return false
	}
}

// Filter selects the visible subset: the status filter first, then the
// free-text search ANDed on top. An empty filter passes everything
// through in order.
type Filter struct {
	Status StatusFilter
	Search string
}

func (f Filter) Apply(tasks []model.Task, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.matches(&t, now) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) matches(t *model.Task, now time.Time) bool {
	switch f.Status {
	case FilterActive:
		if t.Completed {
			return false
		}
	case FilterCompleted:
		if !t.Completed {
			return false
		}
	case FilterHighPriority:
		if t.Priority != model.PriorityHigh {
			return false
		}
	case FilterOverdue:
		if !t.OverdueAt(now) {
			return false
		}
	}

	search := strings.TrimSpace(strings.ToLower(f.Search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), search) ||
		strings.Contains(strings.ToLower(t.Description), search) ||
		strings.Contains(strings.ToLower(t.Category), search)
}

// Counts are the display numbers re-derived from the replica after every
// merge; they mirror the server's stats shape.
type Counts struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
	High      int
	Medium    int
	Low       int
}

func Summarize(tasks []model.Task, now time.Time) Counts {
	var c Counts
	c.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
		if t.OverdueAt(now) {
			c.Overdue++
		}
		switch t.Priority {
		case model.PriorityHigh:
			c.High++
		case model.PriorityMedium:
			c.Medium++
		case model.PriorityLow:
			c.Low++
		}
	}
	return c
}
