// Package view computes the per-record display fields at render time.
// Nothing here is ever persisted.
package view

import (
	"html"
	"time"

	model "tasktracker.com/tasktracker/internal/models"
)

// EmptyStateMessage is shown instead of an empty list when a filter
// matches nothing.
const EmptyStateMessage = "No tasks found. Add a new task to get started!"

type TaskView struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Completed     bool
	Overdue       bool
	DueLabel      string
	PriorityIcon  string
	PriorityLabel string
}

// Render escapes all user-supplied text so the result can be inserted
// into markup directly.
func Render(t model.Task, now time.Time) TaskView {
	icon, label := priorityBadge(t.Priority)
	return TaskView{
		ID:            t.ID,
		Title:         html.EscapeString(t.Title),
		Description:   html.EscapeString(t.Description),
		Category:      html.EscapeString(t.Category),
		Completed:     t.Completed,
		Overdue:       t.OverdueAt(now),
		DueLabel:      DueLabel(t.DueDate, now),
		PriorityIcon:  icon,
		PriorityLabel: label,
	}
}

// DueLabel turns a due date into a human label. Day boundaries are UTC
// calendar days, consistent with how due dates are stored.
func DueLabel(due *time.Time, now time.Time) string {
	if due == nil {
		return ""
	}

	dueDay := due.UTC().Truncate(24 * time.Hour)
	today := now.UTC().Truncate(24 * time.Hour)

	switch dueDay.Sub(today) {
	case 0:
		return "Today"
	case 24 * time.Hour:
		return "Tomorrow"
	}
	return due.UTC().Format("Jan 2, 2006")
}

func priorityBadge(p model.Priority) (icon, label string) {
	switch p {
	case model.PriorityHigh:
		return "🔴", "High"
	case model.PriorityLow:
		return "🟢", "Low"
	default:
		return "🟡", "Medium"
	}
}
