package model

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

const DefaultCategory = "General"

type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null;default:''" json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Priority    Priority   `gorm:"type:varchar(10);not null" json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `gorm:"not null;default:'General'" json:"category"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// OverdueAt is the single definition of "overdue": a set due date strictly
// before now on a task that is not completed. Compared as UTC instants.
// Never persisted; stats, filters and badges all call this.
func (t *Task) OverdueAt(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.Completed
}

// TaskPatch is a sparse patch: nil means the field is absent and must be
// preserved. JSON null decodes to nil too, so a patch can overwrite a
// field but never clear it.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	DueDate     *time.Time
	Category    *string
}

// IsZero reports whether the patch carries no fields at all.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.Priority == nil && p.DueDate == nil && p.Category == nil
}
