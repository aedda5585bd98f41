package model

type PriorityBreakdown struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

// TaskStats is the summary returned by /api/tasks/stats/summary. Overdue
// is evaluated at query time from Task.OverdueAt, never stored.
type TaskStats struct {
	Total     int64             `json:"total"`
	Completed int64             `json:"completed"`
	Pending   int64             `json:"pending"`
	Overdue   int64             `json:"overdue"`
	Priority  PriorityBreakdown `json:"priority"`
}
