package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "tasktracker.com/tasktracker/internal/models"
)

var filterNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func sampleTasks() []model.Task {
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2999, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.Task{
		{ID: "1", Title: "Checkup", Description: "Annual exam", Category: "Health", Priority: model.PriorityHigh, DueDate: &past},
		{ID: "2", Title: "Groceries", Description: "Milk", Category: "Errands", Priority: model.PriorityLow},
		{ID: "3", Title: "Report", Description: "Quarterly numbers", Category: "Work", Priority: model.PriorityHigh, Completed: true},
		{ID: "4", Title: "Dentist", Description: "Cleaning", Category: "Health", Priority: model.PriorityMedium, DueDate: &future},
	}
}

func TestFilterAllWithEmptySearchIsIdentity(t *testing.T) {
	tasks := sampleTasks()
	got := Filter{Status: FilterAll}.Apply(tasks, filterNow)
	require.Equal(t, tasks, got, "all + empty search must return the full set unchanged in order")
}

func TestFilterResultsAreSubsetsSatisfyingPredicate(t *testing.T) {
	tasks := sampleTasks()

	cases := []struct {
		status StatusFilter
		check  func(model.Task) bool
	}{
		{FilterActive, func(t model.Task) bool { return !t.Completed }},
		{FilterCompleted, func(t model.Task) bool { return t.Completed }},
		{FilterHighPriority, func(t model.Task) bool { return t.Priority == model.PriorityHigh }},
		{FilterOverdue, func(t model.Task) bool { return t.OverdueAt(filterNow) }},
	}

	for _, tc := range cases {
		got := Filter{Status: tc.status}.Apply(tasks, filterNow)
		assert.LessOrEqual(t, len(got), len(tasks), "filter %s", tc.status)
		for _, task := range got {
			assert.True(t, tc.check(task), "filter %s returned non-matching task %s", tc.status, task.ID)
		}
	}
}

func TestFilterOverdue(t *testing.T) {
	got := Filter{Status: FilterOverdue}.Apply(sampleTasks(), filterNow)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID, "only the past-due incomplete task is overdue")
}

func TestFilterSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	tasks := sampleTasks()

	byTitle := Filter{Status: FilterAll, Search: "CHECKUP"}.Apply(tasks, filterNow)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "1", byTitle[0].ID)

	byDescription := Filter{Status: FilterAll, Search: "quarterly"}.Apply(tasks, filterNow)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "3", byDescription[0].ID)

	byCategory := Filter{Status: FilterAll, Search: "health"}.Apply(tasks, filterNow)
	require.Len(t, byCategory, 2)
}

func TestFilterSearchAndsWithStatus(t *testing.T) {
	got := Filter{Status: FilterActive, Search: "health"}.Apply(sampleTasks(), filterNow)
	require.Len(t, got, 2, "both health tasks are active")

	got = Filter{Status: FilterCompleted, Search: "health"}.Apply(sampleTasks(), filterNow)
	assert.Empty(t, got, "no completed task matches health")
}

func TestFilterEmptyResultIsEmptyNotNil(t *testing.T) {
	got := Filter{Status: FilterAll, Search: "no such thing"}.Apply(sampleTasks(), filterNow)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarizeMatchesStatsShape(t *testing.T) {
	c := Summarize(sampleTasks(), filterNow)

	assert.Equal(t, 4, c.Total)
	assert.Equal(t, c.Total, c.Completed+c.Pending)
	assert.Equal(t, 1, c.Overdue)
	assert.Equal(t, 2, c.High)
	assert.Equal(t, 1, c.Medium)
	assert.Equal(t, 1, c.Low)
}
