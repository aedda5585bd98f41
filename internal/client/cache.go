package client

import (
	model "tasktracker.com/tasktracker/internal/models"
)

// Cache is the local replica of the server's task list, in the server's
// order (newest-created-first). Mutations are merged positionally and
// only after the server confirmed them: creates go to the front, updates
// replace in place, deletes remove; the list is never re-sorted locally.
// Not safe for concurrent use; the caller drives it from one goroutine.
type Cache struct {
	tasks []model.Task
}

func NewCache() *Cache {
	return &Cache{}
}

// Refresh replaces the whole replica with the server's list.
func (c *Cache) Refresh(tasks []model.Task) {
	c.tasks = append(c.tasks[:0:0], tasks...)
}

// Tasks returns a copy; callers cannot mutate the replica behind its back.
func (c *Cache) Tasks() []model.Task {
	return append([]model.Task(nil), c.tasks...)
}

func (c *Cache) Len() int {
	return len(c.tasks)
}

func (c *Cache) Get(id string) (model.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// ApplyCreate unshifts the confirmed record to the front, matching the
// server's newest-first order.
func (c *Cache) ApplyCreate(task model.Task) {
	c.tasks = append([]model.Task{task}, c.tasks...)
}

// ApplyUpdate replaces the record in place; position never changes on
// update. Unknown ids are ignored.
func (c *Cache) ApplyUpdate(task model.Task) {
	for i := range c.tasks {
		if c.tasks[i].ID == task.ID {
			c.tasks[i] = task
			return
		}
	}
}

func (c *Cache) ApplyDelete(id string) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
}
