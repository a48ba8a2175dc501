package types

import (
	"strings"
	"time"
)

// Task statuses. A task is either still open or finished; there are no
// intermediate states.
const (
	TaskStatusTodo = "todo"
	TaskStatusDone = "done"
)

// Task is a single entry in a day's plan.
//
// IDs are dense 1..N in list order and scoped to the owning Day. They
// are renumbered after every mutation and are NOT stable across saves;
// callers must re-resolve ids against a freshly loaded record.
type Task struct {
	ID          int        `json:"id"`
	Text        string     `json:"text"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DoneAt      *time.Time `json:"done_at,omitempty"`
	CarryCount  int        `json:"carry_count,omitempty"`
	CarriedFrom string     `json:"carried_from,omitempty"`
}

// NewTask creates an open task with the given text. The id is assigned
// by the owning day on insert.
func NewTask(text string, now time.Time) Task {
	return Task{
		Text:      strings.TrimSpace(text),
		Status:    TaskStatusTodo,
		CreatedAt: now,
	}
}

// Done reports whether the task has been completed.
func (t Task) Done() bool { return t.Status == TaskStatusDone }
