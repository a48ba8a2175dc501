package types

import (
	"strings"
	"time"
)

// Day is a date-scoped container of tasks with an open/closed lifecycle.
// A closed day is immutable except for an explicit administrative reopen,
// which replaces it with a fresh open day.
type Day struct {
	Tasks     []Task     `json:"tasks"`
	Closed    bool       `json:"closed"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// NewDay creates an empty open day.
func NewDay(now time.Time) *Day {
	return &Day{CreatedAt: now}
}

// EnsureDefaults populates an empty day with the given default texts,
// ids 1..N in order. No-op when the day already has tasks, so calling
// it twice yields the same plan as calling it once.
// Returns true when it seeded the day.
func (d *Day) EnsureDefaults(texts []string, now time.Time) bool {
	if len(d.Tasks) > 0 {
		return false
	}
	for _, text := range texts {
		t := NewTask(text, now)
		t.ID = len(d.Tasks) + 1
		d.Tasks = append(d.Tasks, t)
	}
	return len(d.Tasks) > 0
}

// EnsureMinimum appends default texts not already present in the day
// (exact text match) until it holds at least n tasks or the unused
// defaults run out, then renumbers.
func (d *Day) EnsureMinimum(texts []string, n int, now time.Time) {
	for _, text := range texts {
		if len(d.Tasks) >= n {
			break
		}
		if d.HasText(text) {
			continue
		}
		t := NewTask(text, now)
		d.Tasks = append(d.Tasks, t)
	}
	d.Renumber()
}

// Add appends an open task with a fresh id.
// Returns ErrDayClosed when the day is closed and ErrEmptyText when the
// text is blank.
func (d *Day) Add(text string, now time.Time) (*Task, error) {
	if d.Closed {
		return nil, ErrDayClosed
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	t := NewTask(text, now)
	t.ID = len(d.Tasks) + 1
	d.Tasks = append(d.Tasks, t)
	return &d.Tasks[len(d.Tasks)-1], nil
}

// MarkDone completes the task with the given id and stamps DoneAt.
// Returns ErrDayClosed, ErrTaskNotFound, or ErrTaskDone when the task
// was already completed. The ErrTaskDone case is a distinct outcome,
// not a silent success: callers surface it to the user as-is.
func (d *Day) MarkDone(id int, now time.Time) (*Task, error) {
	if d.Closed {
		return nil, ErrDayClosed
	}
	t := d.Find(id)
	if t == nil {
		return nil, ErrTaskNotFound
	}
	if t.Done() {
		return nil, ErrTaskDone
	}
	t.Status = TaskStatusDone
	doneAt := now
	t.DoneAt = &doneAt
	return t, nil
}

// Remove deletes every task whose id is in ids, renumbers the rest, and
// returns the removed tasks in their original order.
// Returns ErrDayClosed on a closed day and ErrTaskNotFound when no id
// matched.
func (d *Day) Remove(ids map[int]bool) ([]Task, error) {
	if d.Closed {
		return nil, ErrDayClosed
	}
	var removed, kept []Task
	for _, t := range d.Tasks {
		if ids[t.ID] {
			removed = append(removed, t)
		} else {
			kept = append(kept, t)
		}
	}
	if len(removed) == 0 {
		return nil, ErrTaskNotFound
	}
	d.Tasks = kept
	d.Renumber()
	return removed, nil
}

// Renumber reassigns ids 1..N in current list order. Insertion order is
// the only order; nothing is ever sorted by another key.
// Invoked at the end of every mutating operation.
func (d *Day) Renumber() {
	for i := range d.Tasks {
		d.Tasks[i].ID = i + 1
	}
}

// Find returns the task with the given id, or nil.
func (d *Day) Find(id int) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}

// HasText reports whether any task in the day has exactly this text.
func (d *Day) HasText(text string) bool {
	for _, t := range d.Tasks {
		if t.Text == text {
			return true
		}
	}
	return false
}

// Partition splits the task list into done and not-done, both in
// original list order.
func (d *Day) Partition() (done, notDone []Task) {
	for _, t := range d.Tasks {
		if t.Done() {
			done = append(done, t)
		} else {
			notDone = append(notDone, t)
		}
	}
	return done, notDone
}
