package types

import (
	"strings"
	"time"
)

// NotifyConfig holds the per-user reminder schedule. Times are "HH:MM"
// wall-clock values; zero values mean the reminder is not configured.
type NotifyConfig struct {
	Enabled   bool   `json:"enabled"`
	MorningAt string `json:"morning_at,omitempty"`
	EveningAt string `json:"evening_at,omitempty"`
}

// UserRecord is the per-user aggregate and the unit of persistence.
// One record per opaque user id; the whole record is read before and
// written after every command, never field by field.
type UserRecord struct {
	UserID    string                     `json:"user_id"`
	CreatedAt time.Time                  `json:"created_at"`
	Days      map[string]*Day            `json:"days"`
	Backlog   []BacklogItem              `json:"backlog,omitempty"`
	Habits    []Habit                    `json:"habits,omitempty"`
	HabitLog  map[string]map[string]bool `json:"habit_log,omitempty"`
	Notify    NotifyConfig               `json:"notifications"`
}

// NewUserRecord creates a fresh empty record for the given user id.
func NewUserRecord(userID string, now time.Time) *UserRecord {
	return &UserRecord{
		UserID:    userID,
		CreatedAt: now,
		Days:      make(map[string]*Day),
	}
}

// Day returns the day for the given ISO date key, creating an empty
// open day on first reference.
func (r *UserRecord) Day(date string, now time.Time) *Day {
	if r.Days == nil {
		r.Days = make(map[string]*Day)
	}
	d, ok := r.Days[date]
	if !ok {
		d = NewDay(now)
		r.Days[date] = d
	}
	return d
}

// ResetDay replaces the day at the given date with a fresh empty open
// day and returns it. This is the administrative reopen: the previous
// contents, closed or not, are discarded.
func (r *UserRecord) ResetDay(date string, now time.Time) *Day {
	if r.Days == nil {
		r.Days = make(map[string]*Day)
	}
	d := NewDay(now)
	r.Days[date] = d
	return d
}

// Demote moves a task into the backlog. When an item with identical
// text already exists the task merges into it: the carry count becomes
// the max of the two and LastSeenAt is refreshed, but no new item is
// created. Otherwise a new item is appended with id = max existing + 1.
// Returns the item the task ended up in.
func (r *UserRecord) Demote(task Task, sourceDay string, now time.Time) *BacklogItem {
	for i := range r.Backlog {
		if r.Backlog[i].Text == task.Text {
			if task.CarryCount > r.Backlog[i].CarryCount {
				r.Backlog[i].CarryCount = task.CarryCount
			}
			r.Backlog[i].LastSeenAt = now
			return &r.Backlog[i]
		}
	}
	maxID := 0
	for _, b := range r.Backlog {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	r.Backlog = append(r.Backlog, BacklogItem{
		ID:         maxID + 1,
		Text:       task.Text,
		CreatedAt:  now,
		LastSeenAt: now,
		SourceDay:  sourceDay,
		CarryCount: task.CarryCount,
	})
	return &r.Backlog[len(r.Backlog)-1]
}

// AddToBacklog appends a free-standing backlog item (no source day).
// Merges by text the same way Demote does.
// Returns ErrEmptyText on blank text.
func (r *UserRecord) AddToBacklog(text string, now time.Time) (*BacklogItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	t := NewTask(text, now)
	return r.Demote(t, "", now), nil
}

// FindBacklogItem returns the backlog item with the given id, or nil.
func (r *UserRecord) FindBacklogItem(id int) *BacklogItem {
	for i := range r.Backlog {
		if r.Backlog[i].ID == id {
			return &r.Backlog[i]
		}
	}
	return nil
}

// RemoveBacklogItem deletes the item with the given id and renumbers
// the remainder. Returns the removed item or ErrBacklogItemNotFound.
func (r *UserRecord) RemoveBacklogItem(id int) (BacklogItem, error) {
	for i := range r.Backlog {
		if r.Backlog[i].ID == id {
			removed := r.Backlog[i]
			r.Backlog = append(r.Backlog[:i], r.Backlog[i+1:]...)
			r.RenumberBacklog()
			return removed, nil
		}
	}
	return BacklogItem{}, ErrBacklogItemNotFound
}

// RenumberBacklog reassigns backlog ids 1..N in current list order,
// the same convention as task ids.
func (r *UserRecord) RenumberBacklog() {
	for i := range r.Backlog {
		r.Backlog[i].ID = i + 1
	}
}

// AddHabit appends a habit definition.
// Returns ErrHabitExists when the key is already configured and
// ErrEmptyText on a blank key or title.
func (r *UserRecord) AddHabit(key, title string) error {
	key = strings.TrimSpace(key)
	title = strings.TrimSpace(title)
	if key == "" || title == "" {
		return ErrEmptyText
	}
	if r.HabitByKey(key) != nil {
		return ErrHabitExists
	}
	r.Habits = append(r.Habits, Habit{Key: key, Title: title})
	return nil
}

// RemoveHabit deletes a habit definition. Log entries for the key are
// kept; they become unreachable history.
// Returns ErrHabitNotFound for unknown keys.
func (r *UserRecord) RemoveHabit(key string) error {
	for i, h := range r.Habits {
		if h.Key == key {
			r.Habits = append(r.Habits[:i], r.Habits[i+1:]...)
			return nil
		}
	}
	return ErrHabitNotFound
}

// HabitByKey returns the habit definition for key, or nil.
func (r *UserRecord) HabitByKey(key string) *Habit {
	for i := range r.Habits {
		if r.Habits[i].Key == key {
			return &r.Habits[i]
		}
	}
	return nil
}

// HabitState returns the tri-state value logged for a habit on a date.
func (r *UserRecord) HabitState(date, key string) HabitState {
	day, ok := r.HabitLog[date]
	if !ok {
		return HabitUnset
	}
	v, ok := day[key]
	if !ok {
		return HabitUnset
	}
	if v {
		return HabitDone
	}
	return HabitMissed
}

// ToggleHabit advances a habit's state for a date through the cycle
// unset -> done -> missed -> unset and returns the new state.
// Returns ErrHabitNotFound for keys with no definition.
func (r *UserRecord) ToggleHabit(date, key string) (HabitState, error) {
	if r.HabitByKey(key) == nil {
		return HabitUnset, ErrHabitNotFound
	}
	if r.HabitLog == nil {
		r.HabitLog = make(map[string]map[string]bool)
	}
	day, ok := r.HabitLog[date]
	if !ok {
		day = make(map[string]bool)
		r.HabitLog[date] = day
	}
	switch r.HabitState(date, key) {
	case HabitUnset:
		day[key] = true
		return HabitDone, nil
	case HabitDone:
		day[key] = false
		return HabitMissed, nil
	default:
		delete(day, key)
		return HabitUnset, nil
	}
}

// HabitTally counts habits logged done on a date against the number
// configured. Unset habits count as neither done nor missed.
func (r *UserRecord) HabitTally(date string) (done, total int) {
	total = len(r.Habits)
	for _, h := range r.Habits {
		if r.HabitState(date, h.Key) == HabitDone {
			done++
		}
	}
	return done, total
}
