package service

import (
	"github.com/mesh-intelligence/dayplan/internal/engine"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// Command is the closed set of planner commands. Each variant carries
// its typed payload; Do dispatches on the variant in a single switch.
// There is deliberately no string-keyed dispatch anywhere.
type Command interface {
	isCommand()
}

// ShowToday returns today's plan, creating and seeding it on first use.
type ShowToday struct{}

// MarkTaskDone completes one of today's tasks.
type MarkTaskDone struct {
	TaskID int
}

// CloseDay closes today, carries or demotes the leftovers, seeds
// tomorrow, and produces the evening report.
type CloseDay struct{}

// AddTask appends a task to the chosen destination.
type AddTask struct {
	Dest Destination
	Text string
}

// RemoveTasks deletes tasks by id from the day at Date (today when
// empty).
type RemoveTasks struct {
	Date string
	IDs  []int
}

// TriageBacklog applies one triage decision to a backlog item.
type TriageBacklog struct {
	ItemID int
	Action engine.TriageAction
}

// ShowBacklog returns the triage view of the backlog.
type ShowBacklog struct{}

// ToggleHabit advances a habit's tri-state for the day at Date (today
// when empty).
type ToggleHabit struct {
	Date string
	Key  string
}

// AddHabit defines a new tracked habit.
type AddHabit struct {
	Key   string
	Title string
}

// RemoveHabit drops a habit definition; its log history remains.
type RemoveHabit struct {
	Key string
}

// ShowHabits renders the habit grid for the month containing Date
// (the current month when empty).
type ShowHabits struct {
	Date string
}

// ReopenDay discards the day at Date (today when empty) and reseeds a
// fresh default plan. This is the only way out of the closed state.
type ReopenDay struct {
	Date string
}

// SetNotify replaces the user's reminder schedule.
type SetNotify struct {
	Config types.NotifyConfig
}

func (ShowToday) isCommand()     {}
func (MarkTaskDone) isCommand()  {}
func (CloseDay) isCommand()      {}
func (AddTask) isCommand()       {}
func (RemoveTasks) isCommand()   {}
func (TriageBacklog) isCommand() {}
func (ShowBacklog) isCommand()   {}
func (ToggleHabit) isCommand()   {}
func (AddHabit) isCommand()      {}
func (RemoveHabit) isCommand()   {}
func (ShowHabits) isCommand()    {}
func (ReopenDay) isCommand()     {}
func (SetNotify) isCommand()     {}

// Destination picks where AddTask puts the new task. Only today can
// ever be closed, so adds to other days cannot hit ErrDayClosed.
type Destination interface {
	isDestination()
}

// Today targets the current day.
type Today struct{}

// Tomorrow targets the next day.
type Tomorrow struct{}

// OnDate targets an explicit ISO date.
type OnDate struct {
	Date string
}

// ToBacklog parks the text in the backlog directly.
type ToBacklog struct{}

func (Today) isDestination()     {}
func (Tomorrow) isDestination()  {}
func (OnDate) isDestination()    {}
func (ToBacklog) isDestination() {}
