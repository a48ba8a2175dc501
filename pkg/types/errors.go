package types

import "errors"

// Day and task mutation errors. All are recoverable: the caller reports
// the failure and the record is left untouched.
var (
	ErrDayClosed        = errors.New("day is closed")
	ErrDayAlreadyClosed = errors.New("day is already closed")
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskDone         = errors.New("task is already done")
	ErrEmptyText        = errors.New("task text must not be empty")
)

// Backlog errors.
var (
	ErrBacklogItemNotFound = errors.New("backlog item not found")
)

// Habit errors.
var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrHabitExists   = errors.New("habit already exists")
)

// Input validation errors.
var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time of day")
)
