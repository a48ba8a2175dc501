package types

// Habit is one tracked habit definition. Key is the stable identifier
// used in the log; Title is what the user sees.
type Habit struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// HabitState is the tri-state value of one habit on one date. A date
// with no log entry for a key is HabitUnset ("not yet assessed"), which
// counts as neither done nor missed.
type HabitState int

const (
	HabitUnset HabitState = iota
	HabitDone
	HabitMissed
)

// String returns the state name for rendering and JSON payloads.
func (s HabitState) String() string {
	switch s {
	case HabitDone:
		return "done"
	case HabitMissed:
		return "missed"
	default:
		return "unset"
	}
}
