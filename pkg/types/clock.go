package types

import "time"

// DateFormat is the ISO layout used for day keys throughout the engine.
const DateFormat = "2006-01-02"

// Clock provides the current time. The engine never reads system time
// directly; commands receive "now" through a Clock so close and carry
// logic stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// DateOf formats a timestamp as an ISO day key.
func DateOf(t time.Time) string { return t.Format(DateFormat) }

// ParseDate validates user-supplied date text and returns the
// normalized ISO day key. Returns ErrInvalidDate on malformed input.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return DateOf(t), nil
}

// AddDays returns the day key n days after the given one.
// Returns ErrInvalidDate when date is not a valid day key.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return DateOf(t.AddDate(0, 0, n)), nil
}

// ParseTimeOfDay validates an "HH:MM" wall-clock value used by the
// reminder schedule. Returns the normalized value or ErrInvalidTime.
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format("15:04"), nil
}
