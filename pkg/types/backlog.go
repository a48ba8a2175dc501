package types

import "time"

// DefaultBacklogTTLDays is how long a backlog item may sit untouched
// before it is surfaced as overdue during triage.
const DefaultBacklogTTLDays = 7

// BacklogItem is a task demoted from a day after repeated carry-over,
// or added to the backlog directly. Text is unique within the backlog:
// demoting a matching text merges into the existing item instead of
// duplicating it.
//
// IDs are dense 1..N like task ids and just as unstable: any removal
// renumbers the remainder.
type BacklogItem struct {
	ID         int       `json:"id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
	SourceDay  string    `json:"source_day,omitempty"`
	CarryCount int       `json:"carry_count,omitempty"`
}

// IsOverdue reports whether the item has been in the backlog longer
// than ttlDays. Overdue items are surfaced for triage but never deleted
// automatically; deletion is always an explicit user decision.
func (b BacklogItem) IsOverdue(now time.Time, ttlDays int) bool {
	return now.Sub(b.CreatedAt) > time.Duration(ttlDays)*24*time.Hour
}
