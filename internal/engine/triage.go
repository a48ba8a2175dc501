package engine

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// TriageAction is the closed set of decisions a user can make about a
// backlog item. Exactly one variant per decision; Triage dispatches on
// the variant in a single switch.
type TriageAction interface {
	isTriageAction()
}

// ReturnToToday moves the item back into today's plan.
type ReturnToToday struct{}

// MoveToDate moves the item into the plan for an explicit date.
type MoveToDate struct {
	Date string
}

// DeleteItem removes the item outright.
type DeleteItem struct{}

// Reword replaces the item's text in place, keeping its id.
type Reword struct {
	Text string
}

func (ReturnToToday) isTriageAction() {}
func (MoveToDate) isTriageAction()    {}
func (DeleteItem) isTriageAction()    {}
func (Reword) isTriageAction()        {}

// TriageResult describes what happened to the triaged item.
type TriageResult struct {
	// Item is the item as it left triage (after a reword, the new text).
	Item types.BacklogItem `json:"item"`

	// MovedTo is the destination date for return/move actions.
	MovedTo string `json:"moved_to,omitempty"`

	// Inserted is the task created in the destination day, nil when the
	// destination already had the text or the item was deleted/reworded.
	Inserted *types.Task `json:"inserted,omitempty"`

	// Deleted reports an outright delete.
	Deleted bool `json:"deleted,omitempty"`
}

// Triage applies one action to the backlog item with the given id.
// today is the caller's current day key, used by ReturnToToday.
//
// Return and move consume the item even when the destination day
// already holds an identical text; the duplicate is simply not
// inserted. Backlog ids are renumbered after any removal, so callers
// must re-resolve ids from the freshly loaded record rather than cache
// them across saves.
func (e *Engine) Triage(r *types.UserRecord, itemID int, action TriageAction, today string, now time.Time) (*TriageResult, error) {
	item := r.FindBacklogItem(itemID)
	if item == nil {
		return nil, types.ErrBacklogItemNotFound
	}

	switch a := action.(type) {
	case ReturnToToday:
		return e.moveItem(r, item, today, now)
	case MoveToDate:
		date, err := types.ParseDate(a.Date)
		if err != nil {
			return nil, err
		}
		return e.moveItem(r, item, date, now)
	case DeleteItem:
		removed, err := r.RemoveBacklogItem(item.ID)
		if err != nil {
			return nil, err
		}
		return &TriageResult{Item: removed, Deleted: true}, nil
	case Reword:
		t := types.NewTask(a.Text, now)
		if t.Text == "" {
			return nil, types.ErrEmptyText
		}
		item.Text = t.Text
		item.LastSeenAt = now
		return &TriageResult{Item: *item}, nil
	default:
		return nil, fmt.Errorf("unknown triage action %T", action)
	}
}

// moveItem inserts the item into the destination day (unless the text
// is already there) and removes it from the backlog.
func (e *Engine) moveItem(r *types.UserRecord, item *types.BacklogItem, date string, now time.Time) (*TriageResult, error) {
	day := r.Day(date, now)

	var inserted *types.Task
	if !day.HasText(item.Text) {
		task, err := day.Add(item.Text, now)
		if err != nil {
			return nil, err
		}
		task.CarryCount = item.CarryCount
		task.CarriedFrom = item.SourceDay
		inserted = task
	}

	removed, err := r.RemoveBacklogItem(item.ID)
	if err != nil {
		return nil, err
	}
	return &TriageResult{Item: removed, MovedTo: date, Inserted: inserted}, nil
}
