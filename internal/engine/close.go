package engine

import (
	"time"

	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// CloseResult is the deterministic outcome of closing a day. Everything
// the close report shows is derived from this value alone.
type CloseResult struct {
	Date         string              `json:"date"`
	TomorrowDate string              `json:"tomorrow_date"`
	DoneCount    int                 `json:"done_count"`
	TotalCount   int                 `json:"total_count"`
	Done         []types.Task        `json:"done,omitempty"`
	NotDone      []types.Task        `json:"not_done,omitempty"`
	Carried      []types.Task        `json:"carried,omitempty"`
	Demoted      []types.BacklogItem `json:"demoted,omitempty"`
	Tomorrow     []types.Task        `json:"tomorrow"`
	HabitsDone   int                 `json:"habits_done"`
	HabitsTotal  int                 `json:"habits_total"`
}

// CloseDay closes the day at today and seeds tomorrow:
//
//  1. An empty day is seeded with the default plan first, so the report
//     always has a denominator.
//  2. Tasks partition into done and not-done by status.
//  3. The day is marked closed and stamped.
//  4. Tomorrow is lazily created; a closed tomorrow is forced back open.
//  5. Each not-done task bumps its carry count. At the carry limit it is
//     demoted into the backlog (merge-by-text); below it a carry-forward
//     copy is built with provenance pointing at today.
//  6. Carry-forward tasks merge into the front of tomorrow's list,
//     skipping texts tomorrow already has, then tomorrow renumbers.
//  7. Tomorrow is topped up to the minimum plan size.
//
// Closing an already-closed day returns ErrDayAlreadyClosed and leaves
// the record untouched.
func (e *Engine) CloseDay(r *types.UserRecord, today string, now time.Time) (*CloseResult, error) {
	tomorrowDate, err := types.AddDays(today, 1)
	if err != nil {
		return nil, err
	}

	day := r.Day(today, now)
	if day.Closed {
		return nil, types.ErrDayAlreadyClosed
	}
	day.EnsureDefaults(e.cfg.DefaultTasks, now)

	done, notDone := day.Partition()

	day.Closed = true
	closedAt := now
	day.ClosedAt = &closedAt

	tomorrow := r.Day(tomorrowDate, now)
	if tomorrow.Closed {
		tomorrow.Closed = false
		tomorrow.ClosedAt = nil
	}

	var carried []types.Task
	var demoted []types.BacklogItem
	for _, t := range notDone {
		newCarry := t.CarryCount + 1
		if newCarry >= e.cfg.CarryLimit {
			t.CarryCount = newCarry
			item := r.Demote(t, today, now)
			demoted = append(demoted, *item)
			continue
		}
		ct := types.NewTask(t.Text, now)
		ct.CarryCount = newCarry
		ct.CarriedFrom = today
		carried = append(carried, ct)
	}

	var front []types.Task
	for _, t := range carried {
		if !tomorrow.HasText(t.Text) {
			front = append(front, t)
		}
	}
	tomorrow.Tasks = append(front, tomorrow.Tasks...)
	tomorrow.Renumber()
	tomorrow.EnsureMinimum(e.cfg.DefaultTasks, e.cfg.MinTasks, now)

	habitsDone, habitsTotal := r.HabitTally(today)

	preview := make([]types.Task, len(tomorrow.Tasks))
	copy(preview, tomorrow.Tasks)

	return &CloseResult{
		Date:         today,
		TomorrowDate: tomorrowDate,
		DoneCount:    len(done),
		TotalCount:   len(done) + len(notDone),
		Done:         done,
		NotDone:      notDone,
		Carried:      carried,
		Demoted:      demoted,
		Tomorrow:     preview,
		HabitsDone:   habitsDone,
		HabitsTotal:  habitsTotal,
	}, nil
}
