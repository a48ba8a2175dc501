// Package engine implements the multi-step day transitions of the
// planner: closing a day, reopening it, and triaging backlog items.
//
// The engine is pure and synchronous. Every operation takes the record
// and "now" explicitly, mutates in memory, and returns a deterministic
// result; persistence is the caller's concern.
package engine

import (
	"time"

	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// Engine applies planner policy to user records.
type Engine struct {
	cfg types.Config
}

// New creates an engine with the given policy.
// Returns a Config validation error on a malformed policy.
func New(cfg types.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Default returns an engine with the shipped policy.
func Default() *Engine {
	e, err := New(types.DefaultConfig())
	if err != nil {
		panic(err) // shipped defaults always validate
	}
	return e
}

// Config returns the engine's policy.
func (e *Engine) Config() types.Config { return e.cfg }

// SeedPlan guarantees the day at date has a plan: lazily creates the
// day and seeds the default plan when it is empty. Returns the day.
func (e *Engine) SeedPlan(r *types.UserRecord, date string, now time.Time) *types.Day {
	d := r.Day(date, now)
	d.EnsureDefaults(e.cfg.DefaultTasks, now)
	return d
}

// Reopen discards the day at date, closed or not, and replaces it with
// a fresh open day seeded with the default plan.
func (e *Engine) Reopen(r *types.UserRecord, date string, now time.Time) *types.Day {
	d := r.ResetDay(date, now)
	d.EnsureDefaults(e.cfg.DefaultTasks, now)
	return d
}

// OverdueItems returns the backlog items older than the policy TTL,
// in backlog order. They are flagged for triage, never auto-deleted.
func (e *Engine) OverdueItems(r *types.UserRecord, now time.Time) []types.BacklogItem {
	var overdue []types.BacklogItem
	for _, item := range r.Backlog {
		if item.IsOverdue(now, e.cfg.BacklogTTLDays) {
			overdue = append(overdue, item)
		}
	}
	return overdue
}
