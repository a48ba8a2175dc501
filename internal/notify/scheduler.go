// Package notify runs the per-user reminder triggers. A trigger is a
// fire-and-forget goroutine that watches the wall clock and asks the
// service for morning/evening notification text at the configured
// times. It has no ordering relationship with command processing
// beyond reading fully-committed records through the service.
package notify

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mesh-intelligence/dayplan/internal/service"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// Sender delivers one notification to a user. Implementations are the
// transport boundary; the scheduler never renders or retries.
type Sender func(userID, text string)

// Scheduler owns one trigger per enabled user.
type Scheduler struct {
	svc      *service.Service
	send     Sender
	clock    types.Clock
	interval time.Duration

	mu       sync.Mutex
	triggers map[string]chan struct{}
}

// New creates a scheduler that checks trigger times once per interval.
// Production use passes time.Minute; tests shrink it.
func New(svc *service.Service, send Sender, clock types.Clock, interval time.Duration) *Scheduler {
	return &Scheduler{
		svc:      svc,
		send:     send,
		clock:    clock,
		interval: interval,
		triggers: make(map[string]chan struct{}),
	}
}

// Enable starts (or replaces) the trigger for a user. A disabled or
// empty schedule stops any running trigger instead.
func (s *Scheduler) Enable(userID string, cfg types.NotifyConfig) {
	s.Disable(userID)
	if !cfg.Enabled {
		return
	}

	stop := make(chan struct{})
	s.mu.Lock()
	s.triggers[userID] = stop
	s.mu.Unlock()

	go s.run(userID, cfg, stop)
}

// Disable stops and removes the user's trigger. Idempotent.
func (s *Scheduler) Disable(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, ok := s.triggers[userID]; ok {
		close(stop)
		delete(s.triggers, userID)
	}
}

// Stop disables every trigger.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, stop := range s.triggers {
		close(stop)
		delete(s.triggers, userID)
	}
}

// run is the trigger loop for one user. Each reminder fires at most
// once per date.
func (s *Scheduler) run(userID string, cfg types.NotifyConfig, stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	fired := make(map[string]bool)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			now := s.clock.Now()
			date := types.DateOf(now)
			hhmm := now.Format("15:04")

			if cfg.MorningAt == hhmm && !fired[date+"/morning"] {
				fired[date+"/morning"] = true
				s.fire(userID, s.svc.MorningText)
			}
			if cfg.EveningAt == hhmm && !fired[date+"/evening"] {
				fired[date+"/evening"] = true
				s.fire(userID, s.svc.EveningText)
			}
		}
	}
}

// fire produces and delivers one notification.
func (s *Scheduler) fire(userID string, produce func(string) (string, error)) {
	text, err := produce(userID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reminder:", err)
		return
	}
	s.send(userID, text)
}
