// Package service exposes the planner's command surface. It owns the
// read-whole-record, mutate-in-memory, write-whole-record cycle and
// serializes commands per user id; the engine below it assumes
// exclusive access to the record for the duration of a command.
package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mesh-intelligence/dayplan/internal/engine"
	"github.com/mesh-intelligence/dayplan/internal/render"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// Reply is the outcome of a successful command: the text shown to the
// user and a structured payload for JSON output modes.
type Reply struct {
	Text    string `json:"text"`
	Payload any    `json:"payload,omitempty"`
}

// Service dispatches commands against stored user records.
type Service struct {
	store types.Store
	clock types.Clock
	eng   *engine.Engine

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// New creates a service over the given store, clock, and engine.
func New(store types.Store, clock types.Clock, eng *engine.Engine) *Service {
	return &Service{
		store: store,
		clock: clock,
		eng:   eng,
		users: make(map[string]*sync.Mutex),
	}
}

// Do runs one command for one user: lock the user, load the record,
// apply the command, and save on success. A failed command never
// writes; the stored record stays exactly as loaded. Different users
// proceed in parallel.
func (s *Service) Do(userID string, cmd Command) (*Reply, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()
	rec, err := s.store.Load(userID)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}

	reply, mutated, err := s.apply(rec, types.DateOf(now), now, cmd)
	if err != nil {
		return nil, err
	}
	if mutated {
		if err := s.store.Save(userID, rec); err != nil {
			return nil, fmt.Errorf("save user %s: %w", userID, err)
		}
	}
	return reply, nil
}

// apply executes a command against an in-memory record and reports
// whether the record changed. This is the single dispatch point for
// the whole command surface.
func (s *Service) apply(rec *types.UserRecord, today string, now time.Time, cmd Command) (*Reply, bool, error) {
	switch c := cmd.(type) {
	case ShowToday:
		day := s.eng.SeedPlan(rec, today, now)
		return &Reply{Text: render.Plan(today, day), Payload: day}, true, nil

	case MarkTaskDone:
		day := rec.Day(today, now)
		task, err := day.MarkDone(c.TaskID, now)
		if err != nil {
			return nil, false, err
		}
		text := fmt.Sprintf("✅ Отметил: %d) %s", task.ID, task.Text)
		return &Reply{Text: text, Payload: task}, true, nil

	case CloseDay:
		res, err := s.eng.CloseDay(rec, today, now)
		if err != nil {
			return nil, false, err
		}
		return &Reply{Text: render.CloseReport(res), Payload: res}, true, nil

	case AddTask:
		return s.addTask(rec, today, now, c)

	case RemoveTasks:
		date, err := dateOrToday(c.Date, today)
		if err != nil {
			return nil, false, err
		}
		day := rec.Day(date, now)
		ids := make(map[int]bool, len(c.IDs))
		for _, id := range c.IDs {
			ids[id] = true
		}
		removed, err := day.Remove(ids)
		if err != nil {
			return nil, false, err
		}
		var texts []string
		for _, t := range removed {
			texts = append(texts, t.Text)
		}
		text := fmt.Sprintf("🗑 Удалил: %s", strings.Join(texts, "; "))
		return &Reply{Text: text, Payload: removed}, true, nil

	case TriageBacklog:
		res, err := s.eng.Triage(rec, c.ItemID, c.Action, today, now)
		if err != nil {
			return nil, false, err
		}
		return &Reply{Text: triageText(res), Payload: res}, true, nil

	case ShowBacklog:
		text := render.Backlog(rec.Backlog, now, s.eng.Config().BacklogTTLDays)
		return &Reply{Text: text, Payload: rec.Backlog}, false, nil

	case ToggleHabit:
		date, err := dateOrToday(c.Date, today)
		if err != nil {
			return nil, false, err
		}
		state, err := rec.ToggleHabit(date, c.Key)
		if err != nil {
			return nil, false, err
		}
		text := fmt.Sprintf("📊 %s за %s: %s", c.Key, date, state)
		return &Reply{Text: text, Payload: state.String()}, true, nil

	case AddHabit:
		if err := rec.AddHabit(c.Key, c.Title); err != nil {
			return nil, false, err
		}
		return &Reply{Text: fmt.Sprintf("📊 Добавил привычку: %s", c.Title)}, true, nil

	case RemoveHabit:
		if err := rec.RemoveHabit(c.Key); err != nil {
			return nil, false, err
		}
		return &Reply{Text: fmt.Sprintf("🗑 Убрал привычку: %s", c.Key)}, true, nil

	case ShowHabits:
		date, err := dateOrToday(c.Date, today)
		if err != nil {
			return nil, false, err
		}
		dates, err := render.MonthDates(date)
		if err != nil {
			return nil, false, err
		}
		return &Reply{Text: render.HabitGrid(rec, dates), Payload: rec.HabitLog}, false, nil

	case ReopenDay:
		date, err := dateOrToday(c.Date, today)
		if err != nil {
			return nil, false, err
		}
		day := s.eng.Reopen(rec, date, now)
		return &Reply{Text: render.Plan(date, day), Payload: day}, true, nil

	case SetNotify:
		cfg, err := normalizeNotify(c.Config)
		if err != nil {
			return nil, false, err
		}
		rec.Notify = cfg
		text := "🔕 Напоминания выключены."
		if cfg.Enabled {
			text = fmt.Sprintf("🔔 Напоминания: утро %s, вечер %s.", cfg.MorningAt, cfg.EveningAt)
		}
		return &Reply{Text: text, Payload: cfg}, true, nil

	default:
		return nil, false, fmt.Errorf("unknown command %T", cmd)
	}
}

// addTask resolves the destination and appends the task there.
func (s *Service) addTask(rec *types.UserRecord, today string, now time.Time, c AddTask) (*Reply, bool, error) {
	var date string
	switch d := c.Dest.(type) {
	case Today:
		date = today
	case Tomorrow:
		var err error
		date, err = types.AddDays(today, 1)
		if err != nil {
			return nil, false, err
		}
	case OnDate:
		var err error
		date, err = types.ParseDate(d.Date)
		if err != nil {
			return nil, false, err
		}
	case ToBacklog:
		item, err := rec.AddToBacklog(c.Text, now)
		if err != nil {
			return nil, false, err
		}
		text := fmt.Sprintf("🗂 В backlog: %d) %s", item.ID, item.Text)
		return &Reply{Text: text, Payload: item}, true, nil
	default:
		return nil, false, fmt.Errorf("unknown destination %T", c.Dest)
	}

	day := rec.Day(date, now)
	task, err := day.Add(c.Text, now)
	if err != nil {
		return nil, false, err
	}
	text := fmt.Sprintf("➕ Добавил на %s: %d) %s", date, task.ID, task.Text)
	return &Reply{Text: text, Payload: task}, true, nil
}

// MorningText produces the scheduled morning notification for a user,
// seeding today's plan if it does not exist yet.
func (s *Service) MorningText(userID string) (string, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()
	rec, err := s.store.Load(userID)
	if err != nil {
		return "", fmt.Errorf("load user %s: %w", userID, err)
	}
	today := types.DateOf(now)
	day := s.eng.SeedPlan(rec, today, now)
	if err := s.store.Save(userID, rec); err != nil {
		return "", fmt.Errorf("save user %s: %w", userID, err)
	}
	return render.MorningText(today, day), nil
}

// EveningText produces the scheduled evening notification: a nudge to
// close the day with the running tally. Read-only.
func (s *Service) EveningText(userID string) (string, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()
	rec, err := s.store.Load(userID)
	if err != nil {
		return "", fmt.Errorf("load user %s: %w", userID, err)
	}
	today := types.DateOf(now)
	return render.EveningText(today, rec.Day(today, now)), nil
}

// NotifyConfig returns the user's committed reminder schedule.
func (s *Service) NotifyConfig(userID string) (types.NotifyConfig, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.store.Load(userID)
	if err != nil {
		return types.NotifyConfig{}, fmt.Errorf("load user %s: %w", userID, err)
	}
	return rec.Notify, nil
}

// userLock returns the mutex serializing commands for one user.
func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.users[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.users[userID] = lock
	}
	return lock
}

// dateOrToday validates an optional date argument, defaulting to today.
func dateOrToday(date, today string) (string, error) {
	if date == "" {
		return today, nil
	}
	return types.ParseDate(date)
}

// normalizeNotify validates the schedule times of an enabled config.
func normalizeNotify(cfg types.NotifyConfig) (types.NotifyConfig, error) {
	if !cfg.Enabled {
		return types.NotifyConfig{}, nil
	}
	morning, err := types.ParseTimeOfDay(cfg.MorningAt)
	if err != nil {
		return types.NotifyConfig{}, err
	}
	evening, err := types.ParseTimeOfDay(cfg.EveningAt)
	if err != nil {
		return types.NotifyConfig{}, err
	}
	return types.NotifyConfig{Enabled: true, MorningAt: morning, EveningAt: evening}, nil
}

// triageText renders the one-line confirmation for a triage decision.
func triageText(res *engine.TriageResult) string {
	switch {
	case res.Deleted:
		return fmt.Sprintf("🗑 Удалил из backlog: %s", res.Item.Text)
	case res.MovedTo != "" && res.Inserted == nil:
		return fmt.Sprintf("↩️ Уже в плане на %s: %s", res.MovedTo, res.Item.Text)
	case res.MovedTo != "":
		return fmt.Sprintf("↩️ Вернул на %s: %d) %s", res.MovedTo, res.Inserted.ID, res.Inserted.Text)
	default:
		return fmt.Sprintf("✏️ Переформулировал: %d) %s", res.Item.ID, res.Item.Text)
	}
}
