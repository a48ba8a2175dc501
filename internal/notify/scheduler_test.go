package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dayplan/internal/engine"
	"github.com/mesh-intelligence/dayplan/internal/service"
	"github.com/mesh-intelligence/dayplan/internal/store"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// sink records deliveries for assertions.
type sink struct {
	mu    sync.Mutex
	texts []string
	got   chan struct{}
}

func newSink() *sink {
	return &sink{got: make(chan struct{}, 16)}
}

func (s *sink) send(userID, text string) {
	s.mu.Lock()
	s.texts = append(s.texts, text)
	s.mu.Unlock()
	s.got <- struct{}{}
}

func (s *sink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.texts)
}

var testNow = time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

func TestSchedulerFiresMorningOncePerDate(t *testing.T) {
	clock := fixedClock{testNow} // 08:00
	svc := service.New(store.NewMemory(clock), clock, engine.Default())
	out := newSink()

	sched := New(svc, out.send, clock, 2*time.Millisecond)
	defer sched.Stop()

	sched.Enable("u1", types.NotifyConfig{Enabled: true, MorningAt: "08:00", EveningAt: "21:00"})

	select {
	case <-out.got:
	case <-time.After(2 * time.Second):
		t.Fatal("morning reminder never fired")
	}

	// The clock is pinned to 08:00, so the ticker keeps matching; the
	// per-date guard must still hold it to a single delivery.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, out.count())

	out.mu.Lock()
	text := out.texts[0]
	out.mu.Unlock()
	assert.Contains(t, text, "☀️")
	assert.Contains(t, text, "План на 2026-08-31")
}

func TestSchedulerDisableStopsTrigger(t *testing.T) {
	clock := fixedClock{testNow}
	svc := service.New(store.NewMemory(clock), clock, engine.Default())
	out := newSink()

	sched := New(svc, out.send, clock, 2*time.Millisecond)
	defer sched.Stop()

	// 09:00 never matches the pinned 08:00 clock: nothing may fire.
	sched.Enable("u1", types.NotifyConfig{Enabled: true, MorningAt: "09:00", EveningAt: "21:00"})
	sched.Disable("u1")
	sched.Disable("u1") // idempotent

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, out.count())
}

func TestSchedulerEnableReplaces(t *testing.T) {
	clock := fixedClock{testNow}
	svc := service.New(store.NewMemory(clock), clock, engine.Default())
	out := newSink()

	sched := New(svc, out.send, clock, 2*time.Millisecond)
	defer sched.Stop()

	sched.Enable("u1", types.NotifyConfig{Enabled: true, MorningAt: "09:00", EveningAt: "21:00"})
	// Replacing with a disabled config stops the old trigger.
	sched.Enable("u1", types.NotifyConfig{})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, out.count())
}

func TestSchedulerSeedsPlanOnMorningFire(t *testing.T) {
	clock := fixedClock{testNow}
	st := store.NewMemory(clock)
	svc := service.New(st, clock, engine.Default())
	out := newSink()

	sched := New(svc, out.send, clock, 2*time.Millisecond)
	defer sched.Stop()

	sched.Enable("u1", types.NotifyConfig{Enabled: true, MorningAt: "08:00"})

	select {
	case <-out.got:
	case <-time.After(2 * time.Second):
		t.Fatal("morning reminder never fired")
	}

	rec, err := st.Load("u1")
	require.NoError(t, err)
	assert.Len(t, rec.Days["2026-08-31"].Tasks, len(types.DefaultTasks))
}
