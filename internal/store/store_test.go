package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dayplan/pkg/types"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

func openStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(t.TempDir(), fixedClock{testNow})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(t *testing.T) *types.UserRecord {
	t.Helper()
	r := types.NewUserRecord("u1", testNow)
	d := r.Day("2026-08-31", testNow)
	d.EnsureDefaults(types.DefaultTasks, testNow)
	_, err := d.MarkDone(2, testNow)
	require.NoError(t, err)
	r.Demote(types.NewTask("хвост", testNow), "2026-08-30", testNow)
	require.NoError(t, r.AddHabit("sport", "Спорт"))
	return r
}

func TestSQLiteLoadAbsent(t *testing.T) {
	s := openStore(t)
	r, err := s.Load("nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", r.UserID)
	assert.True(t, r.CreatedAt.Equal(testNow))
	assert.Empty(t, r.Days)
	assert.NotNil(t, r.Days)
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openStore(t)
	saved := sampleRecord(t)
	require.NoError(t, s.Save("u1", saved))

	loaded, err := s.Load("u1")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSQLiteLastWriterWins(t *testing.T) {
	s := openStore(t)
	first := sampleRecord(t)
	require.NoError(t, s.Save("u1", first))

	second := types.NewUserRecord("u1", testNow)
	require.NoError(t, s.Save("u1", second))

	loaded, err := s.Load("u1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Days)
	assert.Empty(t, loaded.Backlog)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, fixedClock{testNow})
	require.NoError(t, err)
	require.NoError(t, s.Save("u1", sampleRecord(t)))
	require.NoError(t, s.Close())

	s, err = Open(dir, fixedClock{testNow})
	require.NoError(t, err)
	defer s.Close()

	loaded, err := s.Load("u1")
	require.NoError(t, err)
	assert.True(t, loaded.Days["2026-08-31"].Tasks[1].Done())
}

func TestSQLiteUsersAreIndependent(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Save("u1", sampleRecord(t)))

	other, err := s.Load("u2")
	require.NoError(t, err)
	assert.Empty(t, other.Days)
}

func TestMemoryDoesNotAlias(t *testing.T) {
	m := NewMemory(fixedClock{testNow})
	rec := sampleRecord(t)
	require.NoError(t, m.Save("u1", rec))

	// Mutating the saved value must not leak into the store.
	rec.Backlog = nil

	loaded, err := m.Load("u1")
	require.NoError(t, err)
	assert.Len(t, loaded.Backlog, 1)

	// Nor must mutating a loaded value.
	loaded.Backlog = nil
	again, err := m.Load("u1")
	require.NoError(t, err)
	assert.Len(t, again.Backlog, 1)
}
