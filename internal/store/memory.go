package store

import (
	"encoding/json"
	"sync"

	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// Memory is an in-process Store for tests. Records pass through JSON
// on both load and save, so callers never alias stored state.
type Memory struct {
	mu      sync.Mutex
	clock   types.Clock
	records map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory(clock types.Clock) *Memory {
	return &Memory{
		clock:   clock,
		records: make(map[string][]byte),
	}
}

// Load returns the stored record or a fresh one for unknown ids.
func (m *Memory) Load(userID string) (*types.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, ok := m.records[userID]
	if !ok {
		return types.NewUserRecord(userID, m.clock.Now()), nil
	}
	return decodeRecord(blob)
}

// Save stores a serialized copy of the record.
func (m *Memory) Save(userID string, rec *types.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	m.records[userID] = blob
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error { return nil }
