// Package store persists user records. The contract is deliberately
// narrow: load one whole record, save one whole record, keyed by the
// opaque user id. There is no field-level access; concurrent writers
// for the same user must be serialized by the caller.
package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/dayplan/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

const dbFileName = "planner.db"

// SQLite is a Store backed by a single SQLite database file under the
// data directory.
type SQLite struct {
	mu    sync.Mutex
	db    *sql.DB
	clock types.Clock
}

// Open creates the data directory if needed, opens (or creates) the
// database, and applies the schema.
func Open(dataDir string, clock types.Clock) (*SQLite, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db, clock: clock}, nil
}

// Load returns the record for userID. An absent record is not an
// error: a fresh empty record with the id and a creation timestamp is
// returned instead.
func (s *SQLite) Load(userID string) (*types.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var blob []byte
	err := s.db.QueryRow(`SELECT record FROM records WHERE user_id = ?`, userID).Scan(&blob)
	if err == sql.ErrNoRows {
		return types.NewUserRecord(userID, s.clock.Now()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	return decodeRecord(blob)
}

// Save writes the whole record in one statement. Last writer wins.
func (s *SQLite) Save(userID string, rec *types.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO records (user_id, record, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			record = excluded.record,
			updated_at = excluded.updated_at`,
		userID, blob, s.clock.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// decodeRecord unmarshals a stored record and restores the invariant
// that Days is never nil.
func decodeRecord(blob []byte) (*types.UserRecord, error) {
	var rec types.UserRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if rec.Days == nil {
		rec.Days = make(map[string]*types.Day)
	}
	return &rec, nil
}
