package types

// Store loads and saves whole user records keyed by opaque user id.
// There is no partial or field-level access: a command reads one record
// at entry and writes it back at exit, or not at all.
//
// Load never fails on an absent record; it returns a fresh empty record
// carrying the requested id and a creation timestamp.
type Store interface {
	Load(userID string) (*UserRecord, error)
	Save(userID string, rec *UserRecord) error
	Close() error
}
