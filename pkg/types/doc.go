// Package types defines the user record aggregate, its entity types,
// and standard error values for the dayplan engine.
//
// A UserRecord is the unit of persistence: one record per user, loaded
// and saved whole. Entity-level mutations (task list edits, backlog
// merges, habit toggles) live as methods on the entities themselves;
// multi-step transitions such as closing a day live in internal/engine.
package types
