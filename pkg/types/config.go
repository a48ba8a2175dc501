package types

import "errors"

// DefaultTasks is the plan a day is seeded with when the user has not
// added anything themselves.
var DefaultTasks = []string{
	"Python: 30 мин теория (Notion)",
	"Python: 30 мин практика (PyCharm)",
	"5 мин итог: что понял/что повторить",
}

// Planner policy defaults.
const (
	DefaultMinTasks   = 3
	DefaultCarryLimit = 3
)

// Config validation errors.
var (
	ErrNoDefaultTasks    = errors.New("default task list must not be empty")
	ErrMinTasksInvalid   = errors.New("minimum task count must be positive")
	ErrCarryLimitInvalid = errors.New("carry limit must be positive")
	ErrBacklogTTLInvalid = errors.New("backlog TTL must be positive")
)

// Config holds the planner policy knobs consumed by the engine.
type Config struct {
	// DefaultTasks seeds empty days and tops up thin ones.
	DefaultTasks []string `json:"default_tasks" yaml:"default_tasks"`

	// MinTasks is the baseline plan size guaranteed after a close.
	MinTasks int `json:"min_tasks" yaml:"min_tasks"`

	// CarryLimit is the carry count at which an undone task stops
	// rolling forward and is demoted into the backlog.
	CarryLimit int `json:"carry_limit" yaml:"carry_limit"`

	// BacklogTTLDays is the age at which a backlog item is flagged
	// as overdue for triage.
	BacklogTTLDays int `json:"backlog_ttl_days" yaml:"backlog_ttl_days"`
}

// DefaultConfig returns the shipped planner policy.
func DefaultConfig() Config {
	return Config{
		DefaultTasks:   DefaultTasks,
		MinTasks:       DefaultMinTasks,
		CarryLimit:     DefaultCarryLimit,
		BacklogTTLDays: DefaultBacklogTTLDays,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if len(c.DefaultTasks) == 0 {
		return ErrNoDefaultTasks
	}
	if c.MinTasks <= 0 {
		return ErrMinTasksInvalid
	}
	if c.CarryLimit <= 0 {
		return ErrCarryLimitInvalid
	}
	if c.BacklogTTLDays <= 0 {
		return ErrBacklogTTLInvalid
	}
	return nil
}
