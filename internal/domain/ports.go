package domain

import "time"

// TaskStore persists the full task list for one storage location.
type TaskStore interface {
	// Load reads all tasks. It never fails: a missing, unreadable or
	// corrupt store degrades to an empty list.
	Load() []*Task

	// Save writes the full task list as one document.
	Save(tasks []*Task) error

	// Backup copies the store file to a derived sibling path. Best effort:
	// a missing source or a failed copy yields ok=false, never an error.
	Backup(name string, now time.Time) (string, bool)

	// Remove deletes the store file, reporting whether a deletion occurred.
	Remove() bool

	// Path returns the file path backing the store.
	Path() string
}

// Logger records diagnostic events. Correctness must not depend on any
// implementation side effect; a no-op logger is always a valid choice.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// NopLogger is a Logger that discards everything.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string) {}

// Info discards the message.
func (NopLogger) Info(string) {}

// Warn discards the message.
func (NopLogger) Warn(string) {}

// Error discards the message.
func (NopLogger) Error(string) {}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
