// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/talia-cli/talia/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// RecordingLogger captures log messages per level for assertions.
type RecordingLogger struct {
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

// Debug records a debug message.
func (l *RecordingLogger) Debug(msg string) { l.Debugs = append(l.Debugs, msg) }

// Info records an info message.
func (l *RecordingLogger) Info(msg string) { l.Infos = append(l.Infos, msg) }

// Warn records a warning message.
func (l *RecordingLogger) Warn(msg string) { l.Warns = append(l.Warns, msg) }

// Error records an error message.
func (l *RecordingLogger) Error(msg string) { l.Errors = append(l.Errors, msg) }

// MemStore is an in-memory test double for domain.TaskStore.
// Fields are ordered to minimize memory padding.
type MemStore struct {
	Tasks      []*domain.Task
	SaveErr    error
	BackupDest string
	BackupOK   bool
	Removed    bool
	SaveCalls  int
}

// Load returns the configured task list.
func (s *MemStore) Load() []*domain.Task {
	return s.Tasks
}

// Save stores the task list, or fails with SaveErr if set.
func (s *MemStore) Save(tasks []*domain.Task) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Tasks = tasks
	s.SaveCalls++
	return nil
}

// Backup returns the configured backup result.
func (s *MemStore) Backup(name string, _ time.Time) (string, bool) {
	if !s.BackupOK {
		return "", false
	}
	if s.BackupDest != "" {
		return s.BackupDest, true
	}
	return "tasks.json." + name, true
}

// Remove reports the configured removal result.
func (s *MemStore) Remove() bool {
	return s.Removed
}

// Path returns a fixed placeholder path.
func (s *MemStore) Path() string {
	return "tasks.json"
}

// Ensure mocks satisfy their interfaces.
var (
	_ domain.TaskStore = (*MemStore)(nil)
	_ domain.Logger    = (*RecordingLogger)(nil)
	_ domain.Clock     = (*MockClock)(nil)
)
