// Package jsonstore persists the task list as a single JSON document on disk.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/talia-cli/talia/internal/domain"
)

// timeLayout is ISO-8601 without a zone, matching files written by earlier
// releases. Timestamps are interpreted in the local zone.
const timeLayout = "2006-01-02T15:04:05"

// record is the on-disk representation of a task. The completion timestamp
// is not part of the current format.
type record struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Created string `json:"created_at"`
}

// Store reads and writes the task file at a fixed path.
type Store struct {
	logger domain.Logger
	path   string
}

// New creates a Store for the given file path. The file does not need to
// exist; it will be created on first save. A nil logger disables diagnostics.
func New(path string, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{path: path, logger: logger}
}

// Path returns the file path backing this store.
func (s *Store) Path() string {
	return s.path
}

// encode converts tasks to their on-disk records, preserving order.
func encode(tasks []*domain.Task) []record {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, record{
			ID:      t.ID,
			Title:   t.Title,
			Status:  string(t.Status),
			Created: t.Created.Format(timeLayout),
		})
	}
	return records
}

// decode converts records back to tasks. Any invalid record fails the whole
// batch: a partially corrupt file loads as empty rather than as a subset.
func decode(records []record) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(records))
	for i, r := range records {
		if r.ID <= 0 {
			return nil, fmt.Errorf("record %d: %w: %d", i, domain.ErrInvalidTaskID, r.ID)
		}
		if r.Title == "" {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrEmptyTitle)
		}
		status, err := domain.ParseStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w: %q", i, err, r.Status)
		}
		created, err := time.ParseInLocation(timeLayout, r.Created, time.Local)
		if err != nil {
			return nil, fmt.Errorf("record %d: parse created_at: %w", i, err)
		}
		tasks = append(tasks, &domain.Task{
			ID:      r.ID,
			Title:   r.Title,
			Status:  status,
			Created: created,
		})
	}
	return tasks, nil
}

// Load reads the task file. A missing file yields an empty list. Read and
// decode problems also yield an empty list; they are logged but never
// returned, so a corrupt store cannot block startup.
func (s *Store) Load() []*domain.Task {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("no task file found, starting with an empty list")
			return nil
		}
		s.logger.Error(fmt.Sprintf("read task file: %v", err))
		return nil
	}

	var records []record
	if err := json.Unmarshal(content, &records); err != nil {
		s.logger.Error(fmt.Sprintf("parse task file: %v", err))
		return nil
	}

	tasks, err := decode(records)
	if err != nil {
		s.logger.Error(fmt.Sprintf("decode task file: %v", err))
		return nil
	}

	s.logger.Debug(fmt.Sprintf("loaded %d tasks from %s", len(tasks), s.path))
	return tasks
}

// Save writes the full task list as one document, creating the parent
// directory if absent. Directory and write failures propagate to the caller.
func (s *Store) Save(tasks []*domain.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	content, err := json.MarshalIndent(encode(tasks), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename task file: %w", err)
	}

	s.logger.Debug(fmt.Sprintf("saved %d tasks to %s", len(tasks), s.path))
	return nil
}

// Backup copies the task file verbatim to a sibling path suffixed with name,
// or with a minute-resolution timestamp when name is empty. Best effort: a
// missing source or a failed copy yields ok=false, never an error.
func (s *Store) Backup(name string, now time.Time) (string, bool) {
	if _, err := os.Stat(s.path); err != nil {
		s.logger.Warn("no task file found to back up")
		return "", false
	}

	if name == "" {
		name = now.Format("200601021504")
	}
	dest := s.path + "." + name

	if err := copyFile(s.path, dest); err != nil {
		s.logger.Error(fmt.Sprintf("create backup: %v", err))
		return "", false
	}

	s.logger.Info("created backup at " + dest)
	return dest, true
}

// Remove deletes the task file. It reports whether a deletion occurred: a
// missing file and a failed delete both resolve to false.
func (s *Store) Remove() bool {
	if _, err := os.Stat(s.path); err != nil {
		s.logger.Warn("no task file found to remove")
		return false
	}
	if err := os.Remove(s.path); err != nil {
		s.logger.Error(fmt.Sprintf("remove task file: %v", err))
		return false
	}
	s.logger.Info("removed task file " + s.path)
	return true
}

// copyFile copies src to dst, preserving the source file mode.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Ensure Store implements TaskStore.
var _ domain.TaskStore = (*Store)(nil)
