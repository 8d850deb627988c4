package jsonstore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/talia-cli/talia/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"), nil)
}

func testTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	now := testTime(t)

	tasks := []*domain.Task{
		{ID: 1, Title: "Buy milk", Status: domain.StatusInbox, Created: now},
		{ID: 2, Title: "Walk dog", Status: domain.StatusTodo, Created: now.Add(time.Hour)},
		{ID: 5, Title: "Write report", Status: domain.StatusCompleted, Created: now.Add(2 * time.Hour)},
	}

	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := store.Load()
	if len(got) != len(tasks) {
		t.Fatalf("Load() returned %d tasks, want %d", len(got), len(tasks))
	}
	for i, want := range tasks {
		if got[i].ID != want.ID {
			t.Errorf("task %d: ID = %d, want %d", i, got[i].ID, want.ID)
		}
		if got[i].Title != want.Title {
			t.Errorf("task %d: Title = %q, want %q", i, got[i].Title, want.Title)
		}
		if got[i].Status != want.Status {
			t.Errorf("task %d: Status = %q, want %q", i, got[i].Status, want.Status)
		}
		if !got[i].Created.Equal(want.Created) {
			t.Errorf("task %d: Created = %v, want %v", i, got[i].Created, want.Created)
		}
	}
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "tasks.json")
	store := New(path, nil)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("task file not created: %v", err)
	}
}

func TestStore_SaveWritesSymbolicStatusKeys(t *testing.T) {
	store := newTestStore(t)
	tasks := []*domain.Task{
		{ID: 1, Title: "Buy milk", Status: domain.StatusInbox, Created: testTime(t)},
	}

	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	content, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read task file: %v", err)
	}
	if !strings.Contains(string(content), `"status": "inbox"`) {
		t.Errorf("task file does not contain symbolic status key:\n%s", content)
	}
	if !strings.Contains(string(content), `"created_at": "2024-01-15T09:30:00"`) {
		t.Errorf("task file does not contain ISO-8601 timestamp:\n%s", content)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	got := store.Load()
	if len(got) != 0 {
		t.Errorf("Load() = %d tasks, want empty list for missing file", len(got))
	}
}

func TestStore_LoadInvalidSyntax(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := store.Load()
	if len(got) != 0 {
		t.Errorf("Load() = %d tasks, want empty list for invalid syntax", len(got))
	}
}

func TestStore_LoadFailsWholeBatchOnBadRecord(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown status",
			content: `[
  {"id": 1, "title": "Good", "status": "inbox", "created_at": "2024-01-15T09:30:00"},
  {"id": 2, "title": "Bad", "status": "doing", "created_at": "2024-01-15T09:30:00"}
]`,
		},
		{
			name: "missing title",
			content: `[
  {"id": 1, "title": "Good", "status": "inbox", "created_at": "2024-01-15T09:30:00"},
  {"id": 2, "status": "todo", "created_at": "2024-01-15T09:30:00"}
]`,
		},
		{
			name: "unparseable timestamp",
			content: `[
  {"id": 1, "title": "Good", "status": "inbox", "created_at": "2024-01-15T09:30:00"},
  {"id": 2, "title": "Bad", "status": "todo", "created_at": "yesterday"}
]`,
		},
		{
			name: "missing id",
			content: `[
  {"id": 1, "title": "Good", "status": "inbox", "created_at": "2024-01-15T09:30:00"},
  {"title": "Bad", "status": "todo", "created_at": "2024-01-15T09:30:00"}
]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if err := os.WriteFile(store.Path(), []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			got := store.Load()
			if len(got) != 0 {
				t.Errorf("Load() = %d tasks, want empty list (whole batch fails)", len(got))
			}
		})
	}
}

func TestStore_LoadLegacyLabelKeyedFile(t *testing.T) {
	store := newTestStore(t)
	content := `[
  {"id": 1, "title": "Buy milk", "status": "📥 Inbox", "created_at": "2024-01-15T09:30:00"},
  {"id": 2, "title": "Walk dog", "status": "✅ Completed", "created_at": "2024-01-15T10:00:00"}
]`
	if err := os.WriteFile(store.Path(), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	got := store.Load()
	if len(got) != 2 {
		t.Fatalf("Load() = %d tasks, want 2", len(got))
	}
	if got[0].Status != domain.StatusInbox {
		t.Errorf("task 0: Status = %q, want %q", got[0].Status, domain.StatusInbox)
	}
	if got[1].Status != domain.StatusCompleted {
		t.Errorf("task 1: Status = %q, want %q", got[1].Status, domain.StatusCompleted)
	}
}

func TestStore_LoadReportsDecodeFailure(t *testing.T) {
	logger := &captureLogger{}
	store := New(filepath.Join(t.TempDir(), "tasks.json"), logger)
	if err := os.WriteFile(store.Path(), []byte("[[["), 0o600); err != nil {
		t.Fatal(err)
	}

	_ = store.Load()
	if len(logger.errors) == 0 {
		t.Error("Load() with corrupt file emitted no error diagnostic")
	}
}

func TestStore_BackupMissingSource(t *testing.T) {
	store := newTestStore(t)

	dest, ok := store.Backup("", testTime(t))
	if ok {
		t.Error("Backup() ok = true, want false for missing source")
	}
	if dest != "" {
		t.Errorf("Backup() dest = %q, want empty", dest)
	}
}

func TestStore_BackupWithTimestamp(t *testing.T) {
	store := newTestStore(t)
	tasks := []*domain.Task{{ID: 1, Title: "Buy milk", Status: domain.StatusInbox, Created: testTime(t)}}
	if err := store.Save(tasks); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2024, 3, 1, 14, 5, 30, 0, time.Local)
	dest, ok := store.Backup("", now)
	if !ok {
		t.Fatal("Backup() ok = false, want true")
	}
	if want := store.Path() + ".202403011405"; dest != want {
		t.Errorf("Backup() dest = %q, want %q", dest, want)
	}

	// The copy must be byte-identical
	orig, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	copied, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(orig, copied) {
		t.Error("backup is not byte-identical to the source file")
	}
}

func TestStore_BackupWithCustomName(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(nil); err != nil {
		t.Fatal(err)
	}

	dest, ok := store.Backup("todelete", testTime(t))
	if !ok {
		t.Fatal("Backup() ok = false, want true")
	}
	if want := store.Path() + ".todelete"; dest != want {
		t.Errorf("Backup() dest = %q, want %q", dest, want)
	}
}

func TestStore_RemoveMissingFile(t *testing.T) {
	store := newTestStore(t)

	if store.Remove() {
		t.Error("Remove() = true, want false for missing file")
	}
}

func TestStore_RemoveExistingFile(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(nil); err != nil {
		t.Fatal(err)
	}

	if !store.Remove() {
		t.Fatal("Remove() = false, want true")
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("task file still exists after Remove()")
	}
}

// captureLogger records error messages for assertions.
type captureLogger struct {
	errors []string
}

func (l *captureLogger) Debug(string)     {}
func (l *captureLogger) Info(string)      {}
func (l *captureLogger) Warn(string)      {}
func (l *captureLogger) Error(msg string) { l.errors = append(l.errors, msg) }
