package domain

// Status represents the lifecycle state of a task.
// The symbolic key is the persisted representation; the decorated label
// returned by Label is display-only.
type Status string

const (
	StatusInbox     Status = "inbox"     // Newly captured, not yet triaged
	StatusTodo      Status = "todo"      // Scheduled to be worked on
	StatusReview    Status = "review"    // Awaiting review
	StatusCompleted Status = "completed" // Done
	StatusArchived  Status = "archived"  // Kept for reference only
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusInbox,
		StatusTodo,
		StatusReview,
		StatusCompleted,
		StatusArchived,
	}
}

// ParseStatus parses a symbolic status key. It also accepts the decorated
// labels that earlier releases persisted directly, so old task files stay
// readable.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if status.IsValid() {
		return status, nil
	}
	for _, st := range AllStatuses() {
		if st.Label() == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// Label returns the decorated human-readable label for display.
func (s Status) Label() string {
	switch s {
	case StatusInbox:
		return "📥 Inbox"
	case StatusTodo:
		return "📋 To Do"
	case StatusReview:
		return "👀 To Review"
	case StatusCompleted:
		return "✅ Completed"
	case StatusArchived:
		return "📦 Archived"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusInbox, StatusTodo, StatusReview, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}
