// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a single unit of work tracked by talia.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created   time.Time // Creation time (immutable)
	Completed time.Time // When the task last became completed (zero = never)
	Title     string    // Title (required, immutable)
	Status    Status    // Current lifecycle status
	ID        int       // Task ID, unique within one repository
}

// NewTask creates a task in the inbox.
func NewTask(id int, title string, now time.Time) *Task {
	return &Task{
		ID:      id,
		Title:   title,
		Status:  StatusInbox,
		Created: now,
	}
}

// Transitions are unconditional: they do not inspect the current status.
// Idempotence guards ("already completed") are presentation-layer policy.

// Complete marks the task as completed and records the completion time.
// Calling it again overwrites the previous completion time.
func (t *Task) Complete(now time.Time) {
	t.Status = StatusCompleted
	t.Completed = now
}

// Archive moves the task to the archive.
func (t *Task) Archive() {
	t.Status = StatusArchived
}

// MoveToTodo moves the task to the to-do list.
func (t *Task) MoveToTodo() {
	t.Status = StatusTodo
}

// MoveToReview moves the task to the review list.
func (t *Task) MoveToReview() {
	t.Status = StatusReview
}

// WasCompleted reports whether the task has ever been completed.
func (t *Task) WasCompleted() bool {
	return !t.Completed.IsZero()
}
