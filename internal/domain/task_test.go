package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)
	task := NewTask(1, "Buy milk", now)

	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, StatusInbox, task.Status)
	assert.Equal(t, now, task.Created)
	assert.False(t, task.WasCompleted())
}

func TestTask_Complete(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	task := NewTask(1, "Buy milk", now)

	task.Complete(now)

	assert.Equal(t, StatusCompleted, task.Status)
	assert.Equal(t, now, task.Completed)
	assert.True(t, task.WasCompleted())
}

func TestTask_CompleteTwiceOverwritesTimestamp(t *testing.T) {
	first := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	second := first.Add(2 * time.Hour)
	task := NewTask(1, "Buy milk", first)

	task.Complete(first)
	task.Complete(second)

	assert.Equal(t, StatusCompleted, task.Status)
	assert.Equal(t, second, task.Completed)
}

func TestTask_TransitionsAreUnconditional(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		apply func(*Task)
		want  Status
	}{
		{
			name:  "archive then move to todo",
			apply: func(task *Task) { task.Archive(); task.MoveToTodo() },
			want:  StatusTodo,
		},
		{
			name:  "complete then move to review",
			apply: func(task *Task) { task.Complete(now); task.MoveToReview() },
			want:  StatusReview,
		},
		{
			name:  "archive an already archived task",
			apply: func(task *Task) { task.Archive(); task.Archive() },
			want:  StatusArchived,
		},
		{
			name:  "complete an archived task",
			apply: func(task *Task) { task.Archive(); task.Complete(now) },
			want:  StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(1, "Test task", now)
			tt.apply(task)
			assert.Equal(t, tt.want, task.Status)
		})
	}
}

func TestTask_CompletedTimestampSurvivesLaterTransitions(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	task := NewTask(1, "Buy milk", now)

	task.Complete(now)
	task.MoveToTodo()

	require.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, now, task.Completed)
	assert.True(t, task.WasCompleted())
}
