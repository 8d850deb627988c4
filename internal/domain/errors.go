package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidTaskID = errors.New("invalid task id")
)
