// Package repo provides the in-memory task collection backed by a store.
package repo

import "github.com/talia-cli/talia/internal/domain"

// Repo holds all tasks for one storage location. It is a thin in-memory
// cache over the store: loads never fail (a broken store degrades to an
// empty list) while Save propagates failures, because silently losing a
// write is worse than silently starting empty.
type Repo struct {
	store domain.TaskStore
	tasks []*domain.Task
}

// Load builds a repository from the store's current contents.
func Load(store domain.TaskStore) *Repo {
	return &Repo{
		store: store,
		tasks: store.Load(),
	}
}

// All returns the tasks in insertion order. Callers needing ID or recency
// order must sort explicitly.
func (r *Repo) All() []*domain.Task {
	return r.tasks
}

// Get returns the task with the given ID, or nil if absent.
func (r *Repo) Get(id int) *domain.Task {
	for _, t := range r.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Add appends a task to the collection. The caller is responsible for
// assigning a fresh ID obtained from NextID.
func (r *Repo) Add(t *domain.Task) {
	r.tasks = append(r.tasks, t)
}

// NextID returns 1 for an empty repository, otherwise the highest existing
// ID plus one. Derived from current state, not a persisted counter; safe
// while tasks are never removed individually.
func (r *Repo) NextID() int {
	next := 1
	for _, t := range r.tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// Save flushes the full task list to the store.
func (r *Repo) Save() error {
	return r.store.Save(r.tasks)
}

// Reset drops all in-memory tasks. Used when the store is reset; the caller
// must Save to persist the now-empty list.
func (r *Repo) Reset() {
	r.tasks = nil
}
