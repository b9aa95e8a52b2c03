// Package storage holds the process-resident task list.
package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jacksmith/todo/internal/model"
)

var (
	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrDuplicateID is returned when inserting a task whose ID is already live.
	ErrDuplicateID = errors.New("duplicate task ID")
)

// Memory is an ordered, in-memory task list safe for concurrent use.
// Every method is atomic with respect to the others; last writer wins.
type Memory struct {
	mu    sync.RWMutex
	tasks []model.Task
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{}
}

// List returns a copy of all tasks in insertion order.
// The result is never nil.
func (m *Memory) List() []model.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Get returns the task with the given ID.
func (m *Memory) Get(id string) (model.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return m.tasks[i], nil
}

// Exists reports whether a task with the given ID is live.
func (m *Memory) Exists(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexOf(id) >= 0
}

// Insert appends t to the end of the list.
// Returns ErrDuplicateID if t.ID is already in use.
func (m *Memory) Insert(t model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(t.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}
	m.tasks = append(m.tasks, t)
	return nil
}

// Update applies fn to a copy of the task with the given ID and stores the
// result in place. If fn returns an error the stored task is left unchanged.
// fn runs under the write lock and must not call back into the store.
func (m *Memory) Update(id string, fn func(*model.Task) error) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated := m.tasks[i]
	if err := fn(&updated); err != nil {
		return model.Task{}, err
	}
	// The ID is assigned once and never reassigned.
	updated.ID = m.tasks[i].ID
	m.tasks[i] = updated
	return updated, nil
}

// Delete removes every task with the given ID and returns how many were removed.
func (m *Memory) Delete(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.tasks[:0]
	removed := 0
	for _, t := range m.tasks {
		if t.ID == id {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	// Clear the tail so removed tasks are not retained by the backing array.
	for i := len(kept); i < len(m.tasks); i++ {
		m.tasks[i] = model.Task{}
	}
	m.tasks = kept
	return removed
}

// Len returns the number of live tasks.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tasks)
}

// indexOf returns the index of the task with the given ID, or -1.
// Callers must hold m.mu.
func (m *Memory) indexOf(id string) int {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
