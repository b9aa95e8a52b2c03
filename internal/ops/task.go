// Package ops implements the task operations on top of a Store.
package ops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/storage"
)

// maxIDAttempts bounds how many fresh IDs AddTask tries before giving up.
const maxIDAttempts = 5

// newID generates task IDs. Tests replace it to force collisions.
var newID = model.NewTaskID

// ValidateText checks that task text is not empty or whitespace-only.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Message: "must be a non-empty string"}
	}
	return nil
}

// TaskChanges represents fields that can be updated on a task.
// Nil fields keep their current value.
type TaskChanges struct {
	Text      *string
	Completed *bool
}

// IsEmpty reports whether c changes nothing.
func (c TaskChanges) IsEmpty() bool {
	return c.Text == nil && c.Completed == nil
}

// ListTasks returns all tasks in insertion order.
func ListTasks(s Store) []model.Task {
	return s.List()
}

// AddTask creates a new open task with a fresh ID.
func AddTask(s Store, text string) (*model.Task, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}
	return insertTask(s, text, false)
}

// EditTask applies changes to the task with the given ID and returns the
// updated task. The store is left unchanged on any error.
func EditTask(s Store, id string, changes TaskChanges) (*model.Task, error) {
	if changes.Text != nil {
		if err := ValidateText(*changes.Text); err != nil {
			return nil, err
		}
	}

	updated, err := s.Update(id, func(t *model.Task) error {
		if changes.Text != nil {
			t.Text = *changes.Text
		}
		if changes.Completed != nil {
			t.Completed = *changes.Completed
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &NotFoundError{Type: "task", ID: id}
		}
		return nil, err
	}
	return &updated, nil
}

// SetCompleted marks the task done or open.
func SetCompleted(s Store, id string, completed bool) (*model.Task, error) {
	return EditTask(s, id, TaskChanges{Completed: &completed})
}

// DeleteTask removes every task with the given ID and returns how many were
// removed. Deleting an unknown ID is not an error.
func DeleteTask(s Store, id string) (int, error) {
	if err := model.ValidateID(id); err != nil {
		return 0, &ValidationError{Field: "id", Message: "must be a non-empty string"}
	}
	return s.Delete(id), nil
}

// SeedTasks validates every entry and then appends them in order, each with a
// fresh ID. Nothing is inserted if any entry is invalid.
func SeedTasks(s Store, entries []model.SeedEntry) ([]model.Task, error) {
	for i, e := range entries {
		if err := ValidateText(e.Text); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i+1, err)
		}
	}

	created := make([]model.Task, 0, len(entries))
	for _, e := range entries {
		t, err := insertTask(s, e.Text, e.Completed)
		if err != nil {
			return created, err
		}
		created = append(created, *t)
	}
	return created, nil
}

// insertTask appends a task, retrying on the unlikely event of an ID collision.
func insertTask(s Store, text string, completed bool) (*model.Task, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		task := model.Task{
			ID:        newID(),
			Text:      text,
			Completed: completed,
		}
		err := s.Insert(task)
		if err == nil {
			return &task, nil
		}
		if !errors.Is(err, storage.ErrDuplicateID) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to allocate a unique task ID after %d attempts", maxIDAttempts)
}
