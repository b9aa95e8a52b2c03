// Package ui holds client-side view state for the task list.
//
// A Board mirrors the server's list. Every mutation calls the API first and
// only applies the result locally on success; on failure the error is logged
// and the view is left as it was.
package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/jacksmith/todo/internal/client"
	"github.com/jacksmith/todo/internal/model"
)

// ErrUnknownTask is returned for actions on a task the board does not show.
var ErrUnknownTask = errors.New("task not on board")

// TaskAPI is the server surface a Board needs. *client.Client implements it.
type TaskAPI interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, text string) (*model.Task, error)
	Update(ctx context.Context, req client.UpdateRequest) (*model.Task, error)
	Delete(ctx context.Context, id string) error
}

// Board is the local view of the task list. It is safe for concurrent use;
// the lock is never held across API calls.
type Board struct {
	api    TaskAPI
	logger *log.Logger

	mu    sync.Mutex
	tasks []model.Task
	edits map[string]string // task ID -> pending text
}

// NewBoard returns an empty board.
func NewBoard(api TaskAPI, logger *log.Logger) *Board {
	return &Board{
		api:    api,
		logger: logger,
		tasks:  []model.Task{},
		edits:  make(map[string]string),
	}
}

// Tasks returns a copy of the tasks currently shown.
func (b *Board) Tasks() []model.Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Load replaces the view with the server's list.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.api.List(ctx)
	if err != nil {
		b.logger.Error("load tasks", "err", err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = tasks
	for id := range b.edits {
		if indexOf(b.tasks, id) < 0 {
			delete(b.edits, id)
		}
	}
	return nil
}

// Add creates a task and appends the server's record.
func (b *Board) Add(ctx context.Context, text string) (*model.Task, error) {
	task, err := b.api.Create(ctx, text)
	if err != nil {
		b.logger.Error("add task", "err", err)
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append(b.tasks, *task)
	return task, nil
}

// Toggle flips the completed flag of the task with the given ID.
func (b *Board) Toggle(ctx context.Context, id string) error {
	b.mu.Lock()
	i := indexOf(b.tasks, id)
	var completed bool
	if i >= 0 {
		completed = !b.tasks[i].Completed
	}
	b.mu.Unlock()

	if i < 0 {
		err := fmt.Errorf("%w: %s", ErrUnknownTask, id)
		b.logger.Error("toggle task", "id", id, "err", err)
		return err
	}

	updated, err := b.api.Update(ctx, client.UpdateRequest{ID: id, Completed: &completed})
	if err != nil {
		b.logger.Error("toggle task", "id", id, "err", err)
		return err
	}
	b.replace(*updated)
	return nil
}

// Remove deletes the task with the given ID.
func (b *Board) Remove(ctx context.Context, id string) error {
	if err := b.api.Delete(ctx, id); err != nil {
		b.logger.Error("delete task", "id", id, "err", err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.tasks[:0]
	for _, t := range b.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	b.tasks = kept
	delete(b.edits, id)
	return nil
}

// StartEdit enters edit mode for a task, seeding the buffer with its text.
// Returns false if the task is not on the board.
func (b *Board) StartEdit(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := indexOf(b.tasks, id)
	if i < 0 {
		return false
	}
	b.edits[id] = b.tasks[i].Text
	return true
}

// Editing returns the pending text for a task in edit mode.
func (b *Board) Editing(id string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	text, ok := b.edits[id]
	return text, ok
}

// SetEditText replaces the pending text. It is a no-op outside edit mode.
func (b *Board) SetEditText(id, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.edits[id]; ok {
		b.edits[id] = text
	}
}

// CancelEdit discards the pending text and leaves edit mode.
func (b *Board) CancelEdit(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.edits, id)
}

// SaveEdit commits the pending text. On success the task leaves edit mode;
// on failure it stays in edit mode with its buffer intact.
func (b *Board) SaveEdit(ctx context.Context, id string) error {
	text, ok := b.Editing(id)
	if !ok {
		err := fmt.Errorf("%w: %s not in edit mode", ErrUnknownTask, id)
		b.logger.Error("save task", "id", id, "err", err)
		return err
	}

	updated, err := b.api.Update(ctx, client.UpdateRequest{ID: id, Text: &text})
	if err != nil {
		b.logger.Error("save task", "id", id, "err", err)
		return err
	}

	b.mu.Lock()
	delete(b.edits, id)
	b.mu.Unlock()
	b.replace(*updated)
	return nil
}

// replace swaps in the server's copy of a task.
func (b *Board) replace(task model.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := indexOf(b.tasks, task.ID); i >= 0 {
		b.tasks[i] = task
	}
}

func indexOf(tasks []model.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
