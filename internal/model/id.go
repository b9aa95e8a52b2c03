package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when an ID is empty.
var ErrInvalidID = errors.New("invalid ID")

// NewTaskID returns a fresh random task ID.
func NewTaskID() string {
	return uuid.NewString()
}

// ValidateID checks that s can be used to look up a task.
// IDs are opaque: any non-empty string is accepted.
func ValidateID(s string) error {
	if s == "" {
		return fmt.Errorf("%w: must not be empty", ErrInvalidID)
	}
	return nil
}

// ShortID returns the first n characters of id for display.
// IDs shorter than n are returned unchanged.
func ShortID(id string, n int) string {
	if n <= 0 || len(id) <= n {
		return id
	}
	return id[:n]
}

// IDs returns the IDs of tasks in order.
func IDs(tasks []Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
