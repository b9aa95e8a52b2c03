package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskState(t *testing.T) {
	open := Task{ID: "a", Text: "open"}
	done := Task{ID: "b", Text: "done", Completed: true}

	assert.Equal(t, TaskStateOpen, open.State())
	assert.Equal(t, TaskStateDone, done.State())
}

func TestFilterByState(t *testing.T) {
	tasks := []Task{
		{ID: "a", Text: "one"},
		{ID: "b", Text: "two", Completed: true},
		{ID: "c", Text: "three"},
	}

	t.Run("nil state returns all in order", func(t *testing.T) {
		got := FilterByState(tasks, nil)
		assert.Equal(t, []string{"a", "b", "c"}, IDs(got))
	})

	t.Run("open", func(t *testing.T) {
		s := TaskStateOpen
		got := FilterByState(tasks, &s)
		assert.Equal(t, []string{"a", "c"}, IDs(got))
	})

	t.Run("done", func(t *testing.T) {
		s := TaskStateDone
		got := FilterByState(tasks, &s)
		assert.Equal(t, []string{"b"}, IDs(got))
	})

	t.Run("empty input returns empty slice", func(t *testing.T) {
		got := FilterByState(nil, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCountByState(t *testing.T) {
	open, done := CountByState([]Task{
		{ID: "a"},
		{ID: "b", Completed: true},
		{ID: "c", Completed: true},
	})
	assert.Equal(t, 1, open)
	assert.Equal(t, 2, done)
}
