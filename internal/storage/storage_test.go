package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/jacksmith/todo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemory(t *testing.T, tasks ...model.Task) *Memory {
	t.Helper()
	m := NewMemory()
	for _, task := range tasks {
		require.NoError(t, m.Insert(task))
	}
	return m
}

func TestList(t *testing.T) {
	t.Run("empty store returns empty non-nil slice", func(t *testing.T) {
		m := NewMemory()
		got := m.List()
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		m := newTestMemory(t,
			model.Task{ID: "c", Text: "third"},
			model.Task{ID: "a", Text: "first"},
			model.Task{ID: "b", Text: "second"},
		)
		assert.Equal(t, []string{"c", "a", "b"}, model.IDs(m.List()))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		m := newTestMemory(t, model.Task{ID: "a", Text: "first"})
		got := m.List()
		got[0].Text = "changed"

		task, err := m.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "first", task.Text)
	})
}

func TestInsert(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Insert(model.Task{ID: "a", Text: "one"}))
	assert.Equal(t, 1, m.Len())

	err := m.Insert(model.Task{ID: "a", Text: "again"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Equal(t, 1, m.Len())
}

func TestGetAndExists(t *testing.T) {
	m := newTestMemory(t, model.Task{ID: "a", Text: "one"})

	task, err := m.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "one", task.Text)
	assert.True(t, m.Exists("a"))

	_, err = m.Get("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, m.Exists("missing"))
}

func TestUpdate(t *testing.T) {
	t.Run("applies changes in place", func(t *testing.T) {
		m := newTestMemory(t,
			model.Task{ID: "a", Text: "one"},
			model.Task{ID: "b", Text: "two"},
		)

		got, err := m.Update("a", func(task *model.Task) error {
			task.Completed = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, got.Completed)
		assert.Equal(t, "one", got.Text)

		list := m.List()
		assert.Equal(t, []string{"a", "b"}, model.IDs(list))
		assert.True(t, list[0].Completed)
		assert.False(t, list[1].Completed)
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		m := newTestMemory(t, model.Task{ID: "a", Text: "one"})
		called := false
		_, err := m.Update("missing", func(task *model.Task) error {
			called = true
			return nil
		})
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, called)
	})

	t.Run("callback error leaves task unchanged", func(t *testing.T) {
		m := newTestMemory(t, model.Task{ID: "a", Text: "one"})
		_, err := m.Update("a", func(task *model.Task) error {
			task.Text = "partial"
			return fmt.Errorf("nope")
		})
		require.Error(t, err)

		task, _ := m.Get("a")
		assert.Equal(t, "one", task.Text)
	})

	t.Run("id cannot be reassigned", func(t *testing.T) {
		m := newTestMemory(t, model.Task{ID: "a", Text: "one"})
		got, err := m.Update("a", func(task *model.Task) error {
			task.ID = "b"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)
		assert.True(t, m.Exists("a"))
		assert.False(t, m.Exists("b"))
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes only the matching task", func(t *testing.T) {
		m := newTestMemory(t,
			model.Task{ID: "a", Text: "one"},
			model.Task{ID: "b", Text: "two"},
			model.Task{ID: "c", Text: "three"},
		)
		assert.Equal(t, 1, m.Delete("b"))
		assert.Equal(t, []string{"a", "c"}, model.IDs(m.List()))
	})

	t.Run("unknown id removes nothing", func(t *testing.T) {
		m := newTestMemory(t, model.Task{ID: "a", Text: "one"})
		assert.Equal(t, 0, m.Delete("missing"))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("delete from empty store", func(t *testing.T) {
		m := NewMemory()
		assert.Equal(t, 0, m.Delete("a"))
		assert.Empty(t, m.List())
	})
}

func TestConcurrentAccess(t *testing.T) {
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("t-%d", i)
			assert.NoError(t, m.Insert(model.Task{ID: id, Text: id}))
			_, err := m.Update(id, func(task *model.Task) error {
				task.Completed = true
				return nil
			})
			assert.NoError(t, err)
			_ = m.List()
		}(i)
	}
	wg.Wait()

	list := m.List()
	assert.Len(t, list, 50)
	for _, task := range list {
		assert.True(t, task.Completed)
	}
}
