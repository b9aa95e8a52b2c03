package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "seed.yaml")
		content := `tasks:
  - text: Buy milk
  - text: Walk the dog
    completed: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		sf, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, sf.Tasks, 2)
		assert.Equal(t, SeedEntry{Text: "Buy milk"}, sf.Tasks[0])
		assert.Equal(t, SeedEntry{Text: "Walk the dog", Completed: true}, sf.Tasks[1])
	})

	t.Run("yml extension", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "seed.yml")
		require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - text: one\n"), 0644))

		sf, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, sf.Tasks, 1)
		assert.Equal(t, "one", sf.Tasks[0].Text)
	})

	t.Run("toml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "seed.toml")
		content := `[[tasks]]
text = "Buy milk"

[[tasks]]
text = "Walk the dog"
completed = true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		sf, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, sf.Tasks, 2)
		assert.Equal(t, "Buy milk", sf.Tasks[0].Text)
		assert.False(t, sf.Tasks[0].Completed)
		assert.True(t, sf.Tasks[1].Completed)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "seed.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

		_, err := LoadSeed(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported seed file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read seed file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tasks: [unclosed"), 0644))

		_, err := LoadSeed(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse seed file")
	})
}

func TestEncodeSeed(t *testing.T) {
	tasks := []Task{
		{ID: "a", Text: "Buy milk"},
		{ID: "b", Text: "Walk the dog", Completed: true},
		{ID: "c", Text: "line one\nline two"},
		{ID: "d", Text: "true"},
	}

	data, err := EncodeSeed(tasks)
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, "id:")
	assert.Contains(t, out, "text: Buy milk")
	assert.Contains(t, out, "completed: true")
	assert.Contains(t, out, "text: |")

	// Round trip keeps text and completion.
	sf, err := ParseSeedYAML(data)
	require.NoError(t, err)
	require.Len(t, sf.Tasks, 4)
	assert.Equal(t, "Buy milk", sf.Tasks[0].Text)
	assert.True(t, sf.Tasks[1].Completed)
	assert.Equal(t, "line one\nline two", sf.Tasks[2].Text)
	assert.Equal(t, "true", sf.Tasks[3].Text)
}

func TestEncodeSeedEmpty(t *testing.T) {
	data, err := EncodeSeed(nil)
	require.NoError(t, err)

	sf, err := ParseSeedYAML(data)
	require.NoError(t, err)
	assert.Empty(t, sf.Tasks)
}

func TestSaveSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, SaveSeed(path, []Task{{ID: "a", Text: "one"}}))

	sf, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, sf.Tasks, 1)
	assert.Equal(t, "one", sf.Tasks[0].Text)
}
