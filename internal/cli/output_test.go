package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/todo/internal/model"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := ColorEnabled()
	SetColorEnabled(enabled)
	t.Cleanup(func() { SetColorEnabled(prev) })
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestColorFunctions(t *testing.T) {
	withColor(t, true)
	assert.Equal(t, "\033[32mok\033[0m", Green("ok"))
	assert.Equal(t, "\033[31mok\033[0m", Red("ok"))
	assert.Equal(t, "\033[90mok\033[0m", Gray("ok"))

	SetColorEnabled(false)
	assert.Equal(t, "ok", Green("ok"))
	assert.Equal(t, "ok", Red("ok"))
	assert.Equal(t, "ok", Gray("ok"))
}

func TestCheckbox(t *testing.T) {
	withColor(t, false)
	assert.Equal(t, "[x]", Checkbox(true))
	assert.Equal(t, "[ ]", Checkbox(false))
}

func TestTableRender(t *testing.T) {
	withColor(t, false)

	tbl := NewTable()
	tbl.AddRow("a", "[ ]", "short")
	tbl.AddRow("bbbb", "[x]", "longer text")

	var buf bytes.Buffer
	tbl.Render(&buf)

	assert.Equal(t, "a     [ ]  short\nbbbb  [x]  longer text\n", buf.String())
	assert.Equal(t, 2, tbl.Len())
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	withColor(t, true)

	tbl := NewTable()
	tbl.AddRow(Gray("ab"), "x")
	tbl.AddRow("abcd", "y")

	var buf bytes.Buffer
	tbl.Render(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Gray("ab")+"    x", lines[0])
	assert.Equal(t, "abcd  y", lines[1])
}

func TestTableMaxWidth(t *testing.T) {
	tbl := NewTable()
	tbl.SetMaxWidth(0, 8)
	tbl.AddRow("a very long cell", "z")

	var buf bytes.Buffer
	tbl.Render(&buf)
	assert.Equal(t, "a ver...  z\n", buf.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"héllo wörld", 8, "héllo..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "Truncate(%q, %d)", tt.in, tt.width)
	}
}

func TestTaskTable(t *testing.T) {
	withColor(t, false)

	tasks := []model.Task{
		{ID: "3f2a9c10-aaaa", Text: "buy milk"},
		{ID: "a1b2c3d4-bbbb", Text: "groceries\n- eggs", Completed: true},
	}

	var buf bytes.Buffer
	TaskTable(tasks, 8).Render(&buf)

	assert.Equal(t, "3f2a9c10  [ ]  buy milk\na1b2c3d4  [x]  groceries ...\n", buf.String())
}
