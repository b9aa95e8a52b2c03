package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jacksmith/todo/internal/model"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// colorEnabled is set from terminal detection and can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled overrides color detection.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether color output is on.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s in green if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s in red if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Gray returns s in gray if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Checkbox renders the completed marker used in task listings.
func Checkbox(completed bool) string {
	if completed {
		return Green("[x]")
	}
	return "[ ]"
}

// DefaultMaxTextWidth caps the text column in task tables.
const DefaultMaxTextWidth = 60

// Table formats columnar output, padding every column but the last.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth caps a column's visible width; longer cells are truncated.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := lipgloss.Width(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(t.colWidths)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(col))
			}
			parts = append(parts, col)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
}

// Truncate cuts plain text s to maxWidth runes, ending in "..." when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	const ellipsis = "..."
	if maxWidth <= len(ellipsis) {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-len(ellipsis)]) + ellipsis
}

// TaskTable builds the table printed by `todo list`. Multi-line text is
// flattened to its first line.
func TaskTable(tasks []model.Task, idWidth int) *Table {
	t := NewTable()
	t.SetMaxWidth(2, DefaultMaxTextWidth)
	for _, task := range tasks {
		text := task.Text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[:i] + " ..."
		}
		t.AddRow(Gray(model.ShortID(task.ID, idWidth)), Checkbox(task.Completed), text)
	}
	return t
}
