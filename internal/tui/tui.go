// Package tui is an interactive terminal front end for a todo server.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	browseHelp = "j/k move  space toggle  a add  e edit  d delete  r reload  q quit"
	inputHelp  = "enter save  esc cancel"
)

// Run starts the interactive UI on the terminal and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, board *ui.Board) error {
	if !cli.IsTerminal(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	program := tea.NewProgram(New(ctx, board), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Model is the bubbletea model. Every API call runs inside a tea.Cmd and
// reports back with a resultMsg.
type Model struct {
	ctx    context.Context
	board  *ui.Board
	mode   mode
	cursor int
	input  string // pending text for a new task
	editID string
	err    error
	loaded bool
}

type resultMsg struct {
	action string
	err    error
}

// New returns a model driving board.
func New(ctx context.Context, board *ui.Board) *Model {
	return &Model{ctx: ctx, board: board}
}

func (m *Model) Init() tea.Cmd {
	return m.do("load", m.board.Load)
}

func (m *Model) do(action string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return resultMsg{action: action, err: fn(ctx)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		return m.applyResult(msg), nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m, m.updateAdd(msg)
		case modeEdit:
			return m, m.updateEdit(msg)
		default:
			return m, m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *Model) applyResult(msg resultMsg) *Model {
	m.err = msg.err
	switch msg.action {
	case "load":
		m.loaded = true
	case "add":
		if msg.err == nil {
			m.input = ""
			m.mode = modeBrowse
			m.cursor = len(m.board.Tasks()) - 1
		}
	case "save":
		if msg.err == nil {
			m.editID = ""
			m.mode = modeBrowse
		}
	}
	m.clampCursor()
	return m
}

func (m *Model) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	tasks := m.board.Tasks()
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "j", "down":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "r":
		return m.do("load", m.board.Load)
	case "a":
		m.mode = modeAdd
		m.err = nil
	case " ", "x":
		if id, ok := m.selected(tasks); ok {
			return m.do("toggle", func(ctx context.Context) error {
				return m.board.Toggle(ctx, id)
			})
		}
	case "d":
		if id, ok := m.selected(tasks); ok {
			return m.do("delete", func(ctx context.Context) error {
				return m.board.Remove(ctx, id)
			})
		}
	case "e", "enter":
		if id, ok := m.selected(tasks); ok && m.board.StartEdit(id) {
			m.mode = modeEdit
			m.editID = id
			m.err = nil
		}
	}
	return nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		m.mode = modeBrowse
	case tea.KeyEnter:
		text := m.input
		return m.do("add", func(ctx context.Context) error {
			_, err := m.board.Add(ctx, text)
			return err
		})
	default:
		m.input = editLine(m.input, msg)
	}
	return nil
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	id := m.editID
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		m.board.CancelEdit(id)
		m.editID = ""
		m.mode = modeBrowse
	case tea.KeyEnter:
		return m.do("save", func(ctx context.Context) error {
			return m.board.SaveEdit(ctx, id)
		})
	default:
		text, _ := m.board.Editing(id)
		m.board.SetEditText(id, editLine(text, msg))
	}
	return nil
}

// editLine applies a typing key to a single-line buffer.
func editLine(s string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyBackspace:
		r := []rune(s)
		if len(r) > 0 {
			return string(r[:len(r)-1])
		}
		return s
	case tea.KeySpace:
		return s + " "
	case tea.KeyRunes:
		return s + string(msg.Runes)
	}
	return s
}

func (m *Model) selected(tasks []model.Task) (string, bool) {
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return "", false
	}
	return tasks[m.cursor].ID, true
}

func (m *Model) clampCursor() {
	n := len(m.board.Tasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My To-Do App") + "\n\n")

	tasks := m.board.Tasks()
	switch {
	case !m.loaded:
		b.WriteString("  Loading...\n")
	case len(tasks) == 0:
		b.WriteString("  No tasks yet.\n")
	}

	for i, task := range tasks {
		prefix := "  "
		if i == m.cursor && m.mode != modeAdd {
			prefix = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if task.Completed {
			box = "[x]"
		}
		if text, ok := m.board.Editing(task.ID); ok && task.ID == m.editID {
			b.WriteString(fmt.Sprintf("%s%s %s_\n", prefix, box, text))
			continue
		}
		line := firstLine(task.Text)
		if task.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, line))
	}

	if m.mode == modeAdd {
		b.WriteString(fmt.Sprintf("\n%s%s_\n", cursorStyle.Render("new: "), m.input))
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+m.err.Error()) + "\n")
	}

	help := browseHelp
	if m.mode != modeBrowse {
		help = inputHelp
	}
	b.WriteString("\n" + helpStyle.Render(help) + "\n")
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
