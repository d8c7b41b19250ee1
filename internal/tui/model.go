// Package tui hosts the task list in a full-screen Bubble Tea program.
//
// Every key press is one tick of the controller: pending deletions land
// first, then the key is interpreted against the frame the tick hands over.
// A delete schedules a follow-up frame so the row disappears on the next
// tick, the way a repaint would.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Drumstickz64/todolist/internal/logging"
	"github.com/Drumstickz64/todolist/internal/tasklist"
)

// Options tune the TUI.
type Options struct {
	CharLimit int  // max task name length typed in the input row (0 = unlimited)
	ShowHelp  bool // render the key help line
	Logger    *logging.Logger
}

type focus int

const (
	focusList focus = iota
	focusInput
)

// frameMsg asks for a tick with no user events.
type frameMsg struct{}

func nextFrame() tea.Msg { return frameMsg{} }

// Model implements tea.Model on top of a tasklist.Controller.
type Model struct {
	ctrl  *tasklist.Controller
	input textinput.Model
	keys  keyMap
	help  help.Model
	log   *logging.Logger

	focus    focus
	cursor   int
	width    int
	height   int
	showHelp bool
}

// New builds a Model driving ctrl.
func New(ctrl *tasklist.Controller, opt Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New task..."
	ti.CharLimit = opt.CharLimit
	ti.SetValue(ctrl.Input())

	log := opt.Logger
	if log == nil {
		log = logging.NopLogger()
	}

	return Model{
		ctrl:     ctrl,
		input:    ti,
		keys:     defaultKeys(),
		help:     help.New(),
		log:      log,
		showHelp: opt.ShowHelp,
	}
}

// Controller returns the driven controller.
func (m Model) Controller() *tasklist.Controller { return m.ctrl }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.ctrl.Tick(nil)
		m.clampCursor(m.ctrl.Len())
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.ctrl.Tick(tasklist.RenderFunc(func(f tasklist.Frame) []tasklist.Event {
			m.clampCursor(len(f.Rows))
			var events []tasklist.Event
			events, cmd = m.handleKey(msg, f)
			return events
		}))
		m.clampCursor(m.ctrl.Len())
		return m, cmd
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg, f tasklist.Frame) ([]tasklist.Event, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return nil, tea.Quit
	}
	if m.focus == focusInput {
		return m.handleInputKey(msg, f)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(f.Rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(f.Rows)-1, 0)
	case key.Matches(msg, m.keys.Toggle):
		if len(f.Rows) > 0 {
			return []tasklist.Event{tasklist.Toggle{Position: m.cursor}}, nil
		}
	case key.Matches(msg, m.keys.Delete):
		if len(f.Rows) > 0 {
			m.log.Debug("delete requested", "position", m.cursor)
			return []tasklist.Event{tasklist.Delete{Position: m.cursor}}, nextFrame
		}
	case key.Matches(msg, m.keys.Add):
		m.focus = focusInput
		return nil, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg, f tasklist.Frame) ([]tasklist.Event, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.input.SetValue("")
		// Land the cursor on the new task.
		m.cursor = len(f.Rows)
		return []tasklist.Event{tasklist.Submit{Text: f.Input}}, nil
	case key.Matches(msg, m.keys.Back):
		m.focus = focusList
		m.input.Blur()
		return nil, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != f.Input {
		return []tasklist.Event{tasklist.InputChanged{Text: v}}, cmd
	}
	return nil, cmd
}

func (m *Model) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the program and blocks until the user quits. Deletions still
// pending at exit are applied before returning.
func Run(ctrl *tasklist.Controller, opt Options) error {
	p := tea.NewProgram(New(ctrl, opt), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	ctrl.ApplyPendingDeletions()
	return nil
}
