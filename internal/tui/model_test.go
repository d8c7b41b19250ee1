package tui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Drumstickz64/todolist/internal/model"
	"github.com/Drumstickz64/todolist/internal/tasklist"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func newModel(names ...string) Model {
	c := tasklist.New()
	for _, n := range names {
		c.AddTask(n)
	}
	return New(c, Options{CharLimit: 200, ShowHelp: true})
}

// send feeds msgs through Update, following each with a frame message the
// way the program repaints, so deferred deletions land before the next key.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		next, _ = next.Update(frameMsg{})
		m = next.(Model)
	}
	return m
}

func tasks(m Model) []model.Task { return m.Controller().Tasks() }

func TestToggleFlipsCursorRow(t *testing.T) {
	m := newModel("a", "b")
	m = send(t, m, keyDown, keySpace)

	want := []model.Task{{Name: "a"}, {Name: "b", IsDone: true}}
	if !slices.Equal(tasks(m), want) {
		t.Fatalf("tasks = %v, want %v", tasks(m), want)
	}

	m = send(t, m, runes("x"))
	if tasks(m)[1].IsDone {
		t.Error("second toggle should restore pending state")
	}
}

func TestDeleteIsDeferredToNextFrame(t *testing.T) {
	m := newModel("a", "b", "c")

	next, cmd := m.Update(runes("d"))
	m = next.(Model)
	if m.Controller().Len() != 3 {
		t.Fatalf("delete applied in the same tick, Len() = %d", m.Controller().Len())
	}
	if cmd == nil {
		t.Fatal("delete should schedule a frame")
	}
	if !m.Controller().Snapshot().Rows[0].Pending {
		t.Error("row 0 should be pending deletion")
	}

	next, _ = m.Update(cmd())
	m = next.(Model)
	want := []model.Task{{Name: "b"}, {Name: "c"}}
	if !slices.Equal(tasks(m), want) {
		t.Errorf("tasks = %v, want %v", tasks(m), want)
	}
}

func TestDeleteThenKeyBeforeFrame(t *testing.T) {
	// A key arriving before the frame message still sees post-deletion
	// positions, because its tick applies deletions first.
	m := newModel("a", "b", "c")
	next, _ := m.Update(runes("d"))
	m = next.(Model)
	m = send(t, m, keySpace)

	want := []model.Task{{Name: "b", IsDone: true}, {Name: "c"}}
	if !slices.Equal(tasks(m), want) {
		t.Errorf("tasks = %v, want %v", tasks(m), want)
	}
}

func TestCursorClampsAfterDeletingLast(t *testing.T) {
	m := newModel("a", "b")
	m = send(t, m, keyDown, runes("d"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	m = send(t, m, runes("d"))
	if m.Controller().Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Controller().Len())
	}
	// Keys on an empty list are harmless.
	m = send(t, m, keySpace, runes("d"), keyDown, keyUp)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestAddViaInput(t *testing.T) {
	m := newModel("existing")
	m = send(t, m, runes("a"), runes("w"), runes("a"), runes("l"), runes("k"))

	if got := m.Controller().Input(); got != "walk" {
		t.Fatalf("controller input = %q, want walk", got)
	}

	m = send(t, m, keyEnter)
	if got := m.Controller().Input(); got != "" {
		t.Errorf("input should be cleared after submit, got %q", got)
	}
	if m.input.Value() != "" {
		t.Errorf("text field should be cleared, got %q", m.input.Value())
	}
	want := []model.Task{{Name: "existing"}, {Name: "walk"}}
	if !slices.Equal(tasks(m), want) {
		t.Fatalf("tasks = %v, want %v", tasks(m), want)
	}

	// Empty submissions are accepted.
	m = send(t, m, keyEnter)
	if n := m.Controller().Len(); n != 3 {
		t.Errorf("Len() = %d, want 3 after empty submit", n)
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (newest task)", m.cursor)
	}
}

func TestInputKeysDoNotTriggerListActions(t *testing.T) {
	m := newModel("a")
	m = send(t, m, runes("a"), runes("q"), runes("d"))

	if m.Controller().Len() != 1 {
		t.Errorf("typing d deleted a task")
	}
	if got := m.Controller().Input(); got != "qd" {
		t.Errorf("input = %q, want qd", got)
	}

	m = send(t, m, keyEsc)
	if m.focus != focusList {
		t.Error("esc should return focus to the list")
	}
	if got := m.Controller().Input(); got != "qd" {
		t.Errorf("leaving the input should keep the draft, got %q", got)
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), keyCtrlC} {
		m := newModel("a")
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestCtrlCQuitsFromInput(t *testing.T) {
	m := newModel()
	m = send(t, m, runes("a"))
	_, cmd := m.Update(keyCtrlC)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestView(t *testing.T) {
	m := newModel("buy milk", "walk dog")
	m = send(t, m, keySpace)
	out := m.View()

	for _, want := range []string{"Todos", "✔ 1", "• 1", "Total 2", "buy milk", "walk dog", "Enter task:", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}

	empty := newModel().View()
	if !strings.Contains(empty, "no items") {
		t.Errorf("empty View() should say no items:\n%s", empty)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		cursor     int
		n          int
		start, end int
	}{
		{name: "unknown height shows all", height: 0, cursor: 3, n: 10, start: 0, end: 10},
		{name: "fits", height: 40, cursor: 3, n: 10, start: 0, end: 10},
		{name: "scrolls to cursor", height: chromeHeight + 4, cursor: 8, n: 10, start: 6, end: 10},
		{name: "centered", height: chromeHeight + 4, cursor: 5, n: 10, start: 3, end: 7},
		{name: "tiny terminal", height: 3, cursor: 2, n: 5, start: 2, end: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{height: tt.height, cursor: tt.cursor}
			start, end := m.visibleRange(tt.n)
			if start != tt.start || end != tt.end {
				t.Errorf("visibleRange() = %d, %d, want %d, %d", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestWindowSize(t *testing.T) {
	m := newModel()
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 100 || m.height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.width, m.height)
	}
}
