package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Drumstickz64/todolist/internal/ui"
)

// Lines used by everything except the task rows.
const chromeHeight = 12

var (
	inputBox        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	inputBoxFocused = inputBox.BorderForeground(lipgloss.Color("12"))
)

// View implements tea.Model.
func (m Model) View() string {
	f := m.ctrl.Snapshot()
	done, pending := m.ctrl.Stats()

	var b strings.Builder
	b.WriteString(ui.Header(done, pending))
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render(ui.ProgressBar(done, done+pending, 28)))
	b.WriteString("\n\n")

	box := inputBox
	if m.focus == focusInput {
		box = inputBoxFocused
	}
	b.WriteString(box.Render("Enter task:\n" + m.input.View()))
	b.WriteString("\n\n")

	if len(f.Rows) == 0 {
		b.WriteString(ui.MutedStyle.Render("no items, press a to add one"))
	}
	start, end := m.visibleRange(len(f.Rows))
	for i := start; i < end; i++ {
		prefix := "  "
		if i == m.cursor && m.focus == focusList {
			prefix = ui.SelectedStyle.Render("> ")
		}
		b.WriteString(prefix + ui.RowLine(f.Rows[i]))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(ui.HelpStyle.Render(m.help.View(m.keys)))
	}
	return ui.BorderStyle.Render(b.String())
}

// visibleRange returns the row window that keeps the cursor on screen.
func (m Model) visibleRange(n int) (start, end int) {
	rows := m.height - chromeHeight
	if m.height == 0 || rows >= n {
		return 0, n
	}
	if rows < 1 {
		rows = 1
	}
	start = m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}
