package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ------- styling shared by the CLI and the TUI (Lip Gloss) -------
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	MutedStyle   = lipgloss.NewStyle().Faint(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	DeletingStyle = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("9"))
	HelpStyle     = lipgloss.NewStyle().Faint(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

const (
	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)

// OK prints a success line to w.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, SuccessStyle.Render("✔ "+msg))
}

// Fail prints an error line to w.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, ErrorStyle.Render("✖ "+msg))
}
