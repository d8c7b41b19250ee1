package ui

import (
	"fmt"
	"strings"

	"github.com/Drumstickz64/todolist/internal/tasklist"
)

const maxTitleWidth = 80

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in a rounded border.
func Panel(lines []string) string {
	return BorderStyle.Render(strings.Join(lines, "\n"))
}

// Header is the title line with live counts.
func Header(done, pending int) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		TitleStyle.Render("Todos"),
		SuccessStyle.Render("✔"), done,
		PendingStyle.Render("•"), pending,
		AccentStyle.Render("Total"), done+pending,
	)
}

// Truncate shortens s to at most maxTitleWidth runes.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) > maxTitleWidth {
		return string(r[:maxTitleWidth-3]) + "..."
	}
	return s
}

// RowLine renders one row as "<box> <name>", styled by state.
func RowLine(r tasklist.Row) string {
	box, text := MutedStyle.Render(BoxUnchecked), Truncate(r.Name)
	switch {
	case r.Pending:
		box, text = DeletingStyle.Render("✖"), DeletingStyle.Render(text)
	case r.IsDone:
		box, text = SuccessStyle.Render(BoxChecked), DoneStyle.Render(text)
	}
	return box + " " + text
}

// ListLines renders rows with their 1-based index.
func ListLines(rows []tasklist.Row) []string {
	if len(rows) == 0 {
		return []string{MutedStyle.Render("no items")}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", r.Position+1)
		out = append(out, MutedStyle.Render(idx)+" "+RowLine(r))
	}
	return out
}

// GroupLines renders rows split into Pending and Done sections, keeping
// each row's original index.
func GroupLines(rows []tasklist.Row) []string {
	var pend, done []tasklist.Row
	for _, r := range rows {
		if r.IsDone {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	section := func(title string, rs []tasklist.Row) []string {
		lines := []string{AccentStyle.Render(title)}
		if len(rs) == 0 {
			return append(lines, MutedStyle.Render("(none)"))
		}
		return append(lines, ListLines(rs)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
