package components

import (
	"fmt"
	"strings"

	"rocket/internal/ui"
)

// ResultList renders search results by name with a cursor
type ResultList struct {
	Names   []string
	Cursor  int
	Width   int
	Height  int
	Focused bool
	Title   string
}

// NewResultList creates a new result list
func NewResultList(names []string) *ResultList {
	return &ResultList{
		Names:   names,
		Cursor:  0,
		Width:   40,
		Height:  10,
		Focused: true,
		Title:   "Applications",
	}
}

// SetNames replaces the listed names, keeping the cursor in range
func (l *ResultList) SetNames(names []string) {
	l.Names = names
	if l.Cursor >= len(names) {
		l.Cursor = max(0, len(names)-1)
	}
}

// MoveUp moves cursor up
func (l *ResultList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *ResultList) MoveDown() {
	if l.Cursor < len(l.Names)-1 {
		l.Cursor++
	}
}

// GoToFirst moves cursor to the first item
func (l *ResultList) GoToFirst() {
	l.Cursor = 0
}

// Current returns the name under the cursor
func (l *ResultList) Current() (string, bool) {
	if l.Cursor >= 0 && l.Cursor < len(l.Names) {
		return l.Names[l.Cursor], true
	}
	return "", false
}

// View renders the result list
func (l *ResultList) View() string {
	var b strings.Builder

	title := l.Title
	if len(l.Names) > 0 {
		title = fmt.Sprintf("%s (%d)", l.Title, len(l.Names))
	}
	b.WriteString(ui.ResultsTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.RuleStyle.Render(strings.Repeat("─", max(l.Width-2, 1))))
	b.WriteString("\n")

	if len(l.Names) == 0 {
		b.WriteString(ui.EmptyStyle.Render("  No matching applications"))
		return ui.ResultsStyle.Width(l.Width).Render(b.String())
	}

	// Calculate visible range
	visibleHeight := max(l.Height-2, 1)
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(l.Names))

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(l.renderItem(l.Names[i], i == l.Cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	return ui.ResultsStyle.Width(l.Width).Render(b.String())
}

// renderItem renders a single result row
func (l *ResultList) renderItem(name string, isCursor bool) string {
	maxNameLen := max(l.Width-8, 10)
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen-3]) + "..."
	}

	if isCursor && l.Focused {
		return ui.ActiveRowStyle.Width(max(l.Width-4, 1)).Render(ui.MarkerStyle.Render("›") + " " + name)
	}
	return ui.RowStyle.Render("  " + name)
}
