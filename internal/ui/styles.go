package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Flame  = lipgloss.Color("#F97316") // Orange accent
	Ember  = lipgloss.Color("#FDBA74") // Soft orange
	Sky    = lipgloss.Color("#38BDF8") // Clock and keys
	Text   = lipgloss.Color("#E5E7EB")
	Subtle = lipgloss.Color("#9CA3AF")
	Frame  = lipgloss.Color("#4B5563")
	Cursor = lipgloss.Color("#1E3A8A") // Highlighted row
	Danger = lipgloss.Color("#F87171")
)

// Header
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Flame)

	ClockStyle = lipgloss.NewStyle().
			Foreground(Sky)
)

// Query box
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(Flame).
			Bold(true)

	QueryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Flame).
			Padding(0, 1)
)

// Result list
var (
	ResultsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Frame).
			Padding(0, 1)

	ResultsTitleStyle = lipgloss.NewStyle().
				Foreground(Ember).
				Bold(true)

	RuleStyle = lipgloss.NewStyle().Foreground(Frame)

	RowStyle = lipgloss.NewStyle().Foreground(Text)

	ActiveRowStyle = lipgloss.NewStyle().
			Background(Cursor).
			Foreground(Text).
			Bold(true)

	MarkerStyle = lipgloss.NewStyle().Foreground(Flame)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)
)

// Error line and help bar
var (
	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Danger).
			Padding(0, 1)

	ErrorTextStyle = lipgloss.NewStyle().Foreground(Danger)

	HelpBarStyle = lipgloss.NewStyle().Padding(0, 1)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(Sky)
	helpDescStyle = lipgloss.NewStyle().Foreground(Subtle)
	helpSepStyle  = lipgloss.NewStyle().Foreground(Frame)
)

// HelpStyles returns the help bar styles in the launcher palette
func HelpStyles() help.Styles {
	return help.Styles{
		Ellipsis:       helpSepStyle,
		ShortKey:       helpKeyStyle,
		ShortDesc:      helpDescStyle,
		ShortSeparator: helpSepStyle,
		FullKey:        helpKeyStyle,
		FullDesc:       helpDescStyle,
		FullSeparator:  helpSepStyle,
	}
}

// RenderError formats a failed launch or power action for the error line
func RenderError(msg string) string {
	return ErrorTextStyle.Render("✗ " + msg)
}
