package main

import (
	"strings"
	"time"

	"rocket/internal/session"
	"rocket/internal/ui"
	"rocket/internal/ui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tickMsg refreshes the clock
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea front end over a session.App
type Model struct {
	app     session.App
	input   textinput.Model
	results *components.ResultList
	status  *components.StatusBar
	help    help.Model
	keys    ui.KeyMap
	clock   string
	width   int
	height  int
}

// NewModel creates the launcher model
func NewModel(app session.App) *Model {
	ti := textinput.New()
	ti.Prompt = ui.PromptStyle.Render("› ")
	ti.Placeholder = "Search applications..."
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(app.Query())
	ti.Focus()

	keys := ui.DefaultKeyMap()
	keys.SetPowerEnabled(app.Config().EnablePowerOptions)

	h := help.New()
	h.Styles = ui.HelpStyles()

	m := &Model{
		app:     app,
		input:   ti,
		results: components.NewResultList(app.Results()),
		status:  components.NewStatusBar(),
		help:    h,
		keys:    keys,
		clock:   app.Time(),
		width:   80,
		height:  24,
	}
	m.updateSizes()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tickMsg:
		m.clock = m.app.Time()
		return m, tick()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Escape):
		m.app.HandleInput(session.TokenEscape)
		return m, m.sync()

	case key.Matches(msg, m.keys.Enter):
		if m.results.Cursor == 0 {
			m.app.HandleInput(session.TokenEnter)
		} else if name, ok := m.results.Current(); ok {
			m.app.LaunchApp(name)
		}
		return m, m.sync()

	case key.Matches(msg, m.keys.Up):
		m.results.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.results.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.PowerOff):
		m.app.HandleInput(session.TokenPowerOff)
		return m, m.sync()

	case key.Matches(msg, m.keys.Restart):
		m.app.HandleInput(session.TokenRestart)
		return m, m.sync()

	case key.Matches(msg, m.keys.Logout):
		m.app.HandleInput(session.TokenLogout)
		return m, m.sync()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Everything else edits the query
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.app.SetQuery(value)
		m.results.GoToFirst()
		return m, tea.Batch(cmd, m.sync())
	}
	return m, cmd
}

// sync copies session state into the view components and quits once the
// session has finished
func (m *Model) sync() tea.Cmd {
	m.results.SetNames(m.app.Results())
	m.status.SetError(m.app.Err())
	if m.app.Update() {
		return tea.Quit
	}
	return nil
}

func (m *Model) updateSizes() {
	w := max(m.width-4, 20)
	m.input.Width = w - 6
	m.results.Width = w
	m.results.Height = m.app.Config().MaxSearchResults + 2
	m.status.Width = w
	m.help.Width = w
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(ui.QueryBoxStyle.Width(max(m.width-6, 18)).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.results.View())
	if m.status.IsVisible() {
		b.WriteString("\n")
		b.WriteString(m.status.View())
	}
	b.WriteString("\n")
	b.WriteString(ui.HelpBarStyle.Render(m.help.View(m.keys)))

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderHeader() string {
	title := ui.TitleStyle.Render("🚀 Rocket")
	clock := ui.ClockStyle.Render(m.clock)

	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(clock)-6, 1)
	return ui.HeaderStyle.Render(title + strings.Repeat(" ", gap) + clock)
}
