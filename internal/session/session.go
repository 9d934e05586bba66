// Package session holds the launcher state machine: the query, the current
// results and whether the program should quit.
package session

import (
	"rocket/internal/config"
	"rocket/internal/index"
	"rocket/internal/logging"
	"rocket/internal/models"
	"rocket/internal/power"
	"rocket/internal/recent"
	"rocket/internal/search"
)

// State is the session state
type State int

const (
	Browsing State = iota
	Quitting
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Quitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Launcher starts an application command
type Launcher interface {
	Launch(name, command string) error
}

// Session is the launcher's App implementation
type Session struct {
	cfg      config.Config
	index    *index.Index
	launcher Launcher
	power    power.Actions

	query   string
	results []models.Entry
	state   State
	err     error
}

var _ App = (*Session)(nil)

// New creates a session over idx. When recent apps are enabled and cache is
// non-nil, the initial results are seeded from it.
func New(cfg config.Config, idx *index.Index, l Launcher, p power.Actions, cache *recent.Cache) *Session {
	s := &Session{
		cfg:      cfg,
		index:    idx,
		launcher: l,
		power:    p,
		results:  []models.Entry{},
		state:    Browsing,
	}

	if cfg.EnableRecentApps && cache != nil {
		s.results = recent.Seed(cache, idx, cfg.MaxSearchResults)
		logging.Debug().Int("seeded", len(s.results)).Msg("seeded results from recent apps")
	}

	return s
}

// Update reports whether the session has finished
func (s *Session) Update() bool {
	return s.state == Quitting
}

// HandleInput applies an input token. Power tokens are only honoured when
// power options are enabled; otherwise they are treated as query text.
func (s *Session) HandleInput(input string) {
	switch input {
	case TokenEscape:
		s.state = Quitting
	case TokenEnter:
		s.launchFirst()
	case TokenPowerOff, TokenRestart, TokenLogout:
		if !s.cfg.EnablePowerOptions {
			s.setQuery(input)
			return
		}
		s.powerAction(input)
	default:
		s.setQuery(input)
	}
}

// SetQuery replaces the query with typed text. Unlike HandleInput, a query of
// "P", "R" or "L" never triggers a power action.
func (s *Session) SetQuery(query string) {
	s.setQuery(query)
}

// setQuery replaces the query and recomputes results
func (s *Session) setQuery(query string) {
	s.query = query
	s.results = search.Search(query, s.index.All(), s.cfg.MaxSearchResults)
	s.err = nil
}

// launchFirst launches the first result; no results is a no-op
func (s *Session) launchFirst() {
	if len(s.results) == 0 {
		return
	}
	s.launch(s.results[0])
}

// LaunchApp launches the result whose name matches exactly
func (s *Session) LaunchApp(name string) {
	e, ok := models.FindByName(s.results, name)
	if !ok {
		return
	}
	s.launch(e)
}

func (s *Session) launch(e models.Entry) {
	if s.launcher == nil {
		return
	}
	if err := s.launcher.Launch(e.Name, e.Command); err != nil {
		logging.Error().Err(err).Str("app", e.Name).Msg("failed to launch app")
		s.err = err
		return
	}
	s.err = nil
	s.state = Quitting
}

func (s *Session) powerAction(token string) {
	if s.power == nil {
		return
	}

	var err error
	switch token {
	case TokenPowerOff:
		err = s.power.PowerOff()
	case TokenRestart:
		err = s.power.Restart()
	case TokenLogout:
		err = s.power.Logout()
	}
	if err != nil {
		logging.Error().Err(err).Str("action", token).Msg("power action failed")
		s.err = err
	}
}

// ShouldQuit reports whether the session is quitting
func (s *Session) ShouldQuit() bool {
	return s.state == Quitting
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Query returns the current query
func (s *Session) Query() string {
	return s.query
}

// Results returns the names of the current results
func (s *Session) Results() []string {
	return models.Names(s.results)
}

// Time returns the current time in the configured zone
func (s *Session) Time() string {
	return s.cfg.CurrentTime()
}

// Err returns the last reported error
func (s *Session) Err() error {
	return s.err
}

// Config returns the active configuration
func (s *Session) Config() config.Config {
	return s.cfg
}
