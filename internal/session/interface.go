package session

import "rocket/internal/config"

// Input tokens understood by HandleInput. Anything else is a query.
const (
	TokenEscape   = "ESC"
	TokenEnter    = "ENTER"
	TokenPowerOff = "P"
	TokenRestart  = "R"
	TokenLogout   = "L"
)

// App is what a presentation layer drives: it feeds input tokens in and
// renders the query, result names, clock and error state it reads back.
type App interface {
	// Update reports whether the session is finished and the program should exit
	Update() bool

	// HandleInput applies one input token or the full current query text
	HandleInput(input string)

	// SetQuery replaces the query without interpreting it as a token
	SetQuery(query string)

	ShouldQuit() bool
	Query() string

	// Results returns the names of the current results, in order
	Results() []string

	// Time returns the clock text in the configured time zone
	Time() string

	// LaunchApp launches the current result named name
	LaunchApp(name string)

	// Err returns the last launch or power action error, if any
	Err() error

	Config() config.Config
}
