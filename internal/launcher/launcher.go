// Package launcher starts applications as detached processes.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"rocket/internal/logging"
)

var (
	// ErrEmptyCommand is returned when there is nothing to run
	ErrEmptyCommand = errors.New("empty command")
	// ErrNoHome is returned when the user's home directory can't be resolved
	ErrNoHome = errors.New("failed to find home directory")
)

// Recorder stores the name of a launched application
type Recorder interface {
	Record(name string) error
}

// Launcher runs commands through a shell in the user's home directory
type Launcher struct {
	shell    string
	recorder Recorder
	homeDir  func() (string, error)
	start    func(cmd *exec.Cmd) error
}

// Option customizes a Launcher
type Option func(*Launcher)

// WithRecorder records every launch before spawning. Pass nil to disable.
func WithRecorder(r Recorder) Option {
	return func(l *Launcher) { l.recorder = r }
}

// WithHomeDir replaces the home directory lookup
func WithHomeDir(fn func() (string, error)) Option {
	return func(l *Launcher) { l.homeDir = fn }
}

// WithStarter replaces the function that starts the prepared command
func WithStarter(fn func(cmd *exec.Cmd) error) Option {
	return func(l *Launcher) { l.start = fn }
}

// New creates a Launcher that runs commands with shell (default "sh")
func New(shell string, opts ...Option) *Launcher {
	if strings.TrimSpace(shell) == "" {
		shell = "sh"
	}
	l := &Launcher{
		shell:   shell,
		homeDir: os.UserHomeDir,
		start:   startDetached,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch records name (when a recorder is set) and spawns command without
// waiting for it. A failed record aborts the launch before anything is spawned.
func (l *Launcher) Launch(name, command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}

	if l.recorder != nil {
		if err := l.recorder.Record(name); err != nil {
			return fmt.Errorf("update recent apps: %w", err)
		}
	}

	home, err := l.homeDir()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoHome, err)
	}
	if home == "" {
		return ErrNoHome
	}

	cmd := l.Command(command, home)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("start %q: %w", command, err)
	}

	logging.Info().Str("app", name).Str("command", command).Msg("launched")
	return nil
}

// Command prepares `<shell> -c command` to run in dir, detached from the
// launcher's terminal and session
func (l *Launcher) Command(command, dir string) *exec.Cmd {
	cmd := exec.Command(l.shell, "-c", command)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)
	return cmd
}

// startDetached starts cmd and releases it; the child is never waited on
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
