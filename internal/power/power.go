// Package power runs OS power actions through system commands.
package power

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
)

// Actions are the power operations the launcher can trigger
type Actions interface {
	PowerOff() error
	Restart() error
	Logout() error
}

// Runner executes a command and reports whether it succeeded
type Runner func(name string, args ...string) error

// System triggers power actions via systemd
type System struct {
	run Runner
}

// NewSystem creates System using run, or exec.Command when run is nil
func NewSystem(run Runner) *System {
	if run == nil {
		run = execRunner
	}
	return &System{run: run}
}

func execRunner(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}

// PowerOff shuts the machine down
func (s *System) PowerOff() error {
	return s.run("systemctl", "poweroff")
}

// Restart reboots the machine
func (s *System) Restart() error {
	return s.run("systemctl", "reboot")
}

// Logout terminates every session of the current user
func (s *System) Logout() error {
	return s.run("loginctl", "terminate-user", currentUser())
}

// currentUser returns the login name of the invoking user
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
