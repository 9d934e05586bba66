package power

import (
	"errors"
	"strings"
	"testing"
)

type call struct {
	name string
	args []string
}

func recordingRunner(calls *[]call, err error) Runner {
	return func(name string, args ...string) error {
		*calls = append(*calls, call{name: name, args: args})
		return err
	}
}

func TestSystemActions(t *testing.T) {
	tests := []struct {
		name   string
		action func(*System) error
		want   string
	}{
		{"poweroff", (*System).PowerOff, "systemctl poweroff"},
		{"restart", (*System).Restart, "systemctl reboot"},
		{"logout", (*System).Logout, "loginctl terminate-user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []call
			s := NewSystem(recordingRunner(&calls, nil))

			if err := tt.action(s); err != nil {
				t.Fatalf("action failed: %v", err)
			}
			if len(calls) != 1 {
				t.Fatalf("Expected one command, got %d", len(calls))
			}
			got := calls[0].name + " " + strings.Join(calls[0].args, " ")
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("ran %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestSystemActions_Error(t *testing.T) {
	var calls []call
	boom := errors.New("not permitted")
	s := NewSystem(recordingRunner(&calls, boom))

	if err := s.PowerOff(); !errors.Is(err, boom) {
		t.Errorf("Expected runner error, got %v", err)
	}
}

func TestNewSystem_DefaultRunner(t *testing.T) {
	s := NewSystem(nil)
	if s.run == nil {
		t.Error("NewSystem(nil) should install the exec runner")
	}
	if err := execRunner("this-command-does-not-exist-12345"); err == nil {
		t.Error("execRunner should fail for a missing command")
	}
}
