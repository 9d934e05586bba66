//go:build unix

package launcher

import "testing"

func TestCommand_NewSession(t *testing.T) {
	cmd := New("sh").Command("true", "/tmp")
	if cmd.SysProcAttr == nil || !cmd.SysProcAttr.Setsid {
		t.Error("Command should start the child in a new session")
	}
}
