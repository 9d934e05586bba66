//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// detach starts the child in its own session so it outlives the launcher
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
