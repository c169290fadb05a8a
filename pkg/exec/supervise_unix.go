//go:build unix

package exec

import (
	"os/exec"
	"syscall"
)

// configureChild puts the application in its own process group. A terminal
// Ctrl-C then reaches only the launcher, which forwards it exactly once.
func configureChild(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
