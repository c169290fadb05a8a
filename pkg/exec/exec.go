// Package exec hands control from the launcher to the application process.
package exec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrExecNotSupported indicates exec mode is not available on this platform.
var ErrExecNotSupported = errors.New("exec mode not supported on this platform")

// Executor handles process replacement after successful checks.
type Executor interface {
	// Exec replaces the current process with the specified command.
	// On Unix, this uses syscall.Exec. On Windows, returns ErrExecNotSupported.
	Exec(name string, args []string, env []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// Supervisor runs the application as a child and reports its exit code.
type Supervisor interface {
	Supervise(ctx context.Context, name string, args []string, env []string) (int, error)
}

// Handoff modes.
const (
	ModeExec      = "exec"
	ModeSupervise = "supervise"
)

// Launcher starts the application in the configured mode.
type Launcher struct {
	Mode       string
	Executor   Executor
	Supervisor Supervisor
}

// Launch hands control to the application. In exec mode it returns only
// on failure. In supervise mode it returns the application's exit code.
// Exec mode falls back to supervising where exec is not supported.
func (l *Launcher) Launch(ctx context.Context, name string, args []string, env []string) (int, error) {
	switch l.Mode {
	case ModeExec, "":
		err := l.Executor.Exec(name, args, env)
		if err == nil {
			return 0, nil
		}
		if !errors.Is(err, ErrExecNotSupported) {
			return -1, err
		}
		return l.Supervisor.Supervise(ctx, name, args, env)
	case ModeSupervise:
		return l.Supervisor.Supervise(ctx, name, args, env)
	default:
		return -1, fmt.Errorf("unknown handoff mode %q", l.Mode)
	}
}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}
