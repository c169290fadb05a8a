//go:build unix

package exec

import (
	"syscall"
)

// execFunc is syscall.Exec, replaceable in tests.
var execFunc = syscall.Exec

// Exec replaces the current process with the specified command.
// This is the Unix implementation using syscall.Exec.
func (e *RealExecutor) Exec(name string, args []string, env []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	// syscall.Exec replaces the current process.
	// argv[0] must be the program name by convention.
	argv := append([]string{name}, args...)
	// #nosec G204 -- the launcher execs the configured interpreter with the application entrypoint.
	return execFunc(binary, argv, env)
}
