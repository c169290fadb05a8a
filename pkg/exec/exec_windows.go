//go:build windows

package exec

// Exec is not supported on Windows.
// Windows does not have a true exec syscall that replaces the current process;
// Launcher falls back to supervising the application.
func (e *RealExecutor) Exec(name string, args []string, env []string) error {
	return ErrExecNotSupported
}
