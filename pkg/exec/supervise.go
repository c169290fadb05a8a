package exec

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// RealSupervisor starts the application as a child process, forwards
// SIGINT and SIGTERM to it and waits for it to exit. On unix the child
// runs in its own process group so each signal arrives once.
type RealSupervisor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Supervise runs the application and returns its exit code. A non-nil
// error means the application could not be started or waited for.
func (s *RealSupervisor) Supervise(ctx context.Context, name string, args []string, env []string) (int, error) {
	// #nosec G204 -- the launcher runs the configured interpreter with the application entrypoint.
	cmd := exec.Command(name, args...)
	cmd.Env = env
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if s.Stdin != nil {
		cmd.Stdin = s.Stdin
	}
	if s.Stdout != nil {
		cmd.Stdout = s.Stdout
	}
	if s.Stderr != nil {
		cmd.Stderr = s.Stderr
	}
	configureChild(cmd)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	if err := cmd.Start(); err != nil {
		return -1, err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-sigs:
				_ = cmd.Process.Signal(sig)
			case <-ctx.Done():
				_ = cmd.Process.Signal(os.Interrupt)
				return
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
