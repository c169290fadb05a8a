// Package runner runs external tools (installer, interpreter) on behalf of startup steps.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// Command describes a single external process invocation.
type Command struct {
	Name   string
	Args   []string
	Env    []string  // full environment; nil inherits the launcher's
	Dir    string    // working directory; empty means current
	Stdout io.Writer // optional live copy of stdout
	Stderr io.Writer // optional live copy of stderr
}

// String returns the command line for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner abstracts command execution for testability.
type Runner interface {
	Run(ctx context.Context, cmd Command) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// Run executes a command, waits for it and returns its captured output.
func (r *RealRunner) Run(ctx context.Context, cmd Command) (stdout, stderr string, err error) {
	// #nosec G204 -- the launcher runs the configured installer and interpreter.
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Env = cmd.Env
	c.Dir = cmd.Dir

	var outBuf, errBuf bytes.Buffer
	c.Stdout = tee(&outBuf, cmd.Stdout)
	c.Stderr = tee(&errBuf, cmd.Stderr)

	err = c.Run()
	return outBuf.String(), errBuf.String(), err
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

// ExitCode returns the process exit code carried by err, 0 for nil
// and -1 when the process never produced one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Tail returns the last n non-blank lines of s.
func Tail(s string, n int) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimRight(line, "\r "); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(ctx context.Context, cmd Command) (string, string, error)
	Calls   []Command
}

// Run records the call and calls the mock function.
func (m *MockRunner) Run(ctx context.Context, cmd Command) (string, string, error) {
	m.Calls = append(m.Calls, cmd)
	if m.RunFunc == nil {
		return "", "", nil
	}
	return m.RunFunc(ctx, cmd)
}
