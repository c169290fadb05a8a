// Package venv makes sure the application runs inside its isolated Python runtime.
package venv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/mumega/launchpad/pkg/check"
	"github.com/mumega/launchpad/pkg/runner"
	"github.com/mumega/launchpad/pkg/version"
)

// ErrRuntimeMissing is returned when no runtime is active and the local one does not exist.
var ErrRuntimeMissing = errors.New("virtual environment not found")

// versionTimeout bounds the interpreter version probe.
const versionTimeout = 30 * time.Second

// Runtime is an isolated runtime ready to run the application's tools.
type Runtime struct {
	Dir       string   // runtime root
	BinDir    string   // directory holding python and pip
	Activated bool     // true when the launcher activated it, false when inherited
	Environ   []string // environment for child processes
}

// Executable returns the runtime's copy of name when it has one, otherwise
// name itself so the caller falls back to PATH lookup.
func (r Runtime) Executable(name string, fs FileStater) string {
	if r.BinDir == "" || filepath.IsAbs(name) {
		return name
	}
	candidates := []string{filepath.Join(r.BinDir, name)}
	if runtime.GOOS == "windows" {
		candidates = append([]string{filepath.Join(r.BinDir, name+".exe")}, candidates...)
	}
	for _, c := range candidates {
		if info, err := fs.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return name
}

// Activator checks for an active runtime and activates the local one otherwise.
type Activator struct {
	Dir       string        // local runtime directory, resolved
	Display   string        // Dir as shown to the operator
	Active    string        // VIRTUAL_ENV at startup; non-empty skips activation
	Environ   []string      // environment snapshot to derive from
	Python    string        // interpreter name for the version probe; empty skips it
	MinPython string        // lowest accepted interpreter version
	FS        FileStater    // injected for testing
	Runner    runner.Runner // injected for testing; nil skips the version probe
}

// Activate returns the runtime to use for the remaining steps.
func (a *Activator) Activate(ctx context.Context) (Runtime, check.Result) {
	result := check.Result{
		Name:  "Virtual environment",
		Fatal: true,
	}

	var rt Runtime
	if a.Active != "" {
		rt = Runtime{Dir: a.Active, BinDir: binDir(a.Active), Environ: a.Environ}
		result.AddDetailf("active: %s", a.Active)
	} else {
		info, err := a.FS.Stat(a.Dir)
		if err != nil || !info.IsDir() {
			if err == nil {
				err = fmt.Errorf("%s is not a directory", a.Display)
			}
			return rt, result.Fail(fmt.Sprintf("Virtual environment not found: %s", a.Display),
				fmt.Errorf("%w: %s: %v", ErrRuntimeMissing, a.Display, err))
		}

		dir := a.Dir
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		rt = Runtime{Dir: dir, BinDir: binDir(dir), Activated: true, Environ: activatedEnviron(a.Environ, dir)}
		result.AddDetailf("activated: %s", a.Display)
	}

	if a.Runner != nil && a.Python != "" {
		a.checkInterpreter(ctx, rt, &result)
	}

	return rt, result.Pass()
}

// checkInterpreter records the interpreter version. Problems are warnings:
// the installer step fails loudly if the interpreter is truly unusable.
func (a *Activator) checkInterpreter(ctx context.Context, rt Runtime, result *check.Result) {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	python := rt.Executable(a.Python, a.FS)
	stdout, stderr, err := a.Runner.Run(ctx, runner.Command{
		Name: python,
		Args: []string{"--version"},
		Env:  rt.Environ,
	})
	if err != nil {
		result.Warn(fmt.Sprintf("interpreter %s not runnable: %v", a.Python, err), err)
		return
	}

	// Python 2 prints its version on stderr.
	out := stdout
	if out == "" {
		out = stderr
	}
	v, err := version.Extract(out)
	if err != nil {
		result.Warn(fmt.Sprintf("could not read interpreter version: %v", err), err)
		return
	}
	result.AddDetailf("python: %s", v)

	if a.MinPython == "" {
		return
	}
	minimum, err := version.Parse(a.MinPython)
	if err != nil {
		result.Warn(fmt.Sprintf("invalid minimum interpreter version %q", a.MinPython), err)
		return
	}
	if !version.AtLeast(v, minimum) {
		result.Warnf("python %s is older than required %s", v, minimum)
	}
}
