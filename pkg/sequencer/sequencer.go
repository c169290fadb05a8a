// Package sequencer runs the ordered startup steps and hands off to the application.
package sequencer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mumega/launchpad/pkg/check"
	"github.com/mumega/launchpad/pkg/config"
	"github.com/mumega/launchpad/pkg/dbcheck"
	"github.com/mumega/launchpad/pkg/dbinit"
	"github.com/mumega/launchpad/pkg/filecheck"
	"github.com/mumega/launchpad/pkg/installer"
	"github.com/mumega/launchpad/pkg/output"
	"github.com/mumega/launchpad/pkg/runner"
	"github.com/mumega/launchpad/pkg/venv"
)

// FileSystem provides stat operations shared by the file-inspecting steps.
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
}

// Launcher hands control to the application.
type Launcher interface {
	Launch(ctx context.Context, name string, args []string, env []string) (int, error)
}

// Deps are the collaborators the steps drive. Tests replace them with doubles.
type Deps struct {
	Printer  *output.Printer
	Logger   *zap.Logger
	FS       FileSystem
	Runner   runner.Runner
	Files    installer.Files
	Progress installer.Progress // optional
	Open     dbcheck.Opener     // nil uses dbcheck.DialectorFor
	Launcher Launcher
	// AppArgs are appended after the entrypoint.
	AppArgs []string
}

// Outcome is the terminal state of a run.
type Outcome struct {
	State    State
	ExitCode int
	Results  []check.Result
	Err      error // launch error, if any
}

// Sequencer runs the startup pipeline once.
type Sequencer struct {
	cfg  *config.Config
	deps Deps
	log  *zap.Logger
}

// New returns a Sequencer for cfg.
func New(cfg *config.Config, deps Deps) *Sequencer {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Sequencer{cfg: cfg, deps: deps, log: log}
}

// Run executes the steps in order and stops at the first fatal result.
// In exec handoff mode a successful run does not return.
func (s *Sequencer) Run(ctx context.Context) Outcome {
	var out Outcome
	cfg := s.cfg
	layout := cfg.Layout

	s.enter(&out, StateCheckingEnv)
	activator := &venv.Activator{
		Dir:       layout.Path(layout.Venv),
		Display:   layout.Venv,
		Active:    cfg.Env.VirtualEnv,
		Environ:   cfg.Env.Environ,
		Python:    cfg.Runtime.Python,
		MinPython: cfg.Runtime.MinPython,
		FS:        s.deps.FS,
		Runner:    s.deps.Runner,
	}
	rt, res := activator.Activate(ctx)
	if s.record(&out, res, ExitRuntimeMissing) {
		return out
	}

	s.enter(&out, StateCheckingFiles)
	if s.step(ctx, &out, filecheck.Required(layout.Root, layout.RequiredFiles(), s.deps.FS), ExitFileMissing) {
		return out
	}

	s.enter(&out, StateCheckingConfig)
	res = filecheck.Optional(layout.Root, layout.EnvFile, s.deps.FS).Run(ctx)
	if err := cfg.Env.ConfigFileErr; err != nil && res.Status == check.StatusOK {
		res.Warn(fmt.Sprintf("%s could not be loaded, using defaults: %v", layout.EnvFile, err), err)
	}
	s.record(&out, res, ExitOK)

	s.enter(&out, StateInstallingDeps)
	inst := &installer.Installer{
		Pip:          rt.Executable(cfg.Runtime.Pip, s.deps.FS),
		Manifest:     layout.Manifest,
		ManifestPath: layout.Path(layout.Manifest),
		Cache:        cfg.Runtime.InstallCache,
		Timeout:      cfg.Runtime.InstallTimeout,
		Env:          rt.Environ,
		Runner:       s.deps.Runner,
		Files:        s.deps.Files,
		Progress:     s.deps.Progress,
	}
	if rt.Dir != "" {
		inst.StampPath = filepath.Join(rt.Dir, installer.StampFile)
	}
	if s.step(ctx, &out, inst, ExitInstallFailed) {
		return out
	}

	s.enter(&out, StateCheckingDB)
	probe := &dbcheck.Probe{Config: cfg.Database, Open: s.deps.Open}
	resolved, res := probe.Run(ctx)
	if s.record(&out, res, ExitDatabaseConfig) {
		return out
	}

	python := rt.Executable(cfg.Runtime.Python, s.deps.FS)

	s.enter(&out, StateInitDB)
	initializer := &dbinit.Initializer{
		Python:     python,
		Script:     layout.InitScript,
		ScriptPath: layout.Path(layout.InitScript),
		Timeout:    cfg.Runtime.InitTimeout,
		Env:        rt.Environ,
		Runner:     s.deps.Runner,
		FS:         s.deps.FS,
	}
	s.step(ctx, &out, initializer, ExitOK)

	s.enter(&out, StateLaunching)
	s.deps.Printer.PrintBanner(output.Banner{
		Name:     cfg.Server.Name,
		Admin:    cfg.Server.URL(cfg.Server.AdminPath),
		Docs:     cfg.Server.URL(cfg.Server.DocsPath),
		UI:       cfg.Server.URL(cfg.Server.UIPath),
		Database: string(resolved.Kind),
	})

	args := append([]string{layout.Path(layout.Entrypoint)}, s.deps.AppArgs...)
	s.log.Debug("handing off",
		zap.String("mode", cfg.Handoff.Mode),
		zap.String("python", python),
		zap.Strings("args", args),
	)
	code, err := s.deps.Launcher.Launch(ctx, python, args, rt.Environ)
	if err != nil {
		s.deps.Printer.Error("Failed to launch application: %v", err)
		out.Err = err
		out.ExitCode = ExitLaunchFailed
		s.enter(&out, StateAborted)
		return out
	}

	out.ExitCode = code
	s.enter(&out, StateRunning)
	return out
}

// enter moves the run to next.
func (s *Sequencer) enter(out *Outcome, next State) {
	s.log.Debug("state transition",
		zap.Stringer("from", out.State),
		zap.Stringer("to", next),
	)
	out.State = next
}

// step runs c and records its result.
func (s *Sequencer) step(ctx context.Context, out *Outcome, c check.Checker, code int) bool {
	return s.record(out, c.Run(ctx), code)
}

// record prints and keeps res. It reports true, with the run moved to
// ABORTED and exit code set, when res stops the sequence.
func (s *Sequencer) record(out *Outcome, res check.Result, code int) bool {
	out.Results = append(out.Results, res)
	s.deps.Printer.PrintResult(res)
	s.log.Debug("step finished",
		zap.String("step", res.Name),
		zap.String("status", string(res.Status)),
		zap.Error(res.Err),
	)
	if !res.Aborts() {
		return false
	}
	out.ExitCode = code
	s.enter(out, StateAborted)
	return true
}
