package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mumega/launchpad/pkg/config"
	"github.com/mumega/launchpad/pkg/dbcheck"
	"github.com/mumega/launchpad/pkg/exec"
	"github.com/mumega/launchpad/pkg/installer"
	"github.com/mumega/launchpad/pkg/logger"
	"github.com/mumega/launchpad/pkg/output"
	"github.com/mumega/launchpad/pkg/runner"
	"github.com/mumega/launchpad/pkg/sequencer"
)

// appDir is the application checkout the launcher prepares.
var appDir = "."

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(appDir)
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}
	log = logger.WithRunID(log)
	defer func() { _ = log.Sync() }()

	log.Debug("configuration loaded",
		zap.String("env_file", cfg.Env.ConfigFile),
		zap.Bool("env_file_present", cfg.Env.ConfigFilePresent),
		zap.Bool("virtualenv_active", cfg.Env.VirtualEnvActive),
		zap.String("handoff", cfg.Handoff.Mode),
	)

	stdout := cmd.OutOrStdout()
	seq := sequencer.New(cfg, sequencer.Deps{
		Printer:  output.New(stdout),
		Logger:   log,
		FS:       osFS{},
		Runner:   &runner.RealRunner{},
		Files:    &installer.RealFiles{},
		Progress: output.NewSpinner(stdout, "Installing dependencies..."),
		Open:     dbcheck.DialectorFor,
		Launcher: &exec.Launcher{
			Mode:       cfg.Handoff.Mode,
			Executor:   &exec.RealExecutor{},
			Supervisor: &exec.RealSupervisor{Stdout: stdout, Stderr: cmd.ErrOrStderr()},
		},
		AppArgs: args,
	})

	outcome := seq.Run(cmd.Context())
	log.Debug("sequence finished",
		zap.Stringer("state", outcome.State),
		zap.Int("exit_code", outcome.ExitCode),
	)
	if outcome.ExitCode != sequencer.ExitOK {
		return &exitError{code: outcome.ExitCode}
	}
	return nil
}

type osFS struct{}

func (osFS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}
