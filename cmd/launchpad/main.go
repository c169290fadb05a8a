package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mumega/launchpad/pkg/logger"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(execute())
}

// execute runs the root command and returns the process exit code.
func execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	// Configuration may have failed to load, so the error goes through a
	// logger built from fixed settings.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
	return 1
}

// exitError carries a non-zero sequence exit code out of cobra.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
