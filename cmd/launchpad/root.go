package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "launchpad [-- app-args...]",
	Short: "Prepare and start the Mumega FRC Platform",
	Long: `Launchpad checks the application's runtime, files and configuration,
installs its dependencies, verifies the database and then starts it.

Settings come from the environment and an optional .env file.
Arguments after -- are passed to the application.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLaunch,
}
