// Package cmd implements the crashlens command-line interface.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/crashlens/internal/eventlog"
)

var rootCmd = &cobra.Command{
	Use:   "crashlens",
	Short: "find and explain application crashes in the Windows Event Log",
	Long: `crashlens - find and explain application crashes in the Windows Event Log

Point it at an executable and it searches the event log for crash events
(application errors, hangs, error reports), filters the ones that concern
your executable, and explains known crash signatures in plain language.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps a command error to the process exit code: 2 permission
// denied, 3 source unavailable, 4 timeout, 1 anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, eventlog.ErrAccessDenied):
		return 2
	case errors.Is(err, eventlog.ErrSourceUnavailable):
		return 3
	case errors.Is(err, eventlog.ErrTimeout):
		return 4
	}
	return 1
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(versionCmd)
}
