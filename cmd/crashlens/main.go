// Package main is the entry point for the crashlens CLI.
package main

import (
	"os"

	"github.com/crimson-sun/crashlens/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
