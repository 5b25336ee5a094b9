package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/crashlens/internal/eventlog"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "list registered event-log sources",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range eventlog.Sources() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
