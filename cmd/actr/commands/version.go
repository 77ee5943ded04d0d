package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridden at link time.
var Version = "dev"

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the actr version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "actr "+Version)
		},
	}
}
