package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <action> [args...]",
		Short: "Run a registered toolkit action",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunAction(cmd.Context(), args[0], args[1:])
		},
	}
}
