package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List registered toolkit actions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, action := range c.app.Actions() {
				access := "CLI"
				if !action.SupportsInteractive() {
					access = "API only"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n  %s\n", action.Name(), access, action.Description())
			}
		},
	}
}
