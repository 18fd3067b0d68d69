package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <pipeline-config-path>",
		Short: "Show pipeline configuration metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := c.app.Describe(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "project: %s\nconfiguration: %s (id %d)\npath: %s\n",
				pc.ProjectName, pc.Name, pc.ID, pc.Path)
			return nil
		},
	}
}
