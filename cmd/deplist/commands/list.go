package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project]",
		Short: "Print the product list of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var project string
			if len(args) == 1 {
				project = args[0]
			}

			entries, err := c.app.List(cmd.Context(), project, runOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				_, _ = fmt.Fprintf(out, "%s %s\n", e.Name, e.Token)
			}
			return nil
		},
	}
}
