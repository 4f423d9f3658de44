package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [projects...]",
		Short: "Fail if a dependency page is missing or out of date",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Check(cmd.Context(), args, runOptions(cmd)); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "dependency pages are up to date")
			return nil
		},
	}
}
