package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [projects...]",
		Short: "Write docs/depends.rst for each project",
		Long: `Write docs/depends.rst for each project from its ups/product_deps.

With no arguments the projects listed in the configuration file are used,
or fhiclcpp when there is none.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Generate(cmd.Context(), args, runOptions(cmd))
		},
	}
}
