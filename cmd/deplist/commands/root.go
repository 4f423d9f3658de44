// Package commands implements the CLI commands for deplist.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/deplist/internal/app"
	"go.trai.ch/deplist/internal/build"
	"go.trai.ch/deplist/internal/core/domain"
)

// CLI represents the command line interface for deplist.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "deplist",
		Short:         "Render a project's product_deps as a documentation page",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default "+domain.ConfigFileName+" if present)")
	rootCmd.PersistentFlags().StringP("source", "s", "", "Source root directory (overrides the source root environment variable)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	sourceRoot, _ := cmd.Flags().GetString("source")
	return app.RunOptions{
		ConfigPath: configPath,
		SourceRoot: sourceRoot,
	}
}
