// Package commands implements the CLI commands for footing.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/wesleykendall/footing/internal/app"
)

// CLI represents the command line interface for footing.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "footing",
		Short:         "Reusable, versioned toolkits for development environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("cwd", "C", ".", "Project directory containing footing.yaml")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newLsCmd())
	rootCmd.AddCommand(c.newUseCmd())
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

// SetOut sets the output writer for the root command. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func (c *CLI) cwd(cmd *cobra.Command) string {
	cwd, err := cmd.Flags().GetString("cwd")
	if err != nil || cwd == "" {
		return "."
	}
	return cwd
}
