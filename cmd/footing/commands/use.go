package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <toolkit>",
		Short: "Select the active toolkit for this session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Use(cmd.Context(), c.cwd(cmd), args[0])
		},
	}
}
