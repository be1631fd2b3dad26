package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List toolkits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, err := cmd.Flags().GetBool("active")
			if err != nil {
				return err
			}

			toolkits, err := c.app.List(cmd.Context(), c.cwd(cmd), active)
			if err != nil {
				return err
			}
			for _, tk := range toolkits {
				fmt.Fprintln(cmd.OutOrStdout(), tk.Key())
			}
			return nil
		},
	}
	cmd.Flags().Bool("active", false, "Show only the currently selected toolkit")
	return cmd
}
