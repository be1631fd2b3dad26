package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock [toolkit]",
		Short: "Resolve and cache a toolkit's lock artifact",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) > 0 {
				key = args[0]
			}
			return c.app.Lock(cmd.Context(), c.cwd(cmd), key)
		},
	}
}
