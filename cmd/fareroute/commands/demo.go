package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample queries against the built-in network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.printRoute(cmd, "", "A", "C"); err != nil {
				return err
			}
			return c.printRoundTrip(cmd, "", "A", "B", 0)
		},
	}
}
