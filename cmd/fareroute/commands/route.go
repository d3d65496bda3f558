package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fareroute/internal/ui/output"
)

func (c *CLI) newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the cheapest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := networkPath(cmd)
			if err != nil {
				return err
			}
			return c.printRoute(cmd, path, args[0], args[1])
		},
	}
}

func (c *CLI) printRoute(cmd *cobra.Command, path, from, to string) error {
	res, err := c.app.Route(path, from, to)
	if err != nil {
		return err
	}

	out := output.New(cmd.OutOrStdout())
	if !res.Found() {
		out.Failure("No route from %s to %s", from, to)
		return nil
	}
	out.Success("Cheapest route from %s to %s is %s (fare %s)", from, to, res.Path, out.Highlight(res.Fare.String()))
	return nil
}
