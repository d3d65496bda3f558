package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fareroute/internal/ui/output"
	"github.com/katalvlaran/fareroute/roundtrip"
)

func (c *CLI) newRoundTripCmd() *cobra.Command {
	var maxStops int
	cmd := &cobra.Command{
		Use:   "roundtrip FROM TO",
		Short: "Plan a round trip with a per-leg stop limit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := networkPath(cmd)
			if err != nil {
				return err
			}
			return c.printRoundTrip(cmd, path, args[0], args[1], maxStops)
		},
	}
	cmd.Flags().IntVarP(&maxStops, "max-stops", "m", 0,
		fmt.Sprintf("Locations allowed per leg, endpoints included, at least 1 (0: network setting, default %d)", roundtrip.DefaultMaxStops))

	return cmd
}

func (c *CLI) printRoundTrip(cmd *cobra.Command, path, from, to string, maxStops int) error {
	trip, err := c.app.RoundTrip(path, from, to, maxStops)
	out := output.New(cmd.OutOrStdout())
	if errors.Is(err, roundtrip.ErrRoundTripInfeasible) {
		out.Failure("No valid round-trip route from %s to %s: %v", from, to, err)

		var limitErr *roundtrip.StopLimitError
		if errors.As(err, &limitErr) {
			out.Notice("The cheapest %s leg %s fits with --max-stops %d", limitErr.Leg, limitErr.Path, limitErr.Path.Stops())
		}
		return nil
	}
	if err != nil {
		return err
	}

	out.Success("Round-trip route from %s to %s is %s (fare %s)", from, to, trip.Itinerary, out.Highlight(trip.Fare.String()))
	return nil
}
