// Package commands implements the CLI commands for fareroute.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fareroute/app"
)

// CLI represents the command line interface for fareroute.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fareroute",
		Short:         "Cheapest-fare routing over scheduled connections",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("network", "n", "", "Path to network file (default: built-in sample network)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRouteCmd())
	rootCmd.AddCommand(c.newRoundTripCmd())
	rootCmd.AddCommand(c.newDemoCmd())
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

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func networkPath(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("network")
}
