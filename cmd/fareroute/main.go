// Package main is the entry point for the fareroute CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/fareroute/app"
	"github.com/katalvlaran/fareroute/cmd/fareroute/commands"
	"github.com/katalvlaran/fareroute/config"
	"github.com/katalvlaran/fareroute/logger"
)

func main() {
	if err := run(); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	a := app.New(config.FileLoader{}, logger.New())
	return commands.New(a).Execute(context.Background())
}
