// Package app wires network loading, fare search and round-trip planning
// behind the operations the CLI exposes.
package app

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"

	"github.com/katalvlaran/fareroute/cheapest"
	"github.com/katalvlaran/fareroute/config"
	"github.com/katalvlaran/fareroute/roundtrip"
)

// App is the application entry point for route queries.
type App struct {
	loader NetworkLoader
	logger Logger
}

// New creates an App.
func New(loader NetworkLoader, logger Logger) *App {
	return &App{loader: loader, logger: logger}
}

// Route loads the network at networkPath and returns the cheapest itinerary
// between from and to. An unreachable destination is a successful result
// whose Path is route.NoPath.
func (a *App) Route(networkPath, from, to string) (*cheapest.Result, error) {
	n, err := a.load(networkPath)
	if err != nil {
		return nil, err
	}

	res, err := cheapest.Search(n.Graph, from, to, cheapest.WithModel(n.Model))
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "route search failed"), "from", from)
		a.logger.Error(err)
		return nil, err
	}

	if !res.Found() {
		a.logger.Info("no route found", "from", from, "to", to, "settled", res.Settled)
		return res, nil
	}
	a.logger.Info("route found",
		"from", from,
		"to", to,
		"stops", res.Path.Stops(),
		"fare", res.Fare.String(),
		"settled", res.Settled,
	)
	return res, nil
}

// RoundTrip loads the network and plans a round trip between from and to.
// maxStops == 0 uses the network's configured cap; negative values are
// rejected by the planner.
//
// Infeasible trips are returned as the planner's own error so callers can
// match roundtrip.ErrRoundTripInfeasible with errors.Is.
func (a *App) RoundTrip(networkPath, from, to string, maxStops int) (*roundtrip.Trip, error) {
	n, err := a.load(networkPath)
	if err != nil {
		return nil, err
	}
	if maxStops == 0 {
		maxStops = n.MaxStops
	}

	trip, err := roundtrip.Plan(n.Graph, from, to, maxStops, cheapest.WithModel(n.Model))
	if err != nil {
		if !errors.Is(err, roundtrip.ErrRoundTripInfeasible) {
			a.logger.Error(err)
			return nil, err
		}
		a.logger.Warn("round trip infeasible",
			"from", from,
			"to", to,
			"max_stops", maxStops,
			"reason", err.Error(),
		)
		return nil, err
	}

	a.logger.Info("round trip planned",
		"from", from,
		"to", to,
		"stops", trip.Itinerary.Stops(),
		"fare", trip.Fare.String(),
	)
	return trip, nil
}

// load fetches the network and logs its shape.
func (a *App) load(path string) (*config.Network, error) {
	n, err := a.loader.Load(path)
	if err != nil {
		err = zerr.Wrap(err, "failed to load network")
		a.logger.Error(err)
		return nil, err
	}

	source := path
	if source == "" {
		source = "sample"
	}
	a.logger.Info("network loaded",
		"source", source,
		"connections", n.Graph.ConnectionCount(),
		"locations", n.Graph.LocationCount(),
		"fingerprint", fmt.Sprintf("%016x", n.Graph.Fingerprint()),
	)
	return n, nil
}
