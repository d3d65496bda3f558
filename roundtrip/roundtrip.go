// Package roundtrip composes two cheapest-path searches into a round trip
// whose legs each visit at most a fixed number of locations.
//
// A Trip is the outbound itinerary start → … → end followed by the inbound
// itinerary end → … → start, with the shared turnaround location written once.
//
// The stop cap counts locations visited per leg, endpoints included.
// DefaultMaxStops (3) allows at most one layover each way. The cap applies to
// the cheapest leg: the planner never trades fare for fewer stops.
package roundtrip

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fareroute/cheapest"
	"github.com/katalvlaran/fareroute/route"
)

// DefaultMaxStops allows one layover per leg: origin, layover, destination.
const DefaultMaxStops = 3

// Sentinel errors. Every infeasibility error wraps ErrRoundTripInfeasible.
var (
	// ErrRoundTripInfeasible indicates that no round trip satisfies the stop cap.
	ErrRoundTripInfeasible = errors.New("roundtrip: no feasible round trip")

	// ErrNoOutbound indicates that end is unreachable from start.
	ErrNoOutbound = fmt.Errorf("%w: no outbound path", ErrRoundTripInfeasible)

	// ErrNoInbound indicates that start is unreachable from end.
	ErrNoInbound = fmt.Errorf("%w: no inbound path", ErrRoundTripInfeasible)

	// ErrTooManyStops indicates that a cheapest leg visits more locations than allowed.
	ErrTooManyStops = fmt.Errorf("%w: leg exceeds stop limit", ErrRoundTripInfeasible)

	// ErrBadMaxStops indicates a stop cap below 1.
	ErrBadMaxStops = errors.New("roundtrip: max stops must be at least 1")
)

// StopLimitError describes a cheapest leg that visits more locations than
// the cap allows. It unwraps to ErrTooManyStops.
type StopLimitError struct {
	// Leg is "outbound" or "inbound".
	Leg string

	// Path is the cheapest itinerary of the leg.
	Path route.Itinerary

	// Limit is the cap that was exceeded.
	Limit int

	// Fewest is the fewest locations any itinerary between the leg's
	// endpoints visits, ignoring fares.
	Fewest int
}

func (e *StopLimitError) Error() string {
	return fmt.Sprintf("%v: %s leg %s visits %d locations (limit %d, fewest possible %d)",
		ErrTooManyStops, e.Leg, e.Path, e.Path.Stops(), e.Limit, e.Fewest)
}

func (e *StopLimitError) Unwrap() error { return ErrTooManyStops }

// Trip is a planned round trip.
type Trip struct {
	// Outbound is the cheapest start → end search result.
	Outbound *cheapest.Result

	// Inbound is the cheapest end → start search result.
	Inbound *cheapest.Result

	// Itinerary is Outbound.Path followed by Inbound.Path without its first location.
	Itinerary route.Itinerary

	// Fare is the sum of both leg fares.
	Fare decimal.Decimal
}

// PlanRoundTrip returns the combined itinerary start → … → end → … → start.
// It fails with an error wrapping ErrRoundTripInfeasible when either leg has
// no path or visits more than maxStops locations.
func PlanRoundTrip(g *route.Graph, start, end string, maxStops int, opts ...cheapest.Option) (route.Itinerary, error) {
	trip, err := Plan(g, start, end, maxStops, opts...)
	if err != nil {
		return route.NoPath, err
	}

	return trip.Itinerary, nil
}

// Plan runs the outbound and inbound searches, enforces the stop cap and
// composes the trip. Search errors (nil graph, empty ids) are returned as is.
func Plan(g *route.Graph, start, end string, maxStops int, opts ...cheapest.Option) (*Trip, error) {
	if maxStops < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxStops, maxStops)
	}

	// 1) Cheapest outbound and inbound legs.
	out, err := cheapest.Search(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	in, err := cheapest.Search(g, end, start, opts...)
	if err != nil {
		return nil, err
	}

	// 2) Both legs must exist and respect the cap.
	if !out.Found() {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoOutbound, start, end)
	}
	if !in.Found() {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoInbound, end, start)
	}
	if err = checkStops(g, "outbound", out.Path, maxStops); err != nil {
		return nil, err
	}
	if err = checkStops(g, "inbound", in.Path, maxStops); err != nil {
		return nil, err
	}

	// 3) Compose; the turnaround location appears once.
	it := make(route.Itinerary, 0, len(out.Path)+len(in.Path)-1)
	it = append(it, out.Path...)
	it = append(it, in.Path[1:]...)

	return &Trip{
		Outbound:  out,
		Inbound:   in,
		Itinerary: it,
		Fare:      out.Fare.Add(in.Fare),
	}, nil
}

// checkStops reports a *StopLimitError for a leg over the cap, naming the
// fewest stops any itinerary between the same endpoints would need.
func checkStops(g *route.Graph, leg string, path route.Itinerary, maxStops int) error {
	if path.Stops() <= maxStops {
		return nil
	}
	fewest, _ := g.MinStops(path.Origin(), path.Destination())

	return &StopLimitError{Leg: leg, Path: path, Limit: maxStops, Fewest: fewest}
}
