package route

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
)

// Sentinel errors reported by Connection.Validate.
var (
	// ErrEmptyLocation indicates an empty origin or destination id.
	ErrEmptyLocation = errors.New("route: location id is empty")

	// ErrNegativeDistance indicates a connection with distance < 0.
	ErrNegativeDistance = errors.New("route: distance must be non-negative")

	// ErrBadDistance indicates a distance that is NaN or infinite.
	ErrBadDistance = errors.New("route: distance must be a finite number")

	// ErrNegativeSeats indicates a connection with a negative seat count.
	ErrNegativeSeats = errors.New("route: seats remaining must be non-negative")

	// ErrBadDiscount indicates a discount outside the 0..100 percent range.
	ErrBadDiscount = errors.New("route: discount percent must be within 0..100")
)

// Connection is one scheduled, directed hop between two locations.
type Connection struct {
	// Origin is the departure location id.
	Origin string

	// Destination is the arrival location id.
	Destination string

	// Distance is the hop length; the price model scales it into a base fare.
	Distance float64

	// SeatsRemaining is the unsold capacity on the hop.
	SeatsRemaining int

	// PeakHour marks a departure in a peak window.
	PeakHour bool

	// DiscountPercent is a percentage taken off the computed fare.
	DiscountPercent int
}

// Validate reports the first attribute that would make the connection unsafe
// to price: empty ids, a non-finite or negative distance, negative seats, or a
// discount outside 0..100.
// A discount above 100 could drive the fare negative and break the
// non-negative cost assumption of the cheapest-path search.
func (c Connection) Validate() error {
	if c.Origin == "" || c.Destination == "" {
		return ErrEmptyLocation
	}
	if math.IsNaN(c.Distance) || math.IsInf(c.Distance, 0) {
		return fmt.Errorf("%w: %s→%s distance=%v", ErrBadDistance, c.Origin, c.Destination, c.Distance)
	}
	if c.Distance < 0 {
		return fmt.Errorf("%w: %s→%s distance=%v", ErrNegativeDistance, c.Origin, c.Destination, c.Distance)
	}
	if c.SeatsRemaining < 0 {
		return fmt.Errorf("%w: %s→%s seats=%d", ErrNegativeSeats, c.Origin, c.Destination, c.SeatsRemaining)
	}
	if c.DiscountPercent < 0 || c.DiscountPercent > 100 {
		return fmt.Errorf("%w: %s→%s discount=%d", ErrBadDiscount, c.Origin, c.Destination, c.DiscountPercent)
	}

	return nil
}

// String renders the connection as "A→B".
func (c Connection) String() string {
	return c.Origin + "→" + c.Destination
}

// Itinerary is an ordered sequence of location ids describing a traversal.
// The nil Itinerary (NoPath) means no traversal exists.
type Itinerary []string

// NoPath is the "no path found" sentinel. Compare with Found, not ==.
var NoPath Itinerary

// itinerarySeparator joins locations in String.
const itinerarySeparator = " -> "

// Found reports whether the itinerary holds at least one location.
func (it Itinerary) Found() bool { return len(it) > 0 }

// Stops returns the number of locations visited, endpoints included.
func (it Itinerary) Stops() int { return len(it) }

// Origin returns the first location, or "" for NoPath.
func (it Itinerary) Origin() string {
	if len(it) == 0 {
		return ""
	}

	return it[0]
}

// Destination returns the last location, or "" for NoPath.
func (it Itinerary) Destination() string {
	if len(it) == 0 {
		return ""
	}

	return it[len(it)-1]
}

// String renders the itinerary as "A -> B -> C".
func (it Itinerary) String() string {
	return strings.Join(it, itinerarySeparator)
}

// Graph is the adjacency mapping from origin location to outgoing connections.
//
// locations records every id seen as an origin or a destination, so
// destination-only locations are still valid search nodes.
// mu guards both maps.
type Graph struct {
	mu sync.RWMutex

	// outgoing[origin] = connections in registration order
	outgoing map[string][]Connection

	// locations is the set of every origin and destination id.
	locations map[string]struct{}

	// connections counts registered connections, duplicates included.
	connections int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		outgoing:  make(map[string][]Connection),
		locations: make(map[string]struct{}),
	}
}
