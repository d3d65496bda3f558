// File: graph.go
// Role: Connection registration and read-only queries over the adjacency mapping.
// Determinism:
//   - OutgoingFrom() preserves registration order per origin.
//   - Locations() returns ids sorted lex asc.
// Concurrency:
//   - Registration under the write lock, queries under the read lock.

package route

import "sort"

// RegisterConnection appends c to the outgoing list of c.Origin, creating the
// location entry if absent. Both endpoints join the location catalogue.
//
// Duplicate connections are kept; the search considers each of them.
// No validation is performed: call c.Validate first when the input is untrusted.
//
// Complexity: O(1) amortized.
func (g *Graph) RegisterConnection(c Connection) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.outgoing[c.Origin] = append(g.outgoing[c.Origin], c)
	g.locations[c.Origin] = struct{}{}
	g.locations[c.Destination] = struct{}{}
	g.connections++
}

// Register builds a Connection from its attributes and registers it.
func (g *Graph) Register(origin, destination string, distance float64, seatsRemaining int, peakHour bool, discountPercent int) {
	g.RegisterConnection(Connection{
		Origin:          origin,
		Destination:     destination,
		Distance:        distance,
		SeatsRemaining:  seatsRemaining,
		PeakHour:        peakHour,
		DiscountPercent: discountPercent,
	})
}

// OutgoingFrom returns a copy of the connections leaving loc in registration
// order. Locations that are only ever destinations, and unknown locations,
// yield an empty slice.
//
// Complexity: O(d) where d is the out-degree of loc.
func (g *Graph) OutgoingFrom(loc string) []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.outgoing[loc]
	out := make([]Connection, len(src))
	copy(out, src)

	return out
}

// Locations returns every origin and destination id, sorted ascending.
// Complexity: O(L log L).
func (g *Graph) Locations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.locations))
	for id := range g.locations {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// HasLocation reports whether loc appears as an origin or destination.
func (g *Graph) HasLocation(loc string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.locations[loc]

	return ok
}

// LocationCount returns the number of distinct locations.
func (g *Graph) LocationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.locations)
}

// ConnectionCount returns the number of registered connections, duplicates included.
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connections
}

// Connections returns all connections grouped by origin (origins sorted asc,
// registration order within an origin).
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connectionsLocked()
}

// connectionsLocked assumes the caller holds g.mu.
func (g *Graph) connectionsLocked() []Connection {
	origins := make([]string, 0, len(g.outgoing))
	for origin := range g.outgoing {
		origins = append(origins, origin)
	}
	sort.Strings(origins)

	out := make([]Connection, 0, g.connections)
	for _, origin := range origins {
		out = append(out, g.outgoing[origin]...)
	}

	return out
}
