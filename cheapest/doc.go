// Package cheapest finds the minimum-fare itinerary between two locations of
// a route.Graph whose edge costs are priced on demand by a pricing.Model.
//
// The search is Dijkstra's algorithm over exact decimal fares:
//
//  1. Every location in the graph starts unreached; start costs 0.
//  2. The frontier is seeded with (0, start).
//  3. Extract the cheapest frontier entry. Stop when it is end, or when the
//     frontier runs dry (no path).
//  4. For every connection leaving the extracted location, price it and relax
//     the destination if the candidate fare strictly improves on its label.
//     A destination already waiting in the frontier has its entry lowered in
//     place, so the frontier never yields a superseded fare.
//  5. Follow predecessor links back from end and reverse them.
//
// Determinism:
//
//	Frontier entries with equal fares pop in ascending location id order, and
//	connections are relaxed in registration order. Repeated searches over an
//	unchanged graph return identical itineraries.
//
// Complexity (L = locations, C = connections):
//
//   - Time:  O((L + C) log L). Each location is settled at most once and
//     the frontier holds at most one entry per location.
//   - Space: O(L) for labels and the frontier index.
//
// Results:
//
//   - A route.Itinerary with the cheapest traversal, [start] if start == end.
//   - route.NoPath when end is unreachable. This is a normal result, not an error.
//
// Errors (sentinel):
//
//	ErrNilGraph       – the graph pointer is nil.
//	ErrEmptyLocation  – start or end id is empty.
//
// Fares must be non-negative for the result to be optimal. The search does
// not check this: validate connections before registering them.
//
// Example:
//
//	it, err := cheapest.FindCheapestPath(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !it.Found() {
//	    fmt.Println("no route")
//	}
package cheapest
