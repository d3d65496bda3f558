// Package fareroute finds the cheapest itinerary through a network of
// scheduled connections whose fares depend on distance, peak hours, seat
// scarcity and per-connection discounts, and plans round trips on top of it.
//
// The module is organized into small packages, leaf first:
//
//	route/    : Connection, Itinerary and the thread-safe route Graph
//	pricing/  : dynamic fare Model with exact decimal arithmetic
//	cheapest/ : Dijkstra search over priced connections (indexed min-heap)
//	roundtrip/: outbound + inbound legs under a per-leg stop limit
//	config/   : YAML network files and the built-in sample network
//	logger/   : slog-backed structured logging
//	app/      : loads a network and runs queries for the CLI
//	internal/ui: terminal rendering of results
//	cmd/fareroute: cobra command line: route, roundtrip, demo, version
//
// Quick example (the built-in sample network):
//
//	A ──47.5──▶ B ──48.888──▶ C
//	 ╲                        ▲
//	  ╰──────────73.6─────────╯
//
// The cheapest route from A to C is the direct connection (73.6), and no
// round trip between A and B exists because nothing leads back to A.
//
//	fareroute route A C
//	fareroute roundtrip A B --max-stops 3
package fareroute
