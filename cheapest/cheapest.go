package cheapest

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fareroute/route"
)

// FindCheapestPath returns the minimum-fare itinerary from start to end.
//
// Returns:
//
//   - the cheapest itinerary; [start] when start == end.
//   - route.NoPath (nil, nil error) when end cannot be reached.
//   - ErrNilGraph / ErrEmptyLocation for invalid arguments.
//
// Locations unknown to the graph are treated as isolated: the search from an
// unknown start reaches only itself.
func FindCheapestPath(g *route.Graph, start, end string, opts ...Option) (route.Itinerary, error) {
	res, err := Search(g, start, end, opts...)
	if err != nil {
		return route.NoPath, err
	}

	return res.Path, nil
}

// Search runs the cheapest-path search and returns the itinerary together
// with its total fare and the number of settled locations.
//
// Preconditions and validation (in order):
//  1. start and end must be non-empty (ErrEmptyLocation).
//  2. g must be non-nil (ErrNilGraph).
//
// Complexity: O((L + C) log L) time, O(L) space.
func Search(g *route.Graph, start, end string, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate arguments
	if start == "" || end == "" {
		return nil, ErrEmptyLocation
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Prepare per-search state; nothing here is shared with other searches.
	locations := g.Locations()
	s := &searcher{
		g:        g,
		options:  cfg,
		end:      end,
		labels:   make(map[string]*label, len(locations)+2),
		frontier: newFrontier(len(locations) + 1),
	}

	// 4) Initialize and run
	s.init(locations, start)
	s.run()

	// 5) Assemble the result
	res := &Result{Path: s.reconstruct(start), Settled: s.settled}
	if res.Path.Found() {
		res.Fare = s.labels[end].fare
	}

	return res, nil
}

// label is the per-location search record.
type label struct {
	fare    decimal.Decimal // best fare found so far; meaningful only if reached
	prev    string          // predecessor on the best path; "" for start
	reached bool            // false means +∞
	settled bool            // fare is final
}

// searcher holds the mutable state of a single search.
type searcher struct {
	g        *route.Graph      // read-only during the search
	options  Options           // pricing model and hooks
	end      string            // destination location id
	labels   map[string]*label // location id → label
	frontier *frontier         // queued locations by fare
	settled  int               // number of settled locations
}

// init gives every graph location an unreached label, then reaches start at
// fare zero and queues it. start and end get labels even when absent from
// the graph.
func (s *searcher) init(locations []string, start string) {
	for _, loc := range locations {
		s.labels[loc] = &label{}
	}
	if _, ok := s.labels[s.end]; !ok {
		s.labels[s.end] = &label{}
	}

	s.labels[start] = &label{fare: decimal.Zero, reached: true}
	s.frontier.upsert(start, decimal.Zero)
}

// run is the main loop. It terminates when end is settled or the frontier
// runs dry.
func (s *searcher) run() {
	var e *frontierEntry
	var cur *label
	for s.frontier.Len() > 0 {
		// 1) Pop the cheapest queued location; its fare is now final.
		e = s.frontier.popMin()
		cur = s.labels[e.id]
		cur.settled = true
		s.settled++
		s.options.OnSettle(e.id, cur.fare)

		// 2) Reaching end finishes the search; the rest of the frontier cannot improve it.
		if e.id == s.end {
			return
		}

		// 3) Relax every connection leaving the settled location.
		s.relax(e.id, cur.fare)
	}
}

// relax prices each connection leaving from and improves the labels of
// destinations whose candidate fare is strictly lower than their current one.
func (s *searcher) relax(from string, fare decimal.Decimal) {
	var next *label
	var candidate decimal.Decimal
	for _, c := range s.g.OutgoingFrom(from) {
		next = s.labels[c.Destination]
		if next == nil {
			// registered after Locations() was read; treat as unreached.
			next = &label{}
			s.labels[c.Destination] = next
		}

		// Settled fares are final; never reopen them.
		if next.settled {
			continue
		}

		candidate = fare.Add(s.options.Model.Price(c))

		// Strict improvement only: equal fares keep the earlier predecessor.
		if next.reached && candidate.GreaterThanOrEqual(next.fare) {
			continue
		}

		next.fare = candidate
		next.prev = from
		next.reached = true

		// Queue the destination, or lower its existing entry in place.
		s.frontier.upsert(c.Destination, candidate)
	}
}

// reconstruct walks predecessor links from end back to start and returns
// them in travel order, or route.NoPath if end was never reached.
func (s *searcher) reconstruct(start string) route.Itinerary {
	lb := s.labels[s.end]
	if lb == nil || !lb.reached {
		return route.NoPath
	}

	path := route.Itinerary{s.end}
	for at := s.end; at != start; {
		at = s.labels[at].prev
		path = append(path, at)
	}
	slices.Reverse(path)

	return path
}
