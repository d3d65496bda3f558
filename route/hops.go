package route

// hopItem pairs a location with the number of locations visited to reach it.
type hopItem struct {
	id    string
	stops int
}

// MinStops runs a breadth-first search from → to that ignores price and
// returns the fewest locations any itinerary between them must visit,
// endpoints included. ok is false when to is unreachable.
//
// MinStops(x, x) is (1, true) for any x.
//
// Complexity: O(L + C).
func (g *Graph) MinStops(from, to string) (stops int, ok bool) {
	if from == to {
		return 1, true
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := map[string]bool{from: true}
	queue := []hopItem{{id: from, stops: 1}}
	var item hopItem
	for len(queue) > 0 {
		item = queue[0]
		queue = queue[1:]

		for _, c := range g.outgoing[item.id] {
			if visited[c.Destination] {
				continue
			}
			if c.Destination == to {
				return item.stops + 1, true
			}
			visited[c.Destination] = true
			queue = append(queue, hopItem{id: c.Destination, stops: item.stops + 1})
		}
	}

	return 0, false
}
