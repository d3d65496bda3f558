package cheapest_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fareroute/cheapest"
	"github.com/katalvlaran/fareroute/route"
)

// TestConcurrentReadOnlySearches runs many searches over one shared graph.
// Each search owns its state, so every result must match the sequential one.
func TestConcurrentReadOnlySearches(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(11)), 15, 60)
	locs := g.Locations()

	want := make(map[[2]string]route.Itinerary, len(locs)*len(locs))
	for _, from := range locs {
		for _, to := range locs {
			it, err := cheapest.FindCheapestPath(g, from, to)
			require.NoError(t, err)
			want[[2]string{from, to}] = it
		}
	}
	fingerprint := g.Fingerprint()

	got := make([]route.Itinerary, len(locs)*len(locs))
	var eg errgroup.Group
	for i, from := range locs {
		for j, to := range locs {
			slot := i*len(locs) + j
			eg.Go(func() error {
				it, err := cheapest.FindCheapestPath(g, from, to)
				got[slot] = it
				return err
			})
		}
	}
	require.NoError(t, eg.Wait())

	for i, from := range locs {
		for j, to := range locs {
			require.Equal(t, want[[2]string{from, to}], got[i*len(locs)+j], "%s→%s", from, to)
		}
	}
	require.Equal(t, fingerprint, g.Fingerprint())
}
