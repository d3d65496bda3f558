package app_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/fareroute/app"
	"github.com/katalvlaran/fareroute/app/mocks"
	"github.com/katalvlaran/fareroute/cheapest"
	"github.com/katalvlaran/fareroute/config"
	"github.com/katalvlaran/fareroute/roundtrip"
	"github.com/katalvlaran/fareroute/route"
)

func newApp(t *testing.T) (*app.App, *mocks.MockNetworkLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockNetworkLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	return app.New(loader, logger), loader, logger
}

// roundTripNetwork is the sample network plus a direct B→A connection.
func roundTripNetwork() *config.Network {
	n := config.Sample()
	n.Graph.Register("B", "A", 500, 20, false, 5)
	return n
}

func TestApp_Route(t *testing.T) {
	t.Run("cheapest route on the sample network", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("").Return(config.Sample(), nil)
		logger.EXPECT().Info("network loaded", gomock.Any()).Times(1)
		logger.EXPECT().Info("route found", gomock.Any()).Times(1)

		res, err := a.Route("", "A", "C")
		require.NoError(t, err)
		assert.Equal(t, route.Itinerary{"A", "C"}, res.Path)
		assert.True(t, decimal.RequireFromString("73.6").Equal(res.Fare))
	})

	t.Run("unreachable destination is not an error", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("net.yaml").Return(config.Sample(), nil)
		logger.EXPECT().Info("network loaded", gomock.Any()).Times(1)
		logger.EXPECT().Info("no route found", gomock.Any()).Times(1)

		res, err := a.Route("net.yaml", "C", "A")
		require.NoError(t, err)
		assert.False(t, res.Found())
	})

	t.Run("loader failure", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("missing.yaml").Return(nil, errors.New("config load error"))
		logger.EXPECT().Error(gomock.Any()).Times(1)

		_, err := a.Route("missing.yaml", "A", "C")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load network")
	})

	t.Run("invalid location", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("").Return(config.Sample(), nil)
		logger.EXPECT().Info("network loaded", gomock.Any()).Times(1)
		logger.EXPECT().Error(gomock.Any()).Times(1)

		_, err := a.Route("", "", "C")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "route search failed")
	})
}

func TestApp_RoundTrip(t *testing.T) {
	t.Run("no inbound path on the sample network", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("").Return(config.Sample(), nil)
		logger.EXPECT().Info("network loaded", gomock.Any()).Times(1)
		logger.EXPECT().Warn("round trip infeasible", gomock.Any()).Times(1)

		trip, err := a.RoundTrip("", "A", "B", 0)
		require.Error(t, err)
		assert.Nil(t, trip)
		assert.True(t, errors.Is(err, roundtrip.ErrNoInbound))
		assert.True(t, errors.Is(err, roundtrip.ErrRoundTripInfeasible))
	})

	t.Run("planned with the network's stop cap", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("").Return(roundTripNetwork(), nil)
		logger.EXPECT().Info("network loaded", gomock.Any()).Times(1)
		logger.EXPECT().Info("round trip planned", gomock.Any()).Times(1)

		trip, err := a.RoundTrip("", "A", "B", 0)
		require.NoError(t, err)
		assert.Equal(t, route.Itinerary{"A", "B", "A"}, trip.Itinerary)
		assert.True(t, decimal.NewFromInt(95).Equal(trip.Fare))
	})

	t.Run("explicit cap overrides the network", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("").Return(roundTripNetwork(), nil)
		logger.EXPECT().Info("network loaded", gomock.Any()).Times(1)
		logger.EXPECT().Warn("round trip infeasible", gomock.Any()).Times(1)

		_, err := a.RoundTrip("", "A", "B", 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, roundtrip.ErrTooManyStops))
	})

	t.Run("negative cap is rejected, not replaced", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("").Return(roundTripNetwork(), nil)
		logger.EXPECT().Info("network loaded", gomock.Any()).Times(1)
		logger.EXPECT().Error(gomock.Any()).Times(1)

		trip, err := a.RoundTrip("", "A", "B", -2)
		require.Error(t, err)
		assert.Nil(t, trip)
		assert.True(t, errors.Is(err, roundtrip.ErrBadMaxStops))
	})

	t.Run("search errors pass through", func(t *testing.T) {
		a, loader, logger := newApp(t)
		loader.EXPECT().Load("").Return(config.Sample(), nil)
		logger.EXPECT().Info("network loaded", gomock.Any()).Times(1)
		logger.EXPECT().Error(gomock.Any()).Times(1)

		_, err := a.RoundTrip("", "A", "", 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cheapest.ErrEmptyLocation))
	})
}
