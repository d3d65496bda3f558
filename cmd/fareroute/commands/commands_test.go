package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fareroute/app"
	"github.com/katalvlaran/fareroute/cmd/fareroute/commands"
	"github.com/katalvlaran/fareroute/config"
	"github.com/katalvlaran/fareroute/internal/build"
	"github.com/katalvlaran/fareroute/logger"
	"github.com/katalvlaran/fareroute/roundtrip"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	a := app.New(config.FileLoader{}, logger.NewWithWriter(io.Discard))
	cli := commands.New(a)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

const roundTripNetwork = `
connections:
  - {from: A, to: B, distance: 500, seats: 20, peak: false, discount: 5}
  - {from: B, to: C, distance: 300, seats: 5, peak: true, discount: 3}
  - {from: A, to: C, distance: 800, seats: 15, peak: false, discount: 8}
  - {from: B, to: A, distance: 500, seats: 20, peak: false, discount: 5}
`

func writeNetwork(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRouteCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		goldenName string
	}{
		{
			name:       "direct connection is cheapest",
			args:       []string{"route", "A", "C"},
			goldenName: "route_direct",
		},
		{
			name:       "single connection",
			args:       []string{"route", "B", "C"},
			goldenName: "route_single",
		},
		{
			name:       "unreachable destination",
			args:       []string{"route", "C", "A"},
			goldenName: "route_unreachable",
		},
		{
			name:       "same start and end",
			args:       []string{"route", "B", "B"},
			goldenName: "route_same",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(out))
		})
	}
}

func TestRouteCommand_Args(t *testing.T) {
	_, err := execute(t, "route", "A")
	require.Error(t, err)
}

func TestRouteCommand_MissingNetwork(t *testing.T) {
	_, err := execute(t, "route", "A", "C", "--network", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load network")
}

func TestRoundTripCommand_Infeasible(t *testing.T) {
	out, err := execute(t, "roundtrip", "A", "B")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "roundtrip_no_inbound", []byte(out))
}

func TestRoundTripCommand_Planned(t *testing.T) {
	path := writeNetwork(t, roundTripNetwork)

	out, err := execute(t, "-n", path, "roundtrip", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "✓ Round-trip route from A to B is A -> B -> A (fare 95)\n", out)
}

func TestRoundTripCommand_MaxStops(t *testing.T) {
	path := writeNetwork(t, roundTripNetwork)

	out, err := execute(t, "-n", path, "roundtrip", "A", "B", "--max-stops", "1")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "roundtrip_stop_limit", []byte(out))
}

func TestRoundTripCommand_NegativeMaxStops(t *testing.T) {
	path := writeNetwork(t, roundTripNetwork)

	out, err := execute(t, "-n", path, "roundtrip", "A", "B", "--max-stops=-2")
	require.Error(t, err)
	assert.ErrorIs(t, err, roundtrip.ErrBadMaxStops)
	assert.Empty(t, out)
}

func TestRoundTripCommand_EmptyLocation(t *testing.T) {
	_, err := execute(t, "roundtrip", "A", "")
	require.Error(t, err)
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "demo", []byte(out))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, build.Version+"\n", out)
}
