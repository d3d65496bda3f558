// Package config loads fare networks from YAML files.
package config

import (
	"math"
	"os"

	"github.com/shopspring/decimal"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fareroute/pricing"
	"github.com/katalvlaran/fareroute/roundtrip"
	"github.com/katalvlaran/fareroute/route"
)

// supportedVersion is the only network file version understood by Parse.
const supportedVersion = "1"

// Network is a loaded, validated fare network.
type Network struct {
	Graph    *route.Graph
	Policy   pricing.Policy
	Model    pricing.Model
	MaxStops int
}

// FileLoader loads networks from disk. An empty path yields Sample().
type FileLoader struct{}

// Load implements the app's network loader.
func (FileLoader) Load(path string) (*Network, error) {
	if path == "" {
		return Sample(), nil
	}
	return Load(path)
}

// Load reads and parses the network file at path.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read network file"), "path", path)
	}

	n, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return n, nil
}

// Parse decodes a network document, applies defaults and validates every
// connection before registering it.
func Parse(data []byte) (*Network, error) {
	var file NetworkFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse network file")
	}

	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(zerr.New("unsupported network file version"), "version", file.Version)
	}

	policy, err := buildPolicy(file.Pricing)
	if err != nil {
		return nil, err
	}
	if err = policy.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid pricing policy")
	}

	maxStops := roundtrip.DefaultMaxStops
	if file.RoundTrip.MaxStops != nil {
		maxStops = *file.RoundTrip.MaxStops
	}
	if maxStops < 1 {
		return nil, zerr.With(zerr.New("roundTrip.maxStops must be at least 1"), "max_stops", maxStops)
	}

	g := route.NewGraph()
	for i, dto := range file.Connections {
		c := route.Connection{
			Origin:          dto.From,
			Destination:     dto.To,
			Distance:        dto.Distance,
			SeatsRemaining:  dto.Seats,
			PeakHour:        dto.Peak,
			DiscountPercent: dto.Discount,
		}
		if err = c.Validate(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid connection"), "index", i)
		}
		g.RegisterConnection(c)
	}

	return &Network{
		Graph:    g,
		Policy:   policy,
		Model:    pricing.Dynamic(policy),
		MaxStops: maxStops,
	}, nil
}

// buildPolicy overlays the document's pricing fields on DefaultPolicy.
// NaN and infinite values are rejected before they reach decimal conversion.
func buildPolicy(dto PricingDTO) (pricing.Policy, error) {
	p := pricing.DefaultPolicy()
	fields := []struct {
		name  string
		value *float64
		dst   *decimal.Decimal
	}{
		{"pricing.baseRate", dto.BaseRate, &p.BaseRate},
		{"pricing.peakMultiplier", dto.PeakMultiplier, &p.PeakMultiplier},
		{"pricing.scarcityMultiplier", dto.ScarcityMultiplier, &p.ScarcityMultiplier},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if math.IsNaN(*f.value) || math.IsInf(*f.value, 0) {
			return pricing.Policy{}, zerr.With(zerr.New("pricing value must be a finite number"), "field", f.name)
		}
		*f.dst = decimal.NewFromFloat(*f.value)
	}
	if dto.ScarcityThreshold != nil {
		p.ScarcityThreshold = *dto.ScarcityThreshold
	}
	return p, nil
}

// Sample returns the built-in demonstration network:
// A→B (500, 20 seats, off-peak, 5%), B→C (300, 5 seats, peak, 3%),
// A→C (800, 15 seats, off-peak, 8%).
func Sample() *Network {
	g := route.NewGraph()
	g.Register("A", "B", 500, 20, false, 5)
	g.Register("B", "C", 300, 5, true, 3)
	g.Register("A", "C", 800, 15, false, 8)

	policy := pricing.DefaultPolicy()
	return &Network{
		Graph:    g,
		Policy:   policy,
		Model:    pricing.Dynamic(policy),
		MaxStops: roundtrip.DefaultMaxStops,
	}
}
