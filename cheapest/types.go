package cheapest

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fareroute/pricing"
	"github.com/katalvlaran/fareroute/route"
)

// Sentinel errors returned by Search and FindCheapestPath.
var (
	// ErrNilGraph indicates that a nil *route.Graph was passed.
	ErrNilGraph = errors.New("cheapest: graph is nil")

	// ErrEmptyLocation indicates an empty start or end location id.
	ErrEmptyLocation = errors.New("cheapest: location id is empty")
)

// Options configures a search.
//
// Model   – prices each relaxed connection. Default pricing.Default().
// OnSettle – called once per location when its fare becomes final,
//
//	in settle order. Default no-op.
type Options struct {
	Model    pricing.Model
	OnSettle func(loc string, fare decimal.Decimal)
}

// Option is a functional option for Search and FindCheapestPath.
type Option func(*Options)

// WithModel replaces the pricing model. A nil model is ignored.
func WithModel(m pricing.Model) Option {
	return func(o *Options) {
		if m != nil {
			o.Model = m
		}
	}
}

// WithOnSettle registers a hook observing each settled location.
// A nil hook is ignored.
func WithOnSettle(fn func(loc string, fare decimal.Decimal)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns the standard pricing model and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Model:    pricing.Default(),
		OnSettle: func(string, decimal.Decimal) {},
	}
}

// Result is the outcome of one search.
type Result struct {
	// Path is the cheapest itinerary, or route.NoPath.
	Path route.Itinerary

	// Fare is the total price of Path; zero when Path is NoPath.
	Fare decimal.Decimal

	// Settled counts locations whose fare was finalized during the search.
	Settled int
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.Path.Found() }
