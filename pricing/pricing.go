// Package pricing turns a route.Connection into a fare.
//
// A Model is a pure function of the connection's own attributes. The cheapest
// path search asks the Model for each edge it relaxes, so any policy can be
// swapped in without touching the search.
//
// Dynamic applies the standard fare rules in this order:
//
//	fare = distance × BaseRate
//	fare ×= PeakMultiplier            if the connection is in a peak window
//	fare ×= ScarcityMultiplier        if seats remaining < ScarcityThreshold
//	fare -= fare × discount / 100     if discount > 0
//
// All arithmetic is exact decimal (github.com/shopspring/decimal), so equal
// fares compare equal and tie-breaking in the search is reproducible.
//
// The search requires non-negative fares. With multipliers ≥ 1 and discount
// ≤ 100 the rules above never go negative; callers who accept larger
// discounts must filter them before registration.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fareroute/route"
)

// ErrBadPolicy is returned by Policy.Validate for a policy that could price a
// valid connection below zero or cheaper at peak than off-peak.
var ErrBadPolicy = errors.New("pricing: invalid policy")

// Model prices a single connection.
type Model interface {
	Price(c route.Connection) decimal.Decimal
}

// ModelFunc adapts an ordinary function to Model.
type ModelFunc func(c route.Connection) decimal.Decimal

// Price calls f(c).
func (f ModelFunc) Price(c route.Connection) decimal.Decimal { return f(c) }

// Policy holds the tunable constants of the Dynamic model.
type Policy struct {
	// BaseRate converts distance into a base fare.
	BaseRate decimal.Decimal

	// PeakMultiplier scales fares for peak-hour departures.
	PeakMultiplier decimal.Decimal

	// ScarcityMultiplier scales fares when few seats remain.
	ScarcityMultiplier decimal.Decimal

	// ScarcityThreshold is the seat count below which ScarcityMultiplier applies.
	ScarcityThreshold int
}

// DefaultPolicy returns the standard fare constants:
// 0.1 per unit distance, ×1.4 at peak, ×1.2 under 10 seats.
func DefaultPolicy() Policy {
	return Policy{
		BaseRate:           decimal.RequireFromString("0.1"),
		PeakMultiplier:     decimal.RequireFromString("1.4"),
		ScarcityMultiplier: decimal.RequireFromString("1.2"),
		ScarcityThreshold:  10,
	}
}

// Validate rejects a negative base rate, multipliers below 1 and a negative
// scarcity threshold.
func (p Policy) Validate() error {
	if p.BaseRate.IsNegative() {
		return fmt.Errorf("%w: base rate %s < 0", ErrBadPolicy, p.BaseRate)
	}
	if p.PeakMultiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: peak multiplier %s < 1", ErrBadPolicy, p.PeakMultiplier)
	}
	if p.ScarcityMultiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: scarcity multiplier %s < 1", ErrBadPolicy, p.ScarcityMultiplier)
	}
	if p.ScarcityThreshold < 0 {
		return fmt.Errorf("%w: scarcity threshold %d < 0", ErrBadPolicy, p.ScarcityThreshold)
	}

	return nil
}

// dynamic is the Model built from a Policy.
type dynamic struct {
	policy Policy
}

// Dynamic returns a Model applying p's fare rules.
func Dynamic(p Policy) Model {
	return dynamic{policy: p}
}

// Default returns Dynamic(DefaultPolicy()).
func Default() Model {
	return Dynamic(DefaultPolicy())
}

// Price applies the fare rules to c. See the package documentation.
func (d dynamic) Price(c route.Connection) decimal.Decimal {
	fare := decimal.NewFromFloat(c.Distance).Mul(d.policy.BaseRate)
	if c.PeakHour {
		fare = fare.Mul(d.policy.PeakMultiplier)
	}
	if c.SeatsRemaining < d.policy.ScarcityThreshold {
		fare = fare.Mul(d.policy.ScarcityMultiplier)
	}
	if c.DiscountPercent > 0 {
		// Shift(-2) divides by 100 without rounding.
		fare = fare.Sub(fare.Mul(decimal.NewFromInt(int64(c.DiscountPercent))).Shift(-2))
	}

	return fare
}
