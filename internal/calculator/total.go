// Package calculator holds the pure derivations of the billing core:
// line totals, item filtering, and dashboard aggregation. Nothing in
// this package mutates state or touches a store.
package calculator

import "math"

// Total computes a line item's total from its base amount and
// percentage rate: amount + amount*(rate/100).
//
// Non-finite inputs (NaN, ±Inf) are treated as zero, matching the
// form semantics where a blank or garbage field contributes nothing.
func Total(amount, rate float64) float64 {
	a := sanitize(amount)
	r := sanitize(rate)
	return a + a*(r/100)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
