// Package testutil provides test helpers for deterministic replay of rules
// calculations.
package testutil

import "testing"

// Draw records one inclusive-range request made against a ScriptedRoller.
type Draw struct {
	Min, Max int
	Result   int
}

// ScriptedRoller returns queued results in order. It mirrors dice.Roller in
// collapsing a degenerate range (max <= min) to min without consuming a
// queued result.
type ScriptedRoller struct {
	t       testing.TB
	results []int
	Draws   []Draw
}

// NewScriptedRoller returns a roller that yields results in order.
//
// Precondition: t must be non-nil.
// Postcondition: the test fails if a draw is requested after the queue is
// empty or a queued value falls outside the requested range.
func NewScriptedRoller(t testing.TB, results ...int) *ScriptedRoller {
	return &ScriptedRoller{t: t, results: results}
}

// Range pops the next queued result.
func (r *ScriptedRoller) Range(min, max int) int {
	r.t.Helper()
	if max <= min {
		r.Draws = append(r.Draws, Draw{Min: min, Max: max, Result: min})
		return min
	}
	if len(r.results) == 0 {
		r.t.Fatalf("ScriptedRoller: unexpected draw in [%d, %d] after queue was exhausted", min, max)
		return min
	}
	v := r.results[0]
	r.results = r.results[1:]
	if v < min || v > max {
		r.t.Fatalf("ScriptedRoller: queued %d outside requested range [%d, %d]", v, min, max)
	}
	r.Draws = append(r.Draws, Draw{Min: min, Max: max, Result: v})
	return v
}

// Remaining returns the number of queued results not yet consumed.
func (r *ScriptedRoller) Remaining() int {
	return len(r.results)
}
