// Package dice provides the randomness capability injected into every
// stochastic rules calculation.
package dice

// Source is the randomness provider behind all rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Between draws a uniform integer in [min, max] inclusive from src.
// When max <= min the draw collapses to min without consuming randomness.
//
// Precondition: src must be non-nil.
// Postcondition: min <= result <= max, or result == min when max <= min.
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}
