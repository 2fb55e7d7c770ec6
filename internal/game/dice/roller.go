package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged inclusive-range draws.
// All draws are logged at debug level with their bounds and result.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs each draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Range returns a uniform integer in [min, max] inclusive.
// A degenerate range (max <= min) returns min.
//
// Postcondition: result logged; min <= result <= max, or result == min when max <= min.
func (r *Roller) Range(min, max int) int {
	result := Between(r.src, min, max)
	r.logger.Debug("dice range",
		zap.Int("min", min),
		zap.Int("max", max),
		zap.Int("result", result),
	)
	return result
}
