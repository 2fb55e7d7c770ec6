// Package travel prices fast travel from the time a trip takes on land and
// water and the way the traveller chooses to make it.
package travel

import (
	"errors"
	"fmt"
	"math"
)

const (
	minutesPerDay = 1440

	innCostPerDay  = 5
	minInnCost     = 5
	shipCostPerDay = 25
	minShipCost    = 25

	// DefaultCautiousMultiplier is how many times longer a cautious trip takes.
	DefaultCautiousMultiplier = 2
	// DefaultShipMultiplier scales reckless water time to the time a ship needs.
	DefaultShipMultiplier = 0.3125
)

// TripParameters describes one journey. Times are for the selected speed
// mode.
type TripParameters struct {
	LandMinutes  float64
	WaterMinutes float64
	// Cautious selects cautious travel; otherwise the trip is reckless.
	Cautious bool
	// SleepAtInn selects inns over camping out.
	SleepAtInn bool
	// OnFoot selects foot or horse; otherwise a ship carries the party over
	// water.
	OnFoot bool
}

// Multipliers holds the tunable speed constants.
type Multipliers struct {
	Cautious int
	Ship     float64
}

// DefaultMultipliers returns the classic speed constants.
func DefaultMultipliers() Multipliers {
	return Multipliers{Cautious: DefaultCautiousMultiplier, Ship: DefaultShipMultiplier}
}

// Validate reports invalid multipliers.
func (m Multipliers) Validate() error {
	var errs []error
	if m.Cautious < 1 {
		errs = append(errs, fmt.Errorf("cautious multiplier must be >= 1, got %d", m.Cautious))
	}
	if !(m.Ship > 0) || math.IsInf(m.Ship, 0) {
		errs = append(errs, fmt.Errorf("ship multiplier must be a positive number, got %v", m.Ship))
	}
	return errors.Join(errs...)
}

// Quote breaks a trip's price into its parts.
type Quote struct {
	// Inn is the lodging cost before any reckless discount.
	Inn int
	// RecklessDiscount is subtracted from Inn for reckless trips.
	RecklessDiscount int
	Ship             int
	Total            int
}

// Estimator prices trips with fixed multipliers. It holds no mutable state
// and is safe for concurrent use.
type Estimator struct {
	m Multipliers
}

// NewEstimator returns an Estimator using m.
//
// Postcondition: Returns an error iff m fails Validate.
func NewEstimator(m Multipliers) (*Estimator, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("travel multipliers: %w", err)
	}
	return &Estimator{m: m}, nil
}

// Multipliers returns the constants e prices with.
func (e *Estimator) Multipliers() Multipliers { return e.m }

// Quote prices p.
//
// Postcondition: every field is >= 0 and Total == Inn - RecklessDiscount + Ship.
func (e *Estimator) Quote(p TripParameters) Quote {
	cautiousMod := float64(e.m.Cautious)
	landCautious, landReckless := p.LandMinutes, p.LandMinutes
	waterCautious, waterReckless := p.WaterMinutes, p.WaterMinutes
	if p.Cautious {
		landReckless /= cautiousMod
		waterReckless /= cautiousMod
	} else {
		landCautious *= cautiousMod
		waterCautious *= cautiousMod
	}

	landDaysCautious := toDays(landCautious)
	waterDaysCautious := toDays(waterCautious)
	totalDaysCautious := landDaysCautious + waterDaysCautious
	totalDaysReckless := toDays(landReckless) + toDays(waterReckless)

	var q Quote
	crossesWater := p.WaterMinutes > 0
	switch {
	case (!crossesWater || !p.OnFoot) && p.SleepAtInn && p.LandMinutes > 0:
		q.Inn = max(minInnCost, landDaysCautious*innCostPerDay)
	case crossesWater && p.SleepAtInn && p.OnFoot:
		shipDays := roundDays(waterReckless * e.m.Ship)
		q.Inn = max(minInnCost, (totalDaysCautious-shipDays)*innCostPerDay)
	}

	if !p.Cautious && p.SleepAtInn {
		q.RecklessDiscount = min(q.Inn, (totalDaysCautious-totalDaysReckless)*innCostPerDay)
	}

	if !p.OnFoot && crossesWater {
		q.Ship = max(minShipCost, waterDaysCautious*shipCostPerDay)
	}

	q.Total = q.Inn - q.RecklessDiscount + q.Ship
	return q
}

// CalculateTripCost returns the total gold cost of p.
func (e *Estimator) CalculateTripCost(p TripParameters) int {
	return e.Quote(p).Total
}

// CalculateTripCost prices a trip with explicit multipliers. It is the
// standalone form of Estimator.CalculateTripCost.
//
// Precondition: cautiousMod >= 1; shipMod > 0.
func CalculateTripCost(landMinutes, waterMinutes float64, cautious, sleepAtInn, onFoot bool, cautiousMod int, shipMod float64) int {
	e := Estimator{m: Multipliers{Cautious: cautiousMod, Ship: shipMod}}
	return e.CalculateTripCost(TripParameters{
		LandMinutes:  landMinutes,
		WaterMinutes: waterMinutes,
		Cautious:     cautious,
		SleepAtInn:   sleepAtInn,
		OnFoot:       onFoot,
	})
}

// toDays converts minutes to whole days rounding half up. Non-positive times
// are zero days.
func toDays(minutes float64) int {
	if minutes <= 0 {
		return 0
	}
	return roundDays(minutes)
}

func roundDays(minutes float64) int {
	return int(minutes/minutesPerDay + 0.5)
}
