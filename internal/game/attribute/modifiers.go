package attribute

import "math"

// DamageModifier returns the strength bonus added to physical damage.
// Formula: floor((str - 50) / 5).
func DamageModifier(strength int) int {
	return FloorDiv(strength-50, 5)
}

// MaxEncumbrance returns the carry limit in kilograms.
// Formula: floor(str * 1.5).
func MaxEncumbrance(strength int) int {
	return int(math.Floor(float64(strength) * 1.5))
}

// SpellPoints returns the spell point pool for the given intelligence and
// career multiplier. Formula: floor(int * multiplier).
func SpellPoints(intelligence int, multiplier float64) int {
	return int(math.Floor(float64(intelligence) * multiplier))
}

// MagicResist returns the willpower-derived magic resistance.
// Formula: floor(will / 10).
func MagicResist(willpower int) int {
	return FloorDiv(willpower, 10)
}

// ToHitModifier returns the agility-derived to-hit adjustment.
// Formula: floor(agi / 10) - 5.
func ToHitModifier(agility int) int {
	return FloorDiv(agility, 10) - 5
}

// HitPointsModifier returns the endurance-derived hit point adjustment per level.
// Formula: floor(end / 10) - 5.
func HitPointsModifier(endurance int) int {
	return FloorDiv(endurance, 10) - 5
}

// HealingRateModifier returns the endurance-derived healing rate adjustment.
// It is identical to HitPointsModifier. Negative results are used as-is;
// classic adds 1 to negative values and that is not recreated here.
func HealingRateModifier(endurance int) int {
	return FloorDiv(endurance, 10) - 5
}
