// Package progression implements health, recovery, advancement and skill-check
// formulas. Every stochastic function takes its randomness as a Roller so
// callers control replay.
package progression

import "github.com/Dimillian/daggerfall-unity/internal/game/attribute"

// Roller draws a uniform integer in [min, max] inclusive.
type Roller interface {
	Range(min, max int) int
}

const (
	playerBaseHealth = 25
	enemyBaseHealth  = 10
)

// RollMaxHealth rolls a player's maximum health: 25 plus hpPerLevel, plus one
// draw in [1, hpPerLevel] for every level above the first.
//
// Precondition: rng must be non-nil.
// Postcondition: Returns 25 + hpPerLevel when level <= 1; no draws are made.
func RollMaxHealth(rng Roller, level, hpPerLevel int) int {
	health := playerBaseHealth + hpPerLevel
	for i := 1; i < level; i++ {
		health += rng.Range(1, hpPerLevel)
	}
	return health
}

// RollEnemyClassMaxHealth rolls a class enemy's maximum health: 10 plus one
// draw in [1, hpPerLevel] per level. Unlike RollMaxHealth the first level
// rolls too.
//
// Precondition: rng must be non-nil.
// Postcondition: Returns exactly 10 when level <= 0.
func RollEnemyClassMaxHealth(rng Roller, level, hpPerLevel int) int {
	health := enemyBaseHealth
	for i := 0; i < level; i++ {
		health += rng.Range(1, hpPerLevel)
	}
	return health
}

// HitPointsPerLevelUp rolls the health gained on level up: a draw in
// [hpPerLevel/2, hpPerLevel] plus HitPointsModifier(endurance).
//
// Precondition: rng must be non-nil.
// Postcondition: Returns >= 1.
func HitPointsPerLevelUp(rng Roller, hpPerLevel, endurance int) int {
	gain := rng.Range(hpPerLevel/2, hpPerLevel) + attribute.HitPointsModifier(endurance)
	return max(gain, 1)
}
