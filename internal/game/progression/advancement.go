package progression

import (
	"math"

	"github.com/Dimillian/daggerfall-unity/internal/game/attribute"
)

// SkillUsesForAdvancement returns how many successful uses a skill needs
// before its value rises: floor(skill * skillMult * careerMult * 1.04^level * 2/5 + 1).
//
// The first product is taken in single precision to match the reference
// game's rounding; the level term is double precision.
func SkillUsesForAdvancement(skillValue, skillMultiplier int, careerMultiplier float32, level int) int {
	base := float64(float32(skillValue*skillMultiplier) * careerMultiplier)
	return int(math.Floor(base*math.Pow(1.04, float64(level))*2/5 + 1))
}

// PlayerLevel derives the player's level from the sum of their level-up
// skills at character creation and now.
//
// Postcondition: Returns floor((currentSum - startSum + 28) / 15).
func PlayerLevel(startSum, currentSum int) int {
	return attribute.FloorDiv(currentSum-startSum+28, 15)
}
