package progression

const (
	minCheckChance = 5
	maxCheckChance = 95
)

func clampChance(chance int) int {
	return min(max(chance, minCheckChance), maxCheckChance)
}

// InteriorLockpickingChance returns the chance of picking an interior door lock.
//
// Postcondition: Returns a value in [5, 95].
func InteriorLockpickingChance(level, lockValue, lockpicking int) int {
	return clampChance(5*(level-lockValue) + lockpicking)
}

// ExteriorLockpickingChance returns the chance of picking a building's
// entrance lock.
//
// Postcondition: Returns a value in [5, 95].
func ExteriorLockpickingChance(lockValue, lockpicking int) int {
	return clampChance(lockpicking - 5*lockValue)
}

// PickpocketingChance returns the chance of lifting an item from a target.
// When the mark is an enemy, each level the player holds over it adds 5.
//
// Postcondition: Returns a value in [5, 95].
func PickpocketingChance(pickpocket, playerLevel, targetLevel int, targetIsEnemy bool) int {
	chance := pickpocket
	if targetIsEnemy {
		chance += 5 * (playerLevel - targetLevel)
	}
	return clampChance(chance)
}

// SkillCheck rolls [0, 100] and succeeds when the roll is below chance.
//
// Precondition: rng must be non-nil.
func SkillCheck(rng Roller, chance int) bool {
	return rng.Range(0, 100) < chance
}

// HandToHandMinDamage returns the low end of unarmed damage.
func HandToHandMinDamage(skill int) int {
	return skill/10 + 1
}

// HandToHandMaxDamage returns the high end of unarmed damage.
func HandToHandMaxDamage(skill int) int {
	return skill/5 + 1
}
