package progression

import (
	"github.com/Dimillian/daggerfall-unity/internal/game/attribute"
	"github.com/Dimillian/daggerfall-unity/internal/game/character"
)

//go:generate mockgen -destination=mock/environment.go -package=mockprogression -source=recovery.go

// Environment reports the time of day and whether the resting entity is
// under a roof.
type Environment interface {
	IsDay() bool
	IsInside() bool
}

const (
	medicalBonus      = 60
	rapidMedicalBonus = 100
)

// HealthRecoveryRate returns health regained per hour of rest.
//
// The medical skill is raised by 60, or by 100 when rapid healing applies:
// always, in daylight outdoors for InLight, or anywhere else for InDarkness.
// The raised skill scales maxHealth per mille and HealingRateModifier is added.
//
// Precondition: env may be nil, which reads as night indoors.
// Postcondition: Returns >= 1.
func HealthRecoveryRate(medical, endurance, maxHealth int, healing character.RapidHealing, env Environment) int {
	bonus := medicalBonus
	dayOutside := env != nil && env.IsDay() && !env.IsInside()
	switch {
	case healing == character.RapidHealingAlways:
		bonus = rapidMedicalBonus
	case dayOutside:
		if healing == character.RapidHealingInLight {
			bonus = rapidMedicalBonus
		}
	case healing == character.RapidHealingInDarkness:
		bonus = rapidMedicalBonus
	}
	medical = max(medical, 0) + bonus
	rate := attribute.HealingRateModifier(endurance) + attribute.FloorDiv(medical*maxHealth, 1000)
	return max(rate, 1)
}

// FatigueRecoveryRate returns fatigue regained per hour of rest.
//
// Postcondition: Returns >= 1.
func FatigueRecoveryRate(maxFatigue int) int {
	return max(attribute.FloorDiv(maxFatigue, 8), 1)
}

// SpellPointRecoveryRate returns spell points regained per hour of rest.
//
// Postcondition: Returns >= 1.
func SpellPointRecoveryRate(maxSpellPoints int) int {
	return max(attribute.FloorDiv(maxSpellPoints, 8), 1)
}
