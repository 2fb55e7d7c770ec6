package combat

import (
	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/entity"
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
)

const (
	minHitChance = 3
	maxHitChance = 97

	adrenalineRushMod = 5
	monsterTargetMod  = 40
	hitChanceOffset   = 50
)

// HitChance returns the clamped chance, in percent, that attacker strikes
// target on part. critical reports whether the critical strike roll succeeded.
//
// The dodging penalty always reads the defender's skill and the final offset
// is -50; both reproduce the reference game.
//
// Precondition: attacker and target must be non-nil.
// Postcondition: Returns a value in [3, 97]. Returns a lookup error only when
// weapon's material has no modifier.
func HitChance(attacker, target *entity.Entity, chanceToHitMod int, weapon *inventory.Item, part inventory.BodyPart, critical bool) (int, error) {
	materialMod := 0
	if weapon != nil {
		var err error
		if materialMod, err = weapon.MaterialModifier(); err != nil {
			return 0, err
		}
	}
	return hitChance(attacker, target, chanceToHitMod, weapon != nil, materialMod, part, critical), nil
}

func hitChance(attacker, target *entity.Entity, chanceToHitMod int, armed bool, materialMod int, part inventory.BodyPart, critical bool) int {
	chance := chanceToHitMod
	if target.IsPlayer() && target.Player != nil {
		chance -= target.Player.BiographyAvoidHitMod
	}
	chance += target.ArmorValue(part)

	if attacker.Desperate() {
		chance += adrenalineRushMod
	}
	if target.Desperate() {
		chance -= adrenalineRushMod
	}

	chance += (attacker.Stats.Luck - target.Stats.Luck) / 10
	chance += (attacker.Stats.Agility - target.Stats.Agility) / 10

	if armed {
		chance += materialMod * 10
	}

	chance -= target.Skills.Value(character.Dodging) / 4

	if critical {
		chance += attacker.Skills.Value(character.CriticalStrike) / 10
	}
	if target.IsMonster() {
		chance += monsterTargetMod
	}
	chance -= hitChanceOffset

	return min(max(chance, minHitChance), maxHitChance)
}

// CalculateSuccessfulHit rolls the critical strike check and then the hit.
// The critical strike lands when a [0, 100] roll is at most the attacker's
// CriticalStrike skill; the hit lands when a second [0, 100] roll is at most
// the clamped chance.
//
// Postcondition: Returns false with no rolls when attacker or target is nil.
// chance is the clamped value the roll was compared against.
func (r *Resolver) CalculateSuccessfulHit(attacker, target *entity.Entity, chanceToHitMod int, weapon *inventory.Item, part inventory.BodyPart) (hit bool, chance int, err error) {
	if attacker == nil || target == nil {
		return false, 0, nil
	}
	materialMod := 0
	if weapon != nil {
		if materialMod, err = weapon.MaterialModifier(); err != nil {
			return false, 0, err
		}
	}
	hit, chance = r.successfulHit(attacker, target, chanceToHitMod, weapon != nil, materialMod, part)
	return hit, chance, nil
}

func (r *Resolver) successfulHit(attacker, target *entity.Entity, chanceToHitMod int, armed bool, materialMod int, part inventory.BodyPart) (bool, int) {
	critical := r.rng.Range(0, 100) <= attacker.Skills.Value(character.CriticalStrike)
	chance := hitChance(attacker, target, chanceToHitMod, armed, materialMod, part, critical)
	return r.rng.Range(0, 100) <= chance, chance
}
