package combat

import (
	"go.uber.org/zap"

	"github.com/Dimillian/daggerfall-unity/internal/game/attribute"
	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/entity"
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
	"github.com/Dimillian/daggerfall-unity/internal/game/progression"
)

// Resolver resolves attacks, drawing every roll from one Roller.
//
// A Resolver is not safe for concurrent use unless its Roller is; callers
// running attacks in parallel give each worker its own Resolver.
type Resolver struct {
	rng    Roller
	logger *zap.Logger
}

// NewResolver returns a Resolver drawing from rng.
//
// Precondition: rng and logger must be non-nil.
func NewResolver(rng Roller, logger *zap.Logger) *Resolver {
	return &Resolver{rng: rng, logger: logger}
}

// CalculateWeaponDamage resolves one attack and returns only the damage dealt.
//
// Postcondition: Returns >= 0; returns 0 with a nil error when attacker or
// target is nil.
func (r *Resolver) CalculateWeaponDamage(attacker, target *entity.Entity, swing SwingStyle) (int, error) {
	report, err := r.ResolveAttack(attacker, target, swing)
	return report.Damage, err
}

// ResolveAttack runs the full attack pipeline of attacker against target.
//
// The damage source is chosen, the base damage rolled and modifiers summed in
// a fixed order: swing, proficiency, skeletal warrior, enemy group, race,
// strength, material. A body part is then drawn and the hit rolled. A landed
// weapon hit wears the weapon and then the target's shield if it covers the
// struck part, otherwise the armor worn there. Unarmed enemies follow up with
// up to two extra strikes.
//
// swing applies only to a player attacking with a weapon.
//
// Precondition: when non-nil, entities must not be shared with a concurrent
// resolution.
// Postcondition: Report.Damage >= 0. Item conditions change only when a
// weapon hit deals damage. A material-gated attack makes no rolls and changes
// nothing. The only errors are lookup failures for the weapon's material or
// skill, returned with a zero report.
func (r *Resolver) ResolveAttack(attacker, target *entity.Entity, swing SwingStyle) (AttackReport, error) {
	var report AttackReport
	if attacker == nil || target == nil {
		return report, nil
	}
	career := attacker.CareerProfile()
	level := attacker.Level

	weapon := selectWeapon(attacker)
	var lo, hi, toHit int
	var weaponProf character.Proficiency
	var materialMod int
	if weapon != nil {
		if target.MinMetalToHit() > weapon.Material {
			if attacker.IsPlayer() {
				r.logger.Info("material ineffective",
					zap.String("weapon", weapon.Name),
					zap.Stringer("material", weapon.Material),
					zap.Stringer("required", target.MinMetalToHit()),
				)
			}
			report.Weapon = weapon
			report.MaterialIneffective = true
			return report, nil
		}
		var err error
		if weaponProf, err = weapon.Proficiency(); err != nil {
			return AttackReport{}, err
		}
		if materialMod, err = weapon.MaterialModifier(); err != nil {
			return AttackReport{}, err
		}
		lo, hi = weapon.MinDamage, weapon.MaxDamage
		toHit = attacker.Skills.Value(weapon.Skill)
	} else if attacker.IsPlayer() {
		skill := attacker.Skills.Value(character.HandToHand)
		lo, hi = progression.HandToHandMinDamage(skill), progression.HandToHandMaxDamage(skill)
		toHit = skill
	}

	// Enemies fight with whichever of weapon and natural attack is stronger.
	if !attacker.IsPlayer() && attacker.Enemy != nil {
		innate := attacker.Enemy.Damage
		if innate.Average() > (lo+hi)/2 {
			lo, hi = innate.Min, innate.Max
			toHit = attacker.Skills.Value(character.HandToHand)
			report.Innate = true
		}
	}

	base := r.rng.Range(lo, hi)
	mods := 0

	if attacker.IsPlayer() && weapon != nil {
		sm := swingModifiers[swing]
		mods += sm.damage
		toHit += sm.toHit
	}

	if attacker.IsPlayer() {
		if weapon != nil && career.ExpertProficiencies.Has(weaponProf) {
			mods += level/3 + 1
			toHit += level
		} else if weapon == nil && career.ExpertProficiencies.Has(character.ProficiencyHandToHand) {
			mods += level/3 + 1
			toHit += level
		}
	}

	if weapon != nil && target.IsMonsterCareer(entity.MonsterSkeletalWarrior) {
		if weapon.Material == inventory.MaterialSilver {
			base *= 2
			mods *= 2
		}
		if weaponProf != character.ProficiencyBluntWeapons {
			base /= 2
			mods /= 2
		}
	}

	if !target.IsPlayer() {
		am := career.AttackModifierAgainst(target.EnemyGroup())
		if am.HasBonus() {
			mods += level
		}
		if am.HasPhobia() {
			mods -= level
		}
	}

	if attacker.IsPlayer() && weapon != nil && attacker.Player != nil {
		race := attacker.Player.Race
		switch {
		case race == character.DarkElf:
			mods += level / 4
			toHit += level / 4
		case weaponProf == character.ProficiencyMissileWeapons:
			if race == character.WoodElf {
				mods += level / 3
				toHit += level / 3
			}
		case race == character.Redguard:
			mods += level / 3
			toHit += level / 3
		}
	}

	if attacker.IsPlayer() || weapon != nil {
		mods += attribute.DamageModifier(attacker.Stats.Strength)
	}
	if weapon != nil {
		mods += materialMod
	}

	part := StruckBodyPart(r.rng)
	hit, chance := r.successfulHit(attacker, target, toHit, weapon != nil, materialMod, part)

	report.Weapon = weapon
	report.BaseDamage = base
	report.DamageModifiers = mods
	report.ChanceToHitMod = toHit
	report.BodyPart = part
	report.HitChance = chance
	report.Hit = hit
	if hit {
		report.Damage = max(0, base+mods)
	}

	if weapon != nil && report.Damage > 0 {
		report.Wear = r.applyWear(weapon, target, part, report.Damage)
	}

	if !attacker.IsPlayer() && weapon == nil && attacker.Enemy != nil {
		for _, extra := range []entity.DamageRange{attacker.Enemy.Damage2, attacker.Enemy.Damage3} {
			if extra.Max == 0 {
				continue
			}
			if ok, _ := r.successfulHit(attacker, target, toHit, false, 0, part); ok {
				report.ExtraHits++
				report.Damage += max(0, r.rng.Range(extra.Min, extra.Max)+mods)
			}
		}
	}

	r.logger.Debug("attack resolved",
		zap.String("attacker", attacker.Name),
		zap.String("target", target.Name),
		zap.String("weapon", weaponName(weapon)),
		zap.Stringer("body_part", part),
		zap.Int("chance", chance),
		zap.Bool("hit", hit),
		zap.Int("damage", report.Damage),
	)
	return report, nil
}

// selectWeapon picks the weapon an attacker strikes with. The player uses the
// hand they are attacking with; enemies prefer the right hand.
func selectWeapon(e *entity.Entity) *inventory.Item {
	if e.IsPlayer() {
		if e.Player == nil || e.Player.UsingRightHand {
			return e.Equipment.Weapon(inventory.SlotRightHand)
		}
		return e.Equipment.Weapon(inventory.SlotLeftHand)
	}
	if w := e.Equipment.Weapon(inventory.SlotRightHand); w != nil {
		return w
	}
	return e.Equipment.Weapon(inventory.SlotLeftHand)
}

// applyWear wears the weapon, then the target's shield when it covers part,
// otherwise the armor equipped over part.
func (r *Resolver) applyWear(weapon *inventory.Item, target *entity.Entity, part inventory.BodyPart, damage int) []Wear {
	wear := []Wear{{Item: weapon, Lost: weapon.DamageThroughPhysicalHit(damage, r.rng)}}
	if shield := target.Equipment.Shield(); shield != nil && shield.Covers(part) {
		return append(wear, Wear{Item: shield, Lost: shield.DamageThroughPhysicalHit(damage, r.rng)})
	}
	slot, ok := inventory.SlotForBodyPart(part)
	if !ok {
		return wear
	}
	if armor := target.Equipment.Item(slot); armor != nil {
		wear = append(wear, Wear{Item: armor, Lost: armor.DamageThroughPhysicalHit(damage, r.rng)})
	}
	return wear
}

func weaponName(w *inventory.Item) string {
	if w == nil {
		return "none"
	}
	return w.Name
}
