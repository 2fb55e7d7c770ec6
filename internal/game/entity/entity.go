// Package entity models the combatants rules calculations read: the player
// and enemies, sharing one base shape with a variant-specific profile.
package entity

import (
	"github.com/Dimillian/daggerfall-unity/internal/game/attribute"
	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
)

// Kind distinguishes the player from enemies.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns "player" or "enemy".
func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}

// PlayerProfile holds state only the player carries.
type PlayerProfile struct {
	Race character.Race
	// BiographyAvoidHitMod is subtracted from attackers' chance to hit.
	BiographyAvoidHitMod int
	// UsingRightHand selects the right-hand weapon for the next attack.
	UsingRightHand bool
}

// DamageRange is an inclusive innate attack range. Max == 0 marks the range
// unused.
type DamageRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Average returns (Min+Max)/2 with integer division.
func (d DamageRange) Average() int { return (d.Min + d.Max) / 2 }

// EnemyProfile holds state only enemies carry.
type EnemyProfile struct {
	TemplateID string
	// IsMonster is false for class enemies (human NPCs with a career).
	IsMonster bool
	Monster   MonsterCareer
	Group     character.EnemyGroup
	// MinMetalToHit is the lowest weapon material able to wound this enemy.
	MinMetalToHit inventory.Material
	// Damage is the innate attack. Damage2 and Damage3 are extra attacks
	// made only when unarmed.
	Damage  DamageRange
	Damage2 DamageRange
	Damage3 DamageRange
}

// Entity is a combatant snapshot. Exactly one of Player or Enemy is set,
// matching Kind.
type Entity struct {
	ID            string
	Name          string
	Kind          Kind
	Level         int
	CurrentHealth int
	MaxHealth     int
	Stats         attribute.Set
	Skills        character.Skills
	Career        *character.Career
	// ArmorValues is indexed by inventory.BodyPart.
	ArmorValues []int
	Equipment   inventory.EquipTable

	Player *PlayerProfile
	Enemy  *EnemyProfile
}

// NewPlayer returns a player entity at full health with zeroed armor values.
//
// Postcondition: Kind == KindPlayer; len(ArmorValues) == inventory.BodyPartCount.
func NewPlayer(name string, level, maxHealth int, career *character.Career, profile PlayerProfile) *Entity {
	return &Entity{
		Name:          name,
		Kind:          KindPlayer,
		Level:         level,
		CurrentHealth: maxHealth,
		MaxHealth:     maxHealth,
		Skills:        character.Skills{},
		Career:        career,
		ArmorValues:   make([]int, inventory.BodyPartCount),
		Player:        &profile,
	}
}

// NewEnemy returns an enemy entity at full health with zeroed armor values.
//
// Postcondition: Kind == KindEnemy; len(ArmorValues) == inventory.BodyPartCount.
func NewEnemy(name string, level, maxHealth int, career *character.Career, profile EnemyProfile) *Entity {
	return &Entity{
		Name:          name,
		Kind:          KindEnemy,
		Level:         level,
		CurrentHealth: maxHealth,
		MaxHealth:     maxHealth,
		Skills:        character.Skills{},
		Career:        career,
		ArmorValues:   make([]int, inventory.BodyPartCount),
		Enemy:         &profile,
	}
}

// IsPlayer reports whether e is the player.
func (e *Entity) IsPlayer() bool { return e.Kind == KindPlayer }

// IsMonster reports whether e is a monster enemy.
func (e *Entity) IsMonster() bool {
	return e.Kind == KindEnemy && e.Enemy != nil && e.Enemy.IsMonster
}

// IsMonsterCareer reports whether e is the given monster.
func (e *Entity) IsMonsterCareer(m MonsterCareer) bool {
	return e.IsMonster() && e.Enemy.Monster == m
}

// EnemyGroup returns the enemy's group, or GroupNone for the player.
func (e *Entity) EnemyGroup() character.EnemyGroup {
	if e.Kind != KindEnemy || e.Enemy == nil {
		return character.GroupNone
	}
	return e.Enemy.Group
}

// MinMetalToHit returns the lowest weapon material able to wound e.
//
// Postcondition: Returns MaterialIron for the player.
func (e *Entity) MinMetalToHit() inventory.Material {
	if e.Kind != KindEnemy || e.Enemy == nil {
		return inventory.MaterialIron
	}
	return e.Enemy.MinMetalToHit
}

// CareerProfile returns e's career, or an empty career when none is set.
//
// Postcondition: never returns nil.
func (e *Entity) CareerProfile() *character.Career {
	if e.Career == nil {
		return &character.Career{}
	}
	return e.Career
}

// ArmorValue returns the armor value for part.
//
// Postcondition: Returns 0 when part falls outside ArmorValues.
func (e *Entity) ArmorValue(part inventory.BodyPart) int {
	if part < 0 || int(part) >= len(e.ArmorValues) {
		return 0
	}
	return e.ArmorValues[part]
}

// Desperate reports whether e has an adrenaline-rush career and is below an
// eighth of its maximum health.
func (e *Entity) Desperate() bool {
	return e.CareerProfile().AdrenalineRush && e.CurrentHealth < e.MaxHealth/8
}

// ApplyDamage reduces CurrentHealth by amount, flooring at zero.
//
// Precondition: amount must be >= 0.
// Postcondition: CurrentHealth >= 0.
func (e *Entity) ApplyDamage(amount int) {
	e.CurrentHealth -= amount
	if e.CurrentHealth < 0 {
		e.CurrentHealth = 0
	}
}

// IsDead reports whether e has no health left.
func (e *Entity) IsDead() bool { return e.CurrentHealth <= 0 }

// Clone returns a deep copy of e. The career is shared because careers are
// read-only after loading.
//
// Postcondition: mutating the clone's health, skills, armor or items never
// affects e.
func (e *Entity) Clone() *Entity {
	cp := *e
	cp.Skills = make(character.Skills, len(e.Skills))
	for k, v := range e.Skills {
		cp.Skills[k] = v
	}
	cp.ArmorValues = append([]int(nil), e.ArmorValues...)
	cp.Equipment = e.Equipment.Clone()
	if e.Player != nil {
		p := *e.Player
		cp.Player = &p
	}
	if e.Enemy != nil {
		en := *e.Enemy
		cp.Enemy = &en
	}
	return &cp
}
