// Package combat resolves melee and missile attacks between entities: damage
// source selection, the modifier pipeline, body-part targeting, the hit roll
// and equipment wear.
package combat

import (
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
)

// Roller draws a uniform integer in [min, max] inclusive.
// Using a local interface avoids a circular import.
type Roller interface {
	Range(min, max int) int
}

// SwingStyle is the direction of the player's weapon swing.
type SwingStyle int

const (
	SwingNone SwingStyle = iota
	SwingStrikeUp
	SwingStrikeDownRight
	SwingStrikeDownLeft
	SwingStrikeDown
)

// String returns a human-readable swing label.
func (s SwingStyle) String() string {
	switch s {
	case SwingStrikeUp:
		return "strike up"
	case SwingStrikeDownRight:
		return "strike down right"
	case SwingStrikeDownLeft:
		return "strike down left"
	case SwingStrikeDown:
		return "strike down"
	default:
		return "none"
	}
}

// ParseSwing returns the swing for a content name (up, down_right,
// down_left, down, none).
func ParseSwing(name string) (SwingStyle, bool) {
	switch name {
	case "up":
		return SwingStrikeUp, true
	case "down_right":
		return SwingStrikeDownRight, true
	case "down_left":
		return SwingStrikeDownLeft, true
	case "down":
		return SwingStrikeDown, true
	case "none", "":
		return SwingNone, true
	}
	return SwingNone, false
}

type swingModifier struct {
	damage int
	toHit  int
}

var swingModifiers = map[SwingStyle]swingModifier{
	SwingStrikeUp:        {damage: -4, toHit: 10},
	SwingStrikeDownRight: {damage: -2, toHit: 5},
	SwingStrikeDownLeft:  {damage: 2, toHit: -5},
	SwingStrikeDown:      {damage: 4, toHit: -10},
}

// bodyPartTable weights hit locations. Legs and the head are struck least.
var bodyPartTable = [...]inventory.BodyPart{
	0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 6,
}

// BodyPartTable returns a copy of the weighted hit-location table.
func BodyPartTable() []inventory.BodyPart {
	return append([]inventory.BodyPart(nil), bodyPartTable[:]...)
}

// StruckBodyPart draws a hit location from the weighted table.
//
// Precondition: rng must be non-nil.
func StruckBodyPart(rng Roller) inventory.BodyPart {
	return bodyPartTable[rng.Range(0, len(bodyPartTable)-1)]
}

// Wear records condition an item lost during one attack.
type Wear struct {
	Item *inventory.Item
	Lost int
}

// AttackReport describes one resolved attack. Damage is the total the caller
// should subtract from the target's health.
type AttackReport struct {
	// Weapon is the item in use, or nil for hand-to-hand and innate attacks.
	Weapon *inventory.Item
	// Innate is true when an enemy's natural attack replaced its weapon's
	// damage range.
	Innate bool
	// MaterialIneffective is true when the target cannot be harmed by the
	// weapon's material. No roll was made.
	MaterialIneffective bool

	BaseDamage      int
	DamageModifiers int
	ChanceToHitMod  int
	BodyPart        inventory.BodyPart
	// HitChance is the clamped chance of the first strike.
	HitChance int
	Hit       bool
	// ExtraHits counts the additional unarmed strikes that landed.
	ExtraHits int
	Damage    int
	Wear      []Wear
}
