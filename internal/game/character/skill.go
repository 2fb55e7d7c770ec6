// Package character defines the skill, career and race model shared by
// players and enemies.
package character

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SkillID identifies one entry of the fixed skill enumeration.
type SkillID int

const (
	Medical SkillID = iota
	Etiquette
	Streetwise
	Jumping
	Orcish
	Harpy
	Giantish
	Dragonish
	Nymph
	Daedric
	Spriggan
	Centaurian
	Impish
	Lockpicking
	Mercantile
	Pickpocket
	Stealth
	Swimming
	Climbing
	Backstabbing
	Dodging
	Running
	Destruction
	Restoration
	Illusion
	Alteration
	Thaumaturgy
	Mysticism
	ShortBlade
	LongBlade
	HandToHand
	Axe
	BluntWeapon
	Archery
	CriticalStrike
)

var skillNames = [...]string{
	Medical:        "medical",
	Etiquette:      "etiquette",
	Streetwise:     "streetwise",
	Jumping:        "jumping",
	Orcish:         "orcish",
	Harpy:          "harpy",
	Giantish:       "giantish",
	Dragonish:      "dragonish",
	Nymph:          "nymph",
	Daedric:        "daedric",
	Spriggan:       "spriggan",
	Centaurian:     "centaurian",
	Impish:         "impish",
	Lockpicking:    "lockpicking",
	Mercantile:     "mercantile",
	Pickpocket:     "pickpocket",
	Stealth:        "stealth",
	Swimming:       "swimming",
	Climbing:       "climbing",
	Backstabbing:   "backstabbing",
	Dodging:        "dodging",
	Running:        "running",
	Destruction:    "destruction",
	Restoration:    "restoration",
	Illusion:       "illusion",
	Alteration:     "alteration",
	Thaumaturgy:    "thaumaturgy",
	Mysticism:      "mysticism",
	ShortBlade:     "short_blade",
	LongBlade:      "long_blade",
	HandToHand:     "hand_to_hand",
	Axe:            "axe",
	BluntWeapon:    "blunt_weapon",
	Archery:        "archery",
	CriticalStrike: "critical_strike",
}

// String returns the snake_case content name of the skill.
func (s SkillID) String() string {
	if s < 0 || int(s) >= len(skillNames) {
		return fmt.Sprintf("skill(%d)", int(s))
	}
	return skillNames[s]
}

// ParseSkill returns the SkillID for a snake_case content name.
//
// Postcondition: Returns an error iff name is not a known skill.
func ParseSkill(name string) (SkillID, error) {
	for i, n := range skillNames {
		if n == name {
			return SkillID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown skill %q", name)
}

// UnmarshalYAML decodes a skill from its content name.
func (s *SkillID) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	id, err := ParseSkill(name)
	if err != nil {
		return err
	}
	*s = id
	return nil
}

// Skills maps skill identifiers to their current values.
// A missing entry reads as zero. Values are stored unclamped.
type Skills map[SkillID]int

// Value returns the skill value clamped at zero.
//
// Postcondition: Returns >= 0.
func (s Skills) Value(id SkillID) int {
	v := s[id]
	if v < 0 {
		return 0
	}
	return v
}

// UnmarshalYAML decodes a mapping of skill content names to values.
func (s *Skills) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]int
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Skills, len(raw))
	for name, v := range raw {
		id, err := ParseSkill(name)
		if err != nil {
			return err
		}
		out[id] = v
	}
	*s = out
	return nil
}
