package character

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// RapidHealing selects when a career recovers health at the accelerated rate.
type RapidHealing int

const (
	RapidHealingNone RapidHealing = iota
	RapidHealingAlways
	RapidHealingInDarkness
	RapidHealingInLight
)

var rapidHealingNames = map[string]RapidHealing{
	"none":        RapidHealingNone,
	"always":      RapidHealingAlways,
	"in_darkness": RapidHealingInDarkness,
	"in_light":    RapidHealingInLight,
}

// UnmarshalYAML decodes none, always, in_darkness or in_light.
func (r *RapidHealing) UnmarshalYAML(node *yaml.Node) error {
	return decodeName(node, "rapid_healing", rapidHealingNames, r)
}

// ParseRapidHealing returns the mode for a content name.
func ParseRapidHealing(name string) (RapidHealing, bool) {
	r, ok := rapidHealingNames[strings.ToLower(name)]
	return r, ok
}

// Proficiency is a bitset of weapon groups a career is expert in.
type Proficiency uint8

const (
	ProficiencyShortBlades    Proficiency = 1 << iota // 1
	ProficiencyLongBlades                             // 2
	ProficiencyHandToHand                             // 4
	ProficiencyAxes                                   // 8
	ProficiencyBluntWeapons                           // 16
	ProficiencyMissileWeapons                         // 32
)

var proficiencyNames = map[string]Proficiency{
	"short_blades":    ProficiencyShortBlades,
	"long_blades":     ProficiencyLongBlades,
	"hand_to_hand":    ProficiencyHandToHand,
	"axes":            ProficiencyAxes,
	"blunt_weapons":   ProficiencyBluntWeapons,
	"missile_weapons": ProficiencyMissileWeapons,
}

// Has reports whether any bit of flag is set in p.
func (p Proficiency) Has(flag Proficiency) bool {
	return p&flag != 0
}

// UnmarshalYAML decodes a sequence of weapon group names into a bitset.
func (p *Proficiency) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	var out Proficiency
	for _, n := range names {
		flag, ok := proficiencyNames[n]
		if !ok {
			return fmt.Errorf("unknown proficiency %q", n)
		}
		out |= flag
	}
	*p = out
	return nil
}

// AttackModifier is a career's attitude toward one enemy group.
type AttackModifier uint8

const (
	AttackNormal AttackModifier = 0
	AttackBonus  AttackModifier = 1 << 0
	AttackPhobia AttackModifier = 1 << 1
)

var attackModifierNames = map[string]AttackModifier{
	"normal": AttackNormal,
	"bonus":  AttackBonus,
	"phobia": AttackPhobia,
}

// HasBonus reports whether the Bonus flag is set.
func (a AttackModifier) HasBonus() bool { return a&AttackBonus != 0 }

// HasPhobia reports whether the Phobia flag is set.
func (a AttackModifier) HasPhobia() bool { return a&AttackPhobia != 0 }

// UnmarshalYAML decodes normal, bonus, phobia, or a "+"-joined combination.
func (a *AttackModifier) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	var out AttackModifier
	for _, part := range strings.Split(s, "+") {
		flag, ok := attackModifierNames[strings.TrimSpace(part)]
		if !ok {
			return fmt.Errorf("unknown attack_modifier %q", s)
		}
		out |= flag
	}
	*a = out
	return nil
}

// EnemyGroup classifies enemies for career attack modifiers.
type EnemyGroup int

const (
	GroupNone EnemyGroup = iota
	GroupUndead
	GroupDaedra
	GroupHumanoid
	GroupAnimals
)

var enemyGroupNames = map[string]EnemyGroup{
	"none":     GroupNone,
	"undead":   GroupUndead,
	"daedra":   GroupDaedra,
	"humanoid": GroupHumanoid,
	"animals":  GroupAnimals,
}

// UnmarshalYAML decodes none, undead, daedra, humanoid or animals.
func (g *EnemyGroup) UnmarshalYAML(node *yaml.Node) error {
	return decodeName(node, "enemy group", enemyGroupNames, g)
}

// Career is a character-class or monster-type profile of progression and
// combat modifiers.
//
// Precondition: ID and Name must be non-empty after loading.
type Career struct {
	ID                  string       `yaml:"id"`
	Name                string       `yaml:"name"`
	HitPointsPerLevel   int          `yaml:"hit_points_per_level"`
	RapidHealing        RapidHealing `yaml:"rapid_healing"`
	AdrenalineRush      bool         `yaml:"adrenaline_rush"`
	ExpertProficiencies Proficiency  `yaml:"expert_proficiencies"`
	// AdvancementMultiplier scales skill uses needed per advancement.
	AdvancementMultiplier float32 `yaml:"advancement_multiplier"`
	// SpellPointMultiplier scales intelligence into the spell point pool.
	SpellPointMultiplier float64 `yaml:"spell_point_multiplier"`

	UndeadAttack   AttackModifier `yaml:"undead_attack"`
	DaedraAttack   AttackModifier `yaml:"daedra_attack"`
	HumanoidAttack AttackModifier `yaml:"humanoid_attack"`
	AnimalsAttack  AttackModifier `yaml:"animals_attack"`
}

// AttackModifierAgainst returns the career's modifier for the given group.
//
// Postcondition: Returns AttackNormal for GroupNone or unknown groups.
func (c *Career) AttackModifierAgainst(g EnemyGroup) AttackModifier {
	switch g {
	case GroupUndead:
		return c.UndeadAttack
	case GroupDaedra:
		return c.DaedraAttack
	case GroupHumanoid:
		return c.HumanoidAttack
	case GroupAnimals:
		return c.AnimalsAttack
	default:
		return AttackNormal
	}
}

// Validate checks that the career satisfies its invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty and
// HitPointsPerLevel >= 0.
func (c *Career) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("career: id must not be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("career %q: name must not be empty", c.ID)
	}
	if c.HitPointsPerLevel < 0 {
		return fmt.Errorf("career %q: hit_points_per_level must be >= 0", c.ID)
	}
	return nil
}

func decodeName[T any](node *yaml.Node, kind string, table map[string]T, out *T) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, ok := table[s]
	if !ok {
		return fmt.Errorf("unknown %s %q", kind, s)
	}
	*out = v
	return nil
}
