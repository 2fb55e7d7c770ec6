// Package inventory provides materials, body parts, equip slots and the
// weapon, armor and shield items that combat resolution reads and wears down.
package inventory

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/lookup"
)

// Material is the native material tier of a weapon. Tiers are ordered: a
// target's minimum metal to hit is compared against it with >.
type Material int

const (
	MaterialIron Material = iota
	MaterialSteel
	MaterialSilver
	MaterialElven
	MaterialDwarven
	MaterialMithril
	MaterialAdamantium
	MaterialEbony
	MaterialOrcish
	MaterialDaedric
)

var materialNames = []string{
	MaterialIron:       "iron",
	MaterialSteel:      "steel",
	MaterialSilver:     "silver",
	MaterialElven:      "elven",
	MaterialDwarven:    "dwarven",
	MaterialMithril:    "mithril",
	MaterialAdamantium: "adamantium",
	MaterialEbony:      "ebony",
	MaterialOrcish:     "orcish",
	MaterialDaedric:    "daedric",
}

// String returns the content name of the material.
func (m Material) String() string {
	if m < 0 || int(m) >= len(materialNames) {
		return fmt.Sprintf("material(%d)", int(m))
	}
	return materialNames[m]
}

// ParseMaterial returns the Material for a content name.
//
// Postcondition: Returns an error iff name is not a known material.
func ParseMaterial(name string) (Material, error) {
	for i, n := range materialNames {
		if n == name {
			return Material(i), nil
		}
	}
	return 0, fmt.Errorf("unknown material %q", name)
}

// UnmarshalYAML decodes a material from its content name.
func (m *Material) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	v, err := ParseMaterial(name)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

var weaponMaterialModifiers = map[Material]int{
	MaterialIron:       -1,
	MaterialSteel:      0,
	MaterialSilver:     0,
	MaterialElven:      1,
	MaterialDwarven:    2,
	MaterialMithril:    3,
	MaterialAdamantium: 3,
	MaterialEbony:      4,
	MaterialOrcish:     5,
	MaterialDaedric:    6,
}

// WeaponMaterialModifier returns the damage modifier granted by a weapon
// material. The to-hit modifier is ten times this value.
//
// Postcondition: Returns a *lookup.Error iff m has no table entry.
func WeaponMaterialModifier(m Material) (int, error) {
	mod, ok := weaponMaterialModifiers[m]
	if !ok {
		return 0, lookup.NotFound("weapon material", m)
	}
	return mod, nil
}

var skillProficiencies = map[character.SkillID]character.Proficiency{
	character.ShortBlade:  character.ProficiencyShortBlades,
	character.LongBlade:   character.ProficiencyLongBlades,
	character.HandToHand:  character.ProficiencyHandToHand,
	character.Axe:         character.ProficiencyAxes,
	character.BluntWeapon: character.ProficiencyBluntWeapons,
	character.Archery:     character.ProficiencyMissileWeapons,
}

// ProficiencyForSkill returns the expert-proficiency group a weapon skill
// belongs to.
//
// Postcondition: Returns a *lookup.Error iff skill is not a weapon skill.
func ProficiencyForSkill(skill character.SkillID) (character.Proficiency, error) {
	p, ok := skillProficiencies[skill]
	if !ok {
		return 0, lookup.NotFound("weapon skill", skill)
	}
	return p, nil
}
