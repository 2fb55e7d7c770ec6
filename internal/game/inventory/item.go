package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Dimillian/daggerfall-unity/internal/game/character"
)

// Kind constants for Template.Kind.
const (
	KindWeapon = "weapon"
	KindArmor  = "armor"
	KindShield = "shield"
)

// validKinds is the set of valid Template kinds.
var validKinds = map[string]bool{
	KindWeapon: true,
	KindArmor:  true,
	KindShield: true,
}

// Roller draws a uniform integer in [min, max] inclusive.
type Roller interface {
	Range(min, max int) int
}

// Template defines the static properties of an item loaded from YAML.
type Template struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Kind         string            `yaml:"kind"`
	Material     Material          `yaml:"material"`
	Skill        character.SkillID `yaml:"skill"` // weapons only
	MinDamage    int               `yaml:"min_damage"`
	MaxDamage    int               `yaml:"max_damage"`
	MaxCondition int               `yaml:"max_condition"`
	ShieldType   ShieldType        `yaml:"shield_type"`
	Protects     []BodyPart        `yaml:"protects"` // overrides the shield type's coverage
	Artifact     bool              `yaml:"artifact"`
}

// Validate checks that the Template satisfies its invariants.
//
// Precondition: t is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (t *Template) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !validKinds[t.Kind] {
		errs = append(errs, fmt.Errorf("kind must be one of weapon, armor, shield; got %q", t.Kind))
	}
	if t.MaxCondition < 0 {
		errs = append(errs, errors.New("max_condition must be >= 0"))
	}
	if t.Kind == KindWeapon {
		if t.MinDamage < 0 || t.MaxDamage < t.MinDamage {
			errs = append(errs, fmt.Errorf("damage range must satisfy 0 <= min <= max; got %d-%d", t.MinDamage, t.MaxDamage))
		}
		if _, err := ProficiencyForSkill(t.Skill); err != nil {
			errs = append(errs, err)
		}
	}
	if t.Kind == KindShield && t.ShieldType == ShieldNone && len(t.Protects) == 0 {
		errs = append(errs, errors.New("shield requires shield_type or protects"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item template validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// NewItem creates a fresh instance of the template at full condition.
//
// Postcondition: the item has a new random InstanceID and Condition == MaxCondition.
func (t *Template) NewItem() *Item {
	it := &Item{
		InstanceID:   uuid.New(),
		TemplateID:   t.ID,
		Name:         t.Name,
		Kind:         t.Kind,
		Material:     t.Material,
		Skill:        t.Skill,
		MinDamage:    t.MinDamage,
		MaxDamage:    t.MaxDamage,
		Condition:    t.MaxCondition,
		MaxCondition: t.MaxCondition,
		ShieldType:   t.ShieldType,
		Artifact:     t.Artifact,
	}
	if len(t.Protects) > 0 {
		it.Protects = append([]BodyPart(nil), t.Protects...)
	}
	return it
}

// LoadTemplates reads all *.yaml and *.yml files from dir, parses each as a
// Template, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Templates or the first encountered error.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadTemplates: cannot read directory %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadTemplates: cannot read file %q: %w", path, err)
		}
		var t Template
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("LoadTemplates: cannot parse file %q: %w", path, err)
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("LoadTemplates: invalid item in %q: %w", path, err)
		}
		templates = append(templates, &t)
	}
	return templates, nil
}

// Item is one weapon, armor piece or shield instance. Condition is the only
// field combat mutates.
type Item struct {
	InstanceID   uuid.UUID
	TemplateID   string
	Name         string
	Kind         string
	Material     Material
	Skill        character.SkillID
	MinDamage    int
	MaxDamage    int
	Condition    int
	MaxCondition int
	ShieldType   ShieldType
	Protects     []BodyPart
	Artifact     bool
}

// Clone returns a copy of it with its own Protects slice.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	cp := *it
	if it.Protects != nil {
		cp.Protects = append([]BodyPart(nil), it.Protects...)
	}
	return &cp
}

// MaterialModifier returns the damage modifier of the item's material.
func (it *Item) MaterialModifier() (int, error) {
	return WeaponMaterialModifier(it.Material)
}

// Proficiency returns the expert-proficiency group of the item's weapon skill.
func (it *Item) Proficiency() (character.Proficiency, error) {
	return ProficiencyForSkill(it.Skill)
}

// DisplayDamage returns the damage range shown to the player: the base range
// shifted by the material modifier.
//
// Postcondition: hi - lo == MaxDamage - MinDamage.
func (it *Item) DisplayDamage() (lo, hi int, err error) {
	mod, err := it.MaterialModifier()
	if err != nil {
		return 0, 0, err
	}
	return it.MinDamage + mod, it.MaxDamage + mod, nil
}

// ProtectedBodyParts returns the body parts the item guards as a shield.
//
// Postcondition: Returns nil for non-shields.
func (it *Item) ProtectedBodyParts() []BodyPart {
	if it.Kind != KindShield {
		return nil
	}
	if len(it.Protects) > 0 {
		return it.Protects
	}
	return ShieldCoverage(it.ShieldType)
}

// Covers reports whether the item, as a shield, guards body part p.
func (it *Item) Covers(p BodyPart) bool {
	for _, part := range it.ProtectedBodyParts() {
		if part == p {
			return true
		}
	}
	return false
}

// LowerCondition reduces Condition by amount, stopping at zero.
//
// Postcondition: 0 <= Condition <= MaxCondition.
func (it *Item) LowerCondition(amount int) {
	it.Condition -= amount
	if it.Condition < 0 {
		it.Condition = 0
	}
	if it.Condition > it.MaxCondition {
		it.Condition = it.MaxCondition
	}
}

// DamageThroughPhysicalHit wears the item after it deals or absorbs damage
// points of a hit. Wear is (10*damage+50)/100; when that rounds to zero there
// is still a 20% chance of losing one point.
//
// Precondition: rng must not be nil when damage > 0.
// Postcondition: Returns the condition actually removed; no roll is made
// when damage <= 0.
func (it *Item) DamageThroughPhysicalHit(damage int, rng Roller) int {
	if damage <= 0 {
		return 0
	}
	amount := (10*damage + 50) / 100
	if amount == 0 && rng.Range(0, 99) < 20 {
		amount = 1
	}
	before := it.Condition
	it.LowerCondition(amount)
	return before - it.Condition
}

var conditionLabels = []string{"Broken", "Useless", "Battered", "Worn", "Used", "Slightly Used", "Almost New", "New"}
var conditionThresholds = []int{1, 5, 15, 40, 60, 75, 91, 101}

// ConditionLabel returns the wear description shown to the player.
//
// Postcondition: Returns the raw condition number when MaxCondition is 0 or
// Condition exceeds MaxCondition.
func (it *Item) ConditionLabel() string {
	if it.MaxCondition <= 0 || it.Condition > it.MaxCondition {
		return fmt.Sprintf("%d", it.Condition)
	}
	pct := 100 * it.Condition / it.MaxCondition
	i := 0
	for pct > conditionThresholds[i] {
		i++
	}
	return conditionLabels[i]
}
