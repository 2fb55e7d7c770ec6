package entity

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Dimillian/daggerfall-unity/internal/game/attribute"
	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
	"github.com/Dimillian/daggerfall-unity/internal/game/lookup"
	"github.com/Dimillian/daggerfall-unity/internal/game/progression"
)

// Template type values.
const (
	TypePlayer  = "player"
	TypeClass   = "class"
	TypeMonster = "monster"
)

// Template defines a reusable combatant loaded from YAML: the player's
// character sheet, a class enemy or a monster.
type Template struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Level  int    `yaml:"level"`
	Career string `yaml:"career"` // career ID; optional for monsters
	// MaxHealth is used as-is for monsters. Players and class enemies roll
	// health from their career at spawn.
	MaxHealth int              `yaml:"max_health"`
	Stats     attribute.Set    `yaml:"stats"`
	Skills    character.Skills `yaml:"skills"`
	Armor     []int            `yaml:"armor"`
	// Equipment maps slot names (head, right_hand, ...) to item template IDs.
	Equipment map[string]string `yaml:"equipment"`

	Race                 character.Race `yaml:"race"`
	BiographyAvoidHitMod int            `yaml:"biography_avoid_hit_mod"`
	LeftHanded           bool           `yaml:"left_handed"`

	Monster       MonsterCareer        `yaml:"monster"`
	Group         character.EnemyGroup `yaml:"group"`
	MinMetalToHit inventory.Material   `yaml:"min_metal_to_hit"`
	Damage        DamageRange          `yaml:"damage"`
	Damage2       DamageRange          `yaml:"damage2"`
	Damage3       DamageRange          `yaml:"damage3"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, Type is known,
// Level >= 0, every damage range is ordered, Armor has at most one value per
// body part and every equipment slot name is valid.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("entity template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("entity template %q: name must not be empty", t.ID)
	}
	switch t.Type {
	case TypePlayer, TypeClass:
		if t.Career == "" {
			return fmt.Errorf("entity template %q: %s requires a career", t.ID, t.Type)
		}
	case TypeMonster:
		if t.MaxHealth < 1 {
			return fmt.Errorf("entity template %q: monster max_health must be >= 1", t.ID)
		}
	default:
		return fmt.Errorf("entity template %q: type must be one of player, class, monster; got %q", t.ID, t.Type)
	}
	if t.Level < 0 {
		return fmt.Errorf("entity template %q: level must be >= 0", t.ID)
	}
	for i, d := range []DamageRange{t.Damage, t.Damage2, t.Damage3} {
		if d.Min < 0 || d.Max < d.Min {
			return fmt.Errorf("entity template %q: damage range %d must satisfy 0 <= min <= max", t.ID, i+1)
		}
	}
	if len(t.Armor) > inventory.BodyPartCount {
		return fmt.Errorf("entity template %q: armor lists %d values, at most %d allowed", t.ID, len(t.Armor), inventory.BodyPartCount)
	}
	for slot := range t.Equipment {
		if _, err := inventory.ParseSlot(slot); err != nil {
			return fmt.Errorf("entity template %q: %w", t.ID, err)
		}
	}
	return nil
}

// LoadTemplateFromBytes parses a single entity template from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Template.
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading entity dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// Bestiary indexes entity templates by ID and spawns entities from them.
type Bestiary struct {
	templates map[string]*Template
	careers   *character.Careers
	items     *inventory.Registry
}

// NewBestiary returns a Bestiary over templates, resolving careers and items
// from the given registries.
//
// Precondition: careers and items must be non-nil.
func NewBestiary(templates []*Template, careers *character.Careers, items *inventory.Registry) *Bestiary {
	b := &Bestiary{
		templates: make(map[string]*Template, len(templates)),
		careers:   careers,
		items:     items,
	}
	for _, t := range templates {
		b.templates[t.ID] = t
	}
	return b
}

// Template returns the template registered under id.
//
// Postcondition: Returns a *lookup.Error wrapping lookup.ErrNotFound iff id is unknown.
func (b *Bestiary) Template(id string) (*Template, error) {
	t, ok := b.templates[id]
	if !ok {
		return nil, lookup.NotFound("entity template", id)
	}
	return t, nil
}

// IDs returns every template ID in sorted order.
func (b *Bestiary) IDs() []string {
	ids := make([]string, 0, len(b.templates))
	for id := range b.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Spawn creates a live entity from the template registered under id.
//
// Players roll health with RollMaxHealth and class enemies with
// RollEnemyClassMaxHealth, both from the career's hit points per level.
// Monsters take the template's fixed MaxHealth.
//
// Precondition: rng must be non-nil.
// Postcondition: Returns an entity at full health with a fresh ID and fresh
// item instances, or the first lookup error met.
func (b *Bestiary) Spawn(id string, rng progression.Roller) (*Entity, error) {
	t, err := b.Template(id)
	if err != nil {
		return nil, err
	}
	var career *character.Career
	if t.Career != "" {
		if career, err = b.careers.Career(t.Career); err != nil {
			return nil, fmt.Errorf("spawning %q: %w", id, err)
		}
	}

	var e *Entity
	switch t.Type {
	case TypePlayer:
		health := progression.RollMaxHealth(rng, t.Level, career.HitPointsPerLevel)
		e = NewPlayer(t.Name, t.Level, health, career, PlayerProfile{
			Race:                 t.Race,
			BiographyAvoidHitMod: t.BiographyAvoidHitMod,
			UsingRightHand:       !t.LeftHanded,
		})
	case TypeClass:
		health := progression.RollEnemyClassMaxHealth(rng, t.Level, career.HitPointsPerLevel)
		e = NewEnemy(t.Name, t.Level, health, career, t.enemyProfile(false))
	default:
		e = NewEnemy(t.Name, t.Level, t.MaxHealth, career, t.enemyProfile(true))
	}
	e.ID = uuid.NewString()
	e.Stats = t.Stats
	for k, v := range t.Skills {
		e.Skills[k] = v
	}
	copy(e.ArmorValues, t.Armor)

	slots := make([]string, 0, len(t.Equipment))
	for slot := range t.Equipment {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	for _, name := range slots {
		slot, err := inventory.ParseSlot(name)
		if err != nil {
			return nil, fmt.Errorf("spawning %q: %w", id, err)
		}
		item, err := b.items.NewItem(t.Equipment[name])
		if err != nil {
			return nil, fmt.Errorf("spawning %q: %w", id, err)
		}
		e.Equipment.Equip(slot, item)
	}
	return e, nil
}

func (t *Template) enemyProfile(monster bool) EnemyProfile {
	return EnemyProfile{
		TemplateID:    t.ID,
		IsMonster:     monster,
		Monster:       t.Monster,
		Group:         t.Group,
		MinMetalToHit: t.MinMetalToHit,
		Damage:        t.Damage,
		Damage2:       t.Damage2,
		Damage3:       t.Damage3,
	}
}
