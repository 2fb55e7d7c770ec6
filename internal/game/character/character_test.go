package character_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/lookup"
)

const spellswordYAML = `
id: spellsword
name: Spellsword
hit_points_per_level: 12
rapid_healing: in_light
adrenaline_rush: true
expert_proficiencies: [long_blades, axes]
advancement_multiplier: 1.5
spell_point_multiplier: 1.75
undead_attack: bonus
daedra_attack: phobia
animals_attack: bonus+phobia
`

func TestCareer_UnmarshalYAML(t *testing.T) {
	var c character.Career
	require.NoError(t, yaml.Unmarshal([]byte(spellswordYAML), &c))

	assert.Equal(t, "spellsword", c.ID)
	assert.Equal(t, 12, c.HitPointsPerLevel)
	assert.Equal(t, character.RapidHealingInLight, c.RapidHealing)
	assert.True(t, c.AdrenalineRush)
	assert.True(t, c.ExpertProficiencies.Has(character.ProficiencyLongBlades))
	assert.True(t, c.ExpertProficiencies.Has(character.ProficiencyAxes))
	assert.False(t, c.ExpertProficiencies.Has(character.ProficiencyHandToHand))
	assert.InDelta(t, 1.5, c.AdvancementMultiplier, 1e-6)

	assert.True(t, c.AttackModifierAgainst(character.GroupUndead).HasBonus())
	assert.False(t, c.AttackModifierAgainst(character.GroupUndead).HasPhobia())
	assert.True(t, c.AttackModifierAgainst(character.GroupDaedra).HasPhobia())
	assert.Equal(t, character.AttackNormal, c.AttackModifierAgainst(character.GroupHumanoid))
	both := c.AttackModifierAgainst(character.GroupAnimals)
	assert.True(t, both.HasBonus())
	assert.True(t, both.HasPhobia())
	assert.Equal(t, character.AttackNormal, c.AttackModifierAgainst(character.GroupNone))
}

func TestCareer_UnmarshalYAML_UnknownEnum(t *testing.T) {
	var c character.Career
	assert.Error(t, yaml.Unmarshal([]byte("id: x\nname: X\nrapid_healing: sometimes\n"), &c))
	assert.Error(t, yaml.Unmarshal([]byte("id: x\nname: X\nexpert_proficiencies: [spoons]\n"), &c))
	assert.Error(t, yaml.Unmarshal([]byte("id: x\nname: X\nundead_attack: fury\n"), &c))
}

func TestCareer_Validate(t *testing.T) {
	assert.NoError(t, (&character.Career{ID: "a", Name: "A"}).Validate())
	assert.ErrorContains(t, (&character.Career{Name: "A"}).Validate(), "id")
	assert.ErrorContains(t, (&character.Career{ID: "a"}).Validate(), "name")
	assert.ErrorContains(t, (&character.Career{ID: "a", Name: "A", HitPointsPerLevel: -1}).Validate(), "hit_points_per_level")
}

func TestSkills_ValueClampsNegative(t *testing.T) {
	s := character.Skills{character.Dodging: -12, character.Medical: 40}
	assert.Equal(t, 0, s.Value(character.Dodging))
	assert.Equal(t, 40, s.Value(character.Medical))
	assert.Equal(t, 0, s.Value(character.Archery))

	var none character.Skills
	assert.Equal(t, 0, none.Value(character.Medical))
}

func TestSkills_UnmarshalYAML(t *testing.T) {
	var s character.Skills
	require.NoError(t, yaml.Unmarshal([]byte("critical_strike: 35\nhand_to_hand: 60\n"), &s))
	assert.Equal(t, 35, s.Value(character.CriticalStrike))
	assert.Equal(t, 60, s.Value(character.HandToHand))

	assert.Error(t, yaml.Unmarshal([]byte("juggling: 5\n"), &s))
}

func TestSkill_Property_NameRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := character.SkillID(rapid.IntRange(int(character.Medical), int(character.CriticalStrike)).Draw(rt, "skill"))
		parsed, err := character.ParseSkill(id.String())
		require.NoError(rt, err)
		assert.Equal(rt, id, parsed)
	})
}

func TestLoadCareers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spellsword.yaml"), []byte(spellswordYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0644))

	careers, err := character.LoadCareers(dir)
	require.NoError(t, err)
	require.Len(t, careers, 1)

	reg := character.NewCareers(careers)
	assert.Equal(t, 1, reg.Len())
	c, err := reg.Career("spellsword")
	require.NoError(t, err)
	assert.Equal(t, "Spellsword", c.Name)

	_, err = reg.Career("bard")
	assert.True(t, errors.Is(err, lookup.ErrNotFound))
}

func TestLoadCareers_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: Nameless\n"), 0644))
	_, err := character.LoadCareers(dir)
	assert.ErrorContains(t, err, "bad.yaml")
}

func TestLoadCareers_MissingDir(t *testing.T) {
	_, err := character.LoadCareers("/nonexistent/careers")
	assert.Error(t, err)
}
