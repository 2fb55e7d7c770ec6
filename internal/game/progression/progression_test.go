package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/dice"
	"github.com/Dimillian/daggerfall-unity/internal/game/progression"
	mockprogression "github.com/Dimillian/daggerfall-unity/internal/game/progression/mock"
	"github.com/Dimillian/daggerfall-unity/internal/testutil"
)

type srcRoller struct{ src dice.Source }

func (r srcRoller) Range(min, max int) int { return dice.Between(r.src, min, max) }

func TestRollMaxHealth_FirstLevelIsFixed(t *testing.T) {
	rng := testutil.NewScriptedRoller(t)
	assert.Equal(t, 45, progression.RollMaxHealth(rng, 1, 20))
	assert.Empty(t, rng.Draws)
}

func TestRollMaxHealth_RollsOncePerExtraLevel(t *testing.T) {
	rng := testutil.NewScriptedRoller(t, 4, 7)
	assert.Equal(t, 46, progression.RollMaxHealth(rng, 3, 10))
	assert.Equal(t, 0, rng.Remaining())
	assert.Equal(t, testutil.Draw{Min: 1, Max: 10, Result: 4}, rng.Draws[0])
}

func TestRollEnemyClassMaxHealth(t *testing.T) {
	assert.Equal(t, 10, progression.RollEnemyClassMaxHealth(testutil.NewScriptedRoller(t), 0, 99))

	rng := testutil.NewScriptedRoller(t, 3, 8)
	assert.Equal(t, 21, progression.RollEnemyClassMaxHealth(rng, 2, 8))
	assert.Equal(t, 0, rng.Remaining())
}

func TestRollMaxHealth_Property_Bounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, 30).Draw(rt, "level")
		hp := rapid.IntRange(1, 30).Draw(rt, "hp")
		rng := srcRoller{dice.NewSeededSource(rapid.Int64().Draw(rt, "seed"))}

		got := progression.RollMaxHealth(rng, level, hp)
		lo := 25 + hp + (level - 1)
		hi := 25 + hp + (level-1)*hp
		if got < lo || got > hi {
			rt.Fatalf("RollMaxHealth(%d, %d) = %d outside [%d, %d]", level, hp, got, lo, hi)
		}

		enemy := progression.RollEnemyClassMaxHealth(rng, level, hp)
		if enemy < 10+level || enemy > 10+level*hp {
			rt.Fatalf("RollEnemyClassMaxHealth(%d, %d) = %d", level, hp, enemy)
		}
	})
}

func TestHitPointsPerLevelUp(t *testing.T) {
	rng := testutil.NewScriptedRoller(t, 7)
	assert.Equal(t, 7, progression.HitPointsPerLevelUp(rng, 10, 50))
	assert.Equal(t, testutil.Draw{Min: 5, Max: 10, Result: 7}, rng.Draws[0])

	rng = testutil.NewScriptedRoller(t, 5)
	assert.Equal(t, 1, progression.HitPointsPerLevelUp(rng, 10, 0), "floored at one")

	rng = testutil.NewScriptedRoller(t, 15)
	assert.Equal(t, 20, progression.HitPointsPerLevelUp(rng, 15, 100))
}

func TestHitPointsPerLevelUp_Property_AtLeastOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rng := srcRoller{dice.NewSeededSource(rapid.Int64().Draw(rt, "seed"))}
		hp := rapid.IntRange(0, 40).Draw(rt, "hp")
		end := rapid.IntRange(-100, 200).Draw(rt, "endurance")
		if got := progression.HitPointsPerLevelUp(rng, hp, end); got < 1 {
			rt.Fatalf("HitPointsPerLevelUp(%d, %d) = %d", hp, end, got)
		}
	})
}

func environment(t *testing.T, day, inside bool) progression.Environment {
	ctrl := gomock.NewController(t)
	env := mockprogression.NewMockEnvironment(ctrl)
	env.EXPECT().IsDay().Return(day).AnyTimes()
	env.EXPECT().IsInside().Return(inside).AnyTimes()
	return env
}

func TestHealthRecoveryRate(t *testing.T) {
	tests := []struct {
		name    string
		healing character.RapidHealing
		day     bool
		inside  bool
		want    int
	}{
		{"plain night", character.RapidHealingNone, false, false, 11},
		{"plain day", character.RapidHealingNone, true, false, 11},
		{"always", character.RapidHealingAlways, false, true, 15},
		{"in light, day outside", character.RapidHealingInLight, true, false, 15},
		{"in light, day inside", character.RapidHealingInLight, true, true, 11},
		{"in light, night", character.RapidHealingInLight, false, false, 11},
		{"in darkness, day outside", character.RapidHealingInDarkness, true, false, 11},
		{"in darkness, day inside", character.RapidHealingInDarkness, true, true, 15},
		{"in darkness, night", character.RapidHealingInDarkness, false, false, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := progression.HealthRecoveryRate(50, 50, 100, tc.healing, environment(t, tc.day, tc.inside))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHealthRecoveryRate_FloorsAtOne(t *testing.T) {
	assert.Equal(t, 1, progression.HealthRecoveryRate(0, 0, 10, character.RapidHealingNone, nil))
	assert.Equal(t, 1, progression.HealthRecoveryRate(-40, 0, 10, character.RapidHealingNone, nil))
}

func TestHealthRecoveryRate_Property_AtLeastOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		got := progression.HealthRecoveryRate(
			rapid.IntRange(-50, 200).Draw(rt, "medical"),
			rapid.IntRange(-50, 200).Draw(rt, "endurance"),
			rapid.IntRange(0, 1000).Draw(rt, "maxHealth"),
			character.RapidHealing(rapid.IntRange(0, 3).Draw(rt, "healing")),
			nil,
		)
		if got < 1 {
			rt.Fatalf("rate %d < 1", got)
		}
	})
}

func TestRecoveryRates(t *testing.T) {
	assert.Equal(t, 1, progression.FatigueRecoveryRate(0))
	assert.Equal(t, 1, progression.FatigueRecoveryRate(15))
	assert.Equal(t, 2, progression.FatigueRecoveryRate(16))
	assert.Equal(t, 12, progression.SpellPointRecoveryRate(100))
	assert.Equal(t, 1, progression.SpellPointRecoveryRate(-30))
}

func TestSkillUsesForAdvancement(t *testing.T) {
	assert.Equal(t, 9, progression.SkillUsesForAdvancement(10, 2, 1.0, 0))
	assert.Equal(t, 9, progression.SkillUsesForAdvancement(10, 2, 1.0, 1))
	assert.Equal(t, 134, progression.SkillUsesForAdvancement(50, 3, 1.5, 10))
	assert.Equal(t, 87, progression.SkillUsesForAdvancement(37, 4, 0.75, 17))
	assert.Equal(t, 1, progression.SkillUsesForAdvancement(0, 5, 2.0, 30))
}

func TestPlayerLevel(t *testing.T) {
	assert.Equal(t, 1, progression.PlayerLevel(0, 0))
	assert.Equal(t, 2, progression.PlayerLevel(100, 102))
	assert.Equal(t, 0, progression.PlayerLevel(100, 80))
	assert.Equal(t, -2, progression.PlayerLevel(100, 50), "floors toward negative infinity")
}
