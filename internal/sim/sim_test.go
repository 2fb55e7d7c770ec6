package sim_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dimillian/daggerfall-unity/internal/game/attribute"
	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/entity"
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
	"github.com/Dimillian/daggerfall-unity/internal/sim"
)

func stats() attribute.Set {
	return attribute.Set{Strength: 60, Intelligence: 50, Willpower: 50, Agility: 60, Endurance: 50, Speed: 50, Luck: 50}
}

func swordsman(material inventory.Material) (*entity.Entity, *inventory.Item) {
	p := entity.NewPlayer("Hero", 8, 90, nil, entity.PlayerProfile{Race: character.Nord, UsingRightHand: true})
	p.Stats = stats()
	p.Skills[character.LongBlade] = 70
	sword := &inventory.Item{
		Name: "Longsword", Kind: inventory.KindWeapon, Material: material, Skill: character.LongBlade,
		MinDamage: 2, MaxDamage: 16, Condition: 1000, MaxCondition: 1000,
	}
	p.Equipment.Equip(inventory.SlotRightHand, sword)
	return p, sword
}

func orc() *entity.Entity {
	e := entity.NewEnemy("Orc", 6, 50, nil, entity.EnemyProfile{
		IsMonster: true,
		Monster:   entity.MonsterOrc,
		Damage:    entity.DamageRange{Min: 2, Max: 10},
	})
	e.Stats = stats()
	e.Skills[character.HandToHand] = 55
	return e
}

func TestRunDuel_DeterministicPerSeed(t *testing.T) {
	hero, sword := swordsman(inventory.MaterialSteel)
	duel := sim.Duel{Attacker: hero, Target: orc(), Trials: 2000, Workers: 4, Seed: 99}

	first, err := sim.RunDuel(context.Background(), duel, zap.NewNop())
	require.NoError(t, err)
	second, err := sim.RunDuel(context.Background(), duel, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2000, first.Trials)
	assert.Positive(t, first.Hits)
	assert.Less(t, first.Hits, first.Trials)
	assert.Equal(t, 1000, sword.Condition, "trials run on clones")

	tallied := 0
	for _, n := range first.BodyParts {
		tallied += n
	}
	assert.Equal(t, first.Trials, tallied)
	assert.Positive(t, first.Wear)
	assert.InDelta(t, float64(first.TotalDamage)/2000, first.MeanDamage(), 1e-9)
}

func TestRunDuel_MaterialImmunity(t *testing.T) {
	hero, _ := swordsman(inventory.MaterialIron)
	ghost := entity.NewEnemy("Ghost", 10, 40, nil, entity.EnemyProfile{IsMonster: true, MinMetalToHit: inventory.MaterialSilver})

	report, err := sim.RunDuel(context.Background(), sim.Duel{Attacker: hero, Target: ghost, Trials: 50, Workers: 8}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 50, report.Ineffective)
	assert.Zero(t, report.Hits)
	assert.Zero(t, report.TotalDamage)
	assert.Zero(t, report.HitRate())
}

func TestRunDuel_Validation(t *testing.T) {
	hero, _ := swordsman(inventory.MaterialSteel)
	_, err := sim.RunDuel(context.Background(), sim.Duel{Attacker: hero, Trials: 1, Workers: 1}, zap.NewNop())
	assert.ErrorIs(t, err, sim.ErrNoCombatants)

	_, err = sim.RunDuel(context.Background(), sim.Duel{Attacker: hero, Target: orc(), Trials: 0, Workers: 0}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trials")
	assert.Contains(t, err.Error(), "workers")
}

func TestRunDuel_Cancelled(t *testing.T) {
	hero, _ := swordsman(inventory.MaterialSteel)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.RunDuel(ctx, sim.Duel{Attacker: hero, Target: orc(), Trials: 100, Workers: 2}, zap.NewNop())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunDuel_LookupErrorStopsRun(t *testing.T) {
	hero, sword := swordsman(inventory.MaterialSteel)
	sword.Skill = character.Medical

	_, err := sim.RunDuel(context.Background(), sim.Duel{Attacker: hero, Target: orc(), Trials: 10, Workers: 2}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weapon skill")
}

func TestRunBouts(t *testing.T) {
	hero, _ := swordsman(inventory.MaterialSteel)
	bouts := sim.Bouts{A: hero, B: orc(), MaxRounds: 30, Trials: 400, Workers: 3, Seed: 5}

	report, err := sim.RunBouts(context.Background(), bouts, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 400, report.Trials)
	assert.Equal(t, report.Trials, report.WinsA+report.WinsB+report.Draws)
	assert.GreaterOrEqual(t, report.MeanRounds(), 1.0)
	assert.LessOrEqual(t, report.MeanRounds(), 30.0)
	assert.Equal(t, 90, hero.CurrentHealth, "bouts run on clones")

	again, err := sim.RunBouts(context.Background(), bouts, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

func TestRunBouts_RejectsZeroRounds(t *testing.T) {
	hero, _ := swordsman(inventory.MaterialSteel)
	_, err := sim.RunBouts(context.Background(), sim.Bouts{A: hero, B: orc(), Trials: 1, Workers: 1}, zap.NewNop())
	assert.Error(t, err)
}
