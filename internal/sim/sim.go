// Package sim runs Monte-Carlo trials of the combat rules. Trials are split
// across workers; each worker owns a seeded dice source, a resolver and its
// own clones of the combatants, so results depend only on the seed and the
// worker count.
package sim

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Dimillian/daggerfall-unity/internal/game/combat"
	"github.com/Dimillian/daggerfall-unity/internal/game/dice"
	"github.com/Dimillian/daggerfall-unity/internal/game/entity"
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
)

// ErrNoCombatants is returned when a duel or bout is missing a side.
var ErrNoCombatants = errors.New("sim: attacker and target are required")

// Duel repeats one attack from Attacker against Target.
type Duel struct {
	Attacker *entity.Entity
	Target   *entity.Entity
	Swing    combat.SwingStyle
	Trials   int
	Workers  int
	// Seed is the base seed; worker w draws from Seed+w.
	Seed int64
}

// DuelReport aggregates the trials of a Duel.
type DuelReport struct {
	Trials int
	Hits   int
	// Ineffective counts attacks stopped by the target's material immunity.
	Ineffective int
	TotalDamage int
	MaxDamage   int
	// BodyParts tallies struck locations of rolled attacks.
	BodyParts [inventory.BodyPartCount]int
	// Wear is the total condition lost by all items.
	Wear int
}

// HitRate returns the share of trials that landed.
func (r DuelReport) HitRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Trials)
}

// MeanDamage returns the average damage per trial, misses included.
func (r DuelReport) MeanDamage() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.TotalDamage) / float64(r.Trials)
}

func (r *DuelReport) merge(o DuelReport) {
	r.Trials += o.Trials
	r.Hits += o.Hits
	r.Ineffective += o.Ineffective
	r.TotalDamage += o.TotalDamage
	r.MaxDamage = max(r.MaxDamage, o.MaxDamage)
	for i, n := range o.BodyParts {
		r.BodyParts[i] += n
	}
	r.Wear += o.Wear
}

// RunDuel runs d.Trials independent attacks. Every trial starts from fresh
// clones, so wear never carries over and d's entities are never modified.
//
// Precondition: d.Trials >= 1; d.Workers >= 1.
// Postcondition: Returns the merged report, or the first error a worker hit.
// Returns ctx.Err() when cancelled.
func RunDuel(ctx context.Context, d Duel, logger *zap.Logger) (DuelReport, error) {
	if d.Attacker == nil || d.Target == nil {
		return DuelReport{}, ErrNoCombatants
	}
	if err := checkCounts(d.Trials, d.Workers); err != nil {
		return DuelReport{}, err
	}
	workers := min(d.Workers, d.Trials)
	partial := make([]DuelReport, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			r := combat.NewResolver(workerRoller(d.Seed, w, logger), logger)
			for i := w; i < d.Trials; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				attacker, target := d.Attacker.Clone(), d.Target.Clone()
				report, err := r.ResolveAttack(attacker, target, d.Swing)
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				partial[w].record(report)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DuelReport{}, err
	}

	var out DuelReport
	for _, p := range partial {
		out.merge(p)
	}
	logger.Debug("duel finished",
		zap.String("attacker", d.Attacker.Name),
		zap.String("target", d.Target.Name),
		zap.Int("trials", out.Trials),
		zap.Float64("hit_rate", out.HitRate()),
		zap.Float64("mean_damage", out.MeanDamage()),
	)
	return out, nil
}

func (r *DuelReport) record(rep combat.AttackReport) {
	r.Trials++
	if rep.MaterialIneffective {
		r.Ineffective++
		return
	}
	r.BodyParts[rep.BodyPart]++
	if rep.Hit {
		r.Hits++
	}
	r.TotalDamage += rep.Damage
	r.MaxDamage = max(r.MaxDamage, rep.Damage)
	for _, w := range rep.Wear {
		r.Wear += w.Lost
	}
}

func workerRoller(seed int64, worker int, logger *zap.Logger) *dice.Roller {
	return dice.NewLoggedRoller(dice.NewSeededSource(seed+int64(worker)), logger)
}

func checkCounts(trials, workers int) error {
	var errs []error
	if trials < 1 {
		errs = append(errs, fmt.Errorf("trials must be >= 1, got %d", trials))
	}
	if workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", workers))
	}
	return errors.Join(errs...)
}
