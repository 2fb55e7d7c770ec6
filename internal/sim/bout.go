package sim

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Dimillian/daggerfall-unity/internal/game/combat"
	"github.com/Dimillian/daggerfall-unity/internal/game/entity"
)

// Bouts fights A against B to the finish Trials times.
type Bouts struct {
	A         *entity.Entity
	B         *entity.Entity
	Swing     combat.SwingStyle
	MaxRounds int
	Trials    int
	Workers   int
	Seed      int64
}

// BoutReport aggregates the outcomes of Bouts.
type BoutReport struct {
	Trials int
	WinsA  int
	WinsB  int
	// Draws counts bouts that reached MaxRounds with both sides standing.
	Draws       int
	TotalRounds int
}

// MeanRounds returns the average bout length.
func (r BoutReport) MeanRounds() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.TotalRounds) / float64(r.Trials)
}

// RunBouts runs b.Trials bouts between fresh clones of b.A and b.B.
//
// Precondition: b.Trials >= 1; b.Workers >= 1; b.MaxRounds >= 1.
// Postcondition: WinsA + WinsB + Draws == Trials on success.
func RunBouts(ctx context.Context, b Bouts, logger *zap.Logger) (BoutReport, error) {
	if b.A == nil || b.B == nil {
		return BoutReport{}, ErrNoCombatants
	}
	if err := checkCounts(b.Trials, b.Workers); err != nil {
		return BoutReport{}, err
	}
	if b.MaxRounds < 1 {
		return BoutReport{}, fmt.Errorf("max rounds must be >= 1, got %d", b.MaxRounds)
	}
	workers := min(b.Workers, b.Trials)
	partial := make([]BoutReport, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			r := combat.NewResolver(workerRoller(b.Seed, w, logger), logger)
			for i := w; i < b.Trials; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				a, c := b.A.Clone(), b.B.Clone()
				res, err := r.Bout(a, c, b.Swing, b.MaxRounds)
				if err != nil {
					return fmt.Errorf("bout %d: %w", i, err)
				}
				p := &partial[w]
				p.Trials++
				p.TotalRounds += res.Rounds
				switch res.Winner {
				case nil:
					p.Draws++
				case a:
					p.WinsA++
				default:
					p.WinsB++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BoutReport{}, err
	}

	var out BoutReport
	for _, p := range partial {
		out.Trials += p.Trials
		out.WinsA += p.WinsA
		out.WinsB += p.WinsB
		out.Draws += p.Draws
		out.TotalRounds += p.TotalRounds
	}
	logger.Debug("bouts finished",
		zap.String("a", b.A.Name),
		zap.String("b", b.B.Name),
		zap.Int("trials", out.Trials),
		zap.Int("wins_a", out.WinsA),
		zap.Int("wins_b", out.WinsB),
	)
	return out, nil
}
