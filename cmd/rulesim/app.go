package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Dimillian/daggerfall-unity/internal/config"
	"github.com/Dimillian/daggerfall-unity/internal/game/calendar"
	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/combat"
	"github.com/Dimillian/daggerfall-unity/internal/game/dice"
	"github.com/Dimillian/daggerfall-unity/internal/game/entity"
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
	"github.com/Dimillian/daggerfall-unity/internal/game/progression"
	"github.com/Dimillian/daggerfall-unity/internal/game/travel"
	"github.com/Dimillian/daggerfall-unity/internal/scripting"
	"github.com/Dimillian/daggerfall-unity/internal/sim"
)

// errUsage reports a malformed command line.
var errUsage = errors.New("usage")

// app carries the wired dependencies shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
}

// run dispatches one subcommand.
//
// Postcondition: returns an error wrapping errUsage for an unknown command.
func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "attack":
		return a.attack(args)
	case "simulate":
		return a.simulate(ctx, args)
	case "fight":
		return a.fight(ctx, args)
	case "trip":
		return a.trip(args)
	case "holiday":
		return a.holiday(args)
	case "level":
		return a.level(args)
	case "eval":
		return a.eval(args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// roller builds the configured dice source behind a logged roller.
func (a *app) roller() *dice.Roller {
	var src dice.Source
	if a.cfg.Dice.Source == "seeded" {
		src = dice.NewSeededSource(a.cfg.Dice.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	return dice.NewLoggedRoller(src, a.logger)
}

// bestiary loads careers, items and entity templates from the content
// directories.
func (a *app) bestiary() (*entity.Bestiary, error) {
	careers, err := character.LoadCareers(a.cfg.Content.CareersDir)
	if err != nil {
		return nil, fmt.Errorf("loading careers: %w", err)
	}
	templates, err := inventory.LoadTemplates(a.cfg.Content.ItemsDir)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	items := inventory.NewRegistry()
	for _, t := range templates {
		if err := items.Register(t); err != nil {
			return nil, err
		}
	}
	entities, err := entity.LoadTemplates(a.cfg.Content.EntitiesDir)
	if err != nil {
		return nil, fmt.Errorf("loading entities: %w", err)
	}
	a.logger.Debug("content loaded",
		zap.Int("careers", len(careers)),
		zap.Int("items", len(templates)),
		zap.Int("entities", len(entities)),
	)
	return entity.NewBestiary(entities, character.NewCareers(careers), items), nil
}

// spawnPair spawns the two named entities with rng.
func (a *app) spawnPair(first, second string, rng progression.Roller) (*entity.Entity, *entity.Entity, error) {
	b, err := a.bestiary()
	if err != nil {
		return nil, nil, err
	}
	x, err := b.Spawn(first, rng)
	if err != nil {
		return nil, nil, err
	}
	y, err := b.Spawn(second, rng)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func parseSwing(name string) (combat.SwingStyle, error) {
	s, ok := combat.ParseSwing(name)
	if !ok {
		return combat.SwingNone, fmt.Errorf("%w: unknown swing %q", errUsage, name)
	}
	return s, nil
}

func (a *app) attack(args []string) error {
	fs := a.flags("attack")
	attacker := fs.String("attacker", "hero", "entity template of the attacker")
	target := fs.String("target", "rat", "entity template of the target")
	swingName := fs.String("swing", "none", "swing style: none, up, down, down_left, down_right")
	if err := fs.Parse(args); err != nil {
		return err
	}
	swing, err := parseSwing(*swingName)
	if err != nil {
		return err
	}

	rng := a.roller()
	x, y, err := a.spawnPair(*attacker, *target, rng)
	if err != nil {
		return err
	}
	rep, err := combat.NewResolver(rng, a.logger).ResolveAttack(x, y, swing)
	if err != nil {
		return err
	}

	switch {
	case rep.MaterialIneffective:
		fmt.Fprintf(a.out, "%s cannot harm %s with %s\n", x.Name, y.Name, weaponLabel(rep))
		return nil
	case !rep.Hit:
		fmt.Fprintf(a.out, "%s misses %s (%d%% to hit)\n", x.Name, y.Name, rep.HitChance)
		return nil
	}
	y.ApplyDamage(rep.Damage)
	fmt.Fprintf(a.out, "%s hits %s in the %s with %s for %d (%d%% to hit)\n",
		x.Name, y.Name, rep.BodyPart, weaponLabel(rep), rep.Damage, rep.HitChance)
	if rep.ExtraHits > 0 {
		fmt.Fprintf(a.out, "extra hits: %d\n", rep.ExtraHits)
	}
	for _, w := range rep.Wear {
		fmt.Fprintf(a.out, "%s loses %d condition (%s)\n", w.Item.Name, w.Lost, w.Item.ConditionLabel())
	}
	fmt.Fprintf(a.out, "%s: %d/%d health\n", y.Name, y.CurrentHealth, y.MaxHealth)
	return nil
}

func weaponLabel(rep combat.AttackReport) string {
	switch {
	case rep.Innate:
		return "natural weapons"
	case rep.Weapon == nil:
		return "bare hands"
	default:
		return rep.Weapon.Name
	}
}

func (a *app) simulate(ctx context.Context, args []string) error {
	fs := a.flags("simulate")
	attacker := fs.String("attacker", "hero", "entity template of the attacker")
	target := fs.String("target", "rat", "entity template of the target")
	swingName := fs.String("swing", "none", "swing style: none, up, down, down_left, down_right")
	trials := fs.Int("trials", a.cfg.Simulation.Trials, "number of attacks")
	workers := fs.Int("workers", a.cfg.Simulation.Workers, "parallel workers")
	seed := fs.Int64("seed", a.cfg.Dice.Seed, "base seed; worker w draws from seed+w")
	if err := fs.Parse(args); err != nil {
		return err
	}
	swing, err := parseSwing(*swingName)
	if err != nil {
		return err
	}
	x, y, err := a.spawnPair(*attacker, *target, dice.NewLoggedRoller(dice.NewSeededSource(*seed), a.logger))
	if err != nil {
		return err
	}

	rep, err := sim.RunDuel(ctx, sim.Duel{
		Attacker: x,
		Target:   y,
		Swing:    swing,
		Trials:   *trials,
		Workers:  *workers,
		Seed:     *seed,
	}, a.logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s vs %s over %d trials\n", x.Name, y.Name, rep.Trials)
	fmt.Fprintf(a.out, "hit rate     %.3f\n", rep.HitRate())
	fmt.Fprintf(a.out, "mean damage  %.3f\n", rep.MeanDamage())
	fmt.Fprintf(a.out, "max damage   %d\n", rep.MaxDamage)
	fmt.Fprintf(a.out, "ineffective  %d\n", rep.Ineffective)
	fmt.Fprintf(a.out, "total wear   %d\n", rep.Wear)
	for i, n := range rep.BodyParts {
		fmt.Fprintf(a.out, "  %-10s %d\n", inventory.BodyPart(i), n)
	}
	return nil
}

func (a *app) fight(ctx context.Context, args []string) error {
	fs := a.flags("fight")
	first := fs.String("a", "hero", "entity template of the first side")
	second := fs.String("b", "rat", "entity template of the second side")
	swingName := fs.String("swing", "none", "swing style: none, up, down, down_left, down_right")
	rounds := fs.Int("rounds", 50, "round limit per bout")
	trials := fs.Int("trials", 1, "number of bouts; 1 narrates the bout")
	workers := fs.Int("workers", a.cfg.Simulation.Workers, "parallel workers")
	seed := fs.Int64("seed", a.cfg.Dice.Seed, "base seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	swing, err := parseSwing(*swingName)
	if err != nil {
		return err
	}

	rng := dice.NewLoggedRoller(dice.NewSeededSource(*seed), a.logger)
	x, y, err := a.spawnPair(*first, *second, rng)
	if err != nil {
		return err
	}

	if *trials == 1 {
		res, err := combat.NewResolver(rng, a.logger).Bout(x, y, swing, *rounds)
		if err != nil {
			return err
		}
		for _, ev := range res.Events {
			fmt.Fprintf(a.out, "[%d] %s\n", ev.Round, ev.Narrative)
		}
		if res.Winner == nil {
			fmt.Fprintf(a.out, "no winner after %d rounds\n", res.Rounds)
		} else {
			fmt.Fprintf(a.out, "%s wins after %d rounds\n", res.Winner.Name, res.Rounds)
		}
		return nil
	}

	rep, err := sim.RunBouts(ctx, sim.Bouts{
		A:         x,
		B:         y,
		Swing:     swing,
		MaxRounds: *rounds,
		Trials:    *trials,
		Workers:   *workers,
		Seed:      *seed,
	}, a.logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s vs %s over %d bouts\n", x.Name, y.Name, rep.Trials)
	fmt.Fprintf(a.out, "%-12s %d\n", x.Name, rep.WinsA)
	fmt.Fprintf(a.out, "%-12s %d\n", y.Name, rep.WinsB)
	fmt.Fprintf(a.out, "%-12s %d\n", "draws", rep.Draws)
	fmt.Fprintf(a.out, "mean rounds  %.2f\n", rep.MeanRounds())
	return nil
}

func (a *app) estimator() (*travel.Estimator, error) {
	return travel.NewEstimator(travel.Multipliers{
		Cautious: a.cfg.Travel.CautiousMultiplier,
		Ship:     a.cfg.Travel.ShipMultiplier,
	})
}

func (a *app) trip(args []string) error {
	fs := a.flags("trip")
	land := fs.Float64("land", 0, "land travel time in minutes")
	water := fs.Float64("water", 0, "water travel time in minutes")
	cautious := fs.Bool("cautious", true, "travel cautiously")
	inn := fs.Bool("inn", true, "sleep at inns")
	foot := fs.Bool("foot", true, "travel on foot or horse instead of by ship")
	if err := fs.Parse(args); err != nil {
		return err
	}
	est, err := a.estimator()
	if err != nil {
		return err
	}
	q := est.Quote(travel.TripParameters{
		LandMinutes:  *land,
		WaterMinutes: *water,
		Cautious:     *cautious,
		SleepAtInn:   *inn,
		OnFoot:       *foot,
	})
	fmt.Fprintf(a.out, "inns         %d\n", q.Inn)
	fmt.Fprintf(a.out, "reckless     -%d\n", q.RecklessDiscount)
	fmt.Fprintf(a.out, "ship         %d\n", q.Ship)
	fmt.Fprintf(a.out, "total        %d gold\n", q.Total)
	return nil
}

func (a *app) holiday(args []string) error {
	fs := a.flags("holiday")
	minutes := fs.Uint("minutes", 0, "game time in minutes since the epoch")
	region := fs.Int("region", 0, "region index")
	if err := fs.Parse(args); err != nil {
		return err
	}
	now := calendar.DateTime{Minutes: uint32(*minutes)}
	fmt.Fprintln(a.out, now)
	if id := now.HolidayID(*region); id != 0 {
		fmt.Fprintf(a.out, "holiday %d\n", id)
	} else {
		fmt.Fprintln(a.out, "no holiday")
	}
	return nil
}

func (a *app) level(args []string) error {
	fs := a.flags("level")
	start := fs.Int("start", 0, "sum of the level-up skills at character creation")
	current := fs.Int("current", 0, "current sum of the level-up skills")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "level %d\n", progression.PlayerLevel(*start, *current))
	return nil
}

func (a *app) eval(args []string) error {
	fs := a.flags("eval")
	scope := fs.String("scope", scripting.GlobalScope, "script scope to evaluate in")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: eval needs an expression", errUsage)
	}
	est, err := a.estimator()
	if err != nil {
		return err
	}

	m := scripting.NewManager(a.roller(), est, a.logger)
	defer m.Close()
	limit := a.cfg.Scripting.InstructionLimit
	if a.cfg.Scripting.Dir != "" {
		err = m.LoadGlobal(a.cfg.Scripting.Dir, limit)
	} else {
		err = m.LoadString(scripting.GlobalScope, "", limit)
	}
	if err != nil {
		return err
	}

	v, err := m.Eval(*scope, strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v.String())
	return nil
}
