package combat

import (
	"fmt"
	"strings"

	"github.com/Dimillian/daggerfall-unity/internal/game/entity"
	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
)

// RoundEvent records what happened when one attack was resolved.
type RoundEvent struct {
	Round        int
	AttackerID   string
	AttackerName string
	TargetID     string
	TargetName   string
	Report       AttackReport
	// TargetHealth is the target's health after damage was applied.
	TargetHealth int
	Narrative    string
}

// BoutResult is the outcome of a bout.
type BoutResult struct {
	Events []RoundEvent
	Rounds int
	// Winner is nil when neither side fell within the round limit.
	Winner *entity.Entity
}

// ResolveRound has first attack second and, if second survives, second
// attack first. Damage is applied in place.
//
// Precondition: first and second must be non-nil and alive.
// Postcondition: Returns one or two events in striking order.
func (r *Resolver) ResolveRound(round int, first, second *entity.Entity, swing SwingStyle) ([]RoundEvent, error) {
	var events []RoundEvent
	for _, pair := range [2][2]*entity.Entity{{first, second}, {second, first}} {
		actor, target := pair[0], pair[1]
		if actor.IsDead() || target.IsDead() {
			continue
		}
		report, err := r.ResolveAttack(actor, target, swing)
		if err != nil {
			return events, fmt.Errorf("round %d, %s attacking %s: %w", round, actor.Name, target.Name, err)
		}
		target.ApplyDamage(report.Damage)
		events = append(events, RoundEvent{
			Round:        round,
			AttackerID:   actor.ID,
			AttackerName: actor.Name,
			TargetID:     target.ID,
			TargetName:   target.Name,
			Report:       report,
			TargetHealth: target.CurrentHealth,
			Narrative:    narrate(actor, target, report),
		})
	}
	return events, nil
}

// Bout exchanges attacks between a and b until one falls or maxRounds pass.
// Initiative is rolled once. swing applies to any player taking part.
//
// Precondition: a, b must be non-nil; maxRounds >= 1.
// Postcondition: Health and item conditions of a and b reflect every attack.
func (r *Resolver) Bout(a, b *entity.Entity, swing SwingStyle, maxRounds int) (BoutResult, error) {
	var result BoutResult
	first, second := RollInitiative(a, b, r.rng)
	for round := 1; round <= maxRounds; round++ {
		events, err := r.ResolveRound(round, first, second, swing)
		result.Events = append(result.Events, events...)
		result.Rounds = round
		if err != nil {
			return result, err
		}
		switch {
		case second.IsDead():
			result.Winner = first
			return result, nil
		case first.IsDead():
			result.Winner = second
			return result, nil
		}
	}
	return result, nil
}

func narrate(actor, target *entity.Entity, rep AttackReport) string {
	with := "bare hands"
	if rep.Weapon != nil {
		with = rep.Weapon.Name
	} else if !actor.IsPlayer() {
		with = "natural attack"
	}
	if rep.MaterialIneffective {
		return fmt.Sprintf("%s's %s cannot harm %s.", actor.Name, with, target.Name)
	}
	if rep.Damage == 0 {
		if rep.Hit {
			return fmt.Sprintf("%s strikes %s with %s but does no harm.", actor.Name, target.Name, with)
		}
		return fmt.Sprintf("%s attacks %s with %s and misses.", actor.Name, target.Name, with)
	}
	slot, _ := inventory.SlotForBodyPart(rep.BodyPart)
	return fmt.Sprintf("%s hits %s in the %s with %s for %d.", actor.Name, target.Name, strings.ToLower(slot.String()), with, rep.Damage)
}
