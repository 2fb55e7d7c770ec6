package combat

import (
	"github.com/Dimillian/daggerfall-unity/internal/game/attribute"
	"github.com/Dimillian/daggerfall-unity/internal/game/entity"
)

// RollInitiative decides who strikes first in a bout.
// Formula: [1, 20] + Speed/10 for each side; ties go to a.
//
// Precondition: a, b and rng must be non-nil.
// Postcondition: Returns a and b in striking order.
func RollInitiative(a, b *entity.Entity, rng Roller) (first, second *entity.Entity) {
	ia := rng.Range(1, 20) + attribute.FloorDiv(a.Stats.Speed, 10)
	ib := rng.Range(1, 20) + attribute.FloorDiv(b.Stats.Speed, 10)
	if ib > ia {
		return b, a
	}
	return a, b
}
