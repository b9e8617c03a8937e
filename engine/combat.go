package engine

import (
	"errors"

	"github.com/jboenig/AdventureGame/engine/entity"
	"github.com/jboenig/AdventureGame/engine/item"
)

// Attack resolves a single strike. The attacker swings whatever weapon
// it has readied; with exactly one weapon in the inventory that weapon
// is readied automatically, otherwise the attacker must have chosen
// one first. Damage is rolled in [MinDamage, MaxDamage) and applied to
// the target, whose health clamps at zero.
//
// The returned damage is the rolled value; callers that report damage
// dealt should diff the target's health so the number never exceeds
// what the target had left.
func Attack(attacker, target *entity.Character, rng *RNG) (int, error) {
	weapon := attacker.Inventory().UseKind(item.KindWeapon)
	if weapon == nil {
		return 0, errors.New("You have no weapon selected")
	}
	damage := rng.IntRange(weapon.MinDamage(), weapon.MaxDamage())
	target.ReduceHealth(damage)
	return damage, nil
}
