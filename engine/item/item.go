// Package item implements the inventory item model: a closed set of item
// variants sharing one record, plus the ordered Inventory that owns them.
package item

import "fmt"

// Kind discriminates the item variants.
type Kind int

const (
	KindWeapon Kind = iota
	KindFlask
	KindWater
	KindCoinPurse
	KindGoldCoin
	KindRune
	KindPowerUp
)

// Item is a single inventory item. Shared fields live directly on the
// struct; variant fields are only meaningful for one Kind and are zero
// otherwise. Items carry no back-pointer to their container — ownership
// and the "in use" mark live in Inventory.
type Item struct {
	kind Kind
	name string

	// weapon
	flavor    string
	minDamage int
	maxDamage int
	weight    int

	// flask
	pctFull int

	// coin purse
	balance int

	// gold coin
	value int

	// rune
	text string

	// power up
	healthPoints int
}

// Kind returns the item variant.
func (it *Item) Kind() Kind { return it.kind }

// Name returns the item's display name.
func (it *Item) Name() string { return it.name }

// Description is computed from the item's current state, e.g. a flask
// reports its fill percentage and a purse its balance.
func (it *Item) Description() string {
	switch it.kind {
	case KindWeapon:
		return fmt.Sprintf("%s - %d hit points", it.flavor, it.maxDamage)
	case KindFlask:
		return fmt.Sprintf("%d percent full", it.pctFull)
	case KindWater:
		return "Wonderful, clear, clean water"
	case KindCoinPurse:
		return fmt.Sprintf("worth %d", it.balance)
	case KindGoldCoin:
		return "Shiny gold coin"
	case KindRune:
		return "A rune containing a cryptic message"
	case KindPowerUp:
		return fmt.Sprintf("%d health point power up", it.healthPoints)
	}
	return ""
}

// Weight returns the item's weight in pounds. A flask weighs more the
// fuller it is.
func (it *Item) Weight() int {
	if it.kind == KindFlask {
		switch {
		case it.pctFull > 75:
			return 4
		case it.pctFull > 50:
			return 3
		case it.pctFull > 25:
			return 2
		}
		return 1
	}
	return it.weight
}

// TakeMessage is the line printed when the player picks the item up.
func (it *Item) TakeMessage() string {
	switch it.kind {
	case KindWeapon:
		return fmt.Sprintf("You now have a %s. Don't hurt yourself with it!", it.name)
	case KindFlask:
		return "You now have a flask"
	case KindWater:
		return "You now have some water"
	case KindCoinPurse:
		return "You now have a purse in which to put gold coins"
	case KindGoldCoin:
		return fmt.Sprintf("You now have gold coins worth %d", it.value)
	case KindRune:
		return "You now have a rune. You might want to figure out what it means."
	case KindPowerUp:
		return fmt.Sprintf("You have a power up for %d health points", it.healthPoints)
	}
	return fmt.Sprintf("You now have a %s", it.name)
}

// MinDamage returns the weapon's minimum damage (zero for non-weapons).
func (it *Item) MinDamage() int { return it.minDamage }

// MaxDamage returns the weapon's exclusive damage bound.
func (it *Item) MaxDamage() int { return it.maxDamage }

// FillPct returns a flask's fill percentage.
func (it *Item) FillPct() int { return it.pctFull }

// Drink removes qty percent from a flask. Returns false if the flask
// holds less than qty.
func (it *Item) Drink(qty int) bool {
	if it.kind != KindFlask || it.pctFull < qty {
		return false
	}
	it.pctFull -= qty
	return true
}

// Balance returns a coin purse's accumulated value.
func (it *Item) Balance() int { return it.balance }

// Value returns a gold coin's worth.
func (it *Item) Value() int { return it.value }

// Text returns a rune's inscription.
func (it *Item) Text() string { return it.text }

// HealthPoints returns a power up's benefit.
func (it *Item) HealthPoints() int { return it.healthPoints }

// IsReceiver reports whether the item can absorb other items
// (flask takes water, purse takes coins).
func (it *Item) IsReceiver() bool {
	return it.kind == KindFlask || it.kind == KindCoinPurse
}

// Receive offers an incoming item to this one. On success the incoming
// item is consumed (its contents merged into the receiver). On failure
// the message explains the mismatch.
func (it *Item) Receive(incoming *Item) (bool, string) {
	switch it.kind {
	case KindFlask:
		if incoming.kind == KindWater {
			it.pctFull += flaskPctPerWater
			if it.pctFull > 100 {
				it.pctFull = 100
			}
			return true, ""
		}
		return false, fmt.Sprintf("You cannot put a %s in a flask", incoming.name)
	case KindCoinPurse:
		if incoming.kind == KindGoldCoin {
			it.balance += incoming.value
			return true, ""
		}
		return false, fmt.Sprintf("You cannot put a %s in a coin purse", incoming.name)
	}
	return false, ""
}

// flaskPctPerWater is how much one unit of water fills a flask.
const flaskPctPerWater = 25

// NewFlask creates a half-full flask.
func NewFlask() *Item {
	return &Item{kind: KindFlask, name: "Flask", pctFull: 50}
}

// NewWater creates a unit of water.
func NewWater() *Item {
	return &Item{kind: KindWater, name: "Water", weight: 1}
}

// NewCoinPurse creates an empty purse.
func NewCoinPurse() *Item {
	return &Item{kind: KindCoinPurse, name: "Purse", weight: 5}
}

// NewGoldCoin creates coins worth the given value.
func NewGoldCoin(value int) *Item {
	return &Item{kind: KindGoldCoin, name: "GoldCoin", value: value}
}

// NewRune creates a named rune carrying an inscription.
func NewRune(name, text string) *Item {
	return &Item{kind: KindRune, name: name, text: text}
}

// NewPowerUp creates a 10-point health power up.
func NewPowerUp() *Item {
	return &Item{kind: KindPowerUp, name: "PowerUp", healthPoints: 10}
}

// RuneBag is an ordered, consumable sequence of runes used while
// populating the world to hand out password hints. FIFO: UseNext
// removes and returns the oldest rune.
type RuneBag struct {
	runes []*Item
}

// Add appends a rune to the bag.
func (b *RuneBag) Add(r *Item) {
	b.runes = append(b.runes, r)
}

// Len returns the number of runes remaining.
func (b *RuneBag) Len() int { return len(b.runes) }

// UseNext removes and returns the first rune, or nil if the bag is empty.
func (b *RuneBag) UseNext() *Item {
	if len(b.runes) == 0 {
		return nil
	}
	r := b.runes[0]
	b.runes = b.runes[1:]
	return r
}
