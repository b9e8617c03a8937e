package item

import (
	"errors"
	"fmt"
	"strings"
)

// Inventory is an ordered sequence of items owned by a character or room.
// The "item in use" is tracked as an index into the sequence rather than
// a pointer, so removing an item can never leave a dangling reference:
// the index is cleared or shifted atomically with the removal.
type Inventory struct {
	items []*Item
	inUse int // index into items, -1 when nothing is in use

	// onUseChanged fires after the in-use item changes, with the
	// previous and new items (either may be nil). Consumed by
	// presentation layers; the core never depends on it.
	onUseChanged func(prev, cur *Item)
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{inUse: -1}
}

// OnUseChanged registers the use-changed callback.
func (v *Inventory) OnUseChanged(fn func(prev, cur *Item)) {
	v.onUseChanged = fn
}

// Items returns the items in insertion order. Callers must not mutate
// the returned slice.
func (v *Inventory) Items() []*Item {
	return v.items
}

// Len returns the number of items held.
func (v *Inventory) Len() int { return len(v.items) }

// Add appends an item. Fails only on a nil item.
func (v *Inventory) Add(it *Item) error {
	if it == nil {
		return errors.New("item is nil")
	}
	v.items = append(v.items, it)
	return nil
}

// Remove detaches the first item whose name matches (case-insensitive).
// If the removed item was in use, the in-use mark is cleared in the same
// step. Returns an error when no item matches.
func (v *Inventory) Remove(name string) error {
	idx := v.indexOf(name)
	if idx == -1 {
		return fmt.Errorf("you don't have one of those to drop")
	}
	if v.inUse == idx {
		v.setInUse(-1)
	} else if v.inUse > idx {
		v.inUse--
	}
	v.items = append(v.items[:idx], v.items[idx+1:]...)
	return nil
}

// Find returns the first item matching the name (case-insensitive),
// or nil.
func (v *Inventory) Find(name string) *Item {
	if idx := v.indexOf(name); idx != -1 {
		return v.items[idx]
	}
	return nil
}

// OfKind returns all items of the given kind, in inventory order.
func (v *Inventory) OfKind(k Kind) []*Item {
	var out []*Item
	for _, it := range v.items {
		if it.kind == k {
			out = append(out, it)
		}
	}
	return out
}

// CountKind returns how many items of the kind are held.
func (v *Inventory) CountKind(k Kind) int {
	return len(v.OfKind(k))
}

// InUse returns the item currently in use, or nil.
func (v *Inventory) InUse() *Item {
	if v.inUse == -1 {
		return nil
	}
	return v.items[v.inUse]
}

// InUseOfKind returns the in-use item only if it has the given kind.
func (v *Inventory) InUseOfKind(k Kind) *Item {
	it := v.InUse()
	if it != nil && it.kind == k {
		return it
	}
	return nil
}

// IsInUse reports whether the given item is the one in use.
func (v *Inventory) IsInUse(it *Item) bool {
	return it != nil && v.InUse() == it
}

// UseKind selects an item of the given kind as the item in use, with no
// name to disambiguate. If the in-use item already has the kind it is
// returned unchanged. Otherwise, when exactly one item of the kind is
// held it becomes the item in use; with zero or several matches nothing
// changes and nil is returned — the caller must ask for a name.
func (v *Inventory) UseKind(k Kind) *Item {
	if it := v.InUseOfKind(k); it != nil {
		return it
	}
	matchIdx := -1
	for i, it := range v.items {
		if it.kind != k {
			continue
		}
		if matchIdx != -1 {
			return nil // ambiguous
		}
		matchIdx = i
	}
	if matchIdx == -1 {
		return nil
	}
	v.setInUse(matchIdx)
	return v.items[matchIdx]
}

// UseNamed selects the named item (any kind) as the item in use.
// Returns nil if the name is not held.
func (v *Inventory) UseNamed(name string) *Item {
	idx := v.indexOf(name)
	if idx == -1 {
		return nil
	}
	v.setInUse(idx)
	return v.items[idx]
}

// UseNamedKind selects the named item only when it has the given kind.
func (v *Inventory) UseNamedKind(name string, k Kind) *Item {
	idx := v.indexOf(name)
	if idx == -1 || v.items[idx].kind != k {
		return nil
	}
	v.setInUse(idx)
	return v.items[idx]
}

// TotalWeight sums the weight of every item held.
func (v *Inventory) TotalWeight() int {
	total := 0
	for _, it := range v.items {
		total += it.Weight()
	}
	return total
}

func (v *Inventory) indexOf(name string) int {
	for i, it := range v.items {
		if strings.EqualFold(it.name, name) {
			return i
		}
	}
	return -1
}

func (v *Inventory) setInUse(idx int) {
	prev := v.InUse()
	v.inUse = idx
	cur := v.InUse()
	if v.onUseChanged != nil && prev != cur {
		v.onUseChanged(prev, cur)
	}
}
