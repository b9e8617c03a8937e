package item

import "fmt"

// Weapon damage is a uniform roll in [MinDamage, MaxDamage). MinDamage
// is zero for every stock weapon, so even a katana can glance off.

// NewBareHands creates the weapon every creature is born with.
func NewBareHands(maxDamage int) *Item {
	return &Item{kind: KindWeapon, name: "BareHands", flavor: "Bare hands", maxDamage: maxDamage}
}

// NewDagger creates a dagger: light, modest damage.
func NewDagger() *Item {
	return &Item{kind: KindWeapon, name: "Dagger", flavor: "Short but deadly", maxDamage: 10, weight: 4}
}

// NewBattleAxe creates a battle axe.
func NewBattleAxe() *Item {
	return &Item{kind: KindWeapon, name: "BattleAxe", flavor: "A battle axe", maxDamage: 15, weight: 15}
}

// NewBroadSword creates a broad sword, heavy and hard hitting.
func NewBroadSword() *Item {
	return &Item{kind: KindWeapon, name: "BroadSword", flavor: "BroadSword", maxDamage: 14, weight: 20}
}

// NewBow creates a bow.
func NewBow() *Item {
	return &Item{kind: KindWeapon, name: "Bow", flavor: "Bow", maxDamage: 12, weight: 9}
}

// NewStaff creates a staff: the weakest real weapon.
func NewStaff() *Item {
	return &Item{kind: KindWeapon, name: "Staff", flavor: "Staff", maxDamage: 6, weight: 5}
}

// NewKatana creates the best blade in the maze.
func NewKatana() *Item {
	return &Item{kind: KindWeapon, name: "Katana", flavor: "A finely honed katana", maxDamage: 20, weight: 8}
}

// NewWeapon creates a stock weapon by name. Used by world generation
// when weapon lists come from content files.
func NewWeapon(name string) (*Item, error) {
	switch name {
	case "Dagger":
		return NewDagger(), nil
	case "BattleAxe":
		return NewBattleAxe(), nil
	case "BroadSword":
		return NewBroadSword(), nil
	case "Bow":
		return NewBow(), nil
	case "Staff":
		return NewStaff(), nil
	case "Katana":
		return NewKatana(), nil
	}
	return nil, fmt.Errorf("unknown weapon %q", name)
}
