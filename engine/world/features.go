package world

import (
	"strings"

	"github.com/jboenig/AdventureGame/engine/item"
)

// Feature is a fixed part of a room.
type Feature interface {
	Name() string
	Description() string
}

// ItemProvider is a feature that hands out items on request.
type ItemProvider interface {
	TakeItemByName(name string) *item.Item
}

// DeadPool is a pool of stagnant water. It looks just like a water
// pool but yields nothing.
type DeadPool struct{}

func (DeadPool) Name() string { return "Pool" }

func (DeadPool) Description() string {
	return "A pool of water that may or may not be healthy to drink"
}

// WaterPool is an endless source of fresh water.
type WaterPool struct{}

func (WaterPool) Name() string { return "Pool" }

func (WaterPool) Description() string {
	return "A pool of clear water"
}

func (WaterPool) TakeItemByName(name string) *item.Item {
	if strings.EqualFold(name, "water") {
		return item.NewWater()
	}
	return nil
}

// TreasureChest holds gold that can be taken exactly once.
type TreasureChest struct {
	value int
}

func NewTreasureChest(value int) *TreasureChest {
	return &TreasureChest{value: value}
}

func (c *TreasureChest) Name() string { return "TreasureChest" }

func (c *TreasureChest) Description() string {
	return "A chest containing gold and other valuable items"
}

func (c *TreasureChest) Value() int { return c.value }

func (c *TreasureChest) TakeItemByName(name string) *item.Item {
	if !strings.EqualFold(name, "gold") || c.value == 0 {
		return nil
	}
	coin := item.NewGoldCoin(c.value)
	c.value = 0
	return coin
}

// Skeleton clutches a single rune until someone pries it loose.
type Skeleton struct {
	rune *item.Item
}

func NewSkeleton(r *item.Item) *Skeleton {
	return &Skeleton{rune: r}
}

func (s *Skeleton) Name() string { return "Skeleton" }

func (s *Skeleton) Description() string {
	return "A skeleton in the corner of the room - a rune in its bony hand"
}

func (s *Skeleton) TakeItemByName(name string) *item.Item {
	if !strings.EqualFold(name, "rune") {
		return nil
	}
	r := s.rune
	s.rune = nil
	return r
}
