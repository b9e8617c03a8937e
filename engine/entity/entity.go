// Package entity implements the characters that populate the maze:
// the player, enemies, friends, and neutral bystanders. A character
// owns an inventory, a health score, and a position on the board.
package entity

import (
	"fmt"

	"github.com/jboenig/AdventureGame/engine/convo"
	"github.com/jboenig/AdventureGame/engine/grid"
	"github.com/jboenig/AdventureGame/engine/item"
	"github.com/jboenig/AdventureGame/host"
)

// Kind discriminates the character variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindFriend
	KindNeutral
)

// MaxHealth is the ceiling every character's health is clamped to.
const MaxHealth = 100

// PlayerCarryLimit is the total weight in pounds a player can carry.
const PlayerCarryLimit = 30

// Reaction decides how a character responds to something said in a
// conversation it is part of. Reactions are assembled by the dialogue
// package from content definitions.
type Reaction func(self *Character, c *convo.Conversation, from convo.Participant, text string)

// Leader is anyone that characters can fall in behind.
type Leader interface {
	Follow(*Character)
}

// Character is a single inhabitant of the maze. The zero value is not
// usable; construct with NewPlayer, NewEnemy, NewFriend, or NewNeutral.
type Character struct {
	kind   Kind
	name   string
	desc   string
	health int
	pos    grid.Position
	inv    *item.Inventory
	out    host.Output

	maxCarry int
	// provider marks characters that hand over items while alive.
	// Enemies always provide, but only once they are dead.
	provider bool

	react     Reaction
	followers []*Character

	onHealthChanged []func(health int)
}

func newCharacter(kind Kind, name, desc string) *Character {
	return &Character{
		kind:   kind,
		name:   name,
		desc:   desc,
		health: MaxHealth,
		pos:    grid.Undefined,
		inv:    item.NewInventory(),
	}
}

// NewPlayer creates the player character. The player starts nameless
// and carries at most PlayerCarryLimit pounds.
func NewPlayer(out host.Output) *Character {
	p := newCharacter(KindPlayer, "", "")
	p.out = out
	p.maxCarry = PlayerCarryLimit
	return p
}

// NewEnemy creates a hostile character armed with its bare hands.
// Dead enemies give up their inventory to whoever searches them.
func NewEnemy(name, desc string, bareHandsDamage int) *Character {
	e := newCharacter(KindEnemy, name, desc)
	e.inv.Add(item.NewBareHands(bareHandsDamage))
	return e
}

// NewFriend creates a friendly character.
func NewFriend(name, desc string) *Character {
	return newCharacter(KindFriend, name, desc)
}

// NewNeutral creates a character that is neither friend nor foe.
func NewNeutral(name, desc string) *Character {
	return newCharacter(KindNeutral, name, desc)
}

func (c *Character) Kind() Kind          { return c.kind }
func (c *Character) Name() string        { return c.name }
func (c *Character) Description() string { return c.desc }
func (c *Character) Health() int         { return c.health }

// SetName names the character. Players pick their name when the game
// starts.
func (c *Character) SetName(name string) { c.name = name }

// Position returns the character's location on the board.
func (c *Character) Position() grid.Position { return c.pos }

// SetPosition moves the character without any exit or entry checks.
func (c *Character) SetPosition(p grid.Position) { c.pos = p }

// Inventory returns the character's inventory.
func (c *Character) Inventory() *item.Inventory { return c.inv }

// IsDead reports whether the character's health has run out.
func (c *Character) IsDead() bool { return c.health <= 0 }

// OnHealthChanged registers a callback fired after every health change.
func (c *Character) OnHealthChanged(fn func(health int)) {
	c.onHealthChanged = append(c.onHealthChanged, fn)
}

// ReduceHealth lowers health by amount, stopping at zero.
func (c *Character) ReduceHealth(amount int) {
	c.health -= amount
	if c.health < 0 {
		c.health = 0
	}
	c.fireHealthChanged()
}

// RestoreHealth raises health by amount, stopping at MaxHealth.
func (c *Character) RestoreHealth(amount int) {
	c.health += amount
	if c.health > MaxHealth {
		c.health = MaxHealth
	}
	c.fireHealthChanged()
}

func (c *Character) fireHealthChanged() {
	for _, fn := range c.onHealthChanged {
		fn(c.health)
	}
}

// CarriedWeight returns the total weight of the inventory in pounds.
func (c *Character) CarriedWeight() int { return c.inv.TotalWeight() }

// ReceiveItem takes ownership of an item. Items in the inventory that
// can absorb the incoming item get first refusal, so water tops up a
// carried flask instead of occupying its own slot. Otherwise the item
// goes into the inventory directly, subject to a one-of-each rule and
// the carry limit.
func (c *Character) ReceiveItem(it *item.Item) error {
	if it == nil {
		return fmt.Errorf("no item to receive")
	}

	for _, cur := range c.inv.Items() {
		if !cur.IsReceiver() {
			continue
		}
		if ok, _ := cur.Receive(it); ok {
			return nil
		}
	}

	if c.inv.Find(it.Name()) != nil {
		return fmt.Errorf("You already have one of those")
	}

	if c.maxCarry > 0 {
		excess := it.Weight() + c.CarriedWeight() - c.maxCarry
		if excess > 0 {
			return fmt.Errorf("Item is %d pounds too heavy. You need to drop something in order to carry it.", excess)
		}
	}

	return c.inv.Add(it)
}

// SetProvider marks the character as willing to hand items over while
// alive. Friends that carry runes for the player are providers.
func (c *Character) SetProvider(v bool) { c.provider = v }

// TakeItemByName removes and returns the named item, if this character
// gives items up. Enemies only yield their possessions once dead;
// providers yield theirs any time. Everyone else returns nil.
func (c *Character) TakeItemByName(name string) *item.Item {
	switch {
	case c.kind == KindEnemy:
		if !c.IsDead() {
			return nil
		}
	case c.provider:
		// fine while alive
	default:
		return nil
	}

	it := c.inv.Find(name)
	if it == nil {
		return nil
	}
	if err := c.inv.Remove(name); err != nil {
		return nil
	}
	return it
}

// SetReaction installs the character's conversational behavior.
func (c *Character) SetReaction(r Reaction) { c.react = r }

// CanConverse reports whether talking to this character can go
// anywhere. Players always can; everyone else needs a reaction.
func (c *Character) CanConverse() bool {
	return c.kind == KindPlayer || c.react != nil
}

// Hear implements convo.Participant. The player sees the line printed;
// other characters consult their reaction, if any.
func (c *Character) Hear(conv *convo.Conversation, from convo.Participant, text string) {
	if c.kind == KindPlayer {
		if c.out != nil {
			c.out.Println(fmt.Sprintf("%s says - %s", from.Name(), text))
		}
		return
	}
	if c.react != nil {
		c.react(c, conv, from, text)
	}
}

// Follow adds a character to this one's retinue. Followers tag along
// whenever their leader changes rooms.
func (c *Character) Follow(f *Character) {
	for _, cur := range c.followers {
		if cur == f {
			return
		}
	}
	c.followers = append(c.followers, f)
}

// Followers returns the characters following this one.
func (c *Character) Followers() []*Character { return c.followers }
