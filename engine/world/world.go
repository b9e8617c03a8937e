// Package world models the maze: the board of tiles, the rooms and
// walls that make it up, and the features found inside rooms.
package world

import (
	"fmt"
	"strings"

	"github.com/jboenig/AdventureGame/engine/entity"
	"github.com/jboenig/AdventureGame/engine/item"
	"github.com/jboenig/AdventureGame/host"
)

// Tile is a single location on the board.
type Tile interface {
	// Glyph is the single character the tile shows on the map.
	Glyph() string
	CanExit(c *entity.Character) bool
	Exit(c *entity.Character)
	CanEnter(c *entity.Character) bool
	Enter(c *entity.Character)
	IsAccessible(c *entity.Character) bool
	HasVisited(c *entity.Character) bool
}

// Wall is an impassable tile.
type Wall struct{}

func (Wall) Glyph() string                       { return "X" }
func (Wall) CanExit(*entity.Character) bool      { return false }
func (Wall) Exit(*entity.Character)              {}
func (Wall) CanEnter(*entity.Character) bool     { return false }
func (Wall) Enter(*entity.Character)             {}
func (Wall) IsAccessible(*entity.Character) bool { return false }
func (Wall) HasVisited(*entity.Character) bool   { return false }

// Room is a tile characters can occupy. It holds loose items, resident
// characters, fixed features, and remembers everyone who ever stepped
// inside.
type Room struct {
	name       string
	items      []*item.Item
	characters []*entity.Character
	features   []Feature
	visitors   []*entity.Character
}

// NewRoom creates an empty room.
func NewRoom(name string) *Room {
	return &Room{name: name}
}

func (r *Room) Name() string        { return r.name }
func (r *Room) SetName(name string) { r.name = name }

func (r *Room) Glyph() string {
	if len(r.Portals()) > 0 {
		return "?"
	}
	return " "
}

// CanEnter checks that the character and its whole retinue may enter.
func (r *Room) CanEnter(c *entity.Character) bool {
	for _, f := range c.Followers() {
		if !r.CanEnter(f) {
			return false
		}
	}
	return true
}

// Enter places the character and its followers in the room.
func (r *Room) Enter(c *entity.Character) {
	if !containsCharacter(r.visitors, c) {
		r.visitors = append(r.visitors, c)
	}
	if !containsCharacter(r.characters, c) {
		r.characters = append(r.characters, c)
	}
	for _, f := range c.Followers() {
		r.Enter(f)
	}
}

// CanExit checks that the character and its whole retinue may leave.
func (r *Room) CanExit(c *entity.Character) bool {
	for _, f := range c.Followers() {
		if !r.CanExit(f) {
			return false
		}
	}
	return true
}

// Exit removes the character and its followers from the room.
func (r *Room) Exit(c *entity.Character) {
	for i, cur := range r.characters {
		if cur == c {
			r.characters = append(r.characters[:i], r.characters[i+1:]...)
			break
		}
	}
	for _, f := range c.Followers() {
		r.Exit(f)
	}
}

func (r *Room) IsAccessible(*entity.Character) bool { return true }

func (r *Room) HasVisited(c *entity.Character) bool {
	return containsCharacter(r.visitors, c)
}

func (r *Room) Items() []*item.Item { return r.items }

func (r *Room) AddItem(it *item.Item) {
	r.items = append(r.items, it)
}

func (r *Room) RemoveItem(it *item.Item) {
	for i, cur := range r.items {
		if cur == it {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

func (r *Room) Characters() []*entity.Character { return r.characters }

// AddCharacter places a character in the room without the visit
// bookkeeping that Enter does. World generation uses it to seed rooms.
func (r *Room) AddCharacter(c *entity.Character) {
	r.characters = append(r.characters, c)
}

func (r *Room) Features() []Feature { return r.features }

func (r *Room) AddFeature(f Feature) {
	r.features = append(r.features, f)
}

// Portals returns the portals among the room's features.
func (r *Room) Portals() []*Portal {
	var out []*Portal
	for _, f := range r.features {
		if p, ok := f.(*Portal); ok {
			out = append(out, p)
		}
	}
	return out
}

// Player returns the player character if present in the room.
func (r *Room) Player() *entity.Character {
	for _, c := range r.characters {
		if c.Kind() == entity.KindPlayer {
			return c
		}
	}
	return nil
}

// CharacterByName finds a character by name, checking current
// occupants first and past visitors second.
func (r *Room) CharacterByName(name string) *entity.Character {
	if name == "" {
		return nil
	}
	for _, c := range r.characters {
		if strings.EqualFold(c.Name(), name) {
			return c
		}
	}
	for _, c := range r.visitors {
		if strings.EqualFold(c.Name(), name) {
			return c
		}
	}
	return nil
}

// Enemies returns every enemy in the room, dead or alive.
func (r *Room) Enemies() []*entity.Character {
	var out []*entity.Character
	for _, c := range r.characters {
		if c.Kind() == entity.KindEnemy {
			out = append(out, c)
		}
	}
	return out
}

// LiveCharacters returns the room's occupants still standing.
func (r *Room) LiveCharacters() []*entity.Character {
	var out []*entity.Character
	for _, c := range r.characters {
		if !c.IsDead() {
			out = append(out, c)
		}
	}
	return out
}

// DeadCharacters returns the room's corpses.
func (r *Room) DeadCharacters() []*entity.Character {
	var out []*entity.Character
	for _, c := range r.characters {
		if c.IsDead() {
			out = append(out, c)
		}
	}
	return out
}

// TakeItemByName finds the named item in the room. Loose items are
// matched but left in place so the caller can hand them to the player
// and only then remove them. Features and characters that provide
// items surrender theirs as part of the lookup; ReturnItem puts an
// item back if the hand-off falls through.
func (r *Room) TakeItemByName(name string) *item.Item {
	for _, it := range r.items {
		if strings.EqualFold(it.Name(), name) {
			return it
		}
	}

	for _, f := range r.features {
		if p, ok := f.(ItemProvider); ok {
			if it := p.TakeItemByName(name); it != nil {
				return it
			}
		}
	}

	for _, c := range r.characters {
		if it := c.TakeItemByName(name); it != nil {
			return it
		}
	}

	return nil
}

// ReturnItem puts an item back on the room floor.
func (r *Room) ReturnItem(it *item.Item) {
	r.AddItem(it)
}

// Describe prints the room's contents. The player and its followers
// are left out of the character listing.
func (r *Room) Describe(out host.Output, player *entity.Character) {
	out.Println("")
	out.Println(fmt.Sprintf("You are in the %s room", r.name))

	empty := true

	if len(r.features) > 0 {
		empty = false
		out.Println("")
		out.Println("This room contains the following features:")
		for _, f := range r.features {
			out.Println(fmt.Sprintf("   %s - %s", f.Name(), f.Description()))
		}
	}

	if len(r.items) > 0 {
		empty = false
		out.Println("")
		out.Println("This room contains the following items:")
		for _, it := range r.items {
			out.Println(fmt.Sprintf("   %s - %s", it.Name(), it.Description()))
		}
	}

	skip := map[*entity.Character]bool{}
	if player != nil {
		skip[player] = true
		for _, f := range player.Followers() {
			skip[f] = true
		}
	}

	var live, dead []*entity.Character
	for _, c := range r.characters {
		if skip[c] {
			continue
		}
		if c.IsDead() {
			dead = append(dead, c)
		} else {
			live = append(live, c)
		}
	}

	if len(live) > 0 {
		empty = false
		out.Println("")
		out.Println("This room contains the following characters:")
		for _, c := range live {
			out.Println(fmt.Sprintf("   %s - %s", c.Name(), c.Description()))
		}
	}

	if len(dead) > 0 {
		empty = false
		out.Println("")
		out.Println("This room contains the following corpses:")
		for _, c := range dead {
			out.Println(fmt.Sprintf("   %s - %s", c.Name(), c.Description()))
		}
	}

	if empty {
		out.Println("Emptiness everywhere you look! Depressing, isn't it?")
	}
}

func containsCharacter(list []*entity.Character, c *entity.Character) bool {
	for _, cur := range list {
		if cur == c {
			return true
		}
	}
	return false
}
