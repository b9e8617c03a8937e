// Package worldgen assembles game boards from content definitions.
// Maze layout, feature placement and character placement all draw from
// a single RNG, so a seed reproduces the same world exactly.
package worldgen

import (
	"fmt"
	"strings"

	"github.com/jboenig/AdventureGame/engine"
	"github.com/jboenig/AdventureGame/engine/dialogue"
	"github.com/jboenig/AdventureGame/engine/entity"
	"github.com/jboenig/AdventureGame/engine/grid"
	"github.com/jboenig/AdventureGame/engine/item"
	"github.com/jboenig/AdventureGame/engine/world"
	"github.com/jboenig/AdventureGame/host"
)

const (
	defaultRows = 24
	defaultCols = 24

	escapeAttempts = 3
)

// Rune inscriptions are dealt starting at index 1, so the first name
// in the list never appears on a rune.
var runeNames = []string{
	"Fehu",
	"Wunjo",
	"Raido",
	"Naudiz",
	"Ehwaz",
	"Dagaz",
	"Ansuz",
	"Gebo",
}

// Builder builds boards and players from loaded content definitions.
// It satisfies the engine's builder contract.
type Builder struct {
	defs *Defs
}

// New creates a builder over the given definitions.
func New(defs *Defs) *Builder {
	return &Builder{defs: defs}
}

// Title returns the game title from the definitions.
func (b *Builder) Title() string { return b.defs.Game.Title }

// BuildPlayer creates the player with the standard starting kit.
func (b *Builder) BuildPlayer(out host.Output) *entity.Character {
	p := entity.NewPlayer(out)
	p.ReceiveItem(item.NewFlask())
	p.ReceiveItem(item.NewCoinPurse())
	p.ReceiveItem(item.NewDagger())
	return p
}

// BuildBoard carves the maze and populates it with features, weapons
// and characters. All randomness comes from rng.
func (b *Builder) BuildBoard(rng *engine.RNG) *world.Board {
	rows := b.defs.Game.Rows
	cols := b.defs.Game.Cols
	if rows <= 0 {
		rows = defaultRows
	}
	if cols <= 0 {
		cols = defaultCols
	}

	g := &generator{
		defs:  b.defs,
		rng:   rng,
		board: world.NewBoard(rows, cols, grid.At(rows-1, cols/2)),
	}
	g.carve()
	g.rooms[0].SetName("Start")

	runes := g.placeFeatures()
	g.placeWeapons()
	g.placeCharacters(runes)

	return g.board
}

// generator holds the in-progress board plus the carved rooms in
// carve order, so random placement can index into them.
type generator struct {
	defs  *Defs
	rng   *engine.RNG
	board *world.Board
	rooms []*world.Room
	at    []grid.Position
}

func (g *generator) carve() {
	name := strings.ToLower(g.defs.Game.Map)
	switch name {
	case "singlecorridor":
		g.carveSingleCorridor()
	case "crosspattern":
		g.carveSingleCorridor()
		g.carveRow(g.board.Start().Row/2, 1, g.board.Cols()-1)
	case "crosswithsquare":
		g.carveCrossWithSquare()
	default:
		g.carveRandomCorridors()
	}
}

// carveRoom opens the cell at pos, reusing any room already there so
// crossing corridors never produce duplicate rooms.
func (g *generator) carveRoom(pos grid.Position) *world.Room {
	if r := g.board.RoomAt(pos); r != nil {
		return r
	}
	r := world.NewRoom(fmt.Sprintf("%d,%d", pos.Row, pos.Col))
	g.board.SetTile(pos, r)
	g.rooms = append(g.rooms, r)
	g.at = append(g.at, pos)
	return r
}

func (g *generator) carveRow(row, fromCol, toCol int) {
	for j := fromCol; j < toCol; j++ {
		g.carveRoom(grid.At(row, j))
	}
}

func (g *generator) carveCol(col, fromRow, toRow int) {
	for i := fromRow; i < toRow; i++ {
		g.carveRoom(grid.At(i, col))
	}
}

// carveSingleCorridor runs a corridor from the start position to the
// far end of the maze.
func (g *generator) carveSingleCorridor() {
	for i := g.board.Start().Row; i > 0; i-- {
		g.carveRoom(grid.At(i, g.board.Start().Col))
	}
}

func (g *generator) carveCrossWithSquare() {
	rows, cols := g.board.Rows(), g.board.Cols()

	g.carveSingleCorridor()
	g.carveRow((g.board.Start().Row+1)/2, 1, cols-1)

	horzMargin := (cols - 1) / 4
	vertMargin := (rows - 1) / 4
	g.carveRow(vertMargin, horzMargin, cols-horzMargin)
	g.carveRow(rows-vertMargin, horzMargin, cols-horzMargin)
	g.carveCol(cols-horzMargin, vertMargin, rows-vertMargin+1)
	g.carveCol(horzMargin, vertMargin, rows-vertMargin+1)
}

// carveRandomCorridors lays one guaranteed corridor from the start
// position, then scatters horizontal and vertical corridors across
// row and column blocks so everything stays connected.
func (g *generator) carveRandomCorridors() {
	rows, cols := g.board.Rows(), g.board.Cols()

	g.carveSingleCorridor()

	const rowsPerBlock = 6
	for blk := 0; blk < rows/rowsPerBlock; blk++ {
		length := g.rng.IntRange(cols/2, cols-1)
		startCol := cols/2 - length/2
		blockTop := blk * rowsPerBlock
		blockBottom := min(blockTop+rowsPerBlock-1, rows-1)
		row := g.rng.IntRange(max(1, blockTop), min(blockBottom, rows-2))
		if row != g.board.Start().Row {
			g.carveRow(row, startCol, startCol+length)
		}
	}

	const colsPerBlock = 10
	for blk := 0; blk < cols/colsPerBlock; blk++ {
		length := g.rng.IntRange(rows/2, rows-1)
		startRow := rows/2 - length/2
		blockLeft := blk * colsPerBlock
		blockRight := min(blockLeft+colsPerBlock-1, cols-1)
		col := g.rng.IntRange(max(3, blockLeft), min(blockRight, cols-3))
		g.carveCol(col, startRow, startRow+length)
	}
}

func (g *generator) pickRoom() *world.Room {
	return g.rooms[g.rng.Intn(len(g.rooms))]
}

func (g *generator) roomPosition(r *world.Room) grid.Position {
	for i, room := range g.rooms {
		if room == r {
			return g.at[i]
		}
	}
	return grid.Undefined
}

// placeFeatures picks the escape password, mints one rune per hint
// and scatters the pools, chests, skeleton and portals. The rune bag
// is returned so characters can carry the rest of the hints.
func (g *generator) placeFeatures() *item.RuneBag {
	pwdDef := g.defs.Passwords[g.rng.Intn(len(g.defs.Passwords))]
	password := world.NewPassword(pwdDef.Word, pwdDef.Hints...)

	runes := &item.RuneBag{}
	for n, hint := range pwdDef.Hints {
		runes.Add(item.NewRune(runeName(n+1), hint))
	}

	g.pickRoom().AddFeature(world.DeadPool{})
	g.pickRoom().AddFeature(world.WaterPool{})
	g.pickRoom().AddFeature(world.WaterPool{})
	g.pickRoom().AddFeature(world.WaterPool{})
	g.pickRoom().AddFeature(world.NewTreasureChest(10))
	g.pickRoom().AddFeature(world.NewTreasureChest(25))
	g.pickRoom().AddFeature(world.NewTreasureChest(15))
	g.pickRoom().AddFeature(world.NewSkeleton(runes.UseNext()))

	g.pickRoom().AddFeature(world.NewPortal(
		"Portal",
		"A portal that leads somewhere - hopefully better than your current location!",
		g.board.Start(),
		nil,
		0))
	g.pickRoom().AddFeature(world.NewPortal(
		"Escape Portal",
		"The only way out of this hellish maze. Hope you have the right password!",
		grid.Undefined,
		password,
		escapeAttempts))

	return runes
}

func (g *generator) placeWeapons() {
	for _, name := range g.defs.Weapons {
		w, err := item.NewWeapon(name)
		if err != nil {
			continue
		}
		g.pickRoom().AddItem(w)
	}
}

func (g *generator) placeCharacters(runes *item.RuneBag) {
	for _, def := range g.defs.Characters {
		c := buildCharacter(def, runes)
		room := g.pickRoom()
		c.SetPosition(g.roomPosition(room))
		room.AddCharacter(c)
	}
}

func buildCharacter(def CharacterDef, runes *item.RuneBag) *entity.Character {
	var c *entity.Character
	switch def.Kind {
	case "enemy":
		c = entity.NewEnemy(def.Name, def.Description, def.BareHands)
	case "neutral":
		c = entity.NewNeutral(def.Name, def.Description)
	default:
		c = entity.NewFriend(def.Name, def.Description)
	}

	if def.Weapon != "" {
		if w, err := item.NewWeapon(def.Weapon); err == nil {
			c.ReceiveItem(w)
		}
	}
	for i := 0; i < def.Runes && runes.Len() > 0; i++ {
		c.ReceiveItem(runes.UseNext())
	}

	// Enemies fight back, so they always enter the maze with a weapon
	// at the ready. Friends ready one only when the content asks.
	switch {
	case def.Kind == "enemy" && def.Weapon != "":
		c.Inventory().UseNamed(def.Weapon)
	case def.Kind == "enemy":
		c.Inventory().UseKind(item.KindWeapon)
	case def.UseWeapon && def.Weapon != "":
		c.Inventory().UseNamed(def.Weapon)
	}

	if def.Provider {
		c.SetProvider(true)
	}
	if len(def.Responses) > 0 || len(def.Fallbacks) > 0 {
		rules := make([]dialogue.Rule, len(def.Responses))
		for i, r := range def.Responses {
			rules[i] = dialogue.Rule{
				Keyword: r.Keyword,
				Say:     r.Say,
				Action:  dialogue.Action(r.Action),
			}
		}
		c.SetReaction(dialogue.Compile(rules, def.Fallbacks))
	}
	return c
}

// runeName returns the inscription for the nth rune dealt. The deal
// starts at index 1 into the name list, so "Fehu" is never used.
func runeName(n int) string {
	if n < len(runeNames) {
		return runeNames[n]
	}
	return fmt.Sprintf("Rune%d", n)
}
