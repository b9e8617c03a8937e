// Package engine implements the game core: a turn-based command
// interpreter over a board of rooms populated with items, characters,
// and portals. The engine is single-threaded; hosts feed it one
// command line at a time and render whatever it writes to the output.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jboenig/AdventureGame/engine/convo"
	"github.com/jboenig/AdventureGame/engine/entity"
	"github.com/jboenig/AdventureGame/engine/grid"
	"github.com/jboenig/AdventureGame/engine/item"
	"github.com/jboenig/AdventureGame/engine/world"
	"github.com/jboenig/AdventureGame/host"
)

const (
	moveHealthCost     = 1
	drinkHealthBenefit = 5
	defaultDrinkQty    = 5
)

// State is the phase the game is in, derived from the player.
type State int

const (
	// StateAwaitingEntry means the player has not stepped into the
	// maze yet.
	StateAwaitingEntry State = iota
	// StateActive means the player is somewhere on the board.
	StateActive
	// StateDead means the player's health ran out.
	StateDead
	// StateEscaped means the player left through the escape portal.
	// Terminal, unlike StateAwaitingEntry, even though both leave the
	// player's position undefined.
	StateEscaped
)

// Builder assembles a fresh board and player for each game run.
type Builder interface {
	BuildBoard(rng *RNG) *world.Board
	BuildPlayer(out host.Output) *entity.Character
}

// Game interprets commands and owns all game state. One command is
// processed to completion before the next is accepted.
type Game struct {
	out     host.Output
	prompt  host.Prompter
	audio   host.Audio
	control host.Control
	builder Builder
	rng     *RNG

	board        *world.Board
	player       *entity.Character
	conversation *convo.Conversation
	history      []string
	escaped      bool

	onCommand []func(cmd string)
}

// New creates a game and builds the initial world. Pass a nil audio to
// run silent.
func New(builder Builder, out host.Output, prompt host.Prompter, audio host.Audio, control host.Control, seed int64) *Game {
	if audio == nil {
		audio = host.NopAudio{}
	}
	g := &Game{
		out:     out,
		prompt:  prompt,
		audio:   audio,
		control: control,
		builder: builder,
		rng:     NewRNG(seed),
	}
	g.Reset()
	return g
}

// Reset discards the current world and starts over. The board is
// rebuilt, the player recreated with the starting kit, and the player
// placed in the start room.
func (g *Game) Reset() {
	g.board = g.builder.BuildBoard(g.rng)
	g.player = g.builder.BuildPlayer(g.out)

	start := g.board.Entry(g.board.Start())
	if start == nil {
		panic("game board start position is not on the board")
	}
	start.Enter(g.player)
	g.player.SetPosition(g.board.Start())

	g.history = nil
	g.escaped = false
	g.conversation = convo.New(g.player)
}

func (g *Game) Player() *entity.Character { return g.player }
func (g *Game) Board() *world.Board       { return g.board }
func (g *Game) History() []string         { return g.history }

// State derives the game phase from the player.
func (g *Game) State() State {
	switch {
	case g.player.IsDead():
		return StateDead
	case g.escaped:
		return StateEscaped
	case g.player.Position().IsUndefined():
		return StateAwaitingEntry
	default:
		return StateActive
	}
}

// OnCommandExecuted registers a callback fired after every valid
// command, with the lowercased command line.
func (g *Game) OnCommandExecuted(fn func(cmd string)) {
	g.onCommand = append(g.onCommand, fn)
}

// CurrentRoom returns the room the player occupies, or nil when the
// player is outside the maze.
func (g *Game) CurrentRoom() *world.Room {
	if g.player.Position().IsUndefined() {
		return nil
	}
	return g.board.RoomAt(g.player.Position())
}

// Execute runs one command line. It reports whether the line was a
// recognized command; valid commands are appended to the history.
// Commands that need an argument print their own guidance but still
// count as invalid, so half-formed lines never pollute the history.
func (g *Game) Execute(commandLine string) bool {
	commandLine = strings.ToLower(strings.TrimSpace(commandLine))
	tokens := strings.Fields(commandLine)
	if len(tokens) == 0 {
		return false
	}

	valid := false

	switch {
	case tokens[0] == "quit" || tokens[0] == "leave" || tokens[0] == "exit":
		valid = true
		if g.prompt.Confirm("Question", "Are you really a quitter?") {
			if g.control != nil {
				g.control.Exit()
			}
		}

	case tokens[0] == "enter":
		valid = true
		g.enter()

	case tokens[0] == "clear":
		valid = true
		g.out.Clear()

	case tokens[0] == "show" && len(tokens) > 1:
		switch tokens[1] {
		case "map":
			valid = true
			g.out.Println("")
			g.out.Print(g.board.Render(g.player.Position()))
		case "history":
			valid = true
			g.displayHistory()
		case "health":
			valid = true
			g.displayHealth()
		}

	case tokens[0] == "move":
		if len(tokens) < 2 {
			g.out.Println("Tell me which direction (east, west, north, or south)")
		} else {
			valid = g.movePlayer(tokens[1])
		}

	case tokens[0] == "forward":
		valid = true
		g.movePlayerNorth()

	case tokens[0] == "back":
		valid = true
		g.movePlayerSouth()

	case tokens[0] == "left":
		valid = true
		g.movePlayerWest()

	case tokens[0] == "right":
		valid = true
		g.movePlayerEast()

	case tokens[0] == "look":
		valid = true
		g.DescribeCurrentRoom()

	case tokens[0] == "followers":
		valid = true
		g.displayFollowers()

	case tokens[0] == "read":
		valid = true
		name := ""
		if len(tokens) > 1 {
			name = tokens[1]
		}
		g.readRune(name)

	case strings.HasPrefix(tokens[0], "inv"):
		valid = true
		g.displayInventory()

	case tokens[0] == "take":
		if len(tokens) < 2 {
			g.out.Println("Tell me what you want to take!")
		} else if len(tokens) >= 4 && tokens[2] == "from" {
			valid = true
			g.takeItemFromCharacter(tokens[1], tokens[3])
		} else {
			valid = true
			g.takeItemFromRoom(tokens[1])
		}

	case tokens[0] == "drop":
		if len(tokens) < 2 {
			g.out.Println("Tell me what you want to drop!")
		} else {
			valid = true
			g.dropItem(tokens[1])
		}

	case tokens[0] == "use":
		if len(tokens) < 2 {
			g.out.Println("Tell me what you want to use!")
		} else {
			valid = true
			g.useItem(tokens[1])
		}

	case tokens[0] == "drink":
		valid = true
		qty := defaultDrinkQty
		if len(tokens) > 1 {
			if n, err := strconv.Atoi(tokens[1]); err == nil {
				qty = n
			}
		}
		g.drink(qty)

	case tokens[0] == "attack":
		valid = true
		name := ""
		if len(tokens) > 1 {
			name = tokens[1]
		}
		g.attack(name)

	case tokens[0] == "talk" && len(tokens) > 1 && tokens[1] == "to":
		if len(tokens) > 2 {
			valid = true
			g.talkTo(tokens[2])
		} else {
			g.out.Println("Who would like to talk to?")
		}

	case tokens[0] == "say":
		if len(tokens) > 1 {
			valid = true
			g.say(strings.TrimSpace(commandLine[3:]))
		} else {
			g.out.Println("Say What?")
		}

	case tokens[0] == "history":
		valid = true
		g.displayHistory()

	case tokens[0] == "help":
		valid = true
		g.DisplayHelp()
	}

	if valid {
		g.history = append(g.history, commandLine)
		for _, fn := range g.onCommand {
			fn(commandLine)
		}
	}

	return valid
}

// MoveTo implements world.Mover for portals. An undefined destination
// means the player has escaped the maze. Portal travel leaves and
// enters rooms just like walking, so room occupant lists stay in step
// with the player's position.
func (g *Game) MoveTo(pos grid.Position) {
	if cur := g.board.Entry(g.player.Position()); cur != nil {
		cur.Exit(g.player)
	}
	if pos.IsUndefined() {
		g.player.SetPosition(grid.Undefined)
		g.escaped = true
		return
	}
	if next := g.board.Entry(pos); next != nil {
		next.Enter(g.player)
	}
	g.player.SetPosition(pos)
	g.onPlayerPositionChanged()
}

func (g *Game) enter() {
	if g.player.Position().IsUndefined() {
		entry := g.board.Entry(g.board.Start())
		if entry == nil {
			panic("game board start position is not on the board")
		}
		entry.Enter(g.player)
		g.player.SetPosition(g.board.Start())
		g.DescribeCurrentRoom()
		return
	}

	room := g.CurrentRoom()
	portals := room.Portals()
	if len(portals) == 0 {
		g.out.Println("You are already in the maze")
		return
	}

	if err := portals[0].Enter(g, g.prompt); err != nil {
		g.out.Println(err.Error())
		return
	}
	g.audio.PlayEffect("PortalEnter")
	g.out.Println("Zap!")
}

func (g *Game) movePlayer(direction string) bool {
	switch direction {
	case "north":
		g.movePlayerNorth()
	case "south":
		g.movePlayerSouth()
	case "east":
		g.movePlayerEast()
	case "west":
		g.movePlayerWest()
	default:
		return false
	}
	return true
}

func (g *Game) movePlayerNorth() {
	if g.player.Position().IsUndefined() {
		// Stepping forward from outside walks in through the entrance.
		g.player.SetPosition(g.board.Start())
		g.onPlayerPositionChanged()
		return
	}
	g.step(g.player.Position().Forward())
}

func (g *Game) movePlayerSouth() {
	if g.player.Position().IsUndefined() {
		return
	}
	g.step(g.player.Position().Back())
}

func (g *Game) movePlayerWest() {
	if g.player.Position().IsUndefined() {
		return
	}
	g.step(g.player.Position().Left())
}

func (g *Game) movePlayerEast() {
	if g.player.Position().IsUndefined() {
		return
	}
	g.step(g.player.Position().Right())
}

// step moves the player one tile. Both sides of the move must agree:
// the current tile lets the player and every follower out, and the
// destination lets all of them in. Nothing mutates otherwise.
func (g *Game) step(target grid.Position) {
	cur := g.board.Entry(g.player.Position())
	next := g.board.Entry(target)

	if cur == nil || next == nil || !cur.CanExit(g.player) || !next.CanEnter(g.player) {
		g.out.Println("You cannot move there")
		return
	}

	cur.Exit(g.player)
	next.Enter(g.player)
	g.player.SetPosition(target)
	g.onPlayerPositionChanged()
}

func (g *Game) onPlayerPositionChanged() {
	// Moving rooms ends whatever conversation was going on.
	g.conversation = convo.New(g.player)
	g.audio.PlayEffect("Walking")
	g.player.ReduceHealth(moveHealthCost)

	for _, f := range g.player.Followers() {
		f.SetPosition(g.player.Position())
	}

	g.DescribeCurrentRoom()
}

func (g *Game) takeItemFromRoom(itemName string) {
	room := g.CurrentRoom()
	it := room.TakeItemByName(itemName)
	if it == nil {
		g.out.Println(fmt.Sprintf("This room does not contain a %s", itemName))
		return
	}

	loose := false
	for _, cur := range room.Items() {
		if cur == it {
			loose = true
			break
		}
	}

	if err := g.player.ReceiveItem(it); err != nil {
		g.out.Println(err.Error())
		if !loose {
			// Came out of a feature or a corpse; don't let it vanish.
			room.ReturnItem(it)
		}
		return
	}

	if loose {
		room.RemoveItem(it)
	}
	if it.Kind() == item.KindGoldCoin {
		g.audio.PlayEffect("Coins")
	}
	g.out.Println(it.TakeMessage())
}

func (g *Game) takeItemFromCharacter(itemName, characterName string) {
	character := g.CurrentRoom().CharacterByName(characterName)
	if character == nil {
		g.out.Println(fmt.Sprintf("%s is not a character in this room", characterName))
		return
	}

	if character.Kind() == entity.KindEnemy && !character.IsDead() {
		g.out.Println(fmt.Sprintf("You will have to kill %s to take the %s", characterName, itemName))
		return
	}

	it := character.TakeItemByName(itemName)
	if it == nil {
		g.out.Println(fmt.Sprintf("%s cannot give you the %s", characterName, itemName))
		return
	}

	if err := g.player.ReceiveItem(it); err != nil {
		g.out.Println(err.Error())
		character.Inventory().Add(it)
		return
	}
	if it.Kind() == item.KindGoldCoin {
		g.audio.PlayEffect("Coins")
	}
	g.out.Println(it.TakeMessage())
}

func (g *Game) dropItem(itemName string) {
	it := g.player.Inventory().Find(itemName)
	if it == nil {
		g.out.Println(fmt.Sprintf("You do not have a %s", itemName))
		return
	}
	if err := g.player.Inventory().Remove(itemName); err != nil {
		g.out.Println(err.Error())
		return
	}
	g.CurrentRoom().AddItem(it)
}

func (g *Game) useItem(itemName string) {
	if g.player.Inventory().UseNamed(itemName) == nil {
		g.out.Println(fmt.Sprintf("You do not have a %s to use", itemName))
		return
	}
	g.out.Println(fmt.Sprintf("You are now holding the %s", itemName))
}

func (g *Game) drink(qty int) {
	flask := g.player.Inventory().UseNamedKind("flask", item.KindFlask)
	if flask == nil {
		g.out.Println("You have nothing to drink from")
		return
	}
	if !flask.Drink(qty) {
		g.out.Println("Uh oh, your flask is empty")
		return
	}
	g.audio.PlayEffect("Drink")
	g.player.RestoreHealth(drinkHealthBenefit)
	g.out.Println("Ahhh refreshing water")
}

func (g *Game) readRune(runeName string) {
	var r *item.Item
	if runeName != "" {
		r = g.player.Inventory().UseNamedKind(runeName, item.KindRune)
		if r == nil {
			g.out.Println("You do not have that rune")
			return
		}
	} else {
		r = g.player.Inventory().InUseOfKind(item.KindRune)
		if r == nil {
			g.out.Println("You are not holding a rune")
			return
		}
	}
	g.out.Println(r.Text())
}

func (g *Game) attack(enemyName string) {
	enemies := g.CurrentRoom().Enemies()

	var enemy *entity.Character
	if enemyName != "" {
		for _, e := range enemies {
			if strings.HasPrefix(strings.ToLower(e.Name()), strings.ToLower(enemyName)) {
				enemy = e
				break
			}
		}
	} else if len(enemies) > 1 {
		g.out.Println("Tell me which enemy you would like to attack")
		return
	} else if len(enemies) == 1 {
		enemy = enemies[0]
	}

	if enemy == nil {
		g.out.Println("There is nobody to attack!")
		return
	}

	startHealth := enemy.Health()
	if _, err := Attack(g.player, enemy, g.rng); err != nil {
		g.out.Println(err.Error())
		return
	}
	g.audio.PlayEffect("SwordsClashing")
	g.out.Println(fmt.Sprintf("You inflicted %d points of damage on %s", startHealth-enemy.Health(), enemy.Name()))

	for _, f := range g.player.Followers() {
		startHealth = enemy.Health()
		if _, err := Attack(f, enemy, g.rng); err != nil {
			g.out.Println(err.Error())
			continue
		}
		g.out.Println(fmt.Sprintf("%s inflicted %d points of damage on %s", f.Name(), startHealth-enemy.Health(), enemy.Name()))
	}

	if enemy.IsDead() {
		g.out.Println(fmt.Sprintf("You have defeated %s", enemy.Name()))
		if enemy.Inventory().Len() > 0 {
			g.out.Println("")
			g.out.Println(fmt.Sprintf("%s has the following items", enemy.Name()))
			g.listItems(enemy)
		}
		return
	}

	// Counter attack. Enemies with no usable weapon just flail.
	Attack(enemy, g.player, g.rng)
	g.out.Println(fmt.Sprintf("%s now has %d health remaining", enemy.Name(), enemy.Health()))
	g.out.Println(fmt.Sprintf("%s has counter attacked and you now have %d health remaining", enemy.Name(), g.player.Health()))
}

func (g *Game) talkTo(characterName string) {
	character := g.CurrentRoom().CharacterByName(characterName)
	if character == nil {
		g.out.Println(fmt.Sprintf("%s is not a character", characterName))
		return
	}
	if character.IsDead() {
		g.out.Println(fmt.Sprintf("%s is pretty dead right now and doesn't have much to say about it", characterName))
		return
	}
	if !character.CanConverse() {
		g.out.Println(fmt.Sprintf("%s is not the talkative type", characterName))
		return
	}
	if g.conversation.IsParticipant(character.Name()) {
		g.out.Println(fmt.Sprintf("You are already talking to %s", characterName))
		return
	}
	g.conversation.Join(character)
	g.out.Println(fmt.Sprintf("%s is listening", characterName))
}

func (g *Game) say(text string) {
	g.conversation.Say(g.player, text)
}

// DisplayIntro prints the opening line of a fresh game.
func (g *Game) DisplayIntro() {
	g.out.Println("")
	g.out.Println("You wake up to find yourself in a dark cavern.")
}

// DisplaySeparator prints the divider hosts show between turns.
func (g *Game) DisplaySeparator() {
	g.out.Println("---------------------------------------------------------")
}

// DescribeCurrentRoom prints the description of the player's room.
func (g *Game) DescribeCurrentRoom() {
	if room := g.CurrentRoom(); room != nil {
		room.Describe(g.out, g.player)
	}
}

// DisplayHelp prints the command reference.
func (g *Game) DisplayHelp() {
	g.out.Println("")
	g.out.Println("show map                                 ==> shows the map")
	g.out.Println("show health                              ==> shows your character's health")
	g.out.Println("look                                     ==> describes your surroundings")
	g.out.Println("move north                               ==> move north")
	g.out.Println("move south                               ==> move south")
	g.out.Println("move east                                ==> move east")
	g.out.Println("move west                                ==> move west")
	g.out.Println("inv                                      ==> shows the items in your inventory")
	g.out.Println("drink                                    ==> drink some water to restore health")
	g.out.Println("use [item name]                          ==> prepares an inventory item to be used")
	g.out.Println("take [item name]                         ==> takes an item in the room and puts it in your inventory")
	g.out.Println("take [item name] from [character name]   ==> takes an item from a character and puts it in your inventory")
	g.out.Println("drop [item name]                         ==> drops an item in your inventory and leaves it in the room")
	g.out.Println("read [rune name]                         ==> reads a rune in your possession")
	g.out.Println("attack [character name]                  ==> attacks a character in the room")
	g.out.Println("followers                                ==> shows a list of your followers")
	g.out.Println("talk to [character name]                 ==> starts a conversation with a character in the room")
	g.out.Println("say [text]                               ==> say something in a conversation (start conversation with talk to)")
	g.out.Println("history                                  ==> show command history")
	g.out.Println("exit                                     ==> exits the game")
	g.out.Println("")
}

func (g *Game) displayHealth() {
	g.out.Println("")
	g.out.Println(fmt.Sprintf("Health is %d", g.player.Health()))
}

func (g *Game) displayFollowers() {
	followers := g.player.Followers()
	if len(followers) == 0 {
		g.out.Println("You have no followers")
		return
	}
	var sb strings.Builder
	sb.WriteString("You are being followed by")
	for _, f := range followers {
		sb.WriteString(" ")
		sb.WriteString(f.Name())
	}
	g.out.Println(sb.String())
}

func (g *Game) displayInventory() {
	g.out.Println("")
	g.out.Println("You possess the following items:")
	g.listItems(g.player)
	g.out.Println("")
}

func (g *Game) listItems(c *entity.Character) {
	for _, it := range c.Inventory().Items() {
		prefix := ""
		if c.Inventory().IsInUse(it) {
			prefix = "* "
		}
		g.out.Println(fmt.Sprintf("%s%s - %s", prefix, it.Name(), it.Description()))
	}
}

func (g *Game) displayHistory() {
	g.out.Println("")
	g.out.Println("Here are all of the command that you have typed")
	g.out.Println("")
	for _, cmd := range g.history {
		g.out.Println(cmd)
	}
}
