package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jboenig/AdventureGame/engine/convo"
	"github.com/jboenig/AdventureGame/engine/entity"
	"github.com/jboenig/AdventureGame/engine/grid"
	"github.com/jboenig/AdventureGame/engine/item"
	"github.com/jboenig/AdventureGame/engine/world"
	"github.com/jboenig/AdventureGame/host"
)

type recordingOutput struct {
	lines []string
}

func (r *recordingOutput) Print(s string)   { r.lines = append(r.lines, s) }
func (r *recordingOutput) Println(s string) { r.lines = append(r.lines, s) }
func (r *recordingOutput) Clear()           { r.lines = nil }

func (r *recordingOutput) text() string { return strings.Join(r.lines, "\n") }

type scriptedPrompter struct {
	confirms []bool
	answers  []string
}

func (s *scriptedPrompter) Confirm(title, question string) bool {
	if len(s.confirms) == 0 {
		return false
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v
}

func (s *scriptedPrompter) Ask(title, question string) string {
	if len(s.answers) == 0 {
		return ""
	}
	v := s.answers[0]
	s.answers = s.answers[1:]
	return v
}

type recordingAudio struct {
	effects []string
}

func (a *recordingAudio) PlayEffect(name string) { a.effects = append(a.effects, name) }
func (a *recordingAudio) StartLoop(name string)  {}
func (a *recordingAudio) StopLoop(name string)   {}

type recordingControl struct {
	exited bool
}

func (c *recordingControl) Exit() { c.exited = true }

// testBuilder carves a single five-room corridor in column zero with
// the start at the bottom. Row 0 stays wall so forward movement runs
// out of maze.
type testBuilder struct {
	seedRooms func(b *world.Board)
}

func (tb *testBuilder) BuildBoard(rng *RNG) *world.Board {
	b := world.NewBoard(5, 1, grid.At(4, 0))
	for i := 1; i <= 4; i++ {
		b.SetTile(grid.At(i, 0), world.NewRoom(fmt.Sprintf("%d,0", i)))
	}
	if tb.seedRooms != nil {
		tb.seedRooms(b)
	}
	return b
}

func (tb *testBuilder) BuildPlayer(out host.Output) *entity.Character {
	p := entity.NewPlayer(out)
	p.Inventory().Add(item.NewFlask())
	p.Inventory().Add(item.NewCoinPurse())
	p.Inventory().Add(item.NewDagger())
	return p
}

type fixture struct {
	g      *Game
	out    *recordingOutput
	prompt *scriptedPrompter
	audio  *recordingAudio
	ctrl   *recordingControl
}

func newFixture(tb *testBuilder) *fixture {
	f := &fixture{
		out:    &recordingOutput{},
		prompt: &scriptedPrompter{},
		audio:  &recordingAudio{},
		ctrl:   &recordingControl{},
	}
	if tb == nil {
		tb = &testBuilder{}
	}
	f.g = New(tb, f.out, f.prompt, f.audio, f.ctrl, 42)
	return f
}

func TestNewGameStartsActiveAtStart(t *testing.T) {
	f := newFixture(nil)
	if f.g.State() != StateActive {
		t.Fatalf("state = %v, want active", f.g.State())
	}
	if f.g.Player().Position() != grid.At(4, 0) {
		t.Errorf("player at %v, want start", f.g.Player().Position())
	}
	if f.g.CurrentRoom() == nil {
		t.Error("player should occupy the start room")
	}
}

func TestMoveCostsHealthAndDescribesRoom(t *testing.T) {
	f := newFixture(nil)
	if !f.g.Execute("forward") {
		t.Fatal("forward should be a valid command")
	}
	if f.g.Player().Position() != grid.At(3, 0) {
		t.Errorf("player at %v, want 3,0", f.g.Player().Position())
	}
	if f.g.Player().Health() != entity.MaxHealth-1 {
		t.Errorf("health = %d, want %d", f.g.Player().Health(), entity.MaxHealth-1)
	}
	if !strings.Contains(f.out.text(), "You are in the 3,0 room") {
		t.Errorf("room description missing: %q", f.out.text())
	}
	if len(f.audio.effects) != 1 || f.audio.effects[0] != "Walking" {
		t.Errorf("effects = %v", f.audio.effects)
	}
}

func TestBlockedMoveChangesNothing(t *testing.T) {
	f := newFixture(nil)
	f.g.Execute("right") // column 0 is the only column
	if f.g.Player().Position() != grid.At(4, 0) {
		t.Errorf("player moved to %v", f.g.Player().Position())
	}
	if f.g.Player().Health() != entity.MaxHealth {
		t.Errorf("blocked move cost health: %d", f.g.Player().Health())
	}
	if !strings.Contains(f.out.text(), "You cannot move there") {
		t.Errorf("missing message: %q", f.out.text())
	}
}

func TestMoveCommandForms(t *testing.T) {
	f := newFixture(nil)
	if !f.g.Execute("move north") {
		t.Error("move north should be valid")
	}
	if f.g.Execute("move sideways") {
		t.Error("unknown direction should be invalid")
	}
	if f.g.Execute("move") {
		t.Error("bare move should be invalid")
	}
	if !strings.Contains(f.out.text(), "Tell me which direction") {
		t.Errorf("guidance missing: %q", f.out.text())
	}
}

func TestHistoryRecordsOnlyValidCommands(t *testing.T) {
	f := newFixture(nil)
	var fired []string
	f.g.OnCommandExecuted(func(cmd string) { fired = append(fired, cmd) })

	f.g.Execute("LOOK")
	f.g.Execute("dance")
	f.g.Execute("take")

	if len(f.g.History()) != 1 || f.g.History()[0] != "look" {
		t.Errorf("history = %v", f.g.History())
	}
	if len(fired) != 1 || fired[0] != "look" {
		t.Errorf("callbacks = %v", fired)
	}
}

func TestShowMapMarksPlayer(t *testing.T) {
	f := newFixture(nil)
	f.g.Execute("show map")
	if !strings.Contains(f.out.text(), "@") {
		t.Errorf("map missing player marker: %q", f.out.text())
	}
}

func TestTakeAndDropRoundTrip(t *testing.T) {
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		b.RoomAt(grid.At(4, 0)).AddItem(item.NewBow())
	}}
	f := newFixture(tb)

	f.g.Execute("take bow")
	if f.g.Player().Inventory().Find("Bow") == nil {
		t.Fatal("bow should be in the inventory")
	}
	if len(f.g.CurrentRoom().Items()) != 0 {
		t.Error("bow should have left the room")
	}
	if !strings.Contains(f.out.text(), "Don't hurt yourself with it!") {
		t.Errorf("take message missing: %q", f.out.text())
	}

	f.g.Execute("drop bow")
	if f.g.Player().Inventory().Find("Bow") != nil {
		t.Error("bow should have been dropped")
	}
	if len(f.g.CurrentRoom().Items()) != 1 {
		t.Error("bow should be back on the floor")
	}

	f.g.Execute("take sword")
	if !strings.Contains(f.out.text(), "This room does not contain a sword") {
		t.Errorf("missing message: %q", f.out.text())
	}
}

func TestOverweightTakeLeavesItemInRoom(t *testing.T) {
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		room := b.RoomAt(grid.At(4, 0))
		room.AddItem(item.NewBroadSword()) // 20 lb
		room.AddItem(item.NewKatana())     // 8 lb
	}}
	f := newFixture(tb)

	// Kit weighs 11 lb, so the katana (8 lb) fits but the
	// broadsword (20 lb) would land 1 lb over the limit.
	f.g.Execute("take katana")
	if f.g.Player().Inventory().Find("Katana") == nil {
		t.Fatal("katana should fit in the pack")
	}
	f.g.Execute("take broadsword")
	if !strings.Contains(f.out.text(), "1 pounds too heavy") {
		t.Fatalf("overweight message missing: %q", f.out.text())
	}
	if f.g.Player().Inventory().Find("BroadSword") != nil {
		t.Error("broadsword should have been refused")
	}
	if len(f.g.CurrentRoom().Items()) != 1 {
		t.Error("broadsword should still be in the room")
	}
}

func TestTakeWaterFromPoolFillsFlask(t *testing.T) {
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		b.RoomAt(grid.At(4, 0)).AddFeature(world.WaterPool{})
	}}
	f := newFixture(tb)

	flask := f.g.Player().Inventory().Find("Flask")
	f.g.Execute("take water")
	if flask.FillPct() != 75 {
		t.Errorf("flask at %d%%, want 75", flask.FillPct())
	}
	if !strings.Contains(f.out.text(), "You now have some water") {
		t.Errorf("take message missing: %q", f.out.text())
	}
}

func TestTakeGoldPlaysCoinsAndFillsPurse(t *testing.T) {
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		b.RoomAt(grid.At(4, 0)).AddFeature(world.NewTreasureChest(25))
	}}
	f := newFixture(tb)

	f.g.Execute("take gold")
	purse := f.g.Player().Inventory().Find("Purse")
	if purse.Balance() != 25 {
		t.Errorf("purse balance = %d, want 25", purse.Balance())
	}
	found := false
	for _, e := range f.audio.effects {
		if e == "Coins" {
			found = true
		}
	}
	if !found {
		t.Errorf("coins cue missing: %v", f.audio.effects)
	}
}

func TestDrink(t *testing.T) {
	f := newFixture(nil)
	f.g.Player().ReduceHealth(20)

	f.g.Execute("drink") // flask at 50, default quantity 5
	if f.g.Player().Health() != 85 {
		t.Errorf("health = %d, want 85", f.g.Player().Health())
	}
	if !strings.Contains(f.out.text(), "Ahhh refreshing water") {
		t.Errorf("drink message missing: %q", f.out.text())
	}

	f.g.Execute("drink 45") // drains the flask to zero
	f.g.Execute("drink")
	if !strings.Contains(f.out.text(), "Uh oh, your flask is empty") {
		t.Errorf("empty flask message missing: %q", f.out.text())
	}
}

func TestReadRune(t *testing.T) {
	f := newFixture(nil)
	f.g.Player().Inventory().Add(item.NewRune("Fehu", "Starts with D"))

	f.g.Execute("read fehu")
	if !strings.Contains(f.out.text(), "Starts with D") {
		t.Errorf("rune text missing: %q", f.out.text())
	}

	// The rune is now in use, so a bare read repeats it.
	f.out.lines = nil
	f.g.Execute("read")
	if !strings.Contains(f.out.text(), "Starts with D") {
		t.Errorf("in-use rune text missing: %q", f.out.text())
	}

	f.out.lines = nil
	f.g.Execute("read wunjo")
	if !strings.Contains(f.out.text(), "You do not have that rune") {
		t.Errorf("missing rune message: %q", f.out.text())
	}
}

func TestAttackKillsAndLootsEnemy(t *testing.T) {
	orc := entity.NewEnemy("Grundle", "A nasty little orc", 0)
	orc.Inventory().Add(item.NewBattleAxe())
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		b.RoomAt(grid.At(4, 0)).Enter(orc)
	}}
	f := newFixture(tb)

	for i := 0; i < 100 && !orc.IsDead(); i++ {
		f.g.Execute("attack")
	}
	if !orc.IsDead() {
		t.Fatal("orc should be dead by now")
	}
	if !strings.Contains(f.out.text(), "You have defeated Grundle") {
		t.Errorf("defeat message missing")
	}
	if !strings.Contains(f.out.text(), "Grundle has the following items") {
		t.Errorf("loot listing missing")
	}

	// Corpse looting.
	f.g.Execute("take battleaxe from grundle")
	if f.g.Player().Inventory().Find("BattleAxe") == nil {
		t.Error("should be able to loot the corpse")
	}
}

func TestAttackPrefixMatchAndAmbiguity(t *testing.T) {
	orc1 := entity.NewEnemy("Grundle", "orc", 0)
	orc2 := entity.NewEnemy("Brundle", "orc", 0)
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		room := b.RoomAt(grid.At(4, 0))
		room.Enter(orc1)
		room.Enter(orc2)
	}}
	f := newFixture(tb)

	f.g.Execute("attack")
	if !strings.Contains(f.out.text(), "Tell me which enemy you would like to attack") {
		t.Errorf("ambiguity message missing: %q", f.out.text())
	}

	f.out.lines = nil
	f.g.Execute("attack gru")
	if !strings.Contains(f.out.text(), "damage on Grundle") {
		t.Errorf("prefix attack missing: %q", f.out.text())
	}
}

func TestAttackWithNobodyAround(t *testing.T) {
	f := newFixture(nil)
	f.g.Execute("attack")
	if !strings.Contains(f.out.text(), "There is nobody to attack!") {
		t.Errorf("missing message: %q", f.out.text())
	}
}

func TestAttackWithoutWeapon(t *testing.T) {
	orc := entity.NewEnemy("Grundle", "orc", 0)
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		b.RoomAt(grid.At(4, 0)).Enter(orc)
	}}
	f := newFixture(tb)
	// Two weapons and none readied makes the swing ambiguous.
	f.g.Player().Inventory().Add(item.NewStaff())

	f.g.Execute("attack")
	if !strings.Contains(f.out.text(), "You have no weapon selected") {
		t.Errorf("missing message: %q", f.out.text())
	}
}

func TestTalkToAndConversationResetOnMove(t *testing.T) {
	var heard []string
	dog := entity.NewFriend("Ginger", "a dog")
	dog.SetReaction(func(self *entity.Character, c *convo.Conversation, from convo.Participant, text string) {
		heard = append(heard, text)
	})
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		b.RoomAt(grid.At(4, 0)).Enter(dog)
	}}
	f := newFixture(tb)

	f.g.Execute("talk to ginger")
	// The join message echoes the command token, not the cased name.
	if !strings.Contains(f.out.text(), "ginger is listening") {
		t.Fatalf("join message missing: %q", f.out.text())
	}
	f.g.Execute("talk to ginger")
	if !strings.Contains(f.out.text(), "You are already talking to ginger") {
		t.Errorf("duplicate join message missing: %q", f.out.text())
	}

	f.g.Execute("say hello there")
	if len(heard) != 1 || heard[0] != "hello there" {
		t.Fatalf("dog heard %v", heard)
	}

	// Moving rooms ends the conversation.
	f.g.Execute("forward")
	f.g.Execute("say anyone there?")
	if len(heard) != 1 {
		t.Errorf("dog should not hear after the move, heard %v", heard)
	}
}

func TestTalkToDeadAndUnknownCharacters(t *testing.T) {
	troll := entity.NewEnemy("Slackfart", "troll", 0)
	troll.ReduceHealth(entity.MaxHealth)
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		b.RoomAt(grid.At(4, 0)).Enter(troll)
	}}
	f := newFixture(tb)

	f.g.Execute("talk to slackfart")
	if !strings.Contains(f.out.text(), "pretty dead right now") {
		t.Errorf("dead message missing: %q", f.out.text())
	}

	f.g.Execute("talk to gandalf")
	if !strings.Contains(f.out.text(), "gandalf is not a character") {
		t.Errorf("unknown message missing: %q", f.out.text())
	}
}

func TestTakeFromLivingEnemyRefused(t *testing.T) {
	orc := entity.NewEnemy("Grundle", "orc", 0)
	orc.Inventory().Add(item.NewBattleAxe())
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		b.RoomAt(grid.At(4, 0)).Enter(orc)
	}}
	f := newFixture(tb)

	f.g.Execute("take battleaxe from grundle")
	if !strings.Contains(f.out.text(), "You will have to kill grundle") {
		t.Errorf("missing message: %q", f.out.text())
	}
	if f.g.Player().Inventory().Find("BattleAxe") != nil {
		t.Error("axe should not transfer")
	}
}

func TestPortalEscapeAndClosure(t *testing.T) {
	makeBuilder := func() *testBuilder {
		return &testBuilder{seedRooms: func(b *world.Board) {
			pwd := world.NewPassword("Green", "Color of grass")
			b.RoomAt(grid.At(4, 0)).AddFeature(
				world.NewPortal("Escape Portal", "the way out", grid.Undefined, pwd, 2))
		}}
	}

	// Right password first time escapes.
	f := newFixture(makeBuilder())
	f.prompt.answers = []string{"green"}
	f.g.Execute("enter")
	if f.g.State() != StateEscaped {
		t.Fatalf("state = %v, want escaped", f.g.State())
	}
	if !strings.Contains(f.out.text(), "Zap!") {
		t.Errorf("zap missing: %q", f.out.text())
	}
	if occupies(f.g.Board().RoomAt(grid.At(4, 0)), f.g.Player()) {
		t.Error("escaped player should not linger in the portal room")
	}

	// Two wrong guesses close the portal for good.
	f2 := newFixture(makeBuilder())
	f2.prompt.answers = []string{"blue", "red", "green"}
	f2.g.Execute("enter")
	f2.g.Execute("enter")
	f2.g.Execute("enter")
	if f2.g.State() == StateEscaped {
		t.Fatal("closed portal should not let anyone through")
	}
	if !strings.Contains(f2.out.text(), "This portal has closed") {
		t.Errorf("closure message missing: %q", f2.out.text())
	}
}

func TestPortalTravelUpdatesRoomOccupants(t *testing.T) {
	tb := &testBuilder{seedRooms: func(b *world.Board) {
		pwd := world.NewPassword("Green", "Color of grass")
		b.RoomAt(grid.At(4, 0)).AddFeature(
			world.NewPortal("Warp Portal", "a shimmering arch", grid.At(1, 0), pwd, 2))
	}}
	f := newFixture(tb)
	f.prompt.answers = []string{"green"}

	src := f.g.Board().RoomAt(grid.At(4, 0))
	dst := f.g.Board().RoomAt(grid.At(1, 0))
	f.g.Execute("enter")

	if got := f.g.Player().Position(); got != grid.At(1, 0) {
		t.Fatalf("player at %v, want the portal destination", got)
	}
	if occupies(src, f.g.Player()) {
		t.Error("player should have left the portal room")
	}
	if !occupies(dst, f.g.Player()) {
		t.Error("player should occupy the destination room")
	}
}

func occupies(r *world.Room, c *entity.Character) bool {
	for _, cur := range r.Characters() {
		if cur == c {
			return true
		}
	}
	return false
}

func TestEnterWithNoPortal(t *testing.T) {
	f := newFixture(nil)
	f.g.Execute("enter")
	if !strings.Contains(f.out.text(), "You are already in the maze") {
		t.Errorf("missing message: %q", f.out.text())
	}
}

func TestQuitPromptsBeforeExiting(t *testing.T) {
	f := newFixture(nil)
	f.prompt.confirms = []bool{false, true}

	f.g.Execute("quit")
	if f.ctrl.exited {
		t.Fatal("declined quit should not exit")
	}
	f.g.Execute("exit")
	if !f.ctrl.exited {
		t.Fatal("confirmed quit should exit")
	}
}

func TestDeathIsDerivedAndStable(t *testing.T) {
	f := newFixture(nil)
	f.g.Player().ReduceHealth(entity.MaxHealth)
	if f.g.State() != StateDead {
		t.Fatalf("state = %v, want dead", f.g.State())
	}
	// The interpreter never auto-revives.
	f.g.Execute("look")
	if f.g.State() != StateDead {
		t.Error("state should remain dead")
	}
}

func TestResetRebuildsWorld(t *testing.T) {
	f := newFixture(nil)
	f.g.Execute("forward")
	f.g.Player().ReduceHealth(entity.MaxHealth)
	f.g.Reset()

	if f.g.State() != StateActive {
		t.Errorf("state after reset = %v", f.g.State())
	}
	if f.g.Player().Health() != entity.MaxHealth {
		t.Errorf("health after reset = %d", f.g.Player().Health())
	}
	if len(f.g.History()) != 0 {
		t.Errorf("history should be cleared, got %v", f.g.History())
	}
	if f.g.Player().Position() != grid.At(4, 0) {
		t.Errorf("player at %v after reset", f.g.Player().Position())
	}
}

func TestInventoryDisplayMarksItemInUse(t *testing.T) {
	f := newFixture(nil)
	f.g.Execute("use dagger")
	f.g.Execute("inv")
	if !strings.Contains(f.out.text(), "* Dagger - Short but deadly") {
		t.Errorf("in-use marker missing: %q", f.out.text())
	}
}

func TestFollowersDisplay(t *testing.T) {
	f := newFixture(nil)
	f.g.Execute("followers")
	if !strings.Contains(f.out.text(), "You have no followers") {
		t.Errorf("missing message: %q", f.out.text())
	}

	dog := entity.NewFriend("Ginger", "a dog")
	f.g.Player().Follow(dog)
	f.out.lines = nil
	f.g.Execute("followers")
	if !strings.Contains(f.out.text(), "You are being followed by Ginger") {
		t.Errorf("missing follower list: %q", f.out.text())
	}
}
