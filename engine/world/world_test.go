package world

import (
	"strings"
	"testing"

	"github.com/jboenig/AdventureGame/engine/entity"
	"github.com/jboenig/AdventureGame/engine/grid"
	"github.com/jboenig/AdventureGame/engine/item"
)

func TestBoardStartsAsSolidWall(t *testing.T) {
	b := NewBoard(4, 4, grid.At(3, 2))
	if _, ok := b.Entry(grid.At(1, 1)).(Wall); !ok {
		t.Error("fresh board should be all wall")
	}
	if b.Entry(grid.At(-1, 0)) != nil {
		t.Error("negative position should be off the board")
	}
	if b.Entry(grid.At(4, 0)) != nil {
		t.Error("past-the-edge position should be off the board")
	}
}

func TestBoardRender(t *testing.T) {
	b := NewBoard(2, 2, grid.At(1, 0))
	room := NewRoom("1,0")
	b.SetTile(grid.At(1, 0), room)

	got := b.Render(grid.At(1, 0))
	want := "X X \n@ X \n"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}

	room.AddFeature(NewPortal("Portal", "a portal", grid.Undefined, nil, 0))
	got = b.Render(grid.At(0, 0))
	if !strings.Contains(got, "?") {
		t.Errorf("portal room should render as ?, got %q", got)
	}
}

func TestRoomEnterExitWithFollowers(t *testing.T) {
	r := NewRoom("5,5")
	player := entity.NewPlayer(nil)
	dog := entity.NewFriend("Ginger", "dog")
	player.Follow(dog)

	if !r.CanEnter(player) {
		t.Fatal("room should accept the player")
	}
	r.Enter(player)
	if len(r.Characters()) != 2 {
		t.Fatalf("room should hold player and follower, has %d", len(r.Characters()))
	}
	if !r.HasVisited(player) || !r.HasVisited(dog) {
		t.Error("both should be recorded as visitors")
	}

	r.Exit(player)
	if len(r.Characters()) != 0 {
		t.Errorf("room should be empty after exit, has %d", len(r.Characters()))
	}
	if !r.HasVisited(dog) {
		t.Error("visit history should survive exit")
	}
}

func TestCharacterByNameChecksVisitors(t *testing.T) {
	r := NewRoom("5,5")
	dwarf := entity.NewFriend("Bombur", "dwarf")
	r.Enter(dwarf)
	r.Exit(dwarf)

	if got := r.CharacterByName("bombur"); got != dwarf {
		t.Error("lookup should fall back to past visitors")
	}
	if got := r.CharacterByName(""); got != nil {
		t.Error("empty name should find nobody")
	}
}

func TestTakeItemByNameOrder(t *testing.T) {
	r := NewRoom("5,5")
	sword := item.NewBroadSword()
	r.AddItem(sword)

	// A loose item is returned but stays on the floor.
	if got := r.TakeItemByName("broadsword"); got != sword {
		t.Fatal("should find the loose sword")
	}
	if len(r.Items()) != 1 {
		t.Error("loose item should remain until the hand-off succeeds")
	}

	// Features yield next.
	r2 := NewRoom("1,1")
	r2.AddFeature(WaterPool{})
	w := r2.TakeItemByName("water")
	if w == nil || w.Kind() != item.KindWater {
		t.Fatalf("pool should yield water, got %v", w)
	}

	// Dead enemies yield last.
	r3 := NewRoom("2,2")
	orc := entity.NewEnemy("Grundle", "orc", 5)
	orc.Inventory().Add(item.NewBattleAxe())
	r3.Enter(orc)
	if got := r3.TakeItemByName("battleaxe"); got != nil {
		t.Error("living enemy should not be lootable")
	}
	orc.ReduceHealth(entity.MaxHealth)
	if got := r3.TakeItemByName("battleaxe"); got == nil {
		t.Error("dead enemy should be lootable")
	}
}

func TestTreasureChestEmptiesOnce(t *testing.T) {
	c := NewTreasureChest(25)
	coin := c.TakeItemByName("gold")
	if coin == nil || coin.Value() != 25 {
		t.Fatalf("first take = %v", coin)
	}
	if c.TakeItemByName("gold") != nil {
		t.Error("chest should be empty after the first take")
	}
	if c.TakeItemByName("silver") != nil {
		t.Error("chest only ever holds gold")
	}
}

func TestSkeletonGivesUpRuneOnce(t *testing.T) {
	s := NewSkeleton(item.NewRune("Fehu", "Starts with D"))
	r := s.TakeItemByName("rune")
	if r == nil || r.Name() != "Fehu" {
		t.Fatalf("first take = %v", r)
	}
	if s.TakeItemByName("rune") != nil {
		t.Error("skeleton has only one rune")
	}
}

func TestDescribeEmptyRoom(t *testing.T) {
	r := NewRoom("5,5")
	out := &recordingOutput{}
	r.Describe(out, nil)
	joined := strings.Join(out.lines, "\n")
	if !strings.Contains(joined, "Emptiness everywhere you look") {
		t.Errorf("empty room description missing, got %q", joined)
	}
}

func TestDescribeSkipsPlayerAndFollowers(t *testing.T) {
	r := NewRoom("5,5")
	player := entity.NewPlayer(nil)
	player.SetName("Conan")
	dog := entity.NewFriend("Ginger", "A cute but somewhat dim puppy dog")
	player.Follow(dog)
	troll := entity.NewEnemy("Slackfart", "An ugly, stupid troll", 7)
	troll.ReduceHealth(entity.MaxHealth)
	r.Enter(player)
	r.Enter(troll)

	out := &recordingOutput{}
	r.Describe(out, player)
	joined := strings.Join(out.lines, "\n")
	if strings.Contains(joined, "Conan") || strings.Contains(joined, "Ginger") {
		t.Errorf("player and followers should not be listed: %q", joined)
	}
	if !strings.Contains(joined, "corpses") || !strings.Contains(joined, "Slackfart") {
		t.Errorf("dead troll should be listed as a corpse: %q", joined)
	}
}

type recordingOutput struct {
	lines []string
}

func (r *recordingOutput) Print(s string)   { r.lines = append(r.lines, s) }
func (r *recordingOutput) Println(s string) { r.lines = append(r.lines, s) }
func (r *recordingOutput) Clear()           {}
