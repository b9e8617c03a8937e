package convo

import "testing"

type echoParticipant struct {
	name  string
	heard []string
}

func (e *echoParticipant) Name() string { return e.name }

func (e *echoParticipant) Hear(c *Conversation, from Participant, text string) {
	e.heard = append(e.heard, from.Name()+": "+text)
}

func TestJoinRejectsDuplicateNames(t *testing.T) {
	c := New()
	if err := c.Join(&echoParticipant{name: "Bombur"}); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if err := c.Join(&echoParticipant{name: "bombur"}); err == nil {
		t.Error("joining under an existing name should fail")
	}
	if err := c.Join(nil); err == nil {
		t.Error("joining nil should fail")
	}
}

func TestSayBroadcastsInJoinOrder(t *testing.T) {
	player := &echoParticipant{name: "Player"}
	dog := &echoParticipant{name: "Ginger"}
	dwarf := &echoParticipant{name: "Bombur"}
	c := New(player, dog, dwarf)

	if err := c.Say(player, "hello"); err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if len(player.heard) != 0 {
		t.Errorf("speaker should not hear themselves, heard %v", player.heard)
	}
	for _, p := range []*echoParticipant{dog, dwarf} {
		if len(p.heard) != 1 || p.heard[0] != "Player: hello" {
			t.Errorf("%s heard %v", p.name, p.heard)
		}
	}
}

func TestSayRequiresMembership(t *testing.T) {
	c := New(&echoParticipant{name: "Player"})
	outsider := &echoParticipant{name: "Grundle"}
	if err := c.Say(outsider, "grr"); err == nil {
		t.Error("a non-participant should not be able to speak")
	}
}

func TestLeaveAndReset(t *testing.T) {
	player := &echoParticipant{name: "Player"}
	dwarf := &echoParticipant{name: "Bombur"}
	c := New(player, dwarf)

	c.Leave("bombur")
	if c.IsParticipant("Bombur") {
		t.Error("Bombur should have left")
	}
	c.Leave("nobody") // no-op

	c.Join(dwarf)
	c.Reset(player)
	if got := len(c.Participants()); got != 1 {
		t.Fatalf("after reset expected 1 participant, got %d", got)
	}
	if !c.IsParticipant("Player") {
		t.Error("reset should keep the player")
	}
}
