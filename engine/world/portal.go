package world

import (
	"fmt"
	"strings"

	"github.com/jboenig/AdventureGame/engine/grid"
	"github.com/jboenig/AdventureGame/host"
)

// Password is a portal password along with the hints scattered around
// the maze that let players work it out.
type Password struct {
	word  string
	hints []string
}

// NewPassword creates a password with its hint list.
func NewPassword(word string, hints ...string) *Password {
	return &Password{word: word, hints: hints}
}

// Hints returns the hints in the order they should be handed out.
func (p *Password) Hints() []string { return p.hints }

// Match reports whether the guess is correct. Matching ignores case;
// an empty guess never matches.
func (p *Password) Match(guess string) bool {
	if guess == "" {
		return false
	}
	return strings.EqualFold(p.word, guess)
}

// Mover relocates the player. A portal does not move the player
// itself, it asks the game to.
type Mover interface {
	MoveTo(pos grid.Position)
}

// Portal transports whoever enters it to a fixed destination,
// optionally guarded by a password. A guarded portal closes for good
// after too many wrong guesses.
type Portal struct {
	name        string
	desc        string
	destination grid.Position
	pwd         *Password
	failed      int
	maxAttempts int
}

// NewPortal creates a portal. Pass a nil password for an unguarded
// portal; maxAttempts only matters when a password is set.
func NewPortal(name, desc string, destination grid.Position, pwd *Password, maxAttempts int) *Portal {
	return &Portal{
		name:        name,
		desc:        desc,
		destination: destination,
		pwd:         pwd,
		maxAttempts: maxAttempts,
	}
}

func (p *Portal) Name() string        { return p.name }
func (p *Portal) Description() string { return p.desc }

// Destination returns where the portal leads. An undefined position
// means out of the maze entirely.
func (p *Portal) Destination() grid.Position { return p.destination }

// Enter prompts for a password when one is required, then attempts
// the crossing.
func (p *Portal) Enter(m Mover, prompt host.Prompter) error {
	guess := ""
	if p.pwd != nil {
		guess = prompt.Ask("Enter Portal", "What's the password? ")
	}
	return p.EnterWith(m, guess)
}

// EnterWith attempts the crossing with the given password guess. On
// success the mover is sent to the destination. Every wrong guess
// counts toward the portal closing permanently.
func (p *Portal) EnterWith(m Mover, guess string) error {
	if p.pwd != nil {
		if p.failed >= p.maxAttempts {
			return fmt.Errorf("This portal has closed because you have tried %d incorrect passwords to access it. Tough luck!", p.failed)
		}
		if guess == "" {
			return fmt.Errorf("This portal requires a password")
		}
		if !p.pwd.Match(guess) {
			p.failed++
			return fmt.Errorf("That is not the correct password for this portal")
		}
	}

	m.MoveTo(p.destination)
	return nil
}
