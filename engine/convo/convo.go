// Package convo implements multi-party conversations. A conversation
// tracks its participants in join order and relays anything said to
// everyone except the speaker.
package convo

import (
	"fmt"
	"strings"
)

// Participant is anyone who can take part in a conversation.
type Participant interface {
	Name() string
	// Hear delivers a line spoken by another participant.
	Hear(c *Conversation, from Participant, text string)
}

// Conversation is a set of participants identified by name.
type Conversation struct {
	participants []Participant
}

// New creates a conversation with the given initial participants.
func New(initial ...Participant) *Conversation {
	c := &Conversation{}
	for _, p := range initial {
		c.Join(p)
	}
	return c
}

// Participants returns the participants in join order.
func (c *Conversation) Participants() []Participant {
	return c.participants
}

// Join adds a participant. Names are unique within a conversation,
// compared case-insensitively.
func (c *Conversation) Join(p Participant) error {
	if p == nil {
		return fmt.Errorf("cannot add nil participant")
	}
	if c.IsParticipant(p.Name()) {
		return fmt.Errorf("%s is already in the conversation", p.Name())
	}
	c.participants = append(c.participants, p)
	return nil
}

// Leave removes the named participant. Removing someone who is not
// in the conversation is not an error.
func (c *Conversation) Leave(name string) {
	for i, p := range c.participants {
		if strings.EqualFold(p.Name(), name) {
			c.participants = append(c.participants[:i], c.participants[i+1:]...)
			return
		}
	}
}

// IsParticipant reports whether the named participant is present.
func (c *Conversation) IsParticipant(name string) bool {
	for _, p := range c.participants {
		if strings.EqualFold(p.Name(), name) {
			return true
		}
	}
	return false
}

// Reset drops everyone except the given participants and re-adds those.
func (c *Conversation) Reset(keep ...Participant) {
	c.participants = c.participants[:0]
	for _, p := range keep {
		c.Join(p)
	}
}

// Say relays text from a participant to every other participant in
// join order. The speaker must be in the conversation.
func (c *Conversation) Say(from Participant, text string) error {
	if from == nil || !c.IsParticipant(from.Name()) {
		return fmt.Errorf("you are not part of this conversation")
	}
	for _, p := range c.participants {
		if strings.EqualFold(p.Name(), from.Name()) {
			continue
		}
		p.Hear(c, from, text)
	}
	return nil
}
