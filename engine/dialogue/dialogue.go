// Package dialogue turns keyword response tables from content files
// into live conversational behavior for characters.
package dialogue

import (
	"fmt"
	"strings"

	"github.com/jboenig/AdventureGame/engine/convo"
	"github.com/jboenig/AdventureGame/engine/entity"
	"github.com/jboenig/AdventureGame/engine/item"
)

// Action is a side effect a response can carry beyond the spoken line.
type Action string

const (
	// ActionNone just says the line.
	ActionNone Action = ""
	// ActionFollow makes the character fall in behind the speaker.
	ActionFollow Action = "follow"
	// ActionUse asks the character to ready a named item of its own.
	// The line is matched as a command prefix ("use staff") and the
	// response is generated from the character's inventory.
	ActionUse Action = "use"
	// ActionListRunes recites the runes the character carries.
	ActionListRunes Action = "runes"
)

// Rule maps a keyword heard in conversation to a response.
type Rule struct {
	Keyword string
	Say     string
	Action  Action
}

// Compile builds a reaction from an ordered rule list plus a rotating
// set of fallback lines for anything no rule matches. An empty
// fallback entry means the character stays silent that turn. Rules are
// tried in order; the first match wins. Characters only react to the
// player, so NPCs chattering among themselves cannot loop forever.
func Compile(rules []Rule, fallbacks []string) entity.Reaction {
	next := 0
	return func(self *entity.Character, c *convo.Conversation, from convo.Participant, text string) {
		speaker, ok := from.(*entity.Character)
		if !ok || speaker.Kind() != entity.KindPlayer {
			return
		}

		lower := strings.ToLower(text)
		for _, r := range rules {
			if !matches(r, lower) {
				continue
			}
			if r.Say != "" {
				c.Say(self, r.Say)
			}
			apply(r.Action, self, c, speaker, lower)
			return
		}

		if len(fallbacks) == 0 {
			return
		}
		line := fallbacks[next%len(fallbacks)]
		next++
		if line != "" {
			c.Say(self, line)
		}
	}
}

func matches(r Rule, lower string) bool {
	if r.Action == ActionUse {
		tokens := strings.Fields(lower)
		return len(tokens) > 1 && tokens[0] == strings.ToLower(r.Keyword)
	}
	return strings.Contains(lower, strings.ToLower(r.Keyword))
}

func apply(a Action, self *entity.Character, c *convo.Conversation, speaker *entity.Character, lower string) {
	switch a {
	case ActionFollow:
		speaker.Follow(self)
	case ActionUse:
		tokens := strings.Fields(lower)
		name := tokens[1]
		if self.Inventory().UseNamed(name) == nil {
			c.Say(self, fmt.Sprintf("Sorry boss, I don't have a %s!", name))
		} else {
			c.Say(self, fmt.Sprintf("Aye, my %s is at the ready!", name))
		}
	case ActionListRunes:
		c.Say(self, runeReport(self))
	}
}

func runeReport(self *entity.Character) string {
	runes := self.Inventory().OfKind(item.KindRune)
	if len(runes) == 0 {
		return "I'm sorry friend, but I don't know anything about the runes you speak of!"
	}

	var b strings.Builder
	if len(runes) > 1 {
		b.WriteString("Yes, I have some runes with the following markings on them - ")
	} else {
		b.WriteString("Yes, I have a rune with the following markings on it - ")
	}
	for _, r := range runes {
		b.WriteString(r.Name())
		b.WriteString(" ")
	}
	if len(runes) > 1 {
		b.WriteString("\nYou are welcome to take them my friend.")
	} else {
		b.WriteString("\nYou are welcome to take it my friend.")
	}
	return b.String()
}
