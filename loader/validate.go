package loader

import (
	"fmt"
	"strings"

	"github.com/jboenig/AdventureGame/engine/item"
	"github.com/jboenig/AdventureGame/engine/worldgen"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var validKinds = map[string]bool{
	"":        true, // defaults to friend
	"friend":  true,
	"enemy":   true,
	"neutral": true,
}

var validActions = map[string]bool{
	"":       true,
	"follow": true,
	"use":    true,
	"runes":  true,
}

// validate checks the compiled defs for consistency.
func validate(defs *worldgen.Defs) error {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}

	if len(defs.Passwords) == 0 {
		ve.Errors = append(ve.Errors, "at least one Password is required")
	}
	for _, pwd := range defs.Passwords {
		if pwd.Word == "" {
			ve.Errors = append(ve.Errors, "Password with empty word")
			continue
		}
		if len(pwd.Hints) == 0 {
			ve.Errors = append(ve.Errors,
				fmt.Sprintf("Password %q: hints are required", pwd.Word))
		}
	}

	for _, name := range defs.Weapons {
		if _, err := item.NewWeapon(name); err != nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf("Weapons: %v", err))
		}
	}

	seen := map[string]bool{}
	for _, c := range defs.Characters {
		where := fmt.Sprintf("Character %q", c.Name)
		if c.Name == "" {
			ve.Errors = append(ve.Errors, "Character with empty name")
			continue
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			ve.Errors = append(ve.Errors, where+": duplicate name")
		}
		seen[key] = true

		if !validKinds[c.Kind] {
			ve.Errors = append(ve.Errors,
				fmt.Sprintf("%s: unknown kind %q", where, c.Kind))
		}
		if c.Kind == "enemy" && c.BareHands <= 0 {
			ve.Errors = append(ve.Errors, where+": enemy needs bare_hands damage")
		}
		if c.Weapon != "" {
			if _, err := item.NewWeapon(c.Weapon); err != nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %v", where, err))
			}
		}
		if c.UseWeapon && c.Weapon == "" {
			ve.Errors = append(ve.Errors, where+": use_weapon without a weapon")
		}
		for _, r := range c.Responses {
			if r.Keyword == "" {
				ve.Errors = append(ve.Errors, where+": response without a keyword")
			}
			if !validActions[r.Action] {
				ve.Errors = append(ve.Errors,
					fmt.Sprintf("%s: unknown action %q", where, r.Action))
			}
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
