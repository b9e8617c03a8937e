package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Bold(true)

	styleList = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleMap = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindHeading
	kindList
	kindDialogue
	kindError
	kindMap
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case isMapLine(line):
		return kindMap
	case strings.Contains(line, " says - "):
		return kindDialogue
	case strings.HasPrefix(line, "You are in the "),
		strings.HasPrefix(line, "This room contains"),
		strings.HasPrefix(line, "You possess the following"):
		return kindHeading
	case strings.HasPrefix(line, "   "),
		strings.HasPrefix(line, "* "):
		return kindList
	case strings.HasPrefix(line, "You cannot"),
		strings.HasPrefix(line, "You do not have"),
		strings.HasPrefix(line, "That is not"),
		strings.HasPrefix(line, "There is nobody"),
		strings.HasPrefix(line, "Uh oh"),
		strings.HasPrefix(line, "This portal"):
		return kindError
	default:
		return kindNarrative
	}
}

// isMapLine reports whether a line is a row of the maze rendering:
// wall, room and player glyphs separated by spaces.
func isMapLine(line string) bool {
	seen := false
	for _, r := range line {
		switch r {
		case 'X', '?', '@':
			seen = true
		case ' ':
		default:
			return false
		}
	}
	return seen
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindList:
		return styleList.Render(line)
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindMap:
		return styleMap.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}
