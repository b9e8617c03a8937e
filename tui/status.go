package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jboenig/AdventureGame/engine/entity"
)

// renderStatusBar produces a full-width inverted status line showing
// health, carried weight, position and turn count.
func (m Model) renderStatusBar() string {
	p := m.game.Player()

	left := fmt.Sprintf(" Health: %d/%d | Weight: %d lbs",
		p.Health(), entity.MaxHealth, p.CarriedWeight())

	pos := p.Position()
	where := fmt.Sprintf("%d,%d", pos.Row, pos.Col)
	if pos.IsUndefined() {
		where = "outside"
	}
	right := fmt.Sprintf("Pos: %s | Turn: %d ", where, len(m.game.History()))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
