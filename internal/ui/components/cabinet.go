package components

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/ui/theme"
)

const (
	// cabinetInset is the double border plus two cells of air on each side.
	cabinetInset = 6
	// cardInset covers a card's rounded border and horizontal padding with a
	// cell to spare on each side.
	cardInset = 8

	minCardWidth = 24
)

// CardWidth clamps the width a card wants to what fits inside a cabinet of
// frameWidth cells.
func CardWidth(frameWidth, want int) int {
	room := max(frameWidth-cabinetInset, minCardWidth)
	return min(max(want, minCardWidth), room)
}

// SolvedLine renders the n-th solved chain, e.g. "2.  30/80 = 3/8".
func SolvedLine(n int, chain []fraction.Fraction) string {
	return fmt.Sprintf("%d.  %s", n, fraction.FormatChain(chain))
}

// FitWidth is the card width that shows each line without wrapping.
func FitWidth(lines ...string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w + cardInset
}

func bordered(b lipgloss.Border, c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(b).BorderForeground(c)
}

// Cabinet centers content inside a double border filling width x height.
func Cabinet(content string, width, height int) string {
	return bordered(lipgloss.DoubleBorder(), theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card puts content in a rounded box width cells wide.
func Card(content string, width int) string {
	return bordered(lipgloss.RoundedBorder(), theme.Border).
		Width(width-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ButtonState selects how a menu button is drawn.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// Button renders a boxed menu entry.
func Button(label string, state ButtonState, width int) string {
	style := bordered(lipgloss.RoundedBorder(), theme.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return style.Foreground(theme.TextDim).Render(label)
	}
	return style.Foreground(theme.Text).Render(label)
}
