package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/ui/theme"
)

// StackedFraction renders numerator over a bar over denominator, centered
// in a column as wide as the longer term.
func StackedFraction(f fraction.Fraction, style lipgloss.Style) string {
	return stack(fmt.Sprint(f.Numerator), fmt.Sprint(f.Denominator), style)
}

// StackedBoxes renders two entry boxes as a fraction.
func StackedBoxes(num, den DigitBox) string {
	return stack(num.View(), den.View(), lipgloss.NewStyle())
}

func stack(top, bottom string, style lipgloss.Style) string {
	w := max(lipgloss.Width(top), lipgloss.Width(bottom)) + 2
	col := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Center,
		col.Render(style.Render(top)),
		col.Render(style.Render(strings.Repeat("─", w))),
		col.Render(style.Render(bottom)),
	)
}

// FractionChain renders a chain of fractions joined by "=" signs. When
// divisor is positive it is shown under the last fraction, and tail, if
// non-empty, is appended after one more "=".
func FractionChain(chain []fraction.Fraction, divisor int, tail string) string {
	current := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	past := lipgloss.NewStyle().Foreground(theme.TextDim)
	eq := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1).Render("=")

	var parts []string
	for i, f := range chain {
		style := past
		if i == len(chain)-1 {
			style = current
		}
		cell := StackedFraction(f, style)
		if i == len(chain)-1 && divisor > 0 {
			cell = lipgloss.JoinVertical(lipgloss.Center, cell, theme.Divisor.Render(fmt.Sprintf("÷%d", divisor)))
		}
		if i > 0 {
			parts = append(parts, eq)
		}
		parts = append(parts, cell)
	}
	if tail != "" {
		parts = append(parts, eq, tail)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
