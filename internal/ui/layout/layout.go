// Package layout draws the chrome shared by every screen: a header bar with
// the screen title and progress, and a footer bar listing the active keys.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/ui/theme"
)

// Smallest terminal that shows a full exercise row: the fraction chain, the
// divisor under it and both entry boxes.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Below these content-area sizes screens drop decoration such as the block
// banner and the mascot.
const (
	compactWidth  = 100
	compactHeight = 22
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Compact reports whether a content area of width x height should use the
// condensed rendering.
func Compact(width, height int) bool {
	return width < compactWidth || height < compactHeight
}

// TooSmall reports whether the terminal cannot fit an exercise.
func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// SizeWarning asks for a bigger terminal.
func SizeWarning(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("This window is %d x %d.\n\nFractions need at least %d x %d.\nPlease make it bigger.",
			width, height, MinWidth, MinHeight))
}

// Chrome is the header and footer around the active screen.
type Chrome struct {
	Title  string
	Status string
	Hints  []KeyHint
}

// Render draws the chrome at width x height and fills the space between the
// bars with body, which is given the size left over.
func (c Chrome) Render(width, height int, body func(w, h int) string) string {
	header := c.header(width)
	footer := c.footer(width)
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(rest).
		Render(body(width, rest))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (c Chrome) header(width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" ½ Simplify")
	title := lipgloss.NewStyle().Foreground(theme.Text).Render(c.Title)
	status := lipgloss.NewStyle().Foreground(theme.Accent).Render(c.Status)

	// The title stays centered on the bar; the status takes what is left.
	inner := max(width-4, 0)
	bw, tw, sw := lipgloss.Width(brand), lipgloss.Width(title), lipgloss.Width(status)
	before := max((inner-tw)/2-bw, 1)
	after := max(inner-bw-before-tw-sw, 1)

	return bar(width).Render(brand + strings.Repeat(" ", before) + title + strings.Repeat(" ", after) + status)
}

func (c Chrome) footer(width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(c.Hints))
	for i, h := range c.Hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
