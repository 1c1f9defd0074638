package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/feedback"
)

// Color palette: kid-friendly, bright but not garish
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// ConfettiColors are cycled by the victory animation.
var ConfettiColors = []color.Color{Primary, Secondary, Accent, Success, ArcadeYellow, ArcadeCyan}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	DotFilled = lipgloss.NewStyle().
			Foreground(Success)

	DotEmpty = lipgloss.NewStyle().
			Foreground(Border)

	BoxFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ArcadeYellow).
			Foreground(Text).
			Bold(true).
			Align(lipgloss.Center)

	BoxBlurred = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Foreground(Text).
			Align(lipgloss.Center)

	Divisor = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// FeedbackStyle returns the style for a feedback category.
func FeedbackStyle(c feedback.Category) lipgloss.Style {
	switch c {
	case feedback.CategorySuccess:
		return Correct
	case feedback.CategoryError:
		return Incorrect
	default:
		return lipgloss.NewStyle().Foreground(ArcadeCyan)
	}
}
