// Package welcome is the splash screen. A sample fraction reduces itself one
// division at a time, then the title appears.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/router"
	"github.com/abhisek/simplify/internal/screen"
	"github.com/abhisek/simplify/internal/ui/components"
	"github.com/abhisek/simplify/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	stepEvery    = 600 * time.Millisecond
	titleAt      = 1800 * time.Millisecond
	totalDur     = 2400 * time.Millisecond
)

// The sample reduces 30/80 by 2, then by 5.
var (
	sampleStart    = fraction.New(30, 80)
	sampleDivisors = []int{2, 5}
)

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen plays the splash and replaces itself with the screen built
// by next on the first key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	chain        []fraction.Fraction
	elapsed      time.Duration
	ticks        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	chain := []fraction.Fraction{sampleStart}
	for _, d := range sampleDivisors {
		f, _ := chain[len(chain)-1].Divide(d)
		chain = append(chain, f)
	}
	return &WelcomeScreen{next: next, chain: chain}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.ticks++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// step returns the part of the chain on screen and the divisor being
// applied to its last fraction, 0 once the sample is fully reduced.
func (w *WelcomeScreen) step() ([]fraction.Fraction, int) {
	n := min(int(w.elapsed/stepEvery), len(sampleDivisors))
	if n < len(sampleDivisors) {
		return w.chain[:n+1], sampleDivisors[n]
	}
	return w.chain, 0
}

func (w *WelcomeScreen) View(width, height int) string {
	shown, divisor := w.step()
	chain := components.FractionChain(shown, divisor, "")

	if divisor == 0 {
		sparkle := sparkleFrames[w.ticks%len(sparkleFrames)]
		left := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)
		chain = lipgloss.JoinHorizontal(lipgloss.Center, left, "   ", chain, "   ", right)
	}

	sections := []string{chain}
	if w.elapsed >= titleAt {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Small steps to lowest terms.")
		prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", prompt)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
