package components

import (
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/ui/theme"
)

var confettiGlyphs = []string{"★", "✦", "•", "◆", "▪", "✧"}

// Confetti is a falling-particle animation for the victory screen.
type Confetti struct {
	rnd       *rand.Rand
	particles []particle
	frames    int
}

type particle struct {
	x, y  int
	glyph string
	color int
}

// ConfettiFrames is how many animation frames a burst lasts.
const ConfettiFrames = 40

// NewConfetti returns an idle animation.
func NewConfetti(seed uint64) *Confetti {
	return &Confetti{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Burst starts a new animation over a width x height area.
func (c *Confetti) Burst(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.frames = ConfettiFrames
	c.particles = c.particles[:0]
	for range width / 2 {
		c.particles = append(c.particles, particle{
			x:     c.rnd.IntN(width),
			y:     -c.rnd.IntN(height),
			glyph: confettiGlyphs[c.rnd.IntN(len(confettiGlyphs))],
			color: c.rnd.IntN(len(theme.ConfettiColors)),
		})
	}
}

// Active reports whether frames remain.
func (c *Confetti) Active() bool {
	return c.frames > 0
}

// Step advances the animation one frame.
func (c *Confetti) Step() {
	if c.frames == 0 {
		return
	}
	c.frames--
	for i := range c.particles {
		c.particles[i].y++
		if c.rnd.IntN(3) == 0 {
			c.particles[i].x += c.rnd.IntN(3) - 1
		}
	}
	if c.frames == 0 {
		c.particles = c.particles[:0]
	}
}

// View renders the particles on a blank width x height canvas.
func (c *Confetti) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.particles {
		if p.y < 0 || p.y >= height || p.x < 0 || p.x >= width {
			continue
		}
		grid[p.y][p.x] = lipgloss.NewStyle().
			Foreground(theme.ConfettiColors[p.color]).
			Render(p.glyph)
	}

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
