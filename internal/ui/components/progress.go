package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/ui/theme"
)

// ProgressDots shows one dot per exercise, filled for completed ones.
type ProgressDots struct {
	Completed int
	Total     int
}

// View renders the dots separated by spaces.
func (p ProgressDots) View() string {
	dots := make([]string, 0, p.Total)
	for i := range p.Total {
		if i < p.Completed {
			dots = append(dots, theme.DotFilled.Render("●"))
		} else {
			dots = append(dots, theme.DotEmpty.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}

// ExerciseLabel returns "Exercise k of N".
func ExerciseLabel(position, total int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Exercise %d of %d", position, total))
}
