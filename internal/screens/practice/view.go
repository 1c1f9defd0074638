package practice

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/reduction"
	"github.com/abhisek/simplify/internal/session"
	"github.com/abhisek/simplify/internal/ui/components"
	"github.com/abhisek/simplify/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return center(width, height, theme.Incorrect.Render("Error: "+s.errMsg))
	}
	if s.ctrl == nil {
		return center(width, height, theme.Subtitle.Render("Loading..."))
	}

	snap := s.ctrl.Snapshot()
	if snap.Complete {
		return s.viewVictory(snap, width, height)
	}
	if snap.Err != nil && len(snap.Chain) == 0 {
		msg := theme.Incorrect.Render("Couldn't create an exercise.") + "\n" +
			theme.Hint.Render(snap.Err.Error()) + "\n\n" +
			theme.Subtitle.Render(retryPrompt)
		return center(width, height, msg)
	}
	return center(width, height, s.viewExercise(snap))
}

const retryPrompt = "Press Enter to try again"

func (s *PracticeScreen) viewExercise(snap session.Snapshot) string {
	var b strings.Builder

	progress := components.ProgressDots{Completed: snap.Completed, Total: snap.Total}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		components.ExerciseLabel(snap.Position, snap.Total), "   ", progress.View()))
	b.WriteString("\n\n")

	if snap.Calculating() {
		num := components.DigitBox{
			Value:   snap.Input.Numerator,
			Focused: snap.Input.Active == reduction.FieldNumerator,
		}
		den := components.DigitBox{
			Value:   snap.Input.Denominator,
			Focused: snap.Input.Active == reduction.FieldDenominator,
		}
		b.WriteString(components.FractionChain(snap.Chain, snap.Divisor, components.StackedBoxes(num, den)))
	} else {
		b.WriteString(components.FractionChain(snap.Chain, 0, ""))
		if !snap.AwaitingNext {
			div := components.DigitBox{Value: snap.Input.Divisor, Focused: true}
			b.WriteString("\n\n")
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
				theme.Body.Render("Divide by  "), div.View()))
		}
	}
	b.WriteString("\n\n")

	if snap.Err != nil {
		b.WriteString(theme.Incorrect.Render("Couldn't create the next exercise: " + snap.Err.Error()))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(retryPrompt))
	} else if snap.Feedback.Text != "" {
		b.WriteString(theme.FeedbackStyle(snap.Feedback.Category).Render(snap.Feedback.Text))
	} else if s.hintPending {
		b.WriteString(theme.Hint.Render("Thinking of a hint..."))
	}
	return b.String()
}

func (s *PracticeScreen) viewVictory(snap session.Snapshot, width, height int) string {
	headline := "★  " + snap.Feedback.Text + "  ★"
	lines := make([]string, len(snap.Solved))
	for i, chain := range snap.Solved {
		lines[i] = components.SolvedLine(i+1, chain)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(headline))
	b.WriteString("\n\n")
	b.WriteString(components.ProgressDots{Completed: snap.Completed, Total: snap.Total}.View())
	b.WriteString("\n\n")
	for _, line := range lines {
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Press R to play again"))

	cw := components.CardWidth(width, components.FitWidth(append(lines, headline)...))
	body := components.Card(b.String(), cw)
	if !s.confetti.Active() {
		return center(width, height, body)
	}
	burst := s.confetti.View(width, confettiHeight)
	rest := max(height-lipgloss.Height(burst), 0)
	return lipgloss.JoinVertical(lipgloss.Left, burst, center(width, rest, body))
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
