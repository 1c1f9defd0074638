package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/router"
	"github.com/abhisek/simplify/internal/screen"
	"github.com/abhisek/simplify/internal/store"
	"github.com/abhisek/simplify/internal/ui/layout"
	"github.com/abhisek/simplify/internal/ui/theme"
)

const sessionLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Err      error
}

type exercisesLoadedMsg struct {
	SessionID string
	Exercises []store.ExerciseRecord
	Err       error
}

// HistoryScreen lists past sessions. Expanding a session shows the
// reduction chain of each exercise solved in it.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	exercises map[string][]store.ExerciseRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		exercises: make(map[string][]store.ExerciseRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		sessions, err := repo.RecentSessions(context.Background(), store.QueryOpts{Limit: sessionLimit})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case exercisesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.exercises[msg.SessionID] = msg.Exercises
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.sessions) == 0 {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			if s.expanded[s.selected] {
				return s, s.loadExercises(s.sessions[s.selected].SessionID)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadExercises(sessionID string) tea.Cmd {
	if _, ok := s.exercises[sessionID]; ok {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		exercises, err := repo.SessionExercises(context.Background(), sessionID)
		return exercisesLoadedMsg{SessionID: sessionID, Exercises: exercises, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		status := "finished"
		if !sess.Complete() {
			status = "left early"
		}
		line := fmt.Sprintf("%s%s  %s  %d/%d exercises  %s",
			prefix, sess.Timestamp.Local().Format("Jan 02, 2006 15:04"),
			formatDuration(sess.Duration), sess.ExercisesCompleted, sess.ExercisesTotal, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderExercises(sess.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderExercises(sessionID string, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	exercises, ok := s.exercises[sessionID]
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    Loading...")) + "\n"
	}
	if len(exercises) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No exercises solved")) + "\n"
	}

	var b strings.Builder
	for _, ex := range exercises {
		line := fmt.Sprintf("    %d. %s", ex.Position, fraction.FormatChain(ex.Chain))
		if ex.Mistakes > 0 {
			line += fmt.Sprintf("  (%d mistakes)", ex.Mistakes)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
