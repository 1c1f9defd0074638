package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/simplify/internal/router"
	"github.com/abhisek/simplify/internal/screen"
	"github.com/abhisek/simplify/internal/screens/history"
	"github.com/abhisek/simplify/internal/screens/welcome"
	"github.com/abhisek/simplify/internal/store"
	"github.com/abhisek/simplify/internal/ui/components"
	"github.com/abhisek/simplify/internal/ui/layout"
)

type statsLoadedMsg struct {
	Totals store.PracticeTotals
	Err    error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	eventRepo     store.EventRepo
	totals        store.PracticeTotals
	statsErr      bool
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. newPractice builds a fresh practice screen
// for each START PRACTICE; eventRepo may be nil when the practice log is
// unavailable.
func New(newPractice func() screen.Screen, eventRepo store.EventRepo) *HomeScreen {
	menuLabels := []string{"START PRACTICE", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newPractice()}
			}
		}},
		{Label: menuLabels[1], Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		eventRepo:  eventRepo,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	if h.eventRepo == nil {
		return nil
	}
	repo := h.eventRepo
	return func() tea.Msg {
		totals, err := repo.Totals(context.Background())
		return statsLoadedMsg{Totals: totals, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.statsErr = msg.Err != nil
		if msg.Err == nil {
			h.totals = msg.Totals
		}
		h.mascotVariant = mascotFor(h.totals, h.statsErr)
		return h, nil

	case router.ResumedMsg:
		return h, h.loadStats()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.Compact(width, height)

	cw := components.CardWidth(width, welcome.BannerWidth)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	sections = append(sections, renderStatsBar(h.totals, cw, compact))

	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		disabled[i] = item.Disabled
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, disabled))
	}

	return components.Cabinet(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func mascotFor(t store.PracticeTotals, statsErr bool) MascotVariant {
	switch {
	case statsErr:
		return MascotAlert
	case t.SessionsFinished > 0:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}
