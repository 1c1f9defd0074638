package home

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/simplify/internal/router"
	"github.com/abhisek/simplify/internal/screen"
	"github.com/abhisek/simplify/internal/store"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "practice" }
func (s *stubScreen) Title() string                           { return "Practice" }

func TestStartPracticePushesNewScreen(t *testing.T) {
	built := 0
	h := New(func() screen.Screen {
		built++
		return &stubScreen{}
	}, nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on START PRACTICE should return a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil || built != 1 {
		t.Errorf("practice factory called %d times, want 1", built)
	}
}

func TestHistoryDisabledWithoutLog(t *testing.T) {
	h := New(func() screen.Screen { return &stubScreen{} }, nil)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := h.menu.Items[h.menu.Selected].Label; got != "EXIT" {
		t.Errorf("selected = %q, want EXIT (HISTORY disabled)", got)
	}
	if cmd := h.Init(); cmd != nil {
		t.Error("Init() without a practice log should not load stats")
	}
}

func TestMascotFor(t *testing.T) {
	tests := []struct {
		name   string
		totals store.PracticeTotals
		err    bool
		want   MascotVariant
	}{
		{"new learner", store.PracticeTotals{}, false, MascotIdle},
		{"finished a session", store.PracticeTotals{SessionsFinished: 2}, false, MascotCelebrating},
		{"log unreadable", store.PracticeTotals{SessionsFinished: 2}, true, MascotAlert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mascotFor(tt.totals, tt.err); got != tt.want {
				t.Errorf("mascotFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatsLoaded(t *testing.T) {
	h := New(func() screen.Screen { return &stubScreen{} }, nil)

	h.Update(statsLoadedMsg{Totals: store.PracticeTotals{SessionsFinished: 1, Exercises: 3}})
	if h.totals.Exercises != 3 || h.mascotVariant != MascotCelebrating {
		t.Errorf("totals = %+v, mascot = %v", h.totals, h.mascotVariant)
	}

	h.Update(statsLoadedMsg{Err: errors.New("locked")})
	if h.mascotVariant != MascotAlert {
		t.Errorf("mascot = %v, want MascotAlert", h.mascotVariant)
	}
	if h.totals.Exercises != 3 {
		t.Error("failed reload should keep the previous totals")
	}
}
