package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/router"
	"github.com/abhisek/simplify/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func advance(w *WelcomeScreen, ticks int) {
	for range ticks {
		w.Update(tickMsg(time.Now()))
	}
}

func TestSampleChain(t *testing.T) {
	w, _ := newWelcome()
	want := []fraction.Fraction{fraction.New(30, 80), fraction.New(15, 40), fraction.New(3, 8)}
	if len(w.chain) != len(want) {
		t.Fatalf("chain = %v, want %v", w.chain, want)
	}
	for i := range want {
		if w.chain[i] != want[i] {
			t.Errorf("chain[%d] = %s, want %s", i, w.chain[i], want[i])
		}
	}
	if last := w.chain[len(w.chain)-1]; last.IsReducible() {
		t.Errorf("sample ends on %s, which still reduces", last)
	}
}

func TestReducesOneStepAtATime(t *testing.T) {
	w, _ := newWelcome()

	tests := []struct {
		ticks   int
		shown   int
		divisor int
	}{
		{0, 1, 2},
		{6, 2, 5},
		{6, 3, 0},
		{20, 3, 0},
	}
	for _, tt := range tests {
		advance(w, tt.ticks)
		shown, divisor := w.step()
		if len(shown) != tt.shown || divisor != tt.divisor {
			t.Errorf("at %v: step() = %d fractions ÷%d, want %d ÷%d", w.elapsed, len(shown), divisor, tt.shown, tt.divisor)
		}
	}
}

func TestViewByPhase(t *testing.T) {
	w, _ := newWelcome()

	view := w.View(100, 30)
	if !strings.Contains(view, "÷2") || strings.Contains(view, "15") {
		t.Errorf("first frame should divide 30/80 by 2:\n%s", view)
	}
	if strings.Contains(view, "lowest terms") {
		t.Error("title shown before the sample is reduced")
	}

	advance(w, int(titleAt/tickInterval))
	view = w.View(100, 30)
	if strings.Contains(view, "÷") {
		t.Error("reduced sample still shows a divisor")
	}
	for _, want := range []string{"lowest terms", "press any key"} {
		if !strings.Contains(view, want) {
			t.Errorf("final frame missing %q", want)
		}
	}
}

func TestKeypressReplacesScreen(t *testing.T) {
	for _, ticks := range []int{0, 3, 45} {
		w, calls := newWelcome()
		advance(w, ticks)

		_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
		if cmd == nil {
			t.Fatalf("after %d ticks: keypress produced no command", ticks)
		}
		msg, ok := cmd().(router.ReplaceScreenMsg)
		if !ok || msg.Screen == nil {
			t.Fatalf("after %d ticks: got %T, want ReplaceScreenMsg with a screen", ticks, cmd())
		}
		if *calls != 1 {
			t.Errorf("after %d ticks: next called %d times, want 1", ticks, *calls)
		}
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, calls := newWelcome()
	advance(w, 45)
	if *calls != 0 {
		t.Errorf("next called %d times without a keypress", *calls)
	}
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
}

func TestTransitionOnce(t *testing.T) {
	w, calls := newWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a'})
	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("next called %d times, want 1", *calls)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newWelcome()
	if w.Title() != "" {
		t.Errorf("Title() = %q, want empty", w.Title())
	}
}
