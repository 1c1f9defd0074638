package practice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/simplify/internal/feedback"
	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/hint"
	"github.com/abhisek/simplify/internal/problemgen"
	"github.com/abhisek/simplify/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func fixedGenerator(fractions ...fraction.Fraction) problemgen.Generator {
	i := 0
	return problemgen.GeneratorFunc(func(context.Context) (fraction.Fraction, error) {
		f := fractions[i%len(fractions)]
		i++
		return f, nil
	})
}

type stubHinter struct{ text string }

func (h stubHinter) Hint(context.Context, hint.Request) (hint.Hint, error) {
	return hint.Hint{Text: h.text, Source: hint.SourceRule}, nil
}

func newScreen(t *testing.T, deps Deps) *PracticeScreen {
	t.Helper()
	if deps.Resolver == nil {
		deps.Resolver = feedback.NewResolver("en")
	}
	s := New(deps)
	s.Init()
	if s.ctrl == nil {
		t.Fatalf("Init() did not create a controller: %s", s.errMsg)
	}
	return s
}

func send(s *PracticeScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next screen.Screen
		next, cmd = s.Update(msg)
		if next != s {
			panic("practice screen replaced itself")
		}
	}
	return cmd
}

func typeText(s *PracticeScreen, text string) {
	for _, r := range text {
		send(s, keyPress(r))
	}
}

func TestInitialView(t *testing.T) {
	s := newScreen(t, Deps{Generator: fixedGenerator(fraction.New(30, 80)), Total: 3})

	view := s.View(100, 30)
	for _, want := range []string{"30", "80", "Divide by"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if got := s.Status(); got != "Exercise 1 of 3" {
		t.Errorf("Status() = %q, want %q", got, "Exercise 1 of 3")
	}
}

func TestReduceAndAdvance(t *testing.T) {
	s := newScreen(t, Deps{
		Generator: fixedGenerator(fraction.New(30, 80), fraction.New(3, 7)),
		Total:     2,
	})

	typeText(s, "10")
	send(s, specialKey(tea.KeyEnter))
	if !s.ctrl.Snapshot().Calculating() {
		t.Fatal("divisor 10 should be accepted")
	}

	typeText(s, "3")
	send(s, specialKey(tea.KeyTab))
	typeText(s, "8")
	send(s, specialKey(tea.KeyEnter))

	snap := s.ctrl.Snapshot()
	if got := snap.Current(); got != fraction.New(3, 8) {
		t.Fatalf("Current() = %v, want 3/8", got)
	}

	cmd := send(s, keyPress('x'))
	if cmd == nil {
		t.Fatal("solving an exercise should schedule the advance")
	}
	if !s.ctrl.AwaitingNext() {
		t.Fatal("AwaitingNext() = false after solving")
	}

	// Typing is ignored until the next exercise arrives.
	typeText(s, "5")
	if got := s.ctrl.Snapshot().Input.Divisor; got != "" {
		t.Errorf("Divisor input = %q while awaiting, want empty", got)
	}

	send(s, advanceMsg{ID: 1})
	snap = s.ctrl.Snapshot()
	if snap.AwaitingNext {
		t.Error("still awaiting after advance fired")
	}
	if got := snap.Current(); got != fraction.New(3, 7) {
		t.Errorf("Current() = %v, want 3/7", got)
	}
	if got := s.Status(); got != "Exercise 2 of 2" {
		t.Errorf("Status() = %q, want %q", got, "Exercise 2 of 2")
	}
}

func TestStaleAdvanceIgnored(t *testing.T) {
	s := newScreen(t, Deps{Generator: fixedGenerator(fraction.New(3, 7)), Total: 3})

	send(s, keyPress('x'))
	send(s, advanceMsg{ID: 1})
	send(s, advanceMsg{ID: 1})

	if got := s.ctrl.Completed(); got != 1 {
		t.Errorf("Completed() = %d, want 1", got)
	}
	if s.ctrl.AwaitingNext() {
		t.Error("AwaitingNext() = true after advance")
	}
}

func TestVictoryAndPlayAgain(t *testing.T) {
	s := newScreen(t, Deps{Generator: fixedGenerator(fraction.New(2, 3)), Total: 1})

	cmd := send(s, keyPress('x'))
	if cmd == nil {
		t.Fatal("victory should start the confetti")
	}
	if !s.ctrl.Victory() {
		t.Fatal("Victory() = false after the last exercise")
	}
	if !s.confetti.Active() {
		t.Error("confetti not active after victory")
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "play again") {
		t.Error("victory view missing play-again prompt")
	}
	if !strings.Contains(view, "2/3") {
		t.Error("victory view missing solved chain")
	}

	first := s.ctrl.SessionID()
	send(s, keyPress('r'))
	if s.ctrl.Victory() {
		t.Error("Victory() = true after play again")
	}
	if s.ctrl.SessionID() == first {
		t.Error("play again should start a new session")
	}
}

func TestConfettiStops(t *testing.T) {
	s := newScreen(t, Deps{Generator: fixedGenerator(fraction.New(2, 3)), Total: 1})
	send(s, keyPress('x'))

	for i := 0; i < 1000 && s.confetti.Active(); i++ {
		send(s, confettiTickMsg(time.Now()))
	}
	if s.confetti.Active() {
		t.Error("confetti still active after many ticks")
	}
	if cmd := send(s, confettiTickMsg(time.Now())); cmd != nil {
		t.Error("finished confetti should not tick again")
	}
}

func TestHint(t *testing.T) {
	s := newScreen(t, Deps{
		Generator: fixedGenerator(fraction.New(4, 6)),
		Hinter:    stubHinter{text: "Try 2"},
	})

	cmd := send(s, keyPress('?'))
	if cmd == nil {
		t.Fatal("hint key should return a command")
	}
	if again := send(s, keyPress('?')); again != nil {
		t.Error("second hint request while one is pending should be ignored")
	}

	msg := cmd()
	send(s, msg)
	if got := s.ctrl.Snapshot().Feedback.Text; got != "Try 2" {
		t.Errorf("Feedback.Text = %q, want %q", got, "Try 2")
	}
	if s.hintPending {
		t.Error("hintPending = true after hint arrived")
	}
}

func TestHintError(t *testing.T) {
	s := newScreen(t, Deps{
		Generator: fixedGenerator(fraction.New(4, 6)),
		Hinter:    stubHinter{text: "unused"},
	})
	req, _ := s.ctrl.HintRequest()
	s.hintPending = true

	send(s, hintReadyMsg{Req: req, Err: errors.New("timeout")})
	if s.hintPending {
		t.Error("hintPending = true after failed hint")
	}
	if got := s.ctrl.Snapshot().Feedback.Text; got != "" {
		t.Errorf("Feedback.Text = %q, want empty", got)
	}
}

func TestHintsOff(t *testing.T) {
	s := newScreen(t, Deps{Generator: fixedGenerator(fraction.New(4, 6))})

	if cmd := send(s, keyPress('?')); cmd != nil {
		t.Error("hint key should do nothing when hints are off")
	}
	for _, h := range s.KeyHints() {
		if h.Description == "hint" {
			t.Error("KeyHints() lists hint while hints are off")
		}
	}
}

func TestKeyHintsByPhase(t *testing.T) {
	s := newScreen(t, Deps{
		Generator: fixedGenerator(fraction.New(4, 6)),
		Hinter:    stubHinter{text: "x"},
	})

	has := func(desc string) bool {
		for _, h := range s.KeyHints() {
			if h.Description == desc {
				return true
			}
		}
		return false
	}

	if !has("can't reduce") || !has("hint") {
		t.Error("deciding hints should offer decline and hint")
	}
	typeText(s, "2")
	send(s, specialKey(tea.KeyEnter))
	if !has("undo") || !has("next box") {
		t.Error("calculating hints should offer undo and next box")
	}
	if has("can't reduce") {
		t.Error("calculating hints should not offer decline")
	}
}

func TestCloseCancelsAdvance(t *testing.T) {
	s := newScreen(t, Deps{Generator: fixedGenerator(fraction.New(3, 7)), Total: 3})
	send(s, keyPress('x'))

	s.Close()
	if got := s.queue.Pending(); got != 0 {
		t.Errorf("Pending() = %d after Close, want 0", got)
	}
	send(s, advanceMsg{ID: 1})
	if got := s.ctrl.Completed(); got != 1 {
		t.Errorf("Completed() = %d, want 1", got)
	}
}

func TestGeneratorFailure(t *testing.T) {
	gen := problemgen.GeneratorFunc(func(context.Context) (fraction.Fraction, error) {
		return fraction.Fraction{}, errors.New("offline")
	})
	s := newScreen(t, Deps{Generator: gen})

	view := s.View(100, 30)
	if !strings.Contains(view, "offline") {
		t.Errorf("View() should show the generator error, got:\n%s", view)
	}
}

func TestRetryAfterGeneratorFailure(t *testing.T) {
	fail := true
	gen := problemgen.GeneratorFunc(func(context.Context) (fraction.Fraction, error) {
		if fail {
			return fraction.Fraction{}, errors.New("offline")
		}
		return fraction.New(4, 6), nil
	})
	s := newScreen(t, Deps{Generator: gen, Total: 2})

	if view := s.View(100, 30); !strings.Contains(view, "Press Enter to try again") {
		t.Errorf("View() missing retry prompt, got:\n%s", view)
	}
	if hints := s.KeyHints(); hints[0].Description != "try again" {
		t.Errorf("KeyHints()[0] = %+v, want try again", hints[0])
	}

	send(s, specialKey(tea.KeyEnter))
	if s.ctrl.Err() == nil {
		t.Fatal("retry against a failing generator cleared the error")
	}

	fail = false
	send(s, specialKey(tea.KeyEnter))
	if err := s.ctrl.Err(); err != nil {
		t.Fatalf("Err() = %v after a successful retry", err)
	}
	if got := s.ctrl.Snapshot().Current(); got != fraction.New(4, 6) {
		t.Errorf("current = %s, want 4/6", got)
	}
	if view := s.View(100, 30); strings.Contains(view, "try again") {
		t.Error("retry prompt still shown after recovery")
	}
}
