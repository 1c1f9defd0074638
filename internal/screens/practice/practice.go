// Package practice is the exercise screen: it feeds key presses to a
// session.Controller and renders its snapshots.
package practice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/simplify/internal/feedback"
	"github.com/abhisek/simplify/internal/hint"
	"github.com/abhisek/simplify/internal/problemgen"
	"github.com/abhisek/simplify/internal/reduction"
	"github.com/abhisek/simplify/internal/screen"
	"github.com/abhisek/simplify/internal/session"
	"github.com/abhisek/simplify/internal/ui/components"
	"github.com/abhisek/simplify/internal/ui/layout"
)

const (
	hintTimeout      = 15 * time.Second
	confettiInterval = 80 * time.Millisecond
	confettiHeight   = 4
)

// Deps are the collaborators of a practice session.
type Deps struct {
	Generator     problemgen.Generator
	GeneratorName string

	// Hinter is nil when hints are off.
	Hinter hint.Hinter

	Recorder     *session.Recorder
	Resolver     *feedback.Resolver
	Total        int
	AdvanceDelay time.Duration
	Logger       *slog.Logger
}

// PracticeScreen implements screen.Screen for an active session.
type PracticeScreen struct {
	deps     Deps
	ctx      context.Context
	ctrl     *session.Controller
	queue    *session.Deferred
	confetti *components.Confetti

	width       int
	celebrate   bool
	hintPending bool
	errMsg      string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)
var _ screen.Closer = (*PracticeScreen)(nil)

// New creates a PracticeScreen. The session starts in Init.
func New(deps Deps) *PracticeScreen {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	return &PracticeScreen{
		deps:     deps,
		ctx:      context.Background(),
		queue:    session.NewDeferred(),
		confetti: components.NewConfetti(uint64(time.Now().UnixNano())),
		width:    layout.MinWidth,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	ctrl, err := session.New(session.Options{
		Total:         s.deps.Total,
		AdvanceDelay:  s.deps.AdvanceDelay,
		Generator:     s.deps.Generator,
		GeneratorName: s.deps.GeneratorName,
		Resolver:      s.deps.Resolver,
		Scheduler:     s.queue,
		Celebrator:    session.CelebratorFunc(func() { s.celebrate = true }),
		Recorder:      s.deps.Recorder,
		Logger:        s.deps.Logger,
	})
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.ctrl = ctrl

	// A failed first exercise surfaces through Snapshot.Err.
	_ = ctrl.Start(s.ctx)
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// Status shows the exercise counter in the header.
func (s *PracticeScreen) Status() string {
	if s.ctrl == nil {
		return ""
	}
	snap := s.ctrl.Snapshot()
	if snap.Complete {
		return "★ All done"
	}
	return fmt.Sprintf("Exercise %d of %d", snap.Position, snap.Total)
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.ctrl == nil || s.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	snap := s.ctrl.Snapshot()

	hints := func(bindings ...key.Binding) []layout.KeyHint {
		out := make([]layout.KeyHint, 0, len(bindings)+1)
		for _, b := range bindings {
			out = append(out, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
		}
		return append(out, layout.KeyHint{Key: "Esc", Description: "Home"})
	}

	switch {
	case snap.Err != nil:
		return hints(keys.Retry)
	case snap.Complete:
		return hints(keys.PlayAgain)
	case snap.AwaitingNext:
		return hints()
	case snap.Calculating():
		return s.withHint(hints(keys.Digit, keys.NextField, keys.Submit, keys.Undo))
	default:
		return s.withHint(hints(keys.Digit, keys.Submit, keys.Decline))
	}
}

func (s *PracticeScreen) withHint(h []layout.KeyHint) []layout.KeyHint {
	if s.deps.Hinter == nil {
		return h
	}
	help := keys.Hint.Help()
	return append(h[:len(h)-1], layout.KeyHint{Key: help.Key, Description: help.Desc}, h[len(h)-1])
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case advanceMsg:
		s.queue.Fire(msg.ID)
		return s, s.drain()

	case hintReadyMsg:
		s.hintPending = false
		if msg.Err != nil {
			s.deps.Logger.Warn("hint failed", "error", msg.Err)
			return s, nil
		}
		if s.ctrl != nil {
			s.ctrl.ApplyHint(s.ctx, msg.Req, msg.Hint)
		}
		return s, nil

	case confettiTickMsg:
		s.confetti.Step()
		if s.confetti.Active() {
			return s, confettiTick()
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.ctrl == nil {
		return s, nil
	}
	ctx := s.ctx

	switch {
	case key.Matches(msg, keys.Digit):
		s.ctrl.TypeDigit(ctx, int(msg.String()[0]-'0'))
	case key.Matches(msg, keys.Backspace):
		s.ctrl.Backspace(ctx)
	case key.Matches(msg, keys.Retry) && s.ctrl.Err() != nil:
		_ = s.ctrl.Retry(ctx)
	case key.Matches(msg, keys.Submit):
		s.ctrl.Submit(ctx)
	case key.Matches(msg, keys.Decline):
		s.ctrl.DeclineReduction(ctx)
	case key.Matches(msg, keys.Undo):
		s.ctrl.Undo(ctx)
	case key.Matches(msg, keys.NextField):
		s.ctrl.CycleField(ctx)
	case key.Matches(msg, keys.Numerator):
		s.ctrl.SelectField(ctx, reduction.FieldNumerator)
	case key.Matches(msg, keys.Denom):
		s.ctrl.SelectField(ctx, reduction.FieldDenominator)
	case key.Matches(msg, keys.Hint):
		return s, s.requestHint()
	case key.Matches(msg, keys.PlayAgain):
		if s.ctrl.Victory() {
			_ = s.ctrl.ResetSession(ctx)
		}
	default:
		return s, nil
	}
	return s, s.drain()
}

// drain turns newly scheduled controller tasks into ticks and starts the
// confetti when the session was just completed.
func (s *PracticeScreen) drain() tea.Cmd {
	var cmds []tea.Cmd
	for _, task := range s.queue.TakeScheduled() {
		id := task.ID
		cmds = append(cmds, tea.Tick(task.Delay, func(time.Time) tea.Msg {
			return advanceMsg{ID: id}
		}))
	}
	if s.celebrate {
		s.celebrate = false
		s.confetti.Burst(s.width, confettiHeight)
		cmds = append(cmds, confettiTick())
	}
	return tea.Batch(cmds...)
}

func (s *PracticeScreen) requestHint() tea.Cmd {
	if s.deps.Hinter == nil || s.hintPending {
		return nil
	}
	req, ok := s.ctrl.HintRequest()
	if !ok {
		return nil
	}
	s.hintPending = true

	hinter := s.deps.Hinter
	parent := s.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, hintTimeout)
		defer cancel()
		h, err := hinter.Hint(ctx, req)
		return hintReadyMsg{Req: req, Hint: h, Err: err}
	}
}

// Close stops the pending advance and logs an unfinished session.
func (s *PracticeScreen) Close() {
	if s.ctrl != nil {
		s.ctrl.Close(s.ctx)
	}
}

func confettiTick() tea.Cmd {
	return tea.Tick(confettiInterval, func(t time.Time) tea.Msg {
		return confettiTickMsg(t)
	})
}
