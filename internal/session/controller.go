// Package session runs a practice session: a fixed number of reduction
// exercises followed by a victory screen.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/simplify/internal/feedback"
	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/hint"
	"github.com/abhisek/simplify/internal/problemgen"
	"github.com/abhisek/simplify/internal/reduction"
	"github.com/abhisek/simplify/internal/store"
)

// DefaultAdvanceDelay is how long the "next exercise" message stays up.
const DefaultAdvanceDelay = 2 * time.Second

// Celebrator is told once when a session is completed.
type Celebrator interface {
	Celebrate()
}

// CelebratorFunc adapts a function to the Celebrator interface.
type CelebratorFunc func()

func (f CelebratorFunc) Celebrate() { f() }

// Options configures a Controller. Generator and Scheduler are required.
type Options struct {
	Total        int
	AdvanceDelay time.Duration

	Generator     problemgen.Generator
	GeneratorName string

	Resolver   *feedback.Resolver
	Scheduler  Scheduler
	Celebrator Celebrator
	Recorder   *Recorder
	Logger     *slog.Logger
}

// Controller owns the session state and the current exercise's state
// machine. It is not safe for concurrent use; the TUI calls it from its
// update loop only.
type Controller struct {
	total     int
	delay     time.Duration
	gen       problemgen.Generator
	genName   string
	resolver  *feedback.Resolver
	scheduler Scheduler
	celebrate Celebrator
	recorder  *Recorder
	logger    *slog.Logger

	sessionID    string
	sessionStart time.Time
	completed    int
	solved       [][]fraction.Fraction
	victory      bool
	closed       bool

	machine       *reduction.Machine
	exerciseStart time.Time
	mistakes      int
	hints         int

	feedback feedback.Message
	pending  Timer
	err      error
}

// New creates a Controller. Call Start to serve the first exercise.
func New(opts Options) (*Controller, error) {
	if opts.Generator == nil {
		return nil, fmt.Errorf("session: generator is required")
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("session: scheduler is required")
	}
	if opts.Total <= 0 {
		opts.Total = DefaultTotalExercises
	}
	if opts.AdvanceDelay <= 0 {
		opts.AdvanceDelay = DefaultAdvanceDelay
	}
	if opts.Resolver == nil {
		opts.Resolver = feedback.NewResolver(feedback.DefaultLanguage)
	}
	if opts.GeneratorName == "" {
		opts.GeneratorName = problemgen.SourceRandom
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Controller{
		total:     opts.Total,
		delay:     opts.AdvanceDelay,
		gen:       opts.Generator,
		genName:   opts.GeneratorName,
		resolver:  opts.Resolver,
		scheduler: opts.Scheduler,
		celebrate: opts.Celebrator,
		recorder:  opts.Recorder,
		logger:    opts.Logger,
	}, nil
}

// Start begins a new session and its first exercise.
func (c *Controller) Start(ctx context.Context) error {
	c.beginSession(ctx)
	return c.StartExercise(ctx)
}

func (c *Controller) beginSession(ctx context.Context) {
	c.sessionID = uuid.New().String()
	c.sessionStart = time.Now()
	c.completed = 0
	c.solved = nil
	c.victory = false

	c.logger.InfoContext(ctx, "session started", "session_id", c.sessionID, "total", c.total, "generator", c.genName)
	c.recorder.session(ctx, store.SessionEventData{
		SessionID:      c.sessionID,
		Action:         "start",
		ExercisesTotal: c.total,
		Generator:      c.genName,
		Lang:           c.resolver.Lang(),
	})
}

// StartExercise asks the generator for a fraction and resets the exercise
// state around it. On failure the previous state is kept and the error is
// also reported by Snapshot.
func (c *Controller) StartExercise(ctx context.Context) error {
	f, err := c.gen.Generate(ctx)
	if err != nil {
		c.err = fmt.Errorf("generate exercise: %w", err)
		c.logger.ErrorContext(ctx, "failed to start exercise", "session_id", c.sessionID, "error", c.err)
		return c.err
	}
	if !f.Valid() || f.Numerator == f.Denominator {
		c.err = fmt.Errorf("generate exercise: invalid fraction %s", f)
		c.logger.ErrorContext(ctx, "failed to start exercise", "session_id", c.sessionID, "error", c.err)
		return c.err
	}

	c.err = nil
	c.machine = reduction.New(f)
	c.exerciseStart = time.Now()
	c.mistakes = 0
	c.hints = 0
	c.feedback = feedback.Message{}

	c.logger.DebugContext(ctx, "exercise started", "session_id", c.sessionID, "position", c.completed+1, "fraction", f.String())
	return nil
}

// Retry asks the generator again after StartExercise failed. It is
// ignored while no generator error is reported.
func (c *Controller) Retry(ctx context.Context) error {
	if c.err == nil || c.victory || c.closed || c.pending != nil {
		return nil
	}
	return c.StartExercise(ctx)
}

// OnExerciseSolved counts the current exercise as completed. It either
// ends the session in victory or schedules the next exercise. Calls after
// victory, after Close or while the next exercise is pending are ignored.
func (c *Controller) OnExerciseSolved(ctx context.Context) {
	if c.victory || c.closed || c.pending != nil {
		return
	}
	c.completed++

	if c.machine != nil {
		c.solved = append(c.solved, c.machine.Chain())
		c.recorder.exercise(ctx, store.ExerciseEventData{
			SessionID: c.sessionID,
			Position:  c.completed,
			Chain:     c.machine.Chain(),
			Mistakes:  c.mistakes,
			Hints:     c.hints,
			Duration:  time.Since(c.exerciseStart),
		})
	}

	if c.completed >= c.total {
		c.victory = true
		c.feedback = c.resolver.SessionComplete()
		c.endSession(ctx)
		if c.celebrate != nil {
			c.celebrate.Celebrate()
		}
		return
	}

	c.feedback = c.resolver.ExerciseComplete()
	c.pending = c.scheduler.AfterFunc(c.delay, func() {
		c.pending = nil
		if c.closed {
			return
		}
		_ = c.StartExercise(ctx)
	})
}

func (c *Controller) endSession(ctx context.Context) {
	d := time.Since(c.sessionStart)
	c.logger.InfoContext(ctx, "session ended", "session_id", c.sessionID, "completed", c.completed, "total", c.total, "duration", d)
	c.recorder.session(ctx, store.SessionEventData{
		SessionID:          c.sessionID,
		Action:             "end",
		ExercisesTotal:     c.total,
		ExercisesCompleted: c.completed,
		Generator:          c.genName,
		Lang:               c.resolver.Lang(),
		Duration:           d,
	})
}

// ResetSession starts over from the victory screen. It is ignored
// anywhere else.
func (c *Controller) ResetSession(ctx context.Context) error {
	if !c.victory || c.closed {
		return nil
	}
	c.stopPending()
	c.beginSession(ctx)
	return c.StartExercise(ctx)
}

// Close stops any scheduled advance. A session left before victory is
// logged as ended with the exercises completed so far.
func (c *Controller) Close(ctx context.Context) {
	if c.closed {
		return
	}
	c.closed = true
	c.stopPending()
	if c.sessionID != "" && !c.victory {
		c.endSession(ctx)
	}
}

func (c *Controller) stopPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// accepting reports whether learner input reaches the state machine.
func (c *Controller) accepting() bool {
	return c.machine != nil && !c.victory && !c.closed && c.pending == nil
}

// TypeDigit appends a digit to the active field.
func (c *Controller) TypeDigit(ctx context.Context, d int) reduction.Outcome {
	return c.apply(ctx, func(m *reduction.Machine) reduction.Outcome { return m.TypeDigit(d) })
}

// Backspace removes the last digit of the active field.
func (c *Controller) Backspace(ctx context.Context) reduction.Outcome {
	return c.apply(ctx, (*reduction.Machine).Backspace)
}

// SelectField moves keypad focus.
func (c *Controller) SelectField(ctx context.Context, f reduction.Field) reduction.Outcome {
	return c.apply(ctx, func(m *reduction.Machine) reduction.Outcome { return m.SelectField(f) })
}

// CycleField moves keypad focus to the next field of the phase.
func (c *Controller) CycleField(ctx context.Context) reduction.Outcome {
	return c.apply(ctx, (*reduction.Machine).CycleField)
}

// Submit evaluates the fields of the current phase.
func (c *Controller) Submit(ctx context.Context) reduction.Outcome {
	return c.apply(ctx, (*reduction.Machine).Submit)
}

// DeclineReduction claims the current fraction is fully reduced.
func (c *Controller) DeclineReduction(ctx context.Context) reduction.Outcome {
	return c.apply(ctx, (*reduction.Machine).DeclineReduction)
}

// Undo abandons the accepted divisor.
func (c *Controller) Undo(ctx context.Context) reduction.Outcome {
	return c.apply(ctx, (*reduction.Machine).Undo)
}

func (c *Controller) apply(ctx context.Context, op func(*reduction.Machine) reduction.Outcome) reduction.Outcome {
	if !c.accepting() {
		return reduction.Outcome{Kind: reduction.KindIgnored}
	}

	before := c.machine.Current()
	o := op(c.machine)

	if evaluated(o.Kind) {
		if o.IsMistake() {
			c.mistakes++
		}
		c.recorder.attempt(ctx, store.AttemptEventData{
			SessionID: c.sessionID,
			Position:  c.completed + 1,
			Fraction:  before,
			Outcome:   o.Kind.String(),
			Divisor:   o.Divisor,
			Mistake:   o.IsMistake(),
		})
	}

	msg, action := c.resolver.Resolve(o)
	switch action {
	case feedback.ActionShow:
		c.feedback = msg
	case feedback.ActionClear:
		c.feedback = feedback.Message{}
	}

	if o.Kind == reduction.KindSolved {
		c.OnExerciseSolved(ctx)
	}
	return o
}

// evaluated reports whether an outcome is the result of a submission
// rather than editing or navigation.
func evaluated(k reduction.Kind) bool {
	switch k {
	case reduction.KindIgnored, reduction.KindEdited, reduction.KindFocused, reduction.KindUndone:
		return false
	}
	return true
}

// HintRequest describes the current exercise for a hinter. It returns
// false when no hint can be shown.
func (c *Controller) HintRequest() (hint.Request, bool) {
	if !c.accepting() {
		return hint.Request{}, false
	}
	d, _ := c.machine.Divisor()
	return hint.Request{
		Fraction: c.machine.Current(),
		Divisor:  d,
		Lang:     c.resolver.Lang(),
	}, true
}

// ApplyHint shows a hint produced for req. Hints that arrive after the
// learner moved on are dropped.
func (c *Controller) ApplyHint(ctx context.Context, req hint.Request, h hint.Hint) bool {
	cur, ok := c.HintRequest()
	if !ok || cur != req || h.Text == "" {
		return false
	}

	c.hints++
	c.feedback = feedback.Hint(h.Text)
	c.recorder.hint(ctx, store.HintEventData{
		SessionID: c.sessionID,
		Fraction:  req.Fraction,
		HintText:  h.Text,
		Source:    h.Source,
	})
	return true
}

// Snapshot returns the state to render.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		SessionID:    c.sessionID,
		Completed:    c.completed,
		Total:        c.total,
		Feedback:     c.feedback,
		Complete:     c.victory,
		AwaitingNext: c.pending != nil,
		Err:          c.err,
		Phase:        reduction.Deciding{},
		Solved:       slices.Clone(c.solved),
	}

	s.Position = c.completed + 1
	if s.AwaitingNext || s.Complete {
		s.Position = c.completed
	}

	if c.machine != nil {
		s.Chain = c.machine.Chain()
		s.Phase = c.machine.Phase()
		s.Divisor, _ = c.machine.Divisor()
		s.Input = c.machine.Input()
	}
	return s
}

// SessionID returns the current session's ID.
func (c *Controller) SessionID() string { return c.sessionID }

// Completed returns the number of solved exercises in this session.
func (c *Controller) Completed() int { return c.completed }

// Total returns the number of exercises in a session.
func (c *Controller) Total() int { return c.total }

// Victory reports whether the session is complete.
func (c *Controller) Victory() bool { return c.victory }

// Err returns the last generator error, or nil once an exercise started.
func (c *Controller) Err() error { return c.err }

// AwaitingNext reports whether the next exercise is scheduled.
func (c *Controller) AwaitingNext() bool { return c.pending != nil }
