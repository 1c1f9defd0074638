package session

import (
	"context"
	"log/slog"

	"github.com/abhisek/simplify/internal/store"
)

// Recorder writes practice events to the event log. Write failures are
// logged and otherwise ignored: practice never stops because of the log.
// A nil Recorder, or one without a repo, records nothing.
type Recorder struct {
	repo   store.EventRepo
	logger *slog.Logger
}

// NewRecorder returns a Recorder writing to repo.
func NewRecorder(repo store.EventRepo, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{repo: repo, logger: logger}
}

func (r *Recorder) enabled() bool {
	return r != nil && r.repo != nil
}

func (r *Recorder) session(ctx context.Context, data store.SessionEventData) {
	if !r.enabled() {
		return
	}
	if err := r.repo.AppendSessionEvent(ctx, data); err != nil {
		r.logger.WarnContext(ctx, "failed to record session event", "session_id", data.SessionID, "action", data.Action, "error", err)
	}
}

func (r *Recorder) exercise(ctx context.Context, data store.ExerciseEventData) {
	if !r.enabled() {
		return
	}
	if err := r.repo.AppendExerciseEvent(ctx, data); err != nil {
		r.logger.WarnContext(ctx, "failed to record exercise", "session_id", data.SessionID, "position", data.Position, "error", err)
	}
}

func (r *Recorder) attempt(ctx context.Context, data store.AttemptEventData) {
	if !r.enabled() {
		return
	}
	if err := r.repo.AppendAttemptEvent(ctx, data); err != nil {
		r.logger.WarnContext(ctx, "failed to record attempt", "session_id", data.SessionID, "outcome", data.Outcome, "error", err)
	}
}

func (r *Recorder) hint(ctx context.Context, data store.HintEventData) {
	if !r.enabled() {
		return
	}
	if err := r.repo.AppendHintEvent(ctx, data); err != nil {
		r.logger.WarnContext(ctx, "failed to record hint", "session_id", data.SessionID, "error", err)
	}
}
