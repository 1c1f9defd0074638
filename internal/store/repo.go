package store

import (
	"context"
	"time"

	"github.com/abhisek/simplify/internal/fraction"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To

	// Purpose keeps only LLM events with this purpose.
	Purpose string
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID          string
	Action             string // "start" or "end"
	ExercisesTotal     int
	ExercisesCompleted int
	Generator          string
	Lang               string
	Duration           time.Duration
}

// ExerciseEventData captures one solved exercise.
type ExerciseEventData struct {
	SessionID string
	Position  int
	Chain     []fraction.Fraction
	Mistakes  int
	Hints     int
	Duration  time.Duration
}

// AttemptEventData captures one evaluated learner action.
type AttemptEventData struct {
	SessionID string
	Position  int
	Fraction  fraction.Fraction
	Outcome   string
	Divisor   int
	Mistake   bool
}

// HintEventData captures a hint shown to the learner.
type HintEventData struct {
	SessionID string
	Fraction  fraction.Fraction
	HintText  string
	Source    string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	Subject      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionRecord is a finished (or abandoned) session read back from the log.
type SessionRecord struct {
	Sequence           int64
	Timestamp          time.Time
	SessionID          string
	ExercisesTotal     int
	ExercisesCompleted int
	Generator          string
	Lang               string
	Duration           time.Duration
}

// Complete reports whether every exercise of the session was solved.
func (r SessionRecord) Complete() bool {
	return r.ExercisesTotal > 0 && r.ExercisesCompleted >= r.ExercisesTotal
}

// ExerciseRecord is a solved exercise read back from the log.
type ExerciseRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Position  int
	Chain     []fraction.Fraction
	Steps     int
	Mistakes  int
	Hints     int
	Duration  time.Duration
}

// Start returns the first fraction of the chain.
func (r ExerciseRecord) Start() fraction.Fraction {
	if len(r.Chain) == 0 {
		return fraction.Fraction{}
	}
	return r.Chain[0]
}

// Final returns the last fraction of the chain.
func (r ExerciseRecord) Final() fraction.Fraction {
	if len(r.Chain) == 0 {
		return fraction.Fraction{}
	}
	return r.Chain[len(r.Chain)-1]
}

// PracticeTotals aggregates the whole practice log.
type PracticeTotals struct {
	SessionsStarted  int
	SessionsFinished int
	Exercises        int
	Steps            int
	Mistakes         int
	Hints            int
	AvgExercise      time.Duration
}

// OutcomeCount is the number of attempts with a given outcome.
type OutcomeCount struct {
	Outcome string
	Count   int
}

// LLMEvent is a recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	Subject      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates LLM requests by one grouping key.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the practice log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendExerciseEvent(ctx context.Context, data ExerciseEventData) error
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns ended sessions, newest first.
	RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)
	// RecentExercises returns solved exercises, newest first.
	RecentExercises(ctx context.Context, opts QueryOpts) ([]ExerciseRecord, error)
	// SessionExercises returns the exercises of one session in order.
	SessionExercises(ctx context.Context, sessionID string) ([]ExerciseRecord, error)
	// Totals aggregates the whole practice log.
	Totals(ctx context.Context) (PracticeTotals, error)
	// MistakeCounts returns mistake outcomes, most frequent first.
	MistakeCounts(ctx context.Context) ([]OutcomeCount, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	// GetLLMEvent returns nil when no event has the given id.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
