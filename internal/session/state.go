package session

import (
	"github.com/abhisek/simplify/internal/feedback"
	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/reduction"
)

// DefaultTotalExercises is the number of exercises in a session.
const DefaultTotalExercises = 3

// Snapshot is an immutable view of the controller for rendering.
type Snapshot struct {
	SessionID string

	// Chain is the current exercise's fraction chain, oldest first.
	Chain []fraction.Fraction

	Phase reduction.Phase

	// Divisor is the pending divisor while calculating, 0 otherwise.
	Divisor int

	Input reduction.Input

	// Position is the 1-based number of the exercise on screen.
	Position  int
	Completed int
	Total     int

	Feedback feedback.Message

	// Complete is true on the victory screen.
	Complete bool

	// AwaitingNext is true between a solved exercise and the next one.
	AwaitingNext bool

	// Solved holds the chains of this session's solved exercises.
	Solved [][]fraction.Fraction

	// Err is the last generator failure, if starting an exercise failed.
	Err error
}

// Current returns the last fraction of the chain.
func (s Snapshot) Current() fraction.Fraction {
	if len(s.Chain) == 0 {
		return fraction.Fraction{}
	}
	return s.Chain[len(s.Chain)-1]
}

// Calculating reports whether a divisor has been accepted.
func (s Snapshot) Calculating() bool {
	_, ok := s.Phase.(reduction.Calculating)
	return ok
}
