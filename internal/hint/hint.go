// Package hint produces short nudges for the fraction a learner is stuck on.
package hint

import (
	"context"
	"fmt"

	"github.com/abhisek/simplify/internal/fraction"
)

// Sources recorded with each hint.
const (
	SourceRule = "rule"
	SourceLLM  = "llm"
)

// Request describes what the learner is looking at.
type Request struct {
	Fraction fraction.Fraction

	// Divisor is the accepted divisor while calculating, 0 while deciding.
	Divisor int

	Lang string
}

// Target names the step the hint is for: "30/80", or "30/80 ÷10" while
// calculating.
func (r Request) Target() string {
	if r.Divisor > 1 {
		return fmt.Sprintf("%s ÷%d", r.Fraction, r.Divisor)
	}
	return r.Fraction.String()
}

// Hint is a piece of advice plus where it came from.
type Hint struct {
	Text   string
	Source string
}

// Hinter produces a hint for a request.
type Hinter interface {
	Hint(ctx context.Context, req Request) (Hint, error)
}
