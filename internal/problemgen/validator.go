package problemgen

import (
	"fmt"

	"github.com/abhisek/simplify/internal/fraction"
)

// Candidate is an LLM-proposed exercise before validation.
type Candidate struct {
	Fraction fraction.Fraction

	// ClaimedReducible is what the model says about its own fraction.
	ClaimedReducible bool

	// WantReducible is what the prompt asked for.
	WantReducible bool
}

// Validator checks a generated candidate.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name is a short identifier used in errors and logs.
	Name() string

	// Validate returns nil when the candidate passes.
	Validate(c Candidate) *ValidationError
}

// ValidationError describes why a candidate failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
