package problemgen

import "fmt"

// MathCheckValidator recomputes reducibility with gcd and rejects
// candidates whose claim, or whose kind, does not match.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(c Candidate) *ValidationError {
	actual := c.Fraction.IsReducible()
	if actual != c.ClaimedReducible {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s has gcd %d but model claimed reducible=%t", c.Fraction, c.Fraction.GCD(), c.ClaimedReducible),
			Retryable: true,
		}
	}
	if actual != c.WantReducible {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("asked for reducible=%t, got %s", c.WantReducible, c.Fraction),
			Retryable: true,
		}
	}
	return nil
}
