package problemgen

import "fmt"

// StructuralValidator enforces the exercise shape: positive, distinct
// terms no larger than MaxTerm.
type StructuralValidator struct {
	MaxTerm int
}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c Candidate) *ValidationError {
	f := c.Fraction
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...), Retryable: true}
	}

	switch {
	case f.Numerator <= 0 || f.Denominator <= 0:
		return fail("terms must be positive, got %s", f)
	case f.Numerator == f.Denominator:
		return fail("numerator and denominator must differ, got %s", f)
	case v.MaxTerm > 0 && (f.Numerator > v.MaxTerm || f.Denominator > v.MaxTerm):
		return fail("terms must not exceed %d, got %s", v.MaxTerm, f)
	}
	return nil
}
