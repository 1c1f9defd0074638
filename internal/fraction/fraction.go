// Package fraction holds the integer arithmetic behind reducing a fraction.
package fraction

import (
	"fmt"
	"strconv"
	"strings"
)

// Fraction is an immutable pair of positive integer terms.
type Fraction struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

// New returns the fraction n/d.
func New(n, d int) Fraction {
	return Fraction{Numerator: n, Denominator: d}
}

// GCD returns the greatest common divisor of a and b. GCD(a, 0) is a.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCD returns the greatest common divisor of the two terms.
func (f Fraction) GCD() int {
	return GCD(f.Numerator, f.Denominator)
}

// IsReducible reports whether the terms share a factor greater than 1.
func (f Fraction) IsReducible() bool {
	return f.GCD() > 1
}

// DividesEvenly reports whether d divides both terms with no remainder.
func (f Fraction) DividesEvenly(d int) bool {
	if d == 0 {
		return false
	}
	return f.Numerator%d == 0 && f.Denominator%d == 0
}

// Divide returns the fraction with both terms divided by d.
// The second result is false when d does not divide both terms evenly.
func (f Fraction) Divide(d int) (Fraction, bool) {
	if !f.DividesEvenly(d) {
		return Fraction{}, false
	}
	return Fraction{Numerator: f.Numerator / d, Denominator: f.Denominator / d}, true
}

// Lowest returns the fraction in lowest terms.
func (f Fraction) Lowest() Fraction {
	g := f.GCD()
	if g <= 1 {
		return f
	}
	return Fraction{Numerator: f.Numerator / g, Denominator: f.Denominator / g}
}

// Valid reports whether both terms are positive.
func (f Fraction) Valid() bool {
	return f.Numerator > 0 && f.Denominator > 0
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// Parse reads a fraction written as "n/d".
func Parse(s string) (Fraction, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Fraction{}, fmt.Errorf("parse fraction %q: missing '/'", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Fraction{}, fmt.Errorf("parse numerator of %q: %w", s, err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("parse denominator of %q: %w", s, err)
	}
	return Fraction{Numerator: n, Denominator: d}, nil
}

// SmallestCommonFactor returns the smallest factor greater than 1 shared by
// both terms, or 0 when the fraction is already in lowest terms.
func (f Fraction) SmallestCommonFactor() int {
	g := f.GCD()
	if g <= 1 {
		return 0
	}
	for p := 2; p*p <= g; p++ {
		if g%p == 0 {
			return p
		}
	}
	return g
}

// FormatChain renders fractions joined by " = ", e.g. "30/80 = 15/40 = 3/8".
func FormatChain(chain []Fraction) string {
	parts := make([]string, len(chain))
	for i, f := range chain {
		parts[i] = f.String()
	}
	return strings.Join(parts, " = ")
}
