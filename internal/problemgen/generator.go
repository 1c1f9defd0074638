// Package problemgen produces starting fractions for reduction exercises.
package problemgen

import (
	"context"

	"github.com/abhisek/simplify/internal/fraction"
)

// Generator produces the starting fraction of an exercise. Every returned
// fraction has positive terms that differ from each other.
type Generator interface {
	Generate(ctx context.Context) (fraction.Fraction, error)
}

// Source names recorded in the practice log.
const (
	SourceRandom = "random"
	SourceLLM    = "llm"
)

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context) (fraction.Fraction, error)

func (f GeneratorFunc) Generate(ctx context.Context) (fraction.Fraction, error) {
	return f(ctx)
}
