package problemgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/llm"
)

// LLMGenerator asks an LLM for exercises and validates every answer.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	mu     sync.Mutex
	rnd    *rand.Rand
	recent []fraction.Fraction
}

// NewLLM creates an LLMGenerator with the given provider and config.
func NewLLM(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

type exerciseOutput struct {
	Numerator   int  `json:"numerator"`
	Denominator int  `json:"denominator"`
	Reducible   bool `json:"reducible"`
}

// DecodeExercise reads a response shaped by ExerciseSchema. It returns the
// fraction and whether the model claimed it reduces.
func DecodeExercise(content []byte) (fraction.Fraction, bool, error) {
	var raw exerciseOutput
	if err := json.Unmarshal(content, &raw); err != nil {
		return fraction.Fraction{}, false, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return fraction.New(raw.Numerator, raw.Denominator), raw.Reducible, nil
}

func (g *LLMGenerator) Generate(ctx context.Context) (fraction.Fraction, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExerciseGen)

	g.mu.Lock()
	wantReducible := g.rnd.Float64() >= g.config.IrreducibleShare
	userMsg := buildUserMessage(wantReducible, g.recent, g.config.MaxRecent)
	g.mu.Unlock()

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      fmt.Sprintf(systemPrompt, g.config.MaxTerm),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      ExerciseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("LLM generation failed: %w", err)
	}

	f, claimed, err := DecodeExercise(resp.Content)
	if err != nil {
		return fraction.Fraction{}, err
	}

	c := Candidate{
		Fraction:         f,
		ClaimedReducible: claimed,
		WantReducible:    wantReducible,
	}
	for _, v := range g.config.Validators {
		if verr := v.Validate(c); verr != nil {
			return fraction.Fraction{}, verr
		}
	}

	g.mu.Lock()
	g.recent = append(g.recent, c.Fraction)
	if g.config.MaxRecent > 0 && len(g.recent) > g.config.MaxRecent {
		g.recent = g.recent[len(g.recent)-g.config.MaxRecent:]
	}
	g.mu.Unlock()

	return c.Fraction, nil
}
