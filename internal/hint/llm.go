package hint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/simplify/internal/llm"
)

// HintSchema is the structured output requested from the LLM.
var HintSchema = &llm.Schema{
	Name:        "fraction-hint",
	Description: "A short hint for a child reducing a fraction",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "One or two short sentences, without giving the final answer",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

const hintSystemPrompt = `You help a child who is reducing a fraction step by step.
Each step the child picks a number that divides both the numerator and the denominator, then writes the divided fraction.
When the fraction cannot be reduced any more, the child says so.

Give one short, friendly hint of at most two sentences.
Never state the fully reduced fraction.
Reply in the requested language.`

var languageNames = map[string]string{
	"en": "English",
	"he": "Hebrew",
}

// LLMHinter asks an LLM for a hint and falls back to another Hinter when
// the provider fails.
type LLMHinter struct {
	provider  llm.Provider
	fallback  Hinter
	maxTokens int
}

// NewLLM creates an LLMHinter. A nil fallback means RuleHinter.
func NewLLM(provider llm.Provider, fallback Hinter) *LLMHinter {
	if fallback == nil {
		fallback = RuleHinter{}
	}
	return &LLMHinter{provider: provider, fallback: fallback, maxTokens: 200}
}

type hintOutput struct {
	Hint string `json:"hint"`
}

func (h *LLMHinter) Hint(ctx context.Context, req Request) (Hint, error) {
	text, err := h.generate(ctx, req)
	if err != nil {
		fb, fbErr := h.fallback.Hint(ctx, req)
		if fbErr != nil {
			return Hint{}, fmt.Errorf("hint: %w (fallback: %v)", err, fbErr)
		}
		return fb, nil
	}
	return Hint{Text: text, Source: SourceLLM}, nil
}

func (h *LLMHinter) generate(ctx context.Context, req Request) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeHint)
	ctx = llm.WithSubject(ctx, req.Target())

	resp, err := h.provider.Generate(ctx, llm.Request{
		System:      hintSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(req)}},
		Schema:      HintSchema,
		MaxTokens:   h.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse hint response: %w", err)
	}
	text := strings.TrimSpace(out.Hint)
	if text == "" {
		return "", fmt.Errorf("parse hint response: empty hint")
	}
	return text, nil
}

func buildUserMessage(req Request) string {
	var b strings.Builder

	lang, ok := languageNames[req.Lang]
	if !ok {
		lang = languageNames["en"]
	}
	fmt.Fprintf(&b, "Language: %s\n", lang)
	fmt.Fprintf(&b, "Current fraction: %s\n", req.Fraction)
	switch {
	case req.Divisor > 1 && !req.Fraction.DividesEvenly(req.Divisor):
		fmt.Fprintf(&b, "The child chose to divide by %d, which does not divide both numbers evenly. Tell them to press U and choose another divisor.\n", req.Divisor)
	case req.Divisor > 1:
		fmt.Fprintf(&b, "The child chose to divide by %d and now needs the divided fraction.\n", req.Divisor)
	default:
		b.WriteString("The child must choose a divisor or decide the fraction is fully reduced.\n")
	}
	return b.String()
}
