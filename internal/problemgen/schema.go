package problemgen

import "github.com/abhisek/simplify/internal/llm"

// ExerciseSchema is the structured output requested from the LLM.
var ExerciseSchema = &llm.Schema{
	Name:        "fraction-exercise",
	Description: "A single fraction for a reduction exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"numerator": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Numerator, a positive integer",
			},
			"denominator": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Denominator, a positive integer different from the numerator",
			},
			"reducible": map[string]any{
				"type":        "boolean",
				"description": "Whether numerator and denominator share a factor greater than 1",
			},
		},
		"required":             []any{"numerator", "denominator", "reducible"},
		"additionalProperties": false,
	},
}
