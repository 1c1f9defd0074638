package problemgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order; the first failure rejects the candidate.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// MaxRecent is how many previously generated fractions are listed in
	// the prompt to avoid repeats.
	MaxRecent int

	// MaxTerm bounds numerator and denominator.
	MaxTerm int

	// IrreducibleShare is the probability of asking for a fraction that
	// is already in lowest terms.
	IrreducibleShare float64
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	const maxTerm = 100
	return Config{
		Validators: []Validator{
			&StructuralValidator{MaxTerm: maxTerm},
			&MathCheckValidator{},
		},
		MaxTokens:        256,
		Temperature:      0.9,
		MaxRecent:        8,
		MaxTerm:          maxTerm,
		IrreducibleShare: IrreducibleShare,
	}
}
