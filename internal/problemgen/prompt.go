package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/simplify/internal/fraction"
)

const systemPrompt = `You create fractions for children practicing fraction reduction.

Rules:
- Return one fraction with positive integer numerator and denominator that are different from each other.
- Keep both terms small enough for mental arithmetic (at most %d).
- A reducible fraction should need one or two division steps, using common factors such as 2, 3, 4, 5, 6 or 10.
- An irreducible fraction must already be in lowest terms.
- Set "reducible" truthfully.
- Do not repeat any fraction from the "already used" list.`

// buildUserMessage asks for one fraction of the wanted kind.
func buildUserMessage(wantReducible bool, recent []fraction.Fraction, maxRecent int) string {
	var b strings.Builder

	kind := "irreducible (already in lowest terms)"
	if wantReducible {
		kind = "reducible"
	}
	fmt.Fprintf(&b, "Kind: %s\n", kind)

	b.WriteString("\nAlready used:\n")
	b.WriteString(buildRecent(recent, maxRecent))
	return b.String()
}

// buildRecent lists the most recent fractions, or "None".
func buildRecent(recent []fraction.Fraction, max int) string {
	if len(recent) == 0 {
		return "None"
	}
	if max > 0 && len(recent) > max {
		recent = recent[len(recent)-max:]
	}

	parts := make([]string, len(recent))
	for i, f := range recent {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
