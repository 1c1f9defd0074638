package reduction

import "github.com/abhisek/simplify/internal/fraction"

// Kind classifies the result of a learner action.
type Kind int

const (
	// KindIgnored means the action is not valid in the current phase.
	// Nothing changed.
	KindIgnored Kind = iota
	// KindEdited means a digit was typed or erased.
	KindEdited
	// KindFocused means the active buffer moved without any evaluation.
	KindFocused

	KindStillReducible
	KindSolved

	KindDivisorMissing
	KindDivisorTooSmall
	KindDivisorAccepted

	KindResultIncomplete
	KindDivisorUneven
	KindResultWrong
	KindReduced

	KindUndone
)

var kindNames = map[Kind]string{
	KindIgnored:          "ignored",
	KindEdited:           "edited",
	KindFocused:          "focused",
	KindStillReducible:   "still-reducible",
	KindSolved:           "solved",
	KindDivisorMissing:   "divisor-missing",
	KindDivisorTooSmall:  "divisor-too-small",
	KindDivisorAccepted:  "divisor-accepted",
	KindResultIncomplete: "result-incomplete",
	KindDivisorUneven:    "divisor-uneven",
	KindResultWrong:      "result-wrong",
	KindReduced:          "reduced",
	KindUndone:           "undone",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Outcome is what the machine reports back for every operation.
type Outcome struct {
	Kind Kind

	// Divisor is set for outcomes tied to a divisor: accepted, uneven,
	// wrong result and reduced.
	Divisor int

	// Result is the fraction appended to the chain (KindReduced only).
	Result fraction.Fraction
}

// IsMistake reports whether the outcome is a learner mistake of any tier:
// malformed input, out-of-domain input, invalid divisor or wrong arithmetic.
func (o Outcome) IsMistake() bool {
	switch o.Kind {
	case KindStillReducible, KindDivisorMissing, KindDivisorTooSmall,
		KindResultIncomplete, KindDivisorUneven, KindResultWrong:
		return true
	}
	return false
}
