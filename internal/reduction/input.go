package reduction

// MaxDigits caps every input buffer.
const MaxDigits = 3

// Field identifies one of the three keypad buffers.
type Field int

const (
	FieldDivisor Field = iota
	FieldNumerator
	FieldDenominator
)

func (f Field) String() string {
	switch f {
	case FieldDivisor:
		return "divisor"
	case FieldNumerator:
		return "numerator"
	case FieldDenominator:
		return "denominator"
	default:
		return "unknown"
	}
}

// Input holds the digits typed so far and the buffer receiving keypad input.
type Input struct {
	Divisor     string
	Numerator   string
	Denominator string
	Active      Field
}

// Value returns the contents of the given buffer.
func (in Input) Value(f Field) string {
	switch f {
	case FieldDivisor:
		return in.Divisor
	case FieldNumerator:
		return in.Numerator
	case FieldDenominator:
		return in.Denominator
	}
	return ""
}

func (in *Input) set(f Field, v string) {
	switch f {
	case FieldDivisor:
		in.Divisor = v
	case FieldNumerator:
		in.Numerator = v
	case FieldDenominator:
		in.Denominator = v
	}
}

// fieldsFor lists the buffers that accept input in a phase.
func fieldsFor(p Phase) []Field {
	if _, ok := p.(Calculating); ok {
		return []Field{FieldNumerator, FieldDenominator}
	}
	return []Field{FieldDivisor}
}

func fieldAllowed(p Phase, f Field) bool {
	for _, allowed := range fieldsFor(p) {
		if allowed == f {
			return true
		}
	}
	return false
}
