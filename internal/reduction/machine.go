// Package reduction implements the step-by-step fraction reduction state
// machine: deciding whether the current fraction can be reduced, choosing a
// divisor and computing the reduced terms.
package reduction

import (
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/simplify/internal/fraction"
)

// Machine tracks one exercise. The chain starts with the generated fraction
// and grows by one entry per successful reduction step. Once the learner
// confirms the last fraction is irreducible the machine is solved and every
// further operation is ignored.
type Machine struct {
	chain  []fraction.Fraction
	phase  Phase
	input  Input
	solved bool
}

// New returns a machine deciding on start.
func New(start fraction.Fraction) *Machine {
	return &Machine{
		chain: []fraction.Fraction{start},
		phase: Deciding{},
		input: Input{Active: FieldDivisor},
	}
}

// Chain returns a copy of the fractions reached so far.
func (m *Machine) Chain() []fraction.Fraction {
	return slices.Clone(m.chain)
}

// Start returns the fraction the exercise began with.
func (m *Machine) Start() fraction.Fraction {
	return m.chain[0]
}

// Current returns the last fraction in the chain.
func (m *Machine) Current() fraction.Fraction {
	return m.chain[len(m.chain)-1]
}

// Steps returns the number of successful reduction steps.
func (m *Machine) Steps() int {
	return len(m.chain) - 1
}

// Phase returns the active phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Divisor returns the pending divisor while calculating.
func (m *Machine) Divisor() (int, bool) {
	if c, ok := m.phase.(Calculating); ok {
		return c.Divisor, true
	}
	return 0, false
}

// Input returns the current buffer contents.
func (m *Machine) Input() Input {
	return m.input
}

// Solved reports whether the learner confirmed the fraction is fully reduced.
func (m *Machine) Solved() bool {
	return m.solved
}

// TypeDigit appends d to the active buffer. Digits beyond MaxDigits are
// dropped but still count as an edit.
func (m *Machine) TypeDigit(d int) Outcome {
	if m.solved || d < 0 || d > 9 || !fieldAllowed(m.phase, m.input.Active) {
		return Outcome{Kind: KindIgnored}
	}
	cur := m.input.Value(m.input.Active)
	if len(cur) < MaxDigits {
		m.input.set(m.input.Active, cur+strconv.Itoa(d))
	}
	return Outcome{Kind: KindEdited}
}

// Backspace removes the last digit from the active buffer.
func (m *Machine) Backspace() Outcome {
	if m.solved || !fieldAllowed(m.phase, m.input.Active) {
		return Outcome{Kind: KindIgnored}
	}
	cur := m.input.Value(m.input.Active)
	if cur != "" {
		m.input.set(m.input.Active, cur[:len(cur)-1])
	}
	return Outcome{Kind: KindEdited}
}

// SelectField moves keypad focus. Only the buffers belonging to the current
// phase can be selected.
func (m *Machine) SelectField(f Field) Outcome {
	if m.solved || !fieldAllowed(m.phase, f) {
		return Outcome{Kind: KindIgnored}
	}
	m.input.Active = f
	return Outcome{Kind: KindFocused}
}

// CycleField moves focus to the next buffer of the current phase.
func (m *Machine) CycleField() Outcome {
	fields := fieldsFor(m.phase)
	i := slices.Index(fields, m.input.Active)
	return m.SelectField(fields[(i+1)%len(fields)])
}

// Submit evaluates the buffers of the current phase.
func (m *Machine) Submit() Outcome {
	switch m.phase.(type) {
	case Calculating:
		return m.SubmitCalculation(m.input.Numerator, m.input.Denominator)
	default:
		return m.SubmitDivisor(m.input.Divisor)
	}
}

// DeclineReduction is the learner claiming the current fraction cannot be
// reduced any further.
func (m *Machine) DeclineReduction() Outcome {
	if m.solved {
		return Outcome{Kind: KindIgnored}
	}
	if _, ok := m.phase.(Deciding); !ok {
		return Outcome{Kind: KindIgnored}
	}
	if m.Current().IsReducible() {
		return Outcome{Kind: KindStillReducible}
	}
	m.solved = true
	m.input = Input{Active: FieldDivisor}
	return Outcome{Kind: KindSolved}
}

// SubmitDivisor picks the divisor for the next reduction step. Any integer
// greater than one is accepted; whether it divides the fraction is checked
// only once the learner submits the calculation.
func (m *Machine) SubmitDivisor(raw string) Outcome {
	if m.solved {
		return Outcome{Kind: KindIgnored}
	}
	if _, ok := m.phase.(Deciding); !ok {
		return Outcome{Kind: KindIgnored}
	}
	d, err := parseTerm(raw)
	if err != nil {
		return Outcome{Kind: KindDivisorMissing}
	}
	if d <= 1 {
		m.input.Divisor = ""
		return Outcome{Kind: KindDivisorTooSmall, Divisor: d}
	}
	m.phase = Calculating{Divisor: d}
	m.input = Input{Active: FieldNumerator}
	return Outcome{Kind: KindDivisorAccepted, Divisor: d}
}

// SubmitCalculation checks the learner's reduced terms against the pending
// divisor. A filled numerator with an empty denominator only advances focus.
func (m *Machine) SubmitCalculation(rawNum, rawDen string) Outcome {
	if m.solved {
		return Outcome{Kind: KindIgnored}
	}
	calc, ok := m.phase.(Calculating)
	if !ok {
		return Outcome{Kind: KindIgnored}
	}
	if strings.TrimSpace(rawNum) != "" && strings.TrimSpace(rawDen) == "" {
		m.input.Active = FieldDenominator
		return Outcome{Kind: KindFocused}
	}

	num, errNum := parseTerm(rawNum)
	den, errDen := parseTerm(rawDen)
	if errNum != nil || errDen != nil {
		return Outcome{Kind: KindResultIncomplete, Divisor: calc.Divisor}
	}

	expected, ok := m.Current().Divide(calc.Divisor)
	if !ok {
		return Outcome{Kind: KindDivisorUneven, Divisor: calc.Divisor}
	}
	if num != expected.Numerator || den != expected.Denominator {
		return Outcome{Kind: KindResultWrong, Divisor: calc.Divisor}
	}

	m.chain = append(m.chain, expected)
	m.phase = Deciding{}
	m.input = Input{Active: FieldDivisor}
	return Outcome{Kind: KindReduced, Divisor: calc.Divisor, Result: expected}
}

// Undo abandons the pending divisor and returns to deciding on the same
// fraction.
func (m *Machine) Undo() Outcome {
	if m.solved {
		return Outcome{Kind: KindIgnored}
	}
	if _, ok := m.phase.(Calculating); !ok {
		return Outcome{Kind: KindIgnored}
	}
	m.phase = Deciding{}
	m.input = Input{Active: FieldDivisor}
	return Outcome{Kind: KindUndone}
}

func parseTerm(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
