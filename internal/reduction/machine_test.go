package reduction

import (
	"strconv"
	"testing"

	"github.com/abhisek/simplify/internal/fraction"
)

var itoa = strconv.Itoa

func typeNumber(m *Machine, s string) {
	for _, r := range s {
		m.TypeDigit(int(r - '0'))
	}
}

func TestNew(t *testing.T) {
	m := New(fraction.New(30, 80))

	if _, ok := m.Phase().(Deciding); !ok {
		t.Fatalf("Phase() = %v, want deciding", m.Phase())
	}
	if got := m.Current(); got != fraction.New(30, 80) {
		t.Errorf("Current() = %v, want 30/80", got)
	}
	if _, ok := m.Divisor(); ok {
		t.Error("Divisor() reported a pending divisor while deciding")
	}
	if m.Input().Active != FieldDivisor {
		t.Errorf("Active = %v, want divisor", m.Input().Active)
	}
}

func TestDeclineIrreducible(t *testing.T) {
	m := New(fraction.New(3, 8))

	out := m.DeclineReduction()
	if out.Kind != KindSolved {
		t.Fatalf("Kind = %v, want solved", out.Kind)
	}
	if !m.Solved() {
		t.Error("Solved() = false after declining an irreducible fraction")
	}
	if got := m.DeclineReduction().Kind; got != KindIgnored {
		t.Errorf("second decline Kind = %v, want ignored", got)
	}
}

func TestDeclineReducible(t *testing.T) {
	m := New(fraction.New(30, 80))

	out := m.DeclineReduction()
	if out.Kind != KindStillReducible {
		t.Fatalf("Kind = %v, want still-reducible", out.Kind)
	}
	if !out.IsMistake() {
		t.Error("IsMistake() = false for still-reducible")
	}
	if len(m.Chain()) != 1 {
		t.Errorf("chain length = %d, want 1", len(m.Chain()))
	}
	if m.Solved() {
		t.Error("Solved() = true after declining a reducible fraction")
	}
}

func TestDeclineTermination(t *testing.T) {
	for n := 1; n <= 30; n++ {
		for d := 2; d <= 30; d++ {
			if n == d {
				continue
			}
			f := fraction.New(n, d)
			m := New(f)
			out := m.DeclineReduction()
			wantSolved := fraction.GCD(n, d) == 1
			if (out.Kind == KindSolved) != wantSolved {
				t.Errorf("decline %v Kind = %v, want solved=%v", f, out.Kind, wantSolved)
			}
			if len(m.Chain()) != 1 || m.Current() != f {
				t.Errorf("decline %v mutated chain to %v", f, m.Chain())
			}
		}
	}
}

func TestSingleStepReduction(t *testing.T) {
	m := New(fraction.New(30, 80))

	out := m.SubmitDivisor("10")
	if out.Kind != KindDivisorAccepted || out.Divisor != 10 {
		t.Fatalf("SubmitDivisor = %+v, want accepted 10", out)
	}
	if d, ok := m.Divisor(); !ok || d != 10 {
		t.Fatalf("Divisor() = %d, %v, want 10, true", d, ok)
	}
	if m.Input().Active != FieldNumerator {
		t.Errorf("Active = %v, want numerator", m.Input().Active)
	}

	out = m.SubmitCalculation("3", "8")
	if out.Kind != KindReduced {
		t.Fatalf("SubmitCalculation Kind = %v, want reduced", out.Kind)
	}
	if out.Result != fraction.New(3, 8) {
		t.Errorf("Result = %v, want 3/8", out.Result)
	}

	chain := m.Chain()
	want := []fraction.Fraction{fraction.New(30, 80), fraction.New(3, 8)}
	if len(chain) != len(want) {
		t.Fatalf("chain = %v, want %v", chain, want)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d] = %v, want %v", i, chain[i], want[i])
		}
	}
	if _, ok := m.Phase().(Deciding); !ok {
		t.Errorf("Phase() = %v, want deciding", m.Phase())
	}
	if m.Input() != (Input{Active: FieldDivisor}) {
		t.Errorf("Input() = %+v, want empty buffers", m.Input())
	}
}

func TestUnevenDivisor(t *testing.T) {
	m := New(fraction.New(30, 80))

	if out := m.SubmitDivisor("7"); out.Kind != KindDivisorAccepted {
		t.Fatalf("SubmitDivisor(7) Kind = %v, want accepted", out.Kind)
	}
	out := m.SubmitCalculation("4", "11")
	if out.Kind != KindDivisorUneven || out.Divisor != 7 {
		t.Fatalf("SubmitCalculation = %+v, want uneven 7", out)
	}
	if len(m.Chain()) != 1 {
		t.Errorf("chain length = %d, want 1", len(m.Chain()))
	}
	if d, ok := m.Divisor(); !ok || d != 7 {
		t.Errorf("Divisor() = %d, %v, want 7 retained", d, ok)
	}
}

func TestWrongArithmetic(t *testing.T) {
	m := New(fraction.New(30, 80))
	m.SubmitDivisor("10")
	typeNumber(m, "2")
	m.SelectField(FieldDenominator)
	typeNumber(m, "8")

	out := m.Submit()
	if out.Kind != KindResultWrong {
		t.Fatalf("Kind = %v, want result-wrong", out.Kind)
	}
	if len(m.Chain()) != 1 {
		t.Errorf("chain length = %d, want 1", len(m.Chain()))
	}
	if c, ok := m.Phase().(Calculating); !ok || c.Divisor != 10 {
		t.Errorf("Phase() = %v, want calculating(÷10)", m.Phase())
	}
	in := m.Input()
	if in.Numerator != "2" || in.Denominator != "8" {
		t.Errorf("inputs = %q/%q, want retained 2/8", in.Numerator, in.Denominator)
	}
}

func TestTwoStepChain(t *testing.T) {
	m := New(fraction.New(40, 100))

	steps := []struct {
		divisor  string
		num, den string
	}{
		{"2", "20", "50"},
		{"10", "2", "5"},
	}
	for _, s := range steps {
		if out := m.SubmitDivisor(s.divisor); out.Kind != KindDivisorAccepted {
			t.Fatalf("SubmitDivisor(%s) Kind = %v", s.divisor, out.Kind)
		}
		if out := m.SubmitCalculation(s.num, s.den); out.Kind != KindReduced {
			t.Fatalf("SubmitCalculation(%s, %s) Kind = %v", s.num, s.den, out.Kind)
		}
	}
	if out := m.DeclineReduction(); out.Kind != KindSolved {
		t.Fatalf("DeclineReduction Kind = %v, want solved", out.Kind)
	}
	if len(m.Chain()) != 3 {
		t.Errorf("chain length = %d, want 3", len(m.Chain()))
	}
	if m.Steps() != 2 {
		t.Errorf("Steps() = %d, want 2", m.Steps())
	}
}

func TestChainConsistency(t *testing.T) {
	m := New(fraction.New(360, 600))
	divisors := []int{2, 3, 4, 5}
	for _, d := range divisors {
		next, ok := m.Current().Divide(d)
		if !ok {
			t.Fatalf("%v not divisible by %d", m.Current(), d)
		}
		m.SubmitDivisor(itoa(d))
		m.SubmitCalculation(itoa(next.Numerator), itoa(next.Denominator))
	}
	chain := m.Chain()
	if len(chain) != len(divisors)+1 {
		t.Fatalf("chain = %v", chain)
	}
	for i, d := range divisors {
		if chain[i+1].Numerator*d != chain[i].Numerator || chain[i+1].Denominator*d != chain[i].Denominator {
			t.Errorf("step %d: %v ÷ %d != %v", i, chain[i], d, chain[i+1])
		}
	}
}

func TestDivisorGate(t *testing.T) {
	start := fraction.New(30, 80)
	for d := 2; d <= 40; d++ {
		m := New(start)
		m.SubmitDivisor(itoa(d))
		// Try the truncated quotient, which is the most tempting wrong answer.
		out := m.SubmitCalculation(itoa(30/d), itoa(80/d))
		if !start.DividesEvenly(d) && len(m.Chain()) != 1 {
			t.Errorf("divisor %d advanced chain to %v", d, m.Chain())
		}
		if start.DividesEvenly(d) && out.Kind != KindReduced {
			t.Errorf("divisor %d Kind = %v, want reduced", d, out.Kind)
		}
	}
}

func TestSubmitDivisorErrors(t *testing.T) {
	tests := []struct {
		raw       string
		want      Kind
		wantInput string
	}{
		{"", KindDivisorMissing, ""},
		{"abc", KindDivisorMissing, "abc"},
		{"1", KindDivisorTooSmall, ""},
		{"0", KindDivisorTooSmall, ""},
	}
	for _, tt := range tests {
		m := New(fraction.New(30, 80))
		m.input.Divisor = tt.raw

		out := m.Submit()
		if out.Kind != tt.want {
			t.Errorf("submit %q Kind = %v, want %v", tt.raw, out.Kind, tt.want)
		}
		if got := m.Input().Divisor; got != tt.wantInput {
			t.Errorf("submit %q divisor buffer = %q, want %q", tt.raw, got, tt.wantInput)
		}
		if _, ok := m.Phase().(Deciding); !ok {
			t.Errorf("submit %q Phase() = %v, want deciding", tt.raw, m.Phase())
		}
	}
}

func TestSubmitCalculationIncomplete(t *testing.T) {
	m := New(fraction.New(30, 80))
	m.SubmitDivisor("10")

	if out := m.SubmitCalculation("", ""); out.Kind != KindResultIncomplete {
		t.Errorf("empty Kind = %v, want result-incomplete", out.Kind)
	}
	if out := m.SubmitCalculation("", "8"); out.Kind != KindResultIncomplete {
		t.Errorf("missing numerator Kind = %v, want result-incomplete", out.Kind)
	}
}

func TestNavigationShortcut(t *testing.T) {
	m := New(fraction.New(30, 80))
	m.SubmitDivisor("10")
	typeNumber(m, "3")

	out := m.Submit()
	if out.Kind != KindFocused {
		t.Fatalf("Kind = %v, want focused", out.Kind)
	}
	if m.Input().Active != FieldDenominator {
		t.Errorf("Active = %v, want denominator", m.Input().Active)
	}
	typeNumber(m, "8")
	if out := m.Submit(); out.Kind != KindReduced {
		t.Errorf("Kind = %v, want reduced", out.Kind)
	}
}

func TestUndoIdempotent(t *testing.T) {
	m := New(fraction.New(30, 80))
	m.SubmitDivisor("10")
	before := struct {
		phase Phase
		input Input
	}{m.Phase(), m.Input()}

	typeNumber(m, "12")
	if out := m.Undo(); out.Kind != KindUndone {
		t.Fatalf("Undo Kind = %v, want undone", out.Kind)
	}
	if _, ok := m.Phase().(Deciding); !ok {
		t.Fatalf("Phase() = %v after undo, want deciding", m.Phase())
	}
	if len(m.Chain()) != 1 {
		t.Errorf("chain length = %d after undo, want 1", len(m.Chain()))
	}

	m.SubmitDivisor("10")
	if m.Phase() != before.phase {
		t.Errorf("Phase() = %v, want %v", m.Phase(), before.phase)
	}
	if m.Input() != before.input {
		t.Errorf("Input() = %+v, want %+v", m.Input(), before.input)
	}
}

func TestPhaseGuards(t *testing.T) {
	m := New(fraction.New(30, 80))
	if got := m.Undo().Kind; got != KindIgnored {
		t.Errorf("Undo while deciding = %v, want ignored", got)
	}
	if got := m.SubmitCalculation("3", "8").Kind; got != KindIgnored {
		t.Errorf("SubmitCalculation while deciding = %v, want ignored", got)
	}
	if got := m.SelectField(FieldNumerator).Kind; got != KindIgnored {
		t.Errorf("SelectField(numerator) while deciding = %v, want ignored", got)
	}

	m.SubmitDivisor("10")
	if got := m.DeclineReduction().Kind; got != KindIgnored {
		t.Errorf("DeclineReduction while calculating = %v, want ignored", got)
	}
	if got := m.SubmitDivisor("5").Kind; got != KindIgnored {
		t.Errorf("SubmitDivisor while calculating = %v, want ignored", got)
	}
	if got := m.SelectField(FieldDivisor).Kind; got != KindIgnored {
		t.Errorf("SelectField(divisor) while calculating = %v, want ignored", got)
	}
}

func TestBufferLimits(t *testing.T) {
	m := New(fraction.New(30, 80))
	typeNumber(m, "12345")
	if got := m.Input().Divisor; got != "123" {
		t.Errorf("Divisor buffer = %q, want %q", got, "123")
	}
	m.Backspace()
	if got := m.Input().Divisor; got != "12" {
		t.Errorf("after backspace = %q, want %q", got, "12")
	}
	m.Backspace()
	m.Backspace()
	if got := m.Backspace().Kind; got != KindEdited {
		t.Errorf("backspace on empty buffer Kind = %v, want edited", got)
	}
	if got := m.TypeDigit(10).Kind; got != KindIgnored {
		t.Errorf("TypeDigit(10) Kind = %v, want ignored", got)
	}
}

func TestCycleField(t *testing.T) {
	m := New(fraction.New(30, 80))
	m.SubmitDivisor("10")

	m.CycleField()
	if m.Input().Active != FieldDenominator {
		t.Errorf("Active = %v, want denominator", m.Input().Active)
	}
	m.CycleField()
	if m.Input().Active != FieldNumerator {
		t.Errorf("Active = %v, want numerator", m.Input().Active)
	}
}

func TestChainIsCopy(t *testing.T) {
	m := New(fraction.New(30, 80))
	chain := m.Chain()
	chain[0] = fraction.New(1, 2)
	if m.Current() != fraction.New(30, 80) {
		t.Errorf("Current() = %v, mutated through Chain()", m.Current())
	}
}
