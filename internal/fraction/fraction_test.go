package fraction

import "testing"

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{30, 80, 10},
		{80, 30, 10},
		{3, 8, 1},
		{7, 0, 7},
		{12, 12, 12},
		{40, 100, 20},
		{1, 9, 1},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsReducible(t *testing.T) {
	tests := []struct {
		f    Fraction
		want bool
	}{
		{New(30, 80), true},
		{New(3, 8), false},
		{New(2, 5), false},
		{New(20, 50), true},
		{New(1, 2), false},
	}
	for _, tt := range tests {
		if got := tt.f.IsReducible(); got != tt.want {
			t.Errorf("%s.IsReducible() = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestDividesEvenly(t *testing.T) {
	f := New(30, 80)
	tests := []struct {
		d    int
		want bool
	}{
		{10, true},
		{2, true},
		{5, true},
		{3, false}, // divides 30 only
		{4, false}, // divides 80 only
		{7, false},
		{0, false},
	}
	for _, tt := range tests {
		if got := f.DividesEvenly(tt.d); got != tt.want {
			t.Errorf("DividesEvenly(%d) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDivide(t *testing.T) {
	got, ok := New(40, 100).Divide(2)
	if !ok || got != New(20, 50) {
		t.Errorf("Divide(2) = %v, %v; want 20/50, true", got, ok)
	}
	if _, ok := New(30, 80).Divide(7); ok {
		t.Error("Divide(7) should fail for 30/80")
	}
}

func TestLowest(t *testing.T) {
	if got := New(30, 80).Lowest(); got != New(3, 8) {
		t.Errorf("Lowest = %s, want 3/8", got)
	}
	if got := New(3, 8).Lowest(); got != New(3, 8) {
		t.Errorf("Lowest = %s, want 3/8", got)
	}
}

func TestSmallestCommonFactor(t *testing.T) {
	tests := []struct {
		f    Fraction
		want int
	}{
		{New(30, 80), 2},
		{New(15, 40), 5},
		{New(21, 49), 7},
		{New(3, 8), 0},
		{New(9, 27), 3},
	}
	for _, tt := range tests {
		if got := tt.f.SmallestCommonFactor(); got != tt.want {
			t.Errorf("%s.SmallestCommonFactor() = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	f, err := Parse(" 30 / 80 ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f != New(30, 80) {
		t.Errorf("Parse = %s, want 30/80", f)
	}

	for _, bad := range []string{"", "30", "a/b", "3/"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) expected error", bad)
		}
	}
}

func TestFormatChain(t *testing.T) {
	got := FormatChain([]Fraction{New(30, 80), New(15, 40), New(3, 8)})
	if got != "30/80 = 15/40 = 3/8" {
		t.Errorf("FormatChain = %q", got)
	}
	if got := FormatChain(nil); got != "" {
		t.Errorf("FormatChain(nil) = %q, want empty", got)
	}
}
