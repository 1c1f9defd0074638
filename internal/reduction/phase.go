package reduction

import "fmt"

// Phase is the sub-state of a reduction step. It is sealed: the only
// implementations are Deciding and Calculating, so a pending divisor can
// exist only while a calculation is being performed.
type Phase interface {
	isPhase()
	String() string
}

// Deciding is the phase where the learner declares whether the current
// fraction can be reduced and, if so, by which divisor.
type Deciding struct{}

// Calculating is the phase where the learner divides both terms of the
// current fraction by an accepted divisor.
type Calculating struct {
	Divisor int
}

func (Deciding) isPhase()    {}
func (Calculating) isPhase() {}

func (Deciding) String() string { return "deciding" }

func (c Calculating) String() string { return fmt.Sprintf("calculating(÷%d)", c.Divisor) }
