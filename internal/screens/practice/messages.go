package practice

import (
	"time"

	"github.com/abhisek/simplify/internal/hint"
)

// advanceMsg fires a task from the controller's deferred queue.
type advanceMsg struct {
	ID uint64
}

// hintReadyMsg carries a hint produced off the update loop.
type hintReadyMsg struct {
	Req  hint.Request
	Hint hint.Hint
	Err  error
}

// confettiTickMsg advances the victory animation.
type confettiTickMsg time.Time
