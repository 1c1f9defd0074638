// Package feedback turns reduction outcomes into learner-facing messages.
package feedback

import (
	"fmt"

	"github.com/abhisek/simplify/internal/reduction"
)

// Category drives presentation styling only.
type Category int

const (
	CategoryInfo Category = iota
	CategorySuccess
	CategoryError
)

func (c Category) String() string {
	switch c {
	case CategorySuccess:
		return "success"
	case CategoryError:
		return "error"
	default:
		return "info"
	}
}

// Message is a single feedback line.
type Message struct {
	Text     string
	Category Category
}

// Action tells the caller what to do with the currently displayed message.
type Action int

const (
	// ActionKeep leaves the current message untouched.
	ActionKeep Action = iota
	// ActionClear removes the current message.
	ActionClear
	// ActionShow replaces the current message.
	ActionShow
)

// Resolver is a stateless mapping from outcomes to messages in one language.
type Resolver struct {
	lang    string
	catalog Catalog
}

// NewResolver returns a resolver for lang, falling back to DefaultLanguage.
func NewResolver(lang string) *Resolver {
	c, ok := catalogs[lang]
	if !ok {
		lang = DefaultLanguage
		c = catalogs[lang]
	}
	return &Resolver{lang: lang, catalog: c}
}

// Lang returns the resolved language code.
func (r *Resolver) Lang() string { return r.lang }

// Text formats the template stored under key.
func (r *Resolver) Text(key Key, args ...any) string {
	tmpl, ok := r.catalog[key]
	if !ok {
		tmpl = catalogs[DefaultLanguage][key]
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Resolve maps a state machine outcome to a message and display action.
// KindSolved is left to the session, which owns the completion messages.
func (r *Resolver) Resolve(o reduction.Outcome) (Message, Action) {
	switch o.Kind {
	case reduction.KindEdited, reduction.KindDivisorAccepted, reduction.KindUndone:
		return Message{}, ActionClear
	case reduction.KindStillReducible:
		return r.errorf(KeyStillReducible), ActionShow
	case reduction.KindDivisorMissing:
		return r.errorf(KeyDivisorMissing), ActionShow
	case reduction.KindDivisorTooSmall:
		return r.errorf(KeyDivisorTooSmall), ActionShow
	case reduction.KindResultIncomplete:
		return r.errorf(KeyResultIncomplete), ActionShow
	case reduction.KindDivisorUneven:
		return r.errorf(KeyDivisorUneven, o.Divisor), ActionShow
	case reduction.KindResultWrong:
		return r.errorf(KeyResultWrong), ActionShow
	case reduction.KindReduced:
		return Message{Text: r.Text(KeyReduced), Category: CategorySuccess}, ActionShow
	default:
		return Message{}, ActionKeep
	}
}

// ExerciseComplete is shown while waiting for the next exercise.
func (r *Resolver) ExerciseComplete() Message {
	return Message{Text: r.Text(KeyExerciseComplete), Category: CategorySuccess}
}

// SessionComplete is shown on the victory screen.
func (r *Resolver) SessionComplete() Message {
	return Message{Text: r.Text(KeySessionComplete), Category: CategorySuccess}
}

// Hint wraps hint text as an info message.
func Hint(text string) Message {
	return Message{Text: text, Category: CategoryInfo}
}

func (r *Resolver) errorf(key Key, args ...any) Message {
	return Message{Text: r.Text(key, args...), Category: CategoryError}
}
