package feedback

import (
	"strings"
	"testing"

	"github.com/abhisek/simplify/internal/reduction"
)

func TestResolveActions(t *testing.T) {
	r := NewResolver("en")
	tests := []struct {
		kind     reduction.Kind
		action   Action
		category Category
	}{
		{reduction.KindIgnored, ActionKeep, CategoryInfo},
		{reduction.KindFocused, ActionKeep, CategoryInfo},
		{reduction.KindSolved, ActionKeep, CategoryInfo},
		{reduction.KindEdited, ActionClear, CategoryInfo},
		{reduction.KindDivisorAccepted, ActionClear, CategoryInfo},
		{reduction.KindUndone, ActionClear, CategoryInfo},
		{reduction.KindStillReducible, ActionShow, CategoryError},
		{reduction.KindDivisorMissing, ActionShow, CategoryError},
		{reduction.KindDivisorTooSmall, ActionShow, CategoryError},
		{reduction.KindResultIncomplete, ActionShow, CategoryError},
		{reduction.KindDivisorUneven, ActionShow, CategoryError},
		{reduction.KindResultWrong, ActionShow, CategoryError},
		{reduction.KindReduced, ActionShow, CategorySuccess},
	}
	for _, tt := range tests {
		msg, action := r.Resolve(reduction.Outcome{Kind: tt.kind, Divisor: 7})
		if action != tt.action {
			t.Errorf("%v: action = %v, want %v", tt.kind, action, tt.action)
		}
		if msg.Category != tt.category {
			t.Errorf("%v: category = %v, want %v", tt.kind, msg.Category, tt.category)
		}
		if action == ActionShow && msg.Text == "" {
			t.Errorf("%v: empty message text", tt.kind)
		}
	}
}

func TestDistinctErrorTexts(t *testing.T) {
	for _, lang := range Languages() {
		r := NewResolver(lang)
		seen := map[string]reduction.Kind{}
		for _, k := range []reduction.Kind{
			reduction.KindStillReducible,
			reduction.KindDivisorMissing,
			reduction.KindDivisorTooSmall,
			reduction.KindResultIncomplete,
			reduction.KindDivisorUneven,
			reduction.KindResultWrong,
		} {
			msg, _ := r.Resolve(reduction.Outcome{Kind: k, Divisor: 7})
			if prev, dup := seen[msg.Text]; dup {
				t.Errorf("%s: %v and %v share text %q", lang, prev, k, msg.Text)
			}
			seen[msg.Text] = k
		}
	}
}

func TestUnevenNamesDivisor(t *testing.T) {
	for _, lang := range Languages() {
		msg, _ := NewResolver(lang).Resolve(reduction.Outcome{Kind: reduction.KindDivisorUneven, Divisor: 7})
		if !strings.Contains(msg.Text, "7") {
			t.Errorf("%s: %q does not name divisor 7", lang, msg.Text)
		}
	}
}

func TestCatalogsComplete(t *testing.T) {
	keys := []Key{
		KeyStillReducible, KeyDivisorMissing, KeyDivisorTooSmall, KeyResultIncomplete,
		KeyDivisorUneven, KeyResultWrong, KeyReduced, KeyExerciseComplete, KeySessionComplete,
	}
	for _, lang := range Languages() {
		for _, k := range keys {
			if catalogs[lang][k] == "" {
				t.Errorf("catalog %s missing %s", lang, k)
			}
		}
	}
}

func TestNewResolverFallback(t *testing.T) {
	r := NewResolver("xx")
	if r.Lang() != DefaultLanguage {
		t.Errorf("Lang() = %q, want %q", r.Lang(), DefaultLanguage)
	}
	if got := NewResolver("he").SessionComplete().Text; got != "כל הכבוד! סיימת את כל התרגילים בהצלחה!" {
		t.Errorf("he SessionComplete = %q", got)
	}
	if got := r.ExerciseComplete().Category; got != CategorySuccess {
		t.Errorf("ExerciseComplete category = %v, want success", got)
	}
}
