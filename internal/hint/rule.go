package hint

import (
	"context"
	"fmt"
)

type ruleTexts struct {
	tryFactor   string // %d factor
	lowestTerms string
	divide      string // %d/%d ÷ %d
	uneven      string // %d divisor, %d/%d fraction
}

var ruleCatalogs = map[string]ruleTexts{
	"en": {
		tryFactor:   "Both numbers can be divided by %d. Try it!",
		lowestTerms: "No number greater than 1 divides both. Press X if you think it's done.",
		divide:      "Divide the top and the bottom: %d ÷ %d and %d ÷ %d.",
		uneven:      "%d doesn't divide both %d and %d evenly. Press U to pick another number.",
	},
	"he": {
		tryFactor:   "שני המספרים מתחלקים ב-%d. נסו!",
		lowestTerms: "אין מספר גדול מ-1 שמחלק את שניהם. לחצו X אם לדעתכם סיימתם.",
		divide:      "חלקו את המונה ואת המכנה: %d ÷ %d ו-%d ÷ %d.",
		uneven:      "%d לא מחלק גם את %d וגם את %d בלי שארית. לחצו U כדי לבחור מספר אחר.",
	},
}

// RuleHinter gives deterministic hints from the numbers alone.
type RuleHinter struct{}

func (RuleHinter) Hint(_ context.Context, req Request) (Hint, error) {
	texts, ok := ruleCatalogs[req.Lang]
	if !ok {
		texts = ruleCatalogs["en"]
	}
	f := req.Fraction

	var text string
	switch {
	case req.Divisor > 1 && !f.DividesEvenly(req.Divisor):
		text = fmt.Sprintf(texts.uneven, req.Divisor, f.Numerator, f.Denominator)
	case req.Divisor > 1:
		text = fmt.Sprintf(texts.divide, f.Numerator, req.Divisor, f.Denominator, req.Divisor)
	case f.IsReducible():
		text = fmt.Sprintf(texts.tryFactor, f.SmallestCommonFactor())
	default:
		text = texts.lowestTerms
	}
	return Hint{Text: text, Source: SourceRule}, nil
}
