package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	err := r.insert(ctx, tableHintEvents,
		[]string{"session_id", "fraction", "hint_text", "source"},
		data.SessionID, data.Fraction.String(), data.HintText, data.Source,
	)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}
