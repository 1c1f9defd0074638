package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	err := r.insert(ctx, tableAttemptEvents,
		[]string{"session_id", "position", "fraction", "outcome", "divisor", "mistake"},
		data.SessionID, data.Position, data.Fraction.String(), data.Outcome, data.Divisor, data.Mistake,
	)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) MistakeCounts(ctx context.Context) ([]OutcomeCount, error) {
	sel := r.builder.Select("outcome", entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table(tableAttemptEvents)).
		Where(entsql.EQ("mistake", true)).
		GroupBy("outcome").
		OrderBy(entsql.Desc("n"), "outcome")

	var counts []OutcomeCount
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var c OutcomeCount
		if err := rows.Scan(&c.Outcome, &c.Count); err != nil {
			return err
		}
		counts = append(counts, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query mistake counts: %w", err)
	}
	return counts, nil
}
