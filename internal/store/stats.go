package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) Totals(ctx context.Context) (PracticeTotals, error) {
	var t PracticeTotals

	started := r.builder.Select(entsql.Count("*")).
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", "start"))
	if err := r.scanOne(ctx, started, &t.SessionsStarted); err != nil {
		return t, fmt.Errorf("count sessions: %w", err)
	}

	finished := r.builder.Select(entsql.Count("*")).
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", "end")).
		Where(entsql.GT("exercises_total", 0)).
		Where(entsql.ColumnsGTE("exercises_completed", "exercises_total"))
	if err := r.scanOne(ctx, finished, &t.SessionsFinished); err != nil {
		return t, fmt.Errorf("count finished sessions: %w", err)
	}

	var avgMs float64
	exercises := r.builder.Select(
		entsql.Count("*"),
		"COALESCE(SUM(steps), 0)",
		"COALESCE(SUM(mistakes), 0)",
		"COALESCE(SUM(hints), 0)",
		"COALESCE(AVG(duration_ms), 0)",
	).From(entsql.Table(tableExerciseEvents))
	if err := r.scanOne(ctx, exercises, &t.Exercises, &t.Steps, &t.Mistakes, &t.Hints, &avgMs); err != nil {
		return t, fmt.Errorf("sum exercises: %w", err)
	}
	t.AvgExercise = time.Duration(avgMs) * time.Millisecond

	return t, nil
}

// scanOne scans the single row produced by an aggregate selector.
func (r *eventRepo) scanOne(ctx context.Context, sel *entsql.Selector, dest ...any) error {
	return r.query(ctx, sel, func(rows *entsql.Rows) error {
		return rows.Scan(dest...)
	})
}
