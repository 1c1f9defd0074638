package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insert(ctx, tableSessionEvents,
		[]string{"session_id", "action", "exercises_total", "exercises_completed", "generator", "lang", "duration_ms"},
		data.SessionID, data.Action, data.ExercisesTotal, data.ExercisesCompleted,
		data.Generator, data.Lang, data.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	sel := r.builder.Select(
		"sequence", "timestamp", "session_id", "exercises_total",
		"exercises_completed", "generator", "lang", "duration_ms",
	).
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", "end")).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)

	var sessions []SessionRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			s  SessionRecord
			ms int64
		)
		err := rows.Scan(&s.Sequence, &s.Timestamp, &s.SessionID, &s.ExercisesTotal,
			&s.ExercisesCompleted, &s.Generator, &s.Lang, &ms)
		if err != nil {
			return err
		}
		s.Duration = time.Duration(ms) * time.Millisecond
		sessions = append(sessions, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return sessions, nil
}
