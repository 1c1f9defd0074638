package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	entschema "github.com/abhisek/simplify/ent/schema"
	"github.com/abhisek/simplify/internal/fraction"
)

func (r *eventRepo) AppendExerciseEvent(ctx context.Context, data ExerciseEventData) error {
	if len(data.Chain) == 0 {
		return fmt.Errorf("save exercise event: empty chain")
	}

	chain := make([]entschema.FractionValue, len(data.Chain))
	for i, f := range data.Chain {
		chain[i] = entschema.FractionValue{Numerator: f.Numerator, Denominator: f.Denominator}
	}
	chainJSON, err := json.Marshal(chain)
	if err != nil {
		return fmt.Errorf("marshal chain: %w", err)
	}

	err = r.insert(ctx, tableExerciseEvents,
		[]string{"session_id", "position", "start", "final", "chain", "steps", "mistakes", "hints", "duration_ms"},
		data.SessionID, data.Position,
		data.Chain[0].String(), data.Chain[len(data.Chain)-1].String(),
		string(chainJSON), len(data.Chain)-1, data.Mistakes, data.Hints,
		data.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save exercise event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentExercises(ctx context.Context, opts QueryOpts) ([]ExerciseRecord, error) {
	sel := r.exerciseSelector().OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)
	return r.queryExercises(ctx, sel)
}

func (r *eventRepo) SessionExercises(ctx context.Context, sessionID string) ([]ExerciseRecord, error) {
	sel := r.exerciseSelector().
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence")
	return r.queryExercises(ctx, sel)
}

func (r *eventRepo) exerciseSelector() *entsql.Selector {
	return r.builder.Select(
		"sequence", "timestamp", "session_id", "position", "chain",
		"steps", "mistakes", "hints", "duration_ms",
	).From(entsql.Table(tableExerciseEvents))
}

func (r *eventRepo) queryExercises(ctx context.Context, sel *entsql.Selector) ([]ExerciseRecord, error) {
	var records []ExerciseRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			e         ExerciseRecord
			chainJSON []byte
			ms        int64
		)
		err := rows.Scan(&e.Sequence, &e.Timestamp, &e.SessionID, &e.Position, &chainJSON,
			&e.Steps, &e.Mistakes, &e.Hints, &ms)
		if err != nil {
			return err
		}

		var chain []entschema.FractionValue
		if err := json.Unmarshal(chainJSON, &chain); err != nil {
			return fmt.Errorf("decode chain: %w", err)
		}
		for _, v := range chain {
			e.Chain = append(e.Chain, fraction.New(v.Numerator, v.Denominator))
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		records = append(records, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	return records, nil
}
