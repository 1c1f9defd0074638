package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records practice session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("exercises_total").
			Default(0).
			Comment("Exercises required to finish the session"),
		field.Int("exercises_completed").
			Default(0).
			Comment("Exercises solved (on end only)"),
		field.String("generator").
			Default("").
			Comment("Exercise source: random or llm"),
		field.String("lang").
			Default("").
			Comment("Feedback language"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock session length (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
