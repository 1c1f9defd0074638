package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one evaluated learner action: a declined reduction,
// a submitted divisor or a submitted calculation.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.Int("position"),
		field.String("fraction").
			NotEmpty().
			Comment("Fraction on screen when the action was taken"),
		field.String("outcome").
			NotEmpty().
			Comment("Outcome kind, e.g. reduced or divisor-uneven"),
		field.Int("divisor").
			Default(0),
		field.Bool("mistake"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("outcome"),
	}
}
