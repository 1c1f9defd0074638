package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FractionValue is the serialized form of one chain entry.
type FractionValue struct {
	Numerator   int `json:"n"`
	Denominator int `json:"d"`
}

// ExerciseEvent records a solved exercise with its full reduction chain.
type ExerciseEvent struct {
	ent.Schema
}

func (ExerciseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExerciseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.Int("position").
			Comment("1-based exercise number within the session"),
		field.String("start").
			NotEmpty().
			Comment("Starting fraction, n/d"),
		field.String("final").
			NotEmpty().
			Comment("Fully reduced fraction, n/d"),
		field.JSON("chain", []FractionValue{}).
			Comment("Every fraction reached, in order"),
		field.Int("steps").Default(0),
		field.Int("mistakes").Default(0),
		field.Int("hints").Default(0),
		field.Int64("duration_ms").Default(0),
	}
}

func (ExerciseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
