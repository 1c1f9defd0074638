package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/simplify/ent/schema"
)

const (
	tableSessionEvents    = "session_events"
	tableExerciseEvents   = "exercise_events"
	tableAttemptEvents    = "attempt_events"
	tableHintEvents       = "hint_events"
	tableLLMRequestEvents = "llm_request_events"
)

// eventSchemas maps each table to the ent schema declaring its columns.
var eventSchemas = []struct {
	table  string
	schema ent.Interface
}{
	{tableSessionEvents, entschema.SessionEvent{}},
	{tableExerciseEvents, entschema.ExerciseEvent{}},
	{tableAttemptEvents, entschema.AttemptEvent{}},
	{tableHintEvents, entschema.HintEvent{}},
	{tableLLMRequestEvents, entschema.LLMRequestEvent{}},
}

// migrate creates or updates every event table.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	tables := make([]*schema.Table, 0, len(eventSchemas))
	for _, es := range eventSchemas {
		tables = append(tables, tableFor(es.table, es.schema))
	}
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}

// tableFor builds a migration table from an ent schema's mixins, fields
// and indexes. Every table gets an auto-increment integer id.
func tableFor(name string, s ent.Interface) *schema.Table {
	t := schema.NewTable(name)
	t.AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true})

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	for _, f := range fields {
		d := f.Descriptor()
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Size:     int64(d.Size),
		}
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			col.Default = d.Default
		}
		t.AddColumn(col)
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		t.AddIndex(name+"_"+strings.Join(d.Fields, "_"), d.Unique, d.Fields)
	}
	return t
}
