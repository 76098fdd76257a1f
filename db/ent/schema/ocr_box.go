package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// OCRBox is one recognized text fragment. Rows are bulk-inserted during
// a pipeline run and never updated.
type OCRBox struct{ ent.Schema }

func (OCRBox) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_coordinates"},
	}
}

func (OCRBox) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("page_number").Min(1),
		field.Int("left").Min(0),
		field.Int("top").Min(0),
		field.Int("width").Min(0),
		field.Int("height").Min(0),
		field.String("text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("confidence").Min(0).Max(100),
		// Claimed later by the (out-of-scope) extraction stage.
		field.String("field_name").Optional().Nillable().MaxLen(100),
	}
}

func (OCRBox) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("boxes").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (OCRBox) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "page_number"),
	}
}
