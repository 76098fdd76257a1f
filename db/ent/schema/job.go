package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/constants"
)

// Job is one document's processing record, tracked through the status
// state machine. Mutated only by the submission path and the pipeline.
type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(func(s string) error {
				if !constants.JobStatus(s).Valid() {
					return constants.ErrInvalidStatus
				}
				return nil
			}),
		field.String("file_name").NotEmpty().MaxLen(255),
		field.String("source_key").NotEmpty().MaxLen(500),
		field.String("ocr_provider").Default(constants.OCRProviderTextract),
		field.String("llm_provider").Default(constants.DefaultLLMProvider),
		field.Int("progress").Default(0).Min(0).Max(100),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("boxes", OCRBox.Type),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
