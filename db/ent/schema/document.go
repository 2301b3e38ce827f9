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

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/db/ent/schema/utils"
)

// Document is a text-extracted source document owned by the ingestion
// subsystem. The engine reads raw_text and advances the processing columns.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("company_id", uuid.UUID{}),
		field.Text("raw_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("source_format").NotEmpty().
			Validate(utils.EnumValidator(constants.SourceFormats...)),
		field.String("status").Default(string(constants.DocStatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		// version of the pattern set that produced the current extraction;
		// unset until first completion
		field.String("pattern_set_version").Optional().Nillable(),
		field.Int("attempt_count").Default(0),
		field.String("last_error_kind").Optional().Nillable(),
		field.String("last_error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("documents").
			Field("company_id").
			Unique().
			Required(),
		edge.To("extraction", ExtractedData.Type).
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "status", "created_at"),
		index.Fields("company_id", "pattern_set_version"),
	}
}
