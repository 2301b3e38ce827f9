package schema

import (
	"encoding/json"
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

// ExtractedData is the structured record produced for a document. The
// unique index on document_id enforces the one-current-record invariant;
// the row is deleted with its parent document.
type ExtractedData struct{ ent.Schema }

func (ExtractedData) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_data"},
	}
}

func (ExtractedData) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Immutable(),
		// explicit FK; denormalized company_id is kept for isolation filters
		field.UUID("document_id", uuid.UUID{}).Unique(),
		field.UUID("company_id", uuid.UUID{}),
		field.JSON("amounts", json.RawMessage{}).Optional(),
		field.Time("transaction_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.JSON("dates_found", json.RawMessage{}).Optional(),
		field.String("vendor_name").Optional().Nillable(),
		field.String("invoice_number").Optional().Nillable(),
		field.String("reference_number").Optional().Nillable(),
		field.String("transaction_type").
			Default(string(constants.TxnUnknown)).
			Validate(utils.EnumValidator(
				string(constants.TxnIncome),
				string(constants.TxnExpense),
				string(constants.TxnUnknown),
			)),
		field.String("category").Default(string(constants.Uncategorized)),
		field.Float("tax_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("payment_method").Default(string(constants.PayUnknown)),
		field.Float("confidence_score").
			Min(0).Max(1),
		field.String("extraction_method").
			Validate(utils.EnumValidator(
				string(constants.MethodPattern),
				string(constants.MethodPatternLLM),
			)),
		field.String("pattern_set_version").NotEmpty(),
		field.Bool("needs_review").Default(false),
		field.Time("extracted_at").Default(time.Now),
	}
}

func (ExtractedData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("extraction").
			Field("document_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ExtractedData) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "extracted_at"),
		index.Fields("company_id", "transaction_date"),
	}
}
