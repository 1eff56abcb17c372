package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/db/ent/schema/utils"
)

// ExtractionLog is append-only: rows are inserted once per processed file
// and never updated, so there is no updated_at and no edges.
type ExtractionLog struct{ ent.Schema }

func (ExtractionLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_logs"},
	}
}

func (ExtractionLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("file_path").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypeStrings()...)),
		field.String("extraction_method").Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.ExtractionStatusStrings()...)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("confidence_score").Optional().Nillable(),
		field.Float("processing_seconds").Optional().Nillable(),
		field.Int("records_extracted").Default(0).NonNegative(),
		field.Strings("validation_failed").Optional(),
		field.String("file_hash").Optional().Nillable(),
		field.Int64("file_size_bytes").Optional().Nillable(),
		field.Time("file_mod_time").Optional().Nillable(),
		field.UUID("run_id", uuid.UUID{}).Immutable(),
		field.Time("extraction_time").Default(time.Now).Immutable(),
	}
}

func (ExtractionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("file_path", "extraction_time"),
		index.Fields("status", "extraction_time"),
	}
}
