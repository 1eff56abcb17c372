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

type Bidder struct{ ent.Schema }

func (Bidder) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bidders"},
	}
}

func (Bidder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the composite unique index can reference it
		field.UUID("contract_id", uuid.UUID{}),
		field.String("bidder_name").NotEmpty(),
		field.String("bidder_location").Optional().Nillable(),
		field.Float("total_bid_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Int("bid_rank").Optional().Nillable(),
		field.Float("percentage_diff").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,2)"}),
		field.Bool("is_winner").Default(false),
	}
}

func (Bidder) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bidders -> ONE contract (FK: bidders.contract_id)
		edge.From("contract", Contract.Type).
			Ref("bidders").
			Field("contract_id").
			Required().
			Unique(),
	}
}

func (Bidder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id", "bidder_name").Unique(),
	}
}
