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

type BidItem struct{ ent.Schema }

func (BidItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bid_items"},
	}
}

func (BidItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("item_number").Optional().Nillable(),
		field.String("item_code").Optional().Nillable(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("quantity").Optional().Nillable(),
		field.String("unit").Optional().Nillable(),
		field.Float("unit_price").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("total_price").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("bidder_name").Optional().Nillable(),
	}
}

func (BidItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bid items -> ONE contract (FK: bid_items.contract_id)
		edge.From("contract", Contract.Type).
			Ref("bid_items").
			Field("contract_id").
			Required().
			Unique(),
	}
}

func (BidItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id"),
		index.Fields("contract_id", "item_number", "bidder_name"),
	}
}
