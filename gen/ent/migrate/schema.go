// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BidItemsColumns holds the columns for the "bid_items" table.
	BidItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "item_number", Type: field.TypeString, Nullable: true},
		{Name: "item_code", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "quantity", Type: field.TypeFloat64, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "unit_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "total_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "bidder_name", Type: field.TypeString, Nullable: true},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// BidItemsTable holds the schema information for the "bid_items" table.
	BidItemsTable = &schema.Table{
		Name:       "bid_items",
		Columns:    BidItemsColumns,
		PrimaryKey: []*schema.Column{BidItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bid_items_contracts_bid_items",
				Columns:    []*schema.Column{BidItemsColumns[9]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "biditem_contract_id",
				Unique:  false,
				Columns: []*schema.Column{BidItemsColumns[9]},
			},
			{
				Name:    "biditem_contract_id_item_number_bidder_name",
				Unique:  false,
				Columns: []*schema.Column{BidItemsColumns[9], BidItemsColumns[1], BidItemsColumns[8]},
			},
		},
	}
	// BiddersColumns holds the columns for the "bidders" table.
	BiddersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "bidder_name", Type: field.TypeString},
		{Name: "bidder_location", Type: field.TypeString, Nullable: true},
		{Name: "total_bid_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "bid_rank", Type: field.TypeInt, Nullable: true},
		{Name: "percentage_diff", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(8,2)"}},
		{Name: "is_winner", Type: field.TypeBool, Default: false},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// BiddersTable holds the schema information for the "bidders" table.
	BiddersTable = &schema.Table{
		Name:       "bidders",
		Columns:    BiddersColumns,
		PrimaryKey: []*schema.Column{BiddersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bidders_contracts_bidders",
				Columns:    []*schema.Column{BiddersColumns[7]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bidder_contract_id_bidder_name",
				Unique:  true,
				Columns: []*schema.Column{BiddersColumns[7], BiddersColumns[1]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "contract_number", Type: field.TypeString},
		{Name: "wbs_element", Type: field.TypeString, Nullable: true},
		{Name: "counties", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "date_available", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "completion_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "mbe_goal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "wbe_goal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "combined_goal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "bid_opening_date", Type: field.TypeTime, Nullable: true},
		{Name: "proposal_length", Type: field.TypeFloat64, Nullable: true},
		{Name: "type_of_work", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "estimated_cost", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "awarded_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "awarded_to", Type: field.TypeString, Nullable: true},
		{Name: "award_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "source_file_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contract_contract_number",
				Unique:  true,
				Columns: []*schema.Column{ContractsColumns[1]},
			},
		},
	}
	// ExtractionLogsColumns holds the columns for the "extraction_logs" table.
	ExtractionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "extraction_method", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence_score", Type: field.TypeFloat32, Nullable: true},
		{Name: "processing_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "records_extracted", Type: field.TypeInt, Default: 0},
		{Name: "validation_failed", Type: field.TypeJSON, Nullable: true},
		{Name: "file_hash", Type: field.TypeString, Nullable: true},
		{Name: "file_size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "file_mod_time", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeUUID},
		{Name: "extraction_time", Type: field.TypeTime},
	}
	// ExtractionLogsTable holds the schema information for the "extraction_logs" table.
	ExtractionLogsTable = &schema.Table{
		Name:       "extraction_logs",
		Columns:    ExtractionLogsColumns,
		PrimaryKey: []*schema.Column{ExtractionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionlog_run_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionLogsColumns[13]},
			},
			{
				Name:    "extractionlog_file_path_extraction_time",
				Unique:  false,
				Columns: []*schema.Column{ExtractionLogsColumns[1], ExtractionLogsColumns[14]},
			},
			{
				Name:    "extractionlog_status_extraction_time",
				Unique:  false,
				Columns: []*schema.Column{ExtractionLogsColumns[4], ExtractionLogsColumns[14]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BidItemsTable,
		BiddersTable,
		ContractsTable,
		ExtractionLogsTable,
	}
)

func init() {
	BidItemsTable.ForeignKeys[0].RefTable = ContractsTable
	BidItemsTable.Annotation = &entsql.Annotation{
		Table: "bid_items",
	}
	BiddersTable.ForeignKeys[0].RefTable = ContractsTable
	BiddersTable.Annotation = &entsql.Annotation{
		Table: "bidders",
	}
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	ExtractionLogsTable.Annotation = &entsql.Annotation{
		Table: "extraction_logs",
	}
}
