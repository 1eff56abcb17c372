// Code generated by ent, DO NOT EDIT.

package bidder

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bidder type in the database.
	Label = "bidder"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractID holds the string denoting the contract_id field in the database.
	FieldContractID = "contract_id"
	// FieldBidderName holds the string denoting the bidder_name field in the database.
	FieldBidderName = "bidder_name"
	// FieldBidderLocation holds the string denoting the bidder_location field in the database.
	FieldBidderLocation = "bidder_location"
	// FieldTotalBidAmount holds the string denoting the total_bid_amount field in the database.
	FieldTotalBidAmount = "total_bid_amount"
	// FieldBidRank holds the string denoting the bid_rank field in the database.
	FieldBidRank = "bid_rank"
	// FieldPercentageDiff holds the string denoting the percentage_diff field in the database.
	FieldPercentageDiff = "percentage_diff"
	// FieldIsWinner holds the string denoting the is_winner field in the database.
	FieldIsWinner = "is_winner"
	// EdgeContract holds the string denoting the contract edge name in mutations.
	EdgeContract = "contract"
	// Table holds the table name of the bidder in the database.
	Table = "bidders"
	// ContractTable is the table that holds the contract relation/edge.
	ContractTable = "bidders"
	// ContractInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractInverseTable = "contracts"
	// ContractColumn is the table column denoting the contract relation/edge.
	ContractColumn = "contract_id"
)

// Columns holds all SQL columns for bidder fields.
var Columns = []string{
	FieldID,
	FieldContractID,
	FieldBidderName,
	FieldBidderLocation,
	FieldTotalBidAmount,
	FieldBidRank,
	FieldPercentageDiff,
	FieldIsWinner,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BidderNameValidator is a validator for the "bidder_name" field. It is called by the builders before save.
	BidderNameValidator func(string) error
	// DefaultIsWinner holds the default value on creation for the "is_winner" field.
	DefaultIsWinner bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Bidder queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractID orders the results by the contract_id field.
func ByContractID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractID, opts...).ToFunc()
}

// ByBidderName orders the results by the bidder_name field.
func ByBidderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidderName, opts...).ToFunc()
}

// ByBidderLocation orders the results by the bidder_location field.
func ByBidderLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidderLocation, opts...).ToFunc()
}

// ByTotalBidAmount orders the results by the total_bid_amount field.
func ByTotalBidAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalBidAmount, opts...).ToFunc()
}

// ByBidRank orders the results by the bid_rank field.
func ByBidRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidRank, opts...).ToFunc()
}

// ByPercentageDiff orders the results by the percentage_diff field.
func ByPercentageDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentageDiff, opts...).ToFunc()
}

// ByIsWinner orders the results by the is_winner field.
func ByIsWinner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsWinner, opts...).ToFunc()
}

// ByContractField orders the results by contract field.
func ByContractField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContractStep(), sql.OrderByField(field, opts...))
	}
}
func newContractStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContractInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
	)
}
