// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contract type in the database.
	Label = "contract"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractNumber holds the string denoting the contract_number field in the database.
	FieldContractNumber = "contract_number"
	// FieldWbsElement holds the string denoting the wbs_element field in the database.
	FieldWbsElement = "wbs_element"
	// FieldCounties holds the string denoting the counties field in the database.
	FieldCounties = "counties"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDateAvailable holds the string denoting the date_available field in the database.
	FieldDateAvailable = "date_available"
	// FieldCompletionDate holds the string denoting the completion_date field in the database.
	FieldCompletionDate = "completion_date"
	// FieldMbeGoal holds the string denoting the mbe_goal field in the database.
	FieldMbeGoal = "mbe_goal"
	// FieldWbeGoal holds the string denoting the wbe_goal field in the database.
	FieldWbeGoal = "wbe_goal"
	// FieldCombinedGoal holds the string denoting the combined_goal field in the database.
	FieldCombinedGoal = "combined_goal"
	// FieldBidOpeningDate holds the string denoting the bid_opening_date field in the database.
	FieldBidOpeningDate = "bid_opening_date"
	// FieldProposalLength holds the string denoting the proposal_length field in the database.
	FieldProposalLength = "proposal_length"
	// FieldTypeOfWork holds the string denoting the type_of_work field in the database.
	FieldTypeOfWork = "type_of_work"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldEstimatedCost holds the string denoting the estimated_cost field in the database.
	FieldEstimatedCost = "estimated_cost"
	// FieldAwardedAmount holds the string denoting the awarded_amount field in the database.
	FieldAwardedAmount = "awarded_amount"
	// FieldAwardedTo holds the string denoting the awarded_to field in the database.
	FieldAwardedTo = "awarded_to"
	// FieldAwardDate holds the string denoting the award_date field in the database.
	FieldAwardDate = "award_date"
	// FieldSourceFilePath holds the string denoting the source_file_path field in the database.
	FieldSourceFilePath = "source_file_path"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBidders holds the string denoting the bidders edge name in mutations.
	EdgeBidders = "bidders"
	// EdgeBidItems holds the string denoting the bid_items edge name in mutations.
	EdgeBidItems = "bid_items"
	// Table holds the table name of the contract in the database.
	Table = "contracts"
	// BiddersTable is the table that holds the bidders relation/edge.
	BiddersTable = "bidders"
	// BiddersInverseTable is the table name for the Bidder entity.
	// It exists in this package in order to avoid circular dependency with the "bidder" package.
	BiddersInverseTable = "bidders"
	// BiddersColumn is the table column denoting the bidders relation/edge.
	BiddersColumn = "contract_id"
	// BidItemsTable is the table that holds the bid_items relation/edge.
	BidItemsTable = "bid_items"
	// BidItemsInverseTable is the table name for the BidItem entity.
	// It exists in this package in order to avoid circular dependency with the "biditem" package.
	BidItemsInverseTable = "bid_items"
	// BidItemsColumn is the table column denoting the bid_items relation/edge.
	BidItemsColumn = "contract_id"
)

// Columns holds all SQL columns for contract fields.
var Columns = []string{
	FieldID,
	FieldContractNumber,
	FieldWbsElement,
	FieldCounties,
	FieldDescription,
	FieldDateAvailable,
	FieldCompletionDate,
	FieldMbeGoal,
	FieldWbeGoal,
	FieldCombinedGoal,
	FieldBidOpeningDate,
	FieldProposalLength,
	FieldTypeOfWork,
	FieldLocation,
	FieldEstimatedCost,
	FieldAwardedAmount,
	FieldAwardedTo,
	FieldAwardDate,
	FieldSourceFilePath,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ContractNumberValidator is a validator for the "contract_number" field. It is called by the builders before save.
	ContractNumberValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Contract queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractNumber orders the results by the contract_number field.
func ByContractNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractNumber, opts...).ToFunc()
}

// ByWbsElement orders the results by the wbs_element field.
func ByWbsElement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWbsElement, opts...).ToFunc()
}

// ByCounties orders the results by the counties field.
func ByCounties(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounties, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDateAvailable orders the results by the date_available field.
func ByDateAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateAvailable, opts...).ToFunc()
}

// ByCompletionDate orders the results by the completion_date field.
func ByCompletionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionDate, opts...).ToFunc()
}

// ByMbeGoal orders the results by the mbe_goal field.
func ByMbeGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMbeGoal, opts...).ToFunc()
}

// ByWbeGoal orders the results by the wbe_goal field.
func ByWbeGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWbeGoal, opts...).ToFunc()
}

// ByCombinedGoal orders the results by the combined_goal field.
func ByCombinedGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCombinedGoal, opts...).ToFunc()
}

// ByBidOpeningDate orders the results by the bid_opening_date field.
func ByBidOpeningDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidOpeningDate, opts...).ToFunc()
}

// ByProposalLength orders the results by the proposal_length field.
func ByProposalLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalLength, opts...).ToFunc()
}

// ByTypeOfWork orders the results by the type_of_work field.
func ByTypeOfWork(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfWork, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByEstimatedCost orders the results by the estimated_cost field.
func ByEstimatedCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCost, opts...).ToFunc()
}

// ByAwardedAmount orders the results by the awarded_amount field.
func ByAwardedAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardedAmount, opts...).ToFunc()
}

// ByAwardedTo orders the results by the awarded_to field.
func ByAwardedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardedTo, opts...).ToFunc()
}

// ByAwardDate orders the results by the award_date field.
func ByAwardDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardDate, opts...).ToFunc()
}

// BySourceFilePath orders the results by the source_file_path field.
func BySourceFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFilePath, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBiddersCount orders the results by bidders count.
func ByBiddersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBiddersStep(), opts...)
	}
}

// ByBidders orders the results by bidders terms.
func ByBidders(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBiddersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBidItemsCount orders the results by bid_items count.
func ByBidItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBidItemsStep(), opts...)
	}
}

// ByBidItems orders the results by bid_items terms.
func ByBidItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBidItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBiddersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BiddersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BiddersTable, BiddersColumn),
	)
}
func newBidItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BidItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BidItemsTable, BidItemsColumn),
	)
}
