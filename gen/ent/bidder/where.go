// Code generated by ent, DO NOT EDIT.

package bidder

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldContractID, v))
}

// BidderName applies equality check predicate on the "bidder_name" field. It's identical to BidderNameEQ.
func BidderName(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldBidderName, v))
}

// BidderLocation applies equality check predicate on the "bidder_location" field. It's identical to BidderLocationEQ.
func BidderLocation(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldBidderLocation, v))
}

// TotalBidAmount applies equality check predicate on the "total_bid_amount" field. It's identical to TotalBidAmountEQ.
func TotalBidAmount(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldTotalBidAmount, v))
}

// BidRank applies equality check predicate on the "bid_rank" field. It's identical to BidRankEQ.
func BidRank(v int) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldBidRank, v))
}

// PercentageDiff applies equality check predicate on the "percentage_diff" field. It's identical to PercentageDiffEQ.
func PercentageDiff(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldPercentageDiff, v))
}

// IsWinner applies equality check predicate on the "is_winner" field. It's identical to IsWinnerEQ.
func IsWinner(v bool) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldIsWinner, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.Bidder {
	return predicate.Bidder(sql.FieldNotIn(FieldContractID, vs...))
}

// BidderNameEQ applies the EQ predicate on the "bidder_name" field.
func BidderNameEQ(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldBidderName, v))
}

// BidderNameNEQ applies the NEQ predicate on the "bidder_name" field.
func BidderNameNEQ(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldNEQ(FieldBidderName, v))
}

// BidderNameIn applies the In predicate on the "bidder_name" field.
func BidderNameIn(vs ...string) predicate.Bidder {
	return predicate.Bidder(sql.FieldIn(FieldBidderName, vs...))
}

// BidderNameNotIn applies the NotIn predicate on the "bidder_name" field.
func BidderNameNotIn(vs ...string) predicate.Bidder {
	return predicate.Bidder(sql.FieldNotIn(FieldBidderName, vs...))
}

// BidderNameGT applies the GT predicate on the "bidder_name" field.
func BidderNameGT(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldGT(FieldBidderName, v))
}

// BidderNameGTE applies the GTE predicate on the "bidder_name" field.
func BidderNameGTE(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldGTE(FieldBidderName, v))
}

// BidderNameLT applies the LT predicate on the "bidder_name" field.
func BidderNameLT(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldLT(FieldBidderName, v))
}

// BidderNameLTE applies the LTE predicate on the "bidder_name" field.
func BidderNameLTE(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldLTE(FieldBidderName, v))
}

// BidderNameContains applies the Contains predicate on the "bidder_name" field.
func BidderNameContains(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldContains(FieldBidderName, v))
}

// BidderNameHasPrefix applies the HasPrefix predicate on the "bidder_name" field.
func BidderNameHasPrefix(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldHasPrefix(FieldBidderName, v))
}

// BidderNameHasSuffix applies the HasSuffix predicate on the "bidder_name" field.
func BidderNameHasSuffix(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldHasSuffix(FieldBidderName, v))
}

// BidderNameEqualFold applies the EqualFold predicate on the "bidder_name" field.
func BidderNameEqualFold(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldEqualFold(FieldBidderName, v))
}

// BidderNameContainsFold applies the ContainsFold predicate on the "bidder_name" field.
func BidderNameContainsFold(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldContainsFold(FieldBidderName, v))
}

// BidderLocationEQ applies the EQ predicate on the "bidder_location" field.
func BidderLocationEQ(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldBidderLocation, v))
}

// BidderLocationNEQ applies the NEQ predicate on the "bidder_location" field.
func BidderLocationNEQ(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldNEQ(FieldBidderLocation, v))
}

// BidderLocationIn applies the In predicate on the "bidder_location" field.
func BidderLocationIn(vs ...string) predicate.Bidder {
	return predicate.Bidder(sql.FieldIn(FieldBidderLocation, vs...))
}

// BidderLocationNotIn applies the NotIn predicate on the "bidder_location" field.
func BidderLocationNotIn(vs ...string) predicate.Bidder {
	return predicate.Bidder(sql.FieldNotIn(FieldBidderLocation, vs...))
}

// BidderLocationGT applies the GT predicate on the "bidder_location" field.
func BidderLocationGT(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldGT(FieldBidderLocation, v))
}

// BidderLocationGTE applies the GTE predicate on the "bidder_location" field.
func BidderLocationGTE(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldGTE(FieldBidderLocation, v))
}

// BidderLocationLT applies the LT predicate on the "bidder_location" field.
func BidderLocationLT(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldLT(FieldBidderLocation, v))
}

// BidderLocationLTE applies the LTE predicate on the "bidder_location" field.
func BidderLocationLTE(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldLTE(FieldBidderLocation, v))
}

// BidderLocationContains applies the Contains predicate on the "bidder_location" field.
func BidderLocationContains(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldContains(FieldBidderLocation, v))
}

// BidderLocationHasPrefix applies the HasPrefix predicate on the "bidder_location" field.
func BidderLocationHasPrefix(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldHasPrefix(FieldBidderLocation, v))
}

// BidderLocationHasSuffix applies the HasSuffix predicate on the "bidder_location" field.
func BidderLocationHasSuffix(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldHasSuffix(FieldBidderLocation, v))
}

// BidderLocationIsNil applies the IsNil predicate on the "bidder_location" field.
func BidderLocationIsNil() predicate.Bidder {
	return predicate.Bidder(sql.FieldIsNull(FieldBidderLocation))
}

// BidderLocationNotNil applies the NotNil predicate on the "bidder_location" field.
func BidderLocationNotNil() predicate.Bidder {
	return predicate.Bidder(sql.FieldNotNull(FieldBidderLocation))
}

// BidderLocationEqualFold applies the EqualFold predicate on the "bidder_location" field.
func BidderLocationEqualFold(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldEqualFold(FieldBidderLocation, v))
}

// BidderLocationContainsFold applies the ContainsFold predicate on the "bidder_location" field.
func BidderLocationContainsFold(v string) predicate.Bidder {
	return predicate.Bidder(sql.FieldContainsFold(FieldBidderLocation, v))
}

// TotalBidAmountEQ applies the EQ predicate on the "total_bid_amount" field.
func TotalBidAmountEQ(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldTotalBidAmount, v))
}

// TotalBidAmountNEQ applies the NEQ predicate on the "total_bid_amount" field.
func TotalBidAmountNEQ(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldNEQ(FieldTotalBidAmount, v))
}

// TotalBidAmountIn applies the In predicate on the "total_bid_amount" field.
func TotalBidAmountIn(vs ...float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldIn(FieldTotalBidAmount, vs...))
}

// TotalBidAmountNotIn applies the NotIn predicate on the "total_bid_amount" field.
func TotalBidAmountNotIn(vs ...float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldNotIn(FieldTotalBidAmount, vs...))
}

// TotalBidAmountGT applies the GT predicate on the "total_bid_amount" field.
func TotalBidAmountGT(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldGT(FieldTotalBidAmount, v))
}

// TotalBidAmountGTE applies the GTE predicate on the "total_bid_amount" field.
func TotalBidAmountGTE(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldGTE(FieldTotalBidAmount, v))
}

// TotalBidAmountLT applies the LT predicate on the "total_bid_amount" field.
func TotalBidAmountLT(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldLT(FieldTotalBidAmount, v))
}

// TotalBidAmountLTE applies the LTE predicate on the "total_bid_amount" field.
func TotalBidAmountLTE(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldLTE(FieldTotalBidAmount, v))
}

// TotalBidAmountIsNil applies the IsNil predicate on the "total_bid_amount" field.
func TotalBidAmountIsNil() predicate.Bidder {
	return predicate.Bidder(sql.FieldIsNull(FieldTotalBidAmount))
}

// TotalBidAmountNotNil applies the NotNil predicate on the "total_bid_amount" field.
func TotalBidAmountNotNil() predicate.Bidder {
	return predicate.Bidder(sql.FieldNotNull(FieldTotalBidAmount))
}

// BidRankEQ applies the EQ predicate on the "bid_rank" field.
func BidRankEQ(v int) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldBidRank, v))
}

// BidRankNEQ applies the NEQ predicate on the "bid_rank" field.
func BidRankNEQ(v int) predicate.Bidder {
	return predicate.Bidder(sql.FieldNEQ(FieldBidRank, v))
}

// BidRankIn applies the In predicate on the "bid_rank" field.
func BidRankIn(vs ...int) predicate.Bidder {
	return predicate.Bidder(sql.FieldIn(FieldBidRank, vs...))
}

// BidRankNotIn applies the NotIn predicate on the "bid_rank" field.
func BidRankNotIn(vs ...int) predicate.Bidder {
	return predicate.Bidder(sql.FieldNotIn(FieldBidRank, vs...))
}

// BidRankGT applies the GT predicate on the "bid_rank" field.
func BidRankGT(v int) predicate.Bidder {
	return predicate.Bidder(sql.FieldGT(FieldBidRank, v))
}

// BidRankGTE applies the GTE predicate on the "bid_rank" field.
func BidRankGTE(v int) predicate.Bidder {
	return predicate.Bidder(sql.FieldGTE(FieldBidRank, v))
}

// BidRankLT applies the LT predicate on the "bid_rank" field.
func BidRankLT(v int) predicate.Bidder {
	return predicate.Bidder(sql.FieldLT(FieldBidRank, v))
}

// BidRankLTE applies the LTE predicate on the "bid_rank" field.
func BidRankLTE(v int) predicate.Bidder {
	return predicate.Bidder(sql.FieldLTE(FieldBidRank, v))
}

// BidRankIsNil applies the IsNil predicate on the "bid_rank" field.
func BidRankIsNil() predicate.Bidder {
	return predicate.Bidder(sql.FieldIsNull(FieldBidRank))
}

// BidRankNotNil applies the NotNil predicate on the "bid_rank" field.
func BidRankNotNil() predicate.Bidder {
	return predicate.Bidder(sql.FieldNotNull(FieldBidRank))
}

// PercentageDiffEQ applies the EQ predicate on the "percentage_diff" field.
func PercentageDiffEQ(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldPercentageDiff, v))
}

// PercentageDiffNEQ applies the NEQ predicate on the "percentage_diff" field.
func PercentageDiffNEQ(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldNEQ(FieldPercentageDiff, v))
}

// PercentageDiffIn applies the In predicate on the "percentage_diff" field.
func PercentageDiffIn(vs ...float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldIn(FieldPercentageDiff, vs...))
}

// PercentageDiffNotIn applies the NotIn predicate on the "percentage_diff" field.
func PercentageDiffNotIn(vs ...float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldNotIn(FieldPercentageDiff, vs...))
}

// PercentageDiffGT applies the GT predicate on the "percentage_diff" field.
func PercentageDiffGT(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldGT(FieldPercentageDiff, v))
}

// PercentageDiffGTE applies the GTE predicate on the "percentage_diff" field.
func PercentageDiffGTE(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldGTE(FieldPercentageDiff, v))
}

// PercentageDiffLT applies the LT predicate on the "percentage_diff" field.
func PercentageDiffLT(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldLT(FieldPercentageDiff, v))
}

// PercentageDiffLTE applies the LTE predicate on the "percentage_diff" field.
func PercentageDiffLTE(v float64) predicate.Bidder {
	return predicate.Bidder(sql.FieldLTE(FieldPercentageDiff, v))
}

// PercentageDiffIsNil applies the IsNil predicate on the "percentage_diff" field.
func PercentageDiffIsNil() predicate.Bidder {
	return predicate.Bidder(sql.FieldIsNull(FieldPercentageDiff))
}

// PercentageDiffNotNil applies the NotNil predicate on the "percentage_diff" field.
func PercentageDiffNotNil() predicate.Bidder {
	return predicate.Bidder(sql.FieldNotNull(FieldPercentageDiff))
}

// IsWinnerEQ applies the EQ predicate on the "is_winner" field.
func IsWinnerEQ(v bool) predicate.Bidder {
	return predicate.Bidder(sql.FieldEQ(FieldIsWinner, v))
}

// IsWinnerNEQ applies the NEQ predicate on the "is_winner" field.
func IsWinnerNEQ(v bool) predicate.Bidder {
	return predicate.Bidder(sql.FieldNEQ(FieldIsWinner, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.Bidder {
	return predicate.Bidder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.Bidder {
	return predicate.Bidder(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bidder) predicate.Bidder {
	return predicate.Bidder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bidder) predicate.Bidder {
	return predicate.Bidder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bidder) predicate.Bidder {
	return predicate.Bidder(sql.NotPredicates(p))
}
