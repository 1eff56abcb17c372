// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/bidder"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/google/uuid"
)

// Bidder is the model entity for the Bidder schema.
type Bidder struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// BidderName holds the value of the "bidder_name" field.
	BidderName string `json:"bidder_name,omitempty"`
	// BidderLocation holds the value of the "bidder_location" field.
	BidderLocation *string `json:"bidder_location,omitempty"`
	// TotalBidAmount holds the value of the "total_bid_amount" field.
	TotalBidAmount *float64 `json:"total_bid_amount,omitempty"`
	// BidRank holds the value of the "bid_rank" field.
	BidRank *int `json:"bid_rank,omitempty"`
	// PercentageDiff holds the value of the "percentage_diff" field.
	PercentageDiff *float64 `json:"percentage_diff,omitempty"`
	// IsWinner holds the value of the "is_winner" field.
	IsWinner bool `json:"is_winner,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BidderQuery when eager-loading is set.
	Edges        BidderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BidderEdges holds the relations/edges for other nodes in the graph.
type BidderEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BidderEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bidder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bidder.FieldIsWinner:
			values[i] = new(sql.NullBool)
		case bidder.FieldTotalBidAmount, bidder.FieldPercentageDiff:
			values[i] = new(sql.NullFloat64)
		case bidder.FieldBidRank:
			values[i] = new(sql.NullInt64)
		case bidder.FieldBidderName, bidder.FieldBidderLocation:
			values[i] = new(sql.NullString)
		case bidder.FieldID, bidder.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bidder fields.
func (_m *Bidder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bidder.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bidder.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case bidder.FieldBidderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bidder_name", values[i])
			} else if value.Valid {
				_m.BidderName = value.String
			}
		case bidder.FieldBidderLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bidder_location", values[i])
			} else if value.Valid {
				_m.BidderLocation = new(string)
				*_m.BidderLocation = value.String
			}
		case bidder.FieldTotalBidAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_bid_amount", values[i])
			} else if value.Valid {
				_m.TotalBidAmount = new(float64)
				*_m.TotalBidAmount = value.Float64
			}
		case bidder.FieldBidRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bid_rank", values[i])
			} else if value.Valid {
				_m.BidRank = new(int)
				*_m.BidRank = int(value.Int64)
			}
		case bidder.FieldPercentageDiff:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage_diff", values[i])
			} else if value.Valid {
				_m.PercentageDiff = new(float64)
				*_m.PercentageDiff = value.Float64
			}
		case bidder.FieldIsWinner:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_winner", values[i])
			} else if value.Valid {
				_m.IsWinner = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Bidder.
// This includes values selected through modifiers, order, etc.
func (_m *Bidder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the Bidder entity.
func (_m *Bidder) QueryContract() *ContractQuery {
	return NewBidderClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this Bidder.
// Note that you need to call Bidder.Unwrap() before calling this method if this Bidder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bidder) Update() *BidderUpdateOne {
	return NewBidderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bidder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bidder) Unwrap() *Bidder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Bidder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bidder) String() string {
	var builder strings.Builder
	builder.WriteString("Bidder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("bidder_name=")
	builder.WriteString(_m.BidderName)
	builder.WriteString(", ")
	if v := _m.BidderLocation; v != nil {
		builder.WriteString("bidder_location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TotalBidAmount; v != nil {
		builder.WriteString("total_bid_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BidRank; v != nil {
		builder.WriteString("bid_rank=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PercentageDiff; v != nil {
		builder.WriteString("percentage_diff=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_winner=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsWinner))
	builder.WriteByte(')')
	return builder.String()
}

// Bidders is a parsable slice of Bidder.
type Bidders []*Bidder
