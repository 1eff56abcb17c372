// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/google/uuid"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractNumber holds the value of the "contract_number" field.
	ContractNumber string `json:"contract_number,omitempty"`
	// WbsElement holds the value of the "wbs_element" field.
	WbsElement *string `json:"wbs_element,omitempty"`
	// Counties holds the value of the "counties" field.
	Counties *string `json:"counties,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// DateAvailable holds the value of the "date_available" field.
	DateAvailable *time.Time `json:"date_available,omitempty"`
	// CompletionDate holds the value of the "completion_date" field.
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	// MbeGoal holds the value of the "mbe_goal" field.
	MbeGoal *float64 `json:"mbe_goal,omitempty"`
	// WbeGoal holds the value of the "wbe_goal" field.
	WbeGoal *float64 `json:"wbe_goal,omitempty"`
	// CombinedGoal holds the value of the "combined_goal" field.
	CombinedGoal *float64 `json:"combined_goal,omitempty"`
	// BidOpeningDate holds the value of the "bid_opening_date" field.
	BidOpeningDate *time.Time `json:"bid_opening_date,omitempty"`
	// ProposalLength holds the value of the "proposal_length" field.
	ProposalLength *float64 `json:"proposal_length,omitempty"`
	// TypeOfWork holds the value of the "type_of_work" field.
	TypeOfWork *string `json:"type_of_work,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// EstimatedCost holds the value of the "estimated_cost" field.
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	// AwardedAmount holds the value of the "awarded_amount" field.
	AwardedAmount *float64 `json:"awarded_amount,omitempty"`
	// AwardedTo holds the value of the "awarded_to" field.
	AwardedTo *string `json:"awarded_to,omitempty"`
	// AwardDate holds the value of the "award_date" field.
	AwardDate *time.Time `json:"award_date,omitempty"`
	// SourceFilePath holds the value of the "source_file_path" field.
	SourceFilePath *string `json:"source_file_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges        ContractEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// Bidders holds the value of the bidders edge.
	Bidders []*Bidder `json:"bidders,omitempty"`
	// BidItems holds the value of the bid_items edge.
	BidItems []*BidItem `json:"bid_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BiddersOrErr returns the Bidders value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) BiddersOrErr() ([]*Bidder, error) {
	if e.loadedTypes[0] {
		return e.Bidders, nil
	}
	return nil, &NotLoadedError{edge: "bidders"}
}

// BidItemsOrErr returns the BidItems value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) BidItemsOrErr() ([]*BidItem, error) {
	if e.loadedTypes[1] {
		return e.BidItems, nil
	}
	return nil, &NotLoadedError{edge: "bid_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldMbeGoal, contract.FieldWbeGoal, contract.FieldCombinedGoal, contract.FieldProposalLength, contract.FieldEstimatedCost, contract.FieldAwardedAmount:
			values[i] = new(sql.NullFloat64)
		case contract.FieldContractNumber, contract.FieldWbsElement, contract.FieldCounties, contract.FieldDescription, contract.FieldTypeOfWork, contract.FieldLocation, contract.FieldAwardedTo, contract.FieldSourceFilePath:
			values[i] = new(sql.NullString)
		case contract.FieldDateAvailable, contract.FieldCompletionDate, contract.FieldBidOpeningDate, contract.FieldAwardDate, contract.FieldCreatedAt, contract.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contract.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contract.FieldContractNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_number", values[i])
			} else if value.Valid {
				_m.ContractNumber = value.String
			}
		case contract.FieldWbsElement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wbs_element", values[i])
			} else if value.Valid {
				_m.WbsElement = new(string)
				*_m.WbsElement = value.String
			}
		case contract.FieldCounties:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field counties", values[i])
			} else if value.Valid {
				_m.Counties = new(string)
				*_m.Counties = value.String
			}
		case contract.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case contract.FieldDateAvailable:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_available", values[i])
			} else if value.Valid {
				_m.DateAvailable = new(time.Time)
				*_m.DateAvailable = value.Time
			}
		case contract.FieldCompletionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completion_date", values[i])
			} else if value.Valid {
				_m.CompletionDate = new(time.Time)
				*_m.CompletionDate = value.Time
			}
		case contract.FieldMbeGoal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mbe_goal", values[i])
			} else if value.Valid {
				_m.MbeGoal = new(float64)
				*_m.MbeGoal = value.Float64
			}
		case contract.FieldWbeGoal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wbe_goal", values[i])
			} else if value.Valid {
				_m.WbeGoal = new(float64)
				*_m.WbeGoal = value.Float64
			}
		case contract.FieldCombinedGoal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field combined_goal", values[i])
			} else if value.Valid {
				_m.CombinedGoal = new(float64)
				*_m.CombinedGoal = value.Float64
			}
		case contract.FieldBidOpeningDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field bid_opening_date", values[i])
			} else if value.Valid {
				_m.BidOpeningDate = new(time.Time)
				*_m.BidOpeningDate = value.Time
			}
		case contract.FieldProposalLength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_length", values[i])
			} else if value.Valid {
				_m.ProposalLength = new(float64)
				*_m.ProposalLength = value.Float64
			}
		case contract.FieldTypeOfWork:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_work", values[i])
			} else if value.Valid {
				_m.TypeOfWork = new(string)
				*_m.TypeOfWork = value.String
			}
		case contract.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case contract.FieldEstimatedCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost", values[i])
			} else if value.Valid {
				_m.EstimatedCost = new(float64)
				*_m.EstimatedCost = value.Float64
			}
		case contract.FieldAwardedAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_amount", values[i])
			} else if value.Valid {
				_m.AwardedAmount = new(float64)
				*_m.AwardedAmount = value.Float64
			}
		case contract.FieldAwardedTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_to", values[i])
			} else if value.Valid {
				_m.AwardedTo = new(string)
				*_m.AwardedTo = value.String
			}
		case contract.FieldAwardDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field award_date", values[i])
			} else if value.Valid {
				_m.AwardDate = new(time.Time)
				*_m.AwardDate = value.Time
			}
		case contract.FieldSourceFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file_path", values[i])
			} else if value.Valid {
				_m.SourceFilePath = new(string)
				*_m.SourceFilePath = value.String
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contract.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBidders queries the "bidders" edge of the Contract entity.
func (_m *Contract) QueryBidders() *BidderQuery {
	return NewContractClient(_m.config).QueryBidders(_m)
}

// QueryBidItems queries the "bid_items" edge of the Contract entity.
func (_m *Contract) QueryBidItems() *BidItemQuery {
	return NewContractClient(_m.config).QueryBidItems(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_number=")
	builder.WriteString(_m.ContractNumber)
	builder.WriteString(", ")
	if v := _m.WbsElement; v != nil {
		builder.WriteString("wbs_element=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Counties; v != nil {
		builder.WriteString("counties=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateAvailable; v != nil {
		builder.WriteString("date_available=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletionDate; v != nil {
		builder.WriteString("completion_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MbeGoal; v != nil {
		builder.WriteString("mbe_goal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WbeGoal; v != nil {
		builder.WriteString("wbe_goal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CombinedGoal; v != nil {
		builder.WriteString("combined_goal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BidOpeningDate; v != nil {
		builder.WriteString("bid_opening_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProposalLength; v != nil {
		builder.WriteString("proposal_length=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TypeOfWork; v != nil {
		builder.WriteString("type_of_work=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EstimatedCost; v != nil {
		builder.WriteString("estimated_cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AwardedAmount; v != nil {
		builder.WriteString("awarded_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AwardedTo; v != nil {
		builder.WriteString("awarded_to=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AwardDate; v != nil {
		builder.WriteString("award_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SourceFilePath; v != nil {
		builder.WriteString("source_file_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
