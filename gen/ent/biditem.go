// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/biditem"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/google/uuid"
)

// BidItem is the model entity for the BidItem schema.
type BidItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// ItemNumber holds the value of the "item_number" field.
	ItemNumber *string `json:"item_number,omitempty"`
	// ItemCode holds the value of the "item_code" field.
	ItemCode *string `json:"item_code,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity *float64 `json:"quantity,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit *string `json:"unit,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice *float64 `json:"unit_price,omitempty"`
	// TotalPrice holds the value of the "total_price" field.
	TotalPrice *float64 `json:"total_price,omitempty"`
	// BidderName holds the value of the "bidder_name" field.
	BidderName *string `json:"bidder_name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BidItemQuery when eager-loading is set.
	Edges        BidItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BidItemEdges holds the relations/edges for other nodes in the graph.
type BidItemEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BidItemEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BidItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case biditem.FieldQuantity, biditem.FieldUnitPrice, biditem.FieldTotalPrice:
			values[i] = new(sql.NullFloat64)
		case biditem.FieldItemNumber, biditem.FieldItemCode, biditem.FieldDescription, biditem.FieldUnit, biditem.FieldBidderName:
			values[i] = new(sql.NullString)
		case biditem.FieldID, biditem.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BidItem fields.
func (_m *BidItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case biditem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case biditem.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case biditem.FieldItemNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_number", values[i])
			} else if value.Valid {
				_m.ItemNumber = new(string)
				*_m.ItemNumber = value.String
			}
		case biditem.FieldItemCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_code", values[i])
			} else if value.Valid {
				_m.ItemCode = new(string)
				*_m.ItemCode = value.String
			}
		case biditem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case biditem.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = new(float64)
				*_m.Quantity = value.Float64
			}
		case biditem.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = new(string)
				*_m.Unit = value.String
			}
		case biditem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = new(float64)
				*_m.UnitPrice = value.Float64
			}
		case biditem.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = new(float64)
				*_m.TotalPrice = value.Float64
			}
		case biditem.FieldBidderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bidder_name", values[i])
			} else if value.Valid {
				_m.BidderName = new(string)
				*_m.BidderName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BidItem.
// This includes values selected through modifiers, order, etc.
func (_m *BidItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the BidItem entity.
func (_m *BidItem) QueryContract() *ContractQuery {
	return NewBidItemClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this BidItem.
// Note that you need to call BidItem.Unwrap() before calling this method if this BidItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BidItem) Update() *BidItemUpdateOne {
	return NewBidItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BidItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BidItem) Unwrap() *BidItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BidItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BidItem) String() string {
	var builder strings.Builder
	builder.WriteString("BidItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	if v := _m.ItemNumber; v != nil {
		builder.WriteString("item_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ItemCode; v != nil {
		builder.WriteString("item_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Quantity; v != nil {
		builder.WriteString("quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Unit; v != nil {
		builder.WriteString("unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UnitPrice; v != nil {
		builder.WriteString("unit_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalPrice; v != nil {
		builder.WriteString("total_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BidderName; v != nil {
		builder.WriteString("bidder_name=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// BidItems is a parsable slice of BidItem.
type BidItems []*BidItem
