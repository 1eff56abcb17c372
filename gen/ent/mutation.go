// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/bidder"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/biditem"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/extractionlog"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBidItem       = "BidItem"
	TypeBidder        = "Bidder"
	TypeContract      = "Contract"
	TypeExtractionLog = "ExtractionLog"
)

// BidItemMutation represents an operation that mutates the BidItem nodes in the graph.
type BidItemMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	item_number     *string
	item_code       *string
	description     *string
	quantity        *float64
	addquantity     *float64
	unit            *string
	unit_price      *float64
	addunit_price   *float64
	total_price     *float64
	addtotal_price  *float64
	bidder_name     *string
	clearedFields   map[string]struct{}
	contract        *uuid.UUID
	clearedcontract bool
	done            bool
	oldValue        func(context.Context) (*BidItem, error)
	predicates      []predicate.BidItem
}

var _ ent.Mutation = (*BidItemMutation)(nil)

// biditemOption allows management of the mutation configuration using functional options.
type biditemOption func(*BidItemMutation)

// newBidItemMutation creates new mutation for the BidItem entity.
func newBidItemMutation(c config, op Op, opts ...biditemOption) *BidItemMutation {
	m := &BidItemMutation{
		config:        c,
		op:            op,
		typ:           TypeBidItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBidItemID sets the ID field of the mutation.
func withBidItemID(id uuid.UUID) biditemOption {
	return func(m *BidItemMutation) {
		var (
			err   error
			once  sync.Once
			value *BidItem
		)
		m.oldValue = func(ctx context.Context) (*BidItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BidItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBidItem sets the old BidItem of the mutation.
func withBidItem(node *BidItem) biditemOption {
	return func(m *BidItemMutation) {
		m.oldValue = func(context.Context) (*BidItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BidItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BidItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BidItem entities.
func (m *BidItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BidItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BidItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BidItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *BidItemMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *BidItemMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *BidItemMutation) ResetContractID() {
	m.contract = nil
}

// SetItemNumber sets the "item_number" field.
func (m *BidItemMutation) SetItemNumber(s string) {
	m.item_number = &s
}

// ItemNumber returns the value of the "item_number" field in the mutation.
func (m *BidItemMutation) ItemNumber() (r string, exists bool) {
	v := m.item_number
	if v == nil {
		return
	}
	return *v, true
}

// OldItemNumber returns the old "item_number" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldItemNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemNumber: %w", err)
	}
	return oldValue.ItemNumber, nil
}

// ClearItemNumber clears the value of the "item_number" field.
func (m *BidItemMutation) ClearItemNumber() {
	m.item_number = nil
	m.clearedFields[biditem.FieldItemNumber] = struct{}{}
}

// ItemNumberCleared returns if the "item_number" field was cleared in this mutation.
func (m *BidItemMutation) ItemNumberCleared() bool {
	_, ok := m.clearedFields[biditem.FieldItemNumber]
	return ok
}

// ResetItemNumber resets all changes to the "item_number" field.
func (m *BidItemMutation) ResetItemNumber() {
	m.item_number = nil
	delete(m.clearedFields, biditem.FieldItemNumber)
}

// SetItemCode sets the "item_code" field.
func (m *BidItemMutation) SetItemCode(s string) {
	m.item_code = &s
}

// ItemCode returns the value of the "item_code" field in the mutation.
func (m *BidItemMutation) ItemCode() (r string, exists bool) {
	v := m.item_code
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCode returns the old "item_code" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldItemCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCode: %w", err)
	}
	return oldValue.ItemCode, nil
}

// ClearItemCode clears the value of the "item_code" field.
func (m *BidItemMutation) ClearItemCode() {
	m.item_code = nil
	m.clearedFields[biditem.FieldItemCode] = struct{}{}
}

// ItemCodeCleared returns if the "item_code" field was cleared in this mutation.
func (m *BidItemMutation) ItemCodeCleared() bool {
	_, ok := m.clearedFields[biditem.FieldItemCode]
	return ok
}

// ResetItemCode resets all changes to the "item_code" field.
func (m *BidItemMutation) ResetItemCode() {
	m.item_code = nil
	delete(m.clearedFields, biditem.FieldItemCode)
}

// SetDescription sets the "description" field.
func (m *BidItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BidItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BidItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[biditem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BidItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[biditem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BidItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, biditem.FieldDescription)
}

// SetQuantity sets the "quantity" field.
func (m *BidItemMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *BidItemMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldQuantity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *BidItemMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *BidItemMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *BidItemMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[biditem.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *BidItemMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[biditem.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *BidItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, biditem.FieldQuantity)
}

// SetUnit sets the "unit" field.
func (m *BidItemMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *BidItemMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *BidItemMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[biditem.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *BidItemMutation) UnitCleared() bool {
	_, ok := m.clearedFields[biditem.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *BidItemMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, biditem.FieldUnit)
}

// SetUnitPrice sets the "unit_price" field.
func (m *BidItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *BidItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldUnitPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *BidItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *BidItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (m *BidItemMutation) ClearUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	m.clearedFields[biditem.FieldUnitPrice] = struct{}{}
}

// UnitPriceCleared returns if the "unit_price" field was cleared in this mutation.
func (m *BidItemMutation) UnitPriceCleared() bool {
	_, ok := m.clearedFields[biditem.FieldUnitPrice]
	return ok
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *BidItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	delete(m.clearedFields, biditem.FieldUnitPrice)
}

// SetTotalPrice sets the "total_price" field.
func (m *BidItemMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *BidItemMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldTotalPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *BidItemMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *BidItemMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalPrice clears the value of the "total_price" field.
func (m *BidItemMutation) ClearTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
	m.clearedFields[biditem.FieldTotalPrice] = struct{}{}
}

// TotalPriceCleared returns if the "total_price" field was cleared in this mutation.
func (m *BidItemMutation) TotalPriceCleared() bool {
	_, ok := m.clearedFields[biditem.FieldTotalPrice]
	return ok
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *BidItemMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
	delete(m.clearedFields, biditem.FieldTotalPrice)
}

// SetBidderName sets the "bidder_name" field.
func (m *BidItemMutation) SetBidderName(s string) {
	m.bidder_name = &s
}

// BidderName returns the value of the "bidder_name" field in the mutation.
func (m *BidItemMutation) BidderName() (r string, exists bool) {
	v := m.bidder_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBidderName returns the old "bidder_name" field's value of the BidItem entity.
// If the BidItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidItemMutation) OldBidderName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidderName: %w", err)
	}
	return oldValue.BidderName, nil
}

// ClearBidderName clears the value of the "bidder_name" field.
func (m *BidItemMutation) ClearBidderName() {
	m.bidder_name = nil
	m.clearedFields[biditem.FieldBidderName] = struct{}{}
}

// BidderNameCleared returns if the "bidder_name" field was cleared in this mutation.
func (m *BidItemMutation) BidderNameCleared() bool {
	_, ok := m.clearedFields[biditem.FieldBidderName]
	return ok
}

// ResetBidderName resets all changes to the "bidder_name" field.
func (m *BidItemMutation) ResetBidderName() {
	m.bidder_name = nil
	delete(m.clearedFields, biditem.FieldBidderName)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *BidItemMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[biditem.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *BidItemMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *BidItemMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *BidItemMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the BidItemMutation builder.
func (m *BidItemMutation) Where(ps ...predicate.BidItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BidItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BidItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BidItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BidItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BidItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BidItem).
func (m *BidItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BidItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.contract != nil {
		fields = append(fields, biditem.FieldContractID)
	}
	if m.item_number != nil {
		fields = append(fields, biditem.FieldItemNumber)
	}
	if m.item_code != nil {
		fields = append(fields, biditem.FieldItemCode)
	}
	if m.description != nil {
		fields = append(fields, biditem.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, biditem.FieldQuantity)
	}
	if m.unit != nil {
		fields = append(fields, biditem.FieldUnit)
	}
	if m.unit_price != nil {
		fields = append(fields, biditem.FieldUnitPrice)
	}
	if m.total_price != nil {
		fields = append(fields, biditem.FieldTotalPrice)
	}
	if m.bidder_name != nil {
		fields = append(fields, biditem.FieldBidderName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BidItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case biditem.FieldContractID:
		return m.ContractID()
	case biditem.FieldItemNumber:
		return m.ItemNumber()
	case biditem.FieldItemCode:
		return m.ItemCode()
	case biditem.FieldDescription:
		return m.Description()
	case biditem.FieldQuantity:
		return m.Quantity()
	case biditem.FieldUnit:
		return m.Unit()
	case biditem.FieldUnitPrice:
		return m.UnitPrice()
	case biditem.FieldTotalPrice:
		return m.TotalPrice()
	case biditem.FieldBidderName:
		return m.BidderName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BidItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case biditem.FieldContractID:
		return m.OldContractID(ctx)
	case biditem.FieldItemNumber:
		return m.OldItemNumber(ctx)
	case biditem.FieldItemCode:
		return m.OldItemCode(ctx)
	case biditem.FieldDescription:
		return m.OldDescription(ctx)
	case biditem.FieldQuantity:
		return m.OldQuantity(ctx)
	case biditem.FieldUnit:
		return m.OldUnit(ctx)
	case biditem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case biditem.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case biditem.FieldBidderName:
		return m.OldBidderName(ctx)
	}
	return nil, fmt.Errorf("unknown BidItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BidItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case biditem.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case biditem.FieldItemNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemNumber(v)
		return nil
	case biditem.FieldItemCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCode(v)
		return nil
	case biditem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case biditem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case biditem.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case biditem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case biditem.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case biditem.FieldBidderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidderName(v)
		return nil
	}
	return fmt.Errorf("unknown BidItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BidItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, biditem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, biditem.FieldUnitPrice)
	}
	if m.addtotal_price != nil {
		fields = append(fields, biditem.FieldTotalPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BidItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case biditem.FieldQuantity:
		return m.AddedQuantity()
	case biditem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case biditem.FieldTotalPrice:
		return m.AddedTotalPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BidItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case biditem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case biditem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case biditem.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	}
	return fmt.Errorf("unknown BidItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BidItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(biditem.FieldItemNumber) {
		fields = append(fields, biditem.FieldItemNumber)
	}
	if m.FieldCleared(biditem.FieldItemCode) {
		fields = append(fields, biditem.FieldItemCode)
	}
	if m.FieldCleared(biditem.FieldDescription) {
		fields = append(fields, biditem.FieldDescription)
	}
	if m.FieldCleared(biditem.FieldQuantity) {
		fields = append(fields, biditem.FieldQuantity)
	}
	if m.FieldCleared(biditem.FieldUnit) {
		fields = append(fields, biditem.FieldUnit)
	}
	if m.FieldCleared(biditem.FieldUnitPrice) {
		fields = append(fields, biditem.FieldUnitPrice)
	}
	if m.FieldCleared(biditem.FieldTotalPrice) {
		fields = append(fields, biditem.FieldTotalPrice)
	}
	if m.FieldCleared(biditem.FieldBidderName) {
		fields = append(fields, biditem.FieldBidderName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BidItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BidItemMutation) ClearField(name string) error {
	switch name {
	case biditem.FieldItemNumber:
		m.ClearItemNumber()
		return nil
	case biditem.FieldItemCode:
		m.ClearItemCode()
		return nil
	case biditem.FieldDescription:
		m.ClearDescription()
		return nil
	case biditem.FieldQuantity:
		m.ClearQuantity()
		return nil
	case biditem.FieldUnit:
		m.ClearUnit()
		return nil
	case biditem.FieldUnitPrice:
		m.ClearUnitPrice()
		return nil
	case biditem.FieldTotalPrice:
		m.ClearTotalPrice()
		return nil
	case biditem.FieldBidderName:
		m.ClearBidderName()
		return nil
	}
	return fmt.Errorf("unknown BidItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BidItemMutation) ResetField(name string) error {
	switch name {
	case biditem.FieldContractID:
		m.ResetContractID()
		return nil
	case biditem.FieldItemNumber:
		m.ResetItemNumber()
		return nil
	case biditem.FieldItemCode:
		m.ResetItemCode()
		return nil
	case biditem.FieldDescription:
		m.ResetDescription()
		return nil
	case biditem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case biditem.FieldUnit:
		m.ResetUnit()
		return nil
	case biditem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case biditem.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case biditem.FieldBidderName:
		m.ResetBidderName()
		return nil
	}
	return fmt.Errorf("unknown BidItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BidItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, biditem.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BidItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case biditem.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BidItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BidItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BidItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, biditem.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BidItemMutation) EdgeCleared(name string) bool {
	switch name {
	case biditem.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BidItemMutation) ClearEdge(name string) error {
	switch name {
	case biditem.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown BidItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BidItemMutation) ResetEdge(name string) error {
	switch name {
	case biditem.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown BidItem edge %s", name)
}

// BidderMutation represents an operation that mutates the Bidder nodes in the graph.
type BidderMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	bidder_name         *string
	bidder_location     *string
	total_bid_amount    *float64
	addtotal_bid_amount *float64
	bid_rank            *int
	addbid_rank         *int
	percentage_diff     *float64
	addpercentage_diff  *float64
	is_winner           *bool
	clearedFields       map[string]struct{}
	contract            *uuid.UUID
	clearedcontract     bool
	done                bool
	oldValue            func(context.Context) (*Bidder, error)
	predicates          []predicate.Bidder
}

var _ ent.Mutation = (*BidderMutation)(nil)

// bidderOption allows management of the mutation configuration using functional options.
type bidderOption func(*BidderMutation)

// newBidderMutation creates new mutation for the Bidder entity.
func newBidderMutation(c config, op Op, opts ...bidderOption) *BidderMutation {
	m := &BidderMutation{
		config:        c,
		op:            op,
		typ:           TypeBidder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBidderID sets the ID field of the mutation.
func withBidderID(id uuid.UUID) bidderOption {
	return func(m *BidderMutation) {
		var (
			err   error
			once  sync.Once
			value *Bidder
		)
		m.oldValue = func(ctx context.Context) (*Bidder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bidder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBidder sets the old Bidder of the mutation.
func withBidder(node *Bidder) bidderOption {
	return func(m *BidderMutation) {
		m.oldValue = func(context.Context) (*Bidder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BidderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BidderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bidder entities.
func (m *BidderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BidderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BidderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bidder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *BidderMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *BidderMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the Bidder entity.
// If the Bidder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidderMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *BidderMutation) ResetContractID() {
	m.contract = nil
}

// SetBidderName sets the "bidder_name" field.
func (m *BidderMutation) SetBidderName(s string) {
	m.bidder_name = &s
}

// BidderName returns the value of the "bidder_name" field in the mutation.
func (m *BidderMutation) BidderName() (r string, exists bool) {
	v := m.bidder_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBidderName returns the old "bidder_name" field's value of the Bidder entity.
// If the Bidder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidderMutation) OldBidderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidderName: %w", err)
	}
	return oldValue.BidderName, nil
}

// ResetBidderName resets all changes to the "bidder_name" field.
func (m *BidderMutation) ResetBidderName() {
	m.bidder_name = nil
}

// SetBidderLocation sets the "bidder_location" field.
func (m *BidderMutation) SetBidderLocation(s string) {
	m.bidder_location = &s
}

// BidderLocation returns the value of the "bidder_location" field in the mutation.
func (m *BidderMutation) BidderLocation() (r string, exists bool) {
	v := m.bidder_location
	if v == nil {
		return
	}
	return *v, true
}

// OldBidderLocation returns the old "bidder_location" field's value of the Bidder entity.
// If the Bidder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidderMutation) OldBidderLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidderLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidderLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidderLocation: %w", err)
	}
	return oldValue.BidderLocation, nil
}

// ClearBidderLocation clears the value of the "bidder_location" field.
func (m *BidderMutation) ClearBidderLocation() {
	m.bidder_location = nil
	m.clearedFields[bidder.FieldBidderLocation] = struct{}{}
}

// BidderLocationCleared returns if the "bidder_location" field was cleared in this mutation.
func (m *BidderMutation) BidderLocationCleared() bool {
	_, ok := m.clearedFields[bidder.FieldBidderLocation]
	return ok
}

// ResetBidderLocation resets all changes to the "bidder_location" field.
func (m *BidderMutation) ResetBidderLocation() {
	m.bidder_location = nil
	delete(m.clearedFields, bidder.FieldBidderLocation)
}

// SetTotalBidAmount sets the "total_bid_amount" field.
func (m *BidderMutation) SetTotalBidAmount(f float64) {
	m.total_bid_amount = &f
	m.addtotal_bid_amount = nil
}

// TotalBidAmount returns the value of the "total_bid_amount" field in the mutation.
func (m *BidderMutation) TotalBidAmount() (r float64, exists bool) {
	v := m.total_bid_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalBidAmount returns the old "total_bid_amount" field's value of the Bidder entity.
// If the Bidder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidderMutation) OldTotalBidAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalBidAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalBidAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalBidAmount: %w", err)
	}
	return oldValue.TotalBidAmount, nil
}

// AddTotalBidAmount adds f to the "total_bid_amount" field.
func (m *BidderMutation) AddTotalBidAmount(f float64) {
	if m.addtotal_bid_amount != nil {
		*m.addtotal_bid_amount += f
	} else {
		m.addtotal_bid_amount = &f
	}
}

// AddedTotalBidAmount returns the value that was added to the "total_bid_amount" field in this mutation.
func (m *BidderMutation) AddedTotalBidAmount() (r float64, exists bool) {
	v := m.addtotal_bid_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalBidAmount clears the value of the "total_bid_amount" field.
func (m *BidderMutation) ClearTotalBidAmount() {
	m.total_bid_amount = nil
	m.addtotal_bid_amount = nil
	m.clearedFields[bidder.FieldTotalBidAmount] = struct{}{}
}

// TotalBidAmountCleared returns if the "total_bid_amount" field was cleared in this mutation.
func (m *BidderMutation) TotalBidAmountCleared() bool {
	_, ok := m.clearedFields[bidder.FieldTotalBidAmount]
	return ok
}

// ResetTotalBidAmount resets all changes to the "total_bid_amount" field.
func (m *BidderMutation) ResetTotalBidAmount() {
	m.total_bid_amount = nil
	m.addtotal_bid_amount = nil
	delete(m.clearedFields, bidder.FieldTotalBidAmount)
}

// SetBidRank sets the "bid_rank" field.
func (m *BidderMutation) SetBidRank(i int) {
	m.bid_rank = &i
	m.addbid_rank = nil
}

// BidRank returns the value of the "bid_rank" field in the mutation.
func (m *BidderMutation) BidRank() (r int, exists bool) {
	v := m.bid_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldBidRank returns the old "bid_rank" field's value of the Bidder entity.
// If the Bidder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidderMutation) OldBidRank(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidRank: %w", err)
	}
	return oldValue.BidRank, nil
}

// AddBidRank adds i to the "bid_rank" field.
func (m *BidderMutation) AddBidRank(i int) {
	if m.addbid_rank != nil {
		*m.addbid_rank += i
	} else {
		m.addbid_rank = &i
	}
}

// AddedBidRank returns the value that was added to the "bid_rank" field in this mutation.
func (m *BidderMutation) AddedBidRank() (r int, exists bool) {
	v := m.addbid_rank
	if v == nil {
		return
	}
	return *v, true
}

// ClearBidRank clears the value of the "bid_rank" field.
func (m *BidderMutation) ClearBidRank() {
	m.bid_rank = nil
	m.addbid_rank = nil
	m.clearedFields[bidder.FieldBidRank] = struct{}{}
}

// BidRankCleared returns if the "bid_rank" field was cleared in this mutation.
func (m *BidderMutation) BidRankCleared() bool {
	_, ok := m.clearedFields[bidder.FieldBidRank]
	return ok
}

// ResetBidRank resets all changes to the "bid_rank" field.
func (m *BidderMutation) ResetBidRank() {
	m.bid_rank = nil
	m.addbid_rank = nil
	delete(m.clearedFields, bidder.FieldBidRank)
}

// SetPercentageDiff sets the "percentage_diff" field.
func (m *BidderMutation) SetPercentageDiff(f float64) {
	m.percentage_diff = &f
	m.addpercentage_diff = nil
}

// PercentageDiff returns the value of the "percentage_diff" field in the mutation.
func (m *BidderMutation) PercentageDiff() (r float64, exists bool) {
	v := m.percentage_diff
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentageDiff returns the old "percentage_diff" field's value of the Bidder entity.
// If the Bidder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidderMutation) OldPercentageDiff(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentageDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentageDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentageDiff: %w", err)
	}
	return oldValue.PercentageDiff, nil
}

// AddPercentageDiff adds f to the "percentage_diff" field.
func (m *BidderMutation) AddPercentageDiff(f float64) {
	if m.addpercentage_diff != nil {
		*m.addpercentage_diff += f
	} else {
		m.addpercentage_diff = &f
	}
}

// AddedPercentageDiff returns the value that was added to the "percentage_diff" field in this mutation.
func (m *BidderMutation) AddedPercentageDiff() (r float64, exists bool) {
	v := m.addpercentage_diff
	if v == nil {
		return
	}
	return *v, true
}

// ClearPercentageDiff clears the value of the "percentage_diff" field.
func (m *BidderMutation) ClearPercentageDiff() {
	m.percentage_diff = nil
	m.addpercentage_diff = nil
	m.clearedFields[bidder.FieldPercentageDiff] = struct{}{}
}

// PercentageDiffCleared returns if the "percentage_diff" field was cleared in this mutation.
func (m *BidderMutation) PercentageDiffCleared() bool {
	_, ok := m.clearedFields[bidder.FieldPercentageDiff]
	return ok
}

// ResetPercentageDiff resets all changes to the "percentage_diff" field.
func (m *BidderMutation) ResetPercentageDiff() {
	m.percentage_diff = nil
	m.addpercentage_diff = nil
	delete(m.clearedFields, bidder.FieldPercentageDiff)
}

// SetIsWinner sets the "is_winner" field.
func (m *BidderMutation) SetIsWinner(b bool) {
	m.is_winner = &b
}

// IsWinner returns the value of the "is_winner" field in the mutation.
func (m *BidderMutation) IsWinner() (r bool, exists bool) {
	v := m.is_winner
	if v == nil {
		return
	}
	return *v, true
}

// OldIsWinner returns the old "is_winner" field's value of the Bidder entity.
// If the Bidder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidderMutation) OldIsWinner(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsWinner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsWinner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsWinner: %w", err)
	}
	return oldValue.IsWinner, nil
}

// ResetIsWinner resets all changes to the "is_winner" field.
func (m *BidderMutation) ResetIsWinner() {
	m.is_winner = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *BidderMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[bidder.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *BidderMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *BidderMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *BidderMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the BidderMutation builder.
func (m *BidderMutation) Where(ps ...predicate.Bidder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BidderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BidderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bidder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BidderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BidderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bidder).
func (m *BidderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BidderMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.contract != nil {
		fields = append(fields, bidder.FieldContractID)
	}
	if m.bidder_name != nil {
		fields = append(fields, bidder.FieldBidderName)
	}
	if m.bidder_location != nil {
		fields = append(fields, bidder.FieldBidderLocation)
	}
	if m.total_bid_amount != nil {
		fields = append(fields, bidder.FieldTotalBidAmount)
	}
	if m.bid_rank != nil {
		fields = append(fields, bidder.FieldBidRank)
	}
	if m.percentage_diff != nil {
		fields = append(fields, bidder.FieldPercentageDiff)
	}
	if m.is_winner != nil {
		fields = append(fields, bidder.FieldIsWinner)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BidderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bidder.FieldContractID:
		return m.ContractID()
	case bidder.FieldBidderName:
		return m.BidderName()
	case bidder.FieldBidderLocation:
		return m.BidderLocation()
	case bidder.FieldTotalBidAmount:
		return m.TotalBidAmount()
	case bidder.FieldBidRank:
		return m.BidRank()
	case bidder.FieldPercentageDiff:
		return m.PercentageDiff()
	case bidder.FieldIsWinner:
		return m.IsWinner()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BidderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bidder.FieldContractID:
		return m.OldContractID(ctx)
	case bidder.FieldBidderName:
		return m.OldBidderName(ctx)
	case bidder.FieldBidderLocation:
		return m.OldBidderLocation(ctx)
	case bidder.FieldTotalBidAmount:
		return m.OldTotalBidAmount(ctx)
	case bidder.FieldBidRank:
		return m.OldBidRank(ctx)
	case bidder.FieldPercentageDiff:
		return m.OldPercentageDiff(ctx)
	case bidder.FieldIsWinner:
		return m.OldIsWinner(ctx)
	}
	return nil, fmt.Errorf("unknown Bidder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BidderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bidder.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case bidder.FieldBidderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidderName(v)
		return nil
	case bidder.FieldBidderLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidderLocation(v)
		return nil
	case bidder.FieldTotalBidAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalBidAmount(v)
		return nil
	case bidder.FieldBidRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidRank(v)
		return nil
	case bidder.FieldPercentageDiff:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentageDiff(v)
		return nil
	case bidder.FieldIsWinner:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsWinner(v)
		return nil
	}
	return fmt.Errorf("unknown Bidder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BidderMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_bid_amount != nil {
		fields = append(fields, bidder.FieldTotalBidAmount)
	}
	if m.addbid_rank != nil {
		fields = append(fields, bidder.FieldBidRank)
	}
	if m.addpercentage_diff != nil {
		fields = append(fields, bidder.FieldPercentageDiff)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BidderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bidder.FieldTotalBidAmount:
		return m.AddedTotalBidAmount()
	case bidder.FieldBidRank:
		return m.AddedBidRank()
	case bidder.FieldPercentageDiff:
		return m.AddedPercentageDiff()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BidderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bidder.FieldTotalBidAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalBidAmount(v)
		return nil
	case bidder.FieldBidRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBidRank(v)
		return nil
	case bidder.FieldPercentageDiff:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentageDiff(v)
		return nil
	}
	return fmt.Errorf("unknown Bidder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BidderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bidder.FieldBidderLocation) {
		fields = append(fields, bidder.FieldBidderLocation)
	}
	if m.FieldCleared(bidder.FieldTotalBidAmount) {
		fields = append(fields, bidder.FieldTotalBidAmount)
	}
	if m.FieldCleared(bidder.FieldBidRank) {
		fields = append(fields, bidder.FieldBidRank)
	}
	if m.FieldCleared(bidder.FieldPercentageDiff) {
		fields = append(fields, bidder.FieldPercentageDiff)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BidderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BidderMutation) ClearField(name string) error {
	switch name {
	case bidder.FieldBidderLocation:
		m.ClearBidderLocation()
		return nil
	case bidder.FieldTotalBidAmount:
		m.ClearTotalBidAmount()
		return nil
	case bidder.FieldBidRank:
		m.ClearBidRank()
		return nil
	case bidder.FieldPercentageDiff:
		m.ClearPercentageDiff()
		return nil
	}
	return fmt.Errorf("unknown Bidder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BidderMutation) ResetField(name string) error {
	switch name {
	case bidder.FieldContractID:
		m.ResetContractID()
		return nil
	case bidder.FieldBidderName:
		m.ResetBidderName()
		return nil
	case bidder.FieldBidderLocation:
		m.ResetBidderLocation()
		return nil
	case bidder.FieldTotalBidAmount:
		m.ResetTotalBidAmount()
		return nil
	case bidder.FieldBidRank:
		m.ResetBidRank()
		return nil
	case bidder.FieldPercentageDiff:
		m.ResetPercentageDiff()
		return nil
	case bidder.FieldIsWinner:
		m.ResetIsWinner()
		return nil
	}
	return fmt.Errorf("unknown Bidder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BidderMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, bidder.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BidderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bidder.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BidderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BidderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BidderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, bidder.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BidderMutation) EdgeCleared(name string) bool {
	switch name {
	case bidder.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BidderMutation) ClearEdge(name string) error {
	switch name {
	case bidder.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown Bidder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BidderMutation) ResetEdge(name string) error {
	switch name {
	case bidder.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown Bidder edge %s", name)
}

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	contract_number    *string
	wbs_element        *string
	counties           *string
	description        *string
	date_available     *time.Time
	completion_date    *time.Time
	mbe_goal           *float64
	addmbe_goal        *float64
	wbe_goal           *float64
	addwbe_goal        *float64
	combined_goal      *float64
	addcombined_goal   *float64
	bid_opening_date   *time.Time
	proposal_length    *float64
	addproposal_length *float64
	type_of_work       *string
	location           *string
	estimated_cost     *float64
	addestimated_cost  *float64
	awarded_amount     *float64
	addawarded_amount  *float64
	awarded_to         *string
	award_date         *time.Time
	source_file_path   *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	bidders            map[uuid.UUID]struct{}
	removedbidders     map[uuid.UUID]struct{}
	clearedbidders     bool
	bid_items          map[uuid.UUID]struct{}
	removedbid_items   map[uuid.UUID]struct{}
	clearedbid_items   bool
	done               bool
	oldValue           func(context.Context) (*Contract, error)
	predicates         []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id uuid.UUID) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractNumber sets the "contract_number" field.
func (m *ContractMutation) SetContractNumber(s string) {
	m.contract_number = &s
}

// ContractNumber returns the value of the "contract_number" field in the mutation.
func (m *ContractMutation) ContractNumber() (r string, exists bool) {
	v := m.contract_number
	if v == nil {
		return
	}
	return *v, true
}

// OldContractNumber returns the old "contract_number" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractNumber: %w", err)
	}
	return oldValue.ContractNumber, nil
}

// ResetContractNumber resets all changes to the "contract_number" field.
func (m *ContractMutation) ResetContractNumber() {
	m.contract_number = nil
}

// SetWbsElement sets the "wbs_element" field.
func (m *ContractMutation) SetWbsElement(s string) {
	m.wbs_element = &s
}

// WbsElement returns the value of the "wbs_element" field in the mutation.
func (m *ContractMutation) WbsElement() (r string, exists bool) {
	v := m.wbs_element
	if v == nil {
		return
	}
	return *v, true
}

// OldWbsElement returns the old "wbs_element" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldWbsElement(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWbsElement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWbsElement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWbsElement: %w", err)
	}
	return oldValue.WbsElement, nil
}

// ClearWbsElement clears the value of the "wbs_element" field.
func (m *ContractMutation) ClearWbsElement() {
	m.wbs_element = nil
	m.clearedFields[contract.FieldWbsElement] = struct{}{}
}

// WbsElementCleared returns if the "wbs_element" field was cleared in this mutation.
func (m *ContractMutation) WbsElementCleared() bool {
	_, ok := m.clearedFields[contract.FieldWbsElement]
	return ok
}

// ResetWbsElement resets all changes to the "wbs_element" field.
func (m *ContractMutation) ResetWbsElement() {
	m.wbs_element = nil
	delete(m.clearedFields, contract.FieldWbsElement)
}

// SetCounties sets the "counties" field.
func (m *ContractMutation) SetCounties(s string) {
	m.counties = &s
}

// Counties returns the value of the "counties" field in the mutation.
func (m *ContractMutation) Counties() (r string, exists bool) {
	v := m.counties
	if v == nil {
		return
	}
	return *v, true
}

// OldCounties returns the old "counties" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCounties(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounties: %w", err)
	}
	return oldValue.Counties, nil
}

// ClearCounties clears the value of the "counties" field.
func (m *ContractMutation) ClearCounties() {
	m.counties = nil
	m.clearedFields[contract.FieldCounties] = struct{}{}
}

// CountiesCleared returns if the "counties" field was cleared in this mutation.
func (m *ContractMutation) CountiesCleared() bool {
	_, ok := m.clearedFields[contract.FieldCounties]
	return ok
}

// ResetCounties resets all changes to the "counties" field.
func (m *ContractMutation) ResetCounties() {
	m.counties = nil
	delete(m.clearedFields, contract.FieldCounties)
}

// SetDescription sets the "description" field.
func (m *ContractMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ContractMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ContractMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[contract.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ContractMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[contract.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ContractMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, contract.FieldDescription)
}

// SetDateAvailable sets the "date_available" field.
func (m *ContractMutation) SetDateAvailable(t time.Time) {
	m.date_available = &t
}

// DateAvailable returns the value of the "date_available" field in the mutation.
func (m *ContractMutation) DateAvailable() (r time.Time, exists bool) {
	v := m.date_available
	if v == nil {
		return
	}
	return *v, true
}

// OldDateAvailable returns the old "date_available" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldDateAvailable(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateAvailable: %w", err)
	}
	return oldValue.DateAvailable, nil
}

// ClearDateAvailable clears the value of the "date_available" field.
func (m *ContractMutation) ClearDateAvailable() {
	m.date_available = nil
	m.clearedFields[contract.FieldDateAvailable] = struct{}{}
}

// DateAvailableCleared returns if the "date_available" field was cleared in this mutation.
func (m *ContractMutation) DateAvailableCleared() bool {
	_, ok := m.clearedFields[contract.FieldDateAvailable]
	return ok
}

// ResetDateAvailable resets all changes to the "date_available" field.
func (m *ContractMutation) ResetDateAvailable() {
	m.date_available = nil
	delete(m.clearedFields, contract.FieldDateAvailable)
}

// SetCompletionDate sets the "completion_date" field.
func (m *ContractMutation) SetCompletionDate(t time.Time) {
	m.completion_date = &t
}

// CompletionDate returns the value of the "completion_date" field in the mutation.
func (m *ContractMutation) CompletionDate() (r time.Time, exists bool) {
	v := m.completion_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionDate returns the old "completion_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCompletionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionDate: %w", err)
	}
	return oldValue.CompletionDate, nil
}

// ClearCompletionDate clears the value of the "completion_date" field.
func (m *ContractMutation) ClearCompletionDate() {
	m.completion_date = nil
	m.clearedFields[contract.FieldCompletionDate] = struct{}{}
}

// CompletionDateCleared returns if the "completion_date" field was cleared in this mutation.
func (m *ContractMutation) CompletionDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldCompletionDate]
	return ok
}

// ResetCompletionDate resets all changes to the "completion_date" field.
func (m *ContractMutation) ResetCompletionDate() {
	m.completion_date = nil
	delete(m.clearedFields, contract.FieldCompletionDate)
}

// SetMbeGoal sets the "mbe_goal" field.
func (m *ContractMutation) SetMbeGoal(f float64) {
	m.mbe_goal = &f
	m.addmbe_goal = nil
}

// MbeGoal returns the value of the "mbe_goal" field in the mutation.
func (m *ContractMutation) MbeGoal() (r float64, exists bool) {
	v := m.mbe_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldMbeGoal returns the old "mbe_goal" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldMbeGoal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMbeGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMbeGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMbeGoal: %w", err)
	}
	return oldValue.MbeGoal, nil
}

// AddMbeGoal adds f to the "mbe_goal" field.
func (m *ContractMutation) AddMbeGoal(f float64) {
	if m.addmbe_goal != nil {
		*m.addmbe_goal += f
	} else {
		m.addmbe_goal = &f
	}
}

// AddedMbeGoal returns the value that was added to the "mbe_goal" field in this mutation.
func (m *ContractMutation) AddedMbeGoal() (r float64, exists bool) {
	v := m.addmbe_goal
	if v == nil {
		return
	}
	return *v, true
}

// ClearMbeGoal clears the value of the "mbe_goal" field.
func (m *ContractMutation) ClearMbeGoal() {
	m.mbe_goal = nil
	m.addmbe_goal = nil
	m.clearedFields[contract.FieldMbeGoal] = struct{}{}
}

// MbeGoalCleared returns if the "mbe_goal" field was cleared in this mutation.
func (m *ContractMutation) MbeGoalCleared() bool {
	_, ok := m.clearedFields[contract.FieldMbeGoal]
	return ok
}

// ResetMbeGoal resets all changes to the "mbe_goal" field.
func (m *ContractMutation) ResetMbeGoal() {
	m.mbe_goal = nil
	m.addmbe_goal = nil
	delete(m.clearedFields, contract.FieldMbeGoal)
}

// SetWbeGoal sets the "wbe_goal" field.
func (m *ContractMutation) SetWbeGoal(f float64) {
	m.wbe_goal = &f
	m.addwbe_goal = nil
}

// WbeGoal returns the value of the "wbe_goal" field in the mutation.
func (m *ContractMutation) WbeGoal() (r float64, exists bool) {
	v := m.wbe_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldWbeGoal returns the old "wbe_goal" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldWbeGoal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWbeGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWbeGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWbeGoal: %w", err)
	}
	return oldValue.WbeGoal, nil
}

// AddWbeGoal adds f to the "wbe_goal" field.
func (m *ContractMutation) AddWbeGoal(f float64) {
	if m.addwbe_goal != nil {
		*m.addwbe_goal += f
	} else {
		m.addwbe_goal = &f
	}
}

// AddedWbeGoal returns the value that was added to the "wbe_goal" field in this mutation.
func (m *ContractMutation) AddedWbeGoal() (r float64, exists bool) {
	v := m.addwbe_goal
	if v == nil {
		return
	}
	return *v, true
}

// ClearWbeGoal clears the value of the "wbe_goal" field.
func (m *ContractMutation) ClearWbeGoal() {
	m.wbe_goal = nil
	m.addwbe_goal = nil
	m.clearedFields[contract.FieldWbeGoal] = struct{}{}
}

// WbeGoalCleared returns if the "wbe_goal" field was cleared in this mutation.
func (m *ContractMutation) WbeGoalCleared() bool {
	_, ok := m.clearedFields[contract.FieldWbeGoal]
	return ok
}

// ResetWbeGoal resets all changes to the "wbe_goal" field.
func (m *ContractMutation) ResetWbeGoal() {
	m.wbe_goal = nil
	m.addwbe_goal = nil
	delete(m.clearedFields, contract.FieldWbeGoal)
}

// SetCombinedGoal sets the "combined_goal" field.
func (m *ContractMutation) SetCombinedGoal(f float64) {
	m.combined_goal = &f
	m.addcombined_goal = nil
}

// CombinedGoal returns the value of the "combined_goal" field in the mutation.
func (m *ContractMutation) CombinedGoal() (r float64, exists bool) {
	v := m.combined_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldCombinedGoal returns the old "combined_goal" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCombinedGoal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombinedGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombinedGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombinedGoal: %w", err)
	}
	return oldValue.CombinedGoal, nil
}

// AddCombinedGoal adds f to the "combined_goal" field.
func (m *ContractMutation) AddCombinedGoal(f float64) {
	if m.addcombined_goal != nil {
		*m.addcombined_goal += f
	} else {
		m.addcombined_goal = &f
	}
}

// AddedCombinedGoal returns the value that was added to the "combined_goal" field in this mutation.
func (m *ContractMutation) AddedCombinedGoal() (r float64, exists bool) {
	v := m.addcombined_goal
	if v == nil {
		return
	}
	return *v, true
}

// ClearCombinedGoal clears the value of the "combined_goal" field.
func (m *ContractMutation) ClearCombinedGoal() {
	m.combined_goal = nil
	m.addcombined_goal = nil
	m.clearedFields[contract.FieldCombinedGoal] = struct{}{}
}

// CombinedGoalCleared returns if the "combined_goal" field was cleared in this mutation.
func (m *ContractMutation) CombinedGoalCleared() bool {
	_, ok := m.clearedFields[contract.FieldCombinedGoal]
	return ok
}

// ResetCombinedGoal resets all changes to the "combined_goal" field.
func (m *ContractMutation) ResetCombinedGoal() {
	m.combined_goal = nil
	m.addcombined_goal = nil
	delete(m.clearedFields, contract.FieldCombinedGoal)
}

// SetBidOpeningDate sets the "bid_opening_date" field.
func (m *ContractMutation) SetBidOpeningDate(t time.Time) {
	m.bid_opening_date = &t
}

// BidOpeningDate returns the value of the "bid_opening_date" field in the mutation.
func (m *ContractMutation) BidOpeningDate() (r time.Time, exists bool) {
	v := m.bid_opening_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBidOpeningDate returns the old "bid_opening_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldBidOpeningDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidOpeningDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidOpeningDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidOpeningDate: %w", err)
	}
	return oldValue.BidOpeningDate, nil
}

// ClearBidOpeningDate clears the value of the "bid_opening_date" field.
func (m *ContractMutation) ClearBidOpeningDate() {
	m.bid_opening_date = nil
	m.clearedFields[contract.FieldBidOpeningDate] = struct{}{}
}

// BidOpeningDateCleared returns if the "bid_opening_date" field was cleared in this mutation.
func (m *ContractMutation) BidOpeningDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldBidOpeningDate]
	return ok
}

// ResetBidOpeningDate resets all changes to the "bid_opening_date" field.
func (m *ContractMutation) ResetBidOpeningDate() {
	m.bid_opening_date = nil
	delete(m.clearedFields, contract.FieldBidOpeningDate)
}

// SetProposalLength sets the "proposal_length" field.
func (m *ContractMutation) SetProposalLength(f float64) {
	m.proposal_length = &f
	m.addproposal_length = nil
}

// ProposalLength returns the value of the "proposal_length" field in the mutation.
func (m *ContractMutation) ProposalLength() (r float64, exists bool) {
	v := m.proposal_length
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalLength returns the old "proposal_length" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldProposalLength(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalLength: %w", err)
	}
	return oldValue.ProposalLength, nil
}

// AddProposalLength adds f to the "proposal_length" field.
func (m *ContractMutation) AddProposalLength(f float64) {
	if m.addproposal_length != nil {
		*m.addproposal_length += f
	} else {
		m.addproposal_length = &f
	}
}

// AddedProposalLength returns the value that was added to the "proposal_length" field in this mutation.
func (m *ContractMutation) AddedProposalLength() (r float64, exists bool) {
	v := m.addproposal_length
	if v == nil {
		return
	}
	return *v, true
}

// ClearProposalLength clears the value of the "proposal_length" field.
func (m *ContractMutation) ClearProposalLength() {
	m.proposal_length = nil
	m.addproposal_length = nil
	m.clearedFields[contract.FieldProposalLength] = struct{}{}
}

// ProposalLengthCleared returns if the "proposal_length" field was cleared in this mutation.
func (m *ContractMutation) ProposalLengthCleared() bool {
	_, ok := m.clearedFields[contract.FieldProposalLength]
	return ok
}

// ResetProposalLength resets all changes to the "proposal_length" field.
func (m *ContractMutation) ResetProposalLength() {
	m.proposal_length = nil
	m.addproposal_length = nil
	delete(m.clearedFields, contract.FieldProposalLength)
}

// SetTypeOfWork sets the "type_of_work" field.
func (m *ContractMutation) SetTypeOfWork(s string) {
	m.type_of_work = &s
}

// TypeOfWork returns the value of the "type_of_work" field in the mutation.
func (m *ContractMutation) TypeOfWork() (r string, exists bool) {
	v := m.type_of_work
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfWork returns the old "type_of_work" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldTypeOfWork(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfWork is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfWork requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfWork: %w", err)
	}
	return oldValue.TypeOfWork, nil
}

// ClearTypeOfWork clears the value of the "type_of_work" field.
func (m *ContractMutation) ClearTypeOfWork() {
	m.type_of_work = nil
	m.clearedFields[contract.FieldTypeOfWork] = struct{}{}
}

// TypeOfWorkCleared returns if the "type_of_work" field was cleared in this mutation.
func (m *ContractMutation) TypeOfWorkCleared() bool {
	_, ok := m.clearedFields[contract.FieldTypeOfWork]
	return ok
}

// ResetTypeOfWork resets all changes to the "type_of_work" field.
func (m *ContractMutation) ResetTypeOfWork() {
	m.type_of_work = nil
	delete(m.clearedFields, contract.FieldTypeOfWork)
}

// SetLocation sets the "location" field.
func (m *ContractMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *ContractMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *ContractMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[contract.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *ContractMutation) LocationCleared() bool {
	_, ok := m.clearedFields[contract.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *ContractMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, contract.FieldLocation)
}

// SetEstimatedCost sets the "estimated_cost" field.
func (m *ContractMutation) SetEstimatedCost(f float64) {
	m.estimated_cost = &f
	m.addestimated_cost = nil
}

// EstimatedCost returns the value of the "estimated_cost" field in the mutation.
func (m *ContractMutation) EstimatedCost() (r float64, exists bool) {
	v := m.estimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCost returns the old "estimated_cost" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldEstimatedCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCost: %w", err)
	}
	return oldValue.EstimatedCost, nil
}

// AddEstimatedCost adds f to the "estimated_cost" field.
func (m *ContractMutation) AddEstimatedCost(f float64) {
	if m.addestimated_cost != nil {
		*m.addestimated_cost += f
	} else {
		m.addestimated_cost = &f
	}
}

// AddedEstimatedCost returns the value that was added to the "estimated_cost" field in this mutation.
func (m *ContractMutation) AddedEstimatedCost() (r float64, exists bool) {
	v := m.addestimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (m *ContractMutation) ClearEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
	m.clearedFields[contract.FieldEstimatedCost] = struct{}{}
}

// EstimatedCostCleared returns if the "estimated_cost" field was cleared in this mutation.
func (m *ContractMutation) EstimatedCostCleared() bool {
	_, ok := m.clearedFields[contract.FieldEstimatedCost]
	return ok
}

// ResetEstimatedCost resets all changes to the "estimated_cost" field.
func (m *ContractMutation) ResetEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
	delete(m.clearedFields, contract.FieldEstimatedCost)
}

// SetAwardedAmount sets the "awarded_amount" field.
func (m *ContractMutation) SetAwardedAmount(f float64) {
	m.awarded_amount = &f
	m.addawarded_amount = nil
}

// AwardedAmount returns the value of the "awarded_amount" field in the mutation.
func (m *ContractMutation) AwardedAmount() (r float64, exists bool) {
	v := m.awarded_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedAmount returns the old "awarded_amount" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldAwardedAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedAmount: %w", err)
	}
	return oldValue.AwardedAmount, nil
}

// AddAwardedAmount adds f to the "awarded_amount" field.
func (m *ContractMutation) AddAwardedAmount(f float64) {
	if m.addawarded_amount != nil {
		*m.addawarded_amount += f
	} else {
		m.addawarded_amount = &f
	}
}

// AddedAwardedAmount returns the value that was added to the "awarded_amount" field in this mutation.
func (m *ContractMutation) AddedAwardedAmount() (r float64, exists bool) {
	v := m.addawarded_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAwardedAmount clears the value of the "awarded_amount" field.
func (m *ContractMutation) ClearAwardedAmount() {
	m.awarded_amount = nil
	m.addawarded_amount = nil
	m.clearedFields[contract.FieldAwardedAmount] = struct{}{}
}

// AwardedAmountCleared returns if the "awarded_amount" field was cleared in this mutation.
func (m *ContractMutation) AwardedAmountCleared() bool {
	_, ok := m.clearedFields[contract.FieldAwardedAmount]
	return ok
}

// ResetAwardedAmount resets all changes to the "awarded_amount" field.
func (m *ContractMutation) ResetAwardedAmount() {
	m.awarded_amount = nil
	m.addawarded_amount = nil
	delete(m.clearedFields, contract.FieldAwardedAmount)
}

// SetAwardedTo sets the "awarded_to" field.
func (m *ContractMutation) SetAwardedTo(s string) {
	m.awarded_to = &s
}

// AwardedTo returns the value of the "awarded_to" field in the mutation.
func (m *ContractMutation) AwardedTo() (r string, exists bool) {
	v := m.awarded_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedTo returns the old "awarded_to" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldAwardedTo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedTo: %w", err)
	}
	return oldValue.AwardedTo, nil
}

// ClearAwardedTo clears the value of the "awarded_to" field.
func (m *ContractMutation) ClearAwardedTo() {
	m.awarded_to = nil
	m.clearedFields[contract.FieldAwardedTo] = struct{}{}
}

// AwardedToCleared returns if the "awarded_to" field was cleared in this mutation.
func (m *ContractMutation) AwardedToCleared() bool {
	_, ok := m.clearedFields[contract.FieldAwardedTo]
	return ok
}

// ResetAwardedTo resets all changes to the "awarded_to" field.
func (m *ContractMutation) ResetAwardedTo() {
	m.awarded_to = nil
	delete(m.clearedFields, contract.FieldAwardedTo)
}

// SetAwardDate sets the "award_date" field.
func (m *ContractMutation) SetAwardDate(t time.Time) {
	m.award_date = &t
}

// AwardDate returns the value of the "award_date" field in the mutation.
func (m *ContractMutation) AwardDate() (r time.Time, exists bool) {
	v := m.award_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardDate returns the old "award_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldAwardDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardDate: %w", err)
	}
	return oldValue.AwardDate, nil
}

// ClearAwardDate clears the value of the "award_date" field.
func (m *ContractMutation) ClearAwardDate() {
	m.award_date = nil
	m.clearedFields[contract.FieldAwardDate] = struct{}{}
}

// AwardDateCleared returns if the "award_date" field was cleared in this mutation.
func (m *ContractMutation) AwardDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldAwardDate]
	return ok
}

// ResetAwardDate resets all changes to the "award_date" field.
func (m *ContractMutation) ResetAwardDate() {
	m.award_date = nil
	delete(m.clearedFields, contract.FieldAwardDate)
}

// SetSourceFilePath sets the "source_file_path" field.
func (m *ContractMutation) SetSourceFilePath(s string) {
	m.source_file_path = &s
}

// SourceFilePath returns the value of the "source_file_path" field in the mutation.
func (m *ContractMutation) SourceFilePath() (r string, exists bool) {
	v := m.source_file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilePath returns the old "source_file_path" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldSourceFilePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilePath: %w", err)
	}
	return oldValue.SourceFilePath, nil
}

// ClearSourceFilePath clears the value of the "source_file_path" field.
func (m *ContractMutation) ClearSourceFilePath() {
	m.source_file_path = nil
	m.clearedFields[contract.FieldSourceFilePath] = struct{}{}
}

// SourceFilePathCleared returns if the "source_file_path" field was cleared in this mutation.
func (m *ContractMutation) SourceFilePathCleared() bool {
	_, ok := m.clearedFields[contract.FieldSourceFilePath]
	return ok
}

// ResetSourceFilePath resets all changes to the "source_file_path" field.
func (m *ContractMutation) ResetSourceFilePath() {
	m.source_file_path = nil
	delete(m.clearedFields, contract.FieldSourceFilePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBidderIDs adds the "bidders" edge to the Bidder entity by ids.
func (m *ContractMutation) AddBidderIDs(ids ...uuid.UUID) {
	if m.bidders == nil {
		m.bidders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bidders[ids[i]] = struct{}{}
	}
}

// ClearBidders clears the "bidders" edge to the Bidder entity.
func (m *ContractMutation) ClearBidders() {
	m.clearedbidders = true
}

// BiddersCleared reports if the "bidders" edge to the Bidder entity was cleared.
func (m *ContractMutation) BiddersCleared() bool {
	return m.clearedbidders
}

// RemoveBidderIDs removes the "bidders" edge to the Bidder entity by IDs.
func (m *ContractMutation) RemoveBidderIDs(ids ...uuid.UUID) {
	if m.removedbidders == nil {
		m.removedbidders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bidders, ids[i])
		m.removedbidders[ids[i]] = struct{}{}
	}
}

// RemovedBidders returns the removed IDs of the "bidders" edge to the Bidder entity.
func (m *ContractMutation) RemovedBiddersIDs() (ids []uuid.UUID) {
	for id := range m.removedbidders {
		ids = append(ids, id)
	}
	return
}

// BiddersIDs returns the "bidders" edge IDs in the mutation.
func (m *ContractMutation) BiddersIDs() (ids []uuid.UUID) {
	for id := range m.bidders {
		ids = append(ids, id)
	}
	return
}

// ResetBidders resets all changes to the "bidders" edge.
func (m *ContractMutation) ResetBidders() {
	m.bidders = nil
	m.clearedbidders = false
	m.removedbidders = nil
}

// AddBidItemIDs adds the "bid_items" edge to the BidItem entity by ids.
func (m *ContractMutation) AddBidItemIDs(ids ...uuid.UUID) {
	if m.bid_items == nil {
		m.bid_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bid_items[ids[i]] = struct{}{}
	}
}

// ClearBidItems clears the "bid_items" edge to the BidItem entity.
func (m *ContractMutation) ClearBidItems() {
	m.clearedbid_items = true
}

// BidItemsCleared reports if the "bid_items" edge to the BidItem entity was cleared.
func (m *ContractMutation) BidItemsCleared() bool {
	return m.clearedbid_items
}

// RemoveBidItemIDs removes the "bid_items" edge to the BidItem entity by IDs.
func (m *ContractMutation) RemoveBidItemIDs(ids ...uuid.UUID) {
	if m.removedbid_items == nil {
		m.removedbid_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bid_items, ids[i])
		m.removedbid_items[ids[i]] = struct{}{}
	}
}

// RemovedBidItems returns the removed IDs of the "bid_items" edge to the BidItem entity.
func (m *ContractMutation) RemovedBidItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedbid_items {
		ids = append(ids, id)
	}
	return
}

// BidItemsIDs returns the "bid_items" edge IDs in the mutation.
func (m *ContractMutation) BidItemsIDs() (ids []uuid.UUID) {
	for id := range m.bid_items {
		ids = append(ids, id)
	}
	return
}

// ResetBidItems resets all changes to the "bid_items" edge.
func (m *ContractMutation) ResetBidItems() {
	m.bid_items = nil
	m.clearedbid_items = false
	m.removedbid_items = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.contract_number != nil {
		fields = append(fields, contract.FieldContractNumber)
	}
	if m.wbs_element != nil {
		fields = append(fields, contract.FieldWbsElement)
	}
	if m.counties != nil {
		fields = append(fields, contract.FieldCounties)
	}
	if m.description != nil {
		fields = append(fields, contract.FieldDescription)
	}
	if m.date_available != nil {
		fields = append(fields, contract.FieldDateAvailable)
	}
	if m.completion_date != nil {
		fields = append(fields, contract.FieldCompletionDate)
	}
	if m.mbe_goal != nil {
		fields = append(fields, contract.FieldMbeGoal)
	}
	if m.wbe_goal != nil {
		fields = append(fields, contract.FieldWbeGoal)
	}
	if m.combined_goal != nil {
		fields = append(fields, contract.FieldCombinedGoal)
	}
	if m.bid_opening_date != nil {
		fields = append(fields, contract.FieldBidOpeningDate)
	}
	if m.proposal_length != nil {
		fields = append(fields, contract.FieldProposalLength)
	}
	if m.type_of_work != nil {
		fields = append(fields, contract.FieldTypeOfWork)
	}
	if m.location != nil {
		fields = append(fields, contract.FieldLocation)
	}
	if m.estimated_cost != nil {
		fields = append(fields, contract.FieldEstimatedCost)
	}
	if m.awarded_amount != nil {
		fields = append(fields, contract.FieldAwardedAmount)
	}
	if m.awarded_to != nil {
		fields = append(fields, contract.FieldAwardedTo)
	}
	if m.award_date != nil {
		fields = append(fields, contract.FieldAwardDate)
	}
	if m.source_file_path != nil {
		fields = append(fields, contract.FieldSourceFilePath)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contract.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldContractNumber:
		return m.ContractNumber()
	case contract.FieldWbsElement:
		return m.WbsElement()
	case contract.FieldCounties:
		return m.Counties()
	case contract.FieldDescription:
		return m.Description()
	case contract.FieldDateAvailable:
		return m.DateAvailable()
	case contract.FieldCompletionDate:
		return m.CompletionDate()
	case contract.FieldMbeGoal:
		return m.MbeGoal()
	case contract.FieldWbeGoal:
		return m.WbeGoal()
	case contract.FieldCombinedGoal:
		return m.CombinedGoal()
	case contract.FieldBidOpeningDate:
		return m.BidOpeningDate()
	case contract.FieldProposalLength:
		return m.ProposalLength()
	case contract.FieldTypeOfWork:
		return m.TypeOfWork()
	case contract.FieldLocation:
		return m.Location()
	case contract.FieldEstimatedCost:
		return m.EstimatedCost()
	case contract.FieldAwardedAmount:
		return m.AwardedAmount()
	case contract.FieldAwardedTo:
		return m.AwardedTo()
	case contract.FieldAwardDate:
		return m.AwardDate()
	case contract.FieldSourceFilePath:
		return m.SourceFilePath()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	case contract.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldContractNumber:
		return m.OldContractNumber(ctx)
	case contract.FieldWbsElement:
		return m.OldWbsElement(ctx)
	case contract.FieldCounties:
		return m.OldCounties(ctx)
	case contract.FieldDescription:
		return m.OldDescription(ctx)
	case contract.FieldDateAvailable:
		return m.OldDateAvailable(ctx)
	case contract.FieldCompletionDate:
		return m.OldCompletionDate(ctx)
	case contract.FieldMbeGoal:
		return m.OldMbeGoal(ctx)
	case contract.FieldWbeGoal:
		return m.OldWbeGoal(ctx)
	case contract.FieldCombinedGoal:
		return m.OldCombinedGoal(ctx)
	case contract.FieldBidOpeningDate:
		return m.OldBidOpeningDate(ctx)
	case contract.FieldProposalLength:
		return m.OldProposalLength(ctx)
	case contract.FieldTypeOfWork:
		return m.OldTypeOfWork(ctx)
	case contract.FieldLocation:
		return m.OldLocation(ctx)
	case contract.FieldEstimatedCost:
		return m.OldEstimatedCost(ctx)
	case contract.FieldAwardedAmount:
		return m.OldAwardedAmount(ctx)
	case contract.FieldAwardedTo:
		return m.OldAwardedTo(ctx)
	case contract.FieldAwardDate:
		return m.OldAwardDate(ctx)
	case contract.FieldSourceFilePath:
		return m.OldSourceFilePath(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contract.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldContractNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractNumber(v)
		return nil
	case contract.FieldWbsElement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWbsElement(v)
		return nil
	case contract.FieldCounties:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounties(v)
		return nil
	case contract.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case contract.FieldDateAvailable:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateAvailable(v)
		return nil
	case contract.FieldCompletionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionDate(v)
		return nil
	case contract.FieldMbeGoal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMbeGoal(v)
		return nil
	case contract.FieldWbeGoal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWbeGoal(v)
		return nil
	case contract.FieldCombinedGoal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombinedGoal(v)
		return nil
	case contract.FieldBidOpeningDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidOpeningDate(v)
		return nil
	case contract.FieldProposalLength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalLength(v)
		return nil
	case contract.FieldTypeOfWork:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfWork(v)
		return nil
	case contract.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case contract.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCost(v)
		return nil
	case contract.FieldAwardedAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedAmount(v)
		return nil
	case contract.FieldAwardedTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedTo(v)
		return nil
	case contract.FieldAwardDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardDate(v)
		return nil
	case contract.FieldSourceFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilePath(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contract.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	var fields []string
	if m.addmbe_goal != nil {
		fields = append(fields, contract.FieldMbeGoal)
	}
	if m.addwbe_goal != nil {
		fields = append(fields, contract.FieldWbeGoal)
	}
	if m.addcombined_goal != nil {
		fields = append(fields, contract.FieldCombinedGoal)
	}
	if m.addproposal_length != nil {
		fields = append(fields, contract.FieldProposalLength)
	}
	if m.addestimated_cost != nil {
		fields = append(fields, contract.FieldEstimatedCost)
	}
	if m.addawarded_amount != nil {
		fields = append(fields, contract.FieldAwardedAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldMbeGoal:
		return m.AddedMbeGoal()
	case contract.FieldWbeGoal:
		return m.AddedWbeGoal()
	case contract.FieldCombinedGoal:
		return m.AddedCombinedGoal()
	case contract.FieldProposalLength:
		return m.AddedProposalLength()
	case contract.FieldEstimatedCost:
		return m.AddedEstimatedCost()
	case contract.FieldAwardedAmount:
		return m.AddedAwardedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contract.FieldMbeGoal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMbeGoal(v)
		return nil
	case contract.FieldWbeGoal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWbeGoal(v)
		return nil
	case contract.FieldCombinedGoal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCombinedGoal(v)
		return nil
	case contract.FieldProposalLength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProposalLength(v)
		return nil
	case contract.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCost(v)
		return nil
	case contract.FieldAwardedAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAwardedAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldWbsElement) {
		fields = append(fields, contract.FieldWbsElement)
	}
	if m.FieldCleared(contract.FieldCounties) {
		fields = append(fields, contract.FieldCounties)
	}
	if m.FieldCleared(contract.FieldDescription) {
		fields = append(fields, contract.FieldDescription)
	}
	if m.FieldCleared(contract.FieldDateAvailable) {
		fields = append(fields, contract.FieldDateAvailable)
	}
	if m.FieldCleared(contract.FieldCompletionDate) {
		fields = append(fields, contract.FieldCompletionDate)
	}
	if m.FieldCleared(contract.FieldMbeGoal) {
		fields = append(fields, contract.FieldMbeGoal)
	}
	if m.FieldCleared(contract.FieldWbeGoal) {
		fields = append(fields, contract.FieldWbeGoal)
	}
	if m.FieldCleared(contract.FieldCombinedGoal) {
		fields = append(fields, contract.FieldCombinedGoal)
	}
	if m.FieldCleared(contract.FieldBidOpeningDate) {
		fields = append(fields, contract.FieldBidOpeningDate)
	}
	if m.FieldCleared(contract.FieldProposalLength) {
		fields = append(fields, contract.FieldProposalLength)
	}
	if m.FieldCleared(contract.FieldTypeOfWork) {
		fields = append(fields, contract.FieldTypeOfWork)
	}
	if m.FieldCleared(contract.FieldLocation) {
		fields = append(fields, contract.FieldLocation)
	}
	if m.FieldCleared(contract.FieldEstimatedCost) {
		fields = append(fields, contract.FieldEstimatedCost)
	}
	if m.FieldCleared(contract.FieldAwardedAmount) {
		fields = append(fields, contract.FieldAwardedAmount)
	}
	if m.FieldCleared(contract.FieldAwardedTo) {
		fields = append(fields, contract.FieldAwardedTo)
	}
	if m.FieldCleared(contract.FieldAwardDate) {
		fields = append(fields, contract.FieldAwardDate)
	}
	if m.FieldCleared(contract.FieldSourceFilePath) {
		fields = append(fields, contract.FieldSourceFilePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldWbsElement:
		m.ClearWbsElement()
		return nil
	case contract.FieldCounties:
		m.ClearCounties()
		return nil
	case contract.FieldDescription:
		m.ClearDescription()
		return nil
	case contract.FieldDateAvailable:
		m.ClearDateAvailable()
		return nil
	case contract.FieldCompletionDate:
		m.ClearCompletionDate()
		return nil
	case contract.FieldMbeGoal:
		m.ClearMbeGoal()
		return nil
	case contract.FieldWbeGoal:
		m.ClearWbeGoal()
		return nil
	case contract.FieldCombinedGoal:
		m.ClearCombinedGoal()
		return nil
	case contract.FieldBidOpeningDate:
		m.ClearBidOpeningDate()
		return nil
	case contract.FieldProposalLength:
		m.ClearProposalLength()
		return nil
	case contract.FieldTypeOfWork:
		m.ClearTypeOfWork()
		return nil
	case contract.FieldLocation:
		m.ClearLocation()
		return nil
	case contract.FieldEstimatedCost:
		m.ClearEstimatedCost()
		return nil
	case contract.FieldAwardedAmount:
		m.ClearAwardedAmount()
		return nil
	case contract.FieldAwardedTo:
		m.ClearAwardedTo()
		return nil
	case contract.FieldAwardDate:
		m.ClearAwardDate()
		return nil
	case contract.FieldSourceFilePath:
		m.ClearSourceFilePath()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldContractNumber:
		m.ResetContractNumber()
		return nil
	case contract.FieldWbsElement:
		m.ResetWbsElement()
		return nil
	case contract.FieldCounties:
		m.ResetCounties()
		return nil
	case contract.FieldDescription:
		m.ResetDescription()
		return nil
	case contract.FieldDateAvailable:
		m.ResetDateAvailable()
		return nil
	case contract.FieldCompletionDate:
		m.ResetCompletionDate()
		return nil
	case contract.FieldMbeGoal:
		m.ResetMbeGoal()
		return nil
	case contract.FieldWbeGoal:
		m.ResetWbeGoal()
		return nil
	case contract.FieldCombinedGoal:
		m.ResetCombinedGoal()
		return nil
	case contract.FieldBidOpeningDate:
		m.ResetBidOpeningDate()
		return nil
	case contract.FieldProposalLength:
		m.ResetProposalLength()
		return nil
	case contract.FieldTypeOfWork:
		m.ResetTypeOfWork()
		return nil
	case contract.FieldLocation:
		m.ResetLocation()
		return nil
	case contract.FieldEstimatedCost:
		m.ResetEstimatedCost()
		return nil
	case contract.FieldAwardedAmount:
		m.ResetAwardedAmount()
		return nil
	case contract.FieldAwardedTo:
		m.ResetAwardedTo()
		return nil
	case contract.FieldAwardDate:
		m.ResetAwardDate()
		return nil
	case contract.FieldSourceFilePath:
		m.ResetSourceFilePath()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contract.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.bidders != nil {
		edges = append(edges, contract.EdgeBidders)
	}
	if m.bid_items != nil {
		edges = append(edges, contract.EdgeBidItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeBidders:
		ids := make([]ent.Value, 0, len(m.bidders))
		for id := range m.bidders {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeBidItems:
		ids := make([]ent.Value, 0, len(m.bid_items))
		for id := range m.bid_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbidders != nil {
		edges = append(edges, contract.EdgeBidders)
	}
	if m.removedbid_items != nil {
		edges = append(edges, contract.EdgeBidItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeBidders:
		ids := make([]ent.Value, 0, len(m.removedbidders))
		for id := range m.removedbidders {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeBidItems:
		ids := make([]ent.Value, 0, len(m.removedbid_items))
		for id := range m.removedbid_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbidders {
		edges = append(edges, contract.EdgeBidders)
	}
	if m.clearedbid_items {
		edges = append(edges, contract.EdgeBidItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeBidders:
		return m.clearedbidders
	case contract.EdgeBidItems:
		return m.clearedbid_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeBidders:
		m.ResetBidders()
		return nil
	case contract.EdgeBidItems:
		m.ResetBidItems()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// ExtractionLogMutation represents an operation that mutates the ExtractionLog nodes in the graph.
type ExtractionLogMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	file_path               *string
	document_type           *string
	extraction_method       *string
	status                  *string
	error_message           *string
	confidence_score        *float32
	addconfidence_score     *float32
	processing_seconds      *float64
	addprocessing_seconds   *float64
	records_extracted       *int
	addrecords_extracted    *int
	validation_failed       *[]string
	appendvalidation_failed []string
	file_hash               *string
	file_size_bytes         *int64
	addfile_size_bytes      *int64
	file_mod_time           *time.Time
	run_id                  *uuid.UUID
	extraction_time         *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ExtractionLog, error)
	predicates              []predicate.ExtractionLog
}

var _ ent.Mutation = (*ExtractionLogMutation)(nil)

// extractionlogOption allows management of the mutation configuration using functional options.
type extractionlogOption func(*ExtractionLogMutation)

// newExtractionLogMutation creates new mutation for the ExtractionLog entity.
func newExtractionLogMutation(c config, op Op, opts ...extractionlogOption) *ExtractionLogMutation {
	m := &ExtractionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionLogID sets the ID field of the mutation.
func withExtractionLogID(id uuid.UUID) extractionlogOption {
	return func(m *ExtractionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionLog
		)
		m.oldValue = func(ctx context.Context) (*ExtractionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionLog sets the old ExtractionLog of the mutation.
func withExtractionLog(node *ExtractionLog) extractionlogOption {
	return func(m *ExtractionLogMutation) {
		m.oldValue = func(context.Context) (*ExtractionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionLog entities.
func (m *ExtractionLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilePath sets the "file_path" field.
func (m *ExtractionLogMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ExtractionLogMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ExtractionLogMutation) ResetFilePath() {
	m.file_path = nil
}

// SetDocumentType sets the "document_type" field.
func (m *ExtractionLogMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *ExtractionLogMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *ExtractionLogMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *ExtractionLogMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *ExtractionLogMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldExtractionMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (m *ExtractionLogMutation) ClearExtractionMethod() {
	m.extraction_method = nil
	m.clearedFields[extractionlog.FieldExtractionMethod] = struct{}{}
}

// ExtractionMethodCleared returns if the "extraction_method" field was cleared in this mutation.
func (m *ExtractionLogMutation) ExtractionMethodCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldExtractionMethod]
	return ok
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *ExtractionLogMutation) ResetExtractionMethod() {
	m.extraction_method = nil
	delete(m.clearedFields, extractionlog.FieldExtractionMethod)
}

// SetStatus sets the "status" field.
func (m *ExtractionLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionLogMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionlog.FieldErrorMessage)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ExtractionLogMutation) SetConfidenceScore(f float32) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ExtractionLogMutation) ConfidenceScore() (r float32, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldConfidenceScore(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ExtractionLogMutation) AddConfidenceScore(f float32) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ExtractionLogMutation) AddedConfidenceScore() (r float32, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *ExtractionLogMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[extractionlog.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *ExtractionLogMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ExtractionLogMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, extractionlog.FieldConfidenceScore)
}

// SetProcessingSeconds sets the "processing_seconds" field.
func (m *ExtractionLogMutation) SetProcessingSeconds(f float64) {
	m.processing_seconds = &f
	m.addprocessing_seconds = nil
}

// ProcessingSeconds returns the value of the "processing_seconds" field in the mutation.
func (m *ExtractionLogMutation) ProcessingSeconds() (r float64, exists bool) {
	v := m.processing_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingSeconds returns the old "processing_seconds" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldProcessingSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingSeconds: %w", err)
	}
	return oldValue.ProcessingSeconds, nil
}

// AddProcessingSeconds adds f to the "processing_seconds" field.
func (m *ExtractionLogMutation) AddProcessingSeconds(f float64) {
	if m.addprocessing_seconds != nil {
		*m.addprocessing_seconds += f
	} else {
		m.addprocessing_seconds = &f
	}
}

// AddedProcessingSeconds returns the value that was added to the "processing_seconds" field in this mutation.
func (m *ExtractionLogMutation) AddedProcessingSeconds() (r float64, exists bool) {
	v := m.addprocessing_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingSeconds clears the value of the "processing_seconds" field.
func (m *ExtractionLogMutation) ClearProcessingSeconds() {
	m.processing_seconds = nil
	m.addprocessing_seconds = nil
	m.clearedFields[extractionlog.FieldProcessingSeconds] = struct{}{}
}

// ProcessingSecondsCleared returns if the "processing_seconds" field was cleared in this mutation.
func (m *ExtractionLogMutation) ProcessingSecondsCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldProcessingSeconds]
	return ok
}

// ResetProcessingSeconds resets all changes to the "processing_seconds" field.
func (m *ExtractionLogMutation) ResetProcessingSeconds() {
	m.processing_seconds = nil
	m.addprocessing_seconds = nil
	delete(m.clearedFields, extractionlog.FieldProcessingSeconds)
}

// SetRecordsExtracted sets the "records_extracted" field.
func (m *ExtractionLogMutation) SetRecordsExtracted(i int) {
	m.records_extracted = &i
	m.addrecords_extracted = nil
}

// RecordsExtracted returns the value of the "records_extracted" field in the mutation.
func (m *ExtractionLogMutation) RecordsExtracted() (r int, exists bool) {
	v := m.records_extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordsExtracted returns the old "records_extracted" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldRecordsExtracted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordsExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordsExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordsExtracted: %w", err)
	}
	return oldValue.RecordsExtracted, nil
}

// AddRecordsExtracted adds i to the "records_extracted" field.
func (m *ExtractionLogMutation) AddRecordsExtracted(i int) {
	if m.addrecords_extracted != nil {
		*m.addrecords_extracted += i
	} else {
		m.addrecords_extracted = &i
	}
}

// AddedRecordsExtracted returns the value that was added to the "records_extracted" field in this mutation.
func (m *ExtractionLogMutation) AddedRecordsExtracted() (r int, exists bool) {
	v := m.addrecords_extracted
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordsExtracted resets all changes to the "records_extracted" field.
func (m *ExtractionLogMutation) ResetRecordsExtracted() {
	m.records_extracted = nil
	m.addrecords_extracted = nil
}

// SetValidationFailed sets the "validation_failed" field.
func (m *ExtractionLogMutation) SetValidationFailed(s []string) {
	m.validation_failed = &s
	m.appendvalidation_failed = nil
}

// ValidationFailed returns the value of the "validation_failed" field in the mutation.
func (m *ExtractionLogMutation) ValidationFailed() (r []string, exists bool) {
	v := m.validation_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationFailed returns the old "validation_failed" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldValidationFailed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationFailed: %w", err)
	}
	return oldValue.ValidationFailed, nil
}

// AppendValidationFailed adds s to the "validation_failed" field.
func (m *ExtractionLogMutation) AppendValidationFailed(s []string) {
	m.appendvalidation_failed = append(m.appendvalidation_failed, s...)
}

// AppendedValidationFailed returns the list of values that were appended to the "validation_failed" field in this mutation.
func (m *ExtractionLogMutation) AppendedValidationFailed() ([]string, bool) {
	if len(m.appendvalidation_failed) == 0 {
		return nil, false
	}
	return m.appendvalidation_failed, true
}

// ClearValidationFailed clears the value of the "validation_failed" field.
func (m *ExtractionLogMutation) ClearValidationFailed() {
	m.validation_failed = nil
	m.appendvalidation_failed = nil
	m.clearedFields[extractionlog.FieldValidationFailed] = struct{}{}
}

// ValidationFailedCleared returns if the "validation_failed" field was cleared in this mutation.
func (m *ExtractionLogMutation) ValidationFailedCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldValidationFailed]
	return ok
}

// ResetValidationFailed resets all changes to the "validation_failed" field.
func (m *ExtractionLogMutation) ResetValidationFailed() {
	m.validation_failed = nil
	m.appendvalidation_failed = nil
	delete(m.clearedFields, extractionlog.FieldValidationFailed)
}

// SetFileHash sets the "file_hash" field.
func (m *ExtractionLogMutation) SetFileHash(s string) {
	m.file_hash = &s
}

// FileHash returns the value of the "file_hash" field in the mutation.
func (m *ExtractionLogMutation) FileHash() (r string, exists bool) {
	v := m.file_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHash returns the old "file_hash" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldFileHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHash: %w", err)
	}
	return oldValue.FileHash, nil
}

// ClearFileHash clears the value of the "file_hash" field.
func (m *ExtractionLogMutation) ClearFileHash() {
	m.file_hash = nil
	m.clearedFields[extractionlog.FieldFileHash] = struct{}{}
}

// FileHashCleared returns if the "file_hash" field was cleared in this mutation.
func (m *ExtractionLogMutation) FileHashCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldFileHash]
	return ok
}

// ResetFileHash resets all changes to the "file_hash" field.
func (m *ExtractionLogMutation) ResetFileHash() {
	m.file_hash = nil
	delete(m.clearedFields, extractionlog.FieldFileHash)
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *ExtractionLogMutation) SetFileSizeBytes(i int64) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *ExtractionLogMutation) FileSizeBytes() (r int64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldFileSizeBytes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *ExtractionLogMutation) AddFileSizeBytes(i int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *ExtractionLogMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (m *ExtractionLogMutation) ClearFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	m.clearedFields[extractionlog.FieldFileSizeBytes] = struct{}{}
}

// FileSizeBytesCleared returns if the "file_size_bytes" field was cleared in this mutation.
func (m *ExtractionLogMutation) FileSizeBytesCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldFileSizeBytes]
	return ok
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *ExtractionLogMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	delete(m.clearedFields, extractionlog.FieldFileSizeBytes)
}

// SetFileModTime sets the "file_mod_time" field.
func (m *ExtractionLogMutation) SetFileModTime(t time.Time) {
	m.file_mod_time = &t
}

// FileModTime returns the value of the "file_mod_time" field in the mutation.
func (m *ExtractionLogMutation) FileModTime() (r time.Time, exists bool) {
	v := m.file_mod_time
	if v == nil {
		return
	}
	return *v, true
}

// OldFileModTime returns the old "file_mod_time" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldFileModTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileModTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileModTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileModTime: %w", err)
	}
	return oldValue.FileModTime, nil
}

// ClearFileModTime clears the value of the "file_mod_time" field.
func (m *ExtractionLogMutation) ClearFileModTime() {
	m.file_mod_time = nil
	m.clearedFields[extractionlog.FieldFileModTime] = struct{}{}
}

// FileModTimeCleared returns if the "file_mod_time" field was cleared in this mutation.
func (m *ExtractionLogMutation) FileModTimeCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldFileModTime]
	return ok
}

// ResetFileModTime resets all changes to the "file_mod_time" field.
func (m *ExtractionLogMutation) ResetFileModTime() {
	m.file_mod_time = nil
	delete(m.clearedFields, extractionlog.FieldFileModTime)
}

// SetRunID sets the "run_id" field.
func (m *ExtractionLogMutation) SetRunID(u uuid.UUID) {
	m.run_id = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ExtractionLogMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ExtractionLogMutation) ResetRunID() {
	m.run_id = nil
}

// SetExtractionTime sets the "extraction_time" field.
func (m *ExtractionLogMutation) SetExtractionTime(t time.Time) {
	m.extraction_time = &t
}

// ExtractionTime returns the value of the "extraction_time" field in the mutation.
func (m *ExtractionLogMutation) ExtractionTime() (r time.Time, exists bool) {
	v := m.extraction_time
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionTime returns the old "extraction_time" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldExtractionTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionTime: %w", err)
	}
	return oldValue.ExtractionTime, nil
}

// ResetExtractionTime resets all changes to the "extraction_time" field.
func (m *ExtractionLogMutation) ResetExtractionTime() {
	m.extraction_time = nil
}

// Where appends a list predicates to the ExtractionLogMutation builder.
func (m *ExtractionLogMutation) Where(ps ...predicate.ExtractionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionLog).
func (m *ExtractionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionLogMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.file_path != nil {
		fields = append(fields, extractionlog.FieldFilePath)
	}
	if m.document_type != nil {
		fields = append(fields, extractionlog.FieldDocumentType)
	}
	if m.extraction_method != nil {
		fields = append(fields, extractionlog.FieldExtractionMethod)
	}
	if m.status != nil {
		fields = append(fields, extractionlog.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractionlog.FieldErrorMessage)
	}
	if m.confidence_score != nil {
		fields = append(fields, extractionlog.FieldConfidenceScore)
	}
	if m.processing_seconds != nil {
		fields = append(fields, extractionlog.FieldProcessingSeconds)
	}
	if m.records_extracted != nil {
		fields = append(fields, extractionlog.FieldRecordsExtracted)
	}
	if m.validation_failed != nil {
		fields = append(fields, extractionlog.FieldValidationFailed)
	}
	if m.file_hash != nil {
		fields = append(fields, extractionlog.FieldFileHash)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, extractionlog.FieldFileSizeBytes)
	}
	if m.file_mod_time != nil {
		fields = append(fields, extractionlog.FieldFileModTime)
	}
	if m.run_id != nil {
		fields = append(fields, extractionlog.FieldRunID)
	}
	if m.extraction_time != nil {
		fields = append(fields, extractionlog.FieldExtractionTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionlog.FieldFilePath:
		return m.FilePath()
	case extractionlog.FieldDocumentType:
		return m.DocumentType()
	case extractionlog.FieldExtractionMethod:
		return m.ExtractionMethod()
	case extractionlog.FieldStatus:
		return m.Status()
	case extractionlog.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionlog.FieldConfidenceScore:
		return m.ConfidenceScore()
	case extractionlog.FieldProcessingSeconds:
		return m.ProcessingSeconds()
	case extractionlog.FieldRecordsExtracted:
		return m.RecordsExtracted()
	case extractionlog.FieldValidationFailed:
		return m.ValidationFailed()
	case extractionlog.FieldFileHash:
		return m.FileHash()
	case extractionlog.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case extractionlog.FieldFileModTime:
		return m.FileModTime()
	case extractionlog.FieldRunID:
		return m.RunID()
	case extractionlog.FieldExtractionTime:
		return m.ExtractionTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionlog.FieldFilePath:
		return m.OldFilePath(ctx)
	case extractionlog.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case extractionlog.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case extractionlog.FieldStatus:
		return m.OldStatus(ctx)
	case extractionlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionlog.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case extractionlog.FieldProcessingSeconds:
		return m.OldProcessingSeconds(ctx)
	case extractionlog.FieldRecordsExtracted:
		return m.OldRecordsExtracted(ctx)
	case extractionlog.FieldValidationFailed:
		return m.OldValidationFailed(ctx)
	case extractionlog.FieldFileHash:
		return m.OldFileHash(ctx)
	case extractionlog.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case extractionlog.FieldFileModTime:
		return m.OldFileModTime(ctx)
	case extractionlog.FieldRunID:
		return m.OldRunID(ctx)
	case extractionlog.FieldExtractionTime:
		return m.OldExtractionTime(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionlog.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case extractionlog.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case extractionlog.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case extractionlog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionlog.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case extractionlog.FieldProcessingSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingSeconds(v)
		return nil
	case extractionlog.FieldRecordsExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordsExtracted(v)
		return nil
	case extractionlog.FieldValidationFailed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationFailed(v)
		return nil
	case extractionlog.FieldFileHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHash(v)
		return nil
	case extractionlog.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case extractionlog.FieldFileModTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileModTime(v)
		return nil
	case extractionlog.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case extractionlog.FieldExtractionTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionTime(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionLogMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, extractionlog.FieldConfidenceScore)
	}
	if m.addprocessing_seconds != nil {
		fields = append(fields, extractionlog.FieldProcessingSeconds)
	}
	if m.addrecords_extracted != nil {
		fields = append(fields, extractionlog.FieldRecordsExtracted)
	}
	if m.addfile_size_bytes != nil {
		fields = append(fields, extractionlog.FieldFileSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionlog.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case extractionlog.FieldProcessingSeconds:
		return m.AddedProcessingSeconds()
	case extractionlog.FieldRecordsExtracted:
		return m.AddedRecordsExtracted()
	case extractionlog.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionlog.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case extractionlog.FieldProcessingSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingSeconds(v)
		return nil
	case extractionlog.FieldRecordsExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordsExtracted(v)
		return nil
	case extractionlog.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionlog.FieldExtractionMethod) {
		fields = append(fields, extractionlog.FieldExtractionMethod)
	}
	if m.FieldCleared(extractionlog.FieldErrorMessage) {
		fields = append(fields, extractionlog.FieldErrorMessage)
	}
	if m.FieldCleared(extractionlog.FieldConfidenceScore) {
		fields = append(fields, extractionlog.FieldConfidenceScore)
	}
	if m.FieldCleared(extractionlog.FieldProcessingSeconds) {
		fields = append(fields, extractionlog.FieldProcessingSeconds)
	}
	if m.FieldCleared(extractionlog.FieldValidationFailed) {
		fields = append(fields, extractionlog.FieldValidationFailed)
	}
	if m.FieldCleared(extractionlog.FieldFileHash) {
		fields = append(fields, extractionlog.FieldFileHash)
	}
	if m.FieldCleared(extractionlog.FieldFileSizeBytes) {
		fields = append(fields, extractionlog.FieldFileSizeBytes)
	}
	if m.FieldCleared(extractionlog.FieldFileModTime) {
		fields = append(fields, extractionlog.FieldFileModTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionLogMutation) ClearField(name string) error {
	switch name {
	case extractionlog.FieldExtractionMethod:
		m.ClearExtractionMethod()
		return nil
	case extractionlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionlog.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	case extractionlog.FieldProcessingSeconds:
		m.ClearProcessingSeconds()
		return nil
	case extractionlog.FieldValidationFailed:
		m.ClearValidationFailed()
		return nil
	case extractionlog.FieldFileHash:
		m.ClearFileHash()
		return nil
	case extractionlog.FieldFileSizeBytes:
		m.ClearFileSizeBytes()
		return nil
	case extractionlog.FieldFileModTime:
		m.ClearFileModTime()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionLogMutation) ResetField(name string) error {
	switch name {
	case extractionlog.FieldFilePath:
		m.ResetFilePath()
		return nil
	case extractionlog.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case extractionlog.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case extractionlog.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionlog.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case extractionlog.FieldProcessingSeconds:
		m.ResetProcessingSeconds()
		return nil
	case extractionlog.FieldRecordsExtracted:
		m.ResetRecordsExtracted()
		return nil
	case extractionlog.FieldValidationFailed:
		m.ResetValidationFailed()
		return nil
	case extractionlog.FieldFileHash:
		m.ResetFileHash()
		return nil
	case extractionlog.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case extractionlog.FieldFileModTime:
		m.ResetFileModTime()
		return nil
	case extractionlog.FieldRunID:
		m.ResetRunID()
		return nil
	case extractionlog.FieldExtractionTime:
		m.ResetExtractionTime()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractionLog edge %s", name)
}
