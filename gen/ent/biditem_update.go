// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/biditem"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

// BidItemUpdate is the builder for updating BidItem entities.
type BidItemUpdate struct {
	config
	hooks    []Hook
	mutation *BidItemMutation
}

// Where appends a list predicates to the BidItemUpdate builder.
func (_u *BidItemUpdate) Where(ps ...predicate.BidItem) *BidItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *BidItemUpdate) SetContractID(v uuid.UUID) *BidItemUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableContractID(v *uuid.UUID) *BidItemUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetItemNumber sets the "item_number" field.
func (_u *BidItemUpdate) SetItemNumber(v string) *BidItemUpdate {
	_u.mutation.SetItemNumber(v)
	return _u
}

// SetNillableItemNumber sets the "item_number" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableItemNumber(v *string) *BidItemUpdate {
	if v != nil {
		_u.SetItemNumber(*v)
	}
	return _u
}

// ClearItemNumber clears the value of the "item_number" field.
func (_u *BidItemUpdate) ClearItemNumber() *BidItemUpdate {
	_u.mutation.ClearItemNumber()
	return _u
}

// SetItemCode sets the "item_code" field.
func (_u *BidItemUpdate) SetItemCode(v string) *BidItemUpdate {
	_u.mutation.SetItemCode(v)
	return _u
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableItemCode(v *string) *BidItemUpdate {
	if v != nil {
		_u.SetItemCode(*v)
	}
	return _u
}

// ClearItemCode clears the value of the "item_code" field.
func (_u *BidItemUpdate) ClearItemCode() *BidItemUpdate {
	_u.mutation.ClearItemCode()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BidItemUpdate) SetDescription(v string) *BidItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableDescription(v *string) *BidItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BidItemUpdate) ClearDescription() *BidItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *BidItemUpdate) SetQuantity(v float64) *BidItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableQuantity(v *float64) *BidItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *BidItemUpdate) AddQuantity(v float64) *BidItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *BidItemUpdate) ClearQuantity() *BidItemUpdate {
	_u.mutation.ClearQuantity()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *BidItemUpdate) SetUnit(v string) *BidItemUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableUnit(v *string) *BidItemUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *BidItemUpdate) ClearUnit() *BidItemUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *BidItemUpdate) SetUnitPrice(v float64) *BidItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableUnitPrice(v *float64) *BidItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *BidItemUpdate) AddUnitPrice(v float64) *BidItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *BidItemUpdate) ClearUnitPrice() *BidItemUpdate {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *BidItemUpdate) SetTotalPrice(v float64) *BidItemUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableTotalPrice(v *float64) *BidItemUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *BidItemUpdate) AddTotalPrice(v float64) *BidItemUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// ClearTotalPrice clears the value of the "total_price" field.
func (_u *BidItemUpdate) ClearTotalPrice() *BidItemUpdate {
	_u.mutation.ClearTotalPrice()
	return _u
}

// SetBidderName sets the "bidder_name" field.
func (_u *BidItemUpdate) SetBidderName(v string) *BidItemUpdate {
	_u.mutation.SetBidderName(v)
	return _u
}

// SetNillableBidderName sets the "bidder_name" field if the given value is not nil.
func (_u *BidItemUpdate) SetNillableBidderName(v *string) *BidItemUpdate {
	if v != nil {
		_u.SetBidderName(*v)
	}
	return _u
}

// ClearBidderName clears the value of the "bidder_name" field.
func (_u *BidItemUpdate) ClearBidderName() *BidItemUpdate {
	_u.mutation.ClearBidderName()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *BidItemUpdate) SetContract(v *Contract) *BidItemUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the BidItemMutation object of the builder.
func (_u *BidItemUpdate) Mutation() *BidItemMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *BidItemUpdate) ClearContract() *BidItemUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BidItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BidItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BidItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BidItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BidItemUpdate) check() error {
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BidItem.contract"`)
	}
	return nil
}

func (_u *BidItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biditem.Table, biditem.Columns, sqlgraph.NewFieldSpec(biditem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemNumber(); ok {
		_spec.SetField(biditem.FieldItemNumber, field.TypeString, value)
	}
	if _u.mutation.ItemNumberCleared() {
		_spec.ClearField(biditem.FieldItemNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCode(); ok {
		_spec.SetField(biditem.FieldItemCode, field.TypeString, value)
	}
	if _u.mutation.ItemCodeCleared() {
		_spec.ClearField(biditem.FieldItemCode, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(biditem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(biditem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(biditem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(biditem.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(biditem.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(biditem.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(biditem.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(biditem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(biditem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(biditem.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(biditem.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(biditem.FieldTotalPrice, field.TypeFloat64, value)
	}
	if _u.mutation.TotalPriceCleared() {
		_spec.ClearField(biditem.FieldTotalPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BidderName(); ok {
		_spec.SetField(biditem.FieldBidderName, field.TypeString, value)
	}
	if _u.mutation.BidderNameCleared() {
		_spec.ClearField(biditem.FieldBidderName, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biditem.ContractTable,
			Columns: []string{biditem.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biditem.ContractTable,
			Columns: []string{biditem.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BidItemUpdateOne is the builder for updating a single BidItem entity.
type BidItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BidItemMutation
}

// SetContractID sets the "contract_id" field.
func (_u *BidItemUpdateOne) SetContractID(v uuid.UUID) *BidItemUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableContractID(v *uuid.UUID) *BidItemUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetItemNumber sets the "item_number" field.
func (_u *BidItemUpdateOne) SetItemNumber(v string) *BidItemUpdateOne {
	_u.mutation.SetItemNumber(v)
	return _u
}

// SetNillableItemNumber sets the "item_number" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableItemNumber(v *string) *BidItemUpdateOne {
	if v != nil {
		_u.SetItemNumber(*v)
	}
	return _u
}

// ClearItemNumber clears the value of the "item_number" field.
func (_u *BidItemUpdateOne) ClearItemNumber() *BidItemUpdateOne {
	_u.mutation.ClearItemNumber()
	return _u
}

// SetItemCode sets the "item_code" field.
func (_u *BidItemUpdateOne) SetItemCode(v string) *BidItemUpdateOne {
	_u.mutation.SetItemCode(v)
	return _u
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableItemCode(v *string) *BidItemUpdateOne {
	if v != nil {
		_u.SetItemCode(*v)
	}
	return _u
}

// ClearItemCode clears the value of the "item_code" field.
func (_u *BidItemUpdateOne) ClearItemCode() *BidItemUpdateOne {
	_u.mutation.ClearItemCode()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BidItemUpdateOne) SetDescription(v string) *BidItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableDescription(v *string) *BidItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BidItemUpdateOne) ClearDescription() *BidItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *BidItemUpdateOne) SetQuantity(v float64) *BidItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableQuantity(v *float64) *BidItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *BidItemUpdateOne) AddQuantity(v float64) *BidItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *BidItemUpdateOne) ClearQuantity() *BidItemUpdateOne {
	_u.mutation.ClearQuantity()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *BidItemUpdateOne) SetUnit(v string) *BidItemUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableUnit(v *string) *BidItemUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *BidItemUpdateOne) ClearUnit() *BidItemUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *BidItemUpdateOne) SetUnitPrice(v float64) *BidItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableUnitPrice(v *float64) *BidItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *BidItemUpdateOne) AddUnitPrice(v float64) *BidItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *BidItemUpdateOne) ClearUnitPrice() *BidItemUpdateOne {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *BidItemUpdateOne) SetTotalPrice(v float64) *BidItemUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableTotalPrice(v *float64) *BidItemUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *BidItemUpdateOne) AddTotalPrice(v float64) *BidItemUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// ClearTotalPrice clears the value of the "total_price" field.
func (_u *BidItemUpdateOne) ClearTotalPrice() *BidItemUpdateOne {
	_u.mutation.ClearTotalPrice()
	return _u
}

// SetBidderName sets the "bidder_name" field.
func (_u *BidItemUpdateOne) SetBidderName(v string) *BidItemUpdateOne {
	_u.mutation.SetBidderName(v)
	return _u
}

// SetNillableBidderName sets the "bidder_name" field if the given value is not nil.
func (_u *BidItemUpdateOne) SetNillableBidderName(v *string) *BidItemUpdateOne {
	if v != nil {
		_u.SetBidderName(*v)
	}
	return _u
}

// ClearBidderName clears the value of the "bidder_name" field.
func (_u *BidItemUpdateOne) ClearBidderName() *BidItemUpdateOne {
	_u.mutation.ClearBidderName()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *BidItemUpdateOne) SetContract(v *Contract) *BidItemUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the BidItemMutation object of the builder.
func (_u *BidItemUpdateOne) Mutation() *BidItemMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *BidItemUpdateOne) ClearContract() *BidItemUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the BidItemUpdate builder.
func (_u *BidItemUpdateOne) Where(ps ...predicate.BidItem) *BidItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BidItemUpdateOne) Select(field string, fields ...string) *BidItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BidItem entity.
func (_u *BidItemUpdateOne) Save(ctx context.Context) (*BidItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BidItemUpdateOne) SaveX(ctx context.Context) *BidItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BidItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BidItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BidItemUpdateOne) check() error {
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BidItem.contract"`)
	}
	return nil
}

func (_u *BidItemUpdateOne) sqlSave(ctx context.Context) (_node *BidItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biditem.Table, biditem.Columns, sqlgraph.NewFieldSpec(biditem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BidItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, biditem.FieldID)
		for _, f := range fields {
			if !biditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != biditem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemNumber(); ok {
		_spec.SetField(biditem.FieldItemNumber, field.TypeString, value)
	}
	if _u.mutation.ItemNumberCleared() {
		_spec.ClearField(biditem.FieldItemNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCode(); ok {
		_spec.SetField(biditem.FieldItemCode, field.TypeString, value)
	}
	if _u.mutation.ItemCodeCleared() {
		_spec.ClearField(biditem.FieldItemCode, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(biditem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(biditem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(biditem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(biditem.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(biditem.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(biditem.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(biditem.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(biditem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(biditem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(biditem.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(biditem.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(biditem.FieldTotalPrice, field.TypeFloat64, value)
	}
	if _u.mutation.TotalPriceCleared() {
		_spec.ClearField(biditem.FieldTotalPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BidderName(); ok {
		_spec.SetField(biditem.FieldBidderName, field.TypeString, value)
	}
	if _u.mutation.BidderNameCleared() {
		_spec.ClearField(biditem.FieldBidderName, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biditem.ContractTable,
			Columns: []string{biditem.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biditem.ContractTable,
			Columns: []string{biditem.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BidItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
