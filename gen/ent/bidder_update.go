// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/bidder"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

// BidderUpdate is the builder for updating Bidder entities.
type BidderUpdate struct {
	config
	hooks    []Hook
	mutation *BidderMutation
}

// Where appends a list predicates to the BidderUpdate builder.
func (_u *BidderUpdate) Where(ps ...predicate.Bidder) *BidderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *BidderUpdate) SetContractID(v uuid.UUID) *BidderUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *BidderUpdate) SetNillableContractID(v *uuid.UUID) *BidderUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetBidderName sets the "bidder_name" field.
func (_u *BidderUpdate) SetBidderName(v string) *BidderUpdate {
	_u.mutation.SetBidderName(v)
	return _u
}

// SetNillableBidderName sets the "bidder_name" field if the given value is not nil.
func (_u *BidderUpdate) SetNillableBidderName(v *string) *BidderUpdate {
	if v != nil {
		_u.SetBidderName(*v)
	}
	return _u
}

// SetBidderLocation sets the "bidder_location" field.
func (_u *BidderUpdate) SetBidderLocation(v string) *BidderUpdate {
	_u.mutation.SetBidderLocation(v)
	return _u
}

// SetNillableBidderLocation sets the "bidder_location" field if the given value is not nil.
func (_u *BidderUpdate) SetNillableBidderLocation(v *string) *BidderUpdate {
	if v != nil {
		_u.SetBidderLocation(*v)
	}
	return _u
}

// ClearBidderLocation clears the value of the "bidder_location" field.
func (_u *BidderUpdate) ClearBidderLocation() *BidderUpdate {
	_u.mutation.ClearBidderLocation()
	return _u
}

// SetTotalBidAmount sets the "total_bid_amount" field.
func (_u *BidderUpdate) SetTotalBidAmount(v float64) *BidderUpdate {
	_u.mutation.ResetTotalBidAmount()
	_u.mutation.SetTotalBidAmount(v)
	return _u
}

// SetNillableTotalBidAmount sets the "total_bid_amount" field if the given value is not nil.
func (_u *BidderUpdate) SetNillableTotalBidAmount(v *float64) *BidderUpdate {
	if v != nil {
		_u.SetTotalBidAmount(*v)
	}
	return _u
}

// AddTotalBidAmount adds value to the "total_bid_amount" field.
func (_u *BidderUpdate) AddTotalBidAmount(v float64) *BidderUpdate {
	_u.mutation.AddTotalBidAmount(v)
	return _u
}

// ClearTotalBidAmount clears the value of the "total_bid_amount" field.
func (_u *BidderUpdate) ClearTotalBidAmount() *BidderUpdate {
	_u.mutation.ClearTotalBidAmount()
	return _u
}

// SetBidRank sets the "bid_rank" field.
func (_u *BidderUpdate) SetBidRank(v int) *BidderUpdate {
	_u.mutation.ResetBidRank()
	_u.mutation.SetBidRank(v)
	return _u
}

// SetNillableBidRank sets the "bid_rank" field if the given value is not nil.
func (_u *BidderUpdate) SetNillableBidRank(v *int) *BidderUpdate {
	if v != nil {
		_u.SetBidRank(*v)
	}
	return _u
}

// AddBidRank adds value to the "bid_rank" field.
func (_u *BidderUpdate) AddBidRank(v int) *BidderUpdate {
	_u.mutation.AddBidRank(v)
	return _u
}

// ClearBidRank clears the value of the "bid_rank" field.
func (_u *BidderUpdate) ClearBidRank() *BidderUpdate {
	_u.mutation.ClearBidRank()
	return _u
}

// SetPercentageDiff sets the "percentage_diff" field.
func (_u *BidderUpdate) SetPercentageDiff(v float64) *BidderUpdate {
	_u.mutation.ResetPercentageDiff()
	_u.mutation.SetPercentageDiff(v)
	return _u
}

// SetNillablePercentageDiff sets the "percentage_diff" field if the given value is not nil.
func (_u *BidderUpdate) SetNillablePercentageDiff(v *float64) *BidderUpdate {
	if v != nil {
		_u.SetPercentageDiff(*v)
	}
	return _u
}

// AddPercentageDiff adds value to the "percentage_diff" field.
func (_u *BidderUpdate) AddPercentageDiff(v float64) *BidderUpdate {
	_u.mutation.AddPercentageDiff(v)
	return _u
}

// ClearPercentageDiff clears the value of the "percentage_diff" field.
func (_u *BidderUpdate) ClearPercentageDiff() *BidderUpdate {
	_u.mutation.ClearPercentageDiff()
	return _u
}

// SetIsWinner sets the "is_winner" field.
func (_u *BidderUpdate) SetIsWinner(v bool) *BidderUpdate {
	_u.mutation.SetIsWinner(v)
	return _u
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_u *BidderUpdate) SetNillableIsWinner(v *bool) *BidderUpdate {
	if v != nil {
		_u.SetIsWinner(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *BidderUpdate) SetContract(v *Contract) *BidderUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the BidderMutation object of the builder.
func (_u *BidderUpdate) Mutation() *BidderMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *BidderUpdate) ClearContract() *BidderUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BidderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BidderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BidderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BidderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BidderUpdate) check() error {
	if v, ok := _u.mutation.BidderName(); ok {
		if err := bidder.BidderNameValidator(v); err != nil {
			return &ValidationError{Name: "bidder_name", err: fmt.Errorf(`ent: validator failed for field "Bidder.bidder_name": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bidder.contract"`)
	}
	return nil
}

func (_u *BidderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bidder.Table, bidder.Columns, sqlgraph.NewFieldSpec(bidder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BidderName(); ok {
		_spec.SetField(bidder.FieldBidderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BidderLocation(); ok {
		_spec.SetField(bidder.FieldBidderLocation, field.TypeString, value)
	}
	if _u.mutation.BidderLocationCleared() {
		_spec.ClearField(bidder.FieldBidderLocation, field.TypeString)
	}
	if value, ok := _u.mutation.TotalBidAmount(); ok {
		_spec.SetField(bidder.FieldTotalBidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalBidAmount(); ok {
		_spec.AddField(bidder.FieldTotalBidAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalBidAmountCleared() {
		_spec.ClearField(bidder.FieldTotalBidAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BidRank(); ok {
		_spec.SetField(bidder.FieldBidRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBidRank(); ok {
		_spec.AddField(bidder.FieldBidRank, field.TypeInt, value)
	}
	if _u.mutation.BidRankCleared() {
		_spec.ClearField(bidder.FieldBidRank, field.TypeInt)
	}
	if value, ok := _u.mutation.PercentageDiff(); ok {
		_spec.SetField(bidder.FieldPercentageDiff, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentageDiff(); ok {
		_spec.AddField(bidder.FieldPercentageDiff, field.TypeFloat64, value)
	}
	if _u.mutation.PercentageDiffCleared() {
		_spec.ClearField(bidder.FieldPercentageDiff, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsWinner(); ok {
		_spec.SetField(bidder.FieldIsWinner, field.TypeBool, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bidder.ContractTable,
			Columns: []string{bidder.ContractColumn},
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
			Table:   bidder.ContractTable,
			Columns: []string{bidder.ContractColumn},
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
			err = &NotFoundError{bidder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BidderUpdateOne is the builder for updating a single Bidder entity.
type BidderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BidderMutation
}

// SetContractID sets the "contract_id" field.
func (_u *BidderUpdateOne) SetContractID(v uuid.UUID) *BidderUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *BidderUpdateOne) SetNillableContractID(v *uuid.UUID) *BidderUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetBidderName sets the "bidder_name" field.
func (_u *BidderUpdateOne) SetBidderName(v string) *BidderUpdateOne {
	_u.mutation.SetBidderName(v)
	return _u
}

// SetNillableBidderName sets the "bidder_name" field if the given value is not nil.
func (_u *BidderUpdateOne) SetNillableBidderName(v *string) *BidderUpdateOne {
	if v != nil {
		_u.SetBidderName(*v)
	}
	return _u
}

// SetBidderLocation sets the "bidder_location" field.
func (_u *BidderUpdateOne) SetBidderLocation(v string) *BidderUpdateOne {
	_u.mutation.SetBidderLocation(v)
	return _u
}

// SetNillableBidderLocation sets the "bidder_location" field if the given value is not nil.
func (_u *BidderUpdateOne) SetNillableBidderLocation(v *string) *BidderUpdateOne {
	if v != nil {
		_u.SetBidderLocation(*v)
	}
	return _u
}

// ClearBidderLocation clears the value of the "bidder_location" field.
func (_u *BidderUpdateOne) ClearBidderLocation() *BidderUpdateOne {
	_u.mutation.ClearBidderLocation()
	return _u
}

// SetTotalBidAmount sets the "total_bid_amount" field.
func (_u *BidderUpdateOne) SetTotalBidAmount(v float64) *BidderUpdateOne {
	_u.mutation.ResetTotalBidAmount()
	_u.mutation.SetTotalBidAmount(v)
	return _u
}

// SetNillableTotalBidAmount sets the "total_bid_amount" field if the given value is not nil.
func (_u *BidderUpdateOne) SetNillableTotalBidAmount(v *float64) *BidderUpdateOne {
	if v != nil {
		_u.SetTotalBidAmount(*v)
	}
	return _u
}

// AddTotalBidAmount adds value to the "total_bid_amount" field.
func (_u *BidderUpdateOne) AddTotalBidAmount(v float64) *BidderUpdateOne {
	_u.mutation.AddTotalBidAmount(v)
	return _u
}

// ClearTotalBidAmount clears the value of the "total_bid_amount" field.
func (_u *BidderUpdateOne) ClearTotalBidAmount() *BidderUpdateOne {
	_u.mutation.ClearTotalBidAmount()
	return _u
}

// SetBidRank sets the "bid_rank" field.
func (_u *BidderUpdateOne) SetBidRank(v int) *BidderUpdateOne {
	_u.mutation.ResetBidRank()
	_u.mutation.SetBidRank(v)
	return _u
}

// SetNillableBidRank sets the "bid_rank" field if the given value is not nil.
func (_u *BidderUpdateOne) SetNillableBidRank(v *int) *BidderUpdateOne {
	if v != nil {
		_u.SetBidRank(*v)
	}
	return _u
}

// AddBidRank adds value to the "bid_rank" field.
func (_u *BidderUpdateOne) AddBidRank(v int) *BidderUpdateOne {
	_u.mutation.AddBidRank(v)
	return _u
}

// ClearBidRank clears the value of the "bid_rank" field.
func (_u *BidderUpdateOne) ClearBidRank() *BidderUpdateOne {
	_u.mutation.ClearBidRank()
	return _u
}

// SetPercentageDiff sets the "percentage_diff" field.
func (_u *BidderUpdateOne) SetPercentageDiff(v float64) *BidderUpdateOne {
	_u.mutation.ResetPercentageDiff()
	_u.mutation.SetPercentageDiff(v)
	return _u
}

// SetNillablePercentageDiff sets the "percentage_diff" field if the given value is not nil.
func (_u *BidderUpdateOne) SetNillablePercentageDiff(v *float64) *BidderUpdateOne {
	if v != nil {
		_u.SetPercentageDiff(*v)
	}
	return _u
}

// AddPercentageDiff adds value to the "percentage_diff" field.
func (_u *BidderUpdateOne) AddPercentageDiff(v float64) *BidderUpdateOne {
	_u.mutation.AddPercentageDiff(v)
	return _u
}

// ClearPercentageDiff clears the value of the "percentage_diff" field.
func (_u *BidderUpdateOne) ClearPercentageDiff() *BidderUpdateOne {
	_u.mutation.ClearPercentageDiff()
	return _u
}

// SetIsWinner sets the "is_winner" field.
func (_u *BidderUpdateOne) SetIsWinner(v bool) *BidderUpdateOne {
	_u.mutation.SetIsWinner(v)
	return _u
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_u *BidderUpdateOne) SetNillableIsWinner(v *bool) *BidderUpdateOne {
	if v != nil {
		_u.SetIsWinner(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *BidderUpdateOne) SetContract(v *Contract) *BidderUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the BidderMutation object of the builder.
func (_u *BidderUpdateOne) Mutation() *BidderMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *BidderUpdateOne) ClearContract() *BidderUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the BidderUpdate builder.
func (_u *BidderUpdateOne) Where(ps ...predicate.Bidder) *BidderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BidderUpdateOne) Select(field string, fields ...string) *BidderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bidder entity.
func (_u *BidderUpdateOne) Save(ctx context.Context) (*Bidder, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BidderUpdateOne) SaveX(ctx context.Context) *Bidder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BidderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BidderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BidderUpdateOne) check() error {
	if v, ok := _u.mutation.BidderName(); ok {
		if err := bidder.BidderNameValidator(v); err != nil {
			return &ValidationError{Name: "bidder_name", err: fmt.Errorf(`ent: validator failed for field "Bidder.bidder_name": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bidder.contract"`)
	}
	return nil
}

func (_u *BidderUpdateOne) sqlSave(ctx context.Context) (_node *Bidder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bidder.Table, bidder.Columns, sqlgraph.NewFieldSpec(bidder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bidder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bidder.FieldID)
		for _, f := range fields {
			if !bidder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bidder.FieldID {
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
	if value, ok := _u.mutation.BidderName(); ok {
		_spec.SetField(bidder.FieldBidderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BidderLocation(); ok {
		_spec.SetField(bidder.FieldBidderLocation, field.TypeString, value)
	}
	if _u.mutation.BidderLocationCleared() {
		_spec.ClearField(bidder.FieldBidderLocation, field.TypeString)
	}
	if value, ok := _u.mutation.TotalBidAmount(); ok {
		_spec.SetField(bidder.FieldTotalBidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalBidAmount(); ok {
		_spec.AddField(bidder.FieldTotalBidAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalBidAmountCleared() {
		_spec.ClearField(bidder.FieldTotalBidAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BidRank(); ok {
		_spec.SetField(bidder.FieldBidRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBidRank(); ok {
		_spec.AddField(bidder.FieldBidRank, field.TypeInt, value)
	}
	if _u.mutation.BidRankCleared() {
		_spec.ClearField(bidder.FieldBidRank, field.TypeInt)
	}
	if value, ok := _u.mutation.PercentageDiff(); ok {
		_spec.SetField(bidder.FieldPercentageDiff, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentageDiff(); ok {
		_spec.AddField(bidder.FieldPercentageDiff, field.TypeFloat64, value)
	}
	if _u.mutation.PercentageDiffCleared() {
		_spec.ClearField(bidder.FieldPercentageDiff, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsWinner(); ok {
		_spec.SetField(bidder.FieldIsWinner, field.TypeBool, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bidder.ContractTable,
			Columns: []string{bidder.ContractColumn},
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
			Table:   bidder.ContractTable,
			Columns: []string{bidder.ContractColumn},
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
	_node = &Bidder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bidder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
