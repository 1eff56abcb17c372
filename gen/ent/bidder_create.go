// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/bidder"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/google/uuid"
)

// BidderCreate is the builder for creating a Bidder entity.
type BidderCreate struct {
	config
	mutation *BidderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContractID sets the "contract_id" field.
func (_c *BidderCreate) SetContractID(v uuid.UUID) *BidderCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetBidderName sets the "bidder_name" field.
func (_c *BidderCreate) SetBidderName(v string) *BidderCreate {
	_c.mutation.SetBidderName(v)
	return _c
}

// SetBidderLocation sets the "bidder_location" field.
func (_c *BidderCreate) SetBidderLocation(v string) *BidderCreate {
	_c.mutation.SetBidderLocation(v)
	return _c
}

// SetNillableBidderLocation sets the "bidder_location" field if the given value is not nil.
func (_c *BidderCreate) SetNillableBidderLocation(v *string) *BidderCreate {
	if v != nil {
		_c.SetBidderLocation(*v)
	}
	return _c
}

// SetTotalBidAmount sets the "total_bid_amount" field.
func (_c *BidderCreate) SetTotalBidAmount(v float64) *BidderCreate {
	_c.mutation.SetTotalBidAmount(v)
	return _c
}

// SetNillableTotalBidAmount sets the "total_bid_amount" field if the given value is not nil.
func (_c *BidderCreate) SetNillableTotalBidAmount(v *float64) *BidderCreate {
	if v != nil {
		_c.SetTotalBidAmount(*v)
	}
	return _c
}

// SetBidRank sets the "bid_rank" field.
func (_c *BidderCreate) SetBidRank(v int) *BidderCreate {
	_c.mutation.SetBidRank(v)
	return _c
}

// SetNillableBidRank sets the "bid_rank" field if the given value is not nil.
func (_c *BidderCreate) SetNillableBidRank(v *int) *BidderCreate {
	if v != nil {
		_c.SetBidRank(*v)
	}
	return _c
}

// SetPercentageDiff sets the "percentage_diff" field.
func (_c *BidderCreate) SetPercentageDiff(v float64) *BidderCreate {
	_c.mutation.SetPercentageDiff(v)
	return _c
}

// SetNillablePercentageDiff sets the "percentage_diff" field if the given value is not nil.
func (_c *BidderCreate) SetNillablePercentageDiff(v *float64) *BidderCreate {
	if v != nil {
		_c.SetPercentageDiff(*v)
	}
	return _c
}

// SetIsWinner sets the "is_winner" field.
func (_c *BidderCreate) SetIsWinner(v bool) *BidderCreate {
	_c.mutation.SetIsWinner(v)
	return _c
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_c *BidderCreate) SetNillableIsWinner(v *bool) *BidderCreate {
	if v != nil {
		_c.SetIsWinner(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BidderCreate) SetID(v uuid.UUID) *BidderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BidderCreate) SetNillableID(v *uuid.UUID) *BidderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *BidderCreate) SetContract(v *Contract) *BidderCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the BidderMutation object of the builder.
func (_c *BidderCreate) Mutation() *BidderMutation {
	return _c.mutation
}

// Save creates the Bidder in the database.
func (_c *BidderCreate) Save(ctx context.Context) (*Bidder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BidderCreate) SaveX(ctx context.Context) *Bidder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BidderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BidderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BidderCreate) defaults() {
	if _, ok := _c.mutation.IsWinner(); !ok {
		v := bidder.DefaultIsWinner
		_c.mutation.SetIsWinner(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bidder.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BidderCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "Bidder.contract_id"`)}
	}
	if _, ok := _c.mutation.BidderName(); !ok {
		return &ValidationError{Name: "bidder_name", err: errors.New(`ent: missing required field "Bidder.bidder_name"`)}
	}
	if v, ok := _c.mutation.BidderName(); ok {
		if err := bidder.BidderNameValidator(v); err != nil {
			return &ValidationError{Name: "bidder_name", err: fmt.Errorf(`ent: validator failed for field "Bidder.bidder_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsWinner(); !ok {
		return &ValidationError{Name: "is_winner", err: errors.New(`ent: missing required field "Bidder.is_winner"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "Bidder.contract"`)}
	}
	return nil
}

func (_c *BidderCreate) sqlSave(ctx context.Context) (*Bidder, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BidderCreate) createSpec() (*Bidder, *sqlgraph.CreateSpec) {
	var (
		_node = &Bidder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bidder.Table, sqlgraph.NewFieldSpec(bidder.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BidderName(); ok {
		_spec.SetField(bidder.FieldBidderName, field.TypeString, value)
		_node.BidderName = value
	}
	if value, ok := _c.mutation.BidderLocation(); ok {
		_spec.SetField(bidder.FieldBidderLocation, field.TypeString, value)
		_node.BidderLocation = &value
	}
	if value, ok := _c.mutation.TotalBidAmount(); ok {
		_spec.SetField(bidder.FieldTotalBidAmount, field.TypeFloat64, value)
		_node.TotalBidAmount = &value
	}
	if value, ok := _c.mutation.BidRank(); ok {
		_spec.SetField(bidder.FieldBidRank, field.TypeInt, value)
		_node.BidRank = &value
	}
	if value, ok := _c.mutation.PercentageDiff(); ok {
		_spec.SetField(bidder.FieldPercentageDiff, field.TypeFloat64, value)
		_node.PercentageDiff = &value
	}
	if value, ok := _c.mutation.IsWinner(); ok {
		_spec.SetField(bidder.FieldIsWinner, field.TypeBool, value)
		_node.IsWinner = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
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
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Bidder.Create().
//		SetContractID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BidderUpsert) {
//			SetContractID(v+v).
//		}).
//		Exec(ctx)
func (_c *BidderCreate) OnConflict(opts ...sql.ConflictOption) *BidderUpsertOne {
	_c.conflict = opts
	return &BidderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Bidder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BidderCreate) OnConflictColumns(columns ...string) *BidderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BidderUpsertOne{
		create: _c,
	}
}

type (
	// BidderUpsertOne is the builder for "upsert"-ing
	//  one Bidder node.
	BidderUpsertOne struct {
		create *BidderCreate
	}

	// BidderUpsert is the "OnConflict" setter.
	BidderUpsert struct {
		*sql.UpdateSet
	}
)

// SetContractID sets the "contract_id" field.
func (u *BidderUpsert) SetContractID(v uuid.UUID) *BidderUpsert {
	u.Set(bidder.FieldContractID, v)
	return u
}

// UpdateContractID sets the "contract_id" field to the value that was provided on create.
func (u *BidderUpsert) UpdateContractID() *BidderUpsert {
	u.SetExcluded(bidder.FieldContractID)
	return u
}

// SetBidderName sets the "bidder_name" field.
func (u *BidderUpsert) SetBidderName(v string) *BidderUpsert {
	u.Set(bidder.FieldBidderName, v)
	return u
}

// UpdateBidderName sets the "bidder_name" field to the value that was provided on create.
func (u *BidderUpsert) UpdateBidderName() *BidderUpsert {
	u.SetExcluded(bidder.FieldBidderName)
	return u
}

// SetBidderLocation sets the "bidder_location" field.
func (u *BidderUpsert) SetBidderLocation(v string) *BidderUpsert {
	u.Set(bidder.FieldBidderLocation, v)
	return u
}

// UpdateBidderLocation sets the "bidder_location" field to the value that was provided on create.
func (u *BidderUpsert) UpdateBidderLocation() *BidderUpsert {
	u.SetExcluded(bidder.FieldBidderLocation)
	return u
}

// ClearBidderLocation clears the value of the "bidder_location" field.
func (u *BidderUpsert) ClearBidderLocation() *BidderUpsert {
	u.SetNull(bidder.FieldBidderLocation)
	return u
}

// SetTotalBidAmount sets the "total_bid_amount" field.
func (u *BidderUpsert) SetTotalBidAmount(v float64) *BidderUpsert {
	u.Set(bidder.FieldTotalBidAmount, v)
	return u
}

// UpdateTotalBidAmount sets the "total_bid_amount" field to the value that was provided on create.
func (u *BidderUpsert) UpdateTotalBidAmount() *BidderUpsert {
	u.SetExcluded(bidder.FieldTotalBidAmount)
	return u
}

// AddTotalBidAmount adds v to the "total_bid_amount" field.
func (u *BidderUpsert) AddTotalBidAmount(v float64) *BidderUpsert {
	u.Add(bidder.FieldTotalBidAmount, v)
	return u
}

// ClearTotalBidAmount clears the value of the "total_bid_amount" field.
func (u *BidderUpsert) ClearTotalBidAmount() *BidderUpsert {
	u.SetNull(bidder.FieldTotalBidAmount)
	return u
}

// SetBidRank sets the "bid_rank" field.
func (u *BidderUpsert) SetBidRank(v int) *BidderUpsert {
	u.Set(bidder.FieldBidRank, v)
	return u
}

// UpdateBidRank sets the "bid_rank" field to the value that was provided on create.
func (u *BidderUpsert) UpdateBidRank() *BidderUpsert {
	u.SetExcluded(bidder.FieldBidRank)
	return u
}

// AddBidRank adds v to the "bid_rank" field.
func (u *BidderUpsert) AddBidRank(v int) *BidderUpsert {
	u.Add(bidder.FieldBidRank, v)
	return u
}

// ClearBidRank clears the value of the "bid_rank" field.
func (u *BidderUpsert) ClearBidRank() *BidderUpsert {
	u.SetNull(bidder.FieldBidRank)
	return u
}

// SetPercentageDiff sets the "percentage_diff" field.
func (u *BidderUpsert) SetPercentageDiff(v float64) *BidderUpsert {
	u.Set(bidder.FieldPercentageDiff, v)
	return u
}

// UpdatePercentageDiff sets the "percentage_diff" field to the value that was provided on create.
func (u *BidderUpsert) UpdatePercentageDiff() *BidderUpsert {
	u.SetExcluded(bidder.FieldPercentageDiff)
	return u
}

// AddPercentageDiff adds v to the "percentage_diff" field.
func (u *BidderUpsert) AddPercentageDiff(v float64) *BidderUpsert {
	u.Add(bidder.FieldPercentageDiff, v)
	return u
}

// ClearPercentageDiff clears the value of the "percentage_diff" field.
func (u *BidderUpsert) ClearPercentageDiff() *BidderUpsert {
	u.SetNull(bidder.FieldPercentageDiff)
	return u
}

// SetIsWinner sets the "is_winner" field.
func (u *BidderUpsert) SetIsWinner(v bool) *BidderUpsert {
	u.Set(bidder.FieldIsWinner, v)
	return u
}

// UpdateIsWinner sets the "is_winner" field to the value that was provided on create.
func (u *BidderUpsert) UpdateIsWinner() *BidderUpsert {
	u.SetExcluded(bidder.FieldIsWinner)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Bidder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bidder.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BidderUpsertOne) UpdateNewValues() *BidderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(bidder.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Bidder.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BidderUpsertOne) Ignore() *BidderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BidderUpsertOne) DoNothing() *BidderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BidderCreate.OnConflict
// documentation for more info.
func (u *BidderUpsertOne) Update(set func(*BidderUpsert)) *BidderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BidderUpsert{UpdateSet: update})
	}))
	return u
}

// SetContractID sets the "contract_id" field.
func (u *BidderUpsertOne) SetContractID(v uuid.UUID) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.SetContractID(v)
	})
}

// UpdateContractID sets the "contract_id" field to the value that was provided on create.
func (u *BidderUpsertOne) UpdateContractID() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateContractID()
	})
}

// SetBidderName sets the "bidder_name" field.
func (u *BidderUpsertOne) SetBidderName(v string) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.SetBidderName(v)
	})
}

// UpdateBidderName sets the "bidder_name" field to the value that was provided on create.
func (u *BidderUpsertOne) UpdateBidderName() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateBidderName()
	})
}

// SetBidderLocation sets the "bidder_location" field.
func (u *BidderUpsertOne) SetBidderLocation(v string) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.SetBidderLocation(v)
	})
}

// UpdateBidderLocation sets the "bidder_location" field to the value that was provided on create.
func (u *BidderUpsertOne) UpdateBidderLocation() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateBidderLocation()
	})
}

// ClearBidderLocation clears the value of the "bidder_location" field.
func (u *BidderUpsertOne) ClearBidderLocation() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.ClearBidderLocation()
	})
}

// SetTotalBidAmount sets the "total_bid_amount" field.
func (u *BidderUpsertOne) SetTotalBidAmount(v float64) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.SetTotalBidAmount(v)
	})
}

// AddTotalBidAmount adds v to the "total_bid_amount" field.
func (u *BidderUpsertOne) AddTotalBidAmount(v float64) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.AddTotalBidAmount(v)
	})
}

// UpdateTotalBidAmount sets the "total_bid_amount" field to the value that was provided on create.
func (u *BidderUpsertOne) UpdateTotalBidAmount() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateTotalBidAmount()
	})
}

// ClearTotalBidAmount clears the value of the "total_bid_amount" field.
func (u *BidderUpsertOne) ClearTotalBidAmount() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.ClearTotalBidAmount()
	})
}

// SetBidRank sets the "bid_rank" field.
func (u *BidderUpsertOne) SetBidRank(v int) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.SetBidRank(v)
	})
}

// AddBidRank adds v to the "bid_rank" field.
func (u *BidderUpsertOne) AddBidRank(v int) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.AddBidRank(v)
	})
}

// UpdateBidRank sets the "bid_rank" field to the value that was provided on create.
func (u *BidderUpsertOne) UpdateBidRank() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateBidRank()
	})
}

// ClearBidRank clears the value of the "bid_rank" field.
func (u *BidderUpsertOne) ClearBidRank() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.ClearBidRank()
	})
}

// SetPercentageDiff sets the "percentage_diff" field.
func (u *BidderUpsertOne) SetPercentageDiff(v float64) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.SetPercentageDiff(v)
	})
}

// AddPercentageDiff adds v to the "percentage_diff" field.
func (u *BidderUpsertOne) AddPercentageDiff(v float64) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.AddPercentageDiff(v)
	})
}

// UpdatePercentageDiff sets the "percentage_diff" field to the value that was provided on create.
func (u *BidderUpsertOne) UpdatePercentageDiff() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.UpdatePercentageDiff()
	})
}

// ClearPercentageDiff clears the value of the "percentage_diff" field.
func (u *BidderUpsertOne) ClearPercentageDiff() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.ClearPercentageDiff()
	})
}

// SetIsWinner sets the "is_winner" field.
func (u *BidderUpsertOne) SetIsWinner(v bool) *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.SetIsWinner(v)
	})
}

// UpdateIsWinner sets the "is_winner" field to the value that was provided on create.
func (u *BidderUpsertOne) UpdateIsWinner() *BidderUpsertOne {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateIsWinner()
	})
}

// Exec executes the query.
func (u *BidderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BidderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BidderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BidderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BidderUpsertOne.ID is not supported by MySQL driver. Use BidderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BidderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BidderCreateBulk is the builder for creating many Bidder entities in bulk.
type BidderCreateBulk struct {
	config
	err      error
	builders []*BidderCreate
	conflict []sql.ConflictOption
}

// Save creates the Bidder entities in the database.
func (_c *BidderCreateBulk) Save(ctx context.Context) ([]*Bidder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bidder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BidderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BidderCreateBulk) SaveX(ctx context.Context) []*Bidder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BidderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BidderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Bidder.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BidderUpsert) {
//			SetContractID(v+v).
//		}).
//		Exec(ctx)
func (_c *BidderCreateBulk) OnConflict(opts ...sql.ConflictOption) *BidderUpsertBulk {
	_c.conflict = opts
	return &BidderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Bidder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BidderCreateBulk) OnConflictColumns(columns ...string) *BidderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BidderUpsertBulk{
		create: _c,
	}
}

// BidderUpsertBulk is the builder for "upsert"-ing
// a bulk of Bidder nodes.
type BidderUpsertBulk struct {
	create *BidderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Bidder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bidder.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BidderUpsertBulk) UpdateNewValues() *BidderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(bidder.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Bidder.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BidderUpsertBulk) Ignore() *BidderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BidderUpsertBulk) DoNothing() *BidderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BidderCreateBulk.OnConflict
// documentation for more info.
func (u *BidderUpsertBulk) Update(set func(*BidderUpsert)) *BidderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BidderUpsert{UpdateSet: update})
	}))
	return u
}

// SetContractID sets the "contract_id" field.
func (u *BidderUpsertBulk) SetContractID(v uuid.UUID) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.SetContractID(v)
	})
}

// UpdateContractID sets the "contract_id" field to the value that was provided on create.
func (u *BidderUpsertBulk) UpdateContractID() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateContractID()
	})
}

// SetBidderName sets the "bidder_name" field.
func (u *BidderUpsertBulk) SetBidderName(v string) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.SetBidderName(v)
	})
}

// UpdateBidderName sets the "bidder_name" field to the value that was provided on create.
func (u *BidderUpsertBulk) UpdateBidderName() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateBidderName()
	})
}

// SetBidderLocation sets the "bidder_location" field.
func (u *BidderUpsertBulk) SetBidderLocation(v string) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.SetBidderLocation(v)
	})
}

// UpdateBidderLocation sets the "bidder_location" field to the value that was provided on create.
func (u *BidderUpsertBulk) UpdateBidderLocation() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateBidderLocation()
	})
}

// ClearBidderLocation clears the value of the "bidder_location" field.
func (u *BidderUpsertBulk) ClearBidderLocation() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.ClearBidderLocation()
	})
}

// SetTotalBidAmount sets the "total_bid_amount" field.
func (u *BidderUpsertBulk) SetTotalBidAmount(v float64) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.SetTotalBidAmount(v)
	})
}

// AddTotalBidAmount adds v to the "total_bid_amount" field.
func (u *BidderUpsertBulk) AddTotalBidAmount(v float64) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.AddTotalBidAmount(v)
	})
}

// UpdateTotalBidAmount sets the "total_bid_amount" field to the value that was provided on create.
func (u *BidderUpsertBulk) UpdateTotalBidAmount() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateTotalBidAmount()
	})
}

// ClearTotalBidAmount clears the value of the "total_bid_amount" field.
func (u *BidderUpsertBulk) ClearTotalBidAmount() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.ClearTotalBidAmount()
	})
}

// SetBidRank sets the "bid_rank" field.
func (u *BidderUpsertBulk) SetBidRank(v int) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.SetBidRank(v)
	})
}

// AddBidRank adds v to the "bid_rank" field.
func (u *BidderUpsertBulk) AddBidRank(v int) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.AddBidRank(v)
	})
}

// UpdateBidRank sets the "bid_rank" field to the value that was provided on create.
func (u *BidderUpsertBulk) UpdateBidRank() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateBidRank()
	})
}

// ClearBidRank clears the value of the "bid_rank" field.
func (u *BidderUpsertBulk) ClearBidRank() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.ClearBidRank()
	})
}

// SetPercentageDiff sets the "percentage_diff" field.
func (u *BidderUpsertBulk) SetPercentageDiff(v float64) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.SetPercentageDiff(v)
	})
}

// AddPercentageDiff adds v to the "percentage_diff" field.
func (u *BidderUpsertBulk) AddPercentageDiff(v float64) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.AddPercentageDiff(v)
	})
}

// UpdatePercentageDiff sets the "percentage_diff" field to the value that was provided on create.
func (u *BidderUpsertBulk) UpdatePercentageDiff() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.UpdatePercentageDiff()
	})
}

// ClearPercentageDiff clears the value of the "percentage_diff" field.
func (u *BidderUpsertBulk) ClearPercentageDiff() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.ClearPercentageDiff()
	})
}

// SetIsWinner sets the "is_winner" field.
func (u *BidderUpsertBulk) SetIsWinner(v bool) *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.SetIsWinner(v)
	})
}

// UpdateIsWinner sets the "is_winner" field to the value that was provided on create.
func (u *BidderUpsertBulk) UpdateIsWinner() *BidderUpsertBulk {
	return u.Update(func(s *BidderUpsert) {
		s.UpdateIsWinner()
	})
}

// Exec executes the query.
func (u *BidderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BidderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BidderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BidderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
