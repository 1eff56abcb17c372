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
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/biditem"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/google/uuid"
)

// BidItemCreate is the builder for creating a BidItem entity.
type BidItemCreate struct {
	config
	mutation *BidItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContractID sets the "contract_id" field.
func (_c *BidItemCreate) SetContractID(v uuid.UUID) *BidItemCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetItemNumber sets the "item_number" field.
func (_c *BidItemCreate) SetItemNumber(v string) *BidItemCreate {
	_c.mutation.SetItemNumber(v)
	return _c
}

// SetNillableItemNumber sets the "item_number" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableItemNumber(v *string) *BidItemCreate {
	if v != nil {
		_c.SetItemNumber(*v)
	}
	return _c
}

// SetItemCode sets the "item_code" field.
func (_c *BidItemCreate) SetItemCode(v string) *BidItemCreate {
	_c.mutation.SetItemCode(v)
	return _c
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableItemCode(v *string) *BidItemCreate {
	if v != nil {
		_c.SetItemCode(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *BidItemCreate) SetDescription(v string) *BidItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableDescription(v *string) *BidItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *BidItemCreate) SetQuantity(v float64) *BidItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableQuantity(v *float64) *BidItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *BidItemCreate) SetUnit(v string) *BidItemCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableUnit(v *string) *BidItemCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *BidItemCreate) SetUnitPrice(v float64) *BidItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableUnitPrice(v *float64) *BidItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *BidItemCreate) SetTotalPrice(v float64) *BidItemCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableTotalPrice(v *float64) *BidItemCreate {
	if v != nil {
		_c.SetTotalPrice(*v)
	}
	return _c
}

// SetBidderName sets the "bidder_name" field.
func (_c *BidItemCreate) SetBidderName(v string) *BidItemCreate {
	_c.mutation.SetBidderName(v)
	return _c
}

// SetNillableBidderName sets the "bidder_name" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableBidderName(v *string) *BidItemCreate {
	if v != nil {
		_c.SetBidderName(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BidItemCreate) SetID(v uuid.UUID) *BidItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BidItemCreate) SetNillableID(v *uuid.UUID) *BidItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *BidItemCreate) SetContract(v *Contract) *BidItemCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the BidItemMutation object of the builder.
func (_c *BidItemCreate) Mutation() *BidItemMutation {
	return _c.mutation
}

// Save creates the BidItem in the database.
func (_c *BidItemCreate) Save(ctx context.Context) (*BidItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BidItemCreate) SaveX(ctx context.Context) *BidItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BidItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BidItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BidItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := biditem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BidItemCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "BidItem.contract_id"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "BidItem.contract"`)}
	}
	return nil
}

func (_c *BidItemCreate) sqlSave(ctx context.Context) (*BidItem, error) {
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

func (_c *BidItemCreate) createSpec() (*BidItem, *sqlgraph.CreateSpec) {
	var (
		_node = &BidItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(biditem.Table, sqlgraph.NewFieldSpec(biditem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ItemNumber(); ok {
		_spec.SetField(biditem.FieldItemNumber, field.TypeString, value)
		_node.ItemNumber = &value
	}
	if value, ok := _c.mutation.ItemCode(); ok {
		_spec.SetField(biditem.FieldItemCode, field.TypeString, value)
		_node.ItemCode = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(biditem.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(biditem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(biditem.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(biditem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = &value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(biditem.FieldTotalPrice, field.TypeFloat64, value)
		_node.TotalPrice = &value
	}
	if value, ok := _c.mutation.BidderName(); ok {
		_spec.SetField(biditem.FieldBidderName, field.TypeString, value)
		_node.BidderName = &value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
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
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BidItem.Create().
//		SetContractID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BidItemUpsert) {
//			SetContractID(v+v).
//		}).
//		Exec(ctx)
func (_c *BidItemCreate) OnConflict(opts ...sql.ConflictOption) *BidItemUpsertOne {
	_c.conflict = opts
	return &BidItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BidItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BidItemCreate) OnConflictColumns(columns ...string) *BidItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BidItemUpsertOne{
		create: _c,
	}
}

type (
	// BidItemUpsertOne is the builder for "upsert"-ing
	//  one BidItem node.
	BidItemUpsertOne struct {
		create *BidItemCreate
	}

	// BidItemUpsert is the "OnConflict" setter.
	BidItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetContractID sets the "contract_id" field.
func (u *BidItemUpsert) SetContractID(v uuid.UUID) *BidItemUpsert {
	u.Set(biditem.FieldContractID, v)
	return u
}

// UpdateContractID sets the "contract_id" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateContractID() *BidItemUpsert {
	u.SetExcluded(biditem.FieldContractID)
	return u
}

// SetItemNumber sets the "item_number" field.
func (u *BidItemUpsert) SetItemNumber(v string) *BidItemUpsert {
	u.Set(biditem.FieldItemNumber, v)
	return u
}

// UpdateItemNumber sets the "item_number" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateItemNumber() *BidItemUpsert {
	u.SetExcluded(biditem.FieldItemNumber)
	return u
}

// ClearItemNumber clears the value of the "item_number" field.
func (u *BidItemUpsert) ClearItemNumber() *BidItemUpsert {
	u.SetNull(biditem.FieldItemNumber)
	return u
}

// SetItemCode sets the "item_code" field.
func (u *BidItemUpsert) SetItemCode(v string) *BidItemUpsert {
	u.Set(biditem.FieldItemCode, v)
	return u
}

// UpdateItemCode sets the "item_code" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateItemCode() *BidItemUpsert {
	u.SetExcluded(biditem.FieldItemCode)
	return u
}

// ClearItemCode clears the value of the "item_code" field.
func (u *BidItemUpsert) ClearItemCode() *BidItemUpsert {
	u.SetNull(biditem.FieldItemCode)
	return u
}

// SetDescription sets the "description" field.
func (u *BidItemUpsert) SetDescription(v string) *BidItemUpsert {
	u.Set(biditem.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateDescription() *BidItemUpsert {
	u.SetExcluded(biditem.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *BidItemUpsert) ClearDescription() *BidItemUpsert {
	u.SetNull(biditem.FieldDescription)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *BidItemUpsert) SetQuantity(v float64) *BidItemUpsert {
	u.Set(biditem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateQuantity() *BidItemUpsert {
	u.SetExcluded(biditem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *BidItemUpsert) AddQuantity(v float64) *BidItemUpsert {
	u.Add(biditem.FieldQuantity, v)
	return u
}

// ClearQuantity clears the value of the "quantity" field.
func (u *BidItemUpsert) ClearQuantity() *BidItemUpsert {
	u.SetNull(biditem.FieldQuantity)
	return u
}

// SetUnit sets the "unit" field.
func (u *BidItemUpsert) SetUnit(v string) *BidItemUpsert {
	u.Set(biditem.FieldUnit, v)
	return u
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateUnit() *BidItemUpsert {
	u.SetExcluded(biditem.FieldUnit)
	return u
}

// ClearUnit clears the value of the "unit" field.
func (u *BidItemUpsert) ClearUnit() *BidItemUpsert {
	u.SetNull(biditem.FieldUnit)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *BidItemUpsert) SetUnitPrice(v float64) *BidItemUpsert {
	u.Set(biditem.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateUnitPrice() *BidItemUpsert {
	u.SetExcluded(biditem.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *BidItemUpsert) AddUnitPrice(v float64) *BidItemUpsert {
	u.Add(biditem.FieldUnitPrice, v)
	return u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (u *BidItemUpsert) ClearUnitPrice() *BidItemUpsert {
	u.SetNull(biditem.FieldUnitPrice)
	return u
}

// SetTotalPrice sets the "total_price" field.
func (u *BidItemUpsert) SetTotalPrice(v float64) *BidItemUpsert {
	u.Set(biditem.FieldTotalPrice, v)
	return u
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateTotalPrice() *BidItemUpsert {
	u.SetExcluded(biditem.FieldTotalPrice)
	return u
}

// AddTotalPrice adds v to the "total_price" field.
func (u *BidItemUpsert) AddTotalPrice(v float64) *BidItemUpsert {
	u.Add(biditem.FieldTotalPrice, v)
	return u
}

// ClearTotalPrice clears the value of the "total_price" field.
func (u *BidItemUpsert) ClearTotalPrice() *BidItemUpsert {
	u.SetNull(biditem.FieldTotalPrice)
	return u
}

// SetBidderName sets the "bidder_name" field.
func (u *BidItemUpsert) SetBidderName(v string) *BidItemUpsert {
	u.Set(biditem.FieldBidderName, v)
	return u
}

// UpdateBidderName sets the "bidder_name" field to the value that was provided on create.
func (u *BidItemUpsert) UpdateBidderName() *BidItemUpsert {
	u.SetExcluded(biditem.FieldBidderName)
	return u
}

// ClearBidderName clears the value of the "bidder_name" field.
func (u *BidItemUpsert) ClearBidderName() *BidItemUpsert {
	u.SetNull(biditem.FieldBidderName)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BidItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(biditem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BidItemUpsertOne) UpdateNewValues() *BidItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(biditem.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BidItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BidItemUpsertOne) Ignore() *BidItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BidItemUpsertOne) DoNothing() *BidItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BidItemCreate.OnConflict
// documentation for more info.
func (u *BidItemUpsertOne) Update(set func(*BidItemUpsert)) *BidItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BidItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetContractID sets the "contract_id" field.
func (u *BidItemUpsertOne) SetContractID(v uuid.UUID) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetContractID(v)
	})
}

// UpdateContractID sets the "contract_id" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateContractID() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateContractID()
	})
}

// SetItemNumber sets the "item_number" field.
func (u *BidItemUpsertOne) SetItemNumber(v string) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetItemNumber(v)
	})
}

// UpdateItemNumber sets the "item_number" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateItemNumber() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateItemNumber()
	})
}

// ClearItemNumber clears the value of the "item_number" field.
func (u *BidItemUpsertOne) ClearItemNumber() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearItemNumber()
	})
}

// SetItemCode sets the "item_code" field.
func (u *BidItemUpsertOne) SetItemCode(v string) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetItemCode(v)
	})
}

// UpdateItemCode sets the "item_code" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateItemCode() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateItemCode()
	})
}

// ClearItemCode clears the value of the "item_code" field.
func (u *BidItemUpsertOne) ClearItemCode() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearItemCode()
	})
}

// SetDescription sets the "description" field.
func (u *BidItemUpsertOne) SetDescription(v string) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateDescription() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *BidItemUpsertOne) ClearDescription() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearDescription()
	})
}

// SetQuantity sets the "quantity" field.
func (u *BidItemUpsertOne) SetQuantity(v float64) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *BidItemUpsertOne) AddQuantity(v float64) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateQuantity() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateQuantity()
	})
}

// ClearQuantity clears the value of the "quantity" field.
func (u *BidItemUpsertOne) ClearQuantity() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearQuantity()
	})
}

// SetUnit sets the "unit" field.
func (u *BidItemUpsertOne) SetUnit(v string) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetUnit(v)
	})
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateUnit() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateUnit()
	})
}

// ClearUnit clears the value of the "unit" field.
func (u *BidItemUpsertOne) ClearUnit() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearUnit()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *BidItemUpsertOne) SetUnitPrice(v float64) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *BidItemUpsertOne) AddUnitPrice(v float64) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateUnitPrice() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (u *BidItemUpsertOne) ClearUnitPrice() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearUnitPrice()
	})
}

// SetTotalPrice sets the "total_price" field.
func (u *BidItemUpsertOne) SetTotalPrice(v float64) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetTotalPrice(v)
	})
}

// AddTotalPrice adds v to the "total_price" field.
func (u *BidItemUpsertOne) AddTotalPrice(v float64) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.AddTotalPrice(v)
	})
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateTotalPrice() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateTotalPrice()
	})
}

// ClearTotalPrice clears the value of the "total_price" field.
func (u *BidItemUpsertOne) ClearTotalPrice() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearTotalPrice()
	})
}

// SetBidderName sets the "bidder_name" field.
func (u *BidItemUpsertOne) SetBidderName(v string) *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.SetBidderName(v)
	})
}

// UpdateBidderName sets the "bidder_name" field to the value that was provided on create.
func (u *BidItemUpsertOne) UpdateBidderName() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateBidderName()
	})
}

// ClearBidderName clears the value of the "bidder_name" field.
func (u *BidItemUpsertOne) ClearBidderName() *BidItemUpsertOne {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearBidderName()
	})
}

// Exec executes the query.
func (u *BidItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BidItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BidItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BidItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BidItemUpsertOne.ID is not supported by MySQL driver. Use BidItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BidItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BidItemCreateBulk is the builder for creating many BidItem entities in bulk.
type BidItemCreateBulk struct {
	config
	err      error
	builders []*BidItemCreate
	conflict []sql.ConflictOption
}

// Save creates the BidItem entities in the database.
func (_c *BidItemCreateBulk) Save(ctx context.Context) ([]*BidItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BidItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BidItemMutation)
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
func (_c *BidItemCreateBulk) SaveX(ctx context.Context) []*BidItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BidItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BidItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BidItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BidItemUpsert) {
//			SetContractID(v+v).
//		}).
//		Exec(ctx)
func (_c *BidItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *BidItemUpsertBulk {
	_c.conflict = opts
	return &BidItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BidItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BidItemCreateBulk) OnConflictColumns(columns ...string) *BidItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BidItemUpsertBulk{
		create: _c,
	}
}

// BidItemUpsertBulk is the builder for "upsert"-ing
// a bulk of BidItem nodes.
type BidItemUpsertBulk struct {
	create *BidItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BidItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(biditem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BidItemUpsertBulk) UpdateNewValues() *BidItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(biditem.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BidItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BidItemUpsertBulk) Ignore() *BidItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BidItemUpsertBulk) DoNothing() *BidItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BidItemCreateBulk.OnConflict
// documentation for more info.
func (u *BidItemUpsertBulk) Update(set func(*BidItemUpsert)) *BidItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BidItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetContractID sets the "contract_id" field.
func (u *BidItemUpsertBulk) SetContractID(v uuid.UUID) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetContractID(v)
	})
}

// UpdateContractID sets the "contract_id" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateContractID() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateContractID()
	})
}

// SetItemNumber sets the "item_number" field.
func (u *BidItemUpsertBulk) SetItemNumber(v string) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetItemNumber(v)
	})
}

// UpdateItemNumber sets the "item_number" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateItemNumber() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateItemNumber()
	})
}

// ClearItemNumber clears the value of the "item_number" field.
func (u *BidItemUpsertBulk) ClearItemNumber() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearItemNumber()
	})
}

// SetItemCode sets the "item_code" field.
func (u *BidItemUpsertBulk) SetItemCode(v string) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetItemCode(v)
	})
}

// UpdateItemCode sets the "item_code" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateItemCode() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateItemCode()
	})
}

// ClearItemCode clears the value of the "item_code" field.
func (u *BidItemUpsertBulk) ClearItemCode() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearItemCode()
	})
}

// SetDescription sets the "description" field.
func (u *BidItemUpsertBulk) SetDescription(v string) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateDescription() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *BidItemUpsertBulk) ClearDescription() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearDescription()
	})
}

// SetQuantity sets the "quantity" field.
func (u *BidItemUpsertBulk) SetQuantity(v float64) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *BidItemUpsertBulk) AddQuantity(v float64) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateQuantity() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateQuantity()
	})
}

// ClearQuantity clears the value of the "quantity" field.
func (u *BidItemUpsertBulk) ClearQuantity() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearQuantity()
	})
}

// SetUnit sets the "unit" field.
func (u *BidItemUpsertBulk) SetUnit(v string) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetUnit(v)
	})
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateUnit() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateUnit()
	})
}

// ClearUnit clears the value of the "unit" field.
func (u *BidItemUpsertBulk) ClearUnit() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearUnit()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *BidItemUpsertBulk) SetUnitPrice(v float64) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *BidItemUpsertBulk) AddUnitPrice(v float64) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateUnitPrice() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (u *BidItemUpsertBulk) ClearUnitPrice() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearUnitPrice()
	})
}

// SetTotalPrice sets the "total_price" field.
func (u *BidItemUpsertBulk) SetTotalPrice(v float64) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetTotalPrice(v)
	})
}

// AddTotalPrice adds v to the "total_price" field.
func (u *BidItemUpsertBulk) AddTotalPrice(v float64) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.AddTotalPrice(v)
	})
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateTotalPrice() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateTotalPrice()
	})
}

// ClearTotalPrice clears the value of the "total_price" field.
func (u *BidItemUpsertBulk) ClearTotalPrice() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearTotalPrice()
	})
}

// SetBidderName sets the "bidder_name" field.
func (u *BidItemUpsertBulk) SetBidderName(v string) *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.SetBidderName(v)
	})
}

// UpdateBidderName sets the "bidder_name" field to the value that was provided on create.
func (u *BidItemUpsertBulk) UpdateBidderName() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.UpdateBidderName()
	})
}

// ClearBidderName clears the value of the "bidder_name" field.
func (u *BidItemUpsertBulk) ClearBidderName() *BidItemUpsertBulk {
	return u.Update(func(s *BidItemUpsert) {
		s.ClearBidderName()
	})
}

// Exec executes the query.
func (u *BidItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BidItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BidItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BidItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
