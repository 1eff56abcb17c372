// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/bidder"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/biditem"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/google/uuid"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContractNumber sets the "contract_number" field.
func (_c *ContractCreate) SetContractNumber(v string) *ContractCreate {
	_c.mutation.SetContractNumber(v)
	return _c
}

// SetWbsElement sets the "wbs_element" field.
func (_c *ContractCreate) SetWbsElement(v string) *ContractCreate {
	_c.mutation.SetWbsElement(v)
	return _c
}

// SetNillableWbsElement sets the "wbs_element" field if the given value is not nil.
func (_c *ContractCreate) SetNillableWbsElement(v *string) *ContractCreate {
	if v != nil {
		_c.SetWbsElement(*v)
	}
	return _c
}

// SetCounties sets the "counties" field.
func (_c *ContractCreate) SetCounties(v string) *ContractCreate {
	_c.mutation.SetCounties(v)
	return _c
}

// SetNillableCounties sets the "counties" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCounties(v *string) *ContractCreate {
	if v != nil {
		_c.SetCounties(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ContractCreate) SetDescription(v string) *ContractCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ContractCreate) SetNillableDescription(v *string) *ContractCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDateAvailable sets the "date_available" field.
func (_c *ContractCreate) SetDateAvailable(v time.Time) *ContractCreate {
	_c.mutation.SetDateAvailable(v)
	return _c
}

// SetNillableDateAvailable sets the "date_available" field if the given value is not nil.
func (_c *ContractCreate) SetNillableDateAvailable(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetDateAvailable(*v)
	}
	return _c
}

// SetCompletionDate sets the "completion_date" field.
func (_c *ContractCreate) SetCompletionDate(v time.Time) *ContractCreate {
	_c.mutation.SetCompletionDate(v)
	return _c
}

// SetNillableCompletionDate sets the "completion_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCompletionDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCompletionDate(*v)
	}
	return _c
}

// SetMbeGoal sets the "mbe_goal" field.
func (_c *ContractCreate) SetMbeGoal(v float64) *ContractCreate {
	_c.mutation.SetMbeGoal(v)
	return _c
}

// SetNillableMbeGoal sets the "mbe_goal" field if the given value is not nil.
func (_c *ContractCreate) SetNillableMbeGoal(v *float64) *ContractCreate {
	if v != nil {
		_c.SetMbeGoal(*v)
	}
	return _c
}

// SetWbeGoal sets the "wbe_goal" field.
func (_c *ContractCreate) SetWbeGoal(v float64) *ContractCreate {
	_c.mutation.SetWbeGoal(v)
	return _c
}

// SetNillableWbeGoal sets the "wbe_goal" field if the given value is not nil.
func (_c *ContractCreate) SetNillableWbeGoal(v *float64) *ContractCreate {
	if v != nil {
		_c.SetWbeGoal(*v)
	}
	return _c
}

// SetCombinedGoal sets the "combined_goal" field.
func (_c *ContractCreate) SetCombinedGoal(v float64) *ContractCreate {
	_c.mutation.SetCombinedGoal(v)
	return _c
}

// SetNillableCombinedGoal sets the "combined_goal" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCombinedGoal(v *float64) *ContractCreate {
	if v != nil {
		_c.SetCombinedGoal(*v)
	}
	return _c
}

// SetBidOpeningDate sets the "bid_opening_date" field.
func (_c *ContractCreate) SetBidOpeningDate(v time.Time) *ContractCreate {
	_c.mutation.SetBidOpeningDate(v)
	return _c
}

// SetNillableBidOpeningDate sets the "bid_opening_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableBidOpeningDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetBidOpeningDate(*v)
	}
	return _c
}

// SetProposalLength sets the "proposal_length" field.
func (_c *ContractCreate) SetProposalLength(v float64) *ContractCreate {
	_c.mutation.SetProposalLength(v)
	return _c
}

// SetNillableProposalLength sets the "proposal_length" field if the given value is not nil.
func (_c *ContractCreate) SetNillableProposalLength(v *float64) *ContractCreate {
	if v != nil {
		_c.SetProposalLength(*v)
	}
	return _c
}

// SetTypeOfWork sets the "type_of_work" field.
func (_c *ContractCreate) SetTypeOfWork(v string) *ContractCreate {
	_c.mutation.SetTypeOfWork(v)
	return _c
}

// SetNillableTypeOfWork sets the "type_of_work" field if the given value is not nil.
func (_c *ContractCreate) SetNillableTypeOfWork(v *string) *ContractCreate {
	if v != nil {
		_c.SetTypeOfWork(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *ContractCreate) SetLocation(v string) *ContractCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *ContractCreate) SetNillableLocation(v *string) *ContractCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_c *ContractCreate) SetEstimatedCost(v float64) *ContractCreate {
	_c.mutation.SetEstimatedCost(v)
	return _c
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_c *ContractCreate) SetNillableEstimatedCost(v *float64) *ContractCreate {
	if v != nil {
		_c.SetEstimatedCost(*v)
	}
	return _c
}

// SetAwardedAmount sets the "awarded_amount" field.
func (_c *ContractCreate) SetAwardedAmount(v float64) *ContractCreate {
	_c.mutation.SetAwardedAmount(v)
	return _c
}

// SetNillableAwardedAmount sets the "awarded_amount" field if the given value is not nil.
func (_c *ContractCreate) SetNillableAwardedAmount(v *float64) *ContractCreate {
	if v != nil {
		_c.SetAwardedAmount(*v)
	}
	return _c
}

// SetAwardedTo sets the "awarded_to" field.
func (_c *ContractCreate) SetAwardedTo(v string) *ContractCreate {
	_c.mutation.SetAwardedTo(v)
	return _c
}

// SetNillableAwardedTo sets the "awarded_to" field if the given value is not nil.
func (_c *ContractCreate) SetNillableAwardedTo(v *string) *ContractCreate {
	if v != nil {
		_c.SetAwardedTo(*v)
	}
	return _c
}

// SetAwardDate sets the "award_date" field.
func (_c *ContractCreate) SetAwardDate(v time.Time) *ContractCreate {
	_c.mutation.SetAwardDate(v)
	return _c
}

// SetNillableAwardDate sets the "award_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableAwardDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetAwardDate(*v)
	}
	return _c
}

// SetSourceFilePath sets the "source_file_path" field.
func (_c *ContractCreate) SetSourceFilePath(v string) *ContractCreate {
	_c.mutation.SetSourceFilePath(v)
	return _c
}

// SetNillableSourceFilePath sets the "source_file_path" field if the given value is not nil.
func (_c *ContractCreate) SetNillableSourceFilePath(v *string) *ContractCreate {
	if v != nil {
		_c.SetSourceFilePath(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBidderIDs adds the "bidders" edge to the Bidder entity by IDs.
func (_c *ContractCreate) AddBidderIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddBidderIDs(ids...)
	return _c
}

// AddBidders adds the "bidders" edges to the Bidder entity.
func (_c *ContractCreate) AddBidders(v ...*Bidder) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBidderIDs(ids...)
}

// AddBidItemIDs adds the "bid_items" edge to the BidItem entity by IDs.
func (_c *ContractCreate) AddBidItemIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddBidItemIDs(ids...)
	return _c
}

// AddBidItems adds the "bid_items" edges to the BidItem entity.
func (_c *ContractCreate) AddBidItems(v ...*BidItem) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBidItemIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.ContractNumber(); !ok {
		return &ValidationError{Name: "contract_number", err: errors.New(`ent: missing required field "Contract.contract_number"`)}
	}
	if v, ok := _c.mutation.ContractNumber(); ok {
		if err := contract.ContractNumberValidator(v); err != nil {
			return &ValidationError{Name: "contract_number", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContractNumber(); ok {
		_spec.SetField(contract.FieldContractNumber, field.TypeString, value)
		_node.ContractNumber = value
	}
	if value, ok := _c.mutation.WbsElement(); ok {
		_spec.SetField(contract.FieldWbsElement, field.TypeString, value)
		_node.WbsElement = &value
	}
	if value, ok := _c.mutation.Counties(); ok {
		_spec.SetField(contract.FieldCounties, field.TypeString, value)
		_node.Counties = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(contract.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DateAvailable(); ok {
		_spec.SetField(contract.FieldDateAvailable, field.TypeTime, value)
		_node.DateAvailable = &value
	}
	if value, ok := _c.mutation.CompletionDate(); ok {
		_spec.SetField(contract.FieldCompletionDate, field.TypeTime, value)
		_node.CompletionDate = &value
	}
	if value, ok := _c.mutation.MbeGoal(); ok {
		_spec.SetField(contract.FieldMbeGoal, field.TypeFloat64, value)
		_node.MbeGoal = &value
	}
	if value, ok := _c.mutation.WbeGoal(); ok {
		_spec.SetField(contract.FieldWbeGoal, field.TypeFloat64, value)
		_node.WbeGoal = &value
	}
	if value, ok := _c.mutation.CombinedGoal(); ok {
		_spec.SetField(contract.FieldCombinedGoal, field.TypeFloat64, value)
		_node.CombinedGoal = &value
	}
	if value, ok := _c.mutation.BidOpeningDate(); ok {
		_spec.SetField(contract.FieldBidOpeningDate, field.TypeTime, value)
		_node.BidOpeningDate = &value
	}
	if value, ok := _c.mutation.ProposalLength(); ok {
		_spec.SetField(contract.FieldProposalLength, field.TypeFloat64, value)
		_node.ProposalLength = &value
	}
	if value, ok := _c.mutation.TypeOfWork(); ok {
		_spec.SetField(contract.FieldTypeOfWork, field.TypeString, value)
		_node.TypeOfWork = &value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(contract.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.EstimatedCost(); ok {
		_spec.SetField(contract.FieldEstimatedCost, field.TypeFloat64, value)
		_node.EstimatedCost = &value
	}
	if value, ok := _c.mutation.AwardedAmount(); ok {
		_spec.SetField(contract.FieldAwardedAmount, field.TypeFloat64, value)
		_node.AwardedAmount = &value
	}
	if value, ok := _c.mutation.AwardedTo(); ok {
		_spec.SetField(contract.FieldAwardedTo, field.TypeString, value)
		_node.AwardedTo = &value
	}
	if value, ok := _c.mutation.AwardDate(); ok {
		_spec.SetField(contract.FieldAwardDate, field.TypeTime, value)
		_node.AwardDate = &value
	}
	if value, ok := _c.mutation.SourceFilePath(); ok {
		_spec.SetField(contract.FieldSourceFilePath, field.TypeString, value)
		_node.SourceFilePath = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BiddersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.BiddersTable,
			Columns: []string{contract.BiddersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bidder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BidItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.BidItemsTable,
			Columns: []string{contract.BidItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biditem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contract.Create().
//		SetContractNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContractUpsert) {
//			SetContractNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *ContractCreate) OnConflict(opts ...sql.ConflictOption) *ContractUpsertOne {
	_c.conflict = opts
	return &ContractUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContractCreate) OnConflictColumns(columns ...string) *ContractUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContractUpsertOne{
		create: _c,
	}
}

type (
	// ContractUpsertOne is the builder for "upsert"-ing
	//  one Contract node.
	ContractUpsertOne struct {
		create *ContractCreate
	}

	// ContractUpsert is the "OnConflict" setter.
	ContractUpsert struct {
		*sql.UpdateSet
	}
)

// SetContractNumber sets the "contract_number" field.
func (u *ContractUpsert) SetContractNumber(v string) *ContractUpsert {
	u.Set(contract.FieldContractNumber, v)
	return u
}

// UpdateContractNumber sets the "contract_number" field to the value that was provided on create.
func (u *ContractUpsert) UpdateContractNumber() *ContractUpsert {
	u.SetExcluded(contract.FieldContractNumber)
	return u
}

// SetWbsElement sets the "wbs_element" field.
func (u *ContractUpsert) SetWbsElement(v string) *ContractUpsert {
	u.Set(contract.FieldWbsElement, v)
	return u
}

// UpdateWbsElement sets the "wbs_element" field to the value that was provided on create.
func (u *ContractUpsert) UpdateWbsElement() *ContractUpsert {
	u.SetExcluded(contract.FieldWbsElement)
	return u
}

// ClearWbsElement clears the value of the "wbs_element" field.
func (u *ContractUpsert) ClearWbsElement() *ContractUpsert {
	u.SetNull(contract.FieldWbsElement)
	return u
}

// SetCounties sets the "counties" field.
func (u *ContractUpsert) SetCounties(v string) *ContractUpsert {
	u.Set(contract.FieldCounties, v)
	return u
}

// UpdateCounties sets the "counties" field to the value that was provided on create.
func (u *ContractUpsert) UpdateCounties() *ContractUpsert {
	u.SetExcluded(contract.FieldCounties)
	return u
}

// ClearCounties clears the value of the "counties" field.
func (u *ContractUpsert) ClearCounties() *ContractUpsert {
	u.SetNull(contract.FieldCounties)
	return u
}

// SetDescription sets the "description" field.
func (u *ContractUpsert) SetDescription(v string) *ContractUpsert {
	u.Set(contract.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ContractUpsert) UpdateDescription() *ContractUpsert {
	u.SetExcluded(contract.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ContractUpsert) ClearDescription() *ContractUpsert {
	u.SetNull(contract.FieldDescription)
	return u
}

// SetDateAvailable sets the "date_available" field.
func (u *ContractUpsert) SetDateAvailable(v time.Time) *ContractUpsert {
	u.Set(contract.FieldDateAvailable, v)
	return u
}

// UpdateDateAvailable sets the "date_available" field to the value that was provided on create.
func (u *ContractUpsert) UpdateDateAvailable() *ContractUpsert {
	u.SetExcluded(contract.FieldDateAvailable)
	return u
}

// ClearDateAvailable clears the value of the "date_available" field.
func (u *ContractUpsert) ClearDateAvailable() *ContractUpsert {
	u.SetNull(contract.FieldDateAvailable)
	return u
}

// SetCompletionDate sets the "completion_date" field.
func (u *ContractUpsert) SetCompletionDate(v time.Time) *ContractUpsert {
	u.Set(contract.FieldCompletionDate, v)
	return u
}

// UpdateCompletionDate sets the "completion_date" field to the value that was provided on create.
func (u *ContractUpsert) UpdateCompletionDate() *ContractUpsert {
	u.SetExcluded(contract.FieldCompletionDate)
	return u
}

// ClearCompletionDate clears the value of the "completion_date" field.
func (u *ContractUpsert) ClearCompletionDate() *ContractUpsert {
	u.SetNull(contract.FieldCompletionDate)
	return u
}

// SetMbeGoal sets the "mbe_goal" field.
func (u *ContractUpsert) SetMbeGoal(v float64) *ContractUpsert {
	u.Set(contract.FieldMbeGoal, v)
	return u
}

// UpdateMbeGoal sets the "mbe_goal" field to the value that was provided on create.
func (u *ContractUpsert) UpdateMbeGoal() *ContractUpsert {
	u.SetExcluded(contract.FieldMbeGoal)
	return u
}

// AddMbeGoal adds v to the "mbe_goal" field.
func (u *ContractUpsert) AddMbeGoal(v float64) *ContractUpsert {
	u.Add(contract.FieldMbeGoal, v)
	return u
}

// ClearMbeGoal clears the value of the "mbe_goal" field.
func (u *ContractUpsert) ClearMbeGoal() *ContractUpsert {
	u.SetNull(contract.FieldMbeGoal)
	return u
}

// SetWbeGoal sets the "wbe_goal" field.
func (u *ContractUpsert) SetWbeGoal(v float64) *ContractUpsert {
	u.Set(contract.FieldWbeGoal, v)
	return u
}

// UpdateWbeGoal sets the "wbe_goal" field to the value that was provided on create.
func (u *ContractUpsert) UpdateWbeGoal() *ContractUpsert {
	u.SetExcluded(contract.FieldWbeGoal)
	return u
}

// AddWbeGoal adds v to the "wbe_goal" field.
func (u *ContractUpsert) AddWbeGoal(v float64) *ContractUpsert {
	u.Add(contract.FieldWbeGoal, v)
	return u
}

// ClearWbeGoal clears the value of the "wbe_goal" field.
func (u *ContractUpsert) ClearWbeGoal() *ContractUpsert {
	u.SetNull(contract.FieldWbeGoal)
	return u
}

// SetCombinedGoal sets the "combined_goal" field.
func (u *ContractUpsert) SetCombinedGoal(v float64) *ContractUpsert {
	u.Set(contract.FieldCombinedGoal, v)
	return u
}

// UpdateCombinedGoal sets the "combined_goal" field to the value that was provided on create.
func (u *ContractUpsert) UpdateCombinedGoal() *ContractUpsert {
	u.SetExcluded(contract.FieldCombinedGoal)
	return u
}

// AddCombinedGoal adds v to the "combined_goal" field.
func (u *ContractUpsert) AddCombinedGoal(v float64) *ContractUpsert {
	u.Add(contract.FieldCombinedGoal, v)
	return u
}

// ClearCombinedGoal clears the value of the "combined_goal" field.
func (u *ContractUpsert) ClearCombinedGoal() *ContractUpsert {
	u.SetNull(contract.FieldCombinedGoal)
	return u
}

// SetBidOpeningDate sets the "bid_opening_date" field.
func (u *ContractUpsert) SetBidOpeningDate(v time.Time) *ContractUpsert {
	u.Set(contract.FieldBidOpeningDate, v)
	return u
}

// UpdateBidOpeningDate sets the "bid_opening_date" field to the value that was provided on create.
func (u *ContractUpsert) UpdateBidOpeningDate() *ContractUpsert {
	u.SetExcluded(contract.FieldBidOpeningDate)
	return u
}

// ClearBidOpeningDate clears the value of the "bid_opening_date" field.
func (u *ContractUpsert) ClearBidOpeningDate() *ContractUpsert {
	u.SetNull(contract.FieldBidOpeningDate)
	return u
}

// SetProposalLength sets the "proposal_length" field.
func (u *ContractUpsert) SetProposalLength(v float64) *ContractUpsert {
	u.Set(contract.FieldProposalLength, v)
	return u
}

// UpdateProposalLength sets the "proposal_length" field to the value that was provided on create.
func (u *ContractUpsert) UpdateProposalLength() *ContractUpsert {
	u.SetExcluded(contract.FieldProposalLength)
	return u
}

// AddProposalLength adds v to the "proposal_length" field.
func (u *ContractUpsert) AddProposalLength(v float64) *ContractUpsert {
	u.Add(contract.FieldProposalLength, v)
	return u
}

// ClearProposalLength clears the value of the "proposal_length" field.
func (u *ContractUpsert) ClearProposalLength() *ContractUpsert {
	u.SetNull(contract.FieldProposalLength)
	return u
}

// SetTypeOfWork sets the "type_of_work" field.
func (u *ContractUpsert) SetTypeOfWork(v string) *ContractUpsert {
	u.Set(contract.FieldTypeOfWork, v)
	return u
}

// UpdateTypeOfWork sets the "type_of_work" field to the value that was provided on create.
func (u *ContractUpsert) UpdateTypeOfWork() *ContractUpsert {
	u.SetExcluded(contract.FieldTypeOfWork)
	return u
}

// ClearTypeOfWork clears the value of the "type_of_work" field.
func (u *ContractUpsert) ClearTypeOfWork() *ContractUpsert {
	u.SetNull(contract.FieldTypeOfWork)
	return u
}

// SetLocation sets the "location" field.
func (u *ContractUpsert) SetLocation(v string) *ContractUpsert {
	u.Set(contract.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ContractUpsert) UpdateLocation() *ContractUpsert {
	u.SetExcluded(contract.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *ContractUpsert) ClearLocation() *ContractUpsert {
	u.SetNull(contract.FieldLocation)
	return u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (u *ContractUpsert) SetEstimatedCost(v float64) *ContractUpsert {
	u.Set(contract.FieldEstimatedCost, v)
	return u
}

// UpdateEstimatedCost sets the "estimated_cost" field to the value that was provided on create.
func (u *ContractUpsert) UpdateEstimatedCost() *ContractUpsert {
	u.SetExcluded(contract.FieldEstimatedCost)
	return u
}

// AddEstimatedCost adds v to the "estimated_cost" field.
func (u *ContractUpsert) AddEstimatedCost(v float64) *ContractUpsert {
	u.Add(contract.FieldEstimatedCost, v)
	return u
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (u *ContractUpsert) ClearEstimatedCost() *ContractUpsert {
	u.SetNull(contract.FieldEstimatedCost)
	return u
}

// SetAwardedAmount sets the "awarded_amount" field.
func (u *ContractUpsert) SetAwardedAmount(v float64) *ContractUpsert {
	u.Set(contract.FieldAwardedAmount, v)
	return u
}

// UpdateAwardedAmount sets the "awarded_amount" field to the value that was provided on create.
func (u *ContractUpsert) UpdateAwardedAmount() *ContractUpsert {
	u.SetExcluded(contract.FieldAwardedAmount)
	return u
}

// AddAwardedAmount adds v to the "awarded_amount" field.
func (u *ContractUpsert) AddAwardedAmount(v float64) *ContractUpsert {
	u.Add(contract.FieldAwardedAmount, v)
	return u
}

// ClearAwardedAmount clears the value of the "awarded_amount" field.
func (u *ContractUpsert) ClearAwardedAmount() *ContractUpsert {
	u.SetNull(contract.FieldAwardedAmount)
	return u
}

// SetAwardedTo sets the "awarded_to" field.
func (u *ContractUpsert) SetAwardedTo(v string) *ContractUpsert {
	u.Set(contract.FieldAwardedTo, v)
	return u
}

// UpdateAwardedTo sets the "awarded_to" field to the value that was provided on create.
func (u *ContractUpsert) UpdateAwardedTo() *ContractUpsert {
	u.SetExcluded(contract.FieldAwardedTo)
	return u
}

// ClearAwardedTo clears the value of the "awarded_to" field.
func (u *ContractUpsert) ClearAwardedTo() *ContractUpsert {
	u.SetNull(contract.FieldAwardedTo)
	return u
}

// SetAwardDate sets the "award_date" field.
func (u *ContractUpsert) SetAwardDate(v time.Time) *ContractUpsert {
	u.Set(contract.FieldAwardDate, v)
	return u
}

// UpdateAwardDate sets the "award_date" field to the value that was provided on create.
func (u *ContractUpsert) UpdateAwardDate() *ContractUpsert {
	u.SetExcluded(contract.FieldAwardDate)
	return u
}

// ClearAwardDate clears the value of the "award_date" field.
func (u *ContractUpsert) ClearAwardDate() *ContractUpsert {
	u.SetNull(contract.FieldAwardDate)
	return u
}

// SetSourceFilePath sets the "source_file_path" field.
func (u *ContractUpsert) SetSourceFilePath(v string) *ContractUpsert {
	u.Set(contract.FieldSourceFilePath, v)
	return u
}

// UpdateSourceFilePath sets the "source_file_path" field to the value that was provided on create.
func (u *ContractUpsert) UpdateSourceFilePath() *ContractUpsert {
	u.SetExcluded(contract.FieldSourceFilePath)
	return u
}

// ClearSourceFilePath clears the value of the "source_file_path" field.
func (u *ContractUpsert) ClearSourceFilePath() *ContractUpsert {
	u.SetNull(contract.FieldSourceFilePath)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ContractUpsert) SetCreatedAt(v time.Time) *ContractUpsert {
	u.Set(contract.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ContractUpsert) UpdateCreatedAt() *ContractUpsert {
	u.SetExcluded(contract.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContractUpsert) SetUpdatedAt(v time.Time) *ContractUpsert {
	u.Set(contract.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContractUpsert) UpdateUpdatedAt() *ContractUpsert {
	u.SetExcluded(contract.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contract.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContractUpsertOne) UpdateNewValues() *ContractUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contract.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contract.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContractUpsertOne) Ignore() *ContractUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContractUpsertOne) DoNothing() *ContractUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContractCreate.OnConflict
// documentation for more info.
func (u *ContractUpsertOne) Update(set func(*ContractUpsert)) *ContractUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContractUpsert{UpdateSet: update})
	}))
	return u
}

// SetContractNumber sets the "contract_number" field.
func (u *ContractUpsertOne) SetContractNumber(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetContractNumber(v)
	})
}

// UpdateContractNumber sets the "contract_number" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateContractNumber() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateContractNumber()
	})
}

// SetWbsElement sets the "wbs_element" field.
func (u *ContractUpsertOne) SetWbsElement(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetWbsElement(v)
	})
}

// UpdateWbsElement sets the "wbs_element" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateWbsElement() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateWbsElement()
	})
}

// ClearWbsElement clears the value of the "wbs_element" field.
func (u *ContractUpsertOne) ClearWbsElement() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearWbsElement()
	})
}

// SetCounties sets the "counties" field.
func (u *ContractUpsertOne) SetCounties(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetCounties(v)
	})
}

// UpdateCounties sets the "counties" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateCounties() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateCounties()
	})
}

// ClearCounties clears the value of the "counties" field.
func (u *ContractUpsertOne) ClearCounties() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearCounties()
	})
}

// SetDescription sets the "description" field.
func (u *ContractUpsertOne) SetDescription(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateDescription() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ContractUpsertOne) ClearDescription() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearDescription()
	})
}

// SetDateAvailable sets the "date_available" field.
func (u *ContractUpsertOne) SetDateAvailable(v time.Time) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetDateAvailable(v)
	})
}

// UpdateDateAvailable sets the "date_available" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateDateAvailable() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateDateAvailable()
	})
}

// ClearDateAvailable clears the value of the "date_available" field.
func (u *ContractUpsertOne) ClearDateAvailable() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearDateAvailable()
	})
}

// SetCompletionDate sets the "completion_date" field.
func (u *ContractUpsertOne) SetCompletionDate(v time.Time) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetCompletionDate(v)
	})
}

// UpdateCompletionDate sets the "completion_date" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateCompletionDate() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateCompletionDate()
	})
}

// ClearCompletionDate clears the value of the "completion_date" field.
func (u *ContractUpsertOne) ClearCompletionDate() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearCompletionDate()
	})
}

// SetMbeGoal sets the "mbe_goal" field.
func (u *ContractUpsertOne) SetMbeGoal(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetMbeGoal(v)
	})
}

// AddMbeGoal adds v to the "mbe_goal" field.
func (u *ContractUpsertOne) AddMbeGoal(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.AddMbeGoal(v)
	})
}

// UpdateMbeGoal sets the "mbe_goal" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateMbeGoal() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateMbeGoal()
	})
}

// ClearMbeGoal clears the value of the "mbe_goal" field.
func (u *ContractUpsertOne) ClearMbeGoal() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearMbeGoal()
	})
}

// SetWbeGoal sets the "wbe_goal" field.
func (u *ContractUpsertOne) SetWbeGoal(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetWbeGoal(v)
	})
}

// AddWbeGoal adds v to the "wbe_goal" field.
func (u *ContractUpsertOne) AddWbeGoal(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.AddWbeGoal(v)
	})
}

// UpdateWbeGoal sets the "wbe_goal" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateWbeGoal() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateWbeGoal()
	})
}

// ClearWbeGoal clears the value of the "wbe_goal" field.
func (u *ContractUpsertOne) ClearWbeGoal() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearWbeGoal()
	})
}

// SetCombinedGoal sets the "combined_goal" field.
func (u *ContractUpsertOne) SetCombinedGoal(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetCombinedGoal(v)
	})
}

// AddCombinedGoal adds v to the "combined_goal" field.
func (u *ContractUpsertOne) AddCombinedGoal(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.AddCombinedGoal(v)
	})
}

// UpdateCombinedGoal sets the "combined_goal" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateCombinedGoal() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateCombinedGoal()
	})
}

// ClearCombinedGoal clears the value of the "combined_goal" field.
func (u *ContractUpsertOne) ClearCombinedGoal() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearCombinedGoal()
	})
}

// SetBidOpeningDate sets the "bid_opening_date" field.
func (u *ContractUpsertOne) SetBidOpeningDate(v time.Time) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetBidOpeningDate(v)
	})
}

// UpdateBidOpeningDate sets the "bid_opening_date" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateBidOpeningDate() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateBidOpeningDate()
	})
}

// ClearBidOpeningDate clears the value of the "bid_opening_date" field.
func (u *ContractUpsertOne) ClearBidOpeningDate() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearBidOpeningDate()
	})
}

// SetProposalLength sets the "proposal_length" field.
func (u *ContractUpsertOne) SetProposalLength(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetProposalLength(v)
	})
}

// AddProposalLength adds v to the "proposal_length" field.
func (u *ContractUpsertOne) AddProposalLength(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.AddProposalLength(v)
	})
}

// UpdateProposalLength sets the "proposal_length" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateProposalLength() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateProposalLength()
	})
}

// ClearProposalLength clears the value of the "proposal_length" field.
func (u *ContractUpsertOne) ClearProposalLength() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearProposalLength()
	})
}

// SetTypeOfWork sets the "type_of_work" field.
func (u *ContractUpsertOne) SetTypeOfWork(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetTypeOfWork(v)
	})
}

// UpdateTypeOfWork sets the "type_of_work" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateTypeOfWork() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateTypeOfWork()
	})
}

// ClearTypeOfWork clears the value of the "type_of_work" field.
func (u *ContractUpsertOne) ClearTypeOfWork() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearTypeOfWork()
	})
}

// SetLocation sets the "location" field.
func (u *ContractUpsertOne) SetLocation(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateLocation() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *ContractUpsertOne) ClearLocation() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearLocation()
	})
}

// SetEstimatedCost sets the "estimated_cost" field.
func (u *ContractUpsertOne) SetEstimatedCost(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetEstimatedCost(v)
	})
}

// AddEstimatedCost adds v to the "estimated_cost" field.
func (u *ContractUpsertOne) AddEstimatedCost(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.AddEstimatedCost(v)
	})
}

// UpdateEstimatedCost sets the "estimated_cost" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateEstimatedCost() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateEstimatedCost()
	})
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (u *ContractUpsertOne) ClearEstimatedCost() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearEstimatedCost()
	})
}

// SetAwardedAmount sets the "awarded_amount" field.
func (u *ContractUpsertOne) SetAwardedAmount(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetAwardedAmount(v)
	})
}

// AddAwardedAmount adds v to the "awarded_amount" field.
func (u *ContractUpsertOne) AddAwardedAmount(v float64) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.AddAwardedAmount(v)
	})
}

// UpdateAwardedAmount sets the "awarded_amount" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateAwardedAmount() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateAwardedAmount()
	})
}

// ClearAwardedAmount clears the value of the "awarded_amount" field.
func (u *ContractUpsertOne) ClearAwardedAmount() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearAwardedAmount()
	})
}

// SetAwardedTo sets the "awarded_to" field.
func (u *ContractUpsertOne) SetAwardedTo(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetAwardedTo(v)
	})
}

// UpdateAwardedTo sets the "awarded_to" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateAwardedTo() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateAwardedTo()
	})
}

// ClearAwardedTo clears the value of the "awarded_to" field.
func (u *ContractUpsertOne) ClearAwardedTo() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearAwardedTo()
	})
}

// SetAwardDate sets the "award_date" field.
func (u *ContractUpsertOne) SetAwardDate(v time.Time) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetAwardDate(v)
	})
}

// UpdateAwardDate sets the "award_date" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateAwardDate() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateAwardDate()
	})
}

// ClearAwardDate clears the value of the "award_date" field.
func (u *ContractUpsertOne) ClearAwardDate() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearAwardDate()
	})
}

// SetSourceFilePath sets the "source_file_path" field.
func (u *ContractUpsertOne) SetSourceFilePath(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetSourceFilePath(v)
	})
}

// UpdateSourceFilePath sets the "source_file_path" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateSourceFilePath() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateSourceFilePath()
	})
}

// ClearSourceFilePath clears the value of the "source_file_path" field.
func (u *ContractUpsertOne) ClearSourceFilePath() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearSourceFilePath()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ContractUpsertOne) SetCreatedAt(v time.Time) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateCreatedAt() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContractUpsertOne) SetUpdatedAt(v time.Time) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateUpdatedAt() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContractUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContractCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContractUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContractUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContractUpsertOne.ID is not supported by MySQL driver. Use ContractUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContractUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
	conflict []sql.ConflictOption
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contract.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContractUpsert) {
//			SetContractNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *ContractCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContractUpsertBulk {
	_c.conflict = opts
	return &ContractUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContractCreateBulk) OnConflictColumns(columns ...string) *ContractUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContractUpsertBulk{
		create: _c,
	}
}

// ContractUpsertBulk is the builder for "upsert"-ing
// a bulk of Contract nodes.
type ContractUpsertBulk struct {
	create *ContractCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contract.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContractUpsertBulk) UpdateNewValues() *ContractUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contract.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContractUpsertBulk) Ignore() *ContractUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContractUpsertBulk) DoNothing() *ContractUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContractCreateBulk.OnConflict
// documentation for more info.
func (u *ContractUpsertBulk) Update(set func(*ContractUpsert)) *ContractUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContractUpsert{UpdateSet: update})
	}))
	return u
}

// SetContractNumber sets the "contract_number" field.
func (u *ContractUpsertBulk) SetContractNumber(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetContractNumber(v)
	})
}

// UpdateContractNumber sets the "contract_number" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateContractNumber() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateContractNumber()
	})
}

// SetWbsElement sets the "wbs_element" field.
func (u *ContractUpsertBulk) SetWbsElement(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetWbsElement(v)
	})
}

// UpdateWbsElement sets the "wbs_element" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateWbsElement() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateWbsElement()
	})
}

// ClearWbsElement clears the value of the "wbs_element" field.
func (u *ContractUpsertBulk) ClearWbsElement() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearWbsElement()
	})
}

// SetCounties sets the "counties" field.
func (u *ContractUpsertBulk) SetCounties(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetCounties(v)
	})
}

// UpdateCounties sets the "counties" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateCounties() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateCounties()
	})
}

// ClearCounties clears the value of the "counties" field.
func (u *ContractUpsertBulk) ClearCounties() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearCounties()
	})
}

// SetDescription sets the "description" field.
func (u *ContractUpsertBulk) SetDescription(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateDescription() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ContractUpsertBulk) ClearDescription() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearDescription()
	})
}

// SetDateAvailable sets the "date_available" field.
func (u *ContractUpsertBulk) SetDateAvailable(v time.Time) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetDateAvailable(v)
	})
}

// UpdateDateAvailable sets the "date_available" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateDateAvailable() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateDateAvailable()
	})
}

// ClearDateAvailable clears the value of the "date_available" field.
func (u *ContractUpsertBulk) ClearDateAvailable() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearDateAvailable()
	})
}

// SetCompletionDate sets the "completion_date" field.
func (u *ContractUpsertBulk) SetCompletionDate(v time.Time) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetCompletionDate(v)
	})
}

// UpdateCompletionDate sets the "completion_date" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateCompletionDate() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateCompletionDate()
	})
}

// ClearCompletionDate clears the value of the "completion_date" field.
func (u *ContractUpsertBulk) ClearCompletionDate() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearCompletionDate()
	})
}

// SetMbeGoal sets the "mbe_goal" field.
func (u *ContractUpsertBulk) SetMbeGoal(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetMbeGoal(v)
	})
}

// AddMbeGoal adds v to the "mbe_goal" field.
func (u *ContractUpsertBulk) AddMbeGoal(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.AddMbeGoal(v)
	})
}

// UpdateMbeGoal sets the "mbe_goal" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateMbeGoal() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateMbeGoal()
	})
}

// ClearMbeGoal clears the value of the "mbe_goal" field.
func (u *ContractUpsertBulk) ClearMbeGoal() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearMbeGoal()
	})
}

// SetWbeGoal sets the "wbe_goal" field.
func (u *ContractUpsertBulk) SetWbeGoal(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetWbeGoal(v)
	})
}

// AddWbeGoal adds v to the "wbe_goal" field.
func (u *ContractUpsertBulk) AddWbeGoal(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.AddWbeGoal(v)
	})
}

// UpdateWbeGoal sets the "wbe_goal" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateWbeGoal() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateWbeGoal()
	})
}

// ClearWbeGoal clears the value of the "wbe_goal" field.
func (u *ContractUpsertBulk) ClearWbeGoal() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearWbeGoal()
	})
}

// SetCombinedGoal sets the "combined_goal" field.
func (u *ContractUpsertBulk) SetCombinedGoal(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetCombinedGoal(v)
	})
}

// AddCombinedGoal adds v to the "combined_goal" field.
func (u *ContractUpsertBulk) AddCombinedGoal(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.AddCombinedGoal(v)
	})
}

// UpdateCombinedGoal sets the "combined_goal" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateCombinedGoal() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateCombinedGoal()
	})
}

// ClearCombinedGoal clears the value of the "combined_goal" field.
func (u *ContractUpsertBulk) ClearCombinedGoal() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearCombinedGoal()
	})
}

// SetBidOpeningDate sets the "bid_opening_date" field.
func (u *ContractUpsertBulk) SetBidOpeningDate(v time.Time) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetBidOpeningDate(v)
	})
}

// UpdateBidOpeningDate sets the "bid_opening_date" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateBidOpeningDate() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateBidOpeningDate()
	})
}

// ClearBidOpeningDate clears the value of the "bid_opening_date" field.
func (u *ContractUpsertBulk) ClearBidOpeningDate() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearBidOpeningDate()
	})
}

// SetProposalLength sets the "proposal_length" field.
func (u *ContractUpsertBulk) SetProposalLength(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetProposalLength(v)
	})
}

// AddProposalLength adds v to the "proposal_length" field.
func (u *ContractUpsertBulk) AddProposalLength(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.AddProposalLength(v)
	})
}

// UpdateProposalLength sets the "proposal_length" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateProposalLength() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateProposalLength()
	})
}

// ClearProposalLength clears the value of the "proposal_length" field.
func (u *ContractUpsertBulk) ClearProposalLength() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearProposalLength()
	})
}

// SetTypeOfWork sets the "type_of_work" field.
func (u *ContractUpsertBulk) SetTypeOfWork(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetTypeOfWork(v)
	})
}

// UpdateTypeOfWork sets the "type_of_work" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateTypeOfWork() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateTypeOfWork()
	})
}

// ClearTypeOfWork clears the value of the "type_of_work" field.
func (u *ContractUpsertBulk) ClearTypeOfWork() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearTypeOfWork()
	})
}

// SetLocation sets the "location" field.
func (u *ContractUpsertBulk) SetLocation(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateLocation() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *ContractUpsertBulk) ClearLocation() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearLocation()
	})
}

// SetEstimatedCost sets the "estimated_cost" field.
func (u *ContractUpsertBulk) SetEstimatedCost(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetEstimatedCost(v)
	})
}

// AddEstimatedCost adds v to the "estimated_cost" field.
func (u *ContractUpsertBulk) AddEstimatedCost(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.AddEstimatedCost(v)
	})
}

// UpdateEstimatedCost sets the "estimated_cost" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateEstimatedCost() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateEstimatedCost()
	})
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (u *ContractUpsertBulk) ClearEstimatedCost() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearEstimatedCost()
	})
}

// SetAwardedAmount sets the "awarded_amount" field.
func (u *ContractUpsertBulk) SetAwardedAmount(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetAwardedAmount(v)
	})
}

// AddAwardedAmount adds v to the "awarded_amount" field.
func (u *ContractUpsertBulk) AddAwardedAmount(v float64) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.AddAwardedAmount(v)
	})
}

// UpdateAwardedAmount sets the "awarded_amount" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateAwardedAmount() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateAwardedAmount()
	})
}

// ClearAwardedAmount clears the value of the "awarded_amount" field.
func (u *ContractUpsertBulk) ClearAwardedAmount() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearAwardedAmount()
	})
}

// SetAwardedTo sets the "awarded_to" field.
func (u *ContractUpsertBulk) SetAwardedTo(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetAwardedTo(v)
	})
}

// UpdateAwardedTo sets the "awarded_to" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateAwardedTo() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateAwardedTo()
	})
}

// ClearAwardedTo clears the value of the "awarded_to" field.
func (u *ContractUpsertBulk) ClearAwardedTo() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearAwardedTo()
	})
}

// SetAwardDate sets the "award_date" field.
func (u *ContractUpsertBulk) SetAwardDate(v time.Time) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetAwardDate(v)
	})
}

// UpdateAwardDate sets the "award_date" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateAwardDate() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateAwardDate()
	})
}

// ClearAwardDate clears the value of the "award_date" field.
func (u *ContractUpsertBulk) ClearAwardDate() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearAwardDate()
	})
}

// SetSourceFilePath sets the "source_file_path" field.
func (u *ContractUpsertBulk) SetSourceFilePath(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetSourceFilePath(v)
	})
}

// UpdateSourceFilePath sets the "source_file_path" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateSourceFilePath() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateSourceFilePath()
	})
}

// ClearSourceFilePath clears the value of the "source_file_path" field.
func (u *ContractUpsertBulk) ClearSourceFilePath() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearSourceFilePath()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ContractUpsertBulk) SetCreatedAt(v time.Time) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateCreatedAt() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContractUpsertBulk) SetUpdatedAt(v time.Time) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateUpdatedAt() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContractUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContractCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContractCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContractUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
