// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/bidder"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/biditem"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractNumber sets the "contract_number" field.
func (_u *ContractUpdate) SetContractNumber(v string) *ContractUpdate {
	_u.mutation.SetContractNumber(v)
	return _u
}

// SetNillableContractNumber sets the "contract_number" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableContractNumber(v *string) *ContractUpdate {
	if v != nil {
		_u.SetContractNumber(*v)
	}
	return _u
}

// SetWbsElement sets the "wbs_element" field.
func (_u *ContractUpdate) SetWbsElement(v string) *ContractUpdate {
	_u.mutation.SetWbsElement(v)
	return _u
}

// SetNillableWbsElement sets the "wbs_element" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableWbsElement(v *string) *ContractUpdate {
	if v != nil {
		_u.SetWbsElement(*v)
	}
	return _u
}

// ClearWbsElement clears the value of the "wbs_element" field.
func (_u *ContractUpdate) ClearWbsElement() *ContractUpdate {
	_u.mutation.ClearWbsElement()
	return _u
}

// SetCounties sets the "counties" field.
func (_u *ContractUpdate) SetCounties(v string) *ContractUpdate {
	_u.mutation.SetCounties(v)
	return _u
}

// SetNillableCounties sets the "counties" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCounties(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCounties(*v)
	}
	return _u
}

// ClearCounties clears the value of the "counties" field.
func (_u *ContractUpdate) ClearCounties() *ContractUpdate {
	_u.mutation.ClearCounties()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContractUpdate) SetDescription(v string) *ContractUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDescription(v *string) *ContractUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContractUpdate) ClearDescription() *ContractUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDateAvailable sets the "date_available" field.
func (_u *ContractUpdate) SetDateAvailable(v time.Time) *ContractUpdate {
	_u.mutation.SetDateAvailable(v)
	return _u
}

// SetNillableDateAvailable sets the "date_available" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDateAvailable(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetDateAvailable(*v)
	}
	return _u
}

// ClearDateAvailable clears the value of the "date_available" field.
func (_u *ContractUpdate) ClearDateAvailable() *ContractUpdate {
	_u.mutation.ClearDateAvailable()
	return _u
}

// SetCompletionDate sets the "completion_date" field.
func (_u *ContractUpdate) SetCompletionDate(v time.Time) *ContractUpdate {
	_u.mutation.SetCompletionDate(v)
	return _u
}

// SetNillableCompletionDate sets the "completion_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCompletionDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCompletionDate(*v)
	}
	return _u
}

// ClearCompletionDate clears the value of the "completion_date" field.
func (_u *ContractUpdate) ClearCompletionDate() *ContractUpdate {
	_u.mutation.ClearCompletionDate()
	return _u
}

// SetMbeGoal sets the "mbe_goal" field.
func (_u *ContractUpdate) SetMbeGoal(v float64) *ContractUpdate {
	_u.mutation.ResetMbeGoal()
	_u.mutation.SetMbeGoal(v)
	return _u
}

// SetNillableMbeGoal sets the "mbe_goal" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableMbeGoal(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetMbeGoal(*v)
	}
	return _u
}

// AddMbeGoal adds value to the "mbe_goal" field.
func (_u *ContractUpdate) AddMbeGoal(v float64) *ContractUpdate {
	_u.mutation.AddMbeGoal(v)
	return _u
}

// ClearMbeGoal clears the value of the "mbe_goal" field.
func (_u *ContractUpdate) ClearMbeGoal() *ContractUpdate {
	_u.mutation.ClearMbeGoal()
	return _u
}

// SetWbeGoal sets the "wbe_goal" field.
func (_u *ContractUpdate) SetWbeGoal(v float64) *ContractUpdate {
	_u.mutation.ResetWbeGoal()
	_u.mutation.SetWbeGoal(v)
	return _u
}

// SetNillableWbeGoal sets the "wbe_goal" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableWbeGoal(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetWbeGoal(*v)
	}
	return _u
}

// AddWbeGoal adds value to the "wbe_goal" field.
func (_u *ContractUpdate) AddWbeGoal(v float64) *ContractUpdate {
	_u.mutation.AddWbeGoal(v)
	return _u
}

// ClearWbeGoal clears the value of the "wbe_goal" field.
func (_u *ContractUpdate) ClearWbeGoal() *ContractUpdate {
	_u.mutation.ClearWbeGoal()
	return _u
}

// SetCombinedGoal sets the "combined_goal" field.
func (_u *ContractUpdate) SetCombinedGoal(v float64) *ContractUpdate {
	_u.mutation.ResetCombinedGoal()
	_u.mutation.SetCombinedGoal(v)
	return _u
}

// SetNillableCombinedGoal sets the "combined_goal" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCombinedGoal(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetCombinedGoal(*v)
	}
	return _u
}

// AddCombinedGoal adds value to the "combined_goal" field.
func (_u *ContractUpdate) AddCombinedGoal(v float64) *ContractUpdate {
	_u.mutation.AddCombinedGoal(v)
	return _u
}

// ClearCombinedGoal clears the value of the "combined_goal" field.
func (_u *ContractUpdate) ClearCombinedGoal() *ContractUpdate {
	_u.mutation.ClearCombinedGoal()
	return _u
}

// SetBidOpeningDate sets the "bid_opening_date" field.
func (_u *ContractUpdate) SetBidOpeningDate(v time.Time) *ContractUpdate {
	_u.mutation.SetBidOpeningDate(v)
	return _u
}

// SetNillableBidOpeningDate sets the "bid_opening_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableBidOpeningDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetBidOpeningDate(*v)
	}
	return _u
}

// ClearBidOpeningDate clears the value of the "bid_opening_date" field.
func (_u *ContractUpdate) ClearBidOpeningDate() *ContractUpdate {
	_u.mutation.ClearBidOpeningDate()
	return _u
}

// SetProposalLength sets the "proposal_length" field.
func (_u *ContractUpdate) SetProposalLength(v float64) *ContractUpdate {
	_u.mutation.ResetProposalLength()
	_u.mutation.SetProposalLength(v)
	return _u
}

// SetNillableProposalLength sets the "proposal_length" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableProposalLength(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetProposalLength(*v)
	}
	return _u
}

// AddProposalLength adds value to the "proposal_length" field.
func (_u *ContractUpdate) AddProposalLength(v float64) *ContractUpdate {
	_u.mutation.AddProposalLength(v)
	return _u
}

// ClearProposalLength clears the value of the "proposal_length" field.
func (_u *ContractUpdate) ClearProposalLength() *ContractUpdate {
	_u.mutation.ClearProposalLength()
	return _u
}

// SetTypeOfWork sets the "type_of_work" field.
func (_u *ContractUpdate) SetTypeOfWork(v string) *ContractUpdate {
	_u.mutation.SetTypeOfWork(v)
	return _u
}

// SetNillableTypeOfWork sets the "type_of_work" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTypeOfWork(v *string) *ContractUpdate {
	if v != nil {
		_u.SetTypeOfWork(*v)
	}
	return _u
}

// ClearTypeOfWork clears the value of the "type_of_work" field.
func (_u *ContractUpdate) ClearTypeOfWork() *ContractUpdate {
	_u.mutation.ClearTypeOfWork()
	return _u
}

// SetLocation sets the "location" field.
func (_u *ContractUpdate) SetLocation(v string) *ContractUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableLocation(v *string) *ContractUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ContractUpdate) ClearLocation() *ContractUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *ContractUpdate) SetEstimatedCost(v float64) *ContractUpdate {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableEstimatedCost(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *ContractUpdate) AddEstimatedCost(v float64) *ContractUpdate {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (_u *ContractUpdate) ClearEstimatedCost() *ContractUpdate {
	_u.mutation.ClearEstimatedCost()
	return _u
}

// SetAwardedAmount sets the "awarded_amount" field.
func (_u *ContractUpdate) SetAwardedAmount(v float64) *ContractUpdate {
	_u.mutation.ResetAwardedAmount()
	_u.mutation.SetAwardedAmount(v)
	return _u
}

// SetNillableAwardedAmount sets the "awarded_amount" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableAwardedAmount(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetAwardedAmount(*v)
	}
	return _u
}

// AddAwardedAmount adds value to the "awarded_amount" field.
func (_u *ContractUpdate) AddAwardedAmount(v float64) *ContractUpdate {
	_u.mutation.AddAwardedAmount(v)
	return _u
}

// ClearAwardedAmount clears the value of the "awarded_amount" field.
func (_u *ContractUpdate) ClearAwardedAmount() *ContractUpdate {
	_u.mutation.ClearAwardedAmount()
	return _u
}

// SetAwardedTo sets the "awarded_to" field.
func (_u *ContractUpdate) SetAwardedTo(v string) *ContractUpdate {
	_u.mutation.SetAwardedTo(v)
	return _u
}

// SetNillableAwardedTo sets the "awarded_to" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableAwardedTo(v *string) *ContractUpdate {
	if v != nil {
		_u.SetAwardedTo(*v)
	}
	return _u
}

// ClearAwardedTo clears the value of the "awarded_to" field.
func (_u *ContractUpdate) ClearAwardedTo() *ContractUpdate {
	_u.mutation.ClearAwardedTo()
	return _u
}

// SetAwardDate sets the "award_date" field.
func (_u *ContractUpdate) SetAwardDate(v time.Time) *ContractUpdate {
	_u.mutation.SetAwardDate(v)
	return _u
}

// SetNillableAwardDate sets the "award_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableAwardDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetAwardDate(*v)
	}
	return _u
}

// ClearAwardDate clears the value of the "award_date" field.
func (_u *ContractUpdate) ClearAwardDate() *ContractUpdate {
	_u.mutation.ClearAwardDate()
	return _u
}

// SetSourceFilePath sets the "source_file_path" field.
func (_u *ContractUpdate) SetSourceFilePath(v string) *ContractUpdate {
	_u.mutation.SetSourceFilePath(v)
	return _u
}

// SetNillableSourceFilePath sets the "source_file_path" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableSourceFilePath(v *string) *ContractUpdate {
	if v != nil {
		_u.SetSourceFilePath(*v)
	}
	return _u
}

// ClearSourceFilePath clears the value of the "source_file_path" field.
func (_u *ContractUpdate) ClearSourceFilePath() *ContractUpdate {
	_u.mutation.ClearSourceFilePath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBidderIDs adds the "bidders" edge to the Bidder entity by IDs.
func (_u *ContractUpdate) AddBidderIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddBidderIDs(ids...)
	return _u
}

// AddBidders adds the "bidders" edges to the Bidder entity.
func (_u *ContractUpdate) AddBidders(v ...*Bidder) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBidderIDs(ids...)
}

// AddBidItemIDs adds the "bid_items" edge to the BidItem entity by IDs.
func (_u *ContractUpdate) AddBidItemIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddBidItemIDs(ids...)
	return _u
}

// AddBidItems adds the "bid_items" edges to the BidItem entity.
func (_u *ContractUpdate) AddBidItems(v ...*BidItem) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBidItemIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearBidders clears all "bidders" edges to the Bidder entity.
func (_u *ContractUpdate) ClearBidders() *ContractUpdate {
	_u.mutation.ClearBidders()
	return _u
}

// RemoveBidderIDs removes the "bidders" edge to Bidder entities by IDs.
func (_u *ContractUpdate) RemoveBidderIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveBidderIDs(ids...)
	return _u
}

// RemoveBidders removes "bidders" edges to Bidder entities.
func (_u *ContractUpdate) RemoveBidders(v ...*Bidder) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBidderIDs(ids...)
}

// ClearBidItems clears all "bid_items" edges to the BidItem entity.
func (_u *ContractUpdate) ClearBidItems() *ContractUpdate {
	_u.mutation.ClearBidItems()
	return _u
}

// RemoveBidItemIDs removes the "bid_items" edge to BidItem entities by IDs.
func (_u *ContractUpdate) RemoveBidItemIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveBidItemIDs(ids...)
	return _u
}

// RemoveBidItems removes "bid_items" edges to BidItem entities.
func (_u *ContractUpdate) RemoveBidItems(v ...*BidItem) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBidItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.ContractNumber(); ok {
		if err := contract.ContractNumberValidator(v); err != nil {
			return &ValidationError{Name: "contract_number", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContractNumber(); ok {
		_spec.SetField(contract.FieldContractNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.WbsElement(); ok {
		_spec.SetField(contract.FieldWbsElement, field.TypeString, value)
	}
	if _u.mutation.WbsElementCleared() {
		_spec.ClearField(contract.FieldWbsElement, field.TypeString)
	}
	if value, ok := _u.mutation.Counties(); ok {
		_spec.SetField(contract.FieldCounties, field.TypeString, value)
	}
	if _u.mutation.CountiesCleared() {
		_spec.ClearField(contract.FieldCounties, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(contract.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(contract.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DateAvailable(); ok {
		_spec.SetField(contract.FieldDateAvailable, field.TypeTime, value)
	}
	if _u.mutation.DateAvailableCleared() {
		_spec.ClearField(contract.FieldDateAvailable, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletionDate(); ok {
		_spec.SetField(contract.FieldCompletionDate, field.TypeTime, value)
	}
	if _u.mutation.CompletionDateCleared() {
		_spec.ClearField(contract.FieldCompletionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MbeGoal(); ok {
		_spec.SetField(contract.FieldMbeGoal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMbeGoal(); ok {
		_spec.AddField(contract.FieldMbeGoal, field.TypeFloat64, value)
	}
	if _u.mutation.MbeGoalCleared() {
		_spec.ClearField(contract.FieldMbeGoal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WbeGoal(); ok {
		_spec.SetField(contract.FieldWbeGoal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWbeGoal(); ok {
		_spec.AddField(contract.FieldWbeGoal, field.TypeFloat64, value)
	}
	if _u.mutation.WbeGoalCleared() {
		_spec.ClearField(contract.FieldWbeGoal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CombinedGoal(); ok {
		_spec.SetField(contract.FieldCombinedGoal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCombinedGoal(); ok {
		_spec.AddField(contract.FieldCombinedGoal, field.TypeFloat64, value)
	}
	if _u.mutation.CombinedGoalCleared() {
		_spec.ClearField(contract.FieldCombinedGoal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BidOpeningDate(); ok {
		_spec.SetField(contract.FieldBidOpeningDate, field.TypeTime, value)
	}
	if _u.mutation.BidOpeningDateCleared() {
		_spec.ClearField(contract.FieldBidOpeningDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ProposalLength(); ok {
		_spec.SetField(contract.FieldProposalLength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProposalLength(); ok {
		_spec.AddField(contract.FieldProposalLength, field.TypeFloat64, value)
	}
	if _u.mutation.ProposalLengthCleared() {
		_spec.ClearField(contract.FieldProposalLength, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TypeOfWork(); ok {
		_spec.SetField(contract.FieldTypeOfWork, field.TypeString, value)
	}
	if _u.mutation.TypeOfWorkCleared() {
		_spec.ClearField(contract.FieldTypeOfWork, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(contract.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(contract.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(contract.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(contract.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCostCleared() {
		_spec.ClearField(contract.FieldEstimatedCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AwardedAmount(); ok {
		_spec.SetField(contract.FieldAwardedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAwardedAmount(); ok {
		_spec.AddField(contract.FieldAwardedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AwardedAmountCleared() {
		_spec.ClearField(contract.FieldAwardedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AwardedTo(); ok {
		_spec.SetField(contract.FieldAwardedTo, field.TypeString, value)
	}
	if _u.mutation.AwardedToCleared() {
		_spec.ClearField(contract.FieldAwardedTo, field.TypeString)
	}
	if value, ok := _u.mutation.AwardDate(); ok {
		_spec.SetField(contract.FieldAwardDate, field.TypeTime, value)
	}
	if _u.mutation.AwardDateCleared() {
		_spec.ClearField(contract.FieldAwardDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceFilePath(); ok {
		_spec.SetField(contract.FieldSourceFilePath, field.TypeString, value)
	}
	if _u.mutation.SourceFilePathCleared() {
		_spec.ClearField(contract.FieldSourceFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BiddersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBiddersIDs(); len(nodes) > 0 && !_u.mutation.BiddersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BiddersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BidItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBidItemsIDs(); len(nodes) > 0 && !_u.mutation.BidItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BidItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetContractNumber sets the "contract_number" field.
func (_u *ContractUpdateOne) SetContractNumber(v string) *ContractUpdateOne {
	_u.mutation.SetContractNumber(v)
	return _u
}

// SetNillableContractNumber sets the "contract_number" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableContractNumber(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetContractNumber(*v)
	}
	return _u
}

// SetWbsElement sets the "wbs_element" field.
func (_u *ContractUpdateOne) SetWbsElement(v string) *ContractUpdateOne {
	_u.mutation.SetWbsElement(v)
	return _u
}

// SetNillableWbsElement sets the "wbs_element" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableWbsElement(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetWbsElement(*v)
	}
	return _u
}

// ClearWbsElement clears the value of the "wbs_element" field.
func (_u *ContractUpdateOne) ClearWbsElement() *ContractUpdateOne {
	_u.mutation.ClearWbsElement()
	return _u
}

// SetCounties sets the "counties" field.
func (_u *ContractUpdateOne) SetCounties(v string) *ContractUpdateOne {
	_u.mutation.SetCounties(v)
	return _u
}

// SetNillableCounties sets the "counties" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCounties(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCounties(*v)
	}
	return _u
}

// ClearCounties clears the value of the "counties" field.
func (_u *ContractUpdateOne) ClearCounties() *ContractUpdateOne {
	_u.mutation.ClearCounties()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContractUpdateOne) SetDescription(v string) *ContractUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDescription(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContractUpdateOne) ClearDescription() *ContractUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDateAvailable sets the "date_available" field.
func (_u *ContractUpdateOne) SetDateAvailable(v time.Time) *ContractUpdateOne {
	_u.mutation.SetDateAvailable(v)
	return _u
}

// SetNillableDateAvailable sets the "date_available" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDateAvailable(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetDateAvailable(*v)
	}
	return _u
}

// ClearDateAvailable clears the value of the "date_available" field.
func (_u *ContractUpdateOne) ClearDateAvailable() *ContractUpdateOne {
	_u.mutation.ClearDateAvailable()
	return _u
}

// SetCompletionDate sets the "completion_date" field.
func (_u *ContractUpdateOne) SetCompletionDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCompletionDate(v)
	return _u
}

// SetNillableCompletionDate sets the "completion_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCompletionDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCompletionDate(*v)
	}
	return _u
}

// ClearCompletionDate clears the value of the "completion_date" field.
func (_u *ContractUpdateOne) ClearCompletionDate() *ContractUpdateOne {
	_u.mutation.ClearCompletionDate()
	return _u
}

// SetMbeGoal sets the "mbe_goal" field.
func (_u *ContractUpdateOne) SetMbeGoal(v float64) *ContractUpdateOne {
	_u.mutation.ResetMbeGoal()
	_u.mutation.SetMbeGoal(v)
	return _u
}

// SetNillableMbeGoal sets the "mbe_goal" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableMbeGoal(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetMbeGoal(*v)
	}
	return _u
}

// AddMbeGoal adds value to the "mbe_goal" field.
func (_u *ContractUpdateOne) AddMbeGoal(v float64) *ContractUpdateOne {
	_u.mutation.AddMbeGoal(v)
	return _u
}

// ClearMbeGoal clears the value of the "mbe_goal" field.
func (_u *ContractUpdateOne) ClearMbeGoal() *ContractUpdateOne {
	_u.mutation.ClearMbeGoal()
	return _u
}

// SetWbeGoal sets the "wbe_goal" field.
func (_u *ContractUpdateOne) SetWbeGoal(v float64) *ContractUpdateOne {
	_u.mutation.ResetWbeGoal()
	_u.mutation.SetWbeGoal(v)
	return _u
}

// SetNillableWbeGoal sets the "wbe_goal" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableWbeGoal(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetWbeGoal(*v)
	}
	return _u
}

// AddWbeGoal adds value to the "wbe_goal" field.
func (_u *ContractUpdateOne) AddWbeGoal(v float64) *ContractUpdateOne {
	_u.mutation.AddWbeGoal(v)
	return _u
}

// ClearWbeGoal clears the value of the "wbe_goal" field.
func (_u *ContractUpdateOne) ClearWbeGoal() *ContractUpdateOne {
	_u.mutation.ClearWbeGoal()
	return _u
}

// SetCombinedGoal sets the "combined_goal" field.
func (_u *ContractUpdateOne) SetCombinedGoal(v float64) *ContractUpdateOne {
	_u.mutation.ResetCombinedGoal()
	_u.mutation.SetCombinedGoal(v)
	return _u
}

// SetNillableCombinedGoal sets the "combined_goal" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCombinedGoal(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetCombinedGoal(*v)
	}
	return _u
}

// AddCombinedGoal adds value to the "combined_goal" field.
func (_u *ContractUpdateOne) AddCombinedGoal(v float64) *ContractUpdateOne {
	_u.mutation.AddCombinedGoal(v)
	return _u
}

// ClearCombinedGoal clears the value of the "combined_goal" field.
func (_u *ContractUpdateOne) ClearCombinedGoal() *ContractUpdateOne {
	_u.mutation.ClearCombinedGoal()
	return _u
}

// SetBidOpeningDate sets the "bid_opening_date" field.
func (_u *ContractUpdateOne) SetBidOpeningDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetBidOpeningDate(v)
	return _u
}

// SetNillableBidOpeningDate sets the "bid_opening_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableBidOpeningDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetBidOpeningDate(*v)
	}
	return _u
}

// ClearBidOpeningDate clears the value of the "bid_opening_date" field.
func (_u *ContractUpdateOne) ClearBidOpeningDate() *ContractUpdateOne {
	_u.mutation.ClearBidOpeningDate()
	return _u
}

// SetProposalLength sets the "proposal_length" field.
func (_u *ContractUpdateOne) SetProposalLength(v float64) *ContractUpdateOne {
	_u.mutation.ResetProposalLength()
	_u.mutation.SetProposalLength(v)
	return _u
}

// SetNillableProposalLength sets the "proposal_length" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableProposalLength(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetProposalLength(*v)
	}
	return _u
}

// AddProposalLength adds value to the "proposal_length" field.
func (_u *ContractUpdateOne) AddProposalLength(v float64) *ContractUpdateOne {
	_u.mutation.AddProposalLength(v)
	return _u
}

// ClearProposalLength clears the value of the "proposal_length" field.
func (_u *ContractUpdateOne) ClearProposalLength() *ContractUpdateOne {
	_u.mutation.ClearProposalLength()
	return _u
}

// SetTypeOfWork sets the "type_of_work" field.
func (_u *ContractUpdateOne) SetTypeOfWork(v string) *ContractUpdateOne {
	_u.mutation.SetTypeOfWork(v)
	return _u
}

// SetNillableTypeOfWork sets the "type_of_work" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTypeOfWork(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetTypeOfWork(*v)
	}
	return _u
}

// ClearTypeOfWork clears the value of the "type_of_work" field.
func (_u *ContractUpdateOne) ClearTypeOfWork() *ContractUpdateOne {
	_u.mutation.ClearTypeOfWork()
	return _u
}

// SetLocation sets the "location" field.
func (_u *ContractUpdateOne) SetLocation(v string) *ContractUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableLocation(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ContractUpdateOne) ClearLocation() *ContractUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *ContractUpdateOne) SetEstimatedCost(v float64) *ContractUpdateOne {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableEstimatedCost(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *ContractUpdateOne) AddEstimatedCost(v float64) *ContractUpdateOne {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (_u *ContractUpdateOne) ClearEstimatedCost() *ContractUpdateOne {
	_u.mutation.ClearEstimatedCost()
	return _u
}

// SetAwardedAmount sets the "awarded_amount" field.
func (_u *ContractUpdateOne) SetAwardedAmount(v float64) *ContractUpdateOne {
	_u.mutation.ResetAwardedAmount()
	_u.mutation.SetAwardedAmount(v)
	return _u
}

// SetNillableAwardedAmount sets the "awarded_amount" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableAwardedAmount(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetAwardedAmount(*v)
	}
	return _u
}

// AddAwardedAmount adds value to the "awarded_amount" field.
func (_u *ContractUpdateOne) AddAwardedAmount(v float64) *ContractUpdateOne {
	_u.mutation.AddAwardedAmount(v)
	return _u
}

// ClearAwardedAmount clears the value of the "awarded_amount" field.
func (_u *ContractUpdateOne) ClearAwardedAmount() *ContractUpdateOne {
	_u.mutation.ClearAwardedAmount()
	return _u
}

// SetAwardedTo sets the "awarded_to" field.
func (_u *ContractUpdateOne) SetAwardedTo(v string) *ContractUpdateOne {
	_u.mutation.SetAwardedTo(v)
	return _u
}

// SetNillableAwardedTo sets the "awarded_to" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableAwardedTo(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetAwardedTo(*v)
	}
	return _u
}

// ClearAwardedTo clears the value of the "awarded_to" field.
func (_u *ContractUpdateOne) ClearAwardedTo() *ContractUpdateOne {
	_u.mutation.ClearAwardedTo()
	return _u
}

// SetAwardDate sets the "award_date" field.
func (_u *ContractUpdateOne) SetAwardDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetAwardDate(v)
	return _u
}

// SetNillableAwardDate sets the "award_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableAwardDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetAwardDate(*v)
	}
	return _u
}

// ClearAwardDate clears the value of the "award_date" field.
func (_u *ContractUpdateOne) ClearAwardDate() *ContractUpdateOne {
	_u.mutation.ClearAwardDate()
	return _u
}

// SetSourceFilePath sets the "source_file_path" field.
func (_u *ContractUpdateOne) SetSourceFilePath(v string) *ContractUpdateOne {
	_u.mutation.SetSourceFilePath(v)
	return _u
}

// SetNillableSourceFilePath sets the "source_file_path" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSourceFilePath(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetSourceFilePath(*v)
	}
	return _u
}

// ClearSourceFilePath clears the value of the "source_file_path" field.
func (_u *ContractUpdateOne) ClearSourceFilePath() *ContractUpdateOne {
	_u.mutation.ClearSourceFilePath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBidderIDs adds the "bidders" edge to the Bidder entity by IDs.
func (_u *ContractUpdateOne) AddBidderIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddBidderIDs(ids...)
	return _u
}

// AddBidders adds the "bidders" edges to the Bidder entity.
func (_u *ContractUpdateOne) AddBidders(v ...*Bidder) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBidderIDs(ids...)
}

// AddBidItemIDs adds the "bid_items" edge to the BidItem entity by IDs.
func (_u *ContractUpdateOne) AddBidItemIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddBidItemIDs(ids...)
	return _u
}

// AddBidItems adds the "bid_items" edges to the BidItem entity.
func (_u *ContractUpdateOne) AddBidItems(v ...*BidItem) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBidItemIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearBidders clears all "bidders" edges to the Bidder entity.
func (_u *ContractUpdateOne) ClearBidders() *ContractUpdateOne {
	_u.mutation.ClearBidders()
	return _u
}

// RemoveBidderIDs removes the "bidders" edge to Bidder entities by IDs.
func (_u *ContractUpdateOne) RemoveBidderIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveBidderIDs(ids...)
	return _u
}

// RemoveBidders removes "bidders" edges to Bidder entities.
func (_u *ContractUpdateOne) RemoveBidders(v ...*Bidder) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBidderIDs(ids...)
}

// ClearBidItems clears all "bid_items" edges to the BidItem entity.
func (_u *ContractUpdateOne) ClearBidItems() *ContractUpdateOne {
	_u.mutation.ClearBidItems()
	return _u
}

// RemoveBidItemIDs removes the "bid_items" edge to BidItem entities by IDs.
func (_u *ContractUpdateOne) RemoveBidItemIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveBidItemIDs(ids...)
	return _u
}

// RemoveBidItems removes "bid_items" edges to BidItem entities.
func (_u *ContractUpdateOne) RemoveBidItems(v ...*BidItem) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBidItemIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.ContractNumber(); ok {
		if err := contract.ContractNumberValidator(v); err != nil {
			return &ValidationError{Name: "contract_number", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.ContractNumber(); ok {
		_spec.SetField(contract.FieldContractNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.WbsElement(); ok {
		_spec.SetField(contract.FieldWbsElement, field.TypeString, value)
	}
	if _u.mutation.WbsElementCleared() {
		_spec.ClearField(contract.FieldWbsElement, field.TypeString)
	}
	if value, ok := _u.mutation.Counties(); ok {
		_spec.SetField(contract.FieldCounties, field.TypeString, value)
	}
	if _u.mutation.CountiesCleared() {
		_spec.ClearField(contract.FieldCounties, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(contract.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(contract.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DateAvailable(); ok {
		_spec.SetField(contract.FieldDateAvailable, field.TypeTime, value)
	}
	if _u.mutation.DateAvailableCleared() {
		_spec.ClearField(contract.FieldDateAvailable, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletionDate(); ok {
		_spec.SetField(contract.FieldCompletionDate, field.TypeTime, value)
	}
	if _u.mutation.CompletionDateCleared() {
		_spec.ClearField(contract.FieldCompletionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MbeGoal(); ok {
		_spec.SetField(contract.FieldMbeGoal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMbeGoal(); ok {
		_spec.AddField(contract.FieldMbeGoal, field.TypeFloat64, value)
	}
	if _u.mutation.MbeGoalCleared() {
		_spec.ClearField(contract.FieldMbeGoal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WbeGoal(); ok {
		_spec.SetField(contract.FieldWbeGoal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWbeGoal(); ok {
		_spec.AddField(contract.FieldWbeGoal, field.TypeFloat64, value)
	}
	if _u.mutation.WbeGoalCleared() {
		_spec.ClearField(contract.FieldWbeGoal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CombinedGoal(); ok {
		_spec.SetField(contract.FieldCombinedGoal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCombinedGoal(); ok {
		_spec.AddField(contract.FieldCombinedGoal, field.TypeFloat64, value)
	}
	if _u.mutation.CombinedGoalCleared() {
		_spec.ClearField(contract.FieldCombinedGoal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BidOpeningDate(); ok {
		_spec.SetField(contract.FieldBidOpeningDate, field.TypeTime, value)
	}
	if _u.mutation.BidOpeningDateCleared() {
		_spec.ClearField(contract.FieldBidOpeningDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ProposalLength(); ok {
		_spec.SetField(contract.FieldProposalLength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProposalLength(); ok {
		_spec.AddField(contract.FieldProposalLength, field.TypeFloat64, value)
	}
	if _u.mutation.ProposalLengthCleared() {
		_spec.ClearField(contract.FieldProposalLength, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TypeOfWork(); ok {
		_spec.SetField(contract.FieldTypeOfWork, field.TypeString, value)
	}
	if _u.mutation.TypeOfWorkCleared() {
		_spec.ClearField(contract.FieldTypeOfWork, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(contract.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(contract.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(contract.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(contract.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCostCleared() {
		_spec.ClearField(contract.FieldEstimatedCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AwardedAmount(); ok {
		_spec.SetField(contract.FieldAwardedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAwardedAmount(); ok {
		_spec.AddField(contract.FieldAwardedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AwardedAmountCleared() {
		_spec.ClearField(contract.FieldAwardedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AwardedTo(); ok {
		_spec.SetField(contract.FieldAwardedTo, field.TypeString, value)
	}
	if _u.mutation.AwardedToCleared() {
		_spec.ClearField(contract.FieldAwardedTo, field.TypeString)
	}
	if value, ok := _u.mutation.AwardDate(); ok {
		_spec.SetField(contract.FieldAwardDate, field.TypeTime, value)
	}
	if _u.mutation.AwardDateCleared() {
		_spec.ClearField(contract.FieldAwardDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceFilePath(); ok {
		_spec.SetField(contract.FieldSourceFilePath, field.TypeString, value)
	}
	if _u.mutation.SourceFilePathCleared() {
		_spec.ClearField(contract.FieldSourceFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BiddersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBiddersIDs(); len(nodes) > 0 && !_u.mutation.BiddersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BiddersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BidItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBidItemsIDs(); len(nodes) > 0 && !_u.mutation.BidItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BidItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
