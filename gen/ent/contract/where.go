// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// ContractNumber applies equality check predicate on the "contract_number" field. It's identical to ContractNumberEQ.
func ContractNumber(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractNumber, v))
}

// WbsElement applies equality check predicate on the "wbs_element" field. It's identical to WbsElementEQ.
func WbsElement(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldWbsElement, v))
}

// Counties applies equality check predicate on the "counties" field. It's identical to CountiesEQ.
func Counties(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCounties, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDescription, v))
}

// DateAvailable applies equality check predicate on the "date_available" field. It's identical to DateAvailableEQ.
func DateAvailable(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDateAvailable, v))
}

// CompletionDate applies equality check predicate on the "completion_date" field. It's identical to CompletionDateEQ.
func CompletionDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCompletionDate, v))
}

// MbeGoal applies equality check predicate on the "mbe_goal" field. It's identical to MbeGoalEQ.
func MbeGoal(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldMbeGoal, v))
}

// WbeGoal applies equality check predicate on the "wbe_goal" field. It's identical to WbeGoalEQ.
func WbeGoal(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldWbeGoal, v))
}

// CombinedGoal applies equality check predicate on the "combined_goal" field. It's identical to CombinedGoalEQ.
func CombinedGoal(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCombinedGoal, v))
}

// BidOpeningDate applies equality check predicate on the "bid_opening_date" field. It's identical to BidOpeningDateEQ.
func BidOpeningDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBidOpeningDate, v))
}

// ProposalLength applies equality check predicate on the "proposal_length" field. It's identical to ProposalLengthEQ.
func ProposalLength(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldProposalLength, v))
}

// TypeOfWork applies equality check predicate on the "type_of_work" field. It's identical to TypeOfWorkEQ.
func TypeOfWork(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTypeOfWork, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLocation, v))
}

// EstimatedCost applies equality check predicate on the "estimated_cost" field. It's identical to EstimatedCostEQ.
func EstimatedCost(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEstimatedCost, v))
}

// AwardedAmount applies equality check predicate on the "awarded_amount" field. It's identical to AwardedAmountEQ.
func AwardedAmount(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAwardedAmount, v))
}

// AwardedTo applies equality check predicate on the "awarded_to" field. It's identical to AwardedToEQ.
func AwardedTo(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAwardedTo, v))
}

// AwardDate applies equality check predicate on the "award_date" field. It's identical to AwardDateEQ.
func AwardDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAwardDate, v))
}

// SourceFilePath applies equality check predicate on the "source_file_path" field. It's identical to SourceFilePathEQ.
func SourceFilePath(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSourceFilePath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// ContractNumberEQ applies the EQ predicate on the "contract_number" field.
func ContractNumberEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractNumber, v))
}

// ContractNumberNEQ applies the NEQ predicate on the "contract_number" field.
func ContractNumberNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldContractNumber, v))
}

// ContractNumberIn applies the In predicate on the "contract_number" field.
func ContractNumberIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldContractNumber, vs...))
}

// ContractNumberNotIn applies the NotIn predicate on the "contract_number" field.
func ContractNumberNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldContractNumber, vs...))
}

// ContractNumberGT applies the GT predicate on the "contract_number" field.
func ContractNumberGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldContractNumber, v))
}

// ContractNumberGTE applies the GTE predicate on the "contract_number" field.
func ContractNumberGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldContractNumber, v))
}

// ContractNumberLT applies the LT predicate on the "contract_number" field.
func ContractNumberLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldContractNumber, v))
}

// ContractNumberLTE applies the LTE predicate on the "contract_number" field.
func ContractNumberLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldContractNumber, v))
}

// ContractNumberContains applies the Contains predicate on the "contract_number" field.
func ContractNumberContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldContractNumber, v))
}

// ContractNumberHasPrefix applies the HasPrefix predicate on the "contract_number" field.
func ContractNumberHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldContractNumber, v))
}

// ContractNumberHasSuffix applies the HasSuffix predicate on the "contract_number" field.
func ContractNumberHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldContractNumber, v))
}

// ContractNumberEqualFold applies the EqualFold predicate on the "contract_number" field.
func ContractNumberEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldContractNumber, v))
}

// ContractNumberContainsFold applies the ContainsFold predicate on the "contract_number" field.
func ContractNumberContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldContractNumber, v))
}

// WbsElementEQ applies the EQ predicate on the "wbs_element" field.
func WbsElementEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldWbsElement, v))
}

// WbsElementNEQ applies the NEQ predicate on the "wbs_element" field.
func WbsElementNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldWbsElement, v))
}

// WbsElementIn applies the In predicate on the "wbs_element" field.
func WbsElementIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldWbsElement, vs...))
}

// WbsElementNotIn applies the NotIn predicate on the "wbs_element" field.
func WbsElementNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldWbsElement, vs...))
}

// WbsElementGT applies the GT predicate on the "wbs_element" field.
func WbsElementGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldWbsElement, v))
}

// WbsElementGTE applies the GTE predicate on the "wbs_element" field.
func WbsElementGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldWbsElement, v))
}

// WbsElementLT applies the LT predicate on the "wbs_element" field.
func WbsElementLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldWbsElement, v))
}

// WbsElementLTE applies the LTE predicate on the "wbs_element" field.
func WbsElementLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldWbsElement, v))
}

// WbsElementContains applies the Contains predicate on the "wbs_element" field.
func WbsElementContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldWbsElement, v))
}

// WbsElementHasPrefix applies the HasPrefix predicate on the "wbs_element" field.
func WbsElementHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldWbsElement, v))
}

// WbsElementHasSuffix applies the HasSuffix predicate on the "wbs_element" field.
func WbsElementHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldWbsElement, v))
}

// WbsElementIsNil applies the IsNil predicate on the "wbs_element" field.
func WbsElementIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldWbsElement))
}

// WbsElementNotNil applies the NotNil predicate on the "wbs_element" field.
func WbsElementNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldWbsElement))
}

// WbsElementEqualFold applies the EqualFold predicate on the "wbs_element" field.
func WbsElementEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldWbsElement, v))
}

// WbsElementContainsFold applies the ContainsFold predicate on the "wbs_element" field.
func WbsElementContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldWbsElement, v))
}

// CountiesEQ applies the EQ predicate on the "counties" field.
func CountiesEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCounties, v))
}

// CountiesNEQ applies the NEQ predicate on the "counties" field.
func CountiesNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCounties, v))
}

// CountiesIn applies the In predicate on the "counties" field.
func CountiesIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCounties, vs...))
}

// CountiesNotIn applies the NotIn predicate on the "counties" field.
func CountiesNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCounties, vs...))
}

// CountiesGT applies the GT predicate on the "counties" field.
func CountiesGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCounties, v))
}

// CountiesGTE applies the GTE predicate on the "counties" field.
func CountiesGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCounties, v))
}

// CountiesLT applies the LT predicate on the "counties" field.
func CountiesLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCounties, v))
}

// CountiesLTE applies the LTE predicate on the "counties" field.
func CountiesLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCounties, v))
}

// CountiesContains applies the Contains predicate on the "counties" field.
func CountiesContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCounties, v))
}

// CountiesHasPrefix applies the HasPrefix predicate on the "counties" field.
func CountiesHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCounties, v))
}

// CountiesHasSuffix applies the HasSuffix predicate on the "counties" field.
func CountiesHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCounties, v))
}

// CountiesIsNil applies the IsNil predicate on the "counties" field.
func CountiesIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCounties))
}

// CountiesNotNil applies the NotNil predicate on the "counties" field.
func CountiesNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCounties))
}

// CountiesEqualFold applies the EqualFold predicate on the "counties" field.
func CountiesEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCounties, v))
}

// CountiesContainsFold applies the ContainsFold predicate on the "counties" field.
func CountiesContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCounties, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldDescription, v))
}

// DateAvailableEQ applies the EQ predicate on the "date_available" field.
func DateAvailableEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDateAvailable, v))
}

// DateAvailableNEQ applies the NEQ predicate on the "date_available" field.
func DateAvailableNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDateAvailable, v))
}

// DateAvailableIn applies the In predicate on the "date_available" field.
func DateAvailableIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDateAvailable, vs...))
}

// DateAvailableNotIn applies the NotIn predicate on the "date_available" field.
func DateAvailableNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDateAvailable, vs...))
}

// DateAvailableGT applies the GT predicate on the "date_available" field.
func DateAvailableGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldDateAvailable, v))
}

// DateAvailableGTE applies the GTE predicate on the "date_available" field.
func DateAvailableGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldDateAvailable, v))
}

// DateAvailableLT applies the LT predicate on the "date_available" field.
func DateAvailableLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldDateAvailable, v))
}

// DateAvailableLTE applies the LTE predicate on the "date_available" field.
func DateAvailableLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldDateAvailable, v))
}

// DateAvailableIsNil applies the IsNil predicate on the "date_available" field.
func DateAvailableIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldDateAvailable))
}

// DateAvailableNotNil applies the NotNil predicate on the "date_available" field.
func DateAvailableNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldDateAvailable))
}

// CompletionDateEQ applies the EQ predicate on the "completion_date" field.
func CompletionDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCompletionDate, v))
}

// CompletionDateNEQ applies the NEQ predicate on the "completion_date" field.
func CompletionDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCompletionDate, v))
}

// CompletionDateIn applies the In predicate on the "completion_date" field.
func CompletionDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCompletionDate, vs...))
}

// CompletionDateNotIn applies the NotIn predicate on the "completion_date" field.
func CompletionDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCompletionDate, vs...))
}

// CompletionDateGT applies the GT predicate on the "completion_date" field.
func CompletionDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCompletionDate, v))
}

// CompletionDateGTE applies the GTE predicate on the "completion_date" field.
func CompletionDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCompletionDate, v))
}

// CompletionDateLT applies the LT predicate on the "completion_date" field.
func CompletionDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCompletionDate, v))
}

// CompletionDateLTE applies the LTE predicate on the "completion_date" field.
func CompletionDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCompletionDate, v))
}

// CompletionDateIsNil applies the IsNil predicate on the "completion_date" field.
func CompletionDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCompletionDate))
}

// CompletionDateNotNil applies the NotNil predicate on the "completion_date" field.
func CompletionDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCompletionDate))
}

// MbeGoalEQ applies the EQ predicate on the "mbe_goal" field.
func MbeGoalEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldMbeGoal, v))
}

// MbeGoalNEQ applies the NEQ predicate on the "mbe_goal" field.
func MbeGoalNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldMbeGoal, v))
}

// MbeGoalIn applies the In predicate on the "mbe_goal" field.
func MbeGoalIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldMbeGoal, vs...))
}

// MbeGoalNotIn applies the NotIn predicate on the "mbe_goal" field.
func MbeGoalNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldMbeGoal, vs...))
}

// MbeGoalGT applies the GT predicate on the "mbe_goal" field.
func MbeGoalGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldMbeGoal, v))
}

// MbeGoalGTE applies the GTE predicate on the "mbe_goal" field.
func MbeGoalGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldMbeGoal, v))
}

// MbeGoalLT applies the LT predicate on the "mbe_goal" field.
func MbeGoalLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldMbeGoal, v))
}

// MbeGoalLTE applies the LTE predicate on the "mbe_goal" field.
func MbeGoalLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldMbeGoal, v))
}

// MbeGoalIsNil applies the IsNil predicate on the "mbe_goal" field.
func MbeGoalIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldMbeGoal))
}

// MbeGoalNotNil applies the NotNil predicate on the "mbe_goal" field.
func MbeGoalNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldMbeGoal))
}

// WbeGoalEQ applies the EQ predicate on the "wbe_goal" field.
func WbeGoalEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldWbeGoal, v))
}

// WbeGoalNEQ applies the NEQ predicate on the "wbe_goal" field.
func WbeGoalNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldWbeGoal, v))
}

// WbeGoalIn applies the In predicate on the "wbe_goal" field.
func WbeGoalIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldWbeGoal, vs...))
}

// WbeGoalNotIn applies the NotIn predicate on the "wbe_goal" field.
func WbeGoalNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldWbeGoal, vs...))
}

// WbeGoalGT applies the GT predicate on the "wbe_goal" field.
func WbeGoalGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldWbeGoal, v))
}

// WbeGoalGTE applies the GTE predicate on the "wbe_goal" field.
func WbeGoalGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldWbeGoal, v))
}

// WbeGoalLT applies the LT predicate on the "wbe_goal" field.
func WbeGoalLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldWbeGoal, v))
}

// WbeGoalLTE applies the LTE predicate on the "wbe_goal" field.
func WbeGoalLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldWbeGoal, v))
}

// WbeGoalIsNil applies the IsNil predicate on the "wbe_goal" field.
func WbeGoalIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldWbeGoal))
}

// WbeGoalNotNil applies the NotNil predicate on the "wbe_goal" field.
func WbeGoalNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldWbeGoal))
}

// CombinedGoalEQ applies the EQ predicate on the "combined_goal" field.
func CombinedGoalEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCombinedGoal, v))
}

// CombinedGoalNEQ applies the NEQ predicate on the "combined_goal" field.
func CombinedGoalNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCombinedGoal, v))
}

// CombinedGoalIn applies the In predicate on the "combined_goal" field.
func CombinedGoalIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCombinedGoal, vs...))
}

// CombinedGoalNotIn applies the NotIn predicate on the "combined_goal" field.
func CombinedGoalNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCombinedGoal, vs...))
}

// CombinedGoalGT applies the GT predicate on the "combined_goal" field.
func CombinedGoalGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCombinedGoal, v))
}

// CombinedGoalGTE applies the GTE predicate on the "combined_goal" field.
func CombinedGoalGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCombinedGoal, v))
}

// CombinedGoalLT applies the LT predicate on the "combined_goal" field.
func CombinedGoalLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCombinedGoal, v))
}

// CombinedGoalLTE applies the LTE predicate on the "combined_goal" field.
func CombinedGoalLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCombinedGoal, v))
}

// CombinedGoalIsNil applies the IsNil predicate on the "combined_goal" field.
func CombinedGoalIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCombinedGoal))
}

// CombinedGoalNotNil applies the NotNil predicate on the "combined_goal" field.
func CombinedGoalNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCombinedGoal))
}

// BidOpeningDateEQ applies the EQ predicate on the "bid_opening_date" field.
func BidOpeningDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBidOpeningDate, v))
}

// BidOpeningDateNEQ applies the NEQ predicate on the "bid_opening_date" field.
func BidOpeningDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldBidOpeningDate, v))
}

// BidOpeningDateIn applies the In predicate on the "bid_opening_date" field.
func BidOpeningDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldBidOpeningDate, vs...))
}

// BidOpeningDateNotIn applies the NotIn predicate on the "bid_opening_date" field.
func BidOpeningDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldBidOpeningDate, vs...))
}

// BidOpeningDateGT applies the GT predicate on the "bid_opening_date" field.
func BidOpeningDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldBidOpeningDate, v))
}

// BidOpeningDateGTE applies the GTE predicate on the "bid_opening_date" field.
func BidOpeningDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldBidOpeningDate, v))
}

// BidOpeningDateLT applies the LT predicate on the "bid_opening_date" field.
func BidOpeningDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldBidOpeningDate, v))
}

// BidOpeningDateLTE applies the LTE predicate on the "bid_opening_date" field.
func BidOpeningDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldBidOpeningDate, v))
}

// BidOpeningDateIsNil applies the IsNil predicate on the "bid_opening_date" field.
func BidOpeningDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldBidOpeningDate))
}

// BidOpeningDateNotNil applies the NotNil predicate on the "bid_opening_date" field.
func BidOpeningDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldBidOpeningDate))
}

// ProposalLengthEQ applies the EQ predicate on the "proposal_length" field.
func ProposalLengthEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldProposalLength, v))
}

// ProposalLengthNEQ applies the NEQ predicate on the "proposal_length" field.
func ProposalLengthNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldProposalLength, v))
}

// ProposalLengthIn applies the In predicate on the "proposal_length" field.
func ProposalLengthIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldProposalLength, vs...))
}

// ProposalLengthNotIn applies the NotIn predicate on the "proposal_length" field.
func ProposalLengthNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldProposalLength, vs...))
}

// ProposalLengthGT applies the GT predicate on the "proposal_length" field.
func ProposalLengthGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldProposalLength, v))
}

// ProposalLengthGTE applies the GTE predicate on the "proposal_length" field.
func ProposalLengthGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldProposalLength, v))
}

// ProposalLengthLT applies the LT predicate on the "proposal_length" field.
func ProposalLengthLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldProposalLength, v))
}

// ProposalLengthLTE applies the LTE predicate on the "proposal_length" field.
func ProposalLengthLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldProposalLength, v))
}

// ProposalLengthIsNil applies the IsNil predicate on the "proposal_length" field.
func ProposalLengthIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldProposalLength))
}

// ProposalLengthNotNil applies the NotNil predicate on the "proposal_length" field.
func ProposalLengthNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldProposalLength))
}

// TypeOfWorkEQ applies the EQ predicate on the "type_of_work" field.
func TypeOfWorkEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTypeOfWork, v))
}

// TypeOfWorkNEQ applies the NEQ predicate on the "type_of_work" field.
func TypeOfWorkNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTypeOfWork, v))
}

// TypeOfWorkIn applies the In predicate on the "type_of_work" field.
func TypeOfWorkIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTypeOfWork, vs...))
}

// TypeOfWorkNotIn applies the NotIn predicate on the "type_of_work" field.
func TypeOfWorkNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTypeOfWork, vs...))
}

// TypeOfWorkGT applies the GT predicate on the "type_of_work" field.
func TypeOfWorkGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTypeOfWork, v))
}

// TypeOfWorkGTE applies the GTE predicate on the "type_of_work" field.
func TypeOfWorkGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTypeOfWork, v))
}

// TypeOfWorkLT applies the LT predicate on the "type_of_work" field.
func TypeOfWorkLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTypeOfWork, v))
}

// TypeOfWorkLTE applies the LTE predicate on the "type_of_work" field.
func TypeOfWorkLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTypeOfWork, v))
}

// TypeOfWorkContains applies the Contains predicate on the "type_of_work" field.
func TypeOfWorkContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldTypeOfWork, v))
}

// TypeOfWorkHasPrefix applies the HasPrefix predicate on the "type_of_work" field.
func TypeOfWorkHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldTypeOfWork, v))
}

// TypeOfWorkHasSuffix applies the HasSuffix predicate on the "type_of_work" field.
func TypeOfWorkHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldTypeOfWork, v))
}

// TypeOfWorkIsNil applies the IsNil predicate on the "type_of_work" field.
func TypeOfWorkIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldTypeOfWork))
}

// TypeOfWorkNotNil applies the NotNil predicate on the "type_of_work" field.
func TypeOfWorkNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldTypeOfWork))
}

// TypeOfWorkEqualFold applies the EqualFold predicate on the "type_of_work" field.
func TypeOfWorkEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldTypeOfWork, v))
}

// TypeOfWorkContainsFold applies the ContainsFold predicate on the "type_of_work" field.
func TypeOfWorkContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldTypeOfWork, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldLocation, v))
}

// EstimatedCostEQ applies the EQ predicate on the "estimated_cost" field.
func EstimatedCostEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEstimatedCost, v))
}

// EstimatedCostNEQ applies the NEQ predicate on the "estimated_cost" field.
func EstimatedCostNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldEstimatedCost, v))
}

// EstimatedCostIn applies the In predicate on the "estimated_cost" field.
func EstimatedCostIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldEstimatedCost, vs...))
}

// EstimatedCostNotIn applies the NotIn predicate on the "estimated_cost" field.
func EstimatedCostNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldEstimatedCost, vs...))
}

// EstimatedCostGT applies the GT predicate on the "estimated_cost" field.
func EstimatedCostGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldEstimatedCost, v))
}

// EstimatedCostGTE applies the GTE predicate on the "estimated_cost" field.
func EstimatedCostGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldEstimatedCost, v))
}

// EstimatedCostLT applies the LT predicate on the "estimated_cost" field.
func EstimatedCostLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldEstimatedCost, v))
}

// EstimatedCostLTE applies the LTE predicate on the "estimated_cost" field.
func EstimatedCostLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldEstimatedCost, v))
}

// EstimatedCostIsNil applies the IsNil predicate on the "estimated_cost" field.
func EstimatedCostIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldEstimatedCost))
}

// EstimatedCostNotNil applies the NotNil predicate on the "estimated_cost" field.
func EstimatedCostNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldEstimatedCost))
}

// AwardedAmountEQ applies the EQ predicate on the "awarded_amount" field.
func AwardedAmountEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAwardedAmount, v))
}

// AwardedAmountNEQ applies the NEQ predicate on the "awarded_amount" field.
func AwardedAmountNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldAwardedAmount, v))
}

// AwardedAmountIn applies the In predicate on the "awarded_amount" field.
func AwardedAmountIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldAwardedAmount, vs...))
}

// AwardedAmountNotIn applies the NotIn predicate on the "awarded_amount" field.
func AwardedAmountNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldAwardedAmount, vs...))
}

// AwardedAmountGT applies the GT predicate on the "awarded_amount" field.
func AwardedAmountGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldAwardedAmount, v))
}

// AwardedAmountGTE applies the GTE predicate on the "awarded_amount" field.
func AwardedAmountGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldAwardedAmount, v))
}

// AwardedAmountLT applies the LT predicate on the "awarded_amount" field.
func AwardedAmountLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldAwardedAmount, v))
}

// AwardedAmountLTE applies the LTE predicate on the "awarded_amount" field.
func AwardedAmountLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldAwardedAmount, v))
}

// AwardedAmountIsNil applies the IsNil predicate on the "awarded_amount" field.
func AwardedAmountIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldAwardedAmount))
}

// AwardedAmountNotNil applies the NotNil predicate on the "awarded_amount" field.
func AwardedAmountNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldAwardedAmount))
}

// AwardedToEQ applies the EQ predicate on the "awarded_to" field.
func AwardedToEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAwardedTo, v))
}

// AwardedToNEQ applies the NEQ predicate on the "awarded_to" field.
func AwardedToNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldAwardedTo, v))
}

// AwardedToIn applies the In predicate on the "awarded_to" field.
func AwardedToIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldAwardedTo, vs...))
}

// AwardedToNotIn applies the NotIn predicate on the "awarded_to" field.
func AwardedToNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldAwardedTo, vs...))
}

// AwardedToGT applies the GT predicate on the "awarded_to" field.
func AwardedToGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldAwardedTo, v))
}

// AwardedToGTE applies the GTE predicate on the "awarded_to" field.
func AwardedToGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldAwardedTo, v))
}

// AwardedToLT applies the LT predicate on the "awarded_to" field.
func AwardedToLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldAwardedTo, v))
}

// AwardedToLTE applies the LTE predicate on the "awarded_to" field.
func AwardedToLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldAwardedTo, v))
}

// AwardedToContains applies the Contains predicate on the "awarded_to" field.
func AwardedToContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldAwardedTo, v))
}

// AwardedToHasPrefix applies the HasPrefix predicate on the "awarded_to" field.
func AwardedToHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldAwardedTo, v))
}

// AwardedToHasSuffix applies the HasSuffix predicate on the "awarded_to" field.
func AwardedToHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldAwardedTo, v))
}

// AwardedToIsNil applies the IsNil predicate on the "awarded_to" field.
func AwardedToIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldAwardedTo))
}

// AwardedToNotNil applies the NotNil predicate on the "awarded_to" field.
func AwardedToNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldAwardedTo))
}

// AwardedToEqualFold applies the EqualFold predicate on the "awarded_to" field.
func AwardedToEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldAwardedTo, v))
}

// AwardedToContainsFold applies the ContainsFold predicate on the "awarded_to" field.
func AwardedToContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldAwardedTo, v))
}

// AwardDateEQ applies the EQ predicate on the "award_date" field.
func AwardDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAwardDate, v))
}

// AwardDateNEQ applies the NEQ predicate on the "award_date" field.
func AwardDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldAwardDate, v))
}

// AwardDateIn applies the In predicate on the "award_date" field.
func AwardDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldAwardDate, vs...))
}

// AwardDateNotIn applies the NotIn predicate on the "award_date" field.
func AwardDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldAwardDate, vs...))
}

// AwardDateGT applies the GT predicate on the "award_date" field.
func AwardDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldAwardDate, v))
}

// AwardDateGTE applies the GTE predicate on the "award_date" field.
func AwardDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldAwardDate, v))
}

// AwardDateLT applies the LT predicate on the "award_date" field.
func AwardDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldAwardDate, v))
}

// AwardDateLTE applies the LTE predicate on the "award_date" field.
func AwardDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldAwardDate, v))
}

// AwardDateIsNil applies the IsNil predicate on the "award_date" field.
func AwardDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldAwardDate))
}

// AwardDateNotNil applies the NotNil predicate on the "award_date" field.
func AwardDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldAwardDate))
}

// SourceFilePathEQ applies the EQ predicate on the "source_file_path" field.
func SourceFilePathEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSourceFilePath, v))
}

// SourceFilePathNEQ applies the NEQ predicate on the "source_file_path" field.
func SourceFilePathNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldSourceFilePath, v))
}

// SourceFilePathIn applies the In predicate on the "source_file_path" field.
func SourceFilePathIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldSourceFilePath, vs...))
}

// SourceFilePathNotIn applies the NotIn predicate on the "source_file_path" field.
func SourceFilePathNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldSourceFilePath, vs...))
}

// SourceFilePathGT applies the GT predicate on the "source_file_path" field.
func SourceFilePathGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldSourceFilePath, v))
}

// SourceFilePathGTE applies the GTE predicate on the "source_file_path" field.
func SourceFilePathGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldSourceFilePath, v))
}

// SourceFilePathLT applies the LT predicate on the "source_file_path" field.
func SourceFilePathLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldSourceFilePath, v))
}

// SourceFilePathLTE applies the LTE predicate on the "source_file_path" field.
func SourceFilePathLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldSourceFilePath, v))
}

// SourceFilePathContains applies the Contains predicate on the "source_file_path" field.
func SourceFilePathContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldSourceFilePath, v))
}

// SourceFilePathHasPrefix applies the HasPrefix predicate on the "source_file_path" field.
func SourceFilePathHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldSourceFilePath, v))
}

// SourceFilePathHasSuffix applies the HasSuffix predicate on the "source_file_path" field.
func SourceFilePathHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldSourceFilePath, v))
}

// SourceFilePathIsNil applies the IsNil predicate on the "source_file_path" field.
func SourceFilePathIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldSourceFilePath))
}

// SourceFilePathNotNil applies the NotNil predicate on the "source_file_path" field.
func SourceFilePathNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldSourceFilePath))
}

// SourceFilePathEqualFold applies the EqualFold predicate on the "source_file_path" field.
func SourceFilePathEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldSourceFilePath, v))
}

// SourceFilePathContainsFold applies the ContainsFold predicate on the "source_file_path" field.
func SourceFilePathContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldSourceFilePath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBidders applies the HasEdge predicate on the "bidders" edge.
func HasBidders() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BiddersTable, BiddersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBiddersWith applies the HasEdge predicate on the "bidders" edge with a given conditions (other predicates).
func HasBiddersWith(preds ...predicate.Bidder) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newBiddersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBidItems applies the HasEdge predicate on the "bid_items" edge.
func HasBidItems() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BidItemsTable, BidItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBidItemsWith applies the HasEdge predicate on the "bid_items" edge with a given conditions (other predicates).
func HasBidItemsWith(preds ...predicate.BidItem) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newBidItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
