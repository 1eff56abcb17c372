// Code generated by ent, DO NOT EDIT.

package biditem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldContractID, v))
}

// ItemNumber applies equality check predicate on the "item_number" field. It's identical to ItemNumberEQ.
func ItemNumber(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldItemNumber, v))
}

// ItemCode applies equality check predicate on the "item_code" field. It's identical to ItemCodeEQ.
func ItemCode(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldItemCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldDescription, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldQuantity, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldUnit, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldUnitPrice, v))
}

// TotalPrice applies equality check predicate on the "total_price" field. It's identical to TotalPriceEQ.
func TotalPrice(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldTotalPrice, v))
}

// BidderName applies equality check predicate on the "bidder_name" field. It's identical to BidderNameEQ.
func BidderName(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldBidderName, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldContractID, vs...))
}

// ItemNumberEQ applies the EQ predicate on the "item_number" field.
func ItemNumberEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldItemNumber, v))
}

// ItemNumberNEQ applies the NEQ predicate on the "item_number" field.
func ItemNumberNEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldItemNumber, v))
}

// ItemNumberIn applies the In predicate on the "item_number" field.
func ItemNumberIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldItemNumber, vs...))
}

// ItemNumberNotIn applies the NotIn predicate on the "item_number" field.
func ItemNumberNotIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldItemNumber, vs...))
}

// ItemNumberGT applies the GT predicate on the "item_number" field.
func ItemNumberGT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldItemNumber, v))
}

// ItemNumberGTE applies the GTE predicate on the "item_number" field.
func ItemNumberGTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldItemNumber, v))
}

// ItemNumberLT applies the LT predicate on the "item_number" field.
func ItemNumberLT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldItemNumber, v))
}

// ItemNumberLTE applies the LTE predicate on the "item_number" field.
func ItemNumberLTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldItemNumber, v))
}

// ItemNumberContains applies the Contains predicate on the "item_number" field.
func ItemNumberContains(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContains(FieldItemNumber, v))
}

// ItemNumberHasPrefix applies the HasPrefix predicate on the "item_number" field.
func ItemNumberHasPrefix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasPrefix(FieldItemNumber, v))
}

// ItemNumberHasSuffix applies the HasSuffix predicate on the "item_number" field.
func ItemNumberHasSuffix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasSuffix(FieldItemNumber, v))
}

// ItemNumberIsNil applies the IsNil predicate on the "item_number" field.
func ItemNumberIsNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldIsNull(FieldItemNumber))
}

// ItemNumberNotNil applies the NotNil predicate on the "item_number" field.
func ItemNumberNotNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldNotNull(FieldItemNumber))
}

// ItemNumberEqualFold applies the EqualFold predicate on the "item_number" field.
func ItemNumberEqualFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEqualFold(FieldItemNumber, v))
}

// ItemNumberContainsFold applies the ContainsFold predicate on the "item_number" field.
func ItemNumberContainsFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContainsFold(FieldItemNumber, v))
}

// ItemCodeEQ applies the EQ predicate on the "item_code" field.
func ItemCodeEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldItemCode, v))
}

// ItemCodeNEQ applies the NEQ predicate on the "item_code" field.
func ItemCodeNEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldItemCode, v))
}

// ItemCodeIn applies the In predicate on the "item_code" field.
func ItemCodeIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldItemCode, vs...))
}

// ItemCodeNotIn applies the NotIn predicate on the "item_code" field.
func ItemCodeNotIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldItemCode, vs...))
}

// ItemCodeGT applies the GT predicate on the "item_code" field.
func ItemCodeGT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldItemCode, v))
}

// ItemCodeGTE applies the GTE predicate on the "item_code" field.
func ItemCodeGTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldItemCode, v))
}

// ItemCodeLT applies the LT predicate on the "item_code" field.
func ItemCodeLT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldItemCode, v))
}

// ItemCodeLTE applies the LTE predicate on the "item_code" field.
func ItemCodeLTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldItemCode, v))
}

// ItemCodeContains applies the Contains predicate on the "item_code" field.
func ItemCodeContains(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContains(FieldItemCode, v))
}

// ItemCodeHasPrefix applies the HasPrefix predicate on the "item_code" field.
func ItemCodeHasPrefix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasPrefix(FieldItemCode, v))
}

// ItemCodeHasSuffix applies the HasSuffix predicate on the "item_code" field.
func ItemCodeHasSuffix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasSuffix(FieldItemCode, v))
}

// ItemCodeIsNil applies the IsNil predicate on the "item_code" field.
func ItemCodeIsNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldIsNull(FieldItemCode))
}

// ItemCodeNotNil applies the NotNil predicate on the "item_code" field.
func ItemCodeNotNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldNotNull(FieldItemCode))
}

// ItemCodeEqualFold applies the EqualFold predicate on the "item_code" field.
func ItemCodeEqualFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEqualFold(FieldItemCode, v))
}

// ItemCodeContainsFold applies the ContainsFold predicate on the "item_code" field.
func ItemCodeContainsFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContainsFold(FieldItemCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContainsFold(FieldDescription, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldQuantity, v))
}

// QuantityIsNil applies the IsNil predicate on the "quantity" field.
func QuantityIsNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldIsNull(FieldQuantity))
}

// QuantityNotNil applies the NotNil predicate on the "quantity" field.
func QuantityNotNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldNotNull(FieldQuantity))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContainsFold(FieldUnit, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldUnitPrice, v))
}

// UnitPriceIsNil applies the IsNil predicate on the "unit_price" field.
func UnitPriceIsNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldIsNull(FieldUnitPrice))
}

// UnitPriceNotNil applies the NotNil predicate on the "unit_price" field.
func UnitPriceNotNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldNotNull(FieldUnitPrice))
}

// TotalPriceEQ applies the EQ predicate on the "total_price" field.
func TotalPriceEQ(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalPriceNEQ applies the NEQ predicate on the "total_price" field.
func TotalPriceNEQ(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldTotalPrice, v))
}

// TotalPriceIn applies the In predicate on the "total_price" field.
func TotalPriceIn(vs ...float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldTotalPrice, vs...))
}

// TotalPriceNotIn applies the NotIn predicate on the "total_price" field.
func TotalPriceNotIn(vs ...float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldTotalPrice, vs...))
}

// TotalPriceGT applies the GT predicate on the "total_price" field.
func TotalPriceGT(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldTotalPrice, v))
}

// TotalPriceGTE applies the GTE predicate on the "total_price" field.
func TotalPriceGTE(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldTotalPrice, v))
}

// TotalPriceLT applies the LT predicate on the "total_price" field.
func TotalPriceLT(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldTotalPrice, v))
}

// TotalPriceLTE applies the LTE predicate on the "total_price" field.
func TotalPriceLTE(v float64) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldTotalPrice, v))
}

// TotalPriceIsNil applies the IsNil predicate on the "total_price" field.
func TotalPriceIsNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldIsNull(FieldTotalPrice))
}

// TotalPriceNotNil applies the NotNil predicate on the "total_price" field.
func TotalPriceNotNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldNotNull(FieldTotalPrice))
}

// BidderNameEQ applies the EQ predicate on the "bidder_name" field.
func BidderNameEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEQ(FieldBidderName, v))
}

// BidderNameNEQ applies the NEQ predicate on the "bidder_name" field.
func BidderNameNEQ(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNEQ(FieldBidderName, v))
}

// BidderNameIn applies the In predicate on the "bidder_name" field.
func BidderNameIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldIn(FieldBidderName, vs...))
}

// BidderNameNotIn applies the NotIn predicate on the "bidder_name" field.
func BidderNameNotIn(vs ...string) predicate.BidItem {
	return predicate.BidItem(sql.FieldNotIn(FieldBidderName, vs...))
}

// BidderNameGT applies the GT predicate on the "bidder_name" field.
func BidderNameGT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGT(FieldBidderName, v))
}

// BidderNameGTE applies the GTE predicate on the "bidder_name" field.
func BidderNameGTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldGTE(FieldBidderName, v))
}

// BidderNameLT applies the LT predicate on the "bidder_name" field.
func BidderNameLT(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLT(FieldBidderName, v))
}

// BidderNameLTE applies the LTE predicate on the "bidder_name" field.
func BidderNameLTE(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldLTE(FieldBidderName, v))
}

// BidderNameContains applies the Contains predicate on the "bidder_name" field.
func BidderNameContains(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContains(FieldBidderName, v))
}

// BidderNameHasPrefix applies the HasPrefix predicate on the "bidder_name" field.
func BidderNameHasPrefix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasPrefix(FieldBidderName, v))
}

// BidderNameHasSuffix applies the HasSuffix predicate on the "bidder_name" field.
func BidderNameHasSuffix(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldHasSuffix(FieldBidderName, v))
}

// BidderNameIsNil applies the IsNil predicate on the "bidder_name" field.
func BidderNameIsNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldIsNull(FieldBidderName))
}

// BidderNameNotNil applies the NotNil predicate on the "bidder_name" field.
func BidderNameNotNil() predicate.BidItem {
	return predicate.BidItem(sql.FieldNotNull(FieldBidderName))
}

// BidderNameEqualFold applies the EqualFold predicate on the "bidder_name" field.
func BidderNameEqualFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldEqualFold(FieldBidderName, v))
}

// BidderNameContainsFold applies the ContainsFold predicate on the "bidder_name" field.
func BidderNameContainsFold(v string) predicate.BidItem {
	return predicate.BidItem(sql.FieldContainsFold(FieldBidderName, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.BidItem {
	return predicate.BidItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.BidItem {
	return predicate.BidItem(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BidItem) predicate.BidItem {
	return predicate.BidItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BidItem) predicate.BidItem {
	return predicate.BidItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BidItem) predicate.BidItem {
	return predicate.BidItem(sql.NotPredicates(p))
}
