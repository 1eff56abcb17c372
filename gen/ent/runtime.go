// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/db/ent/schema"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/bidder"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/biditem"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/extractionlog"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	biditemFields := schema.BidItem{}.Fields()
	_ = biditemFields
	// biditemDescID is the schema descriptor for id field.
	biditemDescID := biditemFields[0].Descriptor()
	// biditem.DefaultID holds the default value on creation for the id field.
	biditem.DefaultID = biditemDescID.Default.(func() uuid.UUID)
	bidderFields := schema.Bidder{}.Fields()
	_ = bidderFields
	// bidderDescBidderName is the schema descriptor for bidder_name field.
	bidderDescBidderName := bidderFields[2].Descriptor()
	// bidder.BidderNameValidator is a validator for the "bidder_name" field. It is called by the builders before save.
	bidder.BidderNameValidator = bidderDescBidderName.Validators[0].(func(string) error)
	// bidderDescIsWinner is the schema descriptor for is_winner field.
	bidderDescIsWinner := bidderFields[7].Descriptor()
	// bidder.DefaultIsWinner holds the default value on creation for the is_winner field.
	bidder.DefaultIsWinner = bidderDescIsWinner.Default.(bool)
	// bidderDescID is the schema descriptor for id field.
	bidderDescID := bidderFields[0].Descriptor()
	// bidder.DefaultID holds the default value on creation for the id field.
	bidder.DefaultID = bidderDescID.Default.(func() uuid.UUID)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescContractNumber is the schema descriptor for contract_number field.
	contractDescContractNumber := contractFields[1].Descriptor()
	// contract.ContractNumberValidator is a validator for the "contract_number" field. It is called by the builders before save.
	contract.ContractNumberValidator = contractDescContractNumber.Validators[0].(func(string) error)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[19].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[20].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	extractionlogFields := schema.ExtractionLog{}.Fields()
	_ = extractionlogFields
	// extractionlogDescFilePath is the schema descriptor for file_path field.
	extractionlogDescFilePath := extractionlogFields[1].Descriptor()
	// extractionlog.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	extractionlog.FilePathValidator = extractionlogDescFilePath.Validators[0].(func(string) error)
	// extractionlogDescDocumentType is the schema descriptor for document_type field.
	extractionlogDescDocumentType := extractionlogFields[2].Descriptor()
	// extractionlog.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	extractionlog.DocumentTypeValidator = func() func(string) error {
		validators := extractionlogDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionlogDescStatus is the schema descriptor for status field.
	extractionlogDescStatus := extractionlogFields[4].Descriptor()
	// extractionlog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionlog.StatusValidator = func() func(string) error {
		validators := extractionlogDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionlogDescRecordsExtracted is the schema descriptor for records_extracted field.
	extractionlogDescRecordsExtracted := extractionlogFields[8].Descriptor()
	// extractionlog.DefaultRecordsExtracted holds the default value on creation for the records_extracted field.
	extractionlog.DefaultRecordsExtracted = extractionlogDescRecordsExtracted.Default.(int)
	// extractionlog.RecordsExtractedValidator is a validator for the "records_extracted" field. It is called by the builders before save.
	extractionlog.RecordsExtractedValidator = extractionlogDescRecordsExtracted.Validators[0].(func(int) error)
	// extractionlogDescExtractionTime is the schema descriptor for extraction_time field.
	extractionlogDescExtractionTime := extractionlogFields[14].Descriptor()
	// extractionlog.DefaultExtractionTime holds the default value on creation for the extraction_time field.
	extractionlog.DefaultExtractionTime = extractionlogDescExtractionTime.Default.(func() time.Time)
	// extractionlogDescID is the schema descriptor for id field.
	extractionlogDescID := extractionlogFields[0].Descriptor()
	// extractionlog.DefaultID holds the default value on creation for the id field.
	extractionlog.DefaultID = extractionlogDescID.Default.(func() uuid.UUID)
}
