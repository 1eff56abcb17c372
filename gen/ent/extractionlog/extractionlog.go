// Code generated by ent, DO NOT EDIT.

package extractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionlog type in the database.
	Label = "extraction_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldExtractionMethod holds the string denoting the extraction_method field in the database.
	FieldExtractionMethod = "extraction_method"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldProcessingSeconds holds the string denoting the processing_seconds field in the database.
	FieldProcessingSeconds = "processing_seconds"
	// FieldRecordsExtracted holds the string denoting the records_extracted field in the database.
	FieldRecordsExtracted = "records_extracted"
	// FieldValidationFailed holds the string denoting the validation_failed field in the database.
	FieldValidationFailed = "validation_failed"
	// FieldFileHash holds the string denoting the file_hash field in the database.
	FieldFileHash = "file_hash"
	// FieldFileSizeBytes holds the string denoting the file_size_bytes field in the database.
	FieldFileSizeBytes = "file_size_bytes"
	// FieldFileModTime holds the string denoting the file_mod_time field in the database.
	FieldFileModTime = "file_mod_time"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldExtractionTime holds the string denoting the extraction_time field in the database.
	FieldExtractionTime = "extraction_time"
	// Table holds the table name of the extractionlog in the database.
	Table = "extraction_logs"
)

// Columns holds all SQL columns for extractionlog fields.
var Columns = []string{
	FieldID,
	FieldFilePath,
	FieldDocumentType,
	FieldExtractionMethod,
	FieldStatus,
	FieldErrorMessage,
	FieldConfidenceScore,
	FieldProcessingSeconds,
	FieldRecordsExtracted,
	FieldValidationFailed,
	FieldFileHash,
	FieldFileSizeBytes,
	FieldFileModTime,
	FieldRunID,
	FieldExtractionTime,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultRecordsExtracted holds the default value on creation for the "records_extracted" field.
	DefaultRecordsExtracted int
	// RecordsExtractedValidator is a validator for the "records_extracted" field. It is called by the builders before save.
	RecordsExtractedValidator func(int) error
	// DefaultExtractionTime holds the default value on creation for the "extraction_time" field.
	DefaultExtractionTime func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByExtractionMethod orders the results by the extraction_method field.
func ByExtractionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMethod, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByProcessingSeconds orders the results by the processing_seconds field.
func ByProcessingSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingSeconds, opts...).ToFunc()
}

// ByRecordsExtracted orders the results by the records_extracted field.
func ByRecordsExtracted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordsExtracted, opts...).ToFunc()
}

// ByFileHash orders the results by the file_hash field.
func ByFileHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileHash, opts...).ToFunc()
}

// ByFileSizeBytes orders the results by the file_size_bytes field.
func ByFileSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeBytes, opts...).ToFunc()
}

// ByFileModTime orders the results by the file_mod_time field.
func ByFileModTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileModTime, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByExtractionTime orders the results by the extraction_time field.
func ByExtractionTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionTime, opts...).ToFunc()
}
