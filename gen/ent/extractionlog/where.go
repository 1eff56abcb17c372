// Code generated by ent, DO NOT EDIT.

package extractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldID, id))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFilePath, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldDocumentType, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldExtractionMethod, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldConfidenceScore, v))
}

// ProcessingSeconds applies equality check predicate on the "processing_seconds" field. It's identical to ProcessingSecondsEQ.
func ProcessingSeconds(v float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldProcessingSeconds, v))
}

// RecordsExtracted applies equality check predicate on the "records_extracted" field. It's identical to RecordsExtractedEQ.
func RecordsExtracted(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRecordsExtracted, v))
}

// FileHash applies equality check predicate on the "file_hash" field. It's identical to FileHashEQ.
func FileHash(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFileHash, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileModTime applies equality check predicate on the "file_mod_time" field. It's identical to FileModTimeEQ.
func FileModTime(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFileModTime, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRunID, v))
}

// ExtractionTime applies equality check predicate on the "extraction_time" field. It's identical to ExtractionTimeEQ.
func ExtractionTime(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldExtractionTime, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldFilePath, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldDocumentType, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodIsNil applies the IsNil predicate on the "extraction_method" field.
func ExtractionMethodIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldExtractionMethod))
}

// ExtractionMethodNotNil applies the NotNil predicate on the "extraction_method" field.
func ExtractionMethodNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldExtractionMethod))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float32) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldConfidenceScore))
}

// ProcessingSecondsEQ applies the EQ predicate on the "processing_seconds" field.
func ProcessingSecondsEQ(v float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldProcessingSeconds, v))
}

// ProcessingSecondsNEQ applies the NEQ predicate on the "processing_seconds" field.
func ProcessingSecondsNEQ(v float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldProcessingSeconds, v))
}

// ProcessingSecondsIn applies the In predicate on the "processing_seconds" field.
func ProcessingSecondsIn(vs ...float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldProcessingSeconds, vs...))
}

// ProcessingSecondsNotIn applies the NotIn predicate on the "processing_seconds" field.
func ProcessingSecondsNotIn(vs ...float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldProcessingSeconds, vs...))
}

// ProcessingSecondsGT applies the GT predicate on the "processing_seconds" field.
func ProcessingSecondsGT(v float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldProcessingSeconds, v))
}

// ProcessingSecondsGTE applies the GTE predicate on the "processing_seconds" field.
func ProcessingSecondsGTE(v float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldProcessingSeconds, v))
}

// ProcessingSecondsLT applies the LT predicate on the "processing_seconds" field.
func ProcessingSecondsLT(v float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldProcessingSeconds, v))
}

// ProcessingSecondsLTE applies the LTE predicate on the "processing_seconds" field.
func ProcessingSecondsLTE(v float64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldProcessingSeconds, v))
}

// ProcessingSecondsIsNil applies the IsNil predicate on the "processing_seconds" field.
func ProcessingSecondsIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldProcessingSeconds))
}

// ProcessingSecondsNotNil applies the NotNil predicate on the "processing_seconds" field.
func ProcessingSecondsNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldProcessingSeconds))
}

// RecordsExtractedEQ applies the EQ predicate on the "records_extracted" field.
func RecordsExtractedEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRecordsExtracted, v))
}

// RecordsExtractedNEQ applies the NEQ predicate on the "records_extracted" field.
func RecordsExtractedNEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldRecordsExtracted, v))
}

// RecordsExtractedIn applies the In predicate on the "records_extracted" field.
func RecordsExtractedIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldRecordsExtracted, vs...))
}

// RecordsExtractedNotIn applies the NotIn predicate on the "records_extracted" field.
func RecordsExtractedNotIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldRecordsExtracted, vs...))
}

// RecordsExtractedGT applies the GT predicate on the "records_extracted" field.
func RecordsExtractedGT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldRecordsExtracted, v))
}

// RecordsExtractedGTE applies the GTE predicate on the "records_extracted" field.
func RecordsExtractedGTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldRecordsExtracted, v))
}

// RecordsExtractedLT applies the LT predicate on the "records_extracted" field.
func RecordsExtractedLT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldRecordsExtracted, v))
}

// RecordsExtractedLTE applies the LTE predicate on the "records_extracted" field.
func RecordsExtractedLTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldRecordsExtracted, v))
}

// ValidationFailedIsNil applies the IsNil predicate on the "validation_failed" field.
func ValidationFailedIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldValidationFailed))
}

// ValidationFailedNotNil applies the NotNil predicate on the "validation_failed" field.
func ValidationFailedNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldValidationFailed))
}

// FileHashEQ applies the EQ predicate on the "file_hash" field.
func FileHashEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFileHash, v))
}

// FileHashNEQ applies the NEQ predicate on the "file_hash" field.
func FileHashNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldFileHash, v))
}

// FileHashIn applies the In predicate on the "file_hash" field.
func FileHashIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldFileHash, vs...))
}

// FileHashNotIn applies the NotIn predicate on the "file_hash" field.
func FileHashNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldFileHash, vs...))
}

// FileHashGT applies the GT predicate on the "file_hash" field.
func FileHashGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldFileHash, v))
}

// FileHashGTE applies the GTE predicate on the "file_hash" field.
func FileHashGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldFileHash, v))
}

// FileHashLT applies the LT predicate on the "file_hash" field.
func FileHashLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldFileHash, v))
}

// FileHashLTE applies the LTE predicate on the "file_hash" field.
func FileHashLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldFileHash, v))
}

// FileHashContains applies the Contains predicate on the "file_hash" field.
func FileHashContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldFileHash, v))
}

// FileHashHasPrefix applies the HasPrefix predicate on the "file_hash" field.
func FileHashHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldFileHash, v))
}

// FileHashHasSuffix applies the HasSuffix predicate on the "file_hash" field.
func FileHashHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldFileHash, v))
}

// FileHashIsNil applies the IsNil predicate on the "file_hash" field.
func FileHashIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldFileHash))
}

// FileHashNotNil applies the NotNil predicate on the "file_hash" field.
func FileHashNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldFileHash))
}

// FileHashEqualFold applies the EqualFold predicate on the "file_hash" field.
func FileHashEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldFileHash, v))
}

// FileHashContainsFold applies the ContainsFold predicate on the "file_hash" field.
func FileHashContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldFileHash, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldFileSizeBytes, v))
}

// FileSizeBytesIsNil applies the IsNil predicate on the "file_size_bytes" field.
func FileSizeBytesIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldFileSizeBytes))
}

// FileSizeBytesNotNil applies the NotNil predicate on the "file_size_bytes" field.
func FileSizeBytesNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldFileSizeBytes))
}

// FileModTimeEQ applies the EQ predicate on the "file_mod_time" field.
func FileModTimeEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFileModTime, v))
}

// FileModTimeNEQ applies the NEQ predicate on the "file_mod_time" field.
func FileModTimeNEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldFileModTime, v))
}

// FileModTimeIn applies the In predicate on the "file_mod_time" field.
func FileModTimeIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldFileModTime, vs...))
}

// FileModTimeNotIn applies the NotIn predicate on the "file_mod_time" field.
func FileModTimeNotIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldFileModTime, vs...))
}

// FileModTimeGT applies the GT predicate on the "file_mod_time" field.
func FileModTimeGT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldFileModTime, v))
}

// FileModTimeGTE applies the GTE predicate on the "file_mod_time" field.
func FileModTimeGTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldFileModTime, v))
}

// FileModTimeLT applies the LT predicate on the "file_mod_time" field.
func FileModTimeLT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldFileModTime, v))
}

// FileModTimeLTE applies the LTE predicate on the "file_mod_time" field.
func FileModTimeLTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldFileModTime, v))
}

// FileModTimeIsNil applies the IsNil predicate on the "file_mod_time" field.
func FileModTimeIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldFileModTime))
}

// FileModTimeNotNil applies the NotNil predicate on the "file_mod_time" field.
func FileModTimeNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldFileModTime))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldRunID, v))
}

// ExtractionTimeEQ applies the EQ predicate on the "extraction_time" field.
func ExtractionTimeEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldExtractionTime, v))
}

// ExtractionTimeNEQ applies the NEQ predicate on the "extraction_time" field.
func ExtractionTimeNEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldExtractionTime, v))
}

// ExtractionTimeIn applies the In predicate on the "extraction_time" field.
func ExtractionTimeIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldExtractionTime, vs...))
}

// ExtractionTimeNotIn applies the NotIn predicate on the "extraction_time" field.
func ExtractionTimeNotIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldExtractionTime, vs...))
}

// ExtractionTimeGT applies the GT predicate on the "extraction_time" field.
func ExtractionTimeGT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldExtractionTime, v))
}

// ExtractionTimeGTE applies the GTE predicate on the "extraction_time" field.
func ExtractionTimeGTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldExtractionTime, v))
}

// ExtractionTimeLT applies the LT predicate on the "extraction_time" field.
func ExtractionTimeLT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldExtractionTime, v))
}

// ExtractionTimeLTE applies the LTE predicate on the "extraction_time" field.
func ExtractionTimeLTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldExtractionTime, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.NotPredicates(p))
}
