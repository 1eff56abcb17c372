// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/extractionlog"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/predicate"
)

// ExtractionLogUpdate is the builder for updating ExtractionLog entities.
type ExtractionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionLogMutation
}

// Where appends a list predicates to the ExtractionLogUpdate builder.
func (_u *ExtractionLogUpdate) Where(ps ...predicate.ExtractionLog) *ExtractionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ExtractionLogUpdate) SetFilePath(v string) *ExtractionLogUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableFilePath(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ExtractionLogUpdate) SetDocumentType(v string) *ExtractionLogUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableDocumentType(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ExtractionLogUpdate) SetExtractionMethod(v string) *ExtractionLogUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableExtractionMethod(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (_u *ExtractionLogUpdate) ClearExtractionMethod() *ExtractionLogUpdate {
	_u.mutation.ClearExtractionMethod()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionLogUpdate) SetStatus(v string) *ExtractionLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableStatus(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionLogUpdate) SetErrorMessage(v string) *ExtractionLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableErrorMessage(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionLogUpdate) ClearErrorMessage() *ExtractionLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractionLogUpdate) SetConfidenceScore(v float32) *ExtractionLogUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableConfidenceScore(v *float32) *ExtractionLogUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractionLogUpdate) AddConfidenceScore(v float32) *ExtractionLogUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ExtractionLogUpdate) ClearConfidenceScore() *ExtractionLogUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetProcessingSeconds sets the "processing_seconds" field.
func (_u *ExtractionLogUpdate) SetProcessingSeconds(v float64) *ExtractionLogUpdate {
	_u.mutation.ResetProcessingSeconds()
	_u.mutation.SetProcessingSeconds(v)
	return _u
}

// SetNillableProcessingSeconds sets the "processing_seconds" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableProcessingSeconds(v *float64) *ExtractionLogUpdate {
	if v != nil {
		_u.SetProcessingSeconds(*v)
	}
	return _u
}

// AddProcessingSeconds adds value to the "processing_seconds" field.
func (_u *ExtractionLogUpdate) AddProcessingSeconds(v float64) *ExtractionLogUpdate {
	_u.mutation.AddProcessingSeconds(v)
	return _u
}

// ClearProcessingSeconds clears the value of the "processing_seconds" field.
func (_u *ExtractionLogUpdate) ClearProcessingSeconds() *ExtractionLogUpdate {
	_u.mutation.ClearProcessingSeconds()
	return _u
}

// SetRecordsExtracted sets the "records_extracted" field.
func (_u *ExtractionLogUpdate) SetRecordsExtracted(v int) *ExtractionLogUpdate {
	_u.mutation.ResetRecordsExtracted()
	_u.mutation.SetRecordsExtracted(v)
	return _u
}

// SetNillableRecordsExtracted sets the "records_extracted" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableRecordsExtracted(v *int) *ExtractionLogUpdate {
	if v != nil {
		_u.SetRecordsExtracted(*v)
	}
	return _u
}

// AddRecordsExtracted adds value to the "records_extracted" field.
func (_u *ExtractionLogUpdate) AddRecordsExtracted(v int) *ExtractionLogUpdate {
	_u.mutation.AddRecordsExtracted(v)
	return _u
}

// SetValidationFailed sets the "validation_failed" field.
func (_u *ExtractionLogUpdate) SetValidationFailed(v []string) *ExtractionLogUpdate {
	_u.mutation.SetValidationFailed(v)
	return _u
}

// AppendValidationFailed appends value to the "validation_failed" field.
func (_u *ExtractionLogUpdate) AppendValidationFailed(v []string) *ExtractionLogUpdate {
	_u.mutation.AppendValidationFailed(v)
	return _u
}

// ClearValidationFailed clears the value of the "validation_failed" field.
func (_u *ExtractionLogUpdate) ClearValidationFailed() *ExtractionLogUpdate {
	_u.mutation.ClearValidationFailed()
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *ExtractionLogUpdate) SetFileHash(v string) *ExtractionLogUpdate {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableFileHash(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// ClearFileHash clears the value of the "file_hash" field.
func (_u *ExtractionLogUpdate) ClearFileHash() *ExtractionLogUpdate {
	_u.mutation.ClearFileHash()
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *ExtractionLogUpdate) SetFileSizeBytes(v int64) *ExtractionLogUpdate {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableFileSizeBytes(v *int64) *ExtractionLogUpdate {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *ExtractionLogUpdate) AddFileSizeBytes(v int64) *ExtractionLogUpdate {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *ExtractionLogUpdate) ClearFileSizeBytes() *ExtractionLogUpdate {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetFileModTime sets the "file_mod_time" field.
func (_u *ExtractionLogUpdate) SetFileModTime(v time.Time) *ExtractionLogUpdate {
	_u.mutation.SetFileModTime(v)
	return _u
}

// SetNillableFileModTime sets the "file_mod_time" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableFileModTime(v *time.Time) *ExtractionLogUpdate {
	if v != nil {
		_u.SetFileModTime(*v)
	}
	return _u
}

// ClearFileModTime clears the value of the "file_mod_time" field.
func (_u *ExtractionLogUpdate) ClearFileModTime() *ExtractionLogUpdate {
	_u.mutation.ClearFileModTime()
	return _u
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_u *ExtractionLogUpdate) Mutation() *ExtractionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionLogUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := extractionlog.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := extractionlog.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordsExtracted(); ok {
		if err := extractionlog.RecordsExtractedValidator(v); err != nil {
			return &ValidationError{Name: "records_extracted", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.records_extracted": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionlog.Table, extractionlog.Columns, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(extractionlog.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(extractionlog.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(extractionlog.FieldExtractionMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractionMethodCleared() {
		_spec.ClearField(extractionlog.FieldExtractionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionlog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractionlog.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractionlog.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(extractionlog.FieldConfidenceScore, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ProcessingSeconds(); ok {
		_spec.SetField(extractionlog.FieldProcessingSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingSeconds(); ok {
		_spec.AddField(extractionlog.FieldProcessingSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.ProcessingSecondsCleared() {
		_spec.ClearField(extractionlog.FieldProcessingSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecordsExtracted(); ok {
		_spec.SetField(extractionlog.FieldRecordsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsExtracted(); ok {
		_spec.AddField(extractionlog.FieldRecordsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationFailed(); ok {
		_spec.SetField(extractionlog.FieldValidationFailed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationFailed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionlog.FieldValidationFailed, value)
		})
	}
	if _u.mutation.ValidationFailedCleared() {
		_spec.ClearField(extractionlog.FieldValidationFailed, field.TypeJSON)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(extractionlog.FieldFileHash, field.TypeString, value)
	}
	if _u.mutation.FileHashCleared() {
		_spec.ClearField(extractionlog.FieldFileHash, field.TypeString)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(extractionlog.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(extractionlog.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(extractionlog.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.FileModTime(); ok {
		_spec.SetField(extractionlog.FieldFileModTime, field.TypeTime, value)
	}
	if _u.mutation.FileModTimeCleared() {
		_spec.ClearField(extractionlog.FieldFileModTime, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionLogUpdateOne is the builder for updating a single ExtractionLog entity.
type ExtractionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionLogMutation
}

// SetFilePath sets the "file_path" field.
func (_u *ExtractionLogUpdateOne) SetFilePath(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableFilePath(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ExtractionLogUpdateOne) SetDocumentType(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableDocumentType(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ExtractionLogUpdateOne) SetExtractionMethod(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableExtractionMethod(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (_u *ExtractionLogUpdateOne) ClearExtractionMethod() *ExtractionLogUpdateOne {
	_u.mutation.ClearExtractionMethod()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionLogUpdateOne) SetStatus(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableStatus(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionLogUpdateOne) SetErrorMessage(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableErrorMessage(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionLogUpdateOne) ClearErrorMessage() *ExtractionLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractionLogUpdateOne) SetConfidenceScore(v float32) *ExtractionLogUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableConfidenceScore(v *float32) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractionLogUpdateOne) AddConfidenceScore(v float32) *ExtractionLogUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ExtractionLogUpdateOne) ClearConfidenceScore() *ExtractionLogUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetProcessingSeconds sets the "processing_seconds" field.
func (_u *ExtractionLogUpdateOne) SetProcessingSeconds(v float64) *ExtractionLogUpdateOne {
	_u.mutation.ResetProcessingSeconds()
	_u.mutation.SetProcessingSeconds(v)
	return _u
}

// SetNillableProcessingSeconds sets the "processing_seconds" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableProcessingSeconds(v *float64) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetProcessingSeconds(*v)
	}
	return _u
}

// AddProcessingSeconds adds value to the "processing_seconds" field.
func (_u *ExtractionLogUpdateOne) AddProcessingSeconds(v float64) *ExtractionLogUpdateOne {
	_u.mutation.AddProcessingSeconds(v)
	return _u
}

// ClearProcessingSeconds clears the value of the "processing_seconds" field.
func (_u *ExtractionLogUpdateOne) ClearProcessingSeconds() *ExtractionLogUpdateOne {
	_u.mutation.ClearProcessingSeconds()
	return _u
}

// SetRecordsExtracted sets the "records_extracted" field.
func (_u *ExtractionLogUpdateOne) SetRecordsExtracted(v int) *ExtractionLogUpdateOne {
	_u.mutation.ResetRecordsExtracted()
	_u.mutation.SetRecordsExtracted(v)
	return _u
}

// SetNillableRecordsExtracted sets the "records_extracted" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableRecordsExtracted(v *int) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetRecordsExtracted(*v)
	}
	return _u
}

// AddRecordsExtracted adds value to the "records_extracted" field.
func (_u *ExtractionLogUpdateOne) AddRecordsExtracted(v int) *ExtractionLogUpdateOne {
	_u.mutation.AddRecordsExtracted(v)
	return _u
}

// SetValidationFailed sets the "validation_failed" field.
func (_u *ExtractionLogUpdateOne) SetValidationFailed(v []string) *ExtractionLogUpdateOne {
	_u.mutation.SetValidationFailed(v)
	return _u
}

// AppendValidationFailed appends value to the "validation_failed" field.
func (_u *ExtractionLogUpdateOne) AppendValidationFailed(v []string) *ExtractionLogUpdateOne {
	_u.mutation.AppendValidationFailed(v)
	return _u
}

// ClearValidationFailed clears the value of the "validation_failed" field.
func (_u *ExtractionLogUpdateOne) ClearValidationFailed() *ExtractionLogUpdateOne {
	_u.mutation.ClearValidationFailed()
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *ExtractionLogUpdateOne) SetFileHash(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableFileHash(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// ClearFileHash clears the value of the "file_hash" field.
func (_u *ExtractionLogUpdateOne) ClearFileHash() *ExtractionLogUpdateOne {
	_u.mutation.ClearFileHash()
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *ExtractionLogUpdateOne) SetFileSizeBytes(v int64) *ExtractionLogUpdateOne {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableFileSizeBytes(v *int64) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *ExtractionLogUpdateOne) AddFileSizeBytes(v int64) *ExtractionLogUpdateOne {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *ExtractionLogUpdateOne) ClearFileSizeBytes() *ExtractionLogUpdateOne {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetFileModTime sets the "file_mod_time" field.
func (_u *ExtractionLogUpdateOne) SetFileModTime(v time.Time) *ExtractionLogUpdateOne {
	_u.mutation.SetFileModTime(v)
	return _u
}

// SetNillableFileModTime sets the "file_mod_time" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableFileModTime(v *time.Time) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetFileModTime(*v)
	}
	return _u
}

// ClearFileModTime clears the value of the "file_mod_time" field.
func (_u *ExtractionLogUpdateOne) ClearFileModTime() *ExtractionLogUpdateOne {
	_u.mutation.ClearFileModTime()
	return _u
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_u *ExtractionLogUpdateOne) Mutation() *ExtractionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionLogUpdate builder.
func (_u *ExtractionLogUpdateOne) Where(ps ...predicate.ExtractionLog) *ExtractionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionLogUpdateOne) Select(field string, fields ...string) *ExtractionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionLog entity.
func (_u *ExtractionLogUpdateOne) Save(ctx context.Context) (*ExtractionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionLogUpdateOne) SaveX(ctx context.Context) *ExtractionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionLogUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := extractionlog.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := extractionlog.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordsExtracted(); ok {
		if err := extractionlog.RecordsExtractedValidator(v); err != nil {
			return &ValidationError{Name: "records_extracted", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.records_extracted": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionlog.Table, extractionlog.Columns, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionlog.FieldID)
		for _, f := range fields {
			if !extractionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionlog.FieldID {
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
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(extractionlog.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(extractionlog.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(extractionlog.FieldExtractionMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractionMethodCleared() {
		_spec.ClearField(extractionlog.FieldExtractionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionlog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractionlog.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractionlog.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(extractionlog.FieldConfidenceScore, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ProcessingSeconds(); ok {
		_spec.SetField(extractionlog.FieldProcessingSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingSeconds(); ok {
		_spec.AddField(extractionlog.FieldProcessingSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.ProcessingSecondsCleared() {
		_spec.ClearField(extractionlog.FieldProcessingSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecordsExtracted(); ok {
		_spec.SetField(extractionlog.FieldRecordsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsExtracted(); ok {
		_spec.AddField(extractionlog.FieldRecordsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationFailed(); ok {
		_spec.SetField(extractionlog.FieldValidationFailed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationFailed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionlog.FieldValidationFailed, value)
		})
	}
	if _u.mutation.ValidationFailedCleared() {
		_spec.ClearField(extractionlog.FieldValidationFailed, field.TypeJSON)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(extractionlog.FieldFileHash, field.TypeString, value)
	}
	if _u.mutation.FileHashCleared() {
		_spec.ClearField(extractionlog.FieldFileHash, field.TypeString)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(extractionlog.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(extractionlog.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(extractionlog.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.FileModTime(); ok {
		_spec.SetField(extractionlog.FieldFileModTime, field.TypeTime, value)
	}
	if _u.mutation.FileModTimeCleared() {
		_spec.ClearField(extractionlog.FieldFileModTime, field.TypeTime)
	}
	_node = &ExtractionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
