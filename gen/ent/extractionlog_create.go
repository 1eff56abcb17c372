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
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/extractionlog"
	"github.com/google/uuid"
)

// ExtractionLogCreate is the builder for creating a ExtractionLog entity.
type ExtractionLogCreate struct {
	config
	mutation *ExtractionLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFilePath sets the "file_path" field.
func (_c *ExtractionLogCreate) SetFilePath(v string) *ExtractionLogCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *ExtractionLogCreate) SetDocumentType(v string) *ExtractionLogCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *ExtractionLogCreate) SetExtractionMethod(v string) *ExtractionLogCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableExtractionMethod(v *string) *ExtractionLogCreate {
	if v != nil {
		_c.SetExtractionMethod(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionLogCreate) SetStatus(v string) *ExtractionLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionLogCreate) SetErrorMessage(v string) *ExtractionLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableErrorMessage(v *string) *ExtractionLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ExtractionLogCreate) SetConfidenceScore(v float32) *ExtractionLogCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableConfidenceScore(v *float32) *ExtractionLogCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetProcessingSeconds sets the "processing_seconds" field.
func (_c *ExtractionLogCreate) SetProcessingSeconds(v float64) *ExtractionLogCreate {
	_c.mutation.SetProcessingSeconds(v)
	return _c
}

// SetNillableProcessingSeconds sets the "processing_seconds" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableProcessingSeconds(v *float64) *ExtractionLogCreate {
	if v != nil {
		_c.SetProcessingSeconds(*v)
	}
	return _c
}

// SetRecordsExtracted sets the "records_extracted" field.
func (_c *ExtractionLogCreate) SetRecordsExtracted(v int) *ExtractionLogCreate {
	_c.mutation.SetRecordsExtracted(v)
	return _c
}

// SetNillableRecordsExtracted sets the "records_extracted" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableRecordsExtracted(v *int) *ExtractionLogCreate {
	if v != nil {
		_c.SetRecordsExtracted(*v)
	}
	return _c
}

// SetValidationFailed sets the "validation_failed" field.
func (_c *ExtractionLogCreate) SetValidationFailed(v []string) *ExtractionLogCreate {
	_c.mutation.SetValidationFailed(v)
	return _c
}

// SetFileHash sets the "file_hash" field.
func (_c *ExtractionLogCreate) SetFileHash(v string) *ExtractionLogCreate {
	_c.mutation.SetFileHash(v)
	return _c
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableFileHash(v *string) *ExtractionLogCreate {
	if v != nil {
		_c.SetFileHash(*v)
	}
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *ExtractionLogCreate) SetFileSizeBytes(v int64) *ExtractionLogCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableFileSizeBytes(v *int64) *ExtractionLogCreate {
	if v != nil {
		_c.SetFileSizeBytes(*v)
	}
	return _c
}

// SetFileModTime sets the "file_mod_time" field.
func (_c *ExtractionLogCreate) SetFileModTime(v time.Time) *ExtractionLogCreate {
	_c.mutation.SetFileModTime(v)
	return _c
}

// SetNillableFileModTime sets the "file_mod_time" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableFileModTime(v *time.Time) *ExtractionLogCreate {
	if v != nil {
		_c.SetFileModTime(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ExtractionLogCreate) SetRunID(v uuid.UUID) *ExtractionLogCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetExtractionTime sets the "extraction_time" field.
func (_c *ExtractionLogCreate) SetExtractionTime(v time.Time) *ExtractionLogCreate {
	_c.mutation.SetExtractionTime(v)
	return _c
}

// SetNillableExtractionTime sets the "extraction_time" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableExtractionTime(v *time.Time) *ExtractionLogCreate {
	if v != nil {
		_c.SetExtractionTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionLogCreate) SetID(v uuid.UUID) *ExtractionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableID(v *uuid.UUID) *ExtractionLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_c *ExtractionLogCreate) Mutation() *ExtractionLogMutation {
	return _c.mutation
}

// Save creates the ExtractionLog in the database.
func (_c *ExtractionLogCreate) Save(ctx context.Context) (*ExtractionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionLogCreate) SaveX(ctx context.Context) *ExtractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionLogCreate) defaults() {
	if _, ok := _c.mutation.RecordsExtracted(); !ok {
		v := extractionlog.DefaultRecordsExtracted
		_c.mutation.SetRecordsExtracted(v)
	}
	if _, ok := _c.mutation.ExtractionTime(); !ok {
		v := extractionlog.DefaultExtractionTime()
		_c.mutation.SetExtractionTime(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionLogCreate) check() error {
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "ExtractionLog.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := extractionlog.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "ExtractionLog.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := extractionlog.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordsExtracted(); !ok {
		return &ValidationError{Name: "records_extracted", err: errors.New(`ent: missing required field "ExtractionLog.records_extracted"`)}
	}
	if v, ok := _c.mutation.RecordsExtracted(); ok {
		if err := extractionlog.RecordsExtractedValidator(v); err != nil {
			return &ValidationError{Name: "records_extracted", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.records_extracted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ExtractionLog.run_id"`)}
	}
	if _, ok := _c.mutation.ExtractionTime(); !ok {
		return &ValidationError{Name: "extraction_time", err: errors.New(`ent: missing required field "ExtractionLog.extraction_time"`)}
	}
	return nil
}

func (_c *ExtractionLogCreate) sqlSave(ctx context.Context) (*ExtractionLog, error) {
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

func (_c *ExtractionLogCreate) createSpec() (*ExtractionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionlog.Table, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(extractionlog.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(extractionlog.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(extractionlog.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractionlog.FieldConfidenceScore, field.TypeFloat32, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.ProcessingSeconds(); ok {
		_spec.SetField(extractionlog.FieldProcessingSeconds, field.TypeFloat64, value)
		_node.ProcessingSeconds = &value
	}
	if value, ok := _c.mutation.RecordsExtracted(); ok {
		_spec.SetField(extractionlog.FieldRecordsExtracted, field.TypeInt, value)
		_node.RecordsExtracted = value
	}
	if value, ok := _c.mutation.ValidationFailed(); ok {
		_spec.SetField(extractionlog.FieldValidationFailed, field.TypeJSON, value)
		_node.ValidationFailed = value
	}
	if value, ok := _c.mutation.FileHash(); ok {
		_spec.SetField(extractionlog.FieldFileHash, field.TypeString, value)
		_node.FileHash = &value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(extractionlog.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = &value
	}
	if value, ok := _c.mutation.FileModTime(); ok {
		_spec.SetField(extractionlog.FieldFileModTime, field.TypeTime, value)
		_node.FileModTime = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(extractionlog.FieldRunID, field.TypeUUID, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ExtractionTime(); ok {
		_spec.SetField(extractionlog.FieldExtractionTime, field.TypeTime, value)
		_node.ExtractionTime = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionLog.Create().
//		SetFilePath(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionLogUpsert) {
//			SetFilePath(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionLogCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionLogUpsertOne {
	_c.conflict = opts
	return &ExtractionLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionLogCreate) OnConflictColumns(columns ...string) *ExtractionLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionLogUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionLogUpsertOne is the builder for "upsert"-ing
	//  one ExtractionLog node.
	ExtractionLogUpsertOne struct {
		create *ExtractionLogCreate
	}

	// ExtractionLogUpsert is the "OnConflict" setter.
	ExtractionLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilePath sets the "file_path" field.
func (u *ExtractionLogUpsert) SetFilePath(v string) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateFilePath() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldFilePath)
	return u
}

// SetDocumentType sets the "document_type" field.
func (u *ExtractionLogUpsert) SetDocumentType(v string) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldDocumentType, v)
	return u
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateDocumentType() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldDocumentType)
	return u
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *ExtractionLogUpsert) SetExtractionMethod(v string) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldExtractionMethod, v)
	return u
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateExtractionMethod() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldExtractionMethod)
	return u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (u *ExtractionLogUpsert) ClearExtractionMethod() *ExtractionLogUpsert {
	u.SetNull(extractionlog.FieldExtractionMethod)
	return u
}

// SetStatus sets the "status" field.
func (u *ExtractionLogUpsert) SetStatus(v string) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateStatus() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionLogUpsert) SetErrorMessage(v string) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateErrorMessage() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionLogUpsert) ClearErrorMessage() *ExtractionLogUpsert {
	u.SetNull(extractionlog.FieldErrorMessage)
	return u
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractionLogUpsert) SetConfidenceScore(v float32) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldConfidenceScore, v)
	return u
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateConfidenceScore() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldConfidenceScore)
	return u
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractionLogUpsert) AddConfidenceScore(v float32) *ExtractionLogUpsert {
	u.Add(extractionlog.FieldConfidenceScore, v)
	return u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (u *ExtractionLogUpsert) ClearConfidenceScore() *ExtractionLogUpsert {
	u.SetNull(extractionlog.FieldConfidenceScore)
	return u
}

// SetProcessingSeconds sets the "processing_seconds" field.
func (u *ExtractionLogUpsert) SetProcessingSeconds(v float64) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldProcessingSeconds, v)
	return u
}

// UpdateProcessingSeconds sets the "processing_seconds" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateProcessingSeconds() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldProcessingSeconds)
	return u
}

// AddProcessingSeconds adds v to the "processing_seconds" field.
func (u *ExtractionLogUpsert) AddProcessingSeconds(v float64) *ExtractionLogUpsert {
	u.Add(extractionlog.FieldProcessingSeconds, v)
	return u
}

// ClearProcessingSeconds clears the value of the "processing_seconds" field.
func (u *ExtractionLogUpsert) ClearProcessingSeconds() *ExtractionLogUpsert {
	u.SetNull(extractionlog.FieldProcessingSeconds)
	return u
}

// SetRecordsExtracted sets the "records_extracted" field.
func (u *ExtractionLogUpsert) SetRecordsExtracted(v int) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldRecordsExtracted, v)
	return u
}

// UpdateRecordsExtracted sets the "records_extracted" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateRecordsExtracted() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldRecordsExtracted)
	return u
}

// AddRecordsExtracted adds v to the "records_extracted" field.
func (u *ExtractionLogUpsert) AddRecordsExtracted(v int) *ExtractionLogUpsert {
	u.Add(extractionlog.FieldRecordsExtracted, v)
	return u
}

// SetValidationFailed sets the "validation_failed" field.
func (u *ExtractionLogUpsert) SetValidationFailed(v []string) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldValidationFailed, v)
	return u
}

// UpdateValidationFailed sets the "validation_failed" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateValidationFailed() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldValidationFailed)
	return u
}

// ClearValidationFailed clears the value of the "validation_failed" field.
func (u *ExtractionLogUpsert) ClearValidationFailed() *ExtractionLogUpsert {
	u.SetNull(extractionlog.FieldValidationFailed)
	return u
}

// SetFileHash sets the "file_hash" field.
func (u *ExtractionLogUpsert) SetFileHash(v string) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldFileHash, v)
	return u
}

// UpdateFileHash sets the "file_hash" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateFileHash() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldFileHash)
	return u
}

// ClearFileHash clears the value of the "file_hash" field.
func (u *ExtractionLogUpsert) ClearFileHash() *ExtractionLogUpsert {
	u.SetNull(extractionlog.FieldFileHash)
	return u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (u *ExtractionLogUpsert) SetFileSizeBytes(v int64) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldFileSizeBytes, v)
	return u
}

// UpdateFileSizeBytes sets the "file_size_bytes" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateFileSizeBytes() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldFileSizeBytes)
	return u
}

// AddFileSizeBytes adds v to the "file_size_bytes" field.
func (u *ExtractionLogUpsert) AddFileSizeBytes(v int64) *ExtractionLogUpsert {
	u.Add(extractionlog.FieldFileSizeBytes, v)
	return u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (u *ExtractionLogUpsert) ClearFileSizeBytes() *ExtractionLogUpsert {
	u.SetNull(extractionlog.FieldFileSizeBytes)
	return u
}

// SetFileModTime sets the "file_mod_time" field.
func (u *ExtractionLogUpsert) SetFileModTime(v time.Time) *ExtractionLogUpsert {
	u.Set(extractionlog.FieldFileModTime, v)
	return u
}

// UpdateFileModTime sets the "file_mod_time" field to the value that was provided on create.
func (u *ExtractionLogUpsert) UpdateFileModTime() *ExtractionLogUpsert {
	u.SetExcluded(extractionlog.FieldFileModTime)
	return u
}

// ClearFileModTime clears the value of the "file_mod_time" field.
func (u *ExtractionLogUpsert) ClearFileModTime() *ExtractionLogUpsert {
	u.SetNull(extractionlog.FieldFileModTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionLogUpsertOne) UpdateNewValues() *ExtractionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractionlog.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(extractionlog.FieldRunID)
		}
		if _, exists := u.create.mutation.ExtractionTime(); exists {
			s.SetIgnore(extractionlog.FieldExtractionTime)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionLogUpsertOne) Ignore() *ExtractionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionLogUpsertOne) DoNothing() *ExtractionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionLogCreate.OnConflict
// documentation for more info.
func (u *ExtractionLogUpsertOne) Update(set func(*ExtractionLogUpsert)) *ExtractionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilePath sets the "file_path" field.
func (u *ExtractionLogUpsertOne) SetFilePath(v string) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateFilePath() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateFilePath()
	})
}

// SetDocumentType sets the "document_type" field.
func (u *ExtractionLogUpsertOne) SetDocumentType(v string) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetDocumentType(v)
	})
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateDocumentType() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateDocumentType()
	})
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *ExtractionLogUpsertOne) SetExtractionMethod(v string) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetExtractionMethod(v)
	})
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateExtractionMethod() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateExtractionMethod()
	})
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (u *ExtractionLogUpsertOne) ClearExtractionMethod() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearExtractionMethod()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionLogUpsertOne) SetStatus(v string) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateStatus() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionLogUpsertOne) SetErrorMessage(v string) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateErrorMessage() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionLogUpsertOne) ClearErrorMessage() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearErrorMessage()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractionLogUpsertOne) SetConfidenceScore(v float32) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractionLogUpsertOne) AddConfidenceScore(v float32) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateConfidenceScore() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateConfidenceScore()
	})
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (u *ExtractionLogUpsertOne) ClearConfidenceScore() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearConfidenceScore()
	})
}

// SetProcessingSeconds sets the "processing_seconds" field.
func (u *ExtractionLogUpsertOne) SetProcessingSeconds(v float64) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetProcessingSeconds(v)
	})
}

// AddProcessingSeconds adds v to the "processing_seconds" field.
func (u *ExtractionLogUpsertOne) AddProcessingSeconds(v float64) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.AddProcessingSeconds(v)
	})
}

// UpdateProcessingSeconds sets the "processing_seconds" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateProcessingSeconds() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateProcessingSeconds()
	})
}

// ClearProcessingSeconds clears the value of the "processing_seconds" field.
func (u *ExtractionLogUpsertOne) ClearProcessingSeconds() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearProcessingSeconds()
	})
}

// SetRecordsExtracted sets the "records_extracted" field.
func (u *ExtractionLogUpsertOne) SetRecordsExtracted(v int) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetRecordsExtracted(v)
	})
}

// AddRecordsExtracted adds v to the "records_extracted" field.
func (u *ExtractionLogUpsertOne) AddRecordsExtracted(v int) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.AddRecordsExtracted(v)
	})
}

// UpdateRecordsExtracted sets the "records_extracted" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateRecordsExtracted() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateRecordsExtracted()
	})
}

// SetValidationFailed sets the "validation_failed" field.
func (u *ExtractionLogUpsertOne) SetValidationFailed(v []string) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetValidationFailed(v)
	})
}

// UpdateValidationFailed sets the "validation_failed" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateValidationFailed() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateValidationFailed()
	})
}

// ClearValidationFailed clears the value of the "validation_failed" field.
func (u *ExtractionLogUpsertOne) ClearValidationFailed() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearValidationFailed()
	})
}

// SetFileHash sets the "file_hash" field.
func (u *ExtractionLogUpsertOne) SetFileHash(v string) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetFileHash(v)
	})
}

// UpdateFileHash sets the "file_hash" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateFileHash() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateFileHash()
	})
}

// ClearFileHash clears the value of the "file_hash" field.
func (u *ExtractionLogUpsertOne) ClearFileHash() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearFileHash()
	})
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (u *ExtractionLogUpsertOne) SetFileSizeBytes(v int64) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetFileSizeBytes(v)
	})
}

// AddFileSizeBytes adds v to the "file_size_bytes" field.
func (u *ExtractionLogUpsertOne) AddFileSizeBytes(v int64) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.AddFileSizeBytes(v)
	})
}

// UpdateFileSizeBytes sets the "file_size_bytes" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateFileSizeBytes() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateFileSizeBytes()
	})
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (u *ExtractionLogUpsertOne) ClearFileSizeBytes() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearFileSizeBytes()
	})
}

// SetFileModTime sets the "file_mod_time" field.
func (u *ExtractionLogUpsertOne) SetFileModTime(v time.Time) *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetFileModTime(v)
	})
}

// UpdateFileModTime sets the "file_mod_time" field to the value that was provided on create.
func (u *ExtractionLogUpsertOne) UpdateFileModTime() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateFileModTime()
	})
}

// ClearFileModTime clears the value of the "file_mod_time" field.
func (u *ExtractionLogUpsertOne) ClearFileModTime() *ExtractionLogUpsertOne {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearFileModTime()
	})
}

// Exec executes the query.
func (u *ExtractionLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionLogUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractionLogUpsertOne.ID is not supported by MySQL driver. Use ExtractionLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionLogUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionLogCreateBulk is the builder for creating many ExtractionLog entities in bulk.
type ExtractionLogCreateBulk struct {
	config
	err      error
	builders []*ExtractionLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractionLog entities in the database.
func (_c *ExtractionLogCreateBulk) Save(ctx context.Context) ([]*ExtractionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionLogMutation)
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
func (_c *ExtractionLogCreateBulk) SaveX(ctx context.Context) []*ExtractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionLogUpsert) {
//			SetFilePath(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionLogUpsertBulk {
	_c.conflict = opts
	return &ExtractionLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionLogCreateBulk) OnConflictColumns(columns ...string) *ExtractionLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionLogUpsertBulk{
		create: _c,
	}
}

// ExtractionLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractionLog nodes.
type ExtractionLogUpsertBulk struct {
	create *ExtractionLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionLogUpsertBulk) UpdateNewValues() *ExtractionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractionlog.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(extractionlog.FieldRunID)
			}
			if _, exists := b.mutation.ExtractionTime(); exists {
				s.SetIgnore(extractionlog.FieldExtractionTime)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionLogUpsertBulk) Ignore() *ExtractionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionLogUpsertBulk) DoNothing() *ExtractionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionLogCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionLogUpsertBulk) Update(set func(*ExtractionLogUpsert)) *ExtractionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilePath sets the "file_path" field.
func (u *ExtractionLogUpsertBulk) SetFilePath(v string) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateFilePath() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateFilePath()
	})
}

// SetDocumentType sets the "document_type" field.
func (u *ExtractionLogUpsertBulk) SetDocumentType(v string) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetDocumentType(v)
	})
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateDocumentType() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateDocumentType()
	})
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *ExtractionLogUpsertBulk) SetExtractionMethod(v string) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetExtractionMethod(v)
	})
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateExtractionMethod() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateExtractionMethod()
	})
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (u *ExtractionLogUpsertBulk) ClearExtractionMethod() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearExtractionMethod()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionLogUpsertBulk) SetStatus(v string) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateStatus() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionLogUpsertBulk) SetErrorMessage(v string) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateErrorMessage() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionLogUpsertBulk) ClearErrorMessage() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearErrorMessage()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractionLogUpsertBulk) SetConfidenceScore(v float32) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractionLogUpsertBulk) AddConfidenceScore(v float32) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateConfidenceScore() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateConfidenceScore()
	})
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (u *ExtractionLogUpsertBulk) ClearConfidenceScore() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearConfidenceScore()
	})
}

// SetProcessingSeconds sets the "processing_seconds" field.
func (u *ExtractionLogUpsertBulk) SetProcessingSeconds(v float64) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetProcessingSeconds(v)
	})
}

// AddProcessingSeconds adds v to the "processing_seconds" field.
func (u *ExtractionLogUpsertBulk) AddProcessingSeconds(v float64) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.AddProcessingSeconds(v)
	})
}

// UpdateProcessingSeconds sets the "processing_seconds" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateProcessingSeconds() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateProcessingSeconds()
	})
}

// ClearProcessingSeconds clears the value of the "processing_seconds" field.
func (u *ExtractionLogUpsertBulk) ClearProcessingSeconds() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearProcessingSeconds()
	})
}

// SetRecordsExtracted sets the "records_extracted" field.
func (u *ExtractionLogUpsertBulk) SetRecordsExtracted(v int) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetRecordsExtracted(v)
	})
}

// AddRecordsExtracted adds v to the "records_extracted" field.
func (u *ExtractionLogUpsertBulk) AddRecordsExtracted(v int) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.AddRecordsExtracted(v)
	})
}

// UpdateRecordsExtracted sets the "records_extracted" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateRecordsExtracted() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateRecordsExtracted()
	})
}

// SetValidationFailed sets the "validation_failed" field.
func (u *ExtractionLogUpsertBulk) SetValidationFailed(v []string) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetValidationFailed(v)
	})
}

// UpdateValidationFailed sets the "validation_failed" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateValidationFailed() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateValidationFailed()
	})
}

// ClearValidationFailed clears the value of the "validation_failed" field.
func (u *ExtractionLogUpsertBulk) ClearValidationFailed() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearValidationFailed()
	})
}

// SetFileHash sets the "file_hash" field.
func (u *ExtractionLogUpsertBulk) SetFileHash(v string) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetFileHash(v)
	})
}

// UpdateFileHash sets the "file_hash" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateFileHash() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateFileHash()
	})
}

// ClearFileHash clears the value of the "file_hash" field.
func (u *ExtractionLogUpsertBulk) ClearFileHash() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearFileHash()
	})
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (u *ExtractionLogUpsertBulk) SetFileSizeBytes(v int64) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetFileSizeBytes(v)
	})
}

// AddFileSizeBytes adds v to the "file_size_bytes" field.
func (u *ExtractionLogUpsertBulk) AddFileSizeBytes(v int64) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.AddFileSizeBytes(v)
	})
}

// UpdateFileSizeBytes sets the "file_size_bytes" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateFileSizeBytes() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateFileSizeBytes()
	})
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (u *ExtractionLogUpsertBulk) ClearFileSizeBytes() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearFileSizeBytes()
	})
}

// SetFileModTime sets the "file_mod_time" field.
func (u *ExtractionLogUpsertBulk) SetFileModTime(v time.Time) *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.SetFileModTime(v)
	})
}

// UpdateFileModTime sets the "file_mod_time" field to the value that was provided on create.
func (u *ExtractionLogUpsertBulk) UpdateFileModTime() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.UpdateFileModTime()
	})
}

// ClearFileModTime clears the value of the "file_mod_time" field.
func (u *ExtractionLogUpsertBulk) ClearFileModTime() *ExtractionLogUpsertBulk {
	return u.Update(func(s *ExtractionLogUpsert) {
		s.ClearFileModTime()
	})
}

// Exec executes the query.
func (u *ExtractionLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
