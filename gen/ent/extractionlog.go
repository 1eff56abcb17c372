// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/extractionlog"
	"github.com/google/uuid"
)

// ExtractionLog is the model entity for the ExtractionLog schema.
type ExtractionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod *string `json:"extraction_method,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float32 `json:"confidence_score,omitempty"`
	// ProcessingSeconds holds the value of the "processing_seconds" field.
	ProcessingSeconds *float64 `json:"processing_seconds,omitempty"`
	// RecordsExtracted holds the value of the "records_extracted" field.
	RecordsExtracted int `json:"records_extracted,omitempty"`
	// ValidationFailed holds the value of the "validation_failed" field.
	ValidationFailed []string `json:"validation_failed,omitempty"`
	// FileHash holds the value of the "file_hash" field.
	FileHash *string `json:"file_hash,omitempty"`
	// FileSizeBytes holds the value of the "file_size_bytes" field.
	FileSizeBytes *int64 `json:"file_size_bytes,omitempty"`
	// FileModTime holds the value of the "file_mod_time" field.
	FileModTime *time.Time `json:"file_mod_time,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// ExtractionTime holds the value of the "extraction_time" field.
	ExtractionTime time.Time `json:"extraction_time,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionlog.FieldValidationFailed:
			values[i] = new([]byte)
		case extractionlog.FieldConfidenceScore, extractionlog.FieldProcessingSeconds:
			values[i] = new(sql.NullFloat64)
		case extractionlog.FieldRecordsExtracted, extractionlog.FieldFileSizeBytes:
			values[i] = new(sql.NullInt64)
		case extractionlog.FieldFilePath, extractionlog.FieldDocumentType, extractionlog.FieldExtractionMethod, extractionlog.FieldStatus, extractionlog.FieldErrorMessage, extractionlog.FieldFileHash:
			values[i] = new(sql.NullString)
		case extractionlog.FieldFileModTime, extractionlog.FieldExtractionTime:
			values[i] = new(sql.NullTime)
		case extractionlog.FieldID, extractionlog.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionLog fields.
func (_m *ExtractionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionlog.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case extractionlog.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case extractionlog.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = new(string)
				*_m.ExtractionMethod = value.String
			}
		case extractionlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionlog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractionlog.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float32)
				*_m.ConfidenceScore = float32(value.Float64)
			}
		case extractionlog.FieldProcessingSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_seconds", values[i])
			} else if value.Valid {
				_m.ProcessingSeconds = new(float64)
				*_m.ProcessingSeconds = value.Float64
			}
		case extractionlog.FieldRecordsExtracted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field records_extracted", values[i])
			} else if value.Valid {
				_m.RecordsExtracted = int(value.Int64)
			}
		case extractionlog.FieldValidationFailed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_failed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationFailed); err != nil {
					return fmt.Errorf("unmarshal field validation_failed: %w", err)
				}
			}
		case extractionlog.FieldFileHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_hash", values[i])
			} else if value.Valid {
				_m.FileHash = new(string)
				*_m.FileHash = value.String
			}
		case extractionlog.FieldFileSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_bytes", values[i])
			} else if value.Valid {
				_m.FileSizeBytes = new(int64)
				*_m.FileSizeBytes = value.Int64
			}
		case extractionlog.FieldFileModTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field file_mod_time", values[i])
			} else if value.Valid {
				_m.FileModTime = new(time.Time)
				*_m.FileModTime = value.Time
			}
		case extractionlog.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case extractionlog.FieldExtractionTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_time", values[i])
			} else if value.Valid {
				_m.ExtractionTime = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractionLog.
// Note that you need to call ExtractionLog.Unwrap() before calling this method if this ExtractionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionLog) Update() *ExtractionLogUpdateOne {
	return NewExtractionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionLog) Unwrap() *ExtractionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	if v := _m.ExtractionMethod; v != nil {
		builder.WriteString("extraction_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingSeconds; v != nil {
		builder.WriteString("processing_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("records_extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordsExtracted))
	builder.WriteString(", ")
	builder.WriteString("validation_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationFailed))
	builder.WriteString(", ")
	if v := _m.FileHash; v != nil {
		builder.WriteString("file_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FileSizeBytes; v != nil {
		builder.WriteString("file_size_bytes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FileModTime; v != nil {
		builder.WriteString("file_mod_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("extraction_time=")
	builder.WriteString(_m.ExtractionTime.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionLogs is a parsable slice of ExtractionLog.
type ExtractionLogs []*ExtractionLog
