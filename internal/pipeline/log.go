package pipeline

import (
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
	"github.com/andrepreira/bid-pdf-document-processor/internal/validate"
)

// Log converts a file result into the audit row appended to
// extraction_logs. Every processed file gets a row, skipped ones
// included.
func (r FileResult) Log(runID string) entity.ExtractionLog {
	records := 0
	if r.Extraction.Record != nil {
		records = 1
	}
	return entity.ExtractionLog{
		FilePath:         r.Extraction.FilePath,
		DocumentType:     string(r.Extraction.DocumentType),
		ExtractionMethod: r.Extraction.Method,
		Status:           string(r.Extraction.Status),
		ErrorMessage:     r.Extraction.Error,
		ConfidenceScore:  r.Extraction.Confidence,
		ProcessingTime:   r.Extraction.ProcessingTime,
		RecordsExtracted: records,
		ValidationFailed: validate.FailedRules(r.Validation),
		FileHash:         r.Fingerprint.FileHash,
		FileSizeBytes:    r.Fingerprint.FileSizeBytes,
		FileModTime:      time.Unix(r.Fingerprint.FileModTime, 0),
		RunID:            runID,
		ExtractionTime:   time.Now(),
	}
}
