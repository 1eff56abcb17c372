package entity

import "time"

// ExtractionLog is the append-only audit row written for every processed
// file, whatever the outcome.
type ExtractionLog struct {
	FilePath         string
	DocumentType     string
	ExtractionMethod string
	Status           string
	ErrorMessage     string
	ConfidenceScore  float32
	ProcessingTime   time.Duration
	RecordsExtracted int
	ValidationFailed []string
	FileHash         string
	FileSizeBytes    int64
	FileModTime      time.Time
	RunID            string
	ExtractionTime   time.Time
}
