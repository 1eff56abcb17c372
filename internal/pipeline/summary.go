package pipeline

import (
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/validate"
)

// Summary aggregates one run for reporting: counts by status and document
// type, average confidence over scored files, and throughput.
type Summary struct {
	RunID              string         `json:"run_id"`
	TotalFiles         int            `json:"total_files"`
	ByStatus           map[string]int `json:"by_status"`
	ByDocumentType     map[string]int `json:"by_document_type"`
	AvgConfidence      float64        `json:"avg_confidence"`
	AvgValidationRate  float64        `json:"avg_validation_pass_rate"`
	RecordsExtracted   int            `json:"records_extracted"`
	Elapsed            time.Duration  `json:"elapsed_ns"`
	FilesPerSecond     float64        `json:"files_per_second"`
	ValidationFailures int            `json:"validation_failures"`
}

// Summarize builds the run summary from per-file results. Skipped and
// failed files count toward totals but not toward the confidence average.
func Summarize(runID string, results []FileResult, elapsed time.Duration) Summary {
	s := Summary{
		RunID:          runID,
		TotalFiles:     len(results),
		ByStatus:       map[string]int{},
		ByDocumentType: map[string]int{},
		Elapsed:        elapsed,
	}

	var confSum float64
	var confN int
	var rateSum float64
	var rateN int
	for _, r := range results {
		s.ByStatus[string(r.Extraction.Status)]++
		s.ByDocumentType[string(r.Extraction.DocumentType)]++
		if r.Extraction.Record != nil {
			s.RecordsExtracted++
		}
		switch r.Extraction.Status {
		case constants.StatusSuccess, constants.StatusPartial:
			confSum += float64(r.Extraction.Confidence)
			confN++
		}
		if len(r.Validation) > 0 {
			rateSum += validate.PassRate(r.Validation)
			rateN++
			if len(validate.FailedRules(r.Validation)) > 0 {
				s.ValidationFailures++
			}
		}
	}
	if confN > 0 {
		s.AvgConfidence = confSum / float64(confN)
	}
	if rateN > 0 {
		s.AvgValidationRate = rateSum / float64(rateN)
	}
	if secs := elapsed.Seconds(); secs > 0 {
		s.FilesPerSecond = float64(len(results)) / secs
	}
	return s
}
