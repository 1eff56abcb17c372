package extract

import (
	"log/slog"
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// Document is the input to an extractor: the file path (some types recover
// the contract number from the filename) and the full text layer.
type Document struct {
	Path string
	Text string
}

// Stats counts filled vs expected fields for confidence scoring. List fields
// (bidders, bid items) count as one expected field each, filled when
// non-empty.
type Stats struct {
	Filled   int
	Expected int
}

// Confidence is the completeness ratio, always within [0,1].
func (s Stats) Confidence() float32 {
	if s.Expected <= 0 {
		return 0
	}
	if s.Filled >= s.Expected {
		return 1
	}
	return float32(s.Filled) / float32(s.Expected)
}

// Extractor pulls the fixed field set of one document type out of text.
// Unmatched fields are left empty; extraction itself never fails.
type Extractor interface {
	DocumentType() constants.DocumentType
	Name() string
	Extract(doc Document) (*entity.Record, Stats)
}

// Result is the immutable per-document extraction outcome.
type Result struct {
	FilePath       string                     `json:"file_path"`
	DocumentType   constants.DocumentType     `json:"document_type"`
	Method         string                     `json:"extraction_method,omitempty"`
	Status         constants.ExtractionStatus `json:"status"`
	Error          string                     `json:"error,omitempty"`
	Confidence     float32                    `json:"confidence_score"`
	FilledFields   int                        `json:"filled_fields"`
	ExpectedFields int                        `json:"expected_fields"`
	Pages          int                        `json:"pages,omitempty"`
	ProcessingTime time.Duration              `json:"processing_time_ns"`
	Record         *entity.Record             `json:"record,omitempty"`
}

var registry = map[constants.DocumentType]Extractor{
	constants.InvitationToBid: &InvitationExtractor{},
	constants.AwardLetter:     &AwardLetterExtractor{},
	constants.BidTabs:         &BidTabsExtractor{},
	constants.ItemCReport:     &ItemCExtractor{},
	constants.BidsAsRead:      &BidsAsReadExtractor{},
	constants.BidSummary:      &BidSummaryExtractor{},
}

// ForType returns the extractor for a document type; ok is false for
// Unknown, which has no extractor.
func ForType(dt constants.DocumentType) (Extractor, bool) {
	ex, ok := registry[dt]
	return ex, ok
}

// Run executes one extractor with timing and completeness scoring. A low
// completeness score yields partial, never failed; failed is reserved for
// unreadable text layers and is decided by the caller.
func Run(ex Extractor, doc Document, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	logger.Info("extract.start", "file", doc.Path, "method", ex.Name())
	record, stats := ex.Extract(doc)
	elapsed := time.Since(start)

	status := constants.StatusSuccess
	if stats.Filled < stats.Expected {
		status = constants.StatusPartial
	}

	logger.Info("extract.done",
		"file", doc.Path,
		"method", ex.Name(),
		"status", string(status),
		"filled", stats.Filled,
		"expected", stats.Expected,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	return Result{
		FilePath:       doc.Path,
		DocumentType:   ex.DocumentType(),
		Method:         ex.Name(),
		Status:         status,
		Confidence:     stats.Confidence(),
		FilledFields:   stats.Filled,
		ExpectedFields: stats.Expected,
		ProcessingTime: elapsed,
		Record:         record,
	}
}

// countField bumps stats for one scalar field, filled when non-empty.
func (s *Stats) countField(filled bool) {
	s.Expected++
	if filled {
		s.Filled++
	}
}
