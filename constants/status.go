package constants

// ExtractionStatus is the canonical status for rows in extraction_logs.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusSuccess ExtractionStatus = "success" // every expected field filled
	StatusPartial ExtractionStatus = "partial" // text read, some fields unmatched
	StatusFailed  ExtractionStatus = "failed"  // no readable text layer
	StatusSkipped ExtractionStatus = "skipped" // unchanged under incremental mode, or no extractor
)

// ExtractionStatusStrings returns the allowed status values.
func ExtractionStatusStrings() []string {
	return []string{
		string(StatusSuccess),
		string(StatusPartial),
		string(StatusFailed),
		string(StatusSkipped),
	}
}
