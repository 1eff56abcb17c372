package constants

// DocumentType labels the known construction-bid PDF layouts.
type DocumentType string

// Stable values (stored in extraction_logs.document_type).
const (
	InvitationToBid DocumentType = "invitation_to_bid"
	BidTabs         DocumentType = "bid_tabs"
	AwardLetter     DocumentType = "award_letter"
	ItemCReport     DocumentType = "item_c_report"
	BidSummary      DocumentType = "bid_summary"
	BidsAsRead      DocumentType = "bids_as_read"
	Unknown         DocumentType = "unknown"
)

var allDocumentTypes = []DocumentType{
	InvitationToBid,
	BidTabs,
	AwardLetter,
	ItemCReport,
	BidSummary,
	BidsAsRead,
	Unknown,
}

// DocumentTypeStrings returns the stable label set, Unknown included.
func DocumentTypeStrings() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}
