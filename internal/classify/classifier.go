package classify

import (
	"path/filepath"
	"strings"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
)

// filenameCue matches when every token appears in the lowercased filename.
type filenameCue struct {
	tokens  []string
	docType constants.DocumentType
}

// Ordered: first match wins.
var filenameCues = []filenameCue{
	{[]string{"invitation", "bid"}, constants.InvitationToBid},
	{[]string{"bid tab"}, constants.BidTabs},
	{[]string{"bid_tab"}, constants.BidTabs},
	{[]string{"bidtab"}, constants.BidTabs},
	{[]string{"award", "letter"}, constants.AwardLetter},
	{[]string{"item c"}, constants.ItemCReport},
	{[]string{"item_c"}, constants.ItemCReport},
	{[]string{"itemc"}, constants.ItemCReport},
	{[]string{"bid summary"}, constants.BidSummary},
	{[]string{"bidsummary"}, constants.BidSummary},
	{[]string{"bids as read"}, constants.BidsAsRead},
	{[]string{"bids_as_read"}, constants.BidsAsRead},
}

// Classify assigns exactly one document-type label to a file. The filename
// cues are tried first in order; when none match, the first page of text is
// scanned for type-distinguishing phrases. Unknown is a valid terminal
// classification, not an error.
func Classify(path, firstPageText string) constants.DocumentType {
	if dt := ByFilename(path); dt != constants.Unknown {
		return dt
	}
	return byContent(firstPageText)
}

// ByFilename classifies on filename cues alone. Used for cached entries in
// incremental mode where the text layer is not re-read.
func ByFilename(path string) constants.DocumentType {
	name := strings.ToLower(filepath.Base(path))
	for _, cue := range filenameCues {
		matched := true
		for _, tok := range cue.tokens {
			if !strings.Contains(name, tok) {
				matched = false
				break
			}
		}
		if matched {
			return cue.docType
		}
	}
	return constants.Unknown
}

func byContent(firstPageText string) constants.DocumentType {
	text := strings.ToLower(firstPageText)
	if text == "" {
		return constants.Unknown
	}

	switch {
	case strings.Contains(text, "notice to prospective bidders"),
		strings.Contains(text, "invitation to bid"):
		return constants.InvitationToBid
	case strings.Contains(text, "notification of award"),
		strings.Contains(text, "pleased to inform you that"):
		return constants.AwardLetter
	case strings.Contains(text, "item c") &&
		(strings.Contains(text, "$ totals") || strings.Contains(text, "% diff")):
		return constants.ItemCReport
	case strings.Contains(text, "roadway items") &&
		(strings.Contains(text, "bidder") || strings.Contains(text, "contractor")):
		return constants.BidTabs
	case strings.Contains(text, "bids as read"):
		return constants.BidsAsRead
	case strings.Contains(text, "bid summary"):
		return constants.BidSummary
	}
	return constants.Unknown
}
