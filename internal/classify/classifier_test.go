package classify

import (
	"testing"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
)

func TestByFilename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want constants.DocumentType
	}{
		{
			name: "invitation letter",
			path: "docs/DA12345 Invitation to Bid.pdf",
			want: constants.InvitationToBid,
		},
		{
			name: "bid tab with spaces",
			path: "docs/DA00234 Bid Tab.pdf",
			want: constants.BidTabs,
		},
		{
			name: "bid tab with underscores",
			path: "da00234_bid_tab.pdf",
			want: constants.BidTabs,
		},
		{
			name: "award letter",
			path: "2025/Award Letter DA00234.pdf",
			want: constants.AwardLetter,
		},
		{
			name: "item c report",
			path: "Item C DA00234.pdf",
			want: constants.ItemCReport,
		},
		{
			name: "bid summary",
			path: "DA00234 Bid Summary.pdf",
			want: constants.BidSummary,
		},
		{
			name: "bids as read",
			path: "DA00234 Bids As Read.pdf",
			want: constants.BidsAsRead,
		},
		{
			name: "cues are case insensitive",
			path: "INVITATION TO BID DA99999.PDF",
			want: constants.InvitationToBid,
		},
		{
			name: "directory names are ignored",
			path: "bid tab/DA00234.pdf",
			want: constants.Unknown,
		},
		{
			name: "no cue",
			path: "scan_0042.pdf",
			want: constants.Unknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ByFilename(tt.path); got != tt.want {
				t.Errorf("ByFilename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassifyByContent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.DocumentType
	}{
		{
			name: "notice to prospective bidders",
			text: "NOTICE TO PROSPECTIVE BIDDERS\n\nContract No.: DA12345",
			want: constants.InvitationToBid,
		},
		{
			name: "notification of award",
			text: "NOTIFICATION OF AWARD\n\nJune 10, 2025",
			want: constants.AwardLetter,
		},
		{
			name: "pleased to inform",
			text: "We are pleased to inform you that Riley Paving Inc has been awarded",
			want: constants.AwardLetter,
		},
		{
			name: "item c needs a table marker",
			text: "ITEM C\nCONTRACTOR            $ TOTALS   % DIFF",
			want: constants.ItemCReport,
		},
		{
			name: "item c without table marker stays unknown",
			text: "ITEM C mentioned in passing",
			want: constants.Unknown,
		},
		{
			name: "bid tabulation",
			text: "ROADWAY ITEMS\nBIDDER: RILEY PAVING INC",
			want: constants.BidTabs,
		},
		{
			name: "bids as read",
			text: "BIDS AS READ\nCONTRACT: DA00234",
			want: constants.BidsAsRead,
		},
		{
			name: "bid summary",
			text: "BID SUMMARY\nCONTRACT: DA00234",
			want: constants.BidSummary,
		},
		{
			name: "empty first page",
			text: "",
			want: constants.Unknown,
		},
		{
			name: "unrelated text",
			text: "quarterly maintenance schedule",
			want: constants.Unknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify("scan_0042.pdf", tt.text); got != tt.want {
				t.Errorf("Classify(content) = %q, want %q", got, tt.want)
			}
		})
	}
}

// Filename cues win even when the first page looks like another type.
func TestClassifyFilenamePrecedence(t *testing.T) {
	got := Classify("DA00234 Bid Tab.pdf", "NOTIFICATION OF AWARD")
	if got != constants.BidTabs {
		t.Errorf("Classify = %q, want %q", got, constants.BidTabs)
	}
}
