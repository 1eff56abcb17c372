package extract

import (
	"testing"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
)

func TestStatsConfidence(t *testing.T) {
	tests := []struct {
		name string
		s    Stats
		want float32
	}{
		{name: "all filled", s: Stats{Filled: 10, Expected: 10}, want: 1},
		{name: "half filled", s: Stats{Filled: 5, Expected: 10}, want: 0.5},
		{name: "none filled", s: Stats{Filled: 0, Expected: 10}, want: 0},
		{name: "no expectations", s: Stats{}, want: 0},
		{name: "overfilled clamps to one", s: Stats{Filled: 12, Expected: 10}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Confidence(); got != tt.want {
				t.Errorf("Confidence() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Filling more fields never lowers confidence.
func TestConfidenceMonotonic(t *testing.T) {
	prev := float32(-1)
	for filled := 0; filled <= 10; filled++ {
		s := Stats{Filled: filled, Expected: 10}
		if c := s.Confidence(); c < prev {
			t.Fatalf("confidence dropped from %v to %v at filled=%d", prev, c, filled)
		} else {
			prev = c
		}
	}
}

func TestForType(t *testing.T) {
	for _, dt := range []constants.DocumentType{
		constants.InvitationToBid,
		constants.BidTabs,
		constants.AwardLetter,
		constants.ItemCReport,
		constants.BidSummary,
		constants.BidsAsRead,
	} {
		ex, ok := ForType(dt)
		if !ok {
			t.Errorf("no extractor registered for %q", dt)
			continue
		}
		if ex.DocumentType() != dt {
			t.Errorf("extractor for %q reports type %q", dt, ex.DocumentType())
		}
	}
	if _, ok := ForType(constants.Unknown); ok {
		t.Error("unknown documents must not have an extractor")
	}
}

func TestRunStatus(t *testing.T) {
	full := Document{Path: "DA12345 Invitation to Bid.pdf", Text: invitationText}
	res := Run(&InvitationExtractor{}, full, nil)
	if res.Status != constants.StatusSuccess {
		t.Errorf("status = %q, want success", res.Status)
	}
	if res.Confidence != 1 {
		t.Errorf("confidence = %v, want 1", res.Confidence)
	}
	if res.Record == nil {
		t.Error("record is nil")
	}
	if res.Method != "invitation-regex" {
		t.Errorf("method = %q", res.Method)
	}

	sparse := Document{Path: "letter.pdf", Text: "Contract No.: DA99999"}
	res = Run(&InvitationExtractor{}, sparse, nil)
	if res.Status != constants.StatusPartial {
		t.Errorf("status = %q, want partial", res.Status)
	}
	if res.Confidence <= 0 || res.Confidence >= 1 {
		t.Errorf("confidence = %v, want strictly between 0 and 1", res.Confidence)
	}
}

// Extraction is deterministic: the same document always yields the same
// record and score.
func TestRunDeterministic(t *testing.T) {
	doc := Document{Path: "DA00234 Bid Tab.pdf", Text: bidTabsText}
	a := Run(&BidTabsExtractor{}, doc, nil)
	b := Run(&BidTabsExtractor{}, doc, nil)

	if a.Confidence != b.Confidence || a.FilledFields != b.FilledFields || a.Status != b.Status {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
	if len(a.Record.Bidders) != len(b.Record.Bidders) ||
		len(a.Record.BidItems) != len(b.Record.BidItems) {
		t.Error("record shapes differ between runs")
	}
}

func TestBidsAsReadExtract(t *testing.T) {
	text := `BIDS AS READ
CONTRACT: DA00234

RILEY PAVING INC            SUPPLY, NC        1,387,101.46
BARNHILL CONTRACTING CO     TARBORO, NC       1,402,500.00
`
	rec, stats := (&BidsAsReadExtractor{}).Extract(Document{Path: "DA00234 Bids As Read.pdf", Text: text})
	if rec.Contract.ContractNumber != "DA00234" {
		t.Errorf("ContractNumber = %q, want DA00234", rec.Contract.ContractNumber)
	}
	if len(rec.Bidders) != 2 {
		t.Fatalf("got %d bidders, want 2", len(rec.Bidders))
	}
	if stats.Filled != 2 || stats.Expected != 2 {
		t.Errorf("stats = %d/%d, want 2/2", stats.Filled, stats.Expected)
	}
}
