package extract

import "testing"

const itemCText = `ITEM C                                    CONTRACT: DA00234

PROPOSAL LENGTH   0.16  MILES
TYPE OF WORK      DREDGING
LOCATION          ATLANTIC INTRACOASTAL WATERWAY
DATE AVAILABLE    DEC 02 2024
FINAL COMPLETION  MAY 30 2025
ESTIMATE          2,640,000.00

CONTRACTOR                     LOCATION             $ TOTALS        % DIFF
STEVENS TOWING CO INC          YONGES ISLAND, SC    2,220,630.54    -15.9
MARINEX CONSTRUCTION INC       CHARLESTON, SC       2,459,521.60    -6.8
`

func TestItemCExtract(t *testing.T) {
	ex := &ItemCExtractor{}
	rec, stats := ex.Extract(Document{Path: "Item C DA00234.pdf", Text: itemCText})

	c := rec.Contract
	if c.ContractNumber != "DA00234" {
		t.Errorf("ContractNumber = %q, want DA00234", c.ContractNumber)
	}
	if c.ProposalLength == nil || *c.ProposalLength != 0.16 {
		t.Errorf("ProposalLength = %v, want 0.16", c.ProposalLength)
	}
	if c.TypeOfWork != "DREDGING" {
		t.Errorf("TypeOfWork = %q, want DREDGING", c.TypeOfWork)
	}
	if c.Location == "" {
		t.Error("Location is empty")
	}
	if c.EstimatedCost == nil || *c.EstimatedCost != 2640000 {
		t.Errorf("EstimatedCost = %v, want 2640000", c.EstimatedCost)
	}
	if c.DateAvailable == nil || c.DateAvailable.Format("2006-01-02") != "2024-12-02" {
		t.Errorf("DateAvailable = %v, want 2024-12-02", c.DateAvailable)
	}
	if c.CompletionDate == nil || c.CompletionDate.Format("2006-01-02") != "2025-05-30" {
		t.Errorf("CompletionDate = %v, want 2025-05-30", c.CompletionDate)
	}

	if len(rec.Bidders) != 2 {
		t.Fatalf("got %d bidders, want 2", len(rec.Bidders))
	}
	first := rec.Bidders[0]
	if first.Name != "STEVENS TOWING CO INC" {
		t.Errorf("first bidder = %q", first.Name)
	}
	if first.Location != "YONGES ISLAND, SC" {
		t.Errorf("first location = %q", first.Location)
	}
	if first.TotalBidAmount == nil || *first.TotalBidAmount != 2220630.54 {
		t.Errorf("first total = %v", first.TotalBidAmount)
	}
	if first.PercentageDiff == nil || *first.PercentageDiff != -15.9 {
		t.Errorf("first diff = %v, want -15.9", first.PercentageDiff)
	}
	if first.BidRank != 1 || rec.Bidders[1].BidRank != 2 {
		t.Errorf("ranks = %d,%d, want 1,2", first.BidRank, rec.Bidders[1].BidRank)
	}

	if stats.Filled != stats.Expected {
		t.Errorf("stats = %d/%d, want all fields filled", stats.Filled, stats.Expected)
	}
}
