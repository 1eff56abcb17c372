package extract

import "testing"

const bidTabsText = `CONTRACT: DA00234
0001   4400000000-E   1.000       GRADING           LUMP SUM   95,000.00    95,000.00
0002   4500000000-N   2,500.000   ASPHALT SURFACE   TON        85.50        213,750.00

RILEY PAVING INC  SUPPLY, NC
CONTRACT TOTAL  1,387,101.46

BARNHILL CONTRACTING CO  TARBORO, NC
CONTRACT TOTAL  1,402,500.00
`

func TestBidTabsExtract(t *testing.T) {
	ex := &BidTabsExtractor{}
	rec, stats := ex.Extract(Document{Path: "DA00234 Bid Tab.pdf", Text: bidTabsText})

	if rec.Contract.ContractNumber != "DA00234" {
		t.Errorf("ContractNumber = %q, want DA00234", rec.Contract.ContractNumber)
	}
	if len(rec.BidItems) != 2 {
		t.Fatalf("got %d bid items, want 2", len(rec.BidItems))
	}
	if len(rec.Bidders) != 2 {
		t.Fatalf("got %d bidders, want 2", len(rec.Bidders))
	}

	first := rec.Bidders[0]
	if first.Name != "RILEY PAVING INC" {
		t.Errorf("first bidder = %q", first.Name)
	}
	if first.Location != "SUPPLY, NC" {
		t.Errorf("first location = %q", first.Location)
	}
	// Each bidder pairs with the first CONTRACT TOTAL after its header.
	if first.TotalBidAmount == nil || *first.TotalBidAmount != 1387101.46 {
		t.Errorf("first total = %v, want 1387101.46", first.TotalBidAmount)
	}
	second := rec.Bidders[1]
	if second.TotalBidAmount == nil || *second.TotalBidAmount != 1402500 {
		t.Errorf("second total = %v, want 1402500", second.TotalBidAmount)
	}
	if first.BidRank != 1 || second.BidRank != 2 {
		t.Errorf("ranks = %d,%d, want 1,2", first.BidRank, second.BidRank)
	}

	if stats.Filled != 3 || stats.Expected != 3 {
		t.Errorf("stats = %d/%d, want 3/3", stats.Filled, stats.Expected)
	}
}

func TestBidTabsExtractEmpty(t *testing.T) {
	ex := &BidTabsExtractor{}
	rec, stats := ex.Extract(Document{Path: "scan.pdf", Text: "no tabular data here 123"})

	if len(rec.Bidders) != 0 || len(rec.BidItems) != 0 {
		t.Errorf("got %d bidders, %d items, want none", len(rec.Bidders), len(rec.BidItems))
	}
	if stats.Filled != 0 {
		t.Errorf("Filled = %d, want 0", stats.Filled)
	}
}
