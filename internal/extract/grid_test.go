package extract

import "testing"

func TestParseBidItemLines(t *testing.T) {
	text := `ROADWAY ITEMS
0001   4400000000-E   1.000       GRADING                          LUMP SUM   95,000.00    95,000.00
0002   4500000000-N   2,500.000   ASPHALT CONC SURFACE COURSE      TON        85.50        213,750.00
subtotal line that should be ignored
`
	items := parseBidItemLines(text)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	first := items[0]
	if first.ItemNumber != "0001" || first.ItemCode != "4400000000-E" {
		t.Errorf("first item header = %q/%q", first.ItemNumber, first.ItemCode)
	}
	if first.Quantity == nil || *first.Quantity != 1 {
		t.Errorf("first quantity = %v, want 1", first.Quantity)
	}
	if first.Description != "GRADING" {
		t.Errorf("first description = %q, want GRADING", first.Description)
	}
	if first.Unit != "Lump Sum" {
		t.Errorf("first unit = %q, want Lump Sum", first.Unit)
	}
	if first.UnitPrice == nil || *first.UnitPrice != 95000 {
		t.Errorf("first unit price = %v, want 95000", first.UnitPrice)
	}
	if first.TotalPrice == nil || *first.TotalPrice != 95000 {
		t.Errorf("first total price = %v, want 95000", first.TotalPrice)
	}

	second := items[1]
	if second.Quantity == nil || *second.Quantity != 2500 {
		t.Errorf("second quantity = %v, want 2500", second.Quantity)
	}
	if second.Unit != "Ton" {
		t.Errorf("second unit = %q, want Ton", second.Unit)
	}
	if second.Description != "ASPHALT CONC SURFACE COURSE" {
		t.Errorf("second description = %q", second.Description)
	}
	if second.UnitPrice == nil || *second.UnitPrice != 85.5 {
		t.Errorf("second unit price = %v, want 85.5", second.UnitPrice)
	}
	if second.TotalPrice == nil || *second.TotalPrice != 213750 {
		t.Errorf("second total price = %v, want 213750", second.TotalPrice)
	}
}

func TestParseBidItemLinesSinglePrice(t *testing.T) {
	items := parseBidItemLines("0003   5500000000-E   4.000   FOUNDATION CONDITIONING   CY   1,200.00")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	// With one price on the row it serves as both unit and total.
	if items[0].UnitPrice == nil || *items[0].UnitPrice != 1200 {
		t.Errorf("unit price = %v, want 1200", items[0].UnitPrice)
	}
	if items[0].TotalPrice == nil || *items[0].TotalPrice != 1200 {
		t.Errorf("total price = %v, want 1200", items[0].TotalPrice)
	}
}

func TestParseBidderLines(t *testing.T) {
	text := `BIDS AS READ
CONTRACT: DA00234

RILEY PAVING INC            SUPPLY, NC        1,387,101.46
BARNHILL CONTRACTING CO     TARBORO, NC       1,402,500.00
S.T. WOOTEN CORP            WILSON, NC        1,455,912.10   3
`
	bidders := parseBidderLines(text)
	if len(bidders) != 3 {
		t.Fatalf("got %d bidders, want 3", len(bidders))
	}

	if bidders[0].Name != "RILEY PAVING INC" {
		t.Errorf("first name = %q", bidders[0].Name)
	}
	if bidders[0].Location != "SUPPLY, NC" {
		t.Errorf("first location = %q", bidders[0].Location)
	}
	if bidders[0].TotalBidAmount == nil || *bidders[0].TotalBidAmount != 1387101.46 {
		t.Errorf("first amount = %v", bidders[0].TotalBidAmount)
	}

	// Explicit rank is kept; the rest are filled in reading order.
	if bidders[0].BidRank != 1 || bidders[1].BidRank != 2 || bidders[2].BidRank != 3 {
		t.Errorf("ranks = %d,%d,%d, want 1,2,3",
			bidders[0].BidRank, bidders[1].BidRank, bidders[2].BidRank)
	}
	if bidders[2].Name != "S.T. WOOTEN CORP" {
		t.Errorf("third name = %q", bidders[2].Name)
	}
}

func TestParseBidderLinesAmountFirst(t *testing.T) {
	bidders := parseBidderLines("1,387,101.46   RILEY PAVING INC")
	if len(bidders) != 1 {
		t.Fatalf("got %d bidders, want 1", len(bidders))
	}
	if bidders[0].Name != "RILEY PAVING INC" {
		t.Errorf("name = %q", bidders[0].Name)
	}
	if bidders[0].TotalBidAmount == nil || *bidders[0].TotalBidAmount != 1387101.46 {
		t.Errorf("amount = %v", bidders[0].TotalBidAmount)
	}
}

// Names containing header words as substrings are bidders, not headers.
func TestParseBidderLinesKeepsSubstringNames(t *testing.T) {
	text := `CONTRACT: DA00234
TOTAL BIDS RECEIVED: 2

BARNHILL CONTRACTING CO     TARBORO, NC       1,402,500.00
TOTALITY BUILDERS INC       DURHAM, NC        1,500,000.00
`
	bidders := parseBidderLines(text)
	if len(bidders) != 2 {
		t.Fatalf("got %d bidders, want 2", len(bidders))
	}
	if bidders[0].Name != "BARNHILL CONTRACTING CO" {
		t.Errorf("first name = %q", bidders[0].Name)
	}
	if bidders[1].Name != "TOTALITY BUILDERS INC" {
		t.Errorf("second name = %q", bidders[1].Name)
	}
}

func TestParseBidderLinesSkipsHeaders(t *testing.T) {
	text := `BIDDERS                     LOCATION          TOTAL
RILEY PAVING INC            SUPPLY, NC        1,387,101.46
`
	bidders := parseBidderLines(text)
	if len(bidders) != 1 {
		t.Fatalf("got %d bidders, want 1", len(bidders))
	}
}
