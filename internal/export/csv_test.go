package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

func fp(v float64) *float64 { return &v }

func sampleRecords() []*entity.Record {
	award := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	return []*entity.Record{
		{
			Contract: entity.Contract{
				ContractNumber: "DA00234",
				Counties:       "Brunswick",
				AwardedAmount:  fp(1387101.46),
				AwardedTo:      "RILEY PAVING INC",
				AwardDate:      &award,
			},
			Bidders: []entity.Bidder{
				{Name: "RILEY PAVING INC", Location: "SUPPLY, NC", TotalBidAmount: fp(1387101.46), BidRank: 1, IsWinner: true},
				{Name: "BARNHILL CONTRACTING CO", Location: "TARBORO, NC", TotalBidAmount: fp(1402500), BidRank: 2},
			},
			BidItems: []entity.BidItem{
				{ItemNumber: "0001", ItemCode: "4400000000-E", Description: "GRADING", Quantity: fp(1), Unit: "Lump Sum", UnitPrice: fp(95000), TotalPrice: fp(95000)},
			},
		},
		{
			Contract: entity.Contract{ContractNumber: "DA55555"},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteCSV(dir, sampleRecords(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d files, want 3", len(paths))
	}

	contracts := readCSV(t, filepath.Join(dir, "contracts.csv"))
	if len(contracts) != 3 { // header + 2 contracts
		t.Fatalf("contracts rows = %d, want 3", len(contracts))
	}
	if contracts[0][0] != "contract_number" {
		t.Errorf("header = %v", contracts[0])
	}
	if contracts[1][0] != "DA00234" {
		t.Errorf("first contract = %q", contracts[1][0])
	}
	awardedCol := -1
	for i, h := range contracts[0] {
		if h == "awarded_amount" {
			awardedCol = i
		}
	}
	if awardedCol < 0 {
		t.Fatal("awarded_amount column missing")
	}
	if contracts[1][awardedCol] != "1387101.46" {
		t.Errorf("awarded amount = %q, want 1387101.46", contracts[1][awardedCol])
	}
	// Absent optionals serialize as empty cells, not zeros.
	if contracts[2][awardedCol] != "" {
		t.Errorf("empty amount = %q, want empty cell", contracts[2][awardedCol])
	}

	bidders := readCSV(t, filepath.Join(dir, "bidders.csv"))
	if len(bidders) != 3 { // header + 2 bidders
		t.Fatalf("bidders rows = %d, want 3", len(bidders))
	}
	if bidders[1][0] != "DA00234" || bidders[1][1] != "RILEY PAVING INC" {
		t.Errorf("first bidder row = %v", bidders[1])
	}
	if bidders[1][6] != "true" || bidders[2][6] != "false" {
		t.Errorf("winner flags = %q,%q", bidders[1][6], bidders[2][6])
	}

	items := readCSV(t, filepath.Join(dir, "bid_items.csv"))
	if len(items) != 2 { // header + 1 item
		t.Fatalf("item rows = %d, want 2", len(items))
	}
	if items[1][1] != "0001" || items[1][5] != "Lump Sum" {
		t.Errorf("item row = %v", items[1])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteCSV(dir, nil, nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"contracts.csv", "bidders.csv", "bid_items.csv"} {
		rows := readCSV(t, filepath.Join(dir, name))
		if len(rows) != 1 {
			t.Errorf("%s has %d rows, want header only", name, len(rows))
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	data, err := WriteXLSX(sampleRecords(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook")
	}
	// XLSX files are zip archives.
	if string(data[:2]) != "PK" {
		t.Errorf("workbook does not look like a zip (starts %q)", data[:2])
	}
}
