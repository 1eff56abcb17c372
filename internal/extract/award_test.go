package extract

import "testing"

const awardText = `NOTIFICATION OF AWARD

June 10, 2025

Riley Paving Inc
P.O. Box 88
Supply, NC 28462

Dear Sir/Madam:

We are pleased to inform you that Riley Paving Inc has been awarded the
contract in the amount of $1,387,101.46.

Contract No.: DA00234
WBS Element: 46789.3.1
County: Brunswick
Description: RESURFACING ON SR 1411
`

func TestAwardLetterExtract(t *testing.T) {
	ex := &AwardLetterExtractor{}
	rec, stats := ex.Extract(Document{Path: "Award Letter DA00234.pdf", Text: awardText})

	c := rec.Contract
	if c.ContractNumber != "DA00234" {
		t.Errorf("ContractNumber = %q, want DA00234", c.ContractNumber)
	}
	if c.AwardedTo != "Riley Paving Inc" {
		t.Errorf("AwardedTo = %q, want Riley Paving Inc", c.AwardedTo)
	}
	if c.AwardedAmount == nil || *c.AwardedAmount != 1387101.46 {
		t.Errorf("AwardedAmount = %v, want 1387101.46", c.AwardedAmount)
	}
	if c.AwardDate == nil || c.AwardDate.Format("2006-01-02") != "2025-06-10" {
		t.Errorf("AwardDate = %v, want 2025-06-10", c.AwardDate)
	}
	if c.WBSElement != "46789.3.1" {
		t.Errorf("WBSElement = %q, want 46789.3.1", c.WBSElement)
	}
	if c.Counties != "Brunswick" {
		t.Errorf("Counties = %q, want Brunswick", c.Counties)
	}
	if c.Description == "" {
		t.Error("Description is empty")
	}
	if stats.Filled != stats.Expected {
		t.Errorf("stats = %d/%d, want all fields filled", stats.Filled, stats.Expected)
	}
}

func TestCleanCompanyName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Riley Paving Inc", want: "Riley Paving Inc"},
		{name: "trailing po box", in: "Riley Paving Inc P.O. Box 88", want: "Riley Paving Inc"},
		{name: "po box without periods", in: "Riley Paving Inc PO Box 88", want: "Riley Paving Inc"},
		{name: "newline flattened", in: "Riley Paving\nInc", want: "Riley Paving Inc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanCompanyName(tt.in); got != tt.want {
				t.Errorf("cleanCompanyName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
