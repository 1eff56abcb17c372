package extract

import (
	"testing"
)

const invitationText = `NOTICE TO PROSPECTIVE BIDDERS

Contract No.: DA12345
WBS Element: 46789.3.1
DA12345 - GRADING, DRAINAGE AND PAVING ON SR 1411

The project is located in Brunswick & New Hanover Counties.

The Date of Availability for this contract is March 4, 2024.
The Completion Date for this contract is November 15, 2025.

Minority Business Enterprise Goal = 9.0%
Women Business Enterprise Goal = 5.0%
Combined MBE/WBE Goal = 14.0%

The Bid Opening will be at 2:00 pm on Tuesday June 3, 2025.
`

func TestInvitationExtract(t *testing.T) {
	ex := &InvitationExtractor{}
	rec, stats := ex.Extract(Document{Path: "DA12345 Invitation to Bid.pdf", Text: invitationText})

	c := rec.Contract
	if c.ContractNumber != "DA12345" {
		t.Errorf("ContractNumber = %q, want DA12345", c.ContractNumber)
	}
	if c.WBSElement != "46789.3.1" {
		t.Errorf("WBSElement = %q, want 46789.3.1", c.WBSElement)
	}
	if c.Counties != "Brunswick & New Hanover" {
		t.Errorf("Counties = %q, want Brunswick & New Hanover", c.Counties)
	}
	if c.Description == "" {
		t.Error("Description is empty")
	}
	if c.DateAvailable == nil || c.DateAvailable.Format("2006-01-02") != "2024-03-04" {
		t.Errorf("DateAvailable = %v, want 2024-03-04", c.DateAvailable)
	}
	if c.CompletionDate == nil || c.CompletionDate.Format("2006-01-02") != "2025-11-15" {
		t.Errorf("CompletionDate = %v, want 2025-11-15", c.CompletionDate)
	}
	if c.MBEGoal == nil || *c.MBEGoal != 9.0 {
		t.Errorf("MBEGoal = %v, want 9.0", c.MBEGoal)
	}
	if c.WBEGoal == nil || *c.WBEGoal != 5.0 {
		t.Errorf("WBEGoal = %v, want 5.0", c.WBEGoal)
	}
	if c.CombinedGoal == nil || *c.CombinedGoal != 14.0 {
		t.Errorf("CombinedGoal = %v, want 14.0", c.CombinedGoal)
	}
	if c.BidOpeningDate == nil {
		t.Fatal("BidOpeningDate is nil")
	}
	if c.BidOpeningDate.Format("2006-01-02 15:04") != "2025-06-03 14:00" {
		t.Errorf("BidOpeningDate = %v, want 2025-06-03 14:00", c.BidOpeningDate)
	}

	if stats.Filled != stats.Expected {
		t.Errorf("stats = %d/%d, want all fields filled", stats.Filled, stats.Expected)
	}
	if stats.Confidence() != 1 {
		t.Errorf("confidence = %v, want 1", stats.Confidence())
	}
}

func TestInvitationExtractSparse(t *testing.T) {
	ex := &InvitationExtractor{}
	rec, stats := ex.Extract(Document{Path: "letter.pdf", Text: "Contract No.: DA99999\nnothing else useful"})

	if rec.Contract.ContractNumber != "DA99999" {
		t.Errorf("ContractNumber = %q, want DA99999", rec.Contract.ContractNumber)
	}
	if stats.Filled != 1 {
		t.Errorf("Filled = %d, want 1", stats.Filled)
	}
	if conf := stats.Confidence(); conf <= 0 || conf >= 1 {
		t.Errorf("confidence = %v, want strictly between 0 and 1", conf)
	}
}
