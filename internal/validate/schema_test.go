package validate

import (
	"testing"
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

func TestValidateSchema(t *testing.T) {
	full := entity.Record{
		Contract: entity.Contract{
			ContractNumber: "DA00234",
			WBSElement:     "46789.3.1",
			Counties:       "Brunswick",
			DateAvailable:  tp(2024, time.March, 4),
			CompletionDate: tp(2025, time.November, 15),
			MBEGoal:        fp(9),
			WBEGoal:        fp(5),
			CombinedGoal:   fp(14),
			AwardedAmount:  fp(1387101.46),
			AwardedTo:      "RILEY PAVING INC",
			AwardDate:      tp(2025, time.June, 10),
		},
		Bidders: []entity.Bidder{
			{Name: "RILEY PAVING INC", Location: "SUPPLY, NC", TotalBidAmount: fp(1387101.46), BidRank: 1, IsWinner: true},
		},
		BidItems: []entity.BidItem{
			{ItemNumber: "0001", ItemCode: "4400000000-E", Description: "GRADING", Quantity: fp(1), Unit: "Lump Sum", UnitPrice: fp(95000), TotalPrice: fp(95000)},
		},
	}
	if err := ValidateSchema(&full); err != nil {
		t.Errorf("full record rejected: %v", err)
	}

	minimal := entity.Record{Contract: entity.Contract{ContractNumber: "DA00234"}}
	if err := ValidateSchema(&minimal); err != nil {
		t.Errorf("minimal record rejected: %v", err)
	}
}

func TestValidateSchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		rec  entity.Record
	}{
		{
			name: "missing contract number",
			rec:  entity.Record{},
		},
		{
			name: "negative awarded amount",
			rec: entity.Record{Contract: entity.Contract{
				ContractNumber: "DA00234",
				AwardedAmount:  fp(-5),
			}},
		},
		{
			name: "goal above one hundred",
			rec: entity.Record{Contract: entity.Contract{
				ContractNumber: "DA00234",
				MBEGoal:        fp(250),
			}},
		},
		{
			name: "bidder without a name",
			rec: entity.Record{
				Contract: entity.Contract{ContractNumber: "DA00234"},
				Bidders:  []entity.Bidder{{TotalBidAmount: fp(100)}},
			},
		},
		{
			name: "negative total price",
			rec: entity.Record{
				Contract: entity.Contract{ContractNumber: "DA00234"},
				BidItems: []entity.BidItem{{TotalPrice: fp(-1)}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSchema(&tt.rec); err == nil {
				t.Error("expected a schema violation")
			}
		})
	}
}
