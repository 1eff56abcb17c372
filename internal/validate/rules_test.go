package validate

import (
	"reflect"
	"testing"
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

func fp(v float64) *float64 { return &v }

func tp(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func outcomeFor(t *testing.T, outcomes []Outcome, rule string) Outcome {
	t.Helper()
	for _, o := range outcomes {
		if o.Rule == rule {
			return o
		}
	}
	t.Fatalf("no outcome for rule %q", rule)
	return Outcome{}
}

func TestContractTotals(t *testing.T) {
	tests := []struct {
		name string
		rec  entity.Record
		want bool
	}{
		{
			name: "award matches winning bid",
			rec: entity.Record{
				Contract: entity.Contract{AwardedAmount: fp(1387101.46), AwardedTo: "RILEY PAVING INC"},
				Bidders:  []entity.Bidder{{Name: "RILEY PAVING INC", TotalBidAmount: fp(1387101.46), IsWinner: true}},
			},
			want: true,
		},
		{
			name: "mismatch beyond a cent",
			rec: entity.Record{
				Contract: entity.Contract{AwardedAmount: fp(1000000), AwardedTo: "RILEY PAVING INC"},
				Bidders:  []entity.Bidder{{Name: "RILEY PAVING INC", TotalBidAmount: fp(999000), IsWinner: true}},
			},
			want: false,
		},
		{
			name: "sub-cent difference tolerated",
			rec: entity.Record{
				Contract: entity.Contract{AwardedAmount: fp(100.005), AwardedTo: "RILEY PAVING INC"},
				Bidders:  []entity.Bidder{{Name: "RILEY PAVING INC", TotalBidAmount: fp(100.00), IsWinner: true}},
			},
			want: true,
		},
		{
			name: "rank one bidder used when no winner flag",
			rec: entity.Record{
				Contract: entity.Contract{AwardedAmount: fp(500), AwardedTo: "A"},
				Bidders:  []entity.Bidder{{Name: "A", TotalBidAmount: fp(500), BidRank: 1}},
			},
			want: true,
		},
		{
			name: "award recorded but no winner",
			rec: entity.Record{
				Contract: entity.Contract{AwardedAmount: fp(500), AwardedTo: "A"},
			},
			want: false,
		},
		{
			name: "no award data passes vacuously",
			rec:  entity.Record{Contract: entity.Contract{ContractNumber: "DA00234"}},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := outcomeFor(t, Validate(&tt.rec), RuleContractTotals)
			if o.Passed != tt.want {
				t.Errorf("passed = %v, want %v (%s)", o.Passed, tt.want, o.Reason)
			}
		})
	}
}

func TestBidItemsSum(t *testing.T) {
	tests := []struct {
		name string
		rec  entity.Record
		want bool
	}{
		{
			name: "items sum to the bidder total",
			rec: entity.Record{
				Bidders: []entity.Bidder{{Name: "A", TotalBidAmount: fp(300)}},
				BidItems: []entity.BidItem{
					{BidderName: "A", TotalPrice: fp(100)},
					{BidderName: "A", TotalPrice: fp(200)},
				},
			},
			want: true,
		},
		{
			name: "within one dollar",
			rec: entity.Record{
				Bidders:  []entity.Bidder{{Name: "A", TotalBidAmount: fp(300)}},
				BidItems: []entity.BidItem{{BidderName: "A", TotalPrice: fp(299.50)}},
			},
			want: true,
		},
		{
			name: "off by more than a dollar",
			rec: entity.Record{
				Bidders:  []entity.Bidder{{Name: "A", TotalBidAmount: fp(300)}},
				BidItems: []entity.BidItem{{BidderName: "A", TotalPrice: fp(297)}},
			},
			want: false,
		},
		{
			name: "unattributed items checked against winning bid",
			rec: entity.Record{
				Bidders:  []entity.Bidder{{Name: "A", TotalBidAmount: fp(300), IsWinner: true}},
				BidItems: []entity.BidItem{{TotalPrice: fp(100)}, {TotalPrice: fp(200)}},
			},
			want: true,
		},
		{
			name: "unattributed items mismatch",
			rec: entity.Record{
				Bidders:  []entity.Bidder{{Name: "A", TotalBidAmount: fp(300), IsWinner: true}},
				BidItems: []entity.BidItem{{TotalPrice: fp(100)}},
			},
			want: false,
		},
		{
			name: "no items passes vacuously",
			rec: entity.Record{
				Bidders: []entity.Bidder{{Name: "A", TotalBidAmount: fp(300)}},
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := outcomeFor(t, Validate(&tt.rec), RuleBidItemsSum)
			if o.Passed != tt.want {
				t.Errorf("passed = %v, want %v (%s)", o.Passed, tt.want, o.Reason)
			}
		})
	}
}

func TestDateOrder(t *testing.T) {
	tests := []struct {
		name string
		rec  entity.Record
		want bool
	}{
		{
			name: "availability before completion",
			rec: entity.Record{Contract: entity.Contract{
				DateAvailable:  tp(2024, time.March, 4),
				CompletionDate: tp(2025, time.November, 15),
			}},
			want: true,
		},
		{
			name: "availability after completion",
			rec: entity.Record{Contract: entity.Contract{
				DateAvailable:  tp(2025, time.November, 15),
				CompletionDate: tp(2024, time.March, 4),
			}},
			want: false,
		},
		{
			name: "opening before award",
			rec: entity.Record{Contract: entity.Contract{
				BidOpeningDate: tp(2025, time.June, 3),
				AwardDate:      tp(2025, time.June, 10),
			}},
			want: true,
		},
		{
			name: "afternoon opening on the award day",
			rec: entity.Record{Contract: entity.Contract{
				BidOpeningDate: func() *time.Time {
					t := time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC)
					return &t
				}(),
				AwardDate: tp(2025, time.June, 10),
			}},
			want: true,
		},
		{
			name: "opening after award",
			rec: entity.Record{Contract: entity.Contract{
				BidOpeningDate: tp(2025, time.June, 11),
				AwardDate:      tp(2025, time.June, 10),
			}},
			want: false,
		},
		{
			name: "opening before availability",
			rec: entity.Record{Contract: entity.Contract{
				BidOpeningDate: tp(2024, time.January, 16),
				DateAvailable:  tp(2024, time.March, 4),
			}},
			want: true,
		},
		{
			name: "opening after availability",
			rec: entity.Record{Contract: entity.Contract{
				BidOpeningDate: tp(2024, time.April, 2),
				DateAvailable:  tp(2024, time.March, 4),
			}},
			want: false,
		},
		{
			name: "missing dates pass vacuously",
			rec:  entity.Record{},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := outcomeFor(t, Validate(&tt.rec), RuleDateOrder)
			if o.Passed != tt.want {
				t.Errorf("passed = %v, want %v (%s)", o.Passed, tt.want, o.Reason)
			}
		})
	}
}

func TestGoals(t *testing.T) {
	tests := []struct {
		name string
		rec  entity.Record
		want bool
	}{
		{
			name: "combined equals the parts",
			rec:  entity.Record{Contract: entity.Contract{MBEGoal: fp(9), WBEGoal: fp(5), CombinedGoal: fp(14)}},
			want: true,
		},
		{
			name: "combined within tolerance",
			rec:  entity.Record{Contract: entity.Contract{MBEGoal: fp(9), WBEGoal: fp(5), CombinedGoal: fp(13.95)}},
			want: true,
		},
		{
			name: "combined too low",
			rec:  entity.Record{Contract: entity.Contract{MBEGoal: fp(9), WBEGoal: fp(5), CombinedGoal: fp(10)}},
			want: false,
		},
		{
			name: "missing goals pass vacuously",
			rec:  entity.Record{Contract: entity.Contract{MBEGoal: fp(9)}},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := outcomeFor(t, Validate(&tt.rec), RuleGoals)
			if o.Passed != tt.want {
				t.Errorf("passed = %v, want %v (%s)", o.Passed, tt.want, o.Reason)
			}
		})
	}
}

func TestSingleWinner(t *testing.T) {
	two := entity.Record{Bidders: []entity.Bidder{
		{Name: "A", IsWinner: true},
		{Name: "B", IsWinner: true},
	}}
	if o := outcomeFor(t, Validate(&two), RuleSingleWinner); o.Passed {
		t.Error("two winners must fail")
	}

	one := entity.Record{Bidders: []entity.Bidder{
		{Name: "A", IsWinner: true},
		{Name: "B"},
	}}
	if o := outcomeFor(t, Validate(&one), RuleSingleWinner); !o.Passed {
		t.Errorf("one winner must pass: %s", o.Reason)
	}

	none := entity.Record{}
	if o := outcomeFor(t, Validate(&none), RuleSingleWinner); !o.Passed {
		t.Errorf("no winner flag must pass: %s", o.Reason)
	}
}

// Validation never mutates the record and always yields the same verdicts.
func TestValidatePure(t *testing.T) {
	rec := entity.Record{
		Contract: entity.Contract{
			ContractNumber: "DA00234",
			AwardedAmount:  fp(1000000),
			AwardedTo:      "A",
		},
		Bidders: []entity.Bidder{{Name: "A", TotalBidAmount: fp(999000), IsWinner: true}},
	}
	before := rec

	first := Validate(&rec)
	second := Validate(&rec)

	if !reflect.DeepEqual(rec, before) {
		t.Error("Validate mutated the record")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Validate is not deterministic")
	}
}

func TestPassRateAndFailedRules(t *testing.T) {
	outcomes := []Outcome{
		{Rule: "a", Passed: true},
		{Rule: "b", Passed: false},
		{Rule: "c", Passed: true},
		{Rule: "d", Passed: false},
	}
	if got := PassRate(outcomes); got != 0.5 {
		t.Errorf("PassRate = %v, want 0.5", got)
	}
	if got := PassRate(nil); got != 1 {
		t.Errorf("PassRate(nil) = %v, want 1", got)
	}
	failed := FailedRules(outcomes)
	if len(failed) != 2 || failed[0] != "b" || failed[1] != "d" {
		t.Errorf("FailedRules = %v, want [b d]", failed)
	}
}
