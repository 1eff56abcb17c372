package validate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// Rule names, stable for logs and the extraction_logs audit column.
const (
	RuleContractTotals = "contract_totals"
	RuleBidItemsSum    = "bid_items_sum"
	RuleDateOrder      = "date_order"
	RuleGoals          = "goals"
	RuleSingleWinner   = "single_winner"
)

const (
	awardTolerance = 0.01 // cents-level match between award and winning bid
	itemsTolerance = 1.00 // $1 slack on summed line items
	goalsTolerance = 0.1
)

// Outcome is one rule's pass/fail verdict with a human-readable reason.
// Outcomes never mutate or correct the record they describe.
type Outcome struct {
	Rule   string `json:"rule"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// Validate runs every business rule over one record. Rules are independent
// pure predicates; a failing rule flags the record but never blocks loading.
func Validate(rec *entity.Record) []Outcome {
	return []Outcome{
		validateContractTotals(rec),
		validateBidItemsSum(rec),
		validateDateOrder(rec),
		validateGoals(rec),
		validateSingleWinner(rec),
	}
}

// PassRate returns the fraction of passed outcomes, 1 when there are none.
func PassRate(outcomes []Outcome) float64 {
	if len(outcomes) == 0 {
		return 1
	}
	passed := 0
	for _, o := range outcomes {
		if o.Passed {
			passed++
		}
	}
	return float64(passed) / float64(len(outcomes))
}

// FailedRules lists the names of failing rules, in rule order.
func FailedRules(outcomes []Outcome) []string {
	var failed []string
	for _, o := range outcomes {
		if !o.Passed {
			failed = append(failed, o.Rule)
		}
	}
	return failed
}

func pass(rule, reason string) Outcome {
	return Outcome{Rule: rule, Passed: true, Reason: reason}
}

func fail(rule, reason string) Outcome {
	return Outcome{Rule: rule, Passed: false, Reason: reason}
}

// validateContractTotals checks the awarded amount against the winning
// bidder's total.
func validateContractTotals(rec *entity.Record) Outcome {
	c := rec.Contract
	if c.AwardedAmount == nil || c.AwardedTo == "" {
		return pass(RuleContractTotals, "no award data to validate")
	}

	winner := rec.WinningBidder()
	if winner == nil {
		return fail(RuleContractTotals, "award recorded but no winning bidder found")
	}
	if winner.TotalBidAmount != nil &&
		math.Abs(*c.AwardedAmount-*winner.TotalBidAmount) > awardTolerance {
		return fail(RuleContractTotals, fmt.Sprintf(
			"award amount mismatch: %.2f != %.2f", *c.AwardedAmount, *winner.TotalBidAmount))
	}
	return pass(RuleContractTotals, "contract totals validated")
}

// validateBidItemsSum checks that summed line items match the stated totals:
// items attributed to a bidder against that bidder's total, unattributed
// items against the stated contract total (winning bid, else awarded
// amount).
func validateBidItemsSum(rec *entity.Record) Outcome {
	if len(rec.Bidders) == 0 || len(rec.BidItems) == 0 {
		return pass(RuleBidItemsSum, "no data to validate")
	}

	sums := map[string]float64{}
	for _, it := range rec.BidItems {
		if it.TotalPrice != nil {
			sums[it.BidderName] += *it.TotalPrice
		}
	}

	var mismatches []string
	for _, b := range rec.Bidders {
		if b.Name == "" || b.TotalBidAmount == nil {
			continue
		}
		itemsSum, ok := sums[b.Name]
		if !ok {
			continue
		}
		if math.Abs(*b.TotalBidAmount-itemsSum) > itemsTolerance {
			mismatches = append(mismatches, fmt.Sprintf(
				"%s: total=%.2f, items_sum=%.2f", b.Name, *b.TotalBidAmount, itemsSum))
		}
	}

	if unattributed, ok := sums[""]; ok {
		stated := statedContractTotal(rec)
		if stated != nil && math.Abs(*stated-unattributed) > itemsTolerance {
			mismatches = append(mismatches, fmt.Sprintf(
				"contract: total=%.2f, items_sum=%.2f", *stated, unattributed))
		}
	}

	if len(mismatches) > 0 {
		return fail(RuleBidItemsSum, "bid items sum mismatch: "+strings.Join(mismatches, "; "))
	}
	return pass(RuleBidItemsSum, "bid items validated")
}

func statedContractTotal(rec *entity.Record) *float64 {
	if w := rec.WinningBidder(); w != nil && w.TotalBidAmount != nil {
		return w.TotalBidAmount
	}
	return rec.Contract.AwardedAmount
}

// validateDateOrder checks availability < completion, bid opening ≤ award,
// and bid opening < availability.
func validateDateOrder(rec *entity.Record) Outcome {
	c := rec.Contract
	if c.DateAvailable != nil && c.CompletionDate != nil &&
		!c.DateAvailable.Before(*c.CompletionDate) {
		return fail(RuleDateOrder, "date available must be before completion date")
	}
	if c.BidOpeningDate != nil && c.AwardDate != nil {
		// The opening carries a time of day; compare at date granularity.
		opening := c.BidOpeningDate.Truncate(24 * time.Hour)
		if opening.After(*c.AwardDate) {
			return fail(RuleDateOrder, "bid opening must be on or before award date")
		}
	}
	if c.BidOpeningDate != nil && c.DateAvailable != nil &&
		!c.BidOpeningDate.Before(*c.DateAvailable) {
		return fail(RuleDateOrder, "bid opening must be before date available")
	}
	return pass(RuleDateOrder, "dates validated")
}

// validateGoals checks the combined MBE/WBE goal against its parts.
func validateGoals(rec *entity.Record) Outcome {
	c := rec.Contract
	if c.MBEGoal == nil || c.WBEGoal == nil || c.CombinedGoal == nil {
		return pass(RuleGoals, "goals not all specified")
	}
	expected := *c.MBEGoal + *c.WBEGoal
	if *c.CombinedGoal < expected-goalsTolerance {
		return fail(RuleGoals, fmt.Sprintf(
			"combined goal (%.1f) inconsistent with MBE (%.1f) + WBE (%.1f)",
			*c.CombinedGoal, *c.MBEGoal, *c.WBEGoal))
	}
	return pass(RuleGoals, "goals validated")
}

// validateSingleWinner checks that at most one bidder is flagged as winner.
func validateSingleWinner(rec *entity.Record) Outcome {
	winners := 0
	for _, b := range rec.Bidders {
		if b.IsWinner {
			winners++
		}
	}
	if winners > 1 {
		return fail(RuleSingleWinner, fmt.Sprintf("%d bidders flagged as winner", winners))
	}
	return pass(RuleSingleWinner, "winner flags validated")
}
