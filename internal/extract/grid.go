package extract

import (
	"regexp"
	"strings"

	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// Line-grid scraping for tabular documents. pdftotext runs with -layout, so
// rows keep their column order and can be walked line by line.

var unitTokens = map[string]struct{}{
	"LUMP SUM": {},
	"LS":       {},
	"EA":       {},
	"TON":      {},
	"LF":       {},
	"SY":       {},
	"CY":       {},
	"HR":       {},
	"DAY":      {},
	"MI":       {},
	"GAL":      {},
}

var (
	reItemRow   = regexp.MustCompile(`^(\d{4})\s+(\S+)\s+([\d,]+(?:\.\d+)?)\s+(.+)$`)
	rePriceTok  = regexp.MustCompile(`^[\d,]+\.\d{2}$`)
	rePriceScan = regexp.MustCompile(`[\d,]+\.\d{2}`)
)

// parseBidItemLines walks text rows shaped like
//
//	0001 4400000000-E 1.000 GRADING LUMP SUM 95,000.00 95,000.00
//
// assigning tokens to fields by column position: item number, code,
// quantity, then description / unit / unit price / line total.
func parseBidItemLines(text string) []entity.BidItem {
	var items []entity.BidItem
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		m := reItemRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		item := entity.BidItem{
			ItemNumber: m[1],
			ItemCode:   m[2],
			Quantity:   parseAmount(m[3]),
		}
		remainder := m[4]

		var prices []*float64
		for _, p := range rePriceScan.FindAllString(remainder, -1) {
			if v := parseAmount(p); v != nil {
				prices = append(prices, v)
			}
		}

		tokens := strings.Fields(remainder)
		kept := tokens[:0]
		for _, t := range tokens {
			if !rePriceTok.MatchString(t) {
				kept = append(kept, t)
			}
		}
		tokens = kept

		// Identify the unit token, preferring the last occurrence and
		// two-word units ("LUMP SUM") over single ones.
		for idx := len(tokens) - 1; idx >= 0; idx-- {
			two := ""
			if idx+1 < len(tokens) {
				two = strings.ToUpper(tokens[idx] + " " + tokens[idx+1])
			}
			one := strings.ToUpper(tokens[idx])
			if _, ok := unitTokens[two]; ok {
				item.Unit = titleWords(two)
				tokens = append(tokens[:idx], tokens[idx+2:]...)
				break
			}
			if _, ok := unitTokens[one]; ok {
				item.Unit = titleWords(one)
				tokens = append(tokens[:idx], tokens[idx+1:]...)
				break
			}
		}

		item.Description = strings.TrimSpace(strings.Join(tokens, " "))
		if len(prices) > 0 {
			item.UnitPrice = prices[0]
			item.TotalPrice = prices[0]
		}
		if len(prices) > 1 {
			item.TotalPrice = prices[1]
		}
		items = append(items, item)
	}
	return items
}

// Column boundaries are runs of two or more spaces; -layout preserves them,
// so single spaces inside a name or city never split a field.
var bidderRowPatterns = []*regexp.Regexp{
	// NAME  CITY, ST  1,234,567.89 [rank]
	regexp.MustCompile(`^(?P<bidder>[A-Z][A-Z0-9&.,'\- ]*?) {2,}(?P<location>[A-Z][A-Z .\-]*, ?[A-Z]{2}) {2,}(?P<amount>[\d,]+\.\d{2})(?: +(?P<rank>\d+))?$`),
	// 1,234,567.89  NAME  [CITY, ST]
	regexp.MustCompile(`^(?P<amount>[\d,]+\.\d{2}) {2,}(?P<bidder>[A-Z][A-Z0-9&.,'\- ]*?)(?: {2,}(?P<location>[A-Z][A-Z .\-]*, ?[A-Z]{2}))?$`),
}

// Header labels match as whole words only; a name like
// "BARNHILL CONTRACTING CO" is not a CONTRACT header.
var reBidderHeader = regexp.MustCompile(`\b(?:BIDS AS READ|BID SUMMARY|CONTRACT|TOTALS?|ENGINEER|BIDDERS?|LOCATION)\b`)

// parseBidderLines extracts one bidder per matching row. Rows may carry the
// amount on either side of the name; header rows are skipped. Bidders
// without an explicit rank get sequential ranks in reading order.
func parseBidderLines(text string) []entity.Bidder {
	var bidders []entity.Bidder
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isBidderHeaderLine(line) {
			continue
		}

		for _, p := range bidderRowPatterns {
			m := p.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := strings.TrimSpace(m[p.SubexpIndex("bidder")])
			if name == "" {
				continue
			}
			amount := parseAmount(m[p.SubexpIndex("amount")])
			if amount == nil {
				continue
			}

			b := entity.Bidder{
				Name:           normalizeSpace(name),
				TotalBidAmount: amount,
				PercentageDiff: parsePercent(line),
			}
			if i := p.SubexpIndex("location"); i >= 0 && i < len(m) {
				b.Location = normalizeSpace(m[i])
			}
			if i := p.SubexpIndex("rank"); i >= 0 && i < len(m) && m[i] != "" {
				if v := parseAmount(m[i]); v != nil {
					b.BidRank = int(*v)
				}
			}
			bidders = append(bidders, b)
			break
		}
	}

	for i := range bidders {
		if bidders[i].BidRank == 0 {
			bidders[i].BidRank = i + 1
		}
	}
	return bidders
}

func isBidderHeaderLine(line string) bool {
	return reBidderHeader.MatchString(line)
}

func titleWords(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}
