package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// BidTabsExtractor handles bid tabulations: the priced line-item grid plus
// the bidder summary with contract totals.
type BidTabsExtractor struct{}

var (
	// RILEY PAVING INC  SUPPLY, NC
	reTabBidder = regexp.MustCompile(`([A-Z][A-Z\s&]+(?:INC|LLC|CO)?)\s+([A-Z]+,\s*[A-Z]{2})`)
	// CONTRACT TOTAL 1,387,101.46
	reTabTotal = regexp.MustCompile(`(?:CONTRACT\s+)?TOTAL\s+([\d,]+\.?\d*)`)
	// 1,387,101.46RILEY PAVING INC 1  (ranking block after "BIDDERS IN ORDER")
	reTabRankLine    = regexp.MustCompile(`([\d,]+\.?\d*)\s*([A-Z\s&]+(?:INC|LLC)?)\s+(\d+)`)
	reTabRankSection = regexp.MustCompile(`(?s)BIDDERS IN ORDER.*?CONTRACT TOTAL(.*?)(?:\n\n|\z)`)
)

func (e *BidTabsExtractor) DocumentType() constants.DocumentType { return constants.BidTabs }
func (e *BidTabsExtractor) Name() string                         { return "bid-tabs-grid" }

func (e *BidTabsExtractor) Extract(doc Document) (*entity.Record, Stats) {
	text := doc.Text
	rec := &entity.Record{
		Contract: entity.Contract{
			ContractNumber: extractContractNumber(text, filepath.Base(doc.Path)),
			SourceFilePath: doc.Path,
		},
		Bidders:  extractTabBidders(text),
		BidItems: parseBidItemLines(text),
	}

	var stats Stats
	stats.countField(rec.Contract.ContractNumber != "")
	stats.countField(len(rec.Bidders) > 0)
	stats.countField(len(rec.BidItems) > 0)
	return rec, stats
}

// extractTabBidders pairs each bidder header with the first CONTRACT TOTAL
// appearing after it, then overlays explicit ranks from the "BIDDERS IN
// ORDER" block when present.
func extractTabBidders(text string) []entity.Bidder {
	var bidders []entity.Bidder

	bidderIdx := reTabBidder.FindAllStringSubmatchIndex(text, -1)
	totalIdx := reTabTotal.FindAllStringSubmatchIndex(text, -1)

	for i, bm := range bidderIdx {
		name := normalizeSpace(text[bm[2]:bm[3]])
		location := normalizeSpace(text[bm[4]:bm[5]])

		var total *float64
		for _, tm := range totalIdx {
			if tm[0] > bm[1] {
				total = parseAmount(text[tm[2]:tm[3]])
				break
			}
		}

		bidders = append(bidders, entity.Bidder{
			Name:           name,
			Location:       location,
			TotalBidAmount: total,
			BidRank:        i + 1,
		})
	}

	if sec := reTabRankSection.FindStringSubmatch(text); sec != nil {
		lines := strings.Split(strings.TrimSpace(sec[1]), "\n")
		for idx, line := range lines {
			m := reTabRankLine.FindStringSubmatch(line)
			if m == nil || idx >= len(bidders) {
				continue
			}
			if v := parseAmount(m[3]); v != nil {
				bidders[idx].BidRank = int(*v)
			}
		}
	}
	return bidders
}
