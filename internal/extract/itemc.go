package extract

import (
	"path/filepath"
	"regexp"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// ItemCExtractor handles Item C reports: proposal header block plus the
// bidder comparison table with percentage differences from the estimate.
type ItemCExtractor struct{}

var (
	itemcProposalLength = []*regexp.Regexp{
		regexp.MustCompile(`(?i)PROPOSAL LENGTH\s+([\d.]+)\s+MILES`),
		regexp.MustCompile(`(?i)([\d.]+)\s+MILES`),
	}
	itemcTypeOfWork = []*regexp.Regexp{
		regexp.MustCompile(`(?i)TYPE OF WORK\s+([^\n]+)`),
	}
	itemcLocation = []*regexp.Regexp{
		regexp.MustCompile(`(?i)LOCATION\s+([^\n]+)`),
	}
	itemcEstimate = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ESTIMATE\s+([\d,]+\.?\d*)`),
	}
	itemcDateAvailable = []*regexp.Regexp{
		regexp.MustCompile(`(?i)DATE AVAILABLE\s+([A-Z]{3}\s+\d{2}\s+\d{4})`),
	}
	itemcCompletion = []*regexp.Regexp{
		regexp.MustCompile(`(?i)FINAL COMPLETION\s+([A-Z]{3}\s+\d{2}\s+\d{4})`),
	}
	// STEVENS TOWING CO INC  YONGES ISLAND, SC  2,220,630.54  -15.9
	// Column boundaries are runs of two or more spaces (-layout output).
	reItemCBidder = regexp.MustCompile(`(?m)^ *([A-Z][A-Z0-9&.' ]*?) {2,}([A-Z][A-Z ,]*?) {2,}([\d,]+\.\d{2}) +([-+]?\d+\.?\d*) *$`)
)

func (e *ItemCExtractor) DocumentType() constants.DocumentType { return constants.ItemCReport }
func (e *ItemCExtractor) Name() string                         { return "item-c-regex" }

func (e *ItemCExtractor) Extract(doc Document) (*entity.Record, Stats) {
	text := doc.Text
	c := entity.Contract{
		ContractNumber: extractContractNumber(text, filepath.Base(doc.Path)),
		ProposalLength: parseAmount(matchFirst(text, itemcProposalLength)),
		TypeOfWork:     matchFirst(text, itemcTypeOfWork),
		Location:       matchFirst(text, itemcLocation),
		EstimatedCost:  parseAmount(matchFirst(text, itemcEstimate)),
		DateAvailable:  parseDate(matchFirst(text, itemcDateAvailable)),
		CompletionDate: parseDate(matchFirst(text, itemcCompletion)),
		SourceFilePath: doc.Path,
	}

	rec := &entity.Record{Contract: c, Bidders: extractItemCBidders(text)}

	var stats Stats
	stats.countField(c.ContractNumber != "")
	stats.countField(c.ProposalLength != nil)
	stats.countField(c.TypeOfWork != "")
	stats.countField(c.Location != "")
	stats.countField(c.EstimatedCost != nil)
	stats.countField(c.DateAvailable != nil)
	stats.countField(c.CompletionDate != nil)
	stats.countField(len(rec.Bidders) > 0)
	return rec, stats
}

func extractItemCBidders(text string) []entity.Bidder {
	var bidders []entity.Bidder
	for idx, m := range reItemCBidder.FindAllStringSubmatch(text, -1) {
		amount := parseAmount(m[3])
		diff := parseAmount(m[4])
		if amount == nil || diff == nil {
			continue
		}
		bidders = append(bidders, entity.Bidder{
			Name:           normalizeSpace(m[1]),
			Location:       normalizeSpace(m[2]),
			TotalBidAmount: amount,
			PercentageDiff: diff,
			BidRank:        idx + 1,
		})
	}
	return bidders
}
