package extract

import (
	"path/filepath"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// BidsAsReadExtractor handles the sheet read aloud at bid opening: one line
// per bidder with the as-read amount.
type BidsAsReadExtractor struct{}

func (e *BidsAsReadExtractor) DocumentType() constants.DocumentType { return constants.BidsAsRead }
func (e *BidsAsReadExtractor) Name() string                         { return "bids-as-read-grid" }

func (e *BidsAsReadExtractor) Extract(doc Document) (*entity.Record, Stats) {
	rec := &entity.Record{
		Contract: entity.Contract{
			ContractNumber: extractContractNumber(doc.Text, filepath.Base(doc.Path)),
			SourceFilePath: doc.Path,
		},
		Bidders: parseBidderLines(doc.Text),
	}

	var stats Stats
	stats.countField(rec.Contract.ContractNumber != "")
	stats.countField(len(rec.Bidders) > 0)
	return rec, stats
}

// BidSummaryExtractor handles the post-opening bid summary, which carries
// the same bidder/amount rows as the as-read sheet.
type BidSummaryExtractor struct{}

func (e *BidSummaryExtractor) DocumentType() constants.DocumentType { return constants.BidSummary }
func (e *BidSummaryExtractor) Name() string                         { return "bid-summary-grid" }

func (e *BidSummaryExtractor) Extract(doc Document) (*entity.Record, Stats) {
	rec := &entity.Record{
		Contract: entity.Contract{
			ContractNumber: extractContractNumber(doc.Text, filepath.Base(doc.Path)),
			SourceFilePath: doc.Path,
		},
		Bidders: parseBidderLines(doc.Text),
	}

	var stats Stats
	stats.countField(rec.Contract.ContractNumber != "")
	stats.countField(len(rec.Bidders) > 0)
	return rec, stats
}
