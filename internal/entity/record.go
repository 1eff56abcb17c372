package entity

// Record is the normalized output of one document extraction: contract-level
// fields plus any bidder and bid-item rows the document carried. Produced
// once per document and never mutated afterwards.
type Record struct {
	Contract Contract  `json:"contract"`
	Bidders  []Bidder  `json:"bidders,omitempty"`
	BidItems []BidItem `json:"bid_items,omitempty"`
}

// WinningBidder returns the bidder flagged as winner, or the rank-1 bidder
// when no explicit flag is set. Nil when neither exists.
func (r *Record) WinningBidder() *Bidder {
	for i := range r.Bidders {
		if r.Bidders[i].IsWinner {
			return &r.Bidders[i]
		}
	}
	for i := range r.Bidders {
		if r.Bidders[i].BidRank == 1 {
			return &r.Bidders[i]
		}
	}
	return nil
}
