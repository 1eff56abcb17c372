package entity

// Bidder is one bidder's line on a tabulation or as-read sheet.
type Bidder struct {
	Name           string   `json:"bidder_name"`
	Location       string   `json:"bidder_location,omitempty"`
	TotalBidAmount *float64 `json:"total_bid_amount,omitempty"`
	BidRank        int      `json:"bid_rank,omitempty"`
	PercentageDiff *float64 `json:"percentage_diff,omitempty"`
	IsWinner       bool     `json:"is_winner,omitempty"`
}
