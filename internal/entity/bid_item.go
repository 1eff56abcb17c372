package entity

// BidItem is one priced line item from a bid tabulation grid.
type BidItem struct {
	ItemNumber  string   `json:"item_number,omitempty"`
	ItemCode    string   `json:"item_code,omitempty"`
	Description string   `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	TotalPrice  *float64 `json:"total_price,omitempty"`
	BidderName  string   `json:"bidder_name,omitempty"`
}
