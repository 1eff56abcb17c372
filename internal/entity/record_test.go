package entity

import "testing"

func amount(v float64) *float64 { return &v }

func TestWinningBidder(t *testing.T) {
	flagged := Record{Bidders: []Bidder{
		{Name: "A", BidRank: 1},
		{Name: "B", BidRank: 2, IsWinner: true},
	}}
	if w := flagged.WinningBidder(); w == nil || w.Name != "B" {
		t.Errorf("flag must win over rank, got %+v", w)
	}

	ranked := Record{Bidders: []Bidder{
		{Name: "A", BidRank: 2, TotalBidAmount: amount(200)},
		{Name: "B", BidRank: 1, TotalBidAmount: amount(100)},
	}}
	if w := ranked.WinningBidder(); w == nil || w.Name != "B" {
		t.Errorf("rank one must win, got %+v", w)
	}

	none := Record{Bidders: []Bidder{{Name: "A", BidRank: 3}}}
	if w := none.WinningBidder(); w != nil {
		t.Errorf("no winner expected, got %+v", w)
	}

	empty := Record{}
	if w := empty.WinningBidder(); w != nil {
		t.Errorf("empty record has no winner, got %+v", w)
	}
}
