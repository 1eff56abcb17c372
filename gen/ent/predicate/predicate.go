// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BidItem is the predicate function for biditem builders.
type BidItem func(*sql.Selector)

// Bidder is the predicate function for bidder builders.
type Bidder func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// ExtractionLog is the predicate function for extractionlog builders.
type ExtractionLog func(*sql.Selector)
