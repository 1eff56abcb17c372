package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// BuildRecordJSONSchema returns the record schema (draft 2020-12 subset) as
// a generic map. Validated locally before loading.
func BuildRecordJSONSchema() map[string]any {
	money := map[string]any{"type": "number", "minimum": 0.0}
	date := map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}

	bidder := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"bidder_name":      map[string]any{"type": "string", "minLength": 1},
			"bidder_location":  map[string]any{"type": "string"},
			"total_bid_amount": money,
			"bid_rank":         map[string]any{"type": "integer", "minimum": 0},
			"percentage_diff":  map[string]any{"type": "number"},
			"is_winner":        map[string]any{"type": "boolean"},
		},
		"required": []string{"bidder_name"},
	}

	bidItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"item_number": map[string]any{"type": "string"},
			"item_code":   map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"quantity":    map[string]any{"type": "number", "minimum": 0.0},
			"unit":        map[string]any{"type": "string"},
			"unit_price":  money,
			"total_price": money,
			"bidder_name": map[string]any{"type": "string"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"contract_number":  map[string]any{"type": "string", "minLength": 1},
			"wbs_element":      map[string]any{"type": "string"},
			"counties":         map[string]any{"type": "string"},
			"description":      map[string]any{"type": "string"},
			"date_available":   date,
			"completion_date":  date,
			"mbe_goal":         map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
			"wbe_goal":         map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
			"combined_goal":    map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
			"bid_opening_date": map[string]any{"type": "string"},
			"proposal_length":  map[string]any{"type": "number", "minimum": 0.0},
			"type_of_work":     map[string]any{"type": "string"},
			"location":         map[string]any{"type": "string"},
			"estimated_cost":   money,
			"awarded_amount":   money,
			"awarded_to":       map[string]any{"type": "string"},
			"award_date":       date,
			"bidders":          map[string]any{"type": "array", "items": bidder},
			"bid_items":        map[string]any{"type": "array", "items": bidItem},
		},
		"required": []string{"contract_number"},
	}
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// ValidateSchema checks a record against the JSON schema. A schema miss is
// reported, never corrected.
func ValidateSchema(rec *entity.Record) error {
	schemaOnce.Do(func() {
		b, err := json.Marshal(BuildRecordJSONSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("record.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	doc := recordDocument(rec)
	// Round-trip through JSON so numbers take the generic form the
	// validator expects.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}

// recordDocument flattens a record into the wire shape the schema describes.
// Empty fields are omitted; absence is not a schema violation.
func recordDocument(rec *entity.Record) map[string]any {
	doc := map[string]any{}
	c := rec.Contract

	putStr := func(key, v string) {
		if v != "" {
			doc[key] = v
		}
	}
	putNum := func(key string, v *float64) {
		if v != nil {
			doc[key] = *v
		}
	}
	putDate := func(key string, v *time.Time) {
		if v != nil {
			doc[key] = v.Format("2006-01-02")
		}
	}

	putStr("contract_number", c.ContractNumber)
	putStr("wbs_element", c.WBSElement)
	putStr("counties", c.Counties)
	putStr("description", c.Description)
	putDate("date_available", c.DateAvailable)
	putDate("completion_date", c.CompletionDate)
	putNum("mbe_goal", c.MBEGoal)
	putNum("wbe_goal", c.WBEGoal)
	putNum("combined_goal", c.CombinedGoal)
	if c.BidOpeningDate != nil {
		doc["bid_opening_date"] = c.BidOpeningDate.Format("2006-01-02 15:04:05")
	}
	putNum("proposal_length", c.ProposalLength)
	putStr("type_of_work", c.TypeOfWork)
	putStr("location", c.Location)
	putNum("estimated_cost", c.EstimatedCost)
	putNum("awarded_amount", c.AwardedAmount)
	putStr("awarded_to", c.AwardedTo)
	putDate("award_date", c.AwardDate)

	if len(rec.Bidders) > 0 {
		bidders := make([]map[string]any, 0, len(rec.Bidders))
		for _, b := range rec.Bidders {
			m := map[string]any{"bidder_name": b.Name}
			if b.Location != "" {
				m["bidder_location"] = b.Location
			}
			if b.TotalBidAmount != nil {
				m["total_bid_amount"] = *b.TotalBidAmount
			}
			if b.BidRank > 0 {
				m["bid_rank"] = b.BidRank
			}
			if b.PercentageDiff != nil {
				m["percentage_diff"] = *b.PercentageDiff
			}
			if b.IsWinner {
				m["is_winner"] = true
			}
			bidders = append(bidders, m)
		}
		doc["bidders"] = bidders
	}

	if len(rec.BidItems) > 0 {
		items := make([]map[string]any, 0, len(rec.BidItems))
		for _, it := range rec.BidItems {
			m := map[string]any{}
			if it.ItemNumber != "" {
				m["item_number"] = it.ItemNumber
			}
			if it.ItemCode != "" {
				m["item_code"] = it.ItemCode
			}
			if it.Description != "" {
				m["description"] = it.Description
			}
			if it.Quantity != nil {
				m["quantity"] = *it.Quantity
			}
			if it.Unit != "" {
				m["unit"] = it.Unit
			}
			if it.UnitPrice != nil {
				m["unit_price"] = *it.UnitPrice
			}
			if it.TotalPrice != nil {
				m["total_price"] = *it.TotalPrice
			}
			if it.BidderName != "" {
				m["bidder_name"] = it.BidderName
			}
			items = append(items, m)
		}
		doc["bid_items"] = items
	}
	return doc
}
