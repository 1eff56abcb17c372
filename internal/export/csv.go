package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/internal/common"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

var (
	contractHeaders = []string{
		"contract_number", "wbs_element", "counties", "description",
		"date_available", "completion_date", "mbe_goal", "wbe_goal",
		"combined_goal", "bid_opening_date", "proposal_length",
		"type_of_work", "location", "estimated_cost", "awarded_amount",
		"awarded_to", "award_date", "source_file_path",
	}
	bidderHeaders = []string{
		"contract_number", "bidder_name", "bidder_location",
		"total_bid_amount", "bid_rank", "percentage_diff", "is_winner",
	}
	bidItemHeaders = []string{
		"contract_number", "item_number", "item_code", "description",
		"quantity", "unit", "unit_price", "total_price", "bidder_name",
	}
)

// WriteCSV writes three CSV files (contracts, bidders, bid_items) into
// outDir, one row per entity across all records. Returns the written
// paths.
func WriteCSV(outDir string, records []*entity.Record, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, common.WrapError(err, "creating export dir")
	}

	files := []struct {
		name    string
		headers []string
		rows    [][]string
	}{
		{"contracts.csv", contractHeaders, contractRows(records)},
		{"bidders.csv", bidderHeaders, bidderRows(records)},
		{"bid_items.csv", bidItemHeaders, bidItemRows(records)},
	}

	var paths []string
	for _, fdef := range files {
		path := filepath.Join(outDir, fdef.name)
		if err := writeCSVFile(path, fdef.headers, fdef.rows); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		logger.Info("export.csv.ok", "path", path, "rows", len(fdef.rows))
	}
	logger.Info("export.csv.done", "dir", outDir, "elapsed_ms", time.Since(start).Milliseconds())
	return paths, nil
}

func writeCSVFile(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return common.WrapError(err, "creating csv file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return common.WrapError(err, "writing csv header")
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return common.WrapError(err, "writing csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return common.WrapError(err, "flushing csv")
	}
	return f.Close()
}

func contractRows(records []*entity.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		c := rec.Contract
		rows = append(rows, []string{
			c.ContractNumber,
			c.WBSElement,
			c.Counties,
			c.Description,
			fmtDate(c.DateAvailable),
			fmtDate(c.CompletionDate),
			fmtFloat(c.MBEGoal),
			fmtFloat(c.WBEGoal),
			fmtFloat(c.CombinedGoal),
			fmtDateTime(c.BidOpeningDate),
			fmtFloat(c.ProposalLength),
			c.TypeOfWork,
			c.Location,
			fmtFloat(c.EstimatedCost),
			fmtFloat(c.AwardedAmount),
			c.AwardedTo,
			fmtDate(c.AwardDate),
			c.SourceFilePath,
		})
	}
	return rows
}

func bidderRows(records []*entity.Record) [][]string {
	var rows [][]string
	for _, rec := range records {
		for _, b := range rec.Bidders {
			rows = append(rows, []string{
				rec.Contract.ContractNumber,
				b.Name,
				b.Location,
				fmtFloat(b.TotalBidAmount),
				fmtInt(b.BidRank),
				fmtFloat(b.PercentageDiff),
				strconv.FormatBool(b.IsWinner),
			})
		}
	}
	return rows
}

func bidItemRows(records []*entity.Record) [][]string {
	var rows [][]string
	for _, rec := range records {
		for _, it := range rec.BidItems {
			rows = append(rows, []string{
				rec.Contract.ContractNumber,
				it.ItemNumber,
				it.ItemCode,
				it.Description,
				fmtFloat(it.Quantity),
				it.Unit,
				fmtFloat(it.UnitPrice),
				fmtFloat(it.TotalPrice),
				it.BidderName,
			})
		}
	}
	return rows
}

func fmtFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
