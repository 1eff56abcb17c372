package export

import (
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/andrepreira/bid-pdf-document-processor/internal/common"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// WriteXLSX returns an XLSX workbook (as bytes) with one sheet per entity:
// Contracts, Bidders, Bid Items.
func WriteXLSX(records []*entity.Record, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()

	sheets := []struct {
		name    string
		headers []string
		rows    [][]string
		widths  map[string]float64
	}{
		{
			name:    "Contracts",
			headers: contractHeaders,
			rows:    contractRows(records),
			widths: map[string]float64{
				"A": 16, "C": 24, "D": 48, "L": 24, "M": 28, "P": 32, "R": 60,
			},
		},
		{
			name:    "Bidders",
			headers: bidderHeaders,
			rows:    bidderRows(records),
			widths: map[string]float64{
				"A": 16, "B": 36, "C": 24, "D": 16,
			},
		},
		{
			name:    "Bid Items",
			headers: bidItemHeaders,
			rows:    bidItemRows(records),
			widths: map[string]float64{
				"A": 16, "D": 48, "I": 36,
			},
		},
	}

	for i, s := range sheets {
		if i == 0 {
			// Rename the default sheet instead of leaving Sheet1 behind.
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(s.name); err != nil {
				return nil, err
			}
		}

		for col, h := range s.headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			_ = f.SetCellValue(s.name, cell, h)
		}
		for r, row := range s.rows {
			for col, v := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				_ = f.SetCellValue(s.name, cell, v)
			}
		}
		for col, width := range s.widths {
			_ = f.SetColWidth(s.name, col, col, width)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.WrapError(err, "xlsx write")
	}

	logger.Info("export.xlsx.ok",
		"contracts", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
