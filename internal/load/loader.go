package load

import (
	"context"
	"log/slog"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/pipeline"
	"github.com/andrepreira/bid-pdf-document-processor/internal/repository"
)

// Result counts what one load pass did.
type Result struct {
	RecordsLoaded int
	LogsAppended  int
	Errors        int
}

// Loader writes pipeline results to the database. Each record is its own
// unit of work; one bad record never blocks the rest, and every file gets
// an extraction_logs row whatever its status.
type Loader struct {
	contracts repository.ContractRepository
	logs      repository.ExtractionLogRepository
	logger    *slog.Logger
}

func NewLoader(contracts repository.ContractRepository, logs repository.ExtractionLogRepository, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{contracts: contracts, logs: logs, logger: logger}
}

// LoadBatch persists a run's results. Records are loaded only for success
// and partial extractions with a usable contract number; audit rows are
// appended unconditionally.
func (l *Loader) LoadBatch(ctx context.Context, runID string, results []pipeline.FileResult) Result {
	var out Result
	for _, r := range results {
		if err := ctx.Err(); err != nil {
			l.logger.Warn("load.cancelled", "loaded", out.RecordsLoaded)
			return out
		}

		if loadable(r) {
			id, err := l.contracts.UpsertRecord(ctx, r.Extraction.Record)
			if err != nil {
				out.Errors++
				l.logger.Error("load.record_failed",
					"file", r.Extraction.FilePath,
					"contract_number", r.Extraction.Record.Contract.ContractNumber,
					"error", err,
				)
			} else {
				out.RecordsLoaded++
				l.logger.Info("load.record_done",
					"file", r.Extraction.FilePath,
					"contract_id", id,
				)
			}
		}

		if _, err := l.logs.Append(ctx, r.Log(runID)); err != nil {
			out.Errors++
			l.logger.Error("load.log_failed", "file", r.Extraction.FilePath, "error", err)
		} else {
			out.LogsAppended++
		}
	}
	l.logger.Info("load.done",
		"run_id", runID,
		"records", out.RecordsLoaded,
		"logs", out.LogsAppended,
		"errors", out.Errors,
	)
	return out
}

func loadable(r pipeline.FileResult) bool {
	switch r.Extraction.Status {
	case constants.StatusSuccess, constants.StatusPartial:
	default:
		return false
	}
	return r.Extraction.Record != nil && r.Extraction.Record.Contract.ContractNumber != ""
}
