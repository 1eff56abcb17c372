package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/common"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
	"github.com/andrepreira/bid-pdf-document-processor/internal/export"
	"github.com/andrepreira/bid-pdf-document-processor/internal/load"
	"github.com/andrepreira/bid-pdf-document-processor/internal/pdftext"
	"github.com/andrepreira/bid-pdf-document-processor/internal/pipeline"
	repo "github.com/andrepreira/bid-pdf-document-processor/internal/repository"
	"github.com/andrepreira/bid-pdf-document-processor/internal/statecache"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// report is the JSON artifact written by --output.
type report struct {
	Summary pipeline.Summary      `json:"summary"`
	Results []pipeline.FileResult `json:"results"`
}

func main() {
	var (
		pattern      = flag.String("pattern", "", "glob pattern for source files (default **/*.pdf)")
		output       = flag.String("output", "", "write the JSON report to this path instead of stdout")
		summaryOnly  = flag.Bool("summary-only", false, "omit per-file results from the JSON report")
		incremental  = flag.Bool("incremental", false, "skip files unchanged since the last run")
		stateFile    = flag.String("state-file", "", "state cache path for --incremental (default <source>/.bidpipeline.state.json)")
		loadPostgres = flag.Bool("load-postgres", false, "load extracted records into PostgreSQL")
		databaseURL  = flag.String("database-url", "", "PostgreSQL DSN (overrides DATABASE_URL)")
		inmem        = flag.Bool("inmem", false, "use in-memory SQLite instead of PostgreSQL")
		exportCSV    = flag.String("export-csv", "", "directory to write contracts/bidders/bid_items CSV files")
		exportXLSX   = flag.String("export-xlsx", "", "path to write an XLSX workbook")
		configPath   = flag.String("config", "", "YAML config file path")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		printError("Usage: bidpipeline [flags] SOURCE_DIR\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	sourceDir := flag.Arg(0)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *configPath != "" {
		if err := common.LoadConfigFile(cfg, *configPath); err != nil {
			logger.Error("failed to load config file", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if *pattern != "" {
		cfg.Pipeline.Pattern = *pattern
	}
	if *stateFile != "" {
		cfg.Pipeline.StateFile = *stateFile
	}
	if *databaseURL != "" {
		cfg.Database.DSN = *databaseURL
	}
	if *exportCSV != "" {
		cfg.Export.CSVDir = *exportCSV
	}
	if *exportXLSX != "" {
		cfg.Export.XLSXPath = *exportXLSX
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cache *statecache.Store
	if *incremental {
		path := cfg.Pipeline.StateFile
		if path == "" {
			path = filepath.Join(sourceDir, ".bidpipeline.state.json")
		}
		cache = statecache.NewStore(path)
	}

	text := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.Pipeline.Pdftotext,
		MaxPages:  cfg.Pipeline.MaxPages,
	}, logger)

	orch := pipeline.NewOrchestrator(text, cache, logger)
	results, summary, err := orch.ProcessDirectory(ctx, sourceDir, cfg.Pipeline.Pattern)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	if *loadPostgres || *inmem {
		if err := loadResults(ctx, cfg, *inmem, summary.RunID, results, logger); err != nil {
			logger.Error("load failed", "error", err)
			os.Exit(1)
		}
	}

	records := collectRecords(results)
	if cfg.Export.CSVDir != "" {
		if _, err := export.WriteCSV(cfg.Export.CSVDir, records, logger); err != nil {
			logger.Error("csv export failed", "error", err)
			os.Exit(1)
		}
	}
	if cfg.Export.XLSXPath != "" {
		data, err := export.WriteXLSX(records, logger)
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(cfg.Export.XLSXPath, data, 0o644); err != nil {
			logger.Error("xlsx write failed", "path", cfg.Export.XLSXPath, "error", err)
			os.Exit(1)
		}
	}

	if err := writeReport(*output, *summaryOnly, summary, results); err != nil {
		logger.Error("report write failed", "error", err)
		os.Exit(1)
	}

	printSummary(summary)
}

func loadResults(ctx context.Context, cfg *common.Config, inmem bool, runID string, results []pipeline.FileResult, logger *slog.Logger) error {
	var (
		loader *load.Loader
		closer func()
	)
	if inmem {
		client, err := repo.OpenSQLite("", logger)
		if err != nil {
			return err
		}
		if err := client.Schema.Create(ctx); err != nil {
			return err
		}
		loader = load.NewLoader(
			repo.NewContractRepository(client, logger),
			repo.NewExtractionLogRepository(client, logger),
			logger,
		)
		closer = func() { _ = client.Close() }
	} else {
		if err := cfg.Validate(); err != nil {
			return err
		}
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			return err
		}
		if err := client.Schema.Create(ctx); err != nil {
			repo.Close(client, pool, logger)
			return err
		}
		loader = load.NewLoader(
			repo.NewContractRepository(client, logger),
			repo.NewExtractionLogRepository(client, logger),
			logger,
		)
		closer = func() { repo.Close(client, pool, logger) }
	}
	defer closer()

	loader.LoadBatch(ctx, runID, results)
	return nil
}

func collectRecords(results []pipeline.FileResult) []*entity.Record {
	var records []*entity.Record
	for _, r := range results {
		rec := r.Extraction.Record
		if rec != nil && rec.Contract.ContractNumber != "" {
			records = append(records, rec)
		}
	}
	return records
}

func writeReport(path string, summaryOnly bool, summary pipeline.Summary, results []pipeline.FileResult) error {
	rep := report{Summary: summary}
	if !summaryOnly {
		rep.Results = results
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err = fmt.Println(string(data))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printSummary(s pipeline.Summary) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(os.Stderr, "\nProcessed %d files (run %s)\n", s.TotalFiles, shortRunID(s.RunID))

	line := func(c *color.Color, label string, status constants.ExtractionStatus) {
		if n := s.ByStatus[string(status)]; n > 0 {
			_, _ = c.Fprintf(os.Stderr, "  %-8s %d\n", label, n)
		}
	}
	line(color.New(color.FgGreen), "success", constants.StatusSuccess)
	line(color.New(color.FgYellow), "partial", constants.StatusPartial)
	line(color.New(color.FgRed), "failed", constants.StatusFailed)
	line(color.New(color.FgCyan), "skipped", constants.StatusSkipped)

	_, _ = fmt.Fprintf(os.Stderr, "  avg confidence %.2f, validation pass rate %.2f, %.1f files/s\n",
		s.AvgConfidence, s.AvgValidationRate, s.FilesPerSecond)
}

func shortRunID(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()[:8]
	}
	return id
}
