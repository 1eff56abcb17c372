package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar"
	"github.com/google/uuid"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/classify"
	"github.com/andrepreira/bid-pdf-document-processor/internal/common"
	"github.com/andrepreira/bid-pdf-document-processor/internal/extract"
	"github.com/andrepreira/bid-pdf-document-processor/internal/pdftext"
	"github.com/andrepreira/bid-pdf-document-processor/internal/statecache"
	"github.com/andrepreira/bid-pdf-document-processor/internal/validate"
)

// TextExtractor yields a PDF's text layer. Satisfied by *pdftext.Extractor;
// tests substitute stubs.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (pdftext.Result, error)
}

// FileResult is the full per-file outcome of one run: the extraction, its
// validation verdicts, and the fingerprint used for incremental skips.
type FileResult struct {
	Extraction   extract.Result         `json:"extraction"`
	Validation   []validate.Outcome     `json:"validation,omitempty"`
	SchemaErrors []string               `json:"schema_errors,omitempty"`
	Fingerprint  statecache.Fingerprint `json:"fingerprint"`
}

// Orchestrator walks a directory of bid documents and drives each file
// through text extraction, classification, field extraction and
// validation. Per-file errors are recorded on the result and never abort
// the run; only an unreadable source directory is fatal.
type Orchestrator struct {
	text   TextExtractor
	cache  *statecache.Store // nil disables incremental mode
	logger *slog.Logger
}

func NewOrchestrator(text TextExtractor, cache *statecache.Store, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{text: text, cache: cache, logger: logger}
}

// Discover lists the PDF files under sourceDir matching pattern, sorted
// for deterministic run order.
func (o *Orchestrator) Discover(sourceDir, pattern string) ([]string, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, common.WrapError(err, "reading source directory")
	}
	if !info.IsDir() {
		return nil, common.WrapError(common.ErrInvalidInput, fmt.Sprintf("%s is not a directory", sourceDir))
	}

	matches, err := doublestar.Glob(filepath.Join(sourceDir, pattern))
	if err != nil {
		return nil, common.WrapError(err, "matching source pattern")
	}

	var files []string
	for _, m := range matches {
		if !constants.AllowedExt(filepath.Ext(m)) {
			continue
		}
		if fi, err := os.Stat(m); err != nil || fi.IsDir() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

// ProcessDirectory runs the whole pipeline over sourceDir. When the
// orchestrator carries a state cache it is loaded before the first file
// and saved after the last one.
func (o *Orchestrator) ProcessDirectory(ctx context.Context, sourceDir, pattern string) ([]FileResult, Summary, error) {
	start := time.Now()
	runID := uuid.New().String()

	files, err := o.Discover(sourceDir, pattern)
	if err != nil {
		return nil, Summary{}, err
	}
	o.logger.Info("pipeline.start",
		"run_id", runID,
		"source_dir", sourceDir,
		"pattern", pattern,
		"files", len(files),
	)

	if o.cache != nil {
		if err := o.cache.Load(); err != nil {
			return nil, Summary{}, err
		}
	}

	results := make([]FileResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, Summary{}, err
		}
		res := o.ProcessFile(ctx, path)
		results = append(results, res)
		// Only successful outcomes are cached; partial and failed files
		// are read again on the next run.
		if o.cache != nil && res.Extraction.Status == constants.StatusSuccess {
			o.cache.Put(path, statecache.Entry{
				Fingerprint:     res.Fingerprint,
				DocumentType:    string(res.Extraction.DocumentType),
				Status:          string(res.Extraction.Status),
				ConfidenceScore: res.Extraction.Confidence,
			})
		}
	}

	if o.cache != nil {
		if err := o.cache.Save(); err != nil {
			o.logger.Error("pipeline.state_cache_save_failed", "error", err)
		}
	}

	summary := Summarize(runID, results, time.Since(start))
	o.logger.Info("pipeline.done",
		"run_id", runID,
		"total", summary.TotalFiles,
		"success", summary.ByStatus[string(constants.StatusSuccess)],
		"partial", summary.ByStatus[string(constants.StatusPartial)],
		"failed", summary.ByStatus[string(constants.StatusFailed)],
		"skipped", summary.ByStatus[string(constants.StatusSkipped)],
		"elapsed_ms", summary.Elapsed.Milliseconds(),
	)
	return results, summary, nil
}

// ProcessFile runs one file through the pipeline stages. Every branch
// returns a populated FileResult; nothing here panics or aborts the run.
func (o *Orchestrator) ProcessFile(ctx context.Context, path string) FileResult {
	start := time.Now()

	fp, err := statecache.FingerprintFile(path)
	if err != nil {
		o.logger.Error("pipeline.fingerprint_failed", "file", path, "error", err)
		return failedResult(path, fp, err, time.Since(start))
	}

	if o.cache != nil {
		if cached, ok := o.cache.Unchanged(path, fp); ok {
			o.logger.Info("pipeline.skip_unchanged", "file", path, "status", cached.Status)
			return FileResult{
				Extraction: extract.Result{
					FilePath:       path,
					DocumentType:   constants.DocumentType(cached.DocumentType),
					Status:         constants.StatusSkipped,
					Confidence:     cached.ConfidenceScore,
					ProcessingTime: time.Since(start),
				},
				Fingerprint: fp,
			}
		}
	}

	text, err := o.text.Extract(ctx, path)
	if err != nil {
		if errors.Is(err, common.ErrNoTextLayer) {
			o.logger.Warn("pipeline.no_text_layer", "file", path)
		} else {
			o.logger.Error("pipeline.text_extraction_failed", "file", path, "error", err)
		}
		res := failedResult(path, fp, err, time.Since(start))
		res.Extraction.DocumentType = classify.ByFilename(path)
		res.Extraction.Pages = text.Pages
		return res
	}

	docType := classify.Classify(path, text.FirstPage())
	ex, ok := extract.ForType(docType)
	if !ok {
		o.logger.Info("pipeline.skip_unclassified", "file", path)
		return FileResult{
			Extraction: extract.Result{
				FilePath:       path,
				DocumentType:   docType,
				Status:         constants.StatusSkipped,
				Error:          "no extractor for document type",
				Pages:          text.Pages,
				ProcessingTime: time.Since(start),
			},
			Fingerprint: fp,
		}
	}

	result := extract.Run(ex, extract.Document{Path: path, Text: text.Text}, o.logger)
	result.Pages = text.Pages
	result.ProcessingTime = time.Since(start)

	res := FileResult{Extraction: result, Fingerprint: fp}
	if result.Record != nil {
		if err := validate.ValidateSchema(result.Record); err != nil {
			res.SchemaErrors = append(res.SchemaErrors, err.Error())
		}
		res.Validation = validate.Validate(result.Record)
		if failed := validate.FailedRules(res.Validation); len(failed) > 0 {
			o.logger.Warn("pipeline.validation_failed", "file", path, "rules", failed)
		}
	}
	return res
}

func failedResult(path string, fp statecache.Fingerprint, err error, elapsed time.Duration) FileResult {
	return FileResult{
		Extraction: extract.Result{
			FilePath:       path,
			DocumentType:   constants.Unknown,
			Status:         constants.StatusFailed,
			Error:          err.Error(),
			Confidence:     0,
			ProcessingTime: elapsed,
		},
		Fingerprint: fp,
	}
}
