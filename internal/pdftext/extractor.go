package pdftext

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/andrepreira/bid-pdf-document-processor/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	MaxPages  int    // 0 = no limit
}

// Result is the raw text layer of one PDF.
type Result struct {
	Text     string
	Pages    int
	Duration time.Duration
	Warnings []string
}

// FirstPage returns the text of the first page (form-feed delimited).
func (r Result) FirstPage() string {
	if i := strings.IndexByte(r.Text, '\f'); i >= 0 {
		return r.Text[:i]
	}
	return r.Text
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewExtractorWithRunner is for tests that stub the external binary.
func NewExtractorWithRunner(cfg Config, r Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = r
	return e
}

// Extract runs pdftotext with layout preserved so that tabular documents
// keep their column positions. Returns common.ErrNoTextLayer when the PDF
// yields no text at all (image-only or corrupt).
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	args := []string{"-layout", "-enc", "UTF-8", "-eol", "unix"}
	if e.cfg.MaxPages > 0 {
		args = append(args, "-l", strconv.Itoa(e.cfg.MaxPages))
	}
	args = append(args, path, "-")

	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, args...)
	if err != nil {
		return Result{
			Duration: time.Since(start),
			Warnings: []string{string(errb)},
		}, common.WrapError(err, "pdftotext")
	}

	text := string(out)
	res := Result{
		Text: text,
		// Pages are form-feed delimited, with a trailing \f after the last.
		Pages:    1 + strings.Count(strings.TrimRight(text, "\f"), "\f"),
		Duration: time.Since(start),
	}
	if len(errb) > 0 {
		res.Warnings = []string{string(errb)}
	}
	if strings.TrimSpace(text) == "" {
		res.Pages = 0
		return res, common.ErrNoTextLayer
	}
	return res, nil
}
