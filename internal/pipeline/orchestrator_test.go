package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrepreira/bid-pdf-document-processor/constants"
	"github.com/andrepreira/bid-pdf-document-processor/internal/common"
	"github.com/andrepreira/bid-pdf-document-processor/internal/pdftext"
	"github.com/andrepreira/bid-pdf-document-processor/internal/statecache"
)

const bidTabText = `CONTRACT: DA00234
0001   4400000000-E   1.000   GRADING   LUMP SUM   95,000.00   95,000.00

RILEY PAVING INC  SUPPLY, NC
CONTRACT TOTAL  95,000.00
`

// stubText serves canned text layers keyed by base filename. An empty
// entry means no text layer.
type stubText struct {
	texts map[string]string
	calls int
}

func (s *stubText) Extract(_ context.Context, path string) (pdftext.Result, error) {
	s.calls++
	text, ok := s.texts[filepath.Base(path)]
	if !ok || text == "" {
		return pdftext.Result{}, common.ErrNoTextLayer
	}
	return pdftext.Result{Text: text, Pages: 1}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFiles(t *testing.T, dir string, names map[string]string) {
	t.Helper()
	for name, content := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"DA00234 Bid Tab.pdf": "pdf bytes",
		"scan.pdf":            "", // zero-byte upload
		"random.pdf":          "pdf bytes",
		"notes.txt":           "not a pdf",
	})

	stub := &stubText{texts: map[string]string{
		"DA00234 Bid Tab.pdf": bidTabText,
		"random.pdf":          "quarterly maintenance schedule",
	}}

	orch := NewOrchestrator(stub, nil, discardLogger())
	results, summary, err := orch.ProcessDirectory(context.Background(), dir, "**/*.pdf")
	if err != nil {
		t.Fatal(err)
	}

	if summary.TotalFiles != 3 {
		t.Fatalf("total = %d, want 3 (txt excluded)", summary.TotalFiles)
	}

	byName := map[string]FileResult{}
	for _, r := range results {
		byName[filepath.Base(r.Extraction.FilePath)] = r
	}

	tab := byName["DA00234 Bid Tab.pdf"]
	if tab.Extraction.DocumentType != constants.BidTabs {
		t.Errorf("bid tab type = %q", tab.Extraction.DocumentType)
	}
	if tab.Extraction.Status != constants.StatusSuccess {
		t.Errorf("bid tab status = %q, want success", tab.Extraction.Status)
	}
	if tab.Extraction.Record == nil || tab.Extraction.Record.Contract.ContractNumber != "DA00234" {
		t.Error("bid tab record missing contract number")
	}
	if len(tab.Validation) == 0 {
		t.Error("bid tab has no validation outcomes")
	}
	if tab.Fingerprint.FileHash == "" {
		t.Error("bid tab fingerprint missing")
	}

	// A zero-byte or image-only file fails with zero confidence but never
	// aborts the run.
	scan := byName["scan.pdf"]
	if scan.Extraction.Status != constants.StatusFailed {
		t.Errorf("scan status = %q, want failed", scan.Extraction.Status)
	}
	if scan.Extraction.Confidence != 0 {
		t.Errorf("scan confidence = %v, want 0", scan.Extraction.Confidence)
	}
	if scan.Extraction.Error == "" {
		t.Error("scan error message missing")
	}

	unknown := byName["random.pdf"]
	if unknown.Extraction.Status != constants.StatusSkipped {
		t.Errorf("random status = %q, want skipped", unknown.Extraction.Status)
	}
	if unknown.Extraction.DocumentType != constants.Unknown {
		t.Errorf("random type = %q, want unknown", unknown.Extraction.DocumentType)
	}

	if summary.ByStatus[string(constants.StatusSuccess)] != 1 ||
		summary.ByStatus[string(constants.StatusFailed)] != 1 ||
		summary.ByStatus[string(constants.StatusSkipped)] != 1 {
		t.Errorf("status counts = %v", summary.ByStatus)
	}
	if summary.RunID == "" {
		t.Error("run id missing")
	}
	if summary.RecordsExtracted != 1 {
		t.Errorf("records extracted = %d, want 1", summary.RecordsExtracted)
	}
}

func TestProcessDirectoryMissingSource(t *testing.T) {
	orch := NewOrchestrator(&stubText{}, nil, discardLogger())
	if _, _, err := orch.ProcessDirectory(context.Background(), "/does/not/exist", "**/*.pdf"); err == nil {
		t.Fatal("expected an error for a missing source directory")
	}
}

func TestProcessDirectoryIncremental(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"DA00234 Bid Tab.pdf": "pdf bytes",
	})
	statePath := filepath.Join(t.TempDir(), "state.json")

	stub := &stubText{texts: map[string]string{"DA00234 Bid Tab.pdf": bidTabText}}

	first := NewOrchestrator(stub, statecache.NewStore(statePath), discardLogger())
	_, summary, err := first.ProcessDirectory(context.Background(), dir, "**/*.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if summary.ByStatus[string(constants.StatusSuccess)] != 1 {
		t.Fatalf("first run: %v", summary.ByStatus)
	}
	if stub.calls != 1 {
		t.Fatalf("first run made %d text extractions, want 1", stub.calls)
	}

	// Second run over unchanged files reads no text at all.
	second := NewOrchestrator(stub, statecache.NewStore(statePath), discardLogger())
	results, summary, err := second.ProcessDirectory(context.Background(), dir, "**/*.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if summary.ByStatus[string(constants.StatusSkipped)] != 1 {
		t.Fatalf("second run: %v", summary.ByStatus)
	}
	if stub.calls != 1 {
		t.Errorf("second run re-extracted text (%d calls)", stub.calls)
	}
	// The cached outcome keeps its confidence and document type.
	r := results[0]
	if r.Extraction.DocumentType != constants.BidTabs {
		t.Errorf("cached type = %q, want bid_tabs", r.Extraction.DocumentType)
	}
	if r.Extraction.Confidence != 1 {
		t.Errorf("cached confidence = %v, want 1", r.Extraction.Confidence)
	}

	// A modified file is re-processed.
	if err := os.WriteFile(filepath.Join(dir, "DA00234 Bid Tab.pdf"), []byte("new pdf bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	third := NewOrchestrator(stub, statecache.NewStore(statePath), discardLogger())
	_, summary, err = third.ProcessDirectory(context.Background(), dir, "**/*.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if summary.ByStatus[string(constants.StatusSuccess)] != 1 {
		t.Errorf("third run: %v", summary.ByStatus)
	}
	if stub.calls != 2 {
		t.Errorf("third run: %d text extractions, want 2", stub.calls)
	}
}

// Only successful outcomes are cached, so failed files are retried on the
// next run instead of being skipped forever.
func TestProcessDirectoryRetriesFailed(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"DA00234 Bid Tab.pdf": "pdf bytes",
		"scan.pdf":            "",
	})
	statePath := filepath.Join(t.TempDir(), "state.json")
	stub := &stubText{texts: map[string]string{"DA00234 Bid Tab.pdf": bidTabText}}

	first := NewOrchestrator(stub, statecache.NewStore(statePath), discardLogger())
	if _, _, err := first.ProcessDirectory(context.Background(), dir, "**/*.pdf"); err != nil {
		t.Fatal(err)
	}
	if stub.calls != 2 {
		t.Fatalf("first run made %d text extractions, want 2", stub.calls)
	}

	second := NewOrchestrator(stub, statecache.NewStore(statePath), discardLogger())
	_, summary, err := second.ProcessDirectory(context.Background(), dir, "**/*.pdf")
	if err != nil {
		t.Fatal(err)
	}
	// The successful bid tab is skipped; the failed scan is read again.
	if stub.calls != 3 {
		t.Errorf("second run: %d total text extractions, want 3", stub.calls)
	}
	if summary.ByStatus[string(constants.StatusSkipped)] != 1 ||
		summary.ByStatus[string(constants.StatusFailed)] != 1 {
		t.Errorf("second run statuses = %v", summary.ByStatus)
	}
}

func TestFileResultLog(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"DA00234 Bid Tab.pdf": "pdf bytes"})
	stub := &stubText{texts: map[string]string{"DA00234 Bid Tab.pdf": bidTabText}}

	orch := NewOrchestrator(stub, nil, discardLogger())
	results, summary, err := orch.ProcessDirectory(context.Background(), dir, "**/*.pdf")
	if err != nil {
		t.Fatal(err)
	}

	row := results[0].Log(summary.RunID)
	if row.FilePath != results[0].Extraction.FilePath {
		t.Errorf("log path = %q", row.FilePath)
	}
	if row.Status != string(constants.StatusSuccess) {
		t.Errorf("log status = %q", row.Status)
	}
	if row.RecordsExtracted != 1 {
		t.Errorf("log records = %d, want 1", row.RecordsExtracted)
	}
	if row.FileHash == "" || row.FileSizeBytes == 0 {
		t.Error("log fingerprint fields missing")
	}
	if row.RunID != summary.RunID {
		t.Errorf("log run id = %q, want %q", row.RunID, summary.RunID)
	}
}
