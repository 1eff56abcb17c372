package statecache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFingerprintFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(path, []byte("some pdf bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	fp1, err := FingerprintFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if fp1.FileHash == "" || len(fp1.FileHash) != 64 {
		t.Errorf("hash = %q, want 64 hex chars", fp1.FileHash)
	}
	if fp1.FileSizeBytes != int64(len("some pdf bytes")) {
		t.Errorf("size = %d", fp1.FileSizeBytes)
	}

	// Unchanged file, identical fingerprint.
	fp2, err := FingerprintFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if fp1 != fp2 {
		t.Errorf("fingerprints differ for unchanged file: %+v vs %+v", fp1, fp2)
	}

	// Changed content, different fingerprint.
	if err := os.WriteFile(path, []byte("different bytes entirely"), 0o644); err != nil {
		t.Fatal(err)
	}
	fp3, err := FingerprintFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if fp1.FileHash == fp3.FileHash {
		t.Error("hash unchanged after rewrite")
	}

	if _, err := FingerprintFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := NewStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("loading a missing cache: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("fresh store has %d entries", s.Len())
	}

	entry := Entry{
		Fingerprint: Fingerprint{
			FileHash:      "abc123",
			FileSizeBytes: 42,
			FileModTime:   time.Now().Unix(),
		},
		DocumentType:    "bid_tabs",
		Status:          "success",
		ConfidenceScore: 1,
	}
	s.Put("/data/doc.pdf", entry)
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded := NewStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	got, ok := reloaded.Lookup("/data/doc.pdf")
	if !ok {
		t.Fatal("entry missing after reload")
	}
	if got != entry {
		t.Errorf("entry = %+v, want %+v", got, entry)
	}
}

func TestStoreUnchanged(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "state.json"))
	fp := Fingerprint{FileHash: "abc", FileSizeBytes: 10, FileModTime: 1700000000}
	s.Put("/data/doc.pdf", Entry{Fingerprint: fp, Status: "success"})

	if _, ok := s.Unchanged("/data/doc.pdf", fp); !ok {
		t.Error("matching fingerprint reported as changed")
	}

	touched := fp
	touched.FileModTime++
	if _, ok := s.Unchanged("/data/doc.pdf", touched); ok {
		t.Error("different mtime reported as unchanged")
	}

	if _, ok := s.Unchanged("/data/other.pdf", fp); ok {
		t.Error("unknown path reported as unchanged")
	}
}

func TestStoreLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewStore(path).Load(); err == nil {
		t.Error("expected a parse error")
	}
}
