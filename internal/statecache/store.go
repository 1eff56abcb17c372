package statecache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/andrepreira/bid-pdf-document-processor/internal/common"
)

// Fingerprint identifies one version of a file on disk. Two fingerprints
// are equal exactly when hash, size and mtime all match.
type Fingerprint struct {
	FileHash      string `json:"file_hash"`
	FileSizeBytes int64  `json:"file_size_bytes"`
	FileModTime   int64  `json:"file_mtime_unix"`
}

// Entry is the cached outcome of a previous run for one file, enough to
// report the file as skipped without re-reading the PDF.
type Entry struct {
	Fingerprint
	DocumentType    string  `json:"document_type"`
	Status          string  `json:"status"`
	ConfidenceScore float32 `json:"confidence_score"`
}

// Store is a single-run state cache backed by one JSON file keyed by file
// path. Load it once at the start of a run and Save it once at the end;
// it is not safe for concurrent use.
type Store struct {
	path    string
	entries map[string]Entry
}

func NewStore(path string) *Store {
	return &Store{path: path, entries: map[string]Entry{}}
}

// Load reads the cache file. A missing file is not an error, the store
// just starts empty.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return common.WrapError(err, "reading state cache")
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return common.WrapError(err, "parsing state cache")
	}
	if s.entries == nil {
		s.entries = map[string]Entry{}
	}
	return nil
}

// Save writes the cache atomically via a temp file in the same directory.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return common.WrapError(err, "encoding state cache")
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return common.WrapError(err, "creating state cache dir")
	}
	tmp, err := os.CreateTemp(dir, ".statecache-*")
	if err != nil {
		return common.WrapError(err, "creating state cache temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return common.WrapError(err, "writing state cache")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return common.WrapError(err, "closing state cache temp file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return common.WrapError(err, "replacing state cache")
	}
	return nil
}

// Lookup returns the cached entry for a path, if any.
func (s *Store) Lookup(path string) (Entry, bool) {
	e, ok := s.entries[path]
	return e, ok
}

// Unchanged reports whether the cache holds an entry for path whose
// fingerprint matches fp, returning that entry when it does.
func (s *Store) Unchanged(path string, fp Fingerprint) (Entry, bool) {
	e, ok := s.entries[path]
	if !ok || e.Fingerprint != fp {
		return Entry{}, false
	}
	return e, true
}

// Put records the outcome for a path, overwriting any previous entry.
func (s *Store) Put(path string, e Entry) {
	s.entries[path] = e
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// FingerprintFile hashes a file's content with SHA-256 and captures its
// size and modification time.
func FingerprintFile(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, common.WrapError(err, "opening file for fingerprint")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return Fingerprint{}, common.WrapError(err, "hashing file")
	}
	info, err := f.Stat()
	if err != nil {
		return Fingerprint{}, common.WrapError(err, "stat file")
	}
	return Fingerprint{
		FileHash:      hex.EncodeToString(h.Sum(nil)),
		FileSizeBytes: info.Size(),
		FileModTime:   info.ModTime().Unix(),
	}, nil
}
