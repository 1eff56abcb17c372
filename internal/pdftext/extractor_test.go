package pdftext

import (
	"context"
	"errors"
	"testing"

	"github.com/andrepreira/bid-pdf-document-processor/internal/common"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func TestExtract(t *testing.T) {
	stub := &stubRunner{stdout: []byte("page one text\fpage two text")}
	ex := NewExtractorWithRunner(Config{}, stub, nil)

	res, err := ex.Extract(context.Background(), "/data/doc.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
	if res.FirstPage() != "page one text" {
		t.Errorf("first page = %q", res.FirstPage())
	}
	if stub.gotName != "pdftotext" {
		t.Errorf("binary = %q, want pdftotext", stub.gotName)
	}

	// -layout must be passed so tabular documents keep column positions.
	found := false
	for _, a := range stub.gotArgs {
		if a == "-layout" {
			found = true
		}
	}
	if !found {
		t.Errorf("args %v missing -layout", stub.gotArgs)
	}
	if last := stub.gotArgs[len(stub.gotArgs)-1]; last != "-" {
		t.Errorf("last arg = %q, want stdout marker", last)
	}
}

func TestExtractMaxPages(t *testing.T) {
	stub := &stubRunner{stdout: []byte("text")}
	ex := NewExtractorWithRunner(Config{MaxPages: 3}, stub, nil)

	if _, err := ex.Extract(context.Background(), "/data/doc.pdf"); err != nil {
		t.Fatal(err)
	}
	for i, a := range stub.gotArgs {
		if a == "-l" {
			if i+1 >= len(stub.gotArgs) || stub.gotArgs[i+1] != "3" {
				t.Errorf("args %v: -l not followed by 3", stub.gotArgs)
			}
			return
		}
	}
	t.Errorf("args %v missing -l", stub.gotArgs)
}

func TestExtractNoTextLayer(t *testing.T) {
	stub := &stubRunner{stdout: []byte("  \n\f  \n")}
	ex := NewExtractorWithRunner(Config{}, stub, nil)

	res, err := ex.Extract(context.Background(), "/data/scan.pdf")
	if !errors.Is(err, common.ErrNoTextLayer) {
		t.Fatalf("err = %v, want ErrNoTextLayer", err)
	}
	if res.Pages != 0 {
		t.Errorf("pages = %d, want 0", res.Pages)
	}
}

func TestExtractCommandFailure(t *testing.T) {
	stub := &stubRunner{err: errors.New("exit status 1"), stderr: []byte("Syntax Error: broken xref")}
	ex := NewExtractorWithRunner(Config{}, stub, nil)

	res, err := ex.Extract(context.Background(), "/data/corrupt.pdf")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, common.ErrNoTextLayer) {
		t.Error("command failure must not masquerade as a missing text layer")
	}
	if len(res.Warnings) == 0 {
		t.Error("stderr not surfaced in warnings")
	}
}
