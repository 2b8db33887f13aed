package extractor

import (
	"context"
	"strings"
	"testing"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

func TestSelectorUsesPlainTextForTextUploads(t *testing.T) {
	sel := NewSelector(nil)
	doc := &domain.UploadedDocument{
		Filename:  "10q.txt",
		MediaType: "text/plain; charset=utf-8",
		Data:      []byte("Revenue €12,3 Mio.\nup 8%"),
	}

	out, err := sel.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	// A text upload keeps its non-ASCII characters; only whitespace is normalized.
	if !strings.Contains(out, "€12,3") {
		t.Fatalf("plain text path lost unicode: %q", out)
	}
}

func TestSelectorScrapesUnknownBinary(t *testing.T) {
	sel := NewSelector(nil)
	doc := &domain.UploadedDocument{
		Filename:  "blob.bin",
		MediaType: "application/octet-stream",
		Data:      []byte("\x00\x01cleartext run\xfe\xff"),
	}

	out, err := sel.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if out != "cleartext run" {
		t.Fatalf("Extract() = %q", out)
	}
}

func TestSelectorRoutesPDFByFilename(t *testing.T) {
	sel := NewSelector(nil)
	doc := &domain.UploadedDocument{
		Filename:  "release.PDF",
		MediaType: "application/octet-stream",
		Data:      []byte("%PDF-1.4 not really parsable \x00 Outlook section"),
	}

	out, err := sel.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	// Broken PDF bytes still surface their cleartext via the fallback scrape.
	if !strings.Contains(out, "Outlook section") {
		t.Fatalf("pdf path lost cleartext: %q", out)
	}
}
