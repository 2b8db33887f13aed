package plaintext

import (
	"context"
	"testing"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

func TestExtractNormalizesWhitespace(t *testing.T) {
	doc := &domain.UploadedDocument{
		Filename:  "filing.txt",
		MediaType: "text/plain",
		Data:      []byte("  Net revenue\n\nwas\t$12.3 million.  "),
	}

	out, err := New().Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if out != "Net revenue was $12.3 million." {
		t.Fatalf("Extract() = %q", out)
	}
}

func TestExtractKeepsUnicode(t *testing.T) {
	doc := &domain.UploadedDocument{Filename: "filing.txt", Data: []byte("revenue €12,3 Mio.")}

	out, err := New().Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if out != "revenue €12,3 Mio." {
		t.Fatalf("Extract() = %q", out)
	}
}

func TestExtractRejectsInvalidUTF8(t *testing.T) {
	doc := &domain.UploadedDocument{Filename: "filing.txt", Data: []byte{0xff, 0xfe, 0x00}}

	if _, err := New().Extract(context.Background(), doc); err == nil {
		t.Fatalf("expected error for invalid UTF-8")
	}
}
