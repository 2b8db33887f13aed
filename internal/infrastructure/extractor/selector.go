// Package extractor routes uploads to the text-extraction variant matching
// their format.
package extractor

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
	"github.com/malhotra-vikas/earnings-press-service/internal/core/ports"
	"github.com/malhotra-vikas/earnings-press-service/internal/infrastructure/extractor/pdftext"
	"github.com/malhotra-vikas/earnings-press-service/internal/infrastructure/extractor/plaintext"
	"github.com/malhotra-vikas/earnings-press-service/internal/infrastructure/extractor/rawbytes"
)

type Selector struct {
	pdf      ports.TextExtractor
	plain    ports.TextExtractor
	fallback ports.TextExtractor
}

func NewSelector(logger *slog.Logger) *Selector {
	return &Selector{
		pdf:      pdftext.New(logger),
		plain:    plaintext.New(),
		fallback: rawbytes.New(),
	}
}

// Extract dispatches on the declared media type, falling back to content
// sniffing when the client declared nothing useful.
func (s *Selector) Extract(ctx context.Context, doc *domain.UploadedDocument) (string, error) {
	switch {
	case doc.IsPDF():
		return s.pdf.Extract(ctx, doc)
	case doc.IsPlainText():
		return s.plain.Extract(ctx, doc)
	case utf8.Valid(doc.Data):
		return s.plain.Extract(ctx, doc)
	default:
		return s.fallback.Extract(ctx, doc)
	}
}
