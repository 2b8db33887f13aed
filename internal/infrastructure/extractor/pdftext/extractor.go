package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
	"github.com/malhotra-vikas/earnings-press-service/internal/infrastructure/extractor/rawbytes"
)

// Extractor parses PDF content streams with ledongthuc/pdf. When the parser
// cannot make sense of the file it falls back to the rawbytes printable-ASCII
// scrape, so a malformed or exotic PDF still yields whatever text it carries
// in the clear.
type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

func (e *Extractor) Extract(_ context.Context, doc *domain.UploadedDocument) (string, error) {
	text, err := parsePlainText(doc.Data)
	if err == nil && text != "" {
		return text, nil
	}
	if err != nil {
		e.logger.Warn("pdftext.parse_failed",
			"filename", doc.Filename,
			"size", len(doc.Data),
			"error", err,
		)
	}
	return rawbytes.Scrape(doc.Data), nil
}

func parsePlainText(data []byte) (text string, err error) {
	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("drain pdf text: %w", err)
	}
	return rawbytes.Normalize(buf.String()), nil
}
