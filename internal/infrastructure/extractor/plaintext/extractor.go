package plaintext

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
	"github.com/malhotra-vikas/earnings-press-service/internal/infrastructure/extractor/rawbytes"
)

// Extractor handles uploads that are already text. The payload is used
// directly, with only whitespace normalization so downstream truncation
// behaves the same as for binary sources.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(_ context.Context, doc *domain.UploadedDocument) (string, error) {
	if !utf8.Valid(doc.Data) {
		return "", fmt.Errorf("not valid UTF-8 text: %s", doc.Filename)
	}
	return rawbytes.Normalize(string(doc.Data)), nil
}
