// Package rawbytes recovers text from opaque binaries by keeping printable
// ASCII runs. It has no structural awareness of the input format; it only
// works when the binary happens to carry text in the clear. Real format
// parsers should be preferred where available.
package rawbytes

import (
	"context"
	"strings"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(_ context.Context, doc *domain.UploadedDocument) (string, error) {
	return Scrape(doc.Data), nil
}

// Scrape keeps printable ASCII (32-126), turns CR/LF into spaces, drops every
// other byte, then collapses whitespace runs and trims. The collapse step is
// idempotent: scraping its own output returns the same string.
func Scrape(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		switch {
		case c >= 32 && c <= 126:
			b.WriteByte(c)
		case c == '\r' || c == '\n':
			b.WriteByte(' ')
		}
	}
	return Normalize(b.String())
}

// Normalize collapses every whitespace run to a single space and trims the
// ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
