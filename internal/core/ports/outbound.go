package ports

import (
	"context"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.UploadedDocument) (string, error)
}

// ModelClient is the single capability boundary to the language-model
// provider: structured output constrained by a JSON schema, or free text.
type ModelClient interface {
	GenerateStructured(ctx context.Context, prompt string, schema map[string]any) ([]byte, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}
