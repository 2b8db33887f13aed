package ports

import (
	"context"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

// TemplateExtractor is the inbound contract for deriving a section template
// from a sample earnings press release.
type TemplateExtractor interface {
	ExtractTemplate(ctx context.Context, doc *domain.UploadedDocument) (domain.SectionTemplate, error)
}

// ReleaseGenerator is the inbound contract for producing a press release
// from a 10-Q filing and a previously extracted section template.
type ReleaseGenerator interface {
	GenerateRelease(ctx context.Context, doc *domain.UploadedDocument, template domain.SectionTemplate) (string, error)
}
