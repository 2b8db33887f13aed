package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
	"github.com/malhotra-vikas/earnings-press-service/internal/core/ports"
)

type GenerateReleaseUseCase struct {
	extractor ports.TextExtractor
	model     ports.ModelClient
	textCap   int
}

func NewGenerateReleaseUseCase(
	extractor ports.TextExtractor,
	model ports.ModelClient,
	textCap int,
) *GenerateReleaseUseCase {
	return &GenerateReleaseUseCase{
		extractor: extractor,
		model:     model,
		textCap:   textCap,
	}
}

// GenerateRelease writes a press release from a 10-Q filing, following the
// section template verbatim. The model output is passed through unchanged
// apart from trimming.
func (uc *GenerateReleaseUseCase) GenerateRelease(ctx context.Context, doc *domain.UploadedDocument, template domain.SectionTemplate) (string, error) {
	if err := template.Validate(); err != nil {
		return "", domain.WrapError(domain.ErrInvalidInput, "validate template", err)
	}

	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract text", err)
	}

	prompt := buildReleasePrompt(truncate(text, uc.textCap), template)
	release, err := uc.model.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	release = strings.TrimSpace(release)
	if release == "" {
		return "", domain.WrapError(domain.ErrModelInvocation, "generate release",
			fmt.Errorf("model returned empty text"))
	}
	return release, nil
}
