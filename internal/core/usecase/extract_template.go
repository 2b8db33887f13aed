package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
	"github.com/malhotra-vikas/earnings-press-service/internal/core/ports"
)

type ExtractTemplateUseCase struct {
	extractor ports.TextExtractor
	model     ports.ModelClient
	textCap   int
	minChars  int
}

func NewExtractTemplateUseCase(
	extractor ports.TextExtractor,
	model ports.ModelClient,
	textCap int,
	minChars int,
) *ExtractTemplateUseCase {
	return &ExtractTemplateUseCase{
		extractor: extractor,
		model:     model,
		textCap:   textCap,
		minChars:  minChars,
	}
}

// ExtractTemplate derives an ordered section template from a sample earnings
// press release. The minimum-length gate runs before any model call so that
// unreadable uploads fail fast as input errors.
func (uc *ExtractTemplateUseCase) ExtractTemplate(ctx context.Context, doc *domain.UploadedDocument) (domain.SectionTemplate, error) {
	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, domain.WrapError(domain.ErrExtraction, "extract text", err)
	}
	if len(text) < uc.minChars {
		return nil, domain.WrapError(domain.ErrExtraction, "extract text",
			fmt.Errorf("extracted %d chars, need at least %d", len(text), uc.minChars))
	}

	prompt := buildTemplatePrompt(truncate(text, uc.textCap))
	raw, err := uc.model.GenerateStructured(ctx, prompt, domain.SectionTemplateJSONSchema())
	if err != nil {
		return nil, err
	}

	var payload struct {
		Sections domain.SectionTemplate `json:"sections"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, domain.WrapError(domain.ErrSchemaValidation, "decode sections", err)
	}
	if err := payload.Sections.Validate(); err != nil {
		return nil, domain.WrapError(domain.ErrSchemaValidation, "validate sections", err)
	}
	return payload.Sections, nil
}
