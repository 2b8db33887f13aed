package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

func sampleTemplate() domain.SectionTemplate {
	return domain.SectionTemplate{
		{Title: "Financial Highlights", Description: "Revenue, net income, EPS"},
		{Title: "Segment Results", Description: "Performance by business unit"},
		{Title: "Outlook", Description: "Guidance for the coming quarter"},
	}
}

func TestGenerateReleasePromptEnumeratesTemplate(t *testing.T) {
	model := &modelFake{textOut: "ACME REPORTS RECORD QUARTER\n..."}
	uc := NewGenerateReleaseUseCase(extractorFake{text: "net revenue was $12.3 million"}, model, 15000)

	out, err := uc.GenerateRelease(context.Background(), sampleDoc(), sampleTemplate())
	if err != nil {
		t.Fatalf("GenerateRelease() error = %v", err)
	}
	if out != "ACME REPORTS RECORD QUARTER\n..." {
		t.Fatalf("model output not passed through: %q", out)
	}

	want := []string{
		"1. Financial Highlights: Revenue, net income, EPS",
		"2. Segment Results: Performance by business unit",
		"3. Outlook: Guidance for the coming quarter",
	}
	lastIdx := -1
	for _, line := range want {
		idx := strings.Index(model.lastPrompt, line)
		if idx < 0 {
			t.Fatalf("prompt missing template line %q", line)
		}
		if idx < lastIdx {
			t.Fatalf("template line %q out of order", line)
		}
		lastIdx = idx
	}
	if !strings.Contains(model.lastPrompt, "net revenue was $12.3 million") {
		t.Fatalf("prompt missing filing text")
	}
}

func TestGenerateReleaseTruncatesToCap(t *testing.T) {
	text := strings.Repeat("q", 300)
	model := &modelFake{textOut: "release"}
	uc := NewGenerateReleaseUseCase(extractorFake{text: text}, model, 250)

	if _, err := uc.GenerateRelease(context.Background(), sampleDoc(), sampleTemplate()); err != nil {
		t.Fatalf("GenerateRelease() error = %v", err)
	}
	if strings.Contains(model.lastPrompt, strings.Repeat("q", 251)) {
		t.Fatalf("prompt contains text beyond the cap")
	}
	if !strings.Contains(model.lastPrompt, strings.Repeat("q", 250)) {
		t.Fatalf("prompt missing the cap-length prefix")
	}
}

func TestGenerateReleaseRejectsInvalidTemplate(t *testing.T) {
	model := &modelFake{textOut: "release"}
	uc := NewGenerateReleaseUseCase(extractorFake{text: "text"}, model, 15000)

	_, err := uc.GenerateRelease(context.Background(), sampleDoc(), domain.SectionTemplate{})
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if model.textCalls != 0 {
		t.Fatalf("model must not be called for an invalid template")
	}
}

func TestGenerateReleaseEmptyModelOutputFails(t *testing.T) {
	model := &modelFake{textOut: "   \n "}
	uc := NewGenerateReleaseUseCase(extractorFake{text: "text"}, model, 15000)

	_, err := uc.GenerateRelease(context.Background(), sampleDoc(), sampleTemplate())
	if !domain.IsKind(err, domain.ErrModelInvocation) {
		t.Fatalf("expected ErrModelInvocation, got %v", err)
	}
}
