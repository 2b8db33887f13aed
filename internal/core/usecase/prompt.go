package usecase

import (
	"fmt"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

func truncate(text string, limit int) string {
	if limit > 0 && len(text) > limit {
		return text[:limit]
	}
	return text
}

func buildTemplatePrompt(text string) string {
	return `You are a financial analyst parsing earnings reports.
Below is text extracted from a company earnings press release PDF. The extraction
is lossy, so the text may be noisy or partially garbled.

Identify the standard section headings of the release (for example "Financial
Highlights", "Business Highlights", "Outlook") and for each section write a
1-2 sentence description of what it typically covers.

If the text is too unclear or corrupted to identify real headings, fall back to
the sections a standard earnings press release would use instead of failing.

Return a JSON object with a single key "sections" holding an ordered array of
objects with exactly two string keys: "title" and "description". Keep the
sections in the order they appear in the release. No markdown, no extra keys.

=== START ===
` + text + `
=== END ===`
}

func buildReleasePrompt(text string, template domain.SectionTemplate) string {
	return fmt.Sprintf(`You are a financial communications writer. Using the 10-Q filing text below,
write a complete earnings press release.

Structure the release with these sections, in this exact order:
%s
Requirements:
- Start with a headline and a one-sentence subheadline.
- Write one body section per template entry, following the template order.
- Use concrete financial figures taken from the filing text. Do not invent numbers.
- Close with standard forward-looking statements boilerplate.
- Output plain text only, no markdown.

=== 10-Q FILING TEXT ===
%s
=== END ===`, template.Enumerate(), text)
}
