package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SectionEntry is one heading of an earnings press release together with a
// short description of what the section covers.
type SectionEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SectionTemplate is the ordered skeleton a generated press release follows.
// Order is significant: it drives both the generation prompt and the
// numbering shown to the user.
type SectionTemplate []SectionEntry

// ParseSectionTemplate decodes the client-serialized form (a JSON array of
// {title, description} objects) and rejects empty or blank entries.
func ParseSectionTemplate(raw []byte) (SectionTemplate, error) {
	var tpl SectionTemplate
	if err := json.Unmarshal(raw, &tpl); err != nil {
		return nil, fmt.Errorf("decode section template: %w", err)
	}
	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (t SectionTemplate) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("section template is empty")
	}
	for i, entry := range t {
		if strings.TrimSpace(entry.Title) == "" {
			return fmt.Errorf("section %d: title is blank", i+1)
		}
		if strings.TrimSpace(entry.Description) == "" {
			return fmt.Errorf("section %d (%s): description is blank", i+1, entry.Title)
		}
	}
	return nil
}

// Enumerate renders the template as the 1-based "index. title: description"
// listing embedded in the generation prompt.
func (t SectionTemplate) Enumerate() string {
	var b strings.Builder
	for i, entry := range t {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, entry.Title, entry.Description)
	}
	return b.String()
}

// SectionTemplateJSONSchema is the structured-output constraint for the
// template-extraction model call. The entry list is wrapped in an object
// because JSON response mode cannot return a top-level array.
func SectionTemplateJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"sections"},
		"properties": map[string]any{
			"sections": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"title", "description"},
					"properties": map[string]any{
						"title":       map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string", "minLength": 1},
					},
				},
			},
		},
	}
}
