package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

type Config struct {
	APIKey      string // missing key is a per-call configuration error, not a constructor error
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

type Client struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, logger: logger}
}

// GenerateStructured asks for JSON constrained by schema and validates the
// response locally before handing it back. A non-conforming response is fatal
// for the stage; no repair attempt is made.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, schema map[string]any) ([]byte, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.WrapError(domain.ErrModelConfig, "generate structured",
			errors.New("OPENAI_API_KEY is not set"))
	}

	start := time.Now()
	c.logger.Info("llm.structured.start", "model", c.cfg.Model, "prompt_chars", len(prompt))

	params := openaigo.ChatCompletionNewParams{
		Model:       openaigo.ChatModel(c.cfg.Model),
		Temperature: openaigo.Float(c.cfg.Temperature),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage("Return ONLY JSON that matches the provided JSON Schema. No markdown, no extra keys."),
			openaigo.SystemMessage("JSON Schema:\n" + mustJSON(schema)),
			openaigo.UserMessage(prompt),
		},
		ResponseFormat: openaigo.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	content, err := c.complete(ctx, params, "structured")
	if err != nil {
		return nil, err
	}

	raw := []byte(stripFences(content))
	if err := validateAgainstSchema(schema, raw); err != nil {
		c.logger.Error("llm.structured.schema_validation_failed",
			"error", err,
			"content_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, domain.WrapError(domain.ErrSchemaValidation, "validate structured response", err)
	}

	c.logger.Info("llm.structured.ok",
		"content_bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return raw, nil
}

// GenerateText returns the model's free-text completion unchanged.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", domain.WrapError(domain.ErrModelConfig, "generate text",
			errors.New("OPENAI_API_KEY is not set"))
	}

	start := time.Now()
	c.logger.Info("llm.text.start", "model", c.cfg.Model, "prompt_chars", len(prompt))

	params := openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.cfg.Model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.UserMessage(prompt),
		},
	}

	content, err := c.complete(ctx, params, "text")
	if err != nil {
		return "", err
	}

	c.logger.Info("llm.text.ok",
		"content_bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) complete(ctx context.Context, params openaigo.ChatCompletionNewParams, operation string) (string, error) {
	client := openaigo.NewClient(c.options()...)

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Error("llm."+operation+".provider_error", "error", err)
		return "", domain.WrapError(domain.ErrModelInvocation, "openai "+operation, err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.WrapError(domain.ErrModelInvocation, "openai "+operation,
			errors.New("empty choices in response"))
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) options() []option.RequestOption {
	opts := []option.RequestOption{
		option.WithAPIKey(c.cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: c.cfg.Timeout}),
		// one attempt per stage; the user retries manually
		option.WithMaxRetries(0),
	}
	if c.cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(c.cfg.BaseURL))
	}
	return opts
}

// stripFences removes a markdown code fence around the JSON body. Models
// wrap JSON in ```json fences often enough that this is worth doing before
// validation.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
