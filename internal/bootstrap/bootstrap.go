package bootstrap

import (
	"log/slog"

	"github.com/malhotra-vikas/earnings-press-service/internal/config"
	"github.com/malhotra-vikas/earnings-press-service/internal/core/ports"
	"github.com/malhotra-vikas/earnings-press-service/internal/core/usecase"
	"github.com/malhotra-vikas/earnings-press-service/internal/infrastructure/extractor"
	"github.com/malhotra-vikas/earnings-press-service/internal/infrastructure/llm/openai"
	"github.com/malhotra-vikas/earnings-press-service/internal/observability/logging"
	"github.com/malhotra-vikas/earnings-press-service/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.HTTPServerMetrics

	TemplateUC ports.TemplateExtractor
	ReleaseUC  ports.ReleaseGenerator
}

func New(cfg config.Config) *App {
	logger := logging.NewJSONLogger("earnings-press-api", cfg.LogLevel)

	model := openai.New(openai.Config{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
		Timeout:     cfg.LLMTimeout(),
	}, logger)

	texts := extractor.NewSelector(logger)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Metrics:    metrics.NewHTTPServerMetrics("earnings-press-api"),
		TemplateUC: usecase.NewExtractTemplateUseCase(texts, model, cfg.TemplateTextCap, cfg.MinTemplateChars),
		ReleaseUC:  usecase.NewGenerateReleaseUseCase(texts, model, cfg.ReleaseTextCap),
	}
}
