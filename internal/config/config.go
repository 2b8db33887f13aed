package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const fileEnv = "PRESS_SERVICE_CONFIG"

type Config struct {
	APIPort  string `yaml:"api_port"`
	LogLevel string `yaml:"log_level"`

	OpenAIAPIKey      string  `yaml:"openai_api_key"`
	OpenAIBaseURL     string  `yaml:"openai_base_url"`
	OpenAIModel       string  `yaml:"openai_model"`
	OpenAITemperature float64 `yaml:"openai_temperature"`
	LLMTimeoutSeconds int     `yaml:"llm_timeout_seconds"`

	TemplateTextCap  int `yaml:"template_text_cap"`
	ReleaseTextCap   int `yaml:"release_text_cap"`
	MinTemplateChars int `yaml:"min_template_chars"`
	MaxUploadBytes   int `yaml:"max_upload_bytes"`
}

// Load builds the configuration from defaults, an optional YAML file named by
// PRESS_SERVICE_CONFIG, and environment overrides, in that order.
func Load() Config {
	cfg := defaults()

	if path := os.Getenv(fileEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("config.file_unreadable", "path", path, "error", err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			slog.Warn("config.file_unparsable", "path", path, "error", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func defaults() Config {
	return Config{
		APIPort:  "8080",
		LogLevel: "info",

		OpenAIModel:       "gpt-4o",
		OpenAITemperature: 0.3,
		LLMTimeoutSeconds: 120,

		TemplateTextCap:  10000,
		ReleaseTextCap:   15000,
		MinTemplateChars: 100,
		MaxUploadBytes:   10 << 20,
	}
}

func (c *Config) applyEnvOverrides() {
	overrideString(&c.APIPort, "API_PORT")
	overrideString(&c.LogLevel, "LOG_LEVEL")
	overrideString(&c.OpenAIAPIKey, "OPENAI_API_KEY")
	overrideString(&c.OpenAIBaseURL, "OPENAI_BASE_URL")
	overrideString(&c.OpenAIModel, "OPENAI_MODEL")
	overrideFloat(&c.OpenAITemperature, "OPENAI_TEMPERATURE")
	overrideInt(&c.LLMTimeoutSeconds, "LLM_TIMEOUT_SECONDS")
	overrideInt(&c.TemplateTextCap, "TEMPLATE_TEXT_CAP")
	overrideInt(&c.ReleaseTextCap, "RELEASE_TEXT_CAP")
	overrideInt(&c.MinTemplateChars, "MIN_TEMPLATE_CHARS")
	overrideInt(&c.MaxUploadBytes, "MAX_UPLOAD_BYTES")
}

func (c Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
