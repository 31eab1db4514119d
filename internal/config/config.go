package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port          string        `envconfig:"PORT" default:"8080"`
	Provider      string        `envconfig:"LLM_PROVIDER" default:"openai"`
	Model         string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIKey     string        `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `envconfig:"OPENAI_BASE_URL"`
	OllamaHost    string        `envconfig:"OLLAMA_HOST" default:"http://localhost:11434"`
	OllamaModel   string        `envconfig:"OLLAMA_MODEL" default:"llama3"`
	Timeout       time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	MaxRetries    int           `envconfig:"LLM_MAX_RETRIES" default:"2"`
	RateLimit     float64       `envconfig:"LLM_RATE_LIMIT" default:"0"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat     string        `envconfig:"LOG_FORMAT" default:"console"`
}

// FromEnv reads the process environment. It is called once at startup and
// the result is handed to constructors by value.
func FromEnv() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ActiveModel is the model name sent to the selected provider.
func (c Config) ActiveModel() string {
	if c.Provider == "ollama" {
		return c.OllamaModel
	}
	return c.Model
}

func (c Config) Validate() error {
	switch c.Provider {
	case "openai", "ollama":
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q (want openai or ollama)", c.Provider)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("LLM_MAX_RETRIES must be >= 0, got %d", c.MaxRetries)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("LLM_RATE_LIMIT must be >= 0, got %v", c.RateLimit)
	}
	return nil
}
