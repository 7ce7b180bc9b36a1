// Package config loads ShadowPulse settings from the environment, after an
// optional .env file has been applied.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR"    env-default:":8080"`
	FrontendURL string `env:"FRONTEND_URL"`
	LogLevel    string `env:"LOG_LEVEL"    env-default:"info"`

	LLM     LLMConfig
	Search  SearchConfig
	Storage StorageConfig
}

type LLMConfig struct {
	Provider       string        `env:"LLM_PROVIDER"      env-default:"openai"`
	OpenAIKey      string        `env:"OPENAI_API_KEY"`
	AnthropicKey   string        `env:"ANTHROPIC_API_KEY"`
	RequestTimeout time.Duration `env:"LLM_TIMEOUT"  env-default:"60s"`
}

type SearchConfig struct {
	AlphaVantageKey string `env:"ALPHA_VANTAGE_API_KEY"`
	FinnhubKey      string `env:"FINNHUB_API_KEY"`
	MassiveKey      string `env:"MASSIVE_API_KEY"`
	Limit           int    `env:"SEARCH_LIMIT" env-default:"10"`
}

// StorageConfig is optional; an empty URL disables the backing store.
type StorageConfig struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	RedisURL    string        `env:"REDIS_URL"`
	CacheTTL    time.Duration `env:"CACHE_TTL" env-default:"10m"`
}

// Load applies .env (when present) and reads the environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderAnthropic, c.LLM.Provider)
	}
	if c.Search.Limit <= 0 {
		return fmt.Errorf("SEARCH_LIMIT must be positive")
	}
	if c.Storage.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

// LLMKey returns the credential for the configured provider.
func (c *Config) LLMKey() string {
	if c.LLM.Provider == ProviderAnthropic {
		return c.LLM.AnthropicKey
	}
	return c.LLM.OpenAIKey
}

// CheckCredentials fails when the summarizer cannot be authenticated. The
// dashboard refuses to start rather than run without summaries.
func (c *Config) CheckCredentials() error {
	if c.LLMKey() == "" {
		return fmt.Errorf("missing API key for LLM provider %q", c.LLM.Provider)
	}
	if c.Search.AlphaVantageKey == "" && c.Search.FinnhubKey == "" && c.Search.MassiveKey == "" {
		return fmt.Errorf("no news source API keys configured")
	}
	return nil
}
