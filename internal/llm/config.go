package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
	ProviderMock       = "mock"
)

// Config selects and configures a provider.
type Config struct {
	Provider string

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	OpenRouter ProviderConfig
	Gemini     ProviderConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// ProviderConfig holds credentials and model for one provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retries of transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the built-in defaults. No provider is enabled
// until an API key is supplied.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-exp", BaseURL: defaultOpenRouterBaseURL},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// envPrefix namespaces every variable read by ConfigFromEnv.
const envPrefix = "QUIZCHAT_"

// ConfigFromEnv overlays QUIZCHAT_* environment variables on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Provider = getEnv("LLM_PROVIDER", cfg.Provider)

	for name, pc := range map[string]*ProviderConfig{
		"ANTHROPIC":  &cfg.Anthropic,
		"OPENAI":     &cfg.OpenAI,
		"OPENROUTER": &cfg.OpenRouter,
		"GEMINI":     &cfg.Gemini,
	} {
		pc.APIKey = getEnv(name+"_API_KEY", pc.APIKey)
		pc.Model = getEnv(name+"_MODEL", pc.Model)
		pc.BaseURL = getEnv(name+"_BASE_URL", pc.BaseURL)
	}

	if v := getEnv("LLM_TIMEOUT", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := getEnv("LLM_MAX_ATTEMPTS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retry.MaxAttempts = n
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

// DiscoverConfig looks for the providers' standard API key variables in
// priority order and returns a config for the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, c := range []struct {
		env      string
		provider string
		pc       *ProviderConfig
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter},
	} {
		if k := os.Getenv(c.env); k != "" {
			cfg.Provider = c.provider
			c.pc.APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Selected returns the configuration of the chosen provider.
func (c Config) Selected() (ProviderConfig, error) {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic, nil
	case ProviderOpenAI:
		return c.OpenAI, nil
	case ProviderOpenRouter:
		return c.OpenRouter, nil
	case ProviderGemini:
		return c.Gemini, nil
	case ProviderMock:
		return ProviderConfig{}, nil
	default:
		return ProviderConfig{}, fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	pc, err := c.Selected()
	if err != nil {
		return err
	}
	if c.Provider != ProviderMock && pc.APIKey == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider",
			envPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

// Enabled reports whether the config can build a provider.
func (c Config) Enabled() bool {
	return c.Validate() == nil
}
