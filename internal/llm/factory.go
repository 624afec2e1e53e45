package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider builds the configured provider wrapped as
// caller → retry → logging → provider. It returns ErrDisabled when the
// selected provider has no API key.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		if _, selErr := cfg.Selected(); selErr != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDisabled, err)
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}
