package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizchat/internal/llm"
)

var translationSchema = &llm.Schema{
	Name:        "translation",
	Description: "The translated text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"description": "The input text translated into the target language",
			},
		},
		"required":             []any{"translation"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a translator for an educational quiz app used by learners in India.
Translate the user's text faithfully and naturally. Keep numbers, percentages
and proper nouns unchanged. Reply only with the translation.`

// Service translates through a language model.
type Service struct {
	provider llm.Provider
	log      *zap.Logger
	timeout  time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTimeout bounds each translation call. Zero means no extra bound.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.timeout = d }
}

// NewService creates a translator backed by provider.
func NewService(provider llm.Provider, opts ...ServiceOption) *Service {
	s := &Service{provider: provider, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate validates the request and asks the model for a translation.
func (s *Service) Translate(ctx context.Context, text, source, target string) (string, error) {
	if err := Validate(text, source, target); err != nil {
		return "", err
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	srcName, _ := LanguageName(source)
	tgtName, _ := LanguageName(target)
	req := llm.UserPrompt(systemPrompt,
		fmt.Sprintf("Translate from %s (%s) to %s (%s):\n\n%s", srcName, source, tgtName, target, text))
	req.Schema = translationSchema
	req.MaxTokens = 1024

	start := time.Now()
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "translate"), req)
	if err != nil {
		return "", fmt.Errorf("translate %s to %s: %w", source, target, err)
	}

	var out struct {
		Translation string `json:"translation"`
	}
	if err := llm.Decode(resp, translationSchema, &out); err != nil {
		return "", fmt.Errorf("translate %s to %s: %w", source, target, err)
	}

	s.log.Info("translation completed",
		zap.String("source", source),
		zap.String("target", target),
		zap.Int("words", len(strings.Fields(text))),
		zap.Duration("duration", time.Since(start)))
	return strings.TrimSpace(out.Translation), nil
}

// Status describes the translation backend.
type Status struct {
	Model     string `json:"model"`
	Languages int    `json:"supportedLanguages"`
}

// Status reports the model in use and the number of supported languages.
func (s *Service) Status() Status {
	return Status{Model: s.provider.ModelID(), Languages: len(Languages)}
}
