package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider logs every request with its latency, token usage and
// estimated cost.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps p with request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("model", l.inner.ModelID()),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.Duration("latency", time.Since(start)),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}

	if err != nil {
		l.log.Warn("llm request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	fields = append(fields,
		zap.String("served_by", resp.Model),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens))
	if c := LookupCost(resp.Model); c != nil {
		fields = append(fields, zap.Float64("cost_usd", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
	}
	l.log.Debug("llm request", fields...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
