package translate

import (
	"context"
	"fmt"
)

// Translator translates text from one language code to another.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Batch translates texts in order. The first failure aborts the batch.
func Batch(ctx context.Context, t Translator, texts []string, source, target string) ([]string, error) {
	out := make([]string, len(texts))
	for i, text := range texts {
		tr, err := t.Translate(ctx, text, source, target)
		if err != nil {
			return nil, fmt.Errorf("translate item %d: %w", i, err)
		}
		out[i] = tr
	}
	return out, nil
}
