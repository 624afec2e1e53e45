package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/abhisek/quizchat/internal/store"
)

// Cached stores translations in a key-value store so each string is only
// translated once per target language. Storage failures fall through to
// the wrapped translator.
type Cached struct {
	inner Translator
	kv    store.KV
	log   *zap.Logger
}

// NewCached wraps inner with a cache in kv.
func NewCached(inner Translator, kv store.KV, log *zap.Logger) *Cached {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cached{inner: inner, kv: kv, log: log}
}

// CacheKey returns the storage key for a translation.
func CacheKey(text, source, target string) string {
	sum := sha256.Sum256([]byte(source + "|" + text))
	return "translation_" + target + "_" + hex.EncodeToString(sum[:])
}

func (c *Cached) Translate(ctx context.Context, text, source, target string) (string, error) {
	if err := Validate(text, source, target); err != nil {
		return "", err
	}

	key := CacheKey(text, source, target)
	if v, ok, err := c.kv.Get(ctx, key); err != nil {
		c.log.Warn("translation cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return v, nil
	}

	tr, err := c.inner.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}
	if err := c.kv.Set(ctx, key, tr); err != nil {
		c.log.Warn("translation cache write failed", zap.String("key", key), zap.Error(err))
	}
	return tr, nil
}
