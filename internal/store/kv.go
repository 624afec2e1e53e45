package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	kvTable           = "kv"
	kvColumnKey       = "key"
	kvColumnValue     = "value"
	kvColumnUpdatedAt = "updated_at"
)

// KV is the synchronous string key-value contract used for per-user progress
// persistence and the translation cache. A missing key is reported with
// ok == false and a nil error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ProgressKey is the key holding committed history and metrics for a user.
func ProgressKey(userID string) string {
	return "progress_" + userID
}

// CurrentSessionKey is the key holding a user's in-flight session.
func CurrentSessionKey(userID string) string {
	return "current_session_" + userID
}

// sqliteKV implements KV on the kv table using ent's SQL builder.
type sqliteKV struct {
	drv *entsql.Driver
}

func (k *sqliteKV) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (k *sqliteKV) Get(ctx context.Context, key string) (string, bool, error) {
	b := k.builder()
	query, args := b.Select(kvColumnValue).
		From(b.Table(kvTable)).
		Where(entsql.EQ(kvColumnKey, key)).
		Query()

	rows := &entsql.Rows{}
	if err := k.drv.Query(ctx, query, args, rows); err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", false, fmt.Errorf("get %q: %w", key, err)
		}
		return "", false, nil
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", false, fmt.Errorf("scan %q: %w", key, err)
	}
	return value, true, nil
}

func (k *sqliteKV) Set(ctx context.Context, key, value string) error {
	query, args := k.builder().Insert(kvTable).
		Columns(kvColumnKey, kvColumnValue, kvColumnUpdatedAt).
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns(kvColumnKey),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := k.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (k *sqliteKV) Remove(ctx context.Context, key string) error {
	query, args := k.builder().Delete(kvTable).
		Where(entsql.EQ(kvColumnKey, key)).
		Query()

	if err := k.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// MemoryKV is an in-process KV. It backs the --ephemeral CLI mode and tests.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryKV) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
