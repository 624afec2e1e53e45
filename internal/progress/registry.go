package progress

import (
	"context"

	"github.com/abhisek/quizchat/internal/store"
)

// Registry hands out one Tracker per user id. It is owned by the
// application's composition root and is not safe for concurrent use.
type Registry struct {
	kv       store.KV
	opts     []Option
	trackers map[string]*Tracker
}

// NewRegistry creates a registry whose trackers persist to kv.
func NewRegistry(kv store.KV, opts ...Option) *Registry {
	return &Registry{
		kv:       kv,
		opts:     opts,
		trackers: make(map[string]*Tracker),
	}
}

// Tracker returns the user's tracker, loading it on first use.
func (r *Registry) Tracker(ctx context.Context, userID string) *Tracker {
	if t, ok := r.trackers[userID]; ok {
		return t
	}
	t := NewTracker(ctx, userID, r.kv, r.opts...)
	r.trackers[userID] = t
	return t
}

// Drop forgets the user's tracker, e.g. on logout. Persisted state is kept.
func (r *Registry) Drop(userID string) {
	delete(r.trackers, userID)
}

// Len returns the number of loaded trackers.
func (r *Registry) Len() int {
	return len(r.trackers)
}
