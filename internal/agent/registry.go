package agent

import (
	"context"

	"github.com/abhisek/quizchat/internal/progress"
)

// Registry hands out one Agent per user, each reading that user's tracker
// from a progress.Registry. Like progress.Registry it is owned by the
// composition root and is not safe for concurrent use.
type Registry struct {
	progress *progress.Registry
	opts     []Option
	agents   map[string]*Agent
}

// NewRegistry creates an agent registry over trackers.
func NewRegistry(trackers *progress.Registry, opts ...Option) *Registry {
	return &Registry{
		progress: trackers,
		opts:     opts,
		agents:   make(map[string]*Agent),
	}
}

// Agent returns the user's agent, creating it on first use.
func (r *Registry) Agent(ctx context.Context, userID string) *Agent {
	if a, ok := r.agents[userID]; ok {
		return a
	}
	a := New(r.progress.Tracker(ctx, userID), r.opts...)
	r.agents[userID] = a
	return a
}

// Tracker returns the user's progress tracker.
func (r *Registry) Tracker(ctx context.Context, userID string) *progress.Tracker {
	return r.progress.Tracker(ctx, userID)
}

// Drop forgets the user's agent and tracker.
func (r *Registry) Drop(userID string) {
	delete(r.agents, userID)
	r.progress.Drop(userID)
}
