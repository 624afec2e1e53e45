// Package app wires storage, logging, the LLM provider and the learning
// registries into one object owned by the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizchat/internal/agent"
	"github.com/abhisek/quizchat/internal/config"
	"github.com/abhisek/quizchat/internal/llm"
	"github.com/abhisek/quizchat/internal/logging"
	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/store"
	"github.com/abhisek/quizchat/internal/translate"
)

// Options configures the application.
type Options struct {
	Config config.Config

	// Ephemeral keeps all state in memory instead of SQLite.
	Ephemeral bool

	// Logger overrides the logger built from Config.
	Logger *zap.Logger

	// Provider overrides the LLM provider built from Config.LLM.
	Provider llm.Provider

	// Now overrides the clock used by trackers and agents.
	Now func() time.Time
}

// App is the composition root of the CLI.
type App struct {
	cfg        config.Config
	log        *zap.Logger
	store      *store.Store
	kv         store.KV
	service    *translate.Service
	translator translate.Translator
	agents     *agent.Registry
	now        func() time.Time
}

// New opens storage and builds the registries. The LLM provider is
// optional: without one, text is shown in English only.
func New(ctx context.Context, opts Options) (*App, error) {
	a := &App{cfg: opts.Config, log: opts.Logger, now: opts.Now}
	if a.now == nil {
		a.now = time.Now
	}

	if a.log == nil {
		log, err := logging.New(logging.Config{Level: a.cfg.LogLevel, File: a.cfg.LogFile})
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
		a.log = log
	}

	if opts.Ephemeral {
		a.kv = store.NewMemoryKV()
	} else {
		dbPath, err := a.cfg.ResolveDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		a.store = st
		a.kv = st.KV()
	}

	provider := opts.Provider
	if provider == nil && a.cfg.LLM.Enabled() {
		p, err := llm.NewProvider(ctx, a.cfg.LLM, a.log)
		if err != nil {
			a.log.Warn("LLM provider unavailable; translations disabled", zap.Error(err))
		} else {
			provider = p
		}
	}
	if provider != nil {
		a.service = translate.NewService(provider,
			translate.WithLogger(a.log),
			translate.WithTimeout(a.cfg.TranslationTimeout))
		a.translator = translate.NewCached(a.service, a.kv, a.log)
	}

	trackers := progress.NewRegistry(a.kv,
		progress.WithLogger(a.log),
		progress.WithClock(a.now))
	agentOpts := []agent.Option{agent.WithLogger(a.log), agent.WithClock(a.now)}
	if a.translator != nil {
		agentOpts = append(agentOpts, agent.WithTranslator(a.translator))
	}
	a.agents = agent.NewRegistry(trackers, agentOpts...)

	return a, nil
}

// Close flushes the logger and closes storage.
func (a *App) Close() error {
	_ = a.log.Sync()
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// Config returns the effective configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	return a.log
}

// Now returns the current time from the application clock.
func (a *App) Now() time.Time {
	return a.now()
}

// Tracker returns the configured user's progress tracker.
func (a *App) Tracker(ctx context.Context) *progress.Tracker {
	return a.agents.Tracker(ctx, a.cfg.UserID)
}

// Agent returns the configured user's adaptive agent.
func (a *App) Agent(ctx context.Context) *agent.Agent {
	return a.agents.Agent(ctx, a.cfg.UserID)
}

// Translator returns the cached translator, or nil without an LLM provider.
func (a *App) Translator() translate.Translator {
	return a.translator
}

// TranslationStatus reports the translation model and languages.
func (a *App) TranslationStatus() (translate.Status, error) {
	if a.service == nil {
		return translate.Status{}, fmt.Errorf("translation: %w", llm.ErrDisabled)
	}
	return a.service.Status(), nil
}

// Reset clears the configured user's data and drops their cached agent.
func (a *App) Reset(ctx context.Context) {
	a.Tracker(ctx).Clear(ctx)
	a.agents.Drop(a.cfg.UserID)
}
