// Package progress records practice sessions and accumulates per-subject
// performance metrics for a single user.
package progress

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizchat/internal/store"
)

// Tracker owns one user's session history and performance metrics.
// A Tracker is not safe for concurrent use; callers serialize their calls.
type Tracker struct {
	userID string
	kv     store.KV
	log    *zap.Logger
	now    func() time.Time

	current     *Session
	performance map[Subject]*PerformanceMetrics
	history     []*Session
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for storage and misuse warnings.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// progressRecord is the committed state persisted under ProgressKey.
type progressRecord struct {
	PerformanceData map[Subject]*PerformanceMetrics `json:"performanceData"`
	SessionHistory  []*Session                      `json:"sessionHistory"`
}

// NewTracker creates a tracker for userID and loads any persisted state.
// Missing or unreadable records start the user with an empty history.
func NewTracker(ctx context.Context, userID string, kv store.KV, opts ...Option) *Tracker {
	t := &Tracker{
		userID:      userID,
		kv:          kv,
		log:         zap.NewNop(),
		now:         time.Now,
		performance: make(map[Subject]*PerformanceMetrics),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With(zap.String("user", userID))
	t.load(ctx)
	return t
}

// UserID returns the user this tracker belongs to.
func (t *Tracker) UserID() string {
	return t.userID
}

// StartSession opens a new session. Any session still open is discarded
// without contributing to metrics.
func (t *Tracker) StartSession(ctx context.Context, id string, subject Subject, difficulty Difficulty, language string) *Session {
	if t.current != nil {
		t.log.Warn("discarding open session",
			zap.String("session", t.current.ID),
			zap.Int("attempts", len(t.current.Attempts)))
	}

	t.current = &Session{
		ID:         id,
		UserID:     t.userID,
		Subject:    subject,
		Difficulty: difficulty,
		StartedAt:  t.now(),
		Attempts:   []Attempt{},
		Language:   language,
	}
	t.saveCurrent(ctx)
	return t.current.clone()
}

// RecordAnswer appends an attempt to the open session. Metrics are not
// touched until the session ends.
func (t *Tracker) RecordAnswer(ctx context.Context, a Attempt) {
	if t.current == nil {
		t.log.Warn("no active session; answer not recorded", zap.String("question", a.QuestionID))
		return
	}
	if a.AttemptNumber == 0 {
		a.AttemptNumber = len(t.current.Attempts) + 1
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = t.now()
	}
	t.current.Attempts = append(t.current.Attempts, a)
	t.saveCurrent(ctx)
}

// EndSession closes the open session, folds it into the subject's metrics
// and persists the result. Returns nil when no session is open.
func (t *Tracker) EndSession(ctx context.Context) *Session {
	if t.current == nil {
		return nil
	}

	s := t.current
	now := t.now()
	s.close(now)

	t.history = append(t.history, s)
	m, ok := t.performance[s.Subject]
	if !ok {
		m = newPerformanceMetrics(s.Subject, s.StartedAt)
		t.performance[s.Subject] = m
	}
	m.accumulate(s, now)
	t.current = nil

	t.saveProgress(ctx)
	t.removeKey(ctx, store.CurrentSessionKey(t.userID))

	t.log.Debug("session ended",
		zap.String("session", s.ID),
		zap.String("subject", string(s.Subject)),
		zap.Float64("success_rate", s.SuccessRate))
	return s.clone()
}

// CurrentSession returns a copy of the open session, or nil.
func (t *Tracker) CurrentSession() *Session {
	return t.current.clone()
}

// PerformanceMetrics returns a copy of the metrics for subject, or nil if
// the subject has never been studied.
func (t *Tracker) PerformanceMetrics(subject Subject) *PerformanceMetrics {
	return t.performance[subject].clone()
}

// AllPerformanceMetrics returns copies of the metrics for every studied subject.
func (t *Tracker) AllPerformanceMetrics() map[Subject]*PerformanceMetrics {
	out := make(map[Subject]*PerformanceMetrics, len(t.performance))
	for sub, m := range t.performance {
		out[sub] = m.clone()
	}
	return out
}

// SessionHistory returns copies of all closed sessions in the order they ended.
func (t *Tracker) SessionHistory() []*Session {
	out := make([]*Session, len(t.history))
	for i, s := range t.history {
		out[i] = s.clone()
	}
	return out
}

// SubjectHistory returns copies of the closed sessions for one subject.
func (t *Tracker) SubjectHistory(subject Subject) []*Session {
	var out []*Session
	for _, s := range t.history {
		if s.Subject == subject {
			out = append(out, s.clone())
		}
	}
	return out
}

// Clear wipes the user's in-memory and persisted state.
func (t *Tracker) Clear(ctx context.Context) {
	t.current = nil
	t.history = nil
	t.performance = make(map[Subject]*PerformanceMetrics)
	t.removeKey(ctx, store.ProgressKey(t.userID))
	t.removeKey(ctx, store.CurrentSessionKey(t.userID))
}

func (t *Tracker) load(ctx context.Context) {
	var rec progressRecord
	if t.readJSON(ctx, store.ProgressKey(t.userID), &rec) {
		for sub, m := range rec.PerformanceData {
			if m == nil {
				continue
			}
			m.Subject = sub
			if m.ByDifficulty == nil {
				m.ByDifficulty = make(map[Difficulty]DifficultyStats)
			}
			t.performance[sub] = m
		}
		for _, s := range rec.SessionHistory {
			if s != nil {
				t.history = append(t.history, s)
			}
		}
	}

	var open Session
	key := store.CurrentSessionKey(t.userID)
	if t.readJSON(ctx, key, &open) {
		if open.ID == "" || open.StartedAt.IsZero() {
			t.log.Warn("discarding corrupt progress record", zap.String("key", key),
				zap.String("reason", "session without id or start time"))
			return
		}
		if open.Attempts == nil {
			open.Attempts = []Attempt{}
		}
		t.current = &open
	}
}

// readJSON loads key into v. Any failure is logged and reported as absent.
func (t *Tracker) readJSON(ctx context.Context, key string, v any) bool {
	raw, ok, err := t.kv.Get(ctx, key)
	if err != nil {
		t.log.Warn("failed to load progress", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		t.log.Warn("discarding corrupt progress record", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (t *Tracker) saveProgress(ctx context.Context) {
	t.writeJSON(ctx, store.ProgressKey(t.userID), progressRecord{
		PerformanceData: t.performance,
		SessionHistory:  t.history,
	})
}

func (t *Tracker) saveCurrent(ctx context.Context) {
	t.writeJSON(ctx, store.CurrentSessionKey(t.userID), t.current)
}

func (t *Tracker) writeJSON(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		t.log.Warn("failed to encode progress", zap.String("key", key), zap.Error(err))
		return
	}
	if err := t.kv.Set(ctx, key, string(b)); err != nil {
		t.log.Warn("failed to save progress", zap.String("key", key), zap.Error(err))
	}
}

func (t *Tracker) removeKey(ctx context.Context, key string) {
	if err := t.kv.Remove(ctx, key); err != nil {
		t.log.Warn("failed to remove progress", zap.String("key", key), zap.Error(err))
	}
}
