// Package agent turns a learner's progress into difficulty transitions,
// review schedules and study recommendations.
package agent

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/translate"
)

// Difficulty thresholds, as success-rate percentages.
const (
	PromoteFromBeginner     = 85.0
	PromoteFromIntermediate = 75.0
	HoldAtAdvanced          = 60.0
	DemoteBelow             = 50.0
)

// ProgressSource is the read side of a progress tracker.
type ProgressSource interface {
	PerformanceMetrics(subject progress.Subject) *progress.PerformanceMetrics
	LearningVelocity(subject progress.Subject) progress.LearningVelocity
	WeakAreas(threshold float64) []progress.WeakArea
	SubjectHistory(subject progress.Subject) []*progress.Session
}

// Agent makes recommendations for a single learner. It holds no state of
// its own beyond its collaborators and never returns an error.
type Agent struct {
	src        ProgressSource
	log        *zap.Logger
	now        func() time.Time
	intn       func(n int) int
	translator translate.Translator
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *Agent) {
		if log != nil {
			a.log = log
		}
	}
}

// WithClock overrides the time source used for review scheduling.
func WithClock(now func() time.Time) Option {
	return func(a *Agent) {
		if now != nil {
			a.now = now
		}
	}
}

// WithRand overrides the source used to pick question types. intn must
// return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(a *Agent) {
		if intn != nil {
			a.intn = intn
		}
	}
}

// WithTranslator enables LocalizedRecommendation.
func WithTranslator(t translate.Translator) Option {
	return func(a *Agent) {
		a.translator = t
	}
}

// New creates an agent reading from src.
func New(src ProgressSource, opts ...Option) *Agent {
	a := &Agent{
		src:  src,
		log:  zap.NewNop(),
		now:  time.Now,
		intn: rand.IntN,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
