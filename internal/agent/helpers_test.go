package agent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/store"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// stubSource serves fixed metrics.
type stubSource struct {
	metrics  map[progress.Subject]*progress.PerformanceMetrics
	velocity map[progress.Subject]progress.LearningVelocity
	weak     []progress.WeakArea
}

func (s *stubSource) PerformanceMetrics(sub progress.Subject) *progress.PerformanceMetrics {
	return s.metrics[sub]
}

func (s *stubSource) LearningVelocity(sub progress.Subject) progress.LearningVelocity {
	return s.velocity[sub]
}

func (s *stubSource) WeakAreas(float64) []progress.WeakArea { return s.weak }

func (s *stubSource) SubjectHistory(progress.Subject) []*progress.Session { return nil }

// level is attempts and correct answers at one difficulty.
type level struct{ attempts, correct int }

func metricsFor(sub progress.Subject, levels map[progress.Difficulty]level) *progress.PerformanceMetrics {
	m := &progress.PerformanceMetrics{
		Subject:      sub,
		ByDifficulty: make(map[progress.Difficulty]progress.DifficultyStats),
	}
	for _, d := range progress.Difficulties {
		l := levels[d]
		ds := progress.DifficultyStats{Attempts: l.attempts, Correct: l.correct}
		if l.attempts > 0 {
			ds.Rate = float64(l.correct) / float64(l.attempts) * 100
		}
		m.ByDifficulty[d] = ds
		m.TotalAttempts += l.attempts
		m.TotalCorrect += l.correct
	}
	if m.TotalAttempts > 0 {
		m.SuccessRate = float64(m.TotalCorrect) / float64(m.TotalAttempts) * 100
	}
	return m
}

func stubWith(sub progress.Subject, levels map[progress.Difficulty]level) *stubSource {
	return &stubSource{
		metrics: map[progress.Subject]*progress.PerformanceMetrics{sub: metricsFor(sub, levels)},
	}
}

func newTracker(t *testing.T, clk *clock) *progress.Tracker {
	t.Helper()
	return progress.NewTracker(context.Background(), "learner-1", store.NewMemoryKV(), progress.WithClock(clk.Now))
}

// play runs a full session answering the given question ids, one minute
// apart, with the matching correctness flags.
func play(t *testing.T, tr *progress.Tracker, clk *clock, sub progress.Subject, d progress.Difficulty, answers map[string]bool, order ...string) {
	t.Helper()
	ctx := context.Background()
	tr.StartSession(ctx, fmt.Sprintf("s-%d", len(tr.SessionHistory())+1), sub, d, "en")
	for _, id := range order {
		clk.Advance(time.Minute)
		tr.RecordAnswer(ctx, progress.Attempt{QuestionID: id, Answer: "x", Correct: answers[id], TimeTakenMs: 1000})
	}
	if tr.EndSession(ctx) == nil {
		t.Fatal("no open session")
	}
}
