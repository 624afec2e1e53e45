package progress

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/quizchat/internal/store"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(t *testing.T, kv store.KV, clk *fakeClock, opts ...Option) *Tracker {
	t.Helper()
	opts = append([]Option{WithClock(clk.Now)}, opts...)
	return NewTracker(context.Background(), "learner-1", kv, opts...)
}

// runSession plays a full session with the given number of correct answers
// out of total, one minute per answer.
func runSession(t *testing.T, tr *Tracker, clk *fakeClock, sub Subject, d Difficulty, correct, total int) *Session {
	t.Helper()
	ctx := context.Background()
	tr.StartSession(ctx, fmt.Sprintf("s-%d", len(tr.history)+1), sub, d, "en")
	for i := 0; i < total; i++ {
		clk.Advance(time.Minute)
		tr.RecordAnswer(ctx, Attempt{
			QuestionID:  fmt.Sprintf("%s-%s-q%d", sub, d, i+1),
			Answer:      "42",
			Correct:     i < correct,
			TimeTakenMs: 1000,
		})
	}
	s := tr.EndSession(ctx)
	if s == nil {
		t.Fatal("EndSession returned nil for an open session")
	}
	return s
}

// failingKV fails every operation.
type failingKV struct{}

var errStorage = errors.New("quota exceeded")

func (failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errStorage }
func (failingKV) Set(context.Context, string, string) error         { return errStorage }
func (failingKV) Remove(context.Context, string) error              { return errStorage }
