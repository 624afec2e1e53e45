package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/store"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: epoch}
	reg := NewRegistry(progress.NewRegistry(store.NewMemoryKV(), progress.WithClock(clk.Now)), WithClock(clk.Now))

	a := reg.Agent(ctx, "alice")
	assert.Same(t, a, reg.Agent(ctx, "alice"))
	assert.NotSame(t, a, reg.Agent(ctx, "bob"))

	tr := reg.Tracker(ctx, "alice")
	play(t, tr, clk, progress.SubjectMathematics, progress.Beginner,
		map[string]bool{"q1": true, "q2": true}, "q1", "q2")

	// The agent reads the same tracker the registry hands out.
	assert.Equal(t, progress.Intermediate, a.NextDifficulty(progress.SubjectMathematics, progress.Beginner).NextDifficulty)
	assert.Equal(t, progress.Beginner, reg.Agent(ctx, "bob").NextDifficulty(progress.SubjectMathematics, progress.Beginner).NextDifficulty)

	reg.Drop("alice")
	reloaded := reg.Agent(ctx, "alice")
	assert.NotSame(t, a, reloaded)
	assert.Equal(t, progress.Intermediate, reloaded.NextDifficulty(progress.SubjectMathematics, progress.Beginner).NextDifficulty)
}
