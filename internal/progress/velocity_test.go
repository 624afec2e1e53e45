package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizchat/internal/store"
)

func TestLearningVelocity_NoSessions(t *testing.T) {
	tr := newTestTracker(t, store.NewMemoryKV(), newFakeClock())
	v := tr.LearningVelocity(SubjectMathematics)
	assert.Equal(t, LearningVelocity{Subject: SubjectMathematics}, v)
}

func TestLearningVelocity_MidpointSplit(t *testing.T) {
	clk := newFakeClock()
	tr := newTestTracker(t, store.NewMemoryKV(), clk)
	runSession(t, tr, clk, SubjectMathematics, Beginner, 2, 5) // 40
	runSession(t, tr, clk, SubjectMathematics, Beginner, 4, 5) // 80

	v := tr.LearningVelocity(SubjectMathematics)
	assert.Equal(t, 40.0, v.ImprovementRate)
	assert.Equal(t, 2, v.SessionsCompleted)
}

func TestLearningVelocity_OddCountPutsMiddleInSecondHalf(t *testing.T) {
	clk := newFakeClock()
	tr := newTestTracker(t, store.NewMemoryKV(), clk)
	runSession(t, tr, clk, SubjectFinance, Beginner, 1, 2) // 50
	runSession(t, tr, clk, SubjectFinance, Beginner, 3, 4) // 75
	runSession(t, tr, clk, SubjectFinance, Beginner, 4, 4) // 100

	v := tr.LearningVelocity(SubjectFinance)
	// first = [50], second = [75, 100]
	assert.InDelta(t, 37.5, v.ImprovementRate, 1e-9)
}

func TestLearningVelocity_SingleSessionHasNoImprovement(t *testing.T) {
	clk := newFakeClock()
	tr := newTestTracker(t, store.NewMemoryKV(), clk)
	runSession(t, tr, clk, SubjectMathematics, Beginner, 3, 4)

	v := tr.LearningVelocity(SubjectMathematics)
	assert.Zero(t, v.ImprovementRate)
	assert.Equal(t, 1, v.SessionsCompleted)
}

func TestLearningVelocity_IgnoresOtherSubjects(t *testing.T) {
	clk := newFakeClock()
	tr := newTestTracker(t, store.NewMemoryKV(), clk)
	runSession(t, tr, clk, SubjectMathematics, Beginner, 0, 5)
	runSession(t, tr, clk, SubjectFinance, Beginner, 5, 5)
	runSession(t, tr, clk, SubjectMathematics, Beginner, 5, 5)

	v := tr.LearningVelocity(SubjectMathematics)
	assert.Equal(t, 100.0, v.ImprovementRate)
	assert.Equal(t, 2, v.SessionsCompleted)
}

func TestLearningVelocity_AverageSessionLength(t *testing.T) {
	clk := newFakeClock()
	tr := newTestTracker(t, store.NewMemoryKV(), clk)
	runSession(t, tr, clk, SubjectMathematics, Beginner, 1, 2) // 2 min
	runSession(t, tr, clk, SubjectMathematics, Beginner, 1, 4) // 4 min

	v := tr.LearningVelocity(SubjectMathematics)
	assert.Equal(t, float64((3 * time.Minute).Milliseconds()), v.AverageSessionMs)
}

func TestLearningVelocity_Consistency(t *testing.T) {
	tests := []struct {
		name    string
		gapDays []int // days to advance before each session after the first
		want    float64
	}{
		{"same day", []int{0, 0}, 100},
		{"every day", []int{1, 1, 1}, 100},
		{"two of three days", []int{0, 3}, 200.0 / 3},
		{"sparse", []int{10}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newFakeClock()
			tr := newTestTracker(t, store.NewMemoryKV(), clk)
			runSession(t, tr, clk, SubjectMathematics, Beginner, 0, 0)
			for _, gap := range tt.gapDays {
				clk.Advance(time.Duration(gap) * 24 * time.Hour)
				runSession(t, tr, clk, SubjectMathematics, Beginner, 0, 0)
			}

			v := tr.LearningVelocity(SubjectMathematics)
			assert.InDelta(t, tt.want, v.ConsistencyScore, 1e-9)
		})
	}
}

func TestLearningVelocity_RecentPerformance(t *testing.T) {
	clk := newFakeClock()
	tr := newTestTracker(t, store.NewMemoryKV(), clk)
	runSession(t, tr, clk, SubjectMathematics, Beginner, 1, 4)
	clk.Advance(10 * 24 * time.Hour)
	runSession(t, tr, clk, SubjectMathematics, Beginner, 3, 4)
	clk.Advance(24 * time.Hour)
	runSession(t, tr, clk, SubjectMathematics, Intermediate, 2, 2)

	v := tr.LearningVelocity(SubjectMathematics)
	assert.Equal(t, 6, v.RecentPerformance.Attempts)
	assert.Equal(t, 5, v.RecentPerformance.Correct)
	assert.InDelta(t, 83.333, v.RecentPerformance.Rate, 0.001)
}
