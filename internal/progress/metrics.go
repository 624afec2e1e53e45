package progress

import (
	"fmt"
	"time"
)

// DifficultyStats is the per-level slice of a subject's metrics.
type DifficultyStats struct {
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Rate     float64 `json:"rate"`
}

// PerformanceMetrics accumulates a user's results for one subject. It is
// updated when a session ends and never edited by callers.
type PerformanceMetrics struct {
	Subject       Subject                        `json:"subject"`
	TotalAttempts int                            `json:"totalAttempts"`
	TotalCorrect  int                            `json:"totalCorrect"`
	SuccessRate   float64                        `json:"successRate"`
	AverageTimeMs float64                        `json:"averageTimeTaken"`
	ByDifficulty  map[Difficulty]DifficultyStats `json:"byDifficulty"`
	FirstAttempt  time.Time                      `json:"firstAttempt"`
	LastAttempt   time.Time                      `json:"lastAttempt"`
}

func newPerformanceMetrics(subject Subject, firstAttempt time.Time) *PerformanceMetrics {
	m := &PerformanceMetrics{
		Subject:      subject,
		ByDifficulty: make(map[Difficulty]DifficultyStats, len(Difficulties)),
		FirstAttempt: firstAttempt,
		LastAttempt:  firstAttempt,
	}
	for _, d := range Difficulties {
		m.ByDifficulty[d] = DifficultyStats{}
	}
	return m
}

// Level returns the stats for a difficulty, zero-valued if never attempted.
func (m *PerformanceMetrics) Level(d Difficulty) DifficultyStats {
	if m == nil {
		return DifficultyStats{}
	}
	return m.ByDifficulty[d]
}

// accumulate folds a closed session into the metrics. The running average
// time is weighted by attempt count so no history replay is needed.
func (m *PerformanceMetrics) accumulate(s *Session, now time.Time) {
	n := len(s.Attempts)
	prevAttempts := m.TotalAttempts

	m.TotalAttempts += n
	m.TotalCorrect += s.TotalCorrect
	m.SuccessRate = percent(m.TotalCorrect, m.TotalAttempts)

	if m.TotalAttempts > 0 {
		totalTime := m.AverageTimeMs*float64(prevAttempts) + float64(s.TotalTime())
		m.AverageTimeMs = totalTime / float64(m.TotalAttempts)
	}

	if m.ByDifficulty == nil {
		m.ByDifficulty = make(map[Difficulty]DifficultyStats, len(Difficulties))
	}
	ds := m.ByDifficulty[s.Difficulty]
	ds.Attempts += n
	ds.Correct += s.TotalCorrect
	ds.Rate = percent(ds.Correct, ds.Attempts)
	m.ByDifficulty[s.Difficulty] = ds

	m.LastAttempt = now
}

func (m *PerformanceMetrics) clone() *PerformanceMetrics {
	if m == nil {
		return nil
	}
	c := *m
	c.ByDifficulty = make(map[Difficulty]DifficultyStats, len(m.ByDifficulty))
	for d, ds := range m.ByDifficulty {
		c.ByDifficulty[d] = ds
	}
	return &c
}

// normalize checks that no level has more correct answers than attempts and
// recomputes every rate from the counts.
func (m *PerformanceMetrics) normalize() error {
	for d, ds := range m.ByDifficulty {
		if ds.Correct > ds.Attempts {
			return fmt.Errorf("%s level has %d correct out of %d attempts", d, ds.Correct, ds.Attempts)
		}
		ds.Rate = percent(ds.Correct, ds.Attempts)
		m.ByDifficulty[d] = ds
	}
	m.SuccessRate = percent(m.TotalCorrect, m.TotalAttempts)
	return nil
}

// consistent reports whether the per-level attempts add up to the total.
func (m *PerformanceMetrics) consistent() bool {
	sum, correct := 0, 0
	for _, ds := range m.ByDifficulty {
		sum += ds.Attempts
		correct += ds.Correct
	}
	return sum == m.TotalAttempts && correct == m.TotalCorrect
}
