package progress

import (
	"math"
	"time"
)

// RecentWindow is the trailing window used for the recent-performance snapshot.
const RecentWindow = 7 * 24 * time.Hour

// RecentPerformance aggregates sessions started within RecentWindow.
type RecentPerformance struct {
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Rate     float64 `json:"rate"`
}

// LearningVelocity describes how a user's results for a subject are trending.
// It is derived on demand and never stored.
type LearningVelocity struct {
	Subject           Subject           `json:"subject"`
	ImprovementRate   float64           `json:"improvementRate"`
	SessionsCompleted int               `json:"sessionsCompleted"`
	AverageSessionMs  float64           `json:"averageSessionLength"`
	ConsistencyScore  float64           `json:"consistencyScore"`
	RecentPerformance RecentPerformance `json:"recentPerformance"`
}

// LearningVelocity computes the velocity for subject from its closed sessions.
func (t *Tracker) LearningVelocity(subject Subject) LearningVelocity {
	var sessions []*Session
	for _, s := range t.history {
		if s.Subject == subject {
			sessions = append(sessions, s)
		}
	}
	return computeVelocity(subject, sessions, t.now())
}

func computeVelocity(subject Subject, sessions []*Session, now time.Time) LearningVelocity {
	v := LearningVelocity{Subject: subject, SessionsCompleted: len(sessions)}
	if len(sessions) == 0 {
		return v
	}

	// Split by index, not by time: the first half is the older half.
	mid := len(sessions) / 2
	if mid > 0 {
		v.ImprovementRate = meanRate(sessions[mid:]) - meanRate(sessions[:mid])
	}

	var totalMs int64
	for _, s := range sessions {
		totalMs += s.DurationMs
	}
	v.AverageSessionMs = float64(totalMs) / float64(len(sessions))

	v.ConsistencyScore = consistency(sessions)
	v.RecentPerformance = recent(sessions, now)
	return v
}

func meanRate(sessions []*Session) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sessions {
		sum += s.SuccessRate
	}
	return sum / float64(len(sessions))
}

// consistency is the share of days between the first and last session that
// saw at least one session, as a 0-100 score.
func consistency(sessions []*Session) float64 {
	days := make(map[string]struct{})
	first, last := sessions[0].StartedAt, sessions[0].StartedAt
	for _, s := range sessions {
		days[s.StartedAt.UTC().Format(time.DateOnly)] = struct{}{}
		if s.StartedAt.Before(first) {
			first = s.StartedAt
		}
		if s.StartedAt.After(last) {
			last = s.StartedAt
		}
	}

	span := math.Ceil(last.Sub(first).Hours() / 24)
	if span < 1 {
		span = 1
	}
	return math.Min(100, float64(len(days))/span*100)
}

func recent(sessions []*Session, now time.Time) RecentPerformance {
	cutoff := now.Add(-RecentWindow)
	var rp RecentPerformance
	for _, s := range sessions {
		if s.StartedAt.Before(cutoff) {
			continue
		}
		rp.Attempts += len(s.Attempts)
		rp.Correct += s.TotalCorrect
	}
	rp.Rate = percent(rp.Correct, rp.Attempts)
	return rp
}
