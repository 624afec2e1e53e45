package progress

import (
	"math"
	"time"
)

// Attempt is one answer to one question within a session.
type Attempt struct {
	QuestionID    string    `json:"questionId"`
	Answer        string    `json:"userAnswer"`
	Correct       bool      `json:"isCorrect"`
	TimeTakenMs   int64     `json:"timeTaken"`
	AttemptNumber int       `json:"attemptNumber"`
	Timestamp     time.Time `json:"timestamp"`
}

// Session is one practice interval for one user, subject and difficulty.
type Session struct {
	ID           string     `json:"sessionId"`
	UserID       string     `json:"userId"`
	Subject      Subject    `json:"subject"`
	Difficulty   Difficulty `json:"difficulty"`
	StartedAt    time.Time  `json:"startedAt"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	Attempts     []Attempt  `json:"attempts"`
	TotalCorrect int        `json:"totalCorrect"`
	SuccessRate  float64    `json:"successRate"`
	DurationMs   int64      `json:"duration"`
	Language     string     `json:"language"`
}

// IsOpen reports whether the session has not been ended yet.
func (s *Session) IsOpen() bool {
	return s.EndedAt == nil
}

// Duration returns the session length.
func (s *Session) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// TotalTime sums the time taken across all attempts.
func (s *Session) TotalTime() int64 {
	var total int64
	for _, a := range s.Attempts {
		total += a.TimeTakenMs
	}
	return total
}

// close finalizes the session at now.
func (s *Session) close(now time.Time) {
	correct := 0
	for _, a := range s.Attempts {
		if a.Correct {
			correct++
		}
	}
	s.TotalCorrect = correct
	s.SuccessRate = sessionRate(correct, len(s.Attempts))
	s.DurationMs = now.Sub(s.StartedAt).Milliseconds()
	ended := now
	s.EndedAt = &ended
}

// sessionRate is the whole-number success rate stored on a closed session.
func sessionRate(correct, total int) float64 {
	return math.Round(percent(correct, total))
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Attempts = append([]Attempt(nil), s.Attempts...)
	if c.Attempts == nil {
		c.Attempts = []Attempt{}
	}
	if s.EndedAt != nil {
		t := *s.EndedAt
		c.EndedAt = &t
	}
	return &c
}
