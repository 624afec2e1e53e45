package spacedrep

import (
	"sort"
	"time"
)

// Scheduler tracks review state per question id.
type Scheduler struct {
	reviews map[string]*ReviewState
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{reviews: make(map[string]*ReviewState)}
}

// Record applies an answer to the question's schedule. A correct answer
// extends the streak; a miss resets it and makes the question due at once.
// Answers older than the last recorded one are ignored.
func (s *Scheduler) Record(questionID string, correct bool, at time.Time) {
	if questionID == "" {
		return
	}
	rs := s.reviews[questionID]
	if rs == nil {
		rs = &ReviewState{QuestionID: questionID}
		s.reviews[questionID] = rs
	} else if at.Before(rs.LastAttemptedAt) {
		return
	}

	rs.LastAttemptedAt = at
	rs.LastCorrect = correct
	if correct {
		rs.CorrectStreak++
	} else {
		rs.CorrectStreak = 0
	}
}

// Due returns the ids of questions due for review, most overdue first.
// Ties are broken by id.
func (s *Scheduler) Due(now time.Time) []string {
	type dueQuestion struct {
		id      string
		overdue float64
	}
	var due []dueQuestion

	for id, rs := range s.reviews {
		if rs.IsDue(now) {
			due = append(due, dueQuestion{id: id, overdue: rs.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

// Get returns a copy of the review state for a question, or nil if not tracked.
func (s *Scheduler) Get(questionID string) *ReviewState {
	rs := s.reviews[questionID]
	if rs == nil {
		return nil
	}
	cp := *rs
	return &cp
}

// Len returns the number of tracked questions.
func (s *Scheduler) Len() int {
	return len(s.reviews)
}
