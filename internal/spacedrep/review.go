package spacedrep

import "time"

// ReviewState holds the spaced repetition state for a single question.
type ReviewState struct {
	QuestionID      string    `json:"questionId"`
	CorrectStreak   int       `json:"correctStreak"`
	LastAttemptedAt time.Time `json:"lastAttemptedAt"`
	LastCorrect     bool      `json:"lastCorrect"`
}

// NextReviewDate is when the question should be shown again. A question
// last answered incorrectly is due immediately.
func (rs *ReviewState) NextReviewDate() time.Time {
	if !rs.LastCorrect {
		return rs.LastAttemptedAt
	}
	return rs.LastAttemptedAt.Add(Interval(rs.CorrectStreak))
}

// IsDue returns true if the question is due for review (at or past the review date).
func (rs *ReviewState) IsDue(now time.Time) bool {
	return !now.Before(rs.NextReviewDate())
}

// OverdueDays returns how many days past due the question is. Returns 0 if not yet due.
func (rs *ReviewState) OverdueDays(now time.Time) float64 {
	next := rs.NextReviewDate()
	if now.Before(next) {
		return 0
	}
	return now.Sub(next).Hours() / 24.0
}

// pastGrace reports whether the question has been due for longer than half
// its interval.
func (rs *ReviewState) pastGrace(now time.Time) bool {
	if !rs.IsDue(now) {
		return false
	}
	grace := Interval(rs.CorrectStreak) / 2
	return now.After(rs.NextReviewDate().Add(grace))
}

// ReviewStatus describes a question's review status for display.
type ReviewStatus string

const (
	ReviewNotDue  ReviewStatus = "not_due"
	ReviewDue     ReviewStatus = "due"
	ReviewOverdue ReviewStatus = "overdue"
)

// Status returns the review status for display.
func (rs *ReviewState) Status(now time.Time) ReviewStatus {
	if rs.pastGrace(now) {
		return ReviewOverdue
	}
	if rs.IsDue(now) {
		return ReviewDue
	}
	return ReviewNotDue
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (rs *ReviewState) DaysUntilReview(now time.Time) int {
	if rs.IsDue(now) {
		return 0
	}
	return int(rs.NextReviewDate().Sub(now).Hours()/24.0) + 1
}
