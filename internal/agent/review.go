package agent

import (
	"sort"
	"time"

	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/spacedrep"
)

// SpacedRepetitionInterval is the wait before a question answered correctly
// correctAttempts times should be shown again.
func (a *Agent) SpacedRepetitionInterval(correctAttempts int) time.Duration {
	return spacedrep.Interval(correctAttempts)
}

// ShouldShowQuestionAgain reports whether a question is due. A question
// whose last answer was wrong is always due.
func (a *Agent) ShouldShowQuestionAgain(lastAttemptedAt time.Time, correctAttempts int, lastCorrect bool) bool {
	if !lastCorrect {
		return true
	}
	return a.now().Sub(lastAttemptedAt) >= spacedrep.Interval(correctAttempts)
}

// DueQuestions returns the ids of questions in subject that are due for
// review, most overdue first.
func (a *Agent) DueQuestions(subject progress.Subject) []string {
	return a.schedule(subject).Due(a.now())
}

// ReviewStates returns the review state of every question answered in
// subject, ordered by question id.
func (a *Agent) ReviewStates(subject progress.Subject) []*spacedrep.ReviewState {
	sched := a.schedule(subject)
	var ids []string
	for _, s := range a.src.SubjectHistory(subject) {
		for _, at := range s.Attempts {
			ids = append(ids, at.QuestionID)
		}
	}
	sort.Strings(ids)

	var out []*spacedrep.ReviewState
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		if rs := sched.Get(id); rs != nil {
			out = append(out, rs)
		}
	}
	return out
}

// schedule replays the subject's answered questions into a scheduler.
func (a *Agent) schedule(subject progress.Subject) *spacedrep.Scheduler {
	sched := spacedrep.NewScheduler()
	for _, s := range a.src.SubjectHistory(subject) {
		for _, at := range s.Attempts {
			sched.Record(at.QuestionID, at.Correct, at.Timestamp)
		}
	}
	return sched
}
