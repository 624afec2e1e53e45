package agent

import (
	"fmt"

	"github.com/abhisek/quizchat/internal/progress"
)

// Recommendation is the agent's advice for the next practice round.
type Recommendation struct {
	NextDifficulty  progress.Difficulty `json:"nextDifficulty"`
	Reason          string              `json:"reason"`
	Encouragement   string              `json:"encouragement"`
	SuggestedTopics []string            `json:"suggestedTopics"`
	ReviewTopics    []string            `json:"reviewTopics"`
}

// NextDifficulty decides the difficulty to practice next, given the one the
// learner is at now. A learner with no metrics for subject starts at
// beginner. A level with no attempts counts as a 0% success rate.
func (a *Agent) NextDifficulty(subject progress.Subject, current progress.Difficulty) Recommendation {
	m := a.src.PerformanceMetrics(subject)
	if m == nil {
		return Recommendation{
			NextDifficulty:  progress.Beginner,
			Reason:          fmt.Sprintf("Starting with beginner level to build a strong foundation in %s.", subject),
			Encouragement:   "Welcome! Every expert was once a beginner.",
			SuggestedTopics: Topics(subject, progress.Beginner),
			ReviewTopics:    []string{},
		}
	}

	rate := m.Level(current).Rate
	next, reason := current, ""
	switch {
	case current == progress.Beginner:
		switch {
		case rate >= PromoteFromBeginner:
			next = progress.Intermediate
			reason = fmt.Sprintf("Excellent work! You scored %.0f%% at beginner level. Ready for intermediate challenges.", rate)
		case rate < DemoteBelow:
			reason = fmt.Sprintf("Keep practicing the fundamentals. Your beginner success rate is %.0f%%.", rate)
		default:
			reason = fmt.Sprintf("Good progress at beginner level (%.0f%%). Reach %.0f%% to unlock intermediate.", rate, PromoteFromBeginner)
		}
	case current == progress.Intermediate:
		switch {
		case rate >= PromoteFromIntermediate:
			next = progress.Advanced
			reason = fmt.Sprintf("Great job! You scored %.0f%% at intermediate level. Time for advanced questions.", rate)
		case rate < DemoteBelow:
			next = progress.Beginner
			reason = fmt.Sprintf("Let's strengthen the basics. Moving back to beginner to reinforce core concepts (%.0f%%).", rate)
		default:
			reason = fmt.Sprintf("Solid work at intermediate level (%.0f%%). Reach %.0f%% to unlock advanced.", rate, PromoteFromIntermediate)
		}
	default:
		switch {
		case rate >= HoldAtAdvanced:
			reason = fmt.Sprintf("Outstanding! You have mastered advanced %s with %.0f%% success.", subject, rate)
		case rate < DemoteBelow:
			next = progress.Intermediate
			reason = fmt.Sprintf("Advanced questions are tough. Moving to intermediate to consolidate (%.0f%%).", rate)
		default:
			reason = fmt.Sprintf("Good effort at advanced level (%.0f%%). Keep pushing to reach %.0f%%.", rate, HoldAtAdvanced)
		}
	}

	return Recommendation{
		NextDifficulty:  next,
		Reason:          reason,
		Encouragement:   Encouragement(rate),
		SuggestedTopics: Topics(subject, next),
		ReviewTopics:    a.reviewTopics(subject),
	}
}

// Encouragement returns a short message for a success rate band.
func Encouragement(rate float64) string {
	switch {
	case rate >= 90:
		return "Outstanding! You're a true expert!"
	case rate >= 80:
		return "Excellent work! You're making great progress!"
	case rate >= 70:
		return "Good job! Keep up the steady effort!"
	case rate >= 60:
		return "Keep going! You're getting better every day!"
	case rate >= 50:
		return "Don't give up! Every mistake is a chance to learn!"
	default:
		return "Take your time. Learning is a journey, not a race!"
	}
}

func (a *Agent) reviewTopics(subject progress.Subject) []string {
	out := []string{}
	seen := make(map[progress.Difficulty]bool)
	for _, w := range a.src.WeakAreas(progress.DefaultWeakAreaThreshold) {
		if w.Subject != subject || seen[w.Difficulty] {
			continue
		}
		seen[w.Difficulty] = true
		out = append(out, fmt.Sprintf("Review %s level concepts", w.Difficulty))
	}
	return out
}
