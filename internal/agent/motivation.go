package agent

import (
	"fmt"

	"github.com/abhisek/quizchat/internal/progress"
)

// MotivationalMessage returns a short message for the learner. Recent
// improvement takes priority over absolute success rate.
func (a *Agent) MotivationalMessage(subject progress.Subject) string {
	m := a.src.PerformanceMetrics(subject)
	if m == nil {
		return fmt.Sprintf("Start your learning journey in %s today! Every question is a step forward.", subject)
	}

	v := a.src.LearningVelocity(subject)
	switch {
	case v.ImprovementRate > 15:
		return fmt.Sprintf("Amazing progress in %s! You've improved by %.0f%%. Keep it up!", subject, v.ImprovementRate)
	case v.ImprovementRate > 5:
		return fmt.Sprintf("Great improvement in %s! You're on the right track.", subject)
	case m.SuccessRate >= 80:
		return fmt.Sprintf("You're doing excellent in %s with a %.0f%% success rate!", subject, m.SuccessRate)
	case m.SuccessRate >= 60:
		return fmt.Sprintf("Solid performance in %s. A bit more practice and you'll master it!", subject)
	default:
		return fmt.Sprintf("Every expert was once a beginner. Keep practicing %s and you'll see results!", subject)
	}
}
