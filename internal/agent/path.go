package agent

import (
	"fmt"
	"math"

	"github.com/abhisek/quizchat/internal/progress"
)

// LearningPath is a learner's current focus in a subject and how far they
// are from its milestone.
type LearningPath struct {
	Subject         progress.Subject    `json:"subject"`
	CurrentFocus    progress.Difficulty `json:"currentFocus"`
	Milestone       string              `json:"milestone"`
	CurrentRate     float64             `json:"currentRate"`
	TargetRate      float64             `json:"targetRate"`
	Progress        float64             `json:"progress"`
	EstimatedDays   int                 `json:"estimatedDaysToMastery"`
	SuggestedTopics []string            `json:"suggestedTopics"`
}

type pathStage struct {
	target float64
	days   int
}

var pathStages = map[progress.Difficulty]pathStage{
	progress.Advanced:     {target: 80, days: 30},
	progress.Intermediate: {target: 75, days: 45},
	progress.Beginner:     {target: 85, days: 60},
}

// LearningPath picks the learner's focus level: advanced once it is being
// passed, then intermediate, else beginner.
func (a *Agent) LearningPath(subject progress.Subject) LearningPath {
	focus, rate := progress.Beginner, 0.0
	if m := a.src.PerformanceMetrics(subject); m != nil {
		adv, inter := m.Level(progress.Advanced), m.Level(progress.Intermediate)
		switch {
		case adv.Attempts > 0 && adv.Rate >= HoldAtAdvanced:
			focus, rate = progress.Advanced, adv.Rate
		case inter.Attempts > 0 && inter.Rate >= 70:
			focus, rate = progress.Intermediate, inter.Rate
		default:
			rate = m.Level(progress.Beginner).Rate
		}
	}

	st := pathStages[focus]
	return LearningPath{
		Subject:         subject,
		CurrentFocus:    focus,
		Milestone:       fmt.Sprintf("Reach %.0f%% success rate at %s level", st.target, focus),
		CurrentRate:     rate,
		TargetRate:      st.target,
		Progress:        math.Min(100, rate/st.target*100),
		EstimatedDays:   st.days,
		SuggestedTopics: Topics(subject, focus),
	}
}
