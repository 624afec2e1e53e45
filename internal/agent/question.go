package agent

import "github.com/abhisek/quizchat/internal/progress"

// minFocusAttempts is the number of attempts a level needs before it can
// become the focus for question selection.
const minFocusAttempts = 5

// QuestionRecommendation describes the shape of the next question to ask.
type QuestionRecommendation struct {
	Subject    progress.Subject      `json:"subject"`
	Difficulty progress.Difficulty   `json:"difficulty"`
	Type       progress.QuestionType `json:"type"`
}

// NextQuestion picks the difficulty and type of the next question. The type
// is chosen at random to vary practice.
func (a *Agent) NextQuestion(subject progress.Subject) QuestionRecommendation {
	d := progress.Beginner
	if m := a.src.PerformanceMetrics(subject); m != nil {
		adv, inter := m.Level(progress.Advanced), m.Level(progress.Intermediate)
		switch {
		case adv.Attempts > minFocusAttempts && adv.Rate >= HoldAtAdvanced:
			d = progress.Advanced
		case inter.Attempts > minFocusAttempts && inter.Rate >= 70:
			d = progress.Intermediate
		}
	}
	return QuestionRecommendation{
		Subject:    subject,
		Difficulty: d,
		Type:       progress.QuestionTypes[a.intn(len(progress.QuestionTypes))],
	}
}
