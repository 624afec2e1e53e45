package progress

import "fmt"

// DefaultWeakAreaThreshold is the success rate below which a subject or
// level is reported as a weak area.
const DefaultWeakAreaThreshold = 70.0

// ImprovingThreshold is the improvement rate above which a subject earns a
// congratulatory recommendation.
const ImprovingThreshold = 10.0

// reviewSuggestions are attached to every weak area.
var reviewSuggestions = []string{
	"Review fundamental concepts",
	"Practice more questions at this level",
	"Use explanation mode for questions you miss",
}

// WeakArea is a subject and difficulty whose success rate is below threshold.
type WeakArea struct {
	Subject     Subject    `json:"subject"`
	Difficulty  Difficulty `json:"difficulty"`
	SuccessRate float64    `json:"successRate"`
	Suggestions []string   `json:"suggestedActions"`
}

// WeakAreas reports weak areas across every studied subject. A subject whose
// overall rate is below threshold yields a beginner entry; each attempted
// level below threshold yields its own entry as well.
func (t *Tracker) WeakAreas(threshold float64) []WeakArea {
	var out []WeakArea
	for _, sub := range Subjects {
		m, ok := t.performance[sub]
		if !ok {
			continue
		}
		if m.SuccessRate < threshold {
			out = append(out, newWeakArea(sub, Beginner, m.Level(Beginner).Rate))
		}
		for _, d := range Difficulties {
			ds := m.Level(d)
			if ds.Attempts > 0 && ds.Rate < threshold {
				out = append(out, newWeakArea(sub, d, ds.Rate))
			}
		}
	}
	return out
}

func newWeakArea(sub Subject, d Difficulty, rate float64) WeakArea {
	return WeakArea{
		Subject:     sub,
		Difficulty:  d,
		SuccessRate: rate,
		Suggestions: append([]string(nil), reviewSuggestions...),
	}
}

// Recommendations returns human-readable study advice using the default
// weak area threshold.
func (t *Tracker) Recommendations() []string {
	return t.RecommendationsAt(DefaultWeakAreaThreshold)
}

// RecommendationsAt is Recommendations with a caller-chosen weak area
// threshold.
func (t *Tracker) RecommendationsAt(threshold float64) []string {
	weak := t.WeakAreas(threshold)
	if len(weak) == 0 {
		return []string{"Great job! You're performing well across all subjects. Keep up the good work!"}
	}

	recs := make([]string, 0, len(weak))
	for _, w := range weak {
		recs = append(recs, fmt.Sprintf("Focus on %s at %s level (current success rate: %.0f%%)",
			w.Subject, w.Difficulty, w.SuccessRate))
	}
	for _, sub := range Subjects {
		if _, ok := t.performance[sub]; !ok {
			continue
		}
		if t.LearningVelocity(sub).ImprovementRate > ImprovingThreshold {
			recs = append(recs, fmt.Sprintf("You're improving rapidly in %s! Consider trying harder questions.", sub))
		}
	}
	return recs
}
