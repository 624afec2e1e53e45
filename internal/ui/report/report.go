// Package report renders progress and agent results as styled terminal text.
package report

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizchat/internal/agent"
	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/spacedrep"
	"github.com/abhisek/quizchat/internal/translate"
	"github.com/abhisek/quizchat/internal/ui/components"
	"github.com/abhisek/quizchat/internal/ui/theme"
)

// Width is the rendered width of progress bars.
const Width = 60

func field(label string, value any) string {
	return theme.Label.Render(label) + theme.Body.Render(fmt.Sprint(value))
}

func rate(r float64) string {
	return theme.RateStyle(r).Render(fmt.Sprintf("%.0f%%", r))
}

func bullets(items []string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = "  • " + theme.Body.Render(it)
	}
	return out
}

func join(lines ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Stats renders the overall summary, one bar per studied subject, and the
// tracker's recommendations.
func Stats(sum progress.Summary, metrics map[progress.Subject]*progress.PerformanceMetrics, recs []string) string {
	if sum.TotalSessions == 0 {
		return theme.Hint.Render("No sessions recorded yet. Start one with `quizchat session start`.")
	}

	lines := []string{
		theme.Title.Render("Learning summary"),
		"",
		field("Sessions", sum.TotalSessions),
		field("Questions answered", sum.TotalQuestions),
		theme.Label.Render("Overall success") + rate(sum.OverallSuccessRate),
	}
	if sum.StrongestSubject != "" {
		lines = append(lines, field("Strongest subject", sum.StrongestSubject))
		lines = append(lines, field("Weakest subject", sum.WeakestSubject))
	}

	lines = append(lines, "", theme.Subtitle.Render("By subject"))
	for _, sub := range sum.SubjectsStudied {
		m := metrics[sub]
		if m == nil {
			continue
		}
		lines = append(lines, components.NewProgressBar(string(sub), m.SuccessRate, true, Width).View())
		for _, d := range progress.Difficulties {
			ds := m.Level(d)
			if ds.Attempts == 0 {
				continue
			}
			lines = append(lines, theme.Hint.Render(fmt.Sprintf("    %-13s %d/%d correct", d, ds.Correct, ds.Attempts)))
		}
	}

	if len(recs) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Recommendations"))
		lines = append(lines, bullets(recs)...)
	}
	return join(lines...)
}

// Velocity renders a subject's learning velocity.
func Velocity(v progress.LearningVelocity) string {
	if v.SessionsCompleted == 0 {
		return theme.Hint.Render(fmt.Sprintf("No %s sessions yet.", v.Subject))
	}
	trend := theme.Body.Render(fmt.Sprintf("%+.1f pts", v.ImprovementRate))
	if v.ImprovementRate > progress.ImprovingThreshold {
		trend = theme.Correct.Render(fmt.Sprintf("%+.1f pts", v.ImprovementRate))
	} else if v.ImprovementRate < 0 {
		trend = theme.Incorrect.Render(fmt.Sprintf("%+.1f pts", v.ImprovementRate))
	}
	avg := (time.Duration(v.AverageSessionMs) * time.Millisecond).Round(time.Second)

	return join(
		theme.Subtitle.Render(fmt.Sprintf("Velocity: %s", v.Subject)),
		field("Sessions completed", v.SessionsCompleted),
		theme.Label.Render("Improvement")+trend,
		field("Average session", avg),
		components.NewProgressBar("Consistency", v.ConsistencyScore, true, Width).View(),
		field("Last 7 days", fmt.Sprintf("%d/%d correct", v.RecentPerformance.Correct, v.RecentPerformance.Attempts)),
	)
}

// Recommendation renders the agent's difficulty recommendation.
func Recommendation(subject progress.Subject, rec agent.Recommendation) string {
	lines := []string{
		theme.Title.Render(fmt.Sprintf("Next up in %s: ", subject)) + theme.Highlight.Render(string(rec.NextDifficulty)),
		"",
		theme.Body.Render(rec.Reason),
		theme.Hint.Render(rec.Encouragement),
	}
	if len(rec.SuggestedTopics) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Suggested topics"))
		lines = append(lines, bullets(rec.SuggestedTopics)...)
	}
	if len(rec.ReviewTopics) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Review"))
		lines = append(lines, bullets(rec.ReviewTopics)...)
	}
	return theme.Card.Render(join(lines...))
}

// Path renders a learning path.
func Path(p agent.LearningPath) string {
	lines := []string{
		theme.Title.Render(fmt.Sprintf("Learning path: %s", p.Subject)),
		"",
		field("Current focus", p.CurrentFocus),
		field("Milestone", p.Milestone),
		theme.Label.Render("Current rate") + rate(p.CurrentRate),
		components.NewProgressBar("Progress", p.Progress, true, Width).View(),
		field("Estimated time", fmt.Sprintf("%d days", p.EstimatedDays)),
	}
	if len(p.SuggestedTopics) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Topics"))
		lines = append(lines, bullets(p.SuggestedTopics)...)
	}
	return theme.Card.Render(join(lines...))
}

// Review renders the spaced-repetition state of a subject's questions.
func Review(subject progress.Subject, states []*spacedrep.ReviewState, now time.Time) string {
	if len(states) == 0 {
		return theme.Hint.Render(fmt.Sprintf("No %s questions answered yet.", subject))
	}

	lines := []string{theme.Title.Render(fmt.Sprintf("Review schedule: %s", subject)), ""}
	for _, rs := range states {
		var status string
		switch rs.Status(now) {
		case spacedrep.ReviewOverdue:
			status = theme.Incorrect.Render(fmt.Sprintf("overdue %.1fd", rs.OverdueDays(now)))
		case spacedrep.ReviewDue:
			status = theme.Highlight.Render("due")
		default:
			status = theme.Hint.Render(fmt.Sprintf("in %dd", rs.DaysUntilReview(now)))
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s",
			theme.Label.Render(rs.QuestionID),
			theme.Body.Render(fmt.Sprintf("streak %d", rs.CorrectStreak)),
			status))
	}
	return join(lines...)
}

// Session renders a session's state.
func Session(s *progress.Session) string {
	if s == nil {
		return theme.Hint.Render("No active session.")
	}

	correct := 0
	for _, a := range s.Attempts {
		if a.Correct {
			correct++
		}
	}
	lines := []string{
		theme.Title.Render(fmt.Sprintf("Session %s", s.ID)),
		field("Subject", s.Subject),
		field("Difficulty", s.Difficulty),
		field("Answered", fmt.Sprintf("%d (%d correct)", len(s.Attempts), correct)),
	}
	if s.IsOpen() {
		lines = append(lines, field("Started", s.StartedAt.Local().Format("2006-01-02 15:04:05")))
	} else {
		lines = append(lines,
			theme.Label.Render("Success rate")+rate(s.SuccessRate),
			field("Duration", s.Duration().Round(time.Second)))
	}
	return join(lines...)
}

// Languages renders the supported language table.
func Languages(langs []translate.Language) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Supported languages"))
	b.WriteString("\n")
	for _, l := range langs {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render(l.Code))
		b.WriteString(theme.Body.Render(l.Name))
	}
	return b.String()
}
