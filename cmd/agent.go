package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizchat/internal/app"
	"github.com/abhisek/quizchat/internal/translate"
	"github.com/abhisek/quizchat/internal/ui/report"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Recommend the difficulty to practice next",
	Long: `Recommend the difficulty to practice next. The current level defaults to
the difficulty of the learner's latest session in the subject.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		current := currentDifficulty(a.Tracker(ctx), subject)
		if cmd.Flags().Changed("current") {
			if current, err = difficultyFlag(cmd, "current"); err != nil {
				return err
			}
		}

		rec := a.Agent(ctx).LocalizedRecommendation(ctx, subject, current, a.Config().Language)
		if wantJSON(cmd) {
			return printJSON(cmd, rec)
		}
		printOut(cmd, report.Recommendation(subject, rec))
		return nil
	},
}

var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Suggest the difficulty and type of the next question",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		q := a.Agent(cmd.Context()).NextQuestion(subject)
		if wantJSON(cmd) {
			return printJSON(cmd, q)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Next %s question: %s, %s\n", q.Subject, q.Difficulty, q.Type)
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the learning path for a subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p := a.Agent(cmd.Context()).LearningPath(subject)
		if wantJSON(cmd) {
			return printJSON(cmd, p)
		}
		printOut(cmd, report.Path(p))
		return nil
	},
}

var motivateCmd = &cobra.Command{
	Use:   "motivate",
	Short: "Print a motivational message for a subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		msg := a.Agent(cmd.Context()).MotivationalMessage(subject)
		printOut(cmd, localize(cmd, a, msg))
		return nil
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show questions due for spaced-repetition review",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}
		dueOnly, _ := cmd.Flags().GetBool("due")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ag := a.Agent(cmd.Context())
		if dueOnly {
			due := ag.DueQuestions(subject)
			if wantJSON(cmd) {
				return printJSON(cmd, due)
			}
			if len(due) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to review in %s.\n", subject)
				return nil
			}
			for _, id := range due {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		}

		states := ag.ReviewStates(subject)
		if wantJSON(cmd) {
			return printJSON(cmd, states)
		}
		printOut(cmd, report.Review(subject, states, a.Now()))
		return nil
	},
}

// localize translates text into the configured language, falling back to
// the English text when translation is unavailable or fails.
func localize(cmd *cobra.Command, a *app.App, text string) string {
	lang := a.Config().Language
	tr := a.Translator()
	if tr == nil || lang == "" || lang == translate.English {
		return text
	}
	out, err := tr.Translate(cmd.Context(), text, translate.English, lang)
	if err != nil {
		a.Logger().Warn("translation failed; using English", zap.String("language", lang), zap.Error(err))
		return text
	}
	return out
}

func init() {
	addSubjectFlag(nextCmd)
	nextCmd.Flags().StringP("current", "c", "", "Current difficulty (default: latest session's difficulty)")

	addSubjectFlag(questionCmd)
	addSubjectFlag(pathCmd)
	addSubjectFlag(motivateCmd)

	addSubjectFlag(reviewCmd)
	reviewCmd.Flags().Bool("due", false, "List only the ids of questions due now, most overdue first")
}
