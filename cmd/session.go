package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/ui/report"
)

var errNoSession = errors.New("no active session; run `quizchat session start` first")

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start, answer and end practice sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a practice session",
	Long: `Start a practice session for a subject and difficulty. An open session
left over from an earlier run is discarded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}
		difficulty, err := difficultyFlag(cmd, "difficulty")
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			id = uuid.NewString()
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := a.Tracker(cmd.Context()).StartSession(cmd.Context(), id, subject, difficulty, a.Config().Language)
		if wantJSON(cmd) {
			return printJSON(cmd, s)
		}
		printOut(cmd, report.Session(s))
		return nil
	},
}

var sessionAnswerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Record an answer in the open session",
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID, _ := cmd.Flags().GetString("question")
		if questionID == "" {
			return errors.New("--question is required")
		}
		answer, _ := cmd.Flags().GetString("answer")
		correct, _ := cmd.Flags().GetBool("correct")
		timeMs, _ := cmd.Flags().GetInt64("time-ms")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		tr := a.Tracker(ctx)
		if tr.CurrentSession() == nil {
			return errNoSession
		}
		tr.RecordAnswer(ctx, progress.Attempt{
			QuestionID:  questionID,
			Answer:      answer,
			Correct:     correct,
			TimeTakenMs: timeMs,
		})

		s := tr.CurrentSession()
		if wantJSON(cmd) {
			return printJSON(cmd, s.Attempts[len(s.Attempts)-1])
		}
		mark := "incorrect"
		if correct {
			mark = "correct"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s answer to %s (%d answered)\n", mark, questionID, len(s.Attempts))
		return nil
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the open session and update metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		s := a.Tracker(ctx).EndSession(ctx)
		if s == nil {
			return errNoSession
		}
		if wantJSON(cmd) {
			return printJSON(cmd, s)
		}
		printOut(cmd, report.Session(s))
		printOut(cmd, a.Agent(ctx).MotivationalMessage(s.Subject))
		return nil
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the open session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := a.Tracker(cmd.Context()).CurrentSession()
		if wantJSON(cmd) {
			return printJSON(cmd, s)
		}
		printOut(cmd, report.Session(s))
		return nil
	},
}

func init() {
	addSubjectFlag(sessionStartCmd)
	sessionStartCmd.Flags().StringP("difficulty", "d", string(progress.Beginner), "Difficulty: beginner, intermediate or advanced")
	sessionStartCmd.Flags().String("id", "", "Session id (default: random UUID)")

	sessionAnswerCmd.Flags().StringP("question", "q", "", "Question id")
	sessionAnswerCmd.Flags().StringP("answer", "a", "", "The learner's answer")
	sessionAnswerCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	sessionAnswerCmd.Flags().Int64("time-ms", 0, "Time taken to answer in milliseconds")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionAnswerCmd)
	sessionCmd.AddCommand(sessionEndCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
}
