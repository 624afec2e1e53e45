package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/ui/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Long: `Show learning statistics across all subjects. With --subject, also show
the learning velocity for that subject.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		tr := a.Tracker(cmd.Context())
		var velocity *progress.LearningVelocity
		if s, _ := cmd.Flags().GetString("subject"); s != "" {
			subject, err := progress.ParseSubject(s)
			if err != nil {
				return err
			}
			v := tr.LearningVelocity(subject)
			velocity = &v
		}

		if wantJSON(cmd) {
			return printJSON(cmd, struct {
				Summary     progress.Summary                                  `json:"summary"`
				Performance map[progress.Subject]*progress.PerformanceMetrics `json:"performance"`
				Velocity    *progress.LearningVelocity                        `json:"velocity,omitempty"`
			}{tr.Summary(), tr.AllPerformanceMetrics(), velocity})
		}

		printOut(cmd, report.Stats(tr.Summary(), tr.AllPerformanceMetrics(), tr.Recommendations()))
		if velocity != nil {
			printOut(cmd, "")
			printOut(cmd, report.Velocity(*velocity))
		}
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List weak areas and study recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		tr := a.Tracker(cmd.Context())
		weak := tr.WeakAreas(threshold)
		recs := tr.RecommendationsAt(threshold)
		if wantJSON(cmd) {
			return printJSON(cmd, struct {
				WeakAreas       []progress.WeakArea `json:"weakAreas"`
				Recommendations []string            `json:"recommendations"`
			}{weak, recs})
		}

		out := cmd.OutOrStdout()
		for _, w := range weak {
			fmt.Fprintf(out, "Weak area: %s at %s level (%.0f%%)\n", w.Subject, w.Difficulty, w.SuccessRate)
		}
		for _, r := range recs {
			printOut(cmd, localize(cmd, a, r))
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the learner's progress as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("out")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := json.MarshalIndent(a.Tracker(cmd.Context()).Export(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode export: %w", err)
		}
		if path == "" || path == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported progress to %s\n", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the learner's progress with an export file",
	Long: `Replace the learner's history and metrics with the contents of an export
file. Use - to read from stdin. The file is validated before anything is
changed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		tr := a.Tracker(cmd.Context())
		if err := tr.Import(cmd.Context(), data); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions for %s\n", len(tr.SessionHistory()), tr.UserID())
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset deletes all progress for the learner; pass --yes to confirm")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		a.Reset(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "Progress cleared for %s\n", a.Config().UserID)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("subject", "s", "", "Also show learning velocity for this subject")

	recommendCmd.Flags().Float64("threshold", progress.DefaultWeakAreaThreshold, "Success rate below which an area is weak")

	exportCmd.Flags().StringP("out", "o", "", "Write to this file instead of stdout")

	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
