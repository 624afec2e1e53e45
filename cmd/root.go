package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizchat/internal/app"
	"github.com/abhisek/quizchat/internal/config"
	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/translate"
)

var rootCmd = &cobra.Command{
	Use:   "quizchat",
	Short: "Adaptive practice tracker for quiz learners",
	Long: `quizchat records practice sessions in mathematics, finance and agriculture,
tracks performance per difficulty, and recommends what to practice next.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides QUIZCHAT_DB env var)")
	pf.String("user", "", "Learner id (overrides QUIZCHAT_USER_ID)")
	pf.String("lang", "", "Language code for agent messages (overrides QUIZCHAT_LANG)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides QUIZCHAT_LOG_LEVEL)")
	pf.Bool("ephemeral", false, "Keep all state in memory for this run")
	pf.Bool("json", false, "Print JSON instead of a styled report")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(questionCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(motivateCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		cfg.UserID = u
	}
	if l, _ := cmd.Flags().GetString("lang"); l != "" {
		if !translate.Supported(l) {
			return config.Config{}, fmt.Errorf("--lang: %w: %q", translate.ErrUnsupportedLanguage, l)
		}
		cfg.Language = l
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// openApp builds the application for one command invocation. Callers must
// Close it.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")
	return app.New(cmd.Context(), app.Options{Config: cfg, Ephemeral: ephemeral})
}

func subjectFlag(cmd *cobra.Command) (progress.Subject, error) {
	s, _ := cmd.Flags().GetString("subject")
	return progress.ParseSubject(s)
}

func difficultyFlag(cmd *cobra.Command, name string) (progress.Difficulty, error) {
	d, _ := cmd.Flags().GetString(name)
	return progress.ParseDifficulty(d)
}

func addSubjectFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("subject", "s", string(progress.SubjectMathematics), "Subject: mathematics, finance or agriculture")
}

func wantJSON(cmd *cobra.Command) bool {
	j, _ := cmd.Flags().GetBool("json")
	return j
}

// printOut writes a rendered report, dropping styling when stdout is not a
// terminal.
func printOut(cmd *cobra.Command, s string) {
	w := cmd.OutOrStdout()
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(f.Fd()) {
		s = ansi.Strip(s)
	}
	fmt.Fprintln(w, s)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// currentDifficulty is the level of the learner's latest session in
// subject, or beginner when they have none.
func currentDifficulty(tr *progress.Tracker, subject progress.Subject) progress.Difficulty {
	history := tr.SubjectHistory(subject)
	if len(history) == 0 {
		return progress.Beginner
	}
	return history[len(history)-1].Difficulty
}
