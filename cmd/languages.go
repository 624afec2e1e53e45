package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizchat/internal/translate"
	"github.com/abhisek/quizchat/internal/ui/report"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List languages available for agent messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		status, statusErr := a.TranslationStatus()
		if wantJSON(cmd) {
			return printJSON(cmd, struct {
				Languages []translate.Language `json:"languages"`
				Model     string               `json:"model,omitempty"`
			}{translate.Languages, status.Model})
		}

		printOut(cmd, report.Languages(translate.Languages))
		if statusErr != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "\nTranslation unavailable: set an LLM API key to enable it.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "\nTranslating with %s (%d languages)\n", status.Model, status.Languages)
		}
		return nil
	},
}
