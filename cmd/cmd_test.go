package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizchat/internal/agent"
	"github.com/abhisek/quizchat/internal/progress"
)

// isolate clears configuration the host environment could leak in.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{
		"QUIZCHAT_DB", "QUIZCHAT_USER_ID", "QUIZCHAT_LANG", "QUIZCHAT_LOG_FILE",
		"QUIZCHAT_ANTHROPIC_API_KEY", "QUIZCHAT_OPENAI_API_KEY",
		"QUIZCHAT_OPENROUTER_API_KEY", "QUIZCHAT_GEMINI_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("QUIZCHAT_LOG_LEVEL", "error")
	t.Setenv("QUIZCHAT_LLM_PROVIDER", "anthropic")
	return filepath.Join(t.TempDir(), "quizchat.db")
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, "quizchat %s", strings.Join(args, " "))
	return out
}

func TestSessionFlow(t *testing.T) {
	db := isolate(t)

	out := mustExecute(t, "--db", db, "session", "start", "--subject", "mathematics", "--id", "s-1")
	assert.Contains(t, out, "Session s-1")

	for i := 1; i <= 9; i++ {
		mustExecute(t, "--db", db, "session", "answer", "-q", fmt.Sprintf("q%d", i), "--correct")
	}
	out = mustExecute(t, "--db", db, "session", "answer", "-q", "q10")
	assert.Contains(t, out, "Recorded incorrect answer to q10 (10 answered)")

	out = mustExecute(t, "--db", db, "session", "status")
	assert.Contains(t, out, "10 (9 correct)")

	out = mustExecute(t, "--db", db, "session", "end")
	assert.Contains(t, out, "90%")

	out = mustExecute(t, "--db", db, "next", "-s", "mathematics")
	assert.Contains(t, out, "Next up in mathematics: intermediate")

	out = mustExecute(t, "--db", db, "review", "-s", "mathematics", "--due")
	assert.Equal(t, "q10\n", out)

	out = mustExecute(t, "--db", db, "stats", "-s", "mathematics")
	assert.Contains(t, out, "Learning summary")
	assert.Contains(t, out, "Velocity: mathematics")
}

func TestExportResetImport(t *testing.T) {
	db := isolate(t)
	exported := filepath.Join(t.TempDir(), "progress.json")

	mustExecute(t, "--db", db, "session", "start", "-s", "finance", "-d", "intermediate")
	mustExecute(t, "--db", db, "session", "answer", "-q", "f1", "--correct")
	mustExecute(t, "--db", db, "session", "end")

	out := mustExecute(t, "--db", db, "export", "-o", exported)
	assert.Contains(t, out, exported)

	_, err := execute(t, "--db", db, "reset")
	require.Error(t, err)

	mustExecute(t, "--db", db, "reset", "--yes")
	assert.Contains(t, mustExecute(t, "--db", db, "stats"), "No sessions recorded yet")

	out = mustExecute(t, "--db", db, "import", exported)
	assert.Contains(t, out, "Imported 1 sessions for default")

	var stats struct {
		Summary progress.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "--db", db, "--json", "stats")), &stats))
	assert.Equal(t, 1, stats.Summary.TotalSessions)
	assert.Equal(t, []progress.Subject{progress.SubjectFinance}, stats.Summary.SubjectsStudied)
}

func TestUsersAreSeparate(t *testing.T) {
	db := isolate(t)

	mustExecute(t, "--db", db, "--user", "alice", "session", "start")
	mustExecute(t, "--db", db, "--user", "alice", "session", "end")

	assert.Contains(t, mustExecute(t, "--db", db, "--user", "bob", "stats"), "No sessions recorded yet")
	assert.NotContains(t, mustExecute(t, "--db", db, "--user", "alice", "stats"), "No sessions recorded yet")
}

func TestNext_NewUserJSON(t *testing.T) {
	isolate(t)

	out := mustExecute(t, "--ephemeral", "--json", "next", "-s", "agriculture")
	var rec agent.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, progress.Beginner, rec.NextDifficulty)
	assert.True(t, strings.HasPrefix(rec.Reason, "Starting with beginner"))
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"answer without session", []string{"session", "answer", "-q", "q1"}, "no active session"},
		{"answer without question", []string{"session", "answer"}, "--question is required"},
		{"end without session", []string{"session", "end"}, "no active session"},
		{"unknown subject", []string{"path", "-s", "history"}, `unknown subject "history"`},
		{"unknown difficulty", []string{"session", "start", "-d", "expert"}, `unknown difficulty "expert"`},
		{"unsupported language", []string{"--lang", "fr", "motivate"}, "unsupported language"},
		{"import needs a file", []string{"import"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := execute(t, append([]string{"--ephemeral"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMiscCommands(t *testing.T) {
	isolate(t)

	assert.Contains(t, mustExecute(t, "version"), "quizchat")

	out := mustExecute(t, "--ephemeral", "languages")
	assert.Contains(t, out, "Hindi")
	assert.Contains(t, out, "Translation unavailable")

	out = mustExecute(t, "--ephemeral", "motivate", "-s", "finance")
	assert.Contains(t, out, "Start your learning journey in finance")

	out = mustExecute(t, "--ephemeral", "question", "-s", "finance")
	assert.Contains(t, out, "Next finance question: beginner")

	out = mustExecute(t, "--ephemeral", "path", "-s", "finance")
	assert.Contains(t, out, "Learning path: finance")

	out = mustExecute(t, "--ephemeral", "recommend")
	assert.Contains(t, out, "Great job!")
}
