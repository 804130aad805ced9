package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docprobe/docprobe/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "docprobe",
	Short: "Probe how well a document supports question answering",
	Long: "Docprobe generates ten questions from a document, answers them with an LLM,\n" +
		"scores question/document similarity with embeddings, and has the model grade\n" +
		"its own Q&A pairs.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// API keys commonly live in a local .env; a missing file is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to the request-log SQLite file (overrides DOCPROBE_DB)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the request-log path using --db (highest priority),
// then DOCPROBE_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
