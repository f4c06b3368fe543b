package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/brainbytes/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "brainbytes",
	Short: "AI tutoring chat for math, science and history",
	Long: "BrainBytes answers study questions, recognises follow-ups and suggests what to ask next.\n" +
		"Run without a subcommand to open the terminal chat.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BRAINBYTES_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: ./config.yaml)")
	rootCmd.Flags().StringP("user", "u", "", "User id for conversation context in the chat UI (default: anonymous)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BRAINBYTES_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
