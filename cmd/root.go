package cmd

import (
	"github.com/abhisek/conjugo/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "conjugo",
	Short: "Spanish verb drill supply pipeline",
	Long:  "Conjugo — builds and serves fill-in-the-blank Spanish conjugation drills from a shared question bank, generating new ones with an LLM when the bank runs dry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CONJUGO_DB env var)")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CONJUGO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
