package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Flashcard study backend with model-assisted study ordering",
	Long: `flashcards serves a REST API for managing flashcards and recording study attempts.
The study order is requested from a language model and falls back to a
deterministic ranking when the model is unavailable.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// サブコマンド省略時はサーバーを起動する
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yaml")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
