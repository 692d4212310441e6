package cli

import (
	"log/slog"

	"go_flashcard_study/internal/repository"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the flashcards and progress tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if err := repository.Migrate(a.db); err != nil {
			a.logger.Error("Error migrating database", slog.Any("error", err))
			return err
		}
		a.logger.Info("Database migrated", slog.String("driver", a.cfg.Database.Driver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
