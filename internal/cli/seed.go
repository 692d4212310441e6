package cli

import (
	"context"
	"fmt"
	"log/slog"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/repository"
	"go_flashcard_study/internal/service"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample deck (cards whose front already exists are skipped)",
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

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = middleware.WithLogger(ctx, a.logger.With(slog.String("command", "seed")))

		seeder := service.NewSeedService(a.db, repository.NewGormFlashcardRepository(), repository.NewGormProgressRepository())
		inserted, err := seeder.Seed(ctx, service.SampleDeck)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d of %d sample cards\n", inserted, len(service.SampleDeck))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
