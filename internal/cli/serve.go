package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_flashcard_study/internal/ai"
	"go_flashcard_study/internal/config"
	"go_flashcard_study/internal/handlers"
	"go_flashcard_study/internal/repository"
	"go_flashcard_study/internal/service"
	"go_flashcard_study/internal/study"

	"github.com/spf13/cobra"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", true, "run schema migration before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()
	logger := a.logger
	cfg := a.cfg

	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	if migrateOnStart {
		if err := repository.Migrate(a.db); err != nil {
			logger.Error("Error migrating database", slog.Any("error", err))
			return err
		}
	}

	sqlDB, err := a.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	// Dependency Injection
	cardRepo := repository.NewGormFlashcardRepository()
	progRepo := repository.NewGormProgressRepository()

	completer, err := ai.NewGeminiClient(ctx, cfg.AI, nil)
	if err != nil {
		logger.Error("Error initializing language model client", slog.Any("error", err))
		return err
	}
	requester := study.NewRequester(completer, cfg.AI.OrderMaxTokens, cfg.App.FrontMaxLen)
	orchestrator := study.NewOrchestrator(requester, cfg.AI.Timeout)

	flashcardService := service.NewFlashcardService(a.db, cardRepo, progRepo)
	studyService := service.NewStudyService(a.db, cardRepo, progRepo, orchestrator)
	tutorService := service.NewTutorService(completer, cfg.AI)
	analyticsService := service.NewAnalyticsService(a.db, cardRepo)

	router := handlers.NewRouter(cfg, logger, handlers.Handlers{
		Flashcard: handlers.NewFlashcardHandler(flashcardService),
		Study:     handlers.NewStudyHandler(studyService),
		AI:        handlers.NewAIHandler(studyService, tutorService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Health:    handlers.NewHealthHandler(sqlDB),
	})

	server := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      65 * time.Second, // ルーターの Timeout(60s) より長く
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}

	fmt.Fprintln(os.Stderr, "Server exiting")
	return nil
}
