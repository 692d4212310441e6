package cli

import (
	"log/slog"

	"go_flashcard_study/internal/config"
	"go_flashcard_study/internal/repository"

	"gorm.io/gorm"
)

// app は各コマンドが共有する設定・ロガー・DB接続
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func bootstrap() (*app, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	logger := setupLogger(cfg.Log.Level)

	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	sqlDB, err := a.db.DB()
	if err != nil {
		a.logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		a.logger.Error("Error closing database connection", slog.Any("error", err))
		return
	}
	a.logger.Info("Database connection closed.")
}
