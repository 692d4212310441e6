package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_flashcard_study/internal/config"
	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/webutil"
)

// Pinger は *sql.DB が満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Health"))

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Database: "ok", Version: config.AppVersion}
	status := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		logger.Error("Database ping failed", slog.Any("error", err))
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}
	webutil.RespondWithJSON(w, status, resp, logger)
}
