package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_flashcard_study/internal/config"
	"go_flashcard_study/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーターに登録するハンドラ一式
type Handlers struct {
	Flashcard *FlashcardHandler
	Study     *StudyHandler
	AI        *AIHandler
	Analytics *AnalyticsHandler
	Health    *HealthHandler
}

// NewRouter はミドルウェアとルートを組み立てます。auth.enabled の場合 /api/v1 配下に JWT 認証を掛けます。
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger, cfg.Log.RedactPaths))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth.Enabled {
			logger.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(cfg.JWT.SecretKey))
		}

		r.Route("/flashcards", func(r chi.Router) {
			r.Get("/", h.Flashcard.ListFlashcards)
			r.Post("/", h.Flashcard.CreateFlashcard)
			r.Get("/{id}", h.Flashcard.GetFlashcard)
			r.Put("/{id}", h.Flashcard.UpdateFlashcard)
			r.Patch("/{id}", h.Flashcard.UpdateFlashcard)
			r.Delete("/{id}", h.Flashcard.DeleteFlashcard)
		})

		r.Route("/study", func(r chi.Router) {
			r.Get("/session", h.Study.GetStudySession)
			r.Get("/progress", h.Study.ListProgress)
			r.Post("/progress", h.Study.RecordAttempt)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/optimize", h.AI.OptimizeOrder)
			r.Post("/hint", h.AI.Hint)
			r.Post("/explain", h.AI.Explain)
		})

		r.Get("/analytics", h.Analytics.GetAnalytics)
	})

	return r
}
