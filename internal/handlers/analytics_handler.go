package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/service"
	"go_flashcard_study/internal/webutil"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: s}
}

func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetAnalytics"))

	analytics, err := h.service.GetAnalytics(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, analytics, logger)
}
