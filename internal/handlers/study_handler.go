package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/service"
	"go_flashcard_study/internal/webutil"
)

type StudyHandler struct {
	service service.StudyService
}

func NewStudyHandler(s service.StudyService) *StudyHandler {
	return &StudyHandler{service: s}
}

// GetStudySession は ?subject= のカードを学習順に並べて返します。?optimize=true でモデルに問い合わせます。
func (h *StudyHandler) GetStudySession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetStudySession"))

	optimize, err := parseBoolQuery(r, "optimize", false)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.service.GetStudySession(r.Context(), r.URL.Query().Get("subject"), optimize)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	annotateStudyOrder(r, session)
	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// RecordAttempt は回答1回分の結果を記録し、更新後の進捗を返します。
func (h *StudyHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "RecordAttempt"))

	var req model.RecordAttemptRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid record attempt request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.RecordAttempt(r.Context(), *req.FlashcardID, *req.Correct)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	middleware.Annotate(r.Context(),
		slog.Uint64("flashcard_id", uint64(progress.FlashcardID)),
		slog.Bool("correct", *req.Correct),
		slog.Bool("progress_created", progress.Created),
	)
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

func (h *StudyHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListProgress"))

	progress, err := h.service.ListProgress(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if progress == nil {
		progress = []*model.ProgressResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
