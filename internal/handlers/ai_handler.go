package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/service"
	"go_flashcard_study/internal/webutil"
)

type AIHandler struct {
	study service.StudyService
	tutor service.TutorService
}

func NewAIHandler(study service.StudyService, tutor service.TutorService) *AIHandler {
	return &AIHandler{study: study, tutor: tutor}
}

// OptimizeOrder はリクエストで渡されたカードを学習順に並べます。モデルが失敗しても 200 で既定順を返します。
func (h *AIHandler) OptimizeOrder(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "OptimizeOrder"))

	var req model.OptimizeOrderRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid optimize order request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	order := h.study.OptimizeOrder(r.Context(), req.Flashcards)
	annotateStudyOrder(r, order)
	webutil.RespondWithJSON(w, http.StatusOK, order, logger)
}

func (h *AIHandler) Hint(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Hint"))

	var req model.HintRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid hint request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	hint, err := h.tutor.Hint(r.Context(), *req.Flashcard)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, hint, logger)
}

func (h *AIHandler) Explain(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Explain"))

	var req model.ExplainRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid explain request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	explanation := h.tutor.Explain(r.Context(), *req.Flashcard, req.UserAnswer)
	middleware.Annotate(r.Context(), slog.Bool("ai_generated", explanation.AIGenerated))
	webutil.RespondWithJSON(w, http.StatusOK, explanation, logger)
}
