package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/service"
	"go_flashcard_study/internal/webutil"
)

type FlashcardHandler struct {
	service service.FlashcardService
}

func NewFlashcardHandler(s service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{service: s}
}

// ListFlashcards は ?subject= と ?search= で絞り込んだカード一覧を返します。
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListFlashcards"))

	filter := model.FlashcardFilter{
		Subject: r.URL.Query().Get("subject"),
		Search:  r.URL.Query().Get("search"),
	}

	cards, err := h.service.ListFlashcards(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if cards == nil {
		cards = []*model.FlashcardResponse{}
	}
	logger.Info("Flashcards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

func (h *FlashcardHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateFlashcard"))

	var req model.CreateFlashcardRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid create flashcard request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.CreateFlashcard(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Flashcard created successfully", slog.Uint64("flashcard_id", uint64(card.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

func (h *FlashcardHandler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetFlashcard"))

	id, err := parseIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.GetFlashcard(r.Context(), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

func (h *FlashcardHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateFlashcard"))

	id, err := parseIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateFlashcardRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid update flashcard request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.UpdateFlashcard(r.Context(), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Flashcard updated successfully", slog.Uint64("flashcard_id", uint64(id)))
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteFlashcard"))

	id, err := parseIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteFlashcard(r.Context(), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Flashcard deleted successfully", slog.Uint64("flashcard_id", uint64(id)))
	w.WriteHeader(http.StatusNoContent)
}
