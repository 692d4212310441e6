package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_flashcard_study/internal/middleware"
	"go_flashcard_study/internal/model"

	"github.com/go-chi/chi/v5"
)

// parseIDParam はURLパスの数値IDを取り出します。
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, model.NewAppError("INVALID_URL_PARAM", "'"+name+"' must be a positive integer.", name, model.ErrInvalidInput)
	}
	return uint(id), nil
}

// parseBoolQuery は空なら def を返します。
func parseBoolQuery(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, model.NewAppError("INVALID_QUERY_PARAM", "'"+name+"' must be a boolean.", name, model.ErrInvalidInput)
	}
	return v, nil
}

// annotateStudyOrder は学習順の決まり方 (モデルか既定順か) を完了ログに残します。
func annotateStudyOrder(r *http.Request, order *model.StudyOrderResponse) {
	attrs := []slog.Attr{
		slog.Bool("ai_optimized", order.AIOptimized),
		slog.Int("card_count", len(order.Order)),
	}
	if order.Message != "" {
		attrs = append(attrs, slog.String("fallback", order.Message))
	}
	middleware.Annotate(r.Context(), attrs...)
}
