package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/redirector/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Lookup обрабатывает GET /api/lookup/{code}: публичный JSON-резолвинг
// для страницы редиректа SPA и для HTTP-резолверов
func (h *Handler) Lookup(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")
	if code == "" {
		h.respondError(w, http.StatusNotFound, "Short link not found")
		return
	}

	link, err := h.usecase.Lookup(req.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrLinkNotFound) {
			h.respondError(w, http.StatusNotFound, "Short link not found")
			return
		}

		h.logger.Error("lookup failed", zap.String("code", code), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondData(w, http.StatusOK, link)
}
