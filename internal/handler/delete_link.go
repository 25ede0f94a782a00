package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/redirector/internal/middleware"
	"github.com/avc-dev/redirector/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DeleteLink обрабатывает DELETE /api/urls/{id}
func (h *Handler) DeleteLink(w http.ResponseWriter, req *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(req.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := chi.URLParam(req, "id")

	if err := h.usecase.DeleteLink(req.Context(), id, ownerID); err != nil {
		if errors.Is(err, usecase.ErrLinkNotFound) {
			h.respondError(w, http.StatusNotFound, "Link not found")
			return
		}

		h.logger.Error("failed to delete link", zap.String("id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondData(w, http.StatusOK, nil)
}
