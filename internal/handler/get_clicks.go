package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/redirector/internal/middleware"
	"github.com/avc-dev/redirector/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetClicks обрабатывает GET /api/clicks/{id}: клики по одной ссылке
func (h *Handler) GetClicks(w http.ResponseWriter, req *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(req.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	linkID := chi.URLParam(req, "id")

	clicks, err := h.usecase.GetClicks(req.Context(), linkID, ownerID)
	if err != nil {
		if errors.Is(err, usecase.ErrLinkNotFound) {
			h.respondError(w, http.StatusNotFound, "Link not found")
			return
		}

		h.logger.Error("failed to get clicks", zap.String("link_id", linkID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondData(w, http.StatusOK, clicks)
}

type clicksForLinksRequest struct {
	LinkIDs []string `json:"urlIds"`
}

// GetClicksForLinks обрабатывает POST /api/clicks/multiple: клики по
// набору ссылок для дашборда
func (h *Handler) GetClicksForLinks(w http.ResponseWriter, req *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(req.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request clicksForLinksRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(request.LinkIDs) == 0 {
		h.respondData(w, http.StatusOK, nil)
		return
	}

	clicks, err := h.usecase.GetClicksForLinks(req.Context(), request.LinkIDs, ownerID)
	if err != nil {
		h.logger.Error("failed to get clicks for links", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondData(w, http.StatusOK, clicks)
}
