package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/avc-dev/redirector/internal/middleware"
	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) toLinkResponse(link model.Link) linkResponse {
	return linkResponse{
		ID:          link.ID,
		ShortCode:   link.ShortCode,
		CustomAlias: link.CustomAlias,
		OriginalURL: link.OriginalURL,
		Title:       link.Title,
		OwnerID:     link.OwnerID,
		CreatedAt:   link.CreatedAt.Format(time.RFC3339),
		PublicURL:   h.usecase.PublicURL(link),
	}
}

// GetLinks обрабатывает GET /api/urls: все ссылки владельца
func (h *Handler) GetLinks(w http.ResponseWriter, req *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(req.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	links, err := h.usecase.ListLinks(req.Context(), ownerID)
	if err != nil {
		h.logger.Error("failed to list links", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses := make([]linkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, h.toLinkResponse(link))
	}

	h.respondData(w, http.StatusOK, responses)
}

// GetLink обрабатывает GET /api/urls/{id}
func (h *Handler) GetLink(w http.ResponseWriter, req *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(req.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := chi.URLParam(req, "id")

	link, err := h.usecase.GetLink(req.Context(), id, ownerID)
	if err != nil {
		if errors.Is(err, usecase.ErrLinkNotFound) {
			h.respondError(w, http.StatusNotFound, "Link not found")
			return
		}

		h.logger.Error("failed to get link", zap.String("id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondData(w, http.StatusOK, h.toLinkResponse(link))
}
