package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/redirector/internal/middleware"
	"github.com/avc-dev/redirector/internal/usecase"
	"go.uber.org/zap"
)

type createLinkRequest struct {
	Title       string `json:"title"`
	OriginalURL string `json:"longUrl"`
	CustomAlias string `json:"customUrl"`
}

type linkResponse struct {
	ID          string `json:"id"`
	ShortCode   string `json:"short_url"`
	CustomAlias string `json:"custom_url,omitempty"`
	OriginalURL string `json:"original_url"`
	Title       string `json:"title,omitempty"`
	OwnerID     string `json:"user_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	PublicURL   string `json:"public_url"`
}

// CreateLink обрабатывает POST /api/urls
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(req.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request createLinkRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode create link request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, err := h.usecase.CreateLink(req.Context(), request.OriginalURL, request.Title, request.CustomAlias, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidURL), errors.Is(err, usecase.ErrInvalidAlias):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrAliasTaken):
			h.respondError(w, http.StatusConflict, "Custom alias already taken")
		default:
			h.logger.Error("failed to create link", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.respondData(w, http.StatusCreated, h.toLinkResponse(link))
}
