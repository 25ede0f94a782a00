package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping обрабатывает GET /ping: проверка живости сервиса и реестра
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if err := h.usecase.Ping(req.Context()); err != nil {
		h.logger.Error("registry ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
