package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// envelope — формат JSON-ответов, который парсит фронтенд
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondData(w http.ResponseWriter, status int, data interface{}) {
	h.writeJSON(w, status, envelope{Success: true, Data: data})
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, envelope{Success: false, Message: message})
}
