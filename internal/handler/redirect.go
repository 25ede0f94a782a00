package handler

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/avc-dev/redirector/internal/metrics"
	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/resolver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Redirect обрабатывает GET /{code}: резолвит код и отвечает 302 с
// Location, 404 или 500. Ровно один ответ на запрос; событие клика
// отправляется fire-and-forget и не может изменить уже принятое решение.
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	// Пустой код не уходит в резолвер: он не должен превращаться
	// в wildcard-совпадение
	if strings.TrimSpace(code) == "" {
		h.respondNotFound(w)
		return
	}

	link, err := h.resolver.Resolve(req.Context(), model.Code(code))
	switch {
	case err == nil:
	case errors.Is(err, resolver.ErrNotFound):
		h.respondNotFound(w)
		return
	default:
		// Причина только в лог, наружу — generic 500
		h.logger.Error("redirect resolution failed",
			zap.String("code", code),
			zap.Error(err),
		)
		metrics.RedirectsTotal.WithLabelValues("error").Inc()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error processing redirect"))
		return
	}

	h.recorder.Record(model.ClickEvent{
		LinkID:    link.ID,
		IPAddress: clientIP(req),
		UserAgent: req.UserAgent(),
	})

	metrics.RedirectsTotal.WithLabelValues("found").Inc()

	// Location уходит как есть, без валидации и экранирования: реестр
	// отвечает за корректность original_url при создании. http.Redirect
	// не используется сознательно — он переписывает URL и пишет HTML-тело.
	w.Header().Set("Location", link.OriginalURL)
	w.WriteHeader(http.StatusFound)
}

func (h *Handler) respondNotFound(w http.ResponseWriter) {
	metrics.RedirectsTotal.WithLabelValues("not_found").Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Short link not found"))
}

// clientIP извлекает адрес клиента с учетом прокси-заголовков
func clientIP(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx != -1 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	if realIP := req.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
