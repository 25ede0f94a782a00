package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLinkRequest(method, target, id, userID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	return withUser(req, userID)
}

func TestGetLinks_Success(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := &MockUsecase{
		ListLinksFunc: func(ctx context.Context, ownerID string) ([]model.Link, error) {
			assert.Equal(t, "user-1", ownerID)
			return []model.Link{
				{ID: "link-1", ShortCode: "abc12345", OriginalURL: "https://example.com", OwnerID: ownerID, CreatedAt: now},
				{ID: "link-2", ShortCode: "def67890", CustomAlias: "promo", OriginalURL: "https://example.org", OwnerID: ownerID, CreatedAt: now},
			}, nil
		},
	}

	h := New(&MockResolver{}, &MockRecorder{}, uc, zap.NewNop())

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/urls", nil), "user-1")

	w := httptest.NewRecorder()
	h.GetLinks(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool           `json:"success"`
		Data    []linkResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 2)
	assert.Equal(t, "http://localhost:8080/abc12345", payload.Data[0].PublicURL)
	// Алиас имеет приоритет над сгенерированным кодом
	assert.Equal(t, "http://localhost:8080/promo", payload.Data[1].PublicURL)
}

func TestGetLinks_Empty(t *testing.T) {
	uc := &MockUsecase{
		ListLinksFunc: func(ctx context.Context, ownerID string) ([]model.Link, error) {
			return nil, nil
		},
	}

	h := New(&MockResolver{}, &MockRecorder{}, uc, zap.NewNop())

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/urls", nil), "user-1")

	w := httptest.NewRecorder()
	h.GetLinks(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetLink(t *testing.T) {
	tests := []struct {
		name           string
		link           model.Link
		err            error
		expectedStatus int
	}{
		{
			name:           "Found",
			link:           model.Link{ID: "link-1", ShortCode: "abc12345", OriginalURL: "https://example.com", OwnerID: "user-1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found",
			err:            usecase.ErrLinkNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Foreign link is indistinguishable from missing",
			err:            fmt.Errorf("%w: link-1", usecase.ErrLinkNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Registry failure",
			err:            fmt.Errorf("failed to find link: connection refused"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUsecase{
				GetLinkFunc: func(ctx context.Context, id, ownerID string) (model.Link, error) {
					assert.Equal(t, "link-1", id)
					assert.Equal(t, "user-1", ownerID)
					return tt.link, tt.err
				},
			}

			h := New(&MockResolver{}, &MockRecorder{}, uc, zap.NewNop())

			req := newLinkRequest(http.MethodGet, "/api/urls/link-1", "link-1", "user-1")

			w := httptest.NewRecorder()
			h.GetLink(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.err != nil {
				assert.NotContains(t, w.Body.String(), "connection")
			}
		})
	}
}
