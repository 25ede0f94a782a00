package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/avc-dev/redirector/internal/config"
	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		BaseURL: config.URLPrefix("http://localhost:8080"),
	}
}

func TestCreateLink_Validation(t *testing.T) {
	tests := []struct {
		name        string
		originalURL string
		customAlias string
		expectedErr error
	}{
		{
			name:        "Valid without alias",
			originalURL: "https://example.com/page?q=1",
		},
		{
			name:        "Valid with alias",
			originalURL: "http://example.com",
			customAlias: "promo",
		},
		{
			name:        "Empty URL",
			originalURL: "",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Unsupported scheme",
			originalURL: "ftp://example.com/file",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Missing host",
			originalURL: "https://",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Relative path",
			originalURL: "/just/a/path",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Alias with slash",
			originalURL: "https://example.com",
			customAlias: "a/b",
			expectedErr: ErrInvalidAlias,
		},
		{
			name:        "Alias with percent",
			originalURL: "https://example.com",
			customAlias: "pro%20mo",
			expectedErr: ErrInvalidAlias,
		},
		{
			name:        "Alias too long",
			originalURL: "https://example.com",
			customAlias: strings.Repeat("a", 65),
			expectedErr: ErrInvalidAlias,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &mockCreator{
				CreateLinkFunc: func(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error) {
					return model.Link{ID: "link-1", ShortCode: "abc12345", CustomAlias: customAlias, OriginalURL: originalURL}, nil
				},
			}

			u := NewLinkUsecase(&mockRegistry{}, creator, testConfig(), zap.NewNop())

			link, err := u.CreateLink(context.Background(), tt.originalURL, "Title", tt.customAlias, "user-1")
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.originalURL, link.OriginalURL)
		})
	}
}

func TestCreateLink_AliasTaken(t *testing.T) {
	creator := &mockCreator{
		CreateLinkFunc: func(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error) {
			return model.Link{}, fmt.Errorf("alias %s: %w", customAlias, store.ErrAlreadyExists)
		},
	}

	u := NewLinkUsecase(&mockRegistry{}, creator, testConfig(), zap.NewNop())

	_, err := u.CreateLink(context.Background(), "https://example.com", "", "taken", "user-1")
	assert.ErrorIs(t, err, ErrAliasTaken)
}

func TestCreateLink_RegistryFailure(t *testing.T) {
	creator := &mockCreator{
		CreateLinkFunc: func(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error) {
			return model.Link{}, fmt.Errorf("connection refused")
		},
	}

	u := NewLinkUsecase(&mockRegistry{}, creator, testConfig(), zap.NewNop())

	_, err := u.CreateLink(context.Background(), "https://example.com", "", "", "user-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAliasTaken)
}

func TestPublicURL(t *testing.T) {
	u := NewLinkUsecase(&mockRegistry{}, &mockCreator{}, testConfig(), zap.NewNop())

	assert.Equal(t, "http://localhost:8080/abc12345", u.PublicURL(model.Link{ShortCode: "abc12345"}))
	// Алиас имеет приоритет
	assert.Equal(t, "http://localhost:8080/promo", u.PublicURL(model.Link{ShortCode: "abc12345", CustomAlias: "promo"}))
}
