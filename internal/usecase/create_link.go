package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/store"
	"go.uber.org/zap"
)

const maxAliasLength = 64

// CreateLink валидирует вход и создает ссылку через сервис.
// Валидация URL происходит здесь, при создании: хендлер редиректа
// потом доверяет original_url как есть.
func (u *LinkUsecase) CreateLink(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error) {
	if err := validateOriginalURL(originalURL); err != nil {
		return model.Link{}, err
	}
	if err := validateAlias(customAlias); err != nil {
		return model.Link{}, err
	}

	link, err := u.service.CreateLink(ctx, originalURL, title, customAlias, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			u.logger.Debug("alias already taken",
				zap.String("alias", customAlias),
			)
			return model.Link{}, fmt.Errorf("%w: %w", ErrAliasTaken, err)
		}

		u.logger.Error("failed to create link",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return model.Link{}, fmt.Errorf("failed to create link: %w", err)
	}

	return link, nil
}

func validateOriginalURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return nil
}

// validateAlias отклоняет алиасы, которые не могут быть сегментом пути
func validateAlias(alias string) error {
	if alias == "" {
		return nil
	}
	if len(alias) > maxAliasLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAlias, maxAliasLength)
	}
	if strings.ContainsAny(alias, "/?#%") {
		return fmt.Errorf("%w: contains reserved characters", ErrInvalidAlias)
	}

	return nil
}
