package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/store"
	"go.uber.org/zap"
)

// Lookup возвращает ссылку по короткому коду или алиасу.
// Публичная операция: используется страницей редиректа SPA и
// HTTP-резолверами, для которых этот сервис является upstream.
func (u *LinkUsecase) Lookup(ctx context.Context, code string) (model.Link, error) {
	link, err := u.registry.FindByCodeOrAlias(ctx, model.Code(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Link{}, fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		u.logger.Error("failed to look up link",
			zap.String("code", code),
			zap.Error(err),
		)
		return model.Link{}, fmt.Errorf("failed to look up link: %w", err)
	}

	return link, nil
}

// GetLink возвращает ссылку по ID с проверкой владельца. Чужая ссылка
// неотличима от несуществующей.
func (u *LinkUsecase) GetLink(ctx context.Context, id, ownerID string) (model.Link, error) {
	link, err := u.registry.GetLinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Link{}, fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		u.logger.Error("failed to get link",
			zap.String("id", id),
			zap.Error(err),
		)
		return model.Link{}, fmt.Errorf("failed to get link: %w", err)
	}
	if link.OwnerID != ownerID {
		return model.Link{}, ErrLinkNotFound
	}

	return link, nil
}

func (u *LinkUsecase) ListLinks(ctx context.Context, ownerID string) ([]model.Link, error) {
	links, err := u.registry.ListLinksByOwner(ctx, ownerID)
	if err != nil {
		u.logger.Error("failed to list links",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}
