package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/redirector/internal/store"
	"go.uber.org/zap"
)

// DeleteLink удаляет ссылку владельца. Клики удаляются реестром каскадно.
func (u *LinkUsecase) DeleteLink(ctx context.Context, id, ownerID string) error {
	// Проверка владельца перед удалением
	if _, err := u.GetLink(ctx, id, ownerID); err != nil {
		return err
	}

	if err := u.registry.DeleteLink(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		u.logger.Error("failed to delete link",
			zap.String("id", id),
			zap.Error(err),
		)
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return nil
}
