package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/redirector/internal/model"
	"go.uber.org/zap"
)

// GetClicks возвращает события кликов по ссылке владельца
func (u *LinkUsecase) GetClicks(ctx context.Context, linkID, ownerID string) ([]model.ClickEvent, error) {
	if _, err := u.GetLink(ctx, linkID, ownerID); err != nil {
		return nil, err
	}

	clicks, err := u.registry.ListClicksByLink(ctx, linkID)
	if err != nil {
		u.logger.Error("failed to get clicks",
			zap.String("link_id", linkID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get clicks: %w", err)
	}

	return clicks, nil
}

// GetClicksForLinks возвращает клики по набору ссылок. Чужие и
// несуществующие ID молча пропускаются: дашборд запрашивает клики
// пачкой по всем своим ссылкам.
func (u *LinkUsecase) GetClicksForLinks(ctx context.Context, linkIDs []string, ownerID string) ([]model.ClickEvent, error) {
	var owned []string
	for _, id := range linkIDs {
		if _, err := u.GetLink(ctx, id, ownerID); err == nil {
			owned = append(owned, id)
		}
	}

	if len(owned) == 0 {
		return nil, nil
	}

	clicks, err := u.registry.ListClicksByLinks(ctx, owned)
	if err != nil {
		u.logger.Error("failed to get clicks for links",
			zap.Int("link_count", len(owned)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get clicks for links: %w", err)
	}

	return clicks, nil
}
