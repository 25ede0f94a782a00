package registry

import (
	"context"
	"fmt"

	"github.com/avc-dev/redirector/internal/model"
)

// AppendClick записывает одно событие клика. События неизменяемы после
// записи; реестр их никогда не обновляет и не удаляет.
func (r *Repository) AppendClick(ctx context.Context, event model.ClickEvent) error {
	err := r.underlying.AppendClick(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to append click: %w", err)
	}

	return nil
}

func (r *Repository) ListClicksByLink(ctx context.Context, linkID string) ([]model.ClickEvent, error) {
	clicks, err := r.underlying.ListClicksByLink(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}

	return clicks, nil
}

func (r *Repository) ListClicksByLinks(ctx context.Context, linkIDs []string) ([]model.ClickEvent, error) {
	clicks, err := r.underlying.ListClicksByLinks(ctx, linkIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}

	return clicks, nil
}
