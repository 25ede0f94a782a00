package registry

import (
	"context"
	"fmt"

	"github.com/avc-dev/redirector/internal/model"
)

// FindByCodeOrAlias возвращает единственную ссылку, чей короткий код или
// алиас совпадает с code
func (r *Repository) FindByCodeOrAlias(ctx context.Context, code model.Code) (model.Link, error) {
	link, err := r.underlying.FindByCodeOrAlias(ctx, code)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to find link by code: %w", err)
	}

	return link, nil
}

func (r *Repository) GetLinkByID(ctx context.Context, id string) (model.Link, error) {
	link, err := r.underlying.GetLinkByID(ctx, id)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to get link by id: %w", err)
	}

	return link, nil
}

func (r *Repository) ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	links, err := r.underlying.ListLinksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links by owner: %w", err)
	}

	return links, nil
}
