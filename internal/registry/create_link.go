package registry

import (
	"context"
	"fmt"

	"github.com/avc-dev/redirector/internal/model"
)

func (r *Repository) CreateLink(ctx context.Context, link model.Link) error {
	err := r.underlying.CreateLink(ctx, link)
	if err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}

	return nil
}

func (r *Repository) DeleteLink(ctx context.Context, id string) error {
	err := r.underlying.DeleteLink(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return nil
}
