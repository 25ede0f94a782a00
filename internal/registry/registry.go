// Package registry is the gateway to the link registry: the shared
// datastore that owns link records and their click events. Links are
// read-only from the resolver's point of view; clicks are independent,
// non-conflicting appends.
package registry

import (
	"context"

	"github.com/avc-dev/redirector/internal/model"
)

type Store interface {
	FindByCodeOrAlias(ctx context.Context, code model.Code) (model.Link, error)
	CreateLink(ctx context.Context, link model.Link) error
	GetLinkByID(ctx context.Context, id string) (model.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	DeleteLink(ctx context.Context, id string) error
	IsCodeAvailable(ctx context.Context, code model.Code) bool
	AppendClick(ctx context.Context, event model.ClickEvent) error
	ListClicksByLink(ctx context.Context, linkID string) ([]model.ClickEvent, error)
	ListClicksByLinks(ctx context.Context, linkIDs []string) ([]model.ClickEvent, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) IsCodeAvailable(ctx context.Context, code model.Code) bool {
	return r.underlying.IsCodeAvailable(ctx, code)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}
