package usecase

import (
	"context"

	"github.com/avc-dev/redirector/internal/model"
)

// mockRegistry реализует LinkRegistry через подменяемые функции
type mockRegistry struct {
	FindByCodeOrAliasFunc func(ctx context.Context, code model.Code) (model.Link, error)
	GetLinkByIDFunc       func(ctx context.Context, id string) (model.Link, error)
	ListLinksByOwnerFunc  func(ctx context.Context, ownerID string) ([]model.Link, error)
	DeleteLinkFunc        func(ctx context.Context, id string) error
	ListClicksByLinkFunc  func(ctx context.Context, linkID string) ([]model.ClickEvent, error)
	ListClicksByLinksFunc func(ctx context.Context, linkIDs []string) ([]model.ClickEvent, error)
	PingFunc              func(ctx context.Context) error
}

func (m *mockRegistry) FindByCodeOrAlias(ctx context.Context, code model.Code) (model.Link, error) {
	return m.FindByCodeOrAliasFunc(ctx, code)
}

func (m *mockRegistry) GetLinkByID(ctx context.Context, id string) (model.Link, error) {
	return m.GetLinkByIDFunc(ctx, id)
}

func (m *mockRegistry) ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	return m.ListLinksByOwnerFunc(ctx, ownerID)
}

func (m *mockRegistry) DeleteLink(ctx context.Context, id string) error {
	return m.DeleteLinkFunc(ctx, id)
}

func (m *mockRegistry) ListClicksByLink(ctx context.Context, linkID string) ([]model.ClickEvent, error) {
	return m.ListClicksByLinkFunc(ctx, linkID)
}

func (m *mockRegistry) ListClicksByLinks(ctx context.Context, linkIDs []string) ([]model.ClickEvent, error) {
	return m.ListClicksByLinksFunc(ctx, linkIDs)
}

func (m *mockRegistry) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// mockCreator реализует LinkCreator
type mockCreator struct {
	CreateLinkFunc func(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error)
}

func (m *mockCreator) CreateLink(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error) {
	return m.CreateLinkFunc(ctx, originalURL, title, customAlias, ownerID)
}
