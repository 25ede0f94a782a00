package handler

import (
	"context"

	"github.com/avc-dev/redirector/internal/model"
)

// MockResolver реализует resolver.Resolver через подменяемую функцию
type MockResolver struct {
	ResolveFunc func(ctx context.Context, code model.Code) (model.Link, error)
	Calls       []model.Code
}

func (m *MockResolver) Resolve(ctx context.Context, code model.Code) (model.Link, error) {
	m.Calls = append(m.Calls, code)
	return m.ResolveFunc(ctx, code)
}

// MockRecorder собирает записанные события
type MockRecorder struct {
	Events []model.ClickEvent
}

func (m *MockRecorder) Record(event model.ClickEvent) {
	m.Events = append(m.Events, event)
}

// MockUsecase реализует LinkUsecase через подменяемые функции
type MockUsecase struct {
	CreateLinkFunc        func(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error)
	GetLinkFunc           func(ctx context.Context, id, ownerID string) (model.Link, error)
	ListLinksFunc         func(ctx context.Context, ownerID string) ([]model.Link, error)
	DeleteLinkFunc        func(ctx context.Context, id, ownerID string) error
	LookupFunc            func(ctx context.Context, code string) (model.Link, error)
	GetClicksFunc         func(ctx context.Context, linkID, ownerID string) ([]model.ClickEvent, error)
	GetClicksForLinksFunc func(ctx context.Context, linkIDs []string, ownerID string) ([]model.ClickEvent, error)
	PingFunc              func(ctx context.Context) error
}

func (m *MockUsecase) CreateLink(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error) {
	return m.CreateLinkFunc(ctx, originalURL, title, customAlias, ownerID)
}

func (m *MockUsecase) GetLink(ctx context.Context, id, ownerID string) (model.Link, error) {
	return m.GetLinkFunc(ctx, id, ownerID)
}

func (m *MockUsecase) ListLinks(ctx context.Context, ownerID string) ([]model.Link, error) {
	return m.ListLinksFunc(ctx, ownerID)
}

func (m *MockUsecase) DeleteLink(ctx context.Context, id, ownerID string) error {
	return m.DeleteLinkFunc(ctx, id, ownerID)
}

func (m *MockUsecase) Lookup(ctx context.Context, code string) (model.Link, error) {
	return m.LookupFunc(ctx, code)
}

func (m *MockUsecase) GetClicks(ctx context.Context, linkID, ownerID string) ([]model.ClickEvent, error) {
	return m.GetClicksFunc(ctx, linkID, ownerID)
}

func (m *MockUsecase) GetClicksForLinks(ctx context.Context, linkIDs []string, ownerID string) ([]model.ClickEvent, error) {
	return m.GetClicksForLinksFunc(ctx, linkIDs, ownerID)
}

func (m *MockUsecase) PublicURL(link model.Link) string {
	code := link.ShortCode
	if link.CustomAlias != "" {
		code = link.CustomAlias
	}
	return "http://localhost:8080/" + code
}

func (m *MockUsecase) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
