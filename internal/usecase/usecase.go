package usecase

import (
	"context"

	"github.com/avc-dev/redirector/internal/config"
	"github.com/avc-dev/redirector/internal/model"
	"go.uber.org/zap"
)

// LinkRegistry определяет интерфейс реестра для management API
type LinkRegistry interface {
	FindByCodeOrAlias(ctx context.Context, code model.Code) (model.Link, error)
	GetLinkByID(ctx context.Context, id string) (model.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	DeleteLink(ctx context.Context, id string) error
	ListClicksByLink(ctx context.Context, linkID string) ([]model.ClickEvent, error)
	ListClicksByLinks(ctx context.Context, linkIDs []string) ([]model.ClickEvent, error)
	Ping(ctx context.Context) error
}

// LinkCreator определяет интерфейс сервиса создания ссылок
type LinkCreator interface {
	CreateLink(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error)
}

// LinkUsecase содержит бизнес-логику management API
type LinkUsecase struct {
	registry LinkRegistry
	service  LinkCreator
	cfg      *config.Config
	logger   *zap.Logger
}

func NewLinkUsecase(registry LinkRegistry, service LinkCreator, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		registry: registry,
		service:  service,
		cfg:      cfg,
		logger:   logger,
	}
}

// PublicURL строит публичный короткий URL для ссылки
// (предпочитая алиас, если он задан)
func (u *LinkUsecase) PublicURL(link model.Link) string {
	code := link.ShortCode
	if link.CustomAlias != "" {
		code = link.CustomAlias
	}

	return u.cfg.BaseURL.String() + "/" + code
}

// Ping проверяет доступность реестра
func (u *LinkUsecase) Ping(ctx context.Context) error {
	return u.registry.Ping(ctx)
}
