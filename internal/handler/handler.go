package handler

import (
	"context"

	"github.com/avc-dev/redirector/internal/clicks"
	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/resolver"
	"go.uber.org/zap"
)

// LinkUsecase определяет операции management API, нужные хендлерам
type LinkUsecase interface {
	CreateLink(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error)
	GetLink(ctx context.Context, id, ownerID string) (model.Link, error)
	ListLinks(ctx context.Context, ownerID string) ([]model.Link, error)
	DeleteLink(ctx context.Context, id, ownerID string) error
	Lookup(ctx context.Context, code string) (model.Link, error)
	GetClicks(ctx context.Context, linkID, ownerID string) ([]model.ClickEvent, error)
	GetClicksForLinks(ctx context.Context, linkIDs []string, ownerID string) ([]model.ClickEvent, error)
	PublicURL(link model.Link) string
	Ping(ctx context.Context) error
}

type Handler struct {
	resolver resolver.Resolver
	recorder clicks.Recorder
	usecase  LinkUsecase
	logger   *zap.Logger
}

func New(res resolver.Resolver, recorder clicks.Recorder, uc LinkUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		resolver: res,
		recorder: recorder,
		usecase:  uc,
		logger:   logger,
	}
}
